package core

import "gonum.org/v1/plot"

// Shape describes the panel layout of a Figure.
type Shape int

const (
	ShapeSingle Shape = iota
	ShapeRow
	ShapeGrid
)

// Figure is the rendering surface returned by every chart renderer: one or
// more axes sharing a canvas, plus the configuration that sizes the canvas at
// save time. The panel layout is a tagged shape with explicit accessors
// rather than a value whose type depends on the grid dimensions.
//
// A Figure is owned by the caller after a renderer returns it; further
// annotation happens on the *plot.Plot handles it exposes.
type Figure struct {
	config *PlotConfig
	plots  [][]*plot.Plot

	// RowHeights and ColWidths are relative panel size ratios. Nil means
	// equal sizing. PadX and PadY are inter-panel spacing as a fraction of
	// the panel size.
	RowHeights []float64
	ColWidths  []float64
	PadX       float64
	PadY       float64

	// ShareX and ShareY unite the axis ranges across all panels at save
	// time.
	ShareX bool
	ShareY bool

	// SuptitleText is an overall figure title drawn above all panels.
	SuptitleText string
}

// NewFigure wraps a single set of axes.
func NewFigure(cfg *PlotConfig, p *plot.Plot) *Figure {
	return &Figure{config: cfg, plots: [][]*plot.Plot{{p}}}
}

// NewFigureRow wraps a one-dimensional run of panels.
func NewFigureRow(cfg *PlotConfig, row []*plot.Plot) *Figure {
	return &Figure{config: cfg, plots: [][]*plot.Plot{row}}
}

// NewFigureGrid wraps a rows x cols panel grid.
func NewFigureGrid(cfg *PlotConfig, grid [][]*plot.Plot) *Figure {
	return &Figure{config: cfg, plots: grid}
}

// Config returns the configuration the figure was rendered with.
func (f *Figure) Config() *PlotConfig { return f.config }

// Rows returns the number of panel rows.
func (f *Figure) Rows() int { return len(f.plots) }

// Cols returns the number of panel columns.
func (f *Figure) Cols() int {
	if len(f.plots) == 0 {
		return 0
	}
	return len(f.plots[0])
}

// Shape reports the figure's layout kind.
func (f *Figure) Shape() Shape {
	switch {
	case f.Rows() == 1 && f.Cols() == 1:
		return ShapeSingle
	case f.Rows() == 1 || f.Cols() == 1:
		return ShapeRow
	default:
		return ShapeGrid
	}
}

// Single returns the axes of a one-panel figure, or nil for multi-panel
// layouts.
func (f *Figure) Single() *plot.Plot {
	if f.Shape() != ShapeSingle {
		return nil
	}
	return f.plots[0][0]
}

// Row returns the panels of a one-dimensional figure in order, or nil for a
// full grid. A single panel is returned as a one-element slice.
func (f *Figure) Row() []*plot.Plot {
	switch f.Shape() {
	case ShapeGrid:
		return nil
	case ShapeSingle:
		return f.plots[0]
	}
	if f.Rows() == 1 {
		return f.plots[0]
	}
	col := make([]*plot.Plot, 0, f.Rows())
	for _, r := range f.plots {
		col = append(col, r[0])
	}
	return col
}

// Grid returns all panels in row-major order.
func (f *Figure) Grid() [][]*plot.Plot { return f.plots }

// At returns the panel at row r, column c, or nil when out of range.
func (f *Figure) At(r, c int) *plot.Plot {
	if r < 0 || r >= f.Rows() || c < 0 || c >= f.Cols() {
		return nil
	}
	return f.plots[r][c]
}

// Each calls fn for every panel in row-major order.
func (f *Figure) Each(fn func(r, c int, p *plot.Plot)) {
	for r, row := range f.plots {
		for c, p := range row {
			fn(r, c, p)
		}
	}
}
