package plotkit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotkit/plotkit/core"
)

// HeatmapOption customizes the Heatmap renderer.
type HeatmapOption func(*heatmapOptions)

type heatmapOptions struct {
	colormap   string
	rangeSet   bool
	min, max   float64
	labels     bool
	labelFmt   string
	xs, ys     []float64
	paletteLen int
}

// WithColormap selects the named colormap. See Colormaps for the recognized
// names.
func WithColormap(name string) HeatmapOption {
	return func(o *heatmapOptions) { o.colormap = name }
}

// WithValueRange pins the color scale to [min, max] instead of the data range.
func WithValueRange(min, max float64) HeatmapOption {
	return func(o *heatmapOptions) { o.rangeSet, o.min, o.max = true, min, max }
}

// WithCellLabels annotates every cell with its value in the given Sprintf
// format, e.g. "%.2f". Labels flip between dark and light text against the
// cell color.
func WithCellLabels(format string) HeatmapOption {
	return func(o *heatmapOptions) { o.labels, o.labelFmt = true, format }
}

// WithHeatmapCoords sets explicit cell-center coordinates for the columns and
// rows. Without it cells sit at integer indices.
func WithHeatmapCoords(xs, ys []float64) HeatmapOption {
	return func(o *heatmapOptions) { o.xs, o.ys = xs, ys }
}

// Matrix converts row-major [][]float64 data into the matrix form Heatmap,
// Contour and Surface accept. All rows must have the same length.
func Matrix(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, core.ErrEmptySeries
	}
	cols := len(rows[0])
	m := mat.NewDense(len(rows), cols, nil)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				core.ErrDimensionMismatch, r, len(row), cols)
		}
		m.SetRow(r, row)
	}
	return m, nil
}

// Colormaps lists the recognized colormap names.
func Colormaps() []string {
	return []string{
		"kindlmann", "extended_kindlmann", "black_body",
		"extended_black_body", "smooth_blue_red", "smooth_green_purple",
	}
}

func colormapByName(name string) (palette.ColorMap, error) {
	switch name {
	case "", "kindlmann":
		return moreland.Kindlmann(), nil
	case "extended_kindlmann":
		return moreland.ExtendedKindlmann(), nil
	case "black_body":
		return moreland.BlackBody(), nil
	case "extended_black_body":
		return moreland.ExtendedBlackBody(), nil
	case "smooth_blue_red":
		return moreland.SmoothBlueRed(), nil
	case "smooth_green_purple":
		return moreland.SmoothGreenPurple(), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownColormap, name)
	}
}

// Heatmap renders a matrix as a colored cell grid. Row 0 is drawn at the
// bottom so the y axis increases upward like every other chart.
func Heatmap(m mat.Matrix, cfg *core.PlotConfig, opts ...HeatmapOption) (*core.Figure, error) {
	o := heatmapOptions{paletteLen: 255}
	for _, opt := range opts {
		opt(&o)
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, core.ErrEmptySeries
	}
	if o.xs != nil && len(o.xs) != cols {
		return nil, fmt.Errorf("%w: %d x coordinates for %d columns",
			core.ErrDimensionMismatch, len(o.xs), cols)
	}
	if o.ys != nil && len(o.ys) != rows {
		return nil, fmt.Errorf("%w: %d y coordinates for %d rows",
			core.ErrDimensionMismatch, len(o.ys), rows)
	}

	cm, err := colormapByName(o.colormap)
	if err != nil {
		return nil, err
	}

	p, err := newPlot(cfg)
	if err != nil {
		return nil, err
	}

	grid := &matGrid{m: m, xs: o.xs, ys: o.ys}
	h := plotter.NewHeatMap(grid, cm.Palette(o.paletteLen))
	if o.rangeSet {
		h.Min, h.Max = o.min, o.max
	}
	p.Add(h)

	if o.labels {
		if err := addCellLabels(p, grid, h.Min, h.Max, o.labelFmt, cfg); err != nil {
			return nil, err
		}
	}

	return finish(p, cfg), nil
}

// addCellLabels places one value label per cell, light on dark cells and dark
// on light ones using the scale midpoint as the threshold.
func addCellLabels(p *plot.Plot, g *matGrid, min, max float64, format string, cfg *core.PlotConfig) error {
	xyl, dark := cellLabels(g, min, max, format)
	lbs, err := plotter.NewLabels(xyl)
	if err != nil {
		return err
	}
	light := core.MustColor("#FFFFFF")
	ink := core.MustColor("#000000")
	for i := range lbs.TextStyle {
		lbs.TextStyle[i].Font.Size = vg.Points(cfg.TickLabelSize)
		lbs.TextStyle[i].XAlign = draw.XCenter
		lbs.TextStyle[i].YAlign = draw.YCenter
		if dark[i] {
			lbs.TextStyle[i].Color = light
		} else {
			lbs.TextStyle[i].Color = ink
		}
	}
	p.Add(lbs)
	return nil
}

// cellLabels builds one formatted label per grid cell, row by row from the
// bottom, and flags the cells dark enough to need light text.
func cellLabels(g *matGrid, min, max float64, format string) (plotter.XYLabels, []bool) {
	if format == "" {
		format = "%.2f"
	}
	if min == 0 && max == 0 {
		min, max = gridRange(g)
	}
	mid := (min + max) / 2

	xyl := plotter.XYLabels{}
	var dark []bool
	cols, rows := g.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := g.Z(c, r)
			xyl.XYs = append(xyl.XYs, plotter.XY{X: g.X(c), Y: g.Y(r)})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf(format, v))
			dark = append(dark, v > mid)
		}
	}
	return xyl, dark
}

func gridRange(g *matGrid) (min, max float64) {
	cols, rows := g.Dims()
	min, max = g.Z(0, 0), g.Z(0, 0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := g.Z(c, r)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// matGrid adapts a mat.Matrix to the plotting library's grid interface.
// Matrix row i becomes grid row i counted from the bottom.
type matGrid struct {
	m      mat.Matrix
	xs, ys []float64
}

func (g *matGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g *matGrid) Z(c, r int) float64 { return g.m.At(r, c) }

func (g *matGrid) X(c int) float64 {
	if g.xs != nil {
		return g.xs[c]
	}
	return float64(c)
}

func (g *matGrid) Y(r int) float64 {
	if g.ys != nil {
		return g.ys[r]
	}
	return float64(r)
}
