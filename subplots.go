package plotkit

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotkit/plotkit/core"
)

// SubplotOption customizes the Subplots and Combine builders.
type SubplotOption func(*subplotOptions)

type subplotOptions struct {
	rowHeights  []float64
	colWidths   []float64
	padX, padY  float64
	shareX      bool
	shareY      bool
	suptitle    string
	titles      []string
	panelLabels bool
}

// WithRowHeights sets relative panel heights, one ratio per row.
func WithRowHeights(ratios ...float64) SubplotOption {
	return func(o *subplotOptions) { o.rowHeights = ratios }
}

// WithColWidths sets relative panel widths, one ratio per column.
func WithColWidths(ratios ...float64) SubplotOption {
	return func(o *subplotOptions) { o.colWidths = ratios }
}

// WithPadding sets inter-panel spacing as a fraction of the panel size.
func WithPadding(x, y float64) SubplotOption {
	return func(o *subplotOptions) { o.padX, o.padY = x, y }
}

// WithSharedX unifies the x range across all panels at save time.
func WithSharedX() SubplotOption { return func(o *subplotOptions) { o.shareX = true } }

// WithSharedY unifies the y range across all panels at save time.
func WithSharedY() SubplotOption { return func(o *subplotOptions) { o.shareY = true } }

// WithSuptitle draws an overall title above all panels.
func WithSuptitle(title string) SubplotOption {
	return func(o *subplotOptions) { o.suptitle = title }
}

// WithPanelTitles sets per-panel titles in row-major order.
func WithPanelTitles(titles ...string) SubplotOption {
	return func(o *subplotOptions) { o.titles = titles }
}

// WithPanelLabels marks each panel with a letter, "a)" through "z)", in its
// upper left corner, in row-major order.
func WithPanelLabels() SubplotOption { return func(o *subplotOptions) { o.panelLabels = true } }

// Subplots builds a rows x cols figure of empty, identically styled panels.
// Callers draw onto the panels through At or Each and then Save the figure.
func Subplots(rows, cols int, cfg *core.PlotConfig, opts ...SubplotOption) (*core.Figure, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("subplot grid must be at least 1x1, got %dx%d", rows, cols)
	}
	panelCfg := cfg.Clone()
	panelCfg.Title = ""

	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, cols)
		for c := range grid[r] {
			p, err := newPlot(panelCfg)
			if err != nil {
				return nil, err
			}
			grid[r][c] = p
		}
	}
	return finishGrid(core.NewFigureGrid(cfg, grid), rows, cols, opts)
}

// Combine arranges already rendered single-panel figures into a rows x cols
// grid, in row-major order. The grid configuration controls canvas size and
// export; each panel keeps the styling it was rendered with.
func Combine(rows, cols int, cfg *core.PlotConfig, figs []*core.Figure, opts ...SubplotOption) (*core.Figure, error) {
	if rows*cols != len(figs) {
		return nil, fmt.Errorf("%w: %d figures for a %dx%d grid",
			core.ErrDimensionMismatch, len(figs), rows, cols)
	}
	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, cols)
		for c := range grid[r] {
			f := figs[r*cols+c]
			if f.Shape() != core.ShapeSingle {
				return nil, fmt.Errorf("figure %d is not single-panel", r*cols+c)
			}
			grid[r][c] = f.Single()
		}
	}
	return finishGrid(core.NewFigureGrid(cfg, grid), rows, cols, opts)
}

func finishGrid(fig *core.Figure, rows, cols int, opts []SubplotOption) (*core.Figure, error) {
	o := subplotOptions{padX: 0.05, padY: 0.05}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rowHeights != nil && len(o.rowHeights) != rows {
		return nil, fmt.Errorf("%w: %d row heights for %d rows",
			core.ErrDimensionMismatch, len(o.rowHeights), rows)
	}
	if o.colWidths != nil && len(o.colWidths) != cols {
		return nil, fmt.Errorf("%w: %d column widths for %d columns",
			core.ErrDimensionMismatch, len(o.colWidths), cols)
	}
	if o.titles != nil && len(o.titles) != rows*cols {
		return nil, fmt.Errorf("%w: %d panel titles for %d panels",
			core.ErrDimensionMismatch, len(o.titles), rows*cols)
	}

	fig.RowHeights = o.rowHeights
	fig.ColWidths = o.colWidths
	fig.PadX = o.padX
	fig.PadY = o.padY
	fig.ShareX = o.shareX
	fig.ShareY = o.shareY
	fig.SuptitleText = o.suptitle

	fig.Each(func(r, c int, p *plot.Plot) {
		i := r*cols + c
		if o.titles != nil {
			p.Title.Text = o.titles[i]
		}
		if o.panelLabels && i < 26 {
			p.Add(&cornerLabel{text: string(rune('a'+i)) + ")"})
		}
	})
	return fig, nil
}

// shareRanges widens every panel's axes to the union of the per-panel data
// ranges. Called at save time, once all content has been added.
func shareRanges(fig *core.Figure) {
	if !fig.ShareX && !fig.ShareY {
		return
	}
	first := true
	var xmin, xmax, ymin, ymax float64
	fig.Each(func(_, _ int, p *plot.Plot) {
		if first {
			xmin, xmax = p.X.Min, p.X.Max
			ymin, ymax = p.Y.Min, p.Y.Max
			first = false
			return
		}
		if p.X.Min < xmin {
			xmin = p.X.Min
		}
		if p.X.Max > xmax {
			xmax = p.X.Max
		}
		if p.Y.Min < ymin {
			ymin = p.Y.Min
		}
		if p.Y.Max > ymax {
			ymax = p.Y.Max
		}
	})
	fig.Each(func(_, _ int, p *plot.Plot) {
		if fig.ShareX {
			p.X.Min, p.X.Max = xmin, xmax
		}
		if fig.ShareY {
			p.Y.Min, p.Y.Max = ymin, ymax
		}
	})
}

// cornerLabel writes a short tag in the panel's upper left corner, in canvas
// coordinates so it stays put regardless of data ranges.
type cornerLabel struct {
	text string
}

func (l *cornerLabel) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := plt.Title.TextStyle
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YTop
	pt := vg.Point{X: c.Min.X + vg.Points(4), Y: c.Max.Y - vg.Points(4)}
	c.FillText(sty, pt, l.text)
}
