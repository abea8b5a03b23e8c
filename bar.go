package plotkit

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotkit/plotkit/core"
)

// BarOption customizes the Bar renderer.
type BarOption func(*barOptions)

type barOptions struct {
	grouped     bool
	stacked     bool
	horizontal  bool
	width       float64
	categories  []string
	valueLabels bool
}

// WithGroupedBars places the series side by side within each category.
func WithGroupedBars() BarOption { return func(o *barOptions) { o.grouped = true } }

// WithStackedBars stacks the series on top of each other within each category.
func WithStackedBars() BarOption { return func(o *barOptions) { o.stacked = true } }

// WithHorizontalBars rotates the chart so bars extend along the x axis.
func WithHorizontalBars() BarOption { return func(o *barOptions) { o.horizontal = true } }

// WithBarWidth sets the total width, in points, each category occupies.
// Grouped mode divides this width among the series.
func WithBarWidth(points float64) BarOption { return func(o *barOptions) { o.width = points } }

// WithBarCategories names the categories along the nominal axis. Without it
// the categories are labeled by index.
func WithBarCategories(labels ...string) BarOption {
	return func(o *barOptions) { o.categories = labels }
}

// WithBarValueLabels writes the height each category reaches above its bars:
// the stack total in stacked mode, the tallest bar otherwise.
func WithBarValueLabels() BarOption { return func(o *barOptions) { o.valueLabels = true } }

// Bar renders the series as a categorical bar chart. The default draws each
// series' bars full width at overlapping positions, so multi-series charts
// normally pick exactly one of grouped or stacked mode.
func Bar(series []core.Series, cfg *core.PlotConfig, opts ...BarOption) (*core.Figure, error) {
	o := barOptions{width: 24}
	for _, opt := range opts {
		opt(&o)
	}
	if o.grouped && o.stacked {
		return nil, core.ErrModeConflict
	}
	if err := core.ValidateAll(series); err != nil {
		return nil, err
	}
	n := len(series[0].Y)
	for _, s := range series[1:] {
		if len(s.Y) != n {
			return nil, fmt.Errorf("%w: bar series %q has %d values, want %d",
				core.ErrLengthMismatch, s.Label, len(s.Y), n)
		}
	}

	p, err := newPlot(cfg)
	if err != nil {
		return nil, err
	}
	series = legendSeries(series, cfg)

	width := vg.Points(o.width)
	if o.grouped {
		width = vg.Points(o.width / float64(len(series)))
	}

	var prev *plotter.BarChart
	for i, s := range series {
		b, err := plotter.NewBarChart(plotter.Values(s.Y), width)
		if err != nil {
			return nil, err
		}
		b.Color, err = fillColor(barFillSeries(s))
		if err != nil {
			return nil, err
		}
		b.LineStyle, err = edgeStyle(s)
		if err != nil {
			return nil, err
		}
		b.Horizontal = o.horizontal
		switch {
		case o.grouped:
			b.Offset = width * vg.Length(float64(i)-float64(len(series)-1)/2)
		case o.stacked && prev != nil:
			b.StackOn(prev)
		}
		p.Add(b)
		if s.Label != "" {
			p.Legend.Add(s.Label, b)
		}
		prev = b
	}

	labels := o.categories
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d category labels for %d bars",
			core.ErrLengthMismatch, len(labels), n)
	}
	if o.horizontal {
		p.NominalY(labels...)
	} else {
		p.NominalX(labels...)
	}
	if o.valueLabels {
		if err := addBarTotals(p, series, o, cfg); err != nil {
			return nil, err
		}
	}

	return finish(p, cfg), nil
}

// addBarTotals places one value label per category at the top of its bars.
func addBarTotals(p *plot.Plot, series []core.Series, o barOptions, cfg *core.PlotConfig) error {
	xyl := plotter.XYLabels{}
	for i, v := range barTops(series, o.stacked) {
		pt := plotter.XY{X: float64(i), Y: v}
		if o.horizontal {
			pt = plotter.XY{X: v, Y: float64(i)}
		}
		xyl.XYs = append(xyl.XYs, pt)
		xyl.Labels = append(xyl.Labels, strconv.FormatFloat(v, 'g', -1, 64))
	}
	lbs, err := plotter.NewLabels(xyl)
	if err != nil {
		return err
	}
	for i := range lbs.TextStyle {
		lbs.TextStyle[i].Font.Size = vg.Points(cfg.TickLabelSize)
		if o.horizontal {
			lbs.TextStyle[i].XAlign = draw.XLeft
			lbs.TextStyle[i].YAlign = draw.YCenter
		} else {
			lbs.TextStyle[i].XAlign = draw.XCenter
			lbs.TextStyle[i].YAlign = draw.YBottom
		}
	}
	p.Add(lbs)
	return nil
}

// barTops returns the drawn height of each category: the stack total when
// stacked, otherwise the tallest single bar.
func barTops(series []core.Series, stacked bool) []float64 {
	if stacked {
		return stackedSums(series)
	}
	tops := append([]float64(nil), series[0].Y...)
	for _, s := range series[1:] {
		for i, v := range s.Y {
			if v > tops[i] {
				tops[i] = v
			}
		}
	}
	return tops
}

// barFillSeries maps the series so its fill resolves at bar opacity: bars use
// the fill color machinery but stay opaque unless an explicit alpha is set.
func barFillSeries(s core.Series) core.Series {
	if s.FillAlpha == 0 {
		s.FillAlpha = 1
	}
	return s
}

// stackedSums returns the per-category totals of a stacked series group, the
// height each stack reaches.
func stackedSums(series []core.Series) []float64 {
	if len(series) == 0 {
		return nil
	}
	sums := make([]float64, len(series[0].Y))
	for _, s := range series {
		for i, v := range s.Y {
			sums[i] += v
		}
	}
	return sums
}
