package plotkit

import (
	"strconv"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/plotkit/plotkit/core"
)

// BoxOption customizes the Box renderer.
type BoxOption func(*boxOptions)

type boxOptions struct {
	width      float64
	horizontal bool
	categories []string
}

// WithBoxWidth sets the box width in points.
func WithBoxWidth(points float64) BoxOption { return func(o *boxOptions) { o.width = points } }

// WithHorizontalBoxes rotates the chart so boxes extend along the x axis.
func WithHorizontalBoxes() BoxOption { return func(o *boxOptions) { o.horizontal = true } }

// WithBoxCategories names the category axis positions. Without it boxes are
// labeled by index, or by the series labels when all are set.
func WithBoxCategories(labels ...string) BoxOption {
	return func(o *boxOptions) { o.categories = labels }
}

// Box renders one box-and-whisker summary per series: median, quartile box,
// 1.5 IQR whiskers and outlier points.
func Box(series []core.Series, cfg *core.PlotConfig, opts ...BoxOption) (*core.Figure, error) {
	o := boxOptions{width: 20}
	for _, opt := range opts {
		opt(&o)
	}
	if err := core.ValidateAll(series); err != nil {
		return nil, err
	}

	p, err := newPlot(cfg)
	if err != nil {
		return nil, err
	}

	for i, s := range series {
		b, err := plotter.NewBoxPlot(vg.Points(o.width), float64(i), plotter.Values(s.Y))
		if err != nil {
			return nil, err
		}
		c, err := core.ParseColor(s.Color)
		if err != nil {
			return nil, err
		}
		b.FillColor = core.WithAlpha(c, boxAlpha(s))
		b.Horizontal = o.horizontal
		p.Add(b)
	}

	labels := o.categories
	if labels == nil {
		labels = make([]string, len(series))
		for i, s := range series {
			labels[i] = strconv.Itoa(i)
			if s.Label != "" {
				labels[i] = s.Label
			}
		}
	}
	if o.horizontal {
		p.NominalY(labels...)
	} else {
		p.NominalX(labels...)
	}

	return finish(p, cfg), nil
}

func boxAlpha(s core.Series) float64 {
	if s.FillAlpha == 0 {
		return 0.5
	}
	return s.FillAlpha
}
