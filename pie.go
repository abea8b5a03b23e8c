package plotkit

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotkit/plotkit/core"
)

// PieOption customizes the Pie renderer.
type PieOption func(*pieOptions)

type pieOptions struct {
	colors     []string
	explode    []float64
	donut      float64
	startAngle float64
	percents   bool
}

// WithSliceColors sets per-slice colors, cycling when there are more slices
// than colors. Without it the house palette is used.
func WithSliceColors(colors ...string) PieOption {
	return func(o *pieOptions) { o.colors = colors }
}

// WithExplode offsets each slice outward by the given fraction of the radius.
func WithExplode(fractions []float64) PieOption {
	return func(o *pieOptions) { o.explode = fractions }
}

// WithDonut hollows the pie, leaving a ring of the given inner-radius
// fraction.
func WithDonut(innerFraction float64) PieOption {
	return func(o *pieOptions) { o.donut = core.Clamp(innerFraction, 0, 0.95) }
}

// WithStartAngle rotates the first slice to start at the given angle in
// degrees, measured counter-clockwise from the positive x axis.
func WithStartAngle(degrees float64) PieOption {
	return func(o *pieOptions) { o.startAngle = degrees }
}

// WithPercentLabels annotates each slice with its share of the total.
func WithPercentLabels() PieOption { return func(o *pieOptions) { o.percents = true } }

// housePalette colors slices when the caller names none.
var housePalette = []string{
	"#0066CC", "#DC3912", "#FF9900", "#109618",
	"#990099", "#0099C6", "#DD4477", "#66AA00",
}

// Pie renders the values as proportional wedges of a circle. The slice labels
// feed the legend; axes and grid are hidden since the chart has no
// coordinates.
func Pie(values []float64, labels []string, cfg *core.PlotConfig, opts ...PieOption) (*core.Figure, error) {
	var o pieOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(values) == 0 {
		return nil, core.ErrEmptySeries
	}
	if labels != nil && len(labels) != len(values) {
		return nil, fmt.Errorf("%w: %d labels for %d values",
			core.ErrLengthMismatch, len(labels), len(values))
	}
	if o.explode != nil && len(o.explode) != len(values) {
		return nil, fmt.Errorf("%w: %d explode offsets for %d values",
			core.ErrLengthMismatch, len(o.explode), len(values))
	}
	var total float64
	for _, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("pie values must be non-negative, got %g", v)
		}
		total += v
	}
	if total == 0 {
		return nil, fmt.Errorf("pie values sum to zero")
	}

	palette := o.colors
	if len(palette) == 0 {
		palette = housePalette
	}
	colors := make([]color.Color, len(values))
	for i := range values {
		c, err := core.ParseColor(palette[i%len(palette)])
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}

	p, err := newPlot(cfg)
	if err != nil {
		return nil, err
	}
	p.HideAxes()

	pc := &pieChart{
		values:     values,
		colors:     colors,
		explode:    o.explode,
		inner:      o.donut,
		startAngle: o.startAngle * math.Pi / 180,
	}
	p.Add(pc)

	if cfg.ShowLegend {
		for i, l := range labels {
			p.Legend.Add(l, colorThumb{colors[i]})
		}
	}

	if o.percents {
		if err := addPercentLabels(p, pc, total, cfg); err != nil {
			return nil, err
		}
	}

	return finish(p, cfg), nil
}

// addPercentLabels places each slice's share at mid-angle inside the wedge.
func addPercentLabels(p *plot.Plot, pc *pieChart, total float64, cfg *core.PlotConfig) error {
	pos := 0.5 + pc.inner/2
	if pc.inner > 0 {
		pos = (1 + pc.inner) / 2
	}
	xyl := plotter.XYLabels{}
	angle := pc.startAngle
	for i, v := range pc.values {
		sweep := 2 * math.Pi * v / total
		mid := angle + sweep/2
		r := pos
		if pc.explode != nil {
			r += pc.explode[i]
		}
		xyl.XYs = append(xyl.XYs, plotter.XY{
			X: r * math.Cos(mid),
			Y: r * math.Sin(mid),
		})
		xyl.Labels = append(xyl.Labels, fmt.Sprintf("%.1f%%", 100*v/total))
		angle += sweep
	}
	lbs, err := plotter.NewLabels(xyl)
	if err != nil {
		return err
	}
	for i := range lbs.TextStyle {
		lbs.TextStyle[i].Font.Size = vg.Points(cfg.TickLabelSize)
		lbs.TextStyle[i].XAlign = draw.XCenter
		lbs.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(lbs)
	return nil
}

// pieChart draws proportional wedges; the underlying library has no pie chart
// of its own. It occupies the data square [-1.2, 1.2] so auto-ranging frames
// the circle with a margin.
type pieChart struct {
	values     []float64
	colors     []color.Color
	explode    []float64
	inner      float64
	startAngle float64
}

func (pc *pieChart) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	center := vg.Point{X: trX(0), Y: trY(0)}
	radius := trX(1) - trX(0)
	if ry := trY(1) - trY(0); ry < radius {
		radius = ry
	}

	var total float64
	for _, v := range pc.values {
		total += v
	}

	angle := pc.startAngle
	for i, v := range pc.values {
		sweep := 2 * math.Pi * v / total
		ctr := center
		if pc.explode != nil && pc.explode[i] != 0 {
			mid := angle + sweep/2
			off := vg.Length(pc.explode[i]) * radius
			ctr.X += off * vg.Length(math.Cos(mid))
			ctr.Y += off * vg.Length(math.Sin(mid))
		}

		var path vg.Path
		if pc.inner > 0 {
			ir := vg.Length(pc.inner) * radius
			path.Move(vg.Point{
				X: ctr.X + radius*vg.Length(math.Cos(angle)),
				Y: ctr.Y + radius*vg.Length(math.Sin(angle)),
			})
			path.Arc(ctr, radius, angle, sweep)
			path.Line(vg.Point{
				X: ctr.X + ir*vg.Length(math.Cos(angle+sweep)),
				Y: ctr.Y + ir*vg.Length(math.Sin(angle+sweep)),
			})
			path.Arc(ctr, ir, angle+sweep, -sweep)
		} else {
			path.Move(ctr)
			path.Line(vg.Point{
				X: ctr.X + radius*vg.Length(math.Cos(angle)),
				Y: ctr.Y + radius*vg.Length(math.Sin(angle)),
			})
			path.Arc(ctr, radius, angle, sweep)
		}
		path.Close()

		c.SetColor(pc.colors[i])
		c.Fill(path)

		angle += sweep
	}
}

// DataRange frames the unit circle plus room for exploded slices.
func (pc *pieChart) DataRange() (xmin, xmax, ymin, ymax float64) {
	m := 1.2
	for _, e := range pc.explode {
		if 1.2+e > m {
			m = 1.2 + e
		}
	}
	return -m, m, -m, m
}

// colorThumb is a solid color legend swatch.
type colorThumb struct{ color.Color }

func (t colorThumb) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	poly := c.ClipPolygonXY(pts)
	c.FillPolygon(t.Color, poly)
}
