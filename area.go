package plotkit

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/plotkit/plotkit/core"
)

// AreaOption customizes the Area renderer.
type AreaOption func(*areaOptions)

type areaOptions struct {
	stacked     bool
	fillBetween bool
	baseline    float64
}

// WithStackedArea stacks the series so each band sits on the total of the
// bands below it.
func WithStackedArea() AreaOption { return func(o *areaOptions) { o.stacked = true } }

// WithFillBetween shades the region between exactly two series instead of
// filling each down to the baseline.
func WithFillBetween() AreaOption { return func(o *areaOptions) { o.fillBetween = true } }

// WithBaseline sets the y value areas are filled down to. The default is zero.
func WithBaseline(y float64) AreaOption { return func(o *areaOptions) { o.baseline = y } }

// Area renders the series as filled regions with an outline on top.
func Area(series []core.Series, cfg *core.PlotConfig, opts ...AreaOption) (*core.Figure, error) {
	var o areaOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.stacked && o.fillBetween {
		return nil, core.ErrModeConflict
	}
	if err := core.ValidateAll(series); err != nil {
		return nil, err
	}

	p, err := newPlot(cfg)
	if err != nil {
		return nil, err
	}
	series = legendSeries(series, cfg)

	switch {
	case o.fillBetween:
		if len(series) != 2 {
			return nil, fmt.Errorf("fill-between needs exactly 2 series, got %d", len(series))
		}
		a, b := series[0], series[1]
		if len(a.Y) != len(b.Y) {
			return nil, fmt.Errorf("%w: fill-between series have %d and %d values",
				core.ErrLengthMismatch, len(a.Y), len(b.Y))
		}
		if err := addBand(p, a, a.XValues(), b.Y, a.Y); err != nil {
			return nil, err
		}
		for _, s := range series {
			if err := addOutline(p, s, s.Y); err != nil {
				return nil, err
			}
		}

	case o.stacked:
		n := len(series[0].Y)
		x := series[0].XValues()
		lower := make([]float64, n)
		for i := range lower {
			lower[i] = o.baseline
		}
		upper := make([]float64, n)
		for _, s := range series {
			if len(s.Y) != n {
				return nil, fmt.Errorf("%w: stacked series %q has %d values, want %d",
					core.ErrLengthMismatch, s.Label, len(s.Y), n)
			}
			for i, v := range s.Y {
				upper[i] = lower[i] + v
			}
			if err := addBand(p, s, x, lower, upper); err != nil {
				return nil, err
			}
			if err := addOutline(p, s, upper); err != nil {
				return nil, err
			}
			copy(lower, upper)
		}

	default:
		for _, s := range drawOrder(series) {
			base := make([]float64, len(s.Y))
			for i := range base {
				base[i] = o.baseline
			}
			if err := addBand(p, s, s.XValues(), base, s.Y); err != nil {
				return nil, err
			}
			if err := addOutline(p, s, s.Y); err != nil {
				return nil, err
			}
		}
	}

	return finish(p, cfg), nil
}

// addBand fills the region between two curves sharing the x coordinates,
// styled from the series' fill settings.
func addBand(p *plot.Plot, s core.Series, x, lower, upper []float64) error {
	fc, err := fillColor(s)
	if err != nil {
		return err
	}
	ring := make(plotter.XYs, 0, 2*len(x))
	for i := range x {
		ring = append(ring, plotter.XY{X: x[i], Y: upper[i]})
	}
	for i := len(x) - 1; i >= 0; i-- {
		ring = append(ring, plotter.XY{X: x[i], Y: lower[i]})
	}
	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return err
	}
	poly.Color = fc
	poly.LineStyle.Width = 0
	p.Add(poly)
	return nil
}

// addOutline draws the series' edge curve at the given heights and registers
// the legend entry.
func addOutline(p *plot.Plot, s core.Series, y []float64) error {
	if s.LineStyle == core.NoLine {
		return nil
	}
	ln, err := plotter.NewLine(makeXYs(s.XValues(), y))
	if err != nil {
		return err
	}
	ln.LineStyle, err = seriesLineStyle(s)
	if err != nil {
		return err
	}
	p.Add(ln)
	if s.Label != "" {
		p.Legend.Add(s.Label, ln)
	}
	return nil
}
