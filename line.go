package plotkit

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/plotkit/plotkit/core"
)

// Line renders one or more series as a line and/or scatter chart. Line and
// scatter are the same chart here: a series with LineStyle none and a marker
// is a scatter plot, one with a line style and no marker is a pure line, and
// both together draw connected markers.
func Line(series []core.Series, cfg *core.PlotConfig) (*core.Figure, error) {
	if err := core.ValidateAll(series); err != nil {
		return nil, err
	}

	p, err := newPlot(cfg)
	if err != nil {
		return nil, err
	}
	for _, s := range drawOrder(legendSeries(series, cfg)) {
		if err := plotSeries(p, s); err != nil {
			return nil, err
		}
	}

	return finish(p, cfg), nil
}

// Draw renders series onto existing axes. It is the panel-filling companion
// to Line for figures built with Subplots.
func Draw(p *plot.Plot, series ...core.Series) error {
	if err := core.ValidateAll(series); err != nil {
		return err
	}
	for _, s := range series {
		if err := plotSeries(p, s); err != nil {
			return err
		}
	}
	return nil
}

// plotSeries draws a single series onto existing axes. Exposed through the
// renderers only; the annotation helpers reuse it for overlays.
func plotSeries(p *plot.Plot, s core.Series) error {
	hasLine := s.LineStyle != core.NoLine
	hasMarker := s.Marker != core.NoMarker
	if !hasLine && !hasMarker {
		return fmt.Errorf("series %q has neither a line style nor a marker", s.Label)
	}

	xys := makeXYs(s.XValues(), s.Y)

	var thumb plot.Thumbnailer

	if s.FillBelow {
		fc, err := fillColor(s)
		if err != nil {
			return err
		}
		fill, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		fill.LineStyle.Width = 0
		fill.FillColor = fc
		p.Add(fill)
	}

	if hasLine {
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		ln.LineStyle, err = seriesLineStyle(s)
		if err != nil {
			return err
		}
		p.Add(ln)
		thumb = ln
	}

	if hasMarker {
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle, err = seriesGlyphStyle(s)
		if err != nil {
			return err
		}
		p.Add(sc)
		if thumb == nil {
			thumb = sc
		}
	}

	if s.Label != "" && thumb != nil {
		p.Legend.Add(s.Label, thumb)
	}
	return nil
}

func makeXYs(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(y))
	for i := range y {
		xys[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return xys
}
