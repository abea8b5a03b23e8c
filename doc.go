// Package plotkit is a configuration-driven charting toolkit built on
// gonum.org/v1/plot.
//
// Figure intent is declared through two plain structures: core.Series holds
// one data series plus its display intent, core.PlotConfig holds the global
// styling shared by the whole figure. Thin per-chart-type renderers (Line,
// Bar, Histogram, Area, Pie, Heatmap, Contour, Surface, Box) translate those
// structures into calls on the underlying plotting library and return a
// core.Figure handle for further customization, annotation and export.
//
//	series := core.NewSeries(x, y)
//	cfg := core.DefaultConfig()
//	cfg.Title = "Generation"
//
//	fig, err := plotkit.Line([]core.Series{series}, cfg)
//	if err != nil {
//		return err
//	}
//	return plotkit.Save(fig, "generation.png")
//
// All renderers are synchronous and allocate an independent figure per call.
// Concurrent rendering from multiple goroutines is safe as long as callers do
// not mutate the plotting library's package-level font defaults while renders
// are in flight.
package plotkit
