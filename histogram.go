package plotkit

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/plotkit/plotkit/core"
)

// HistOption customizes the Histogram renderer.
type HistOption func(*histOptions)

type histOptions struct {
	bins       int
	edges      []float64
	density    bool
	cumulative bool
	stacked    bool
}

// WithBins sets the number of equal-width bins. The default is 30.
func WithBins(n int) HistOption { return func(o *histOptions) { o.bins = n } }

// WithBinEdges sets explicit bin dividers, overriding WithBins. The edges
// must be increasing; values outside [edges[0], edges[len-1]] are dropped.
func WithBinEdges(edges ...float64) HistOption {
	return func(o *histOptions) { o.edges = edges }
}

// WithDensity normalizes bar heights so the histogram integrates to one.
func WithDensity() HistOption { return func(o *histOptions) { o.density = true } }

// WithCumulative draws the running total of counts as a step curve instead of
// bars.
func WithCumulative() HistOption { return func(o *histOptions) { o.cumulative = true } }

// WithStackedHistogram stacks multiple distributions into shared bins.
func WithStackedHistogram() HistOption { return func(o *histOptions) { o.stacked = true } }

// Histogram bins each series' Y values and renders the distribution. All
// series share one set of bin edges spanning the combined data range, so
// multi-series histograms are directly comparable.
func Histogram(series []core.Series, cfg *core.PlotConfig, opts ...HistOption) (*core.Figure, error) {
	o := histOptions{bins: 30}
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
	series = legendSeries(series, cfg)

	edges := o.edges
	if edges == nil {
		edges = binEdges(series, o.bins)
	} else if err := validateEdges(edges); err != nil {
		return nil, err
	}
	counts := make([][]float64, len(series))
	for i, s := range series {
		counts[i] = binCounts(s.Y, edges)
		if o.density {
			normalizeDensity(counts[i], edges)
		}
	}

	if o.cumulative {
		for i, s := range series {
			if err := plotCumulative(p, s, edges, counts[i]); err != nil {
				return nil, err
			}
		}
		return finish(p, cfg), nil
	}

	if o.stacked {
		// Accumulate and draw back to front so each layer covers the
		// totals beneath it.
		totals := make([][]float64, len(series))
		running := make([]float64, len(edges)-1)
		for i := range series {
			for j, c := range counts[i] {
				running[j] += c
			}
			totals[i] = append([]float64(nil), running...)
		}
		for i := len(series) - 1; i >= 0; i-- {
			if err := plotBins(p, series[i], edges, totals[i]); err != nil {
				return nil, err
			}
		}
		return finish(p, cfg), nil
	}

	for i, s := range series {
		if err := plotBins(p, s, edges, counts[i]); err != nil {
			return nil, err
		}
	}
	return finish(p, cfg), nil
}

func validateEdges(edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("need at least 2 bin edges, got %d", len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return fmt.Errorf("bin edges must be increasing, got %g after %g",
				edges[i], edges[i-1])
		}
	}
	return nil
}

// binEdges computes bins+1 equal-width dividers spanning all series.
func binEdges(series []core.Series, bins int) []float64 {
	lo, hi := series[0].Y[0], series[0].Y[0]
	for _, s := range series {
		for _, v := range s.Y {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := make([]float64, bins+1)
	step := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*step
	}
	edges[bins] = hi
	return edges
}

func binCounts(values, edges []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	// Bins are half-open, so nudge the top divider up to keep the maximum
	// value inside the last bin.
	div := append([]float64(nil), edges...)
	div[len(div)-1] = math.Nextafter(div[len(div)-1], math.Inf(1))

	// Values outside explicit edges are dropped rather than counted.
	lo := sort.SearchFloat64s(sorted, div[0])
	hi := sort.SearchFloat64s(sorted, div[len(div)-1])
	sorted = sorted[lo:hi]
	if len(sorted) == 0 {
		return make([]float64, len(edges)-1)
	}
	return stat.Histogram(nil, div, sorted, nil)
}

// normalizeDensity rescales counts in place so the histogram area is one.
func normalizeDensity(counts, edges []float64) {
	var total float64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return
	}
	for i := range counts {
		width := edges[i+1] - edges[i]
		if width > 0 {
			counts[i] /= total * width
		}
	}
}

// plotBins draws pre-binned counts as histogram bars.
func plotBins(p *plot.Plot, s core.Series, edges, counts []float64) error {
	fc, err := fillColor(barFillSeries(s))
	if err != nil {
		return err
	}
	ec, err := edgeStyle(s)
	if err != nil {
		return err
	}
	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(counts)),
		FillColor: fc,
		LineStyle: ec,
	}
	for i, c := range counts {
		h.Bins[i] = plotter.HistogramBin{Min: edges[i], Max: edges[i+1], Weight: c}
	}
	p.Add(h)
	if s.Label != "" {
		p.Legend.Add(s.Label, h)
	}
	return nil
}

// plotCumulative draws the running total of counts as a post-step curve.
func plotCumulative(p *plot.Plot, s core.Series, edges, counts []float64) error {
	xys := make(plotter.XYs, len(counts)+1)
	xys[0] = plotter.XY{X: edges[0], Y: 0}
	var running float64
	for i, c := range counts {
		running += c
		xys[i+1] = plotter.XY{X: edges[i+1], Y: running}
	}
	ln, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	ln.StepStyle = plotter.PostStep
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
