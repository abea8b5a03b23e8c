package timeseries

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotkit/plotkit/core"
)

// TimeAxis switches the x axis to formatted timestamps. It pairs with
// Table.Series, whose x values are Unix seconds.
func TimeAxis(p *plot.Plot, layout string) {
	if layout == "" {
		layout = "2006-01-02"
	}
	p.X.Tick.Marker = plot.TimeTicks{Format: layout}
}

// WeekBoundaries returns the timestamps where the ISO week changes between
// consecutive samples. With includeFirst the first sample is returned as
// well, so the boundaries delimit every segment rather than only the
// transitions.
func WeekBoundaries(times []time.Time, includeFirst bool) []time.Time {
	if len(times) == 0 {
		return nil
	}
	var out []time.Time
	if includeFirst {
		out = append(out, times[0])
	}
	py, pw := times[0].ISOWeek()
	for _, ts := range times[1:] {
		y, w := ts.ISOWeek()
		if y != py || w != pw {
			out = append(out, ts)
			py, pw = y, w
		}
	}
	return out
}

// AddBoundaryLines draws a dashed vertical rule at each timestamp, spanning
// the full plot height.
func AddBoundaryLines(p *plot.Plot, boundaries []time.Time, colorHex string) error {
	if colorHex == "" {
		colorHex = "#999999"
	}
	c, err := core.ParseColor(colorHex)
	if err != nil {
		return err
	}
	p.Add(&vertRules{
		xs: unixSeconds(boundaries),
		style: draw.LineStyle{
			Color:  c,
			Width:  vg.Points(1),
			Dashes: []vg.Length{vg.Points(4), vg.Points(4)},
		},
	})
	return nil
}

// weekSeparators returns the rule positions for AddWeekSeparators: the start
// of every week segment, the first sample included.
func weekSeparators(times []time.Time) []time.Time {
	return WeekBoundaries(times, true)
}

// AddWeekSeparators draws a rule at the start of every week segment, the
// first sample included, and labels each segment "W##" at the given fraction
// of the plot height. Segments are labeled at their center, the final one
// ending at the last sample.
func AddWeekSeparators(p *plot.Plot, times []time.Time, yFraction float64) error {
	if len(times) == 0 {
		return core.ErrEmptySeries
	}
	starts := weekSeparators(times)
	if err := AddBoundaryLines(p, starts, ""); err != nil {
		return err
	}
	// Lighter rules mark the data edges whether or not a week starts there.
	edges := []time.Time{times[0], times[len(times)-1]}
	if err := AddBoundaryLines(p, edges, "#CCCCCC"); err != nil {
		return err
	}

	ends := append(starts[1:], times[len(times)-1])

	labels := &segmentLabels{frac: core.Clamp(yFraction, 0, 1)}
	for i, start := range starts {
		_, week := start.ISOWeek()
		mid := start.Add(ends[i].Sub(start) / 2)
		labels.centers = append(labels.centers, float64(mid.Unix()))
		labels.texts = append(labels.texts, fmt.Sprintf("W%02d", week))
	}
	p.Add(labels)
	return nil
}

// vertRules draws full-height vertical lines at fixed x positions. It adds
// nothing to the data range so out-of-range rules are simply clipped.
type vertRules struct {
	xs    []float64
	style draw.LineStyle
}

func (r *vertRules) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	for _, x := range r.xs {
		cx := trX(x)
		if !c.ContainsX(cx) {
			continue
		}
		c.StrokeLine2(r.style, cx, c.Min.Y, cx, c.Max.Y)
	}
}

// segmentLabels writes centered text at fixed x positions and a fixed
// fraction of the plot height.
type segmentLabels struct {
	centers []float64
	texts   []string
	frac    float64
}

func (l *segmentLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	sty := plt.X.Tick.Label
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter
	y := c.Min.Y + vg.Length(l.frac)*(c.Max.Y-c.Min.Y)
	for i, x := range l.centers {
		cx := trX(x)
		if !c.ContainsX(cx) {
			continue
		}
		c.FillText(sty, vg.Point{X: cx, Y: y}, l.texts[i])
	}
}
