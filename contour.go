package plotkit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotkit/plotkit/core"
)

// ContourOption customizes the Contour renderer.
type ContourOption func(*contourOptions)

type contourOptions struct {
	levels     []float64
	levelCount int
	filled     bool
	colormap   string
	width      float64
	xs, ys     []float64
}

// WithContourLevels draws iso-lines at exactly these z values.
func WithContourLevels(levels ...float64) ContourOption {
	return func(o *contourOptions) { o.levels = levels }
}

// WithLevelCount draws this many evenly spaced iso-lines across the data
// range. The default is 10.
func WithLevelCount(n int) ContourOption {
	return func(o *contourOptions) { o.levelCount = n }
}

// WithFilledContour shades the field underneath the iso-lines.
func WithFilledContour() ContourOption { return func(o *contourOptions) { o.filled = true } }

// WithContourColormap selects the colormap used for line and fill colors.
func WithContourColormap(name string) ContourOption {
	return func(o *contourOptions) { o.colormap = name }
}

// WithContourWidth sets the iso-line stroke width in points.
func WithContourWidth(points float64) ContourOption {
	return func(o *contourOptions) { o.width = points }
}

// WithContourCoords sets explicit grid coordinates, like WithHeatmapCoords.
func WithContourCoords(xs, ys []float64) ContourOption {
	return func(o *contourOptions) { o.xs, o.ys = xs, ys }
}

// Contour renders a matrix as iso-lines of constant value, optionally over a
// filled color field.
func Contour(m mat.Matrix, cfg *core.PlotConfig, opts ...ContourOption) (*core.Figure, error) {
	o := contourOptions{levelCount: 10, width: 1}
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

	if o.filled {
		p.Add(plotter.NewHeatMap(grid, cm.Palette(255)))
	}

	levels := o.levels
	if levels == nil {
		min, max := gridRange(grid)
		levels = make([]float64, o.levelCount)
		step := (max - min) / float64(o.levelCount+1)
		for i := range levels {
			levels[i] = min + float64(i+1)*step
		}
	}

	ct := plotter.NewContour(grid, levels, cm.Palette(len(levels)))
	ct.LineStyles = []draw.LineStyle{{Width: vg.Points(o.width)}}
	p.Add(ct)

	return finish(p, cfg), nil
}
