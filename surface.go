package plotkit

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotkit/plotkit/core"
)

// SurfaceOption customizes the Surface renderer.
type SurfaceOption func(*surfaceOptions)

type surfaceOptions struct {
	elev, azim float64
	wireframe  bool
	colormap   string
}

// WithViewAngles sets the camera elevation and azimuth in degrees.
// The defaults are 30 and -60.
func WithViewAngles(elev, azim float64) SurfaceOption {
	return func(o *surfaceOptions) { o.elev, o.azim = elev, azim }
}

// WithWireframe draws only the cell edges instead of filled facets.
func WithWireframe() SurfaceOption { return func(o *surfaceOptions) { o.wireframe = true } }

// WithSurfaceColormap selects the colormap facets are shaded with.
func WithSurfaceColormap(name string) SurfaceOption {
	return func(o *surfaceOptions) { o.colormap = name }
}

// Surface renders a height matrix as a three-dimensional surface projected
// onto the canvas. Facets are depth-sorted and painted back to front, colored
// by height. Axes are hidden since the projected coordinates are not
// meaningful to read off.
func Surface(z mat.Matrix, cfg *core.PlotConfig, opts ...SurfaceOption) (*core.Figure, error) {
	o := surfaceOptions{elev: 30, azim: -60}
	for _, opt := range opts {
		opt(&o)
	}
	rows, cols := z.Dims()
	if rows < 2 || cols < 2 {
		return nil, core.ErrEmptySeries
	}

	cm, err := colormapByName(o.colormap)
	if err != nil {
		return nil, err
	}

	p, err := newPlot(cfg)
	if err != nil {
		return nil, err
	}
	p.HideAxes()

	sp := newSurfacePlotter(z, o)
	zmin, zmax := matRange(z)
	cm.SetMin(zmin)
	if zmax == zmin {
		zmax = zmin + 1
	}
	cm.SetMax(zmax)
	for i := range sp.facets {
		c, err := cm.At(sp.facets[i].height)
		if err != nil {
			return nil, err
		}
		sp.facets[i].color = c
	}
	p.Add(sp)

	return finish(p, cfg), nil
}

func matRange(m mat.Matrix) (min, max float64) {
	rows, cols := m.Dims()
	min, max = m.At(0, 0), m.At(0, 0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := m.At(r, c)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

type facet struct {
	// corners in projected data coordinates, wound around the cell
	u, v   [4]float64
	depth  float64
	height float64
	color  color.Color
}

// surfacePlotter projects a height grid with an azimuth/elevation camera and
// paints the facets far to near.
type surfacePlotter struct {
	facets    []facet
	wireframe bool

	umin, umax, vmin, vmax float64
}

func newSurfacePlotter(z mat.Matrix, o surfaceOptions) *surfacePlotter {
	rows, cols := z.Dims()
	zmin, zmax := matRange(z)
	zspan := zmax - zmin
	if zspan == 0 {
		zspan = 1
	}

	el := o.elev * math.Pi / 180
	az := o.azim * math.Pi / 180
	sinEl, cosEl := math.Sin(el), math.Cos(el)
	sinAz, cosAz := math.Sin(az), math.Cos(az)

	// Normalize the grid into the unit cube centered at the origin, then
	// rotate by azimuth around z and tilt by elevation.
	project := func(r, c int) (u, v, d float64) {
		x := float64(c)/float64(cols-1) - 0.5
		y := float64(r)/float64(rows-1) - 0.5
		h := (z.At(r, c)-zmin)/zspan - 0.5

		rx := x*cosAz - y*sinAz
		ry := x*sinAz + y*cosAz
		u = rx
		v = ry*sinEl + h*cosEl
		d = -ry*cosEl + h*sinEl
		return u, v, d
	}

	sp := &surfacePlotter{wireframe: o.wireframe}
	sp.umin, sp.vmin = math.Inf(1), math.Inf(1)
	sp.umax, sp.vmax = math.Inf(-1), math.Inf(-1)

	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			var f facet
			var depth float64
			corners := [4][2]int{{r, c}, {r, c + 1}, {r + 1, c + 1}, {r + 1, c}}
			for i, rc := range corners {
				u, v, d := project(rc[0], rc[1])
				f.u[i], f.v[i] = u, v
				depth += d
				if u < sp.umin {
					sp.umin = u
				}
				if u > sp.umax {
					sp.umax = u
				}
				if v < sp.vmin {
					sp.vmin = v
				}
				if v > sp.vmax {
					sp.vmax = v
				}
			}
			f.depth = depth / 4
			f.height = (z.At(r, c) + z.At(r, c+1) + z.At(r+1, c+1) + z.At(r+1, c)) / 4
			sp.facets = append(sp.facets, f)
		}
	}

	sort.Slice(sp.facets, func(i, j int) bool {
		return sp.facets[i].depth < sp.facets[j].depth
	})
	return sp
}

func (sp *surfacePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	edge := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}

	for _, f := range sp.facets {
		pts := make([]vg.Point, 4)
		for i := 0; i < 4; i++ {
			pts[i] = vg.Point{X: trX(f.u[i]), Y: trY(f.v[i])}
		}
		if sp.wireframe {
			ring := append(pts, pts[0])
			c.StrokeLines(edge, c.ClipLinesXY(ring)...)
			continue
		}
		c.FillPolygon(f.color, c.ClipPolygonXY(pts))
		edge.Color = f.color
		ring := append(pts, pts[0])
		c.StrokeLines(edge, c.ClipLinesXY(ring)...)
	}
}

// DataRange frames the projected surface with a small margin.
func (sp *surfacePlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	mu := 0.05 * (sp.umax - sp.umin)
	mv := 0.05 * (sp.vmax - sp.vmin)
	return sp.umin - mu, sp.umax + mu, sp.vmin - mv, sp.vmax + mv
}
