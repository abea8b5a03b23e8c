package core

import "fmt"

// LineStyle selects how a series' line segments are drawn.
type LineStyle string

const (
	Solid   LineStyle = "solid"
	Dashed  LineStyle = "dashed"
	DashDot LineStyle = "dashdot"
	Dotted  LineStyle = "dotted"
	NoLine  LineStyle = "none"
)

// Marker selects the glyph drawn at each data point.
type Marker string

const (
	NoMarker Marker = ""
	Circle   Marker = "circle"
	Square   Marker = "square"
	Triangle Marker = "triangle"
	Diamond  Marker = "diamond"
	Cross    Marker = "cross"
	Plus     Marker = "plus"
	Ring     Marker = "ring"
)

// Hatch is a fill pattern for bars and areas.
type Hatch string

const (
	NoHatch       Hatch = ""
	HatchForward  Hatch = "/"
	HatchBackward Hatch = "\\"
	HatchCross    Hatch = "x"
	HatchDots     Hatch = "."
)

// Series holds one data series together with its display intent: a single
// plotted dataset, its coordinates and its styling. Line and scatter plots
// share this type; the difference is only which of LineStyle and Marker are
// active. Renderers never mutate a Series.
type Series struct {
	// Y holds the dependent values and is always required. X is optional;
	// when nil the values are placed at 0..len(Y)-1.
	Y []float64
	X []float64

	Label string

	// Color is the series' base color as a "#RRGGBB" hex string. It is used
	// for the line, markers and fill unless overridden below.
	Color string

	LineStyle LineStyle
	LineWidth float64
	LineAlpha float64

	Marker     Marker
	MarkerSize float64

	// EdgeColor and EdgeWidth style bar/marker outlines.
	EdgeColor string
	EdgeWidth float64

	// Hatch is recorded for configuration round-trips. The current drawing
	// backends have no pattern fills, so hatched regions render solid.
	Hatch Hatch

	// FillBelow fills the region between the curve and zero.
	FillBelow bool
	FillColor string
	FillAlpha float64

	// ZOrder controls draw order between series; higher draws on top.
	ZOrder int
}

// NewSeries returns a line series with house-style defaults.
func NewSeries(x, y []float64) Series {
	return Series{
		X:         x,
		Y:         y,
		Color:     DefaultSeriesColor,
		LineStyle: Solid,
		LineWidth: 1.5,
		LineAlpha: 1.0,
		FillAlpha: 0.3,
	}
}

// DefaultSeriesColor is the color applied when a series does not name one.
const DefaultSeriesColor = "#0066CC"

// Validate reports whether the series' data is usable by a renderer.
func (s Series) Validate() error {
	if len(s.Y) == 0 {
		return fmt.Errorf("%w (label %q)", ErrEmptySeries, s.Label)
	}
	if s.X != nil && len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: got x %d, y %d (label %q)",
			ErrLengthMismatch, len(s.X), len(s.Y), s.Label)
	}
	return nil
}

// XValues returns the explicit coordinates, or the implicit 0..n-1 index
// axis when none were provided.
func (s Series) XValues() []float64 {
	if s.X != nil {
		return s.X
	}
	return Index(len(s.Y))
}

// ValidateAll validates a series group, requiring at least one member.
func ValidateAll(series []Series) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	for _, s := range series {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
