package core

// FontWeight is a text weight name.
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// FontStyle is a text slant name.
type FontStyle string

const (
	StyleNormal FontStyle = "normal"
	StyleItalic FontStyle = "italic"
)

// Scale is an axis scale name.
type Scale string

const (
	Linear Scale = "linear"
	Log    Scale = "log"
)

// LegendLocation places the legend inside the axes.
type LegendLocation string

const (
	LegendBest       LegendLocation = "best"
	LegendUpperRight LegendLocation = "upper right"
	LegendUpperLeft  LegendLocation = "upper left"
	LegendLowerRight LegendLocation = "lower right"
	LegendLowerLeft  LegendLocation = "lower left"
)

// Range is a closed axis interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PlotConfig holds the global styling for one figure: everything that applies
// to the whole canvas rather than an individual series. One PlotConfig is
// shared by all panels of a figure; per-series intent lives on Series.
// Renderers read the configuration and never mutate it.
type PlotConfig struct {
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`

	// Figure dimensions in inches, and the raster export resolution.
	FigWidth  float64 `yaml:"figure_width"`
	FigHeight float64 `yaml:"figure_height"`
	DPI       int     `yaml:"dpi"`

	// Background colors for the canvas and the plotting area.
	Background     string `yaml:"figure_facecolor"`
	AxesBackground string `yaml:"axes_facecolor"`

	Title       string     `yaml:"title,omitempty"`
	TitleSize   float64    `yaml:"title_size"`
	TitleWeight FontWeight `yaml:"title_weight"`
	TitleStyle  FontStyle  `yaml:"title_style"`
	TitleColor  string     `yaml:"title_color"`
	TitlePad    *float64   `yaml:"title_pad,omitempty"`

	XLabel          string     `yaml:"x_label,omitempty"`
	YLabel          string     `yaml:"y_label,omitempty"`
	AxisLabelSize   float64    `yaml:"axis_label_size"`
	XAxisLabelSize  *float64   `yaml:"x_axis_label_size,omitempty"`
	YAxisLabelSize  *float64   `yaml:"y_axis_label_size,omitempty"`
	AxisLabelWeight FontWeight `yaml:"axis_label_weight"`
	AxisLabelStyle  FontStyle  `yaml:"axis_label_style"`
	AxisLabelColor  string     `yaml:"axis_label_color"`

	TickLabelSize   float64    `yaml:"tick_label_size"`
	XTickLabelSize  *float64   `yaml:"x_tick_label_size,omitempty"`
	YTickLabelSize  *float64   `yaml:"y_tick_label_size,omitempty"`
	TickLabelWeight FontWeight `yaml:"tick_label_weight"`
	TickLabelColor  string     `yaml:"tick_label_color"`

	XScale  Scale  `yaml:"x_scale"`
	YScale  Scale  `yaml:"y_scale"`
	XLimits *Range `yaml:"x_limits,omitempty"`
	YLimits *Range `yaml:"y_limits,omitempty"`

	ShowGrid  bool      `yaml:"show_grid"`
	GridAlpha float64   `yaml:"grid_alpha"`
	GridStyle LineStyle `yaml:"grid_style"`
	GridWidth float64   `yaml:"grid_linewidth"`
	GridColor string    `yaml:"grid_color"`

	ShowLegend     bool           `yaml:"show_legend"`
	LegendLocation LegendLocation `yaml:"legend_location"`
	LegendSize     float64        `yaml:"legend_font_size"`
	LegendWeight   FontWeight     `yaml:"legend_font_weight"`

	// Spine visibility per side. The underlying library draws the bottom and
	// left axis lines; the top and right toggles add or suppress the frame.
	ShowTopSpine    bool `yaml:"show_top_spine"`
	ShowRightSpine  bool `yaml:"show_right_spine"`
	ShowBottomSpine bool `yaml:"show_bottom_spine"`
	ShowLeftSpine   bool `yaml:"show_left_spine"`

	// TightPad is the padding, in inches, kept around each panel at save time.
	TightPad float64 `yaml:"tight_pad"`
}

// ConfigVersion identifies the configuration schema carried by this release.
const ConfigVersion = "2.0"

// DefaultConfig returns the house-style configuration: a usable default for
// quick exploration, meant to be overridden field by field.
func DefaultConfig() *PlotConfig {
	return &PlotConfig{
		Version:   ConfigVersion,
		FigWidth:  8.0,
		FigHeight: 6.0,
		DPI:       100,

		Background:     "#FFFFFF",
		AxesBackground: "#FFFFFF",

		TitleSize:   14,
		TitleWeight: WeightNormal,
		TitleStyle:  StyleNormal,
		TitleColor:  "#000000",

		AxisLabelSize:   12,
		AxisLabelWeight: WeightNormal,
		AxisLabelStyle:  StyleNormal,
		AxisLabelColor:  "#000000",

		TickLabelSize:   10,
		TickLabelWeight: WeightNormal,
		TickLabelColor:  "#000000",

		XScale: Linear,
		YScale: Linear,

		ShowGrid:  true,
		GridAlpha: 0.3,
		GridStyle: Dashed,
		GridWidth: 0.5,
		GridColor: "#888888",

		ShowLegend:     true,
		LegendLocation: LegendBest,
		LegendSize:     10,
		LegendWeight:   WeightNormal,

		ShowTopSpine:    true,
		ShowRightSpine:  true,
		ShowBottomSpine: true,
		ShowLeftSpine:   true,

		TightPad: 0.05,
	}
}

// XTickSize resolves the per-axis tick label size override.
func (c *PlotConfig) XTickSize() float64 {
	if c.XTickLabelSize != nil {
		return *c.XTickLabelSize
	}
	return c.TickLabelSize
}

// YTickSize resolves the per-axis tick label size override.
func (c *PlotConfig) YTickSize() float64 {
	if c.YTickLabelSize != nil {
		return *c.YTickLabelSize
	}
	return c.TickLabelSize
}

// XLabelSize resolves the per-axis label size override.
func (c *PlotConfig) XLabelSize() float64 {
	if c.XAxisLabelSize != nil {
		return *c.XAxisLabelSize
	}
	return c.AxisLabelSize
}

// YLabelSize resolves the per-axis label size override.
func (c *PlotConfig) YLabelSize() float64 {
	if c.YAxisLabelSize != nil {
		return *c.YAxisLabelSize
	}
	return c.AxisLabelSize
}

// Clone returns a deep copy so presets can be customized without touching
// the shared template.
func (c *PlotConfig) Clone() *PlotConfig {
	out := *c
	if c.TitlePad != nil {
		v := *c.TitlePad
		out.TitlePad = &v
	}
	if c.XAxisLabelSize != nil {
		v := *c.XAxisLabelSize
		out.XAxisLabelSize = &v
	}
	if c.YAxisLabelSize != nil {
		v := *c.YAxisLabelSize
		out.YAxisLabelSize = &v
	}
	if c.XTickLabelSize != nil {
		v := *c.XTickLabelSize
		out.XTickLabelSize = &v
	}
	if c.YTickLabelSize != nil {
		v := *c.YTickLabelSize
		out.YTickLabelSize = &v
	}
	if c.XLimits != nil {
		v := *c.XLimits
		out.XLimits = &v
	}
	if c.YLimits != nil {
		v := *c.YLimits
		out.YLimits = &v
	}
	return &out
}
