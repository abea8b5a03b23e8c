package core

import "fmt"

// Preset returns a copy of a named house configuration. Available presets:
// "default", "publication", "presentation", "nature", "science".
func Preset(name string) (*PlotConfig, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: default, publication, presentation, nature, science)",
			ErrUnknownPreset, name)
	}
	return build(), nil
}

var presets = map[string]func() *PlotConfig{
	"default": DefaultConfig,

	"publication": func() *PlotConfig {
		c := DefaultConfig()
		c.FigWidth = 6.0
		c.FigHeight = 4.5
		c.DPI = 300
		c.TitleSize = 14
		c.AxisLabelSize = 12
		c.TickLabelSize = 10
		c.GridAlpha = 0.2
		return c
	},

	"presentation": func() *PlotConfig {
		c := DefaultConfig()
		c.FigWidth = 10.0
		c.FigHeight = 7.5
		c.DPI = 150
		c.TitleSize = 18
		c.AxisLabelSize = 16
		c.TickLabelSize = 14
		return c
	},

	// Single-column sizes for the two journal families.
	"nature": func() *PlotConfig {
		c := DefaultConfig()
		c.FigWidth = 3.5
		c.FigHeight = 2.625
		c.DPI = 300
		c.TitleSize = 8
		c.AxisLabelSize = 8
		c.TickLabelSize = 7
		c.LegendSize = 7
		c.ShowGrid = false
		c.ShowTopSpine = false
		c.ShowRightSpine = false
		return c
	},

	"science": func() *PlotConfig {
		c := DefaultConfig()
		c.FigWidth = 3.3
		c.FigHeight = 2.5
		c.DPI = 300
		c.TitleSize = 8
		c.AxisLabelSize = 7
		c.TickLabelSize = 6
		c.LegendSize = 6
		c.ShowGrid = false
		c.ShowTopSpine = false
		c.ShowRightSpine = false
		return c
	},
}
