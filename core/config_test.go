package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ConfigVersion, cfg.Version)
	assert.Equal(t, 8.0, cfg.FigWidth)
	assert.Equal(t, 6.0, cfg.FigHeight)
	assert.Equal(t, 100, cfg.DPI)
	assert.Equal(t, Linear, cfg.XScale)
	assert.True(t, cfg.ShowGrid)
	assert.True(t, cfg.ShowLegend)
	assert.Nil(t, cfg.XLimits)
}

func TestConfigSizeResolvers(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.TickLabelSize, cfg.XTickSize())
	assert.Equal(t, cfg.AxisLabelSize, cfg.YLabelSize())

	override := 22.0
	cfg.XTickLabelSize = &override
	cfg.YAxisLabelSize = &override
	assert.Equal(t, 22.0, cfg.XTickSize())
	assert.Equal(t, cfg.TickLabelSize, cfg.YTickSize())
	assert.Equal(t, 22.0, cfg.YLabelSize())
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.YLimits = &Range{Min: -1, Max: 1}
	pad := 12.0
	cfg.TitlePad = &pad

	clone := cfg.Clone()
	require.Equal(t, cfg, clone)

	clone.YLimits.Max = 99
	clone.Title = "changed"
	*clone.TitlePad = 0

	assert.Equal(t, 1.0, cfg.YLimits.Max)
	assert.Empty(t, cfg.Title)
	assert.Equal(t, 12.0, *cfg.TitlePad)
}

func TestPreset(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		cfg, err := Preset("publication")
		require.NoError(t, err)
		assert.Equal(t, 300, cfg.DPI)
	})

	t.Run("presets are independent copies", func(t *testing.T) {
		a, err := Preset("nature")
		require.NoError(t, err)
		a.TitleSize = 99

		b, err := Preset("nature")
		require.NoError(t, err)
		assert.Equal(t, 8.0, b.TitleSize)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Preset("neon")
		assert.ErrorIs(t, err, ErrUnknownPreset)
	})
}
