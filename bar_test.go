package plotkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/plotkit/core"
)

func TestBar(t *testing.T) {
	cfg := core.DefaultConfig()

	a := core.NewSeries(nil, []float64{3, 7, 4})
	a.Label = "2025"
	b := core.NewSeries(nil, []float64{5, 2, 6})
	b.Label = "2026"
	b.Color = "#DC3912"

	t.Run("grouped", func(t *testing.T) {
		fig, err := Bar([]core.Series{a, b}, cfg,
			WithGroupedBars(),
			WithBarCategories("Q1", "Q2", "Q3"))
		require.NoError(t, err)
		assert.Equal(t, core.ShapeSingle, fig.Shape())
	})

	t.Run("stacked", func(t *testing.T) {
		_, err := Bar([]core.Series{a, b}, cfg, WithStackedBars())
		assert.NoError(t, err)
	})

	t.Run("horizontal", func(t *testing.T) {
		_, err := Bar([]core.Series{a}, cfg, WithHorizontalBars())
		assert.NoError(t, err)
	})

	t.Run("stacked with value labels", func(t *testing.T) {
		_, err := Bar([]core.Series{a, b}, cfg, WithStackedBars(), WithBarValueLabels())
		assert.NoError(t, err)
	})

	t.Run("grouped and stacked conflict", func(t *testing.T) {
		_, err := Bar([]core.Series{a, b}, cfg, WithGroupedBars(), WithStackedBars())
		assert.ErrorIs(t, err, core.ErrModeConflict)
	})

	t.Run("ragged series", func(t *testing.T) {
		short := core.NewSeries(nil, []float64{1})
		_, err := Bar([]core.Series{a, short}, cfg)
		assert.ErrorIs(t, err, core.ErrLengthMismatch)
	})

	t.Run("category count mismatch", func(t *testing.T) {
		_, err := Bar([]core.Series{a}, cfg, WithBarCategories("only one"))
		assert.ErrorIs(t, err, core.ErrLengthMismatch)
	})

	t.Run("no series", func(t *testing.T) {
		_, err := Bar(nil, cfg)
		assert.ErrorIs(t, err, core.ErrNoSeries)
	})
}

func TestBarTops(t *testing.T) {
	a := core.NewSeries(nil, []float64{1, 2, 3})
	b := core.NewSeries(nil, []float64{4, 5, 6})
	group := []core.Series{a, b}

	t.Run("stacked categories reach the elementwise sum", func(t *testing.T) {
		assert.Equal(t, []float64{5, 7, 9}, barTops(group, true))
	})

	t.Run("grouped categories reach the tallest bar", func(t *testing.T) {
		assert.Equal(t, []float64{4, 5, 6}, barTops(group, false))
	})
}
