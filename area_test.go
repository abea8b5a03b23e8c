package plotkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plotkit/plotkit/core"
)

func TestArea(t *testing.T) {
	cfg := core.DefaultConfig()

	a := core.NewSeries(nil, []float64{1, 3, 2})
	a.Label = "solar"
	b := core.NewSeries(nil, []float64{2, 1, 4})
	b.Label = "wind"
	b.Color = "#DC3912"

	t.Run("plain", func(t *testing.T) {
		_, err := Area([]core.Series{a}, cfg)
		assert.NoError(t, err)
	})

	t.Run("stacked", func(t *testing.T) {
		_, err := Area([]core.Series{a, b}, cfg, WithStackedArea())
		assert.NoError(t, err)
	})

	t.Run("baseline", func(t *testing.T) {
		_, err := Area([]core.Series{a}, cfg, WithBaseline(1))
		assert.NoError(t, err)
	})

	t.Run("fill between", func(t *testing.T) {
		_, err := Area([]core.Series{a, b}, cfg, WithFillBetween())
		assert.NoError(t, err)
	})

	t.Run("fill between needs two series", func(t *testing.T) {
		_, err := Area([]core.Series{a}, cfg, WithFillBetween())
		assert.Error(t, err)
	})

	t.Run("stacked and fill between conflict", func(t *testing.T) {
		_, err := Area([]core.Series{a, b}, cfg, WithStackedArea(), WithFillBetween())
		assert.ErrorIs(t, err, core.ErrModeConflict)
	})

	t.Run("stacked ragged lengths", func(t *testing.T) {
		short := core.NewSeries(nil, []float64{1})
		_, err := Area([]core.Series{a, short}, cfg, WithStackedArea())
		assert.ErrorIs(t, err, core.ErrLengthMismatch)
	})
}
