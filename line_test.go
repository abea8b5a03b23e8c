package plotkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/plotkit/core"
)

func TestLine(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Title = "Generation"

	t.Run("defaults render a single panel", func(t *testing.T) {
		s := core.NewSeries(nil, []float64{1, 3, 2, 5})
		s.Label = "output"

		fig, err := Line([]core.Series{s}, cfg)
		require.NoError(t, err)
		assert.Equal(t, core.ShapeSingle, fig.Shape())
		require.NotNil(t, fig.Single())
		assert.Equal(t, "Generation", fig.Single().Title.Text)
	})

	t.Run("multiple series", func(t *testing.T) {
		a := core.NewSeries(nil, []float64{1, 2, 3})
		b := core.NewSeries(nil, []float64{3, 2, 1})
		b.Color = "#DC3912"
		b.Marker = core.Circle

		_, err := Line([]core.Series{a, b}, cfg)
		assert.NoError(t, err)
	})

	t.Run("no series", func(t *testing.T) {
		_, err := Line(nil, cfg)
		assert.ErrorIs(t, err, core.ErrNoSeries)
	})

	t.Run("length mismatch", func(t *testing.T) {
		s := core.NewSeries([]float64{1, 2}, []float64{1, 2, 3})
		_, err := Line([]core.Series{s}, cfg)
		assert.ErrorIs(t, err, core.ErrLengthMismatch)
	})

	t.Run("bad series color", func(t *testing.T) {
		s := core.NewSeries(nil, []float64{1, 2})
		s.Color = "not-a-color"
		_, err := Line([]core.Series{s}, cfg)
		assert.ErrorIs(t, err, core.ErrInvalidColor)
	})

	t.Run("neither line nor marker", func(t *testing.T) {
		s := core.NewSeries(nil, []float64{1, 2})
		s.LineStyle = core.NoLine
		_, err := Line([]core.Series{s}, cfg)
		assert.Error(t, err)
	})

	t.Run("scatter only", func(t *testing.T) {
		s := core.NewSeries(nil, []float64{1, 2})
		s.LineStyle = core.NoLine
		s.Marker = core.Diamond
		_, err := Line([]core.Series{s}, cfg)
		assert.NoError(t, err)
	})

	t.Run("fill below", func(t *testing.T) {
		s := core.NewSeries(nil, []float64{1, 2, 1})
		s.FillBelow = true
		_, err := Line([]core.Series{s}, cfg)
		assert.NoError(t, err)
	})
}

func TestLineAppliesLimitsAndScale(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.YScale = core.Log
	cfg.XLimits = &core.Range{Min: 0, Max: 10}

	s := core.NewSeries(nil, []float64{1, 10, 100})
	fig, err := Line([]core.Series{s}, cfg)
	require.NoError(t, err)

	p := fig.Single()
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 10.0, p.X.Max)
}
