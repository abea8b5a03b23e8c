package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeriesDefaults(t *testing.T) {
	s := NewSeries(nil, []float64{1, 2, 3})

	assert.Equal(t, DefaultSeriesColor, s.Color)
	assert.Equal(t, Solid, s.LineStyle)
	assert.Equal(t, 1.5, s.LineWidth)
	assert.Equal(t, 1.0, s.LineAlpha)
	assert.Equal(t, NoMarker, s.Marker)
	assert.False(t, s.FillBelow)
}

func TestSeriesValidate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := NewSeries(nil, nil)
		assert.ErrorIs(t, s.Validate(), ErrEmptySeries)
	})

	t.Run("length mismatch", func(t *testing.T) {
		s := NewSeries([]float64{1, 2}, []float64{1, 2, 3})
		assert.ErrorIs(t, s.Validate(), ErrLengthMismatch)
	})

	t.Run("ok without x", func(t *testing.T) {
		s := NewSeries(nil, []float64{1, 2, 3})
		assert.NoError(t, s.Validate())
	})
}

func TestSeriesXValues(t *testing.T) {
	t.Run("implicit index", func(t *testing.T) {
		s := NewSeries(nil, []float64{5, 6, 7})
		assert.Equal(t, []float64{0, 1, 2}, s.XValues())
	})

	t.Run("explicit", func(t *testing.T) {
		x := []float64{10, 20, 30}
		s := NewSeries(x, []float64{5, 6, 7})
		assert.Equal(t, x, s.XValues())
	})
}

func TestValidateAll(t *testing.T) {
	assert.ErrorIs(t, ValidateAll(nil), ErrNoSeries)

	bad := []Series{NewSeries(nil, []float64{1}), NewSeries(nil, nil)}
	assert.ErrorIs(t, ValidateAll(bad), ErrEmptySeries)

	ok := []Series{NewSeries(nil, []float64{1, 2})}
	assert.NoError(t, ValidateAll(ok))
}
