package plotkit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/plotkit/core"
)

func TestHistogram(t *testing.T) {
	cfg := core.DefaultConfig()
	rng := rand.New(rand.NewSource(1))
	values := make([]float64, 1000)
	for i := range values {
		values[i] = rng.NormFloat64()
	}
	s := core.NewSeries(nil, values)

	t.Run("default bins", func(t *testing.T) {
		fig, err := Histogram([]core.Series{s}, cfg)
		require.NoError(t, err)
		assert.Equal(t, core.ShapeSingle, fig.Shape())
	})

	t.Run("density", func(t *testing.T) {
		_, err := Histogram([]core.Series{s}, cfg, WithBins(20), WithDensity())
		assert.NoError(t, err)
	})

	t.Run("cumulative", func(t *testing.T) {
		_, err := Histogram([]core.Series{s}, cfg, WithCumulative())
		assert.NoError(t, err)
	})

	t.Run("stacked", func(t *testing.T) {
		other := core.NewSeries(nil, values[:500])
		other.Color = "#DC3912"
		_, err := Histogram([]core.Series{s, other}, cfg, WithStackedHistogram())
		assert.NoError(t, err)
	})

	t.Run("explicit edges", func(t *testing.T) {
		_, err := Histogram([]core.Series{s}, cfg, WithBinEdges(-2, -1, 0, 1, 2))
		assert.NoError(t, err)
	})

	t.Run("non-increasing edges", func(t *testing.T) {
		_, err := Histogram([]core.Series{s}, cfg, WithBinEdges(0, 0, 1))
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Histogram(nil, cfg)
		assert.ErrorIs(t, err, core.ErrNoSeries)
	})
}

func TestBinEdges(t *testing.T) {
	s := core.NewSeries(nil, []float64{0, 10})
	edges := binEdges([]core.Series{s}, 30)

	require.Len(t, edges, 31)
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 10.0, edges[30])

	t.Run("constant data widens", func(t *testing.T) {
		flat := core.NewSeries(nil, []float64{5, 5, 5})
		edges := binEdges([]core.Series{flat}, 10)
		assert.Equal(t, 4.5, edges[0])
		assert.Equal(t, 5.5, edges[10])
	})
}

func TestBinCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	values := make([]float64, 1000)
	for i := range values {
		values[i] = rng.Float64()
	}
	s := core.NewSeries(nil, values)
	edges := binEdges([]core.Series{s}, 30)
	counts := binCounts(values, edges)

	require.Len(t, counts, 30)
	var total float64
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 1000.0, total, "every value lands in exactly one bin")

	t.Run("out of range values dropped", func(t *testing.T) {
		counts := binCounts([]float64{-5, 0.5, 1.5, 99}, []float64{0, 1, 2})
		assert.Equal(t, []float64{1, 1}, counts)
	})

	t.Run("all out of range", func(t *testing.T) {
		counts := binCounts([]float64{10, 11}, []float64{0, 1, 2})
		assert.Equal(t, []float64{0, 0}, counts)
	})
}

func TestNormalizeDensity(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	s := core.NewSeries(nil, values)
	edges := binEdges([]core.Series{s}, 5)
	counts := binCounts(values, edges)
	normalizeDensity(counts, edges)

	var integral float64
	for i, c := range counts {
		integral += c * (edges[i+1] - edges[i])
	}
	assert.InDelta(t, 1.0, integral, 1e-9)
}
