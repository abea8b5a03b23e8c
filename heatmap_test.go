package plotkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/plotkit/plotkit/core"
)

func testMatrix(rows, cols int) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.Set(r, c, float64(r*cols+c))
		}
	}
	return m
}

func TestHeatmap(t *testing.T) {
	cfg := core.DefaultConfig()
	m := testMatrix(5, 5)

	t.Run("basic", func(t *testing.T) {
		fig, err := Heatmap(m, cfg)
		require.NoError(t, err)
		assert.Equal(t, core.ShapeSingle, fig.Shape())
	})

	t.Run("with options", func(t *testing.T) {
		_, err := Heatmap(m, cfg,
			WithColormap("black_body"),
			WithValueRange(0, 30),
			WithCellLabels("%.0f"),
			WithHeatmapCoords([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5}))
		assert.NoError(t, err)
	})

	t.Run("labels every cell", func(t *testing.T) {
		xyl, dark := cellLabels(&matGrid{m: m}, 0, 0, "%.0f")
		require.Len(t, xyl.Labels, 25)
		require.Len(t, xyl.XYs, 25)
		require.Len(t, dark, 25)
		assert.Equal(t, "0", xyl.Labels[0])
		assert.Equal(t, "24", xyl.Labels[24])
		assert.False(t, dark[0])
		assert.True(t, dark[24])
	})

	t.Run("unknown colormap", func(t *testing.T) {
		_, err := Heatmap(m, cfg, WithColormap("neon"))
		assert.ErrorIs(t, err, core.ErrUnknownColormap)
	})

	t.Run("coordinate dimension mismatch", func(t *testing.T) {
		_, err := Heatmap(m, cfg, WithHeatmapCoords([]float64{1, 2}, nil))
		assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	})
}

func TestMatrix(t *testing.T) {
	m, err := Matrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))

	t.Run("ragged rows", func(t *testing.T) {
		_, err := Matrix([][]float64{{1, 2}, {3}})
		assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Matrix(nil)
		assert.ErrorIs(t, err, core.ErrEmptySeries)
	})
}

func TestMatGrid(t *testing.T) {
	g := &matGrid{m: testMatrix(2, 3)}

	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)

	// Z(col, row) reads matrix (row, col).
	assert.Equal(t, 5.0, g.Z(2, 1))
	assert.Equal(t, 2.0, g.X(2))
	assert.Equal(t, 1.0, g.Y(1))

	t.Run("explicit coords", func(t *testing.T) {
		g := &matGrid{m: testMatrix(2, 3), xs: []float64{10, 20, 30}, ys: []float64{5, 15}}
		assert.Equal(t, 30.0, g.X(2))
		assert.Equal(t, 15.0, g.Y(1))
	})
}

func TestContour(t *testing.T) {
	cfg := core.DefaultConfig()
	m := testMatrix(10, 10)

	t.Run("basic", func(t *testing.T) {
		_, err := Contour(m, cfg)
		assert.NoError(t, err)
	})

	t.Run("explicit levels and fill", func(t *testing.T) {
		_, err := Contour(m, cfg,
			WithContourLevels(10, 30, 50, 70),
			WithFilledContour())
		assert.NoError(t, err)
	})

	t.Run("unknown colormap", func(t *testing.T) {
		_, err := Contour(m, cfg, WithContourColormap("neon"))
		assert.ErrorIs(t, err, core.ErrUnknownColormap)
	})
}

func TestSurface(t *testing.T) {
	cfg := core.DefaultConfig()
	m := testMatrix(8, 8)

	t.Run("filled", func(t *testing.T) {
		fig, err := Surface(m, cfg)
		require.NoError(t, err)
		assert.Equal(t, core.ShapeSingle, fig.Shape())
	})

	t.Run("wireframe with view", func(t *testing.T) {
		_, err := Surface(m, cfg, WithWireframe(), WithViewAngles(45, 30))
		assert.NoError(t, err)
	})

	t.Run("too small", func(t *testing.T) {
		_, err := Surface(testMatrix(1, 5), cfg)
		assert.Error(t, err)
	})
}

func TestSurfaceFacetOrdering(t *testing.T) {
	sp := newSurfacePlotter(testMatrix(4, 4), surfaceOptions{elev: 30, azim: -60})

	require.Len(t, sp.facets, 9)
	for i := 1; i < len(sp.facets); i++ {
		assert.LessOrEqual(t, sp.facets[i-1].depth, sp.facets[i].depth,
			"facets must be sorted far to near")
	}
}

func TestBox(t *testing.T) {
	cfg := core.DefaultConfig()
	a := core.NewSeries(nil, []float64{1, 2, 3, 4, 5, 100})
	a.Label = "a"
	b := core.NewSeries(nil, []float64{2, 4, 6, 8})
	b.Label = "b"

	t.Run("vertical", func(t *testing.T) {
		_, err := Box([]core.Series{a, b}, cfg)
		assert.NoError(t, err)
	})

	t.Run("horizontal with categories", func(t *testing.T) {
		_, err := Box([]core.Series{a, b}, cfg,
			WithHorizontalBoxes(),
			WithBoxCategories("first", "second"))
		assert.NoError(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Box(nil, cfg)
		assert.ErrorIs(t, err, core.ErrNoSeries)
	})
}
