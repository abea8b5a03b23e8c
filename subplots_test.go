package plotkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/plotkit/plotkit/core"
)

func TestSubplots(t *testing.T) {
	cfg := core.DefaultConfig()

	t.Run("grid dimensions", func(t *testing.T) {
		fig, err := Subplots(2, 3, cfg)
		require.NoError(t, err)
		assert.Equal(t, core.ShapeGrid, fig.Shape())
		assert.Equal(t, 2, fig.Rows())
		assert.Equal(t, 3, fig.Cols())
	})

	t.Run("options", func(t *testing.T) {
		fig, err := Subplots(2, 2, cfg,
			WithRowHeights(2, 1),
			WithColWidths(1, 1),
			WithSharedX(),
			WithSuptitle("Overview"),
			WithPanelTitles("a", "b", "c", "d"),
			WithPanelLabels())
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 1}, fig.RowHeights)
		assert.True(t, fig.ShareX)
		assert.False(t, fig.ShareY)
		assert.Equal(t, "Overview", fig.SuptitleText)
		assert.Equal(t, "b", fig.At(0, 1).Title.Text)
	})

	t.Run("ratio count mismatch", func(t *testing.T) {
		_, err := Subplots(2, 2, cfg, WithRowHeights(1, 2, 3))
		assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	})

	t.Run("title count mismatch", func(t *testing.T) {
		_, err := Subplots(1, 2, cfg, WithPanelTitles("only"))
		assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	})

	t.Run("zero panels", func(t *testing.T) {
		_, err := Subplots(0, 3, cfg)
		assert.Error(t, err)
	})

	t.Run("panel config is isolated", func(t *testing.T) {
		titled := cfg.Clone()
		titled.Title = "outer title"
		fig, err := Subplots(1, 2, titled)
		require.NoError(t, err)
		assert.Empty(t, fig.At(0, 0).Title.Text)
		assert.Equal(t, "outer title", fig.Config().Title)
	})
}

func TestCombine(t *testing.T) {
	cfg := core.DefaultConfig()
	mk := func() *core.Figure {
		s := core.NewSeries(nil, []float64{1, 2, 3})
		fig, err := Line([]core.Series{s}, cfg)
		require.NoError(t, err)
		return fig
	}

	t.Run("arranges figures", func(t *testing.T) {
		fig, err := Combine(1, 2, cfg, []*core.Figure{mk(), mk()})
		require.NoError(t, err)
		assert.Equal(t, core.ShapeRow, fig.Shape())
	})

	t.Run("count mismatch", func(t *testing.T) {
		_, err := Combine(2, 2, cfg, []*core.Figure{mk()})
		assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	})
}

func TestShareRanges(t *testing.T) {
	cfg := core.DefaultConfig()
	fig, err := Subplots(1, 2, cfg, WithSharedX(), WithSharedY())
	require.NoError(t, err)

	set := func(p *plot.Plot, xmin, xmax, ymin, ymax float64) {
		p.X.Min, p.X.Max = xmin, xmax
		p.Y.Min, p.Y.Max = ymin, ymax
	}
	set(fig.At(0, 0), 0, 10, -1, 1)
	set(fig.At(0, 1), 5, 20, -3, 0)

	shareRanges(fig)

	for _, p := range fig.Row() {
		assert.Equal(t, 0.0, p.X.Min)
		assert.Equal(t, 20.0, p.X.Max)
		assert.Equal(t, -3.0, p.Y.Min)
		assert.Equal(t, 1.0, p.Y.Max)
	}
}
