package plotkit

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/plotkit/plotkit/core"
)

func TestSave(t *testing.T) {
	dir := t.TempDir()
	cfg := core.DefaultConfig()
	s := core.NewSeries(nil, []float64{1, 3, 2, 5})
	s.Label = "output"

	fig, err := Line([]core.Series{s}, cfg)
	require.NoError(t, err)

	for _, ext := range []string{".png", ".jpg", ".svg", ".pdf", ".eps", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "chart"+ext)
			require.NoError(t, Save(fig, path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}

	t.Run("unsupported extension", func(t *testing.T) {
		err := Save(fig, filepath.Join(dir, "chart.bmp"))
		assert.Error(t, err)
	})

	t.Run("explicit dpi", func(t *testing.T) {
		// The default figure is 8x6 inches, so the raster dimensions
		// follow the resolution directly.
		hires := filepath.Join(dir, "hires.png")
		require.NoError(t, SaveDPI(fig, hires, 300))
		w, h := pngSize(t, hires)
		assert.Equal(t, 2400, w)
		assert.Equal(t, 1800, h)

		lores := filepath.Join(dir, "lores.png")
		require.NoError(t, SaveDPI(fig, lores, 72))
		w, h = pngSize(t, lores)
		assert.Equal(t, 576, w)
		assert.Equal(t, 432, h)
	})
}

// pngSize decodes the image header and returns its pixel dimensions.
func pngSize(t *testing.T, path string) (w, h int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return img.Width, img.Height
}

func TestSaveGrid(t *testing.T) {
	dir := t.TempDir()
	cfg := core.DefaultConfig()
	cfg.FigWidth = 10
	cfg.FigHeight = 6

	fig, err := Subplots(2, 2, cfg,
		WithRowHeights(2, 1),
		WithSuptitle("Quarterly"),
		WithPanelLabels(),
		WithSharedY())
	require.NoError(t, err)

	s := core.NewSeries(nil, []float64{1, 2, 3})
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			require.NoError(t, Draw(fig.At(r, c), s))
		}
	}

	path := filepath.Join(dir, "grid.png")
	require.NoError(t, Save(fig, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCellSizes(t *testing.T) {
	t.Run("equal weights", func(t *testing.T) {
		sizes := cellSizes([]float64{1, 1}, vg.Length(100), 0)
		assert.Equal(t, vg.Length(50), sizes[0])
		assert.Equal(t, vg.Length(50), sizes[1])
	})

	t.Run("weighted", func(t *testing.T) {
		sizes := cellSizes([]float64{3, 1}, vg.Length(100), 0)
		assert.Equal(t, vg.Length(75), sizes[0])
		assert.Equal(t, vg.Length(25), sizes[1])
	})

	t.Run("padding shrinks cells", func(t *testing.T) {
		sizes := cellSizes([]float64{1, 1}, vg.Length(100), 0.1)
		assert.Less(t, sizes[0], vg.Length(50))
	})
}
