package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/plotkit/plotkit"
	"github.com/plotkit/plotkit/core"
)

// Gallery command flags
var (
	galleryOut    string
	galleryPreset string
	gallerySeed   int64
)

func buildGalleryCmd() *cobra.Command {
	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render one sample chart of every type",
		RunE:  runGallery,
	}

	galleryCmd.Flags().StringVarP(&galleryOut, "output", "o", "gallery", "Output directory")
	galleryCmd.Flags().StringVarP(&galleryPreset, "preset", "p", "default", "Configuration preset")
	galleryCmd.Flags().Int64Var(&gallerySeed, "seed", 42, "Seed for the sample data")

	return galleryCmd
}

func runGallery(cmd *cobra.Command, args []string) error {
	cfg, err := core.Preset(galleryPreset)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(galleryOut, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", galleryOut, err)
	}

	rng := rand.New(rand.NewSource(gallerySeed))
	charts := sampleCharts(cfg, rng)

	bar := progressbar.Default(int64(len(charts)), "rendering")
	for _, chart := range charts {
		fig, err := chart.render()
		if err != nil {
			return fmt.Errorf("%s: %w", chart.name, err)
		}
		path := filepath.Join(galleryOut, chart.name+".png")
		if err := plotkit.Save(fig, path); err != nil {
			return fmt.Errorf("%s: %w", chart.name, err)
		}
		bar.Add(1)
	}

	plotkit.DefaultLog.Infof("gallery written to %s", galleryOut)
	return nil
}

type sampleChart struct {
	name   string
	render func() (*core.Figure, error)
}

func sampleCharts(cfg *core.PlotConfig, rng *rand.Rand) []sampleChart {
	x := core.Index(100)
	sin := make([]float64, len(x))
	cos := make([]float64, len(x))
	for i, v := range x {
		sin[i] = math.Sin(v / 8)
		cos[i] = math.Cos(v / 8)
	}
	normal := make([]float64, 1000)
	for i := range normal {
		normal[i] = rng.NormFloat64()
	}

	grid := mat.NewDense(20, 20, nil)
	for r := 0; r < 20; r++ {
		for c := 0; c < 20; c++ {
			grid.Set(r, c, math.Sin(float64(r)/3)*math.Cos(float64(c)/3))
		}
	}

	lineCfg := func(title string) *core.PlotConfig {
		c := cfg.Clone()
		c.Title = title
		return c
	}

	a := core.NewSeries(x, sin)
	a.Label = "sin"
	b := core.NewSeries(x, cos)
	b.Label = "cos"
	b.Color = "#DC3912"

	return []sampleChart{
		{"line", func() (*core.Figure, error) {
			return plotkit.Line([]core.Series{a, b}, lineCfg("Line"))
		}},
		{"bar", func() (*core.Figure, error) {
			s := core.NewSeries(nil, []float64{3, 7, 4, 6})
			s.Label = "2025"
			t := core.NewSeries(nil, []float64{5, 2, 6, 3})
			t.Label = "2026"
			t.Color = "#DC3912"
			return plotkit.Bar([]core.Series{s, t}, lineCfg("Bar"),
				plotkit.WithGroupedBars(),
				plotkit.WithBarCategories("Q1", "Q2", "Q3", "Q4"))
		}},
		{"histogram", func() (*core.Figure, error) {
			s := core.NewSeries(nil, normal)
			s.Label = "samples"
			return plotkit.Histogram([]core.Series{s}, lineCfg("Histogram"))
		}},
		{"area", func() (*core.Figure, error) {
			s := core.NewSeries(x, sin)
			s.Label = "sin"
			return plotkit.Area([]core.Series{s}, lineCfg("Area"))
		}},
		{"pie", func() (*core.Figure, error) {
			return plotkit.Pie(
				[]float64{35, 25, 20, 20},
				[]string{"solar", "wind", "hydro", "other"},
				lineCfg("Pie"),
				plotkit.WithPercentLabels())
		}},
		{"heatmap", func() (*core.Figure, error) {
			return plotkit.Heatmap(grid, lineCfg("Heatmap"))
		}},
		{"contour", func() (*core.Figure, error) {
			return plotkit.Contour(grid, lineCfg("Contour"))
		}},
		{"surface", func() (*core.Figure, error) {
			return plotkit.Surface(grid, lineCfg("Surface"))
		}},
		{"box", func() (*core.Figure, error) {
			s := core.NewSeries(nil, normal[:200])
			s.Label = "a"
			t := core.NewSeries(nil, normal[200:500])
			t.Label = "b"
			t.Color = "#DC3912"
			return plotkit.Box([]core.Series{s, t}, lineCfg("Box"))
		}},
	}
}
