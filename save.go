package plotkit

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/plotkit/plotkit/core"
)

// Save writes the figure to path, picking the format from the file
// extension. Raster formats (.png, .jpg, .jpeg, .tiff, .tif) render at the
// configuration's DPI; vector formats (.pdf, .svg, .eps) are resolution
// independent.
func Save(fig *core.Figure, path string) error {
	return SaveDPI(fig, path, fig.Config().DPI)
}

// SaveDPI is Save with an explicit raster resolution, overriding the
// configuration's DPI. Vector formats ignore the override.
func SaveDPI(fig *core.Figure, path string, dpi int) error {
	cfg := fig.Config()
	w := vg.Length(cfg.FigWidth) * vg.Inch
	h := vg.Length(cfg.FigHeight) * vg.Inch
	if dpi <= 0 {
		dpi = 72
	}

	bg, err := core.ParseColor(cfg.Background)
	if err != nil {
		return err
	}

	shareRanges(fig)

	var (
		dc draw.Canvas
		wt io.WriterTo
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		c := vgimg.NewWith(
			vgimg.UseWH(w, h),
			vgimg.UseDPI(dpi),
			vgimg.UseBackgroundColor(bg),
		)
		dc = draw.New(c)
		switch ext {
		case ".png":
			wt = vgimg.PngCanvas{Canvas: c}
		case ".jpg", ".jpeg":
			wt = vgimg.JpegCanvas{Canvas: c}
		default:
			wt = vgimg.TiffCanvas{Canvas: c}
		}
	case ".pdf":
		c := vgpdf.New(w, h)
		dc = draw.New(c)
		fillBackground(dc, bg)
		wt = c
	case ".svg":
		c := vgsvg.New(w, h)
		dc = draw.New(c)
		fillBackground(dc, bg)
		wt = c
	case ".eps":
		c := vgeps.New(w, h)
		dc = draw.New(c)
		fillBackground(dc, bg)
		wt = c
	default:
		return fmt.Errorf("unsupported image format %q (want png, jpg, tiff, pdf, svg or eps)", ext)
	}

	drawFigure(fig, dc)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func fillBackground(dc draw.Canvas, bg color.Color) {
	var p vg.Path
	p.Move(vg.Point{X: dc.Min.X, Y: dc.Min.Y})
	p.Line(vg.Point{X: dc.Max.X, Y: dc.Min.Y})
	p.Line(vg.Point{X: dc.Max.X, Y: dc.Max.Y})
	p.Line(vg.Point{X: dc.Min.X, Y: dc.Max.Y})
	p.Close()
	dc.SetColor(bg)
	dc.Fill(p)
}

// drawFigure lays the figure's panels onto the canvas: outer padding, then an
// optional suptitle strip, then the ratio-weighted panel grid.
func drawFigure(fig *core.Figure, dc draw.Canvas) {
	cfg := fig.Config()

	pad := vg.Length(cfg.TightPad) * vg.Inch
	dc = draw.Crop(dc, pad, -pad, pad, -pad)

	if fig.SuptitleText != "" {
		dc = drawSuptitle(fig, dc)
	}

	rows, cols := fig.Rows(), fig.Cols()
	cellW := cellSizes(ratios(fig.ColWidths, cols), dc.Max.X-dc.Min.X, fig.PadX)
	cellH := cellSizes(ratios(fig.RowHeights, rows), dc.Max.Y-dc.Min.Y, fig.PadY)
	padW := vg.Length(fig.PadX) * mean(cellW)
	padH := vg.Length(fig.PadY) * mean(cellH)

	y := dc.Max.Y
	for r := 0; r < rows; r++ {
		x := dc.Min.X
		for c := 0; c < cols; c++ {
			panel := draw.Canvas{
				Canvas: dc.Canvas,
				Rectangle: vg.Rectangle{
					Min: vg.Point{X: x, Y: y - cellH[r]},
					Max: vg.Point{X: x + cellW[c], Y: y},
				},
			}
			if p := fig.At(r, c); p != nil {
				p.Draw(panel)
			}
			x += cellW[c] + padW
		}
		y -= cellH[r] + padH
	}
}

// drawSuptitle paints the overall title and returns the canvas below it.
func drawSuptitle(fig *core.Figure, dc draw.Canvas) draw.Canvas {
	cfg := fig.Config()
	sty := fig.At(0, 0).Title.TextStyle
	sty.Font.Size = vg.Points(cfg.TitleSize * 1.2)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop

	strip := sty.Font.Size * 1.8
	pt := vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - sty.Font.Size*0.2}
	dc.FillText(sty, pt, fig.SuptitleText)
	return draw.Crop(dc, 0, 0, 0, -strip)
}

// ratios returns the given ratios or n equal shares.
func ratios(r []float64, n int) []float64 {
	if r != nil {
		return r
	}
	eq := make([]float64, n)
	for i := range eq {
		eq[i] = 1
	}
	return eq
}

// cellSizes splits total into weighted cells, reserving pad fraction gaps
// between them.
func cellSizes(weights []float64, total vg.Length, pad float64) []vg.Length {
	n := len(weights)
	var sum float64
	for _, w := range weights {
		sum += w
	}
	// Gaps are pad times the mean cell size; solve for the mean first.
	meanCell := total / vg.Length(float64(n)+pad*float64(n-1))
	gaps := vg.Length(pad) * meanCell * vg.Length(n-1)
	usable := total - gaps
	out := make([]vg.Length, n)
	for i, w := range weights {
		out[i] = usable * vg.Length(w/sum)
	}
	return out
}

func mean(ls []vg.Length) vg.Length {
	var sum vg.Length
	for _, l := range ls {
		sum += l
	}
	return sum / vg.Length(len(ls))
}
