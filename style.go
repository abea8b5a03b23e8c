package plotkit

import (
	"fmt"
	"image/color"
	"sort"

	xfnt "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotkit/plotkit/core"
)

// newPlot allocates axes and applies the global configuration to them.
// Every renderer funnels through here so all chart types share one look.
func newPlot(cfg *core.PlotConfig) (*plot.Plot, error) {
	p := plot.New()
	if err := applyConfig(p, cfg); err != nil {
		return nil, err
	}
	return p, nil
}

// applyConfig translates a PlotConfig onto an existing set of axes: title,
// axis labels, tick styling, scales, limits, grid, legend and spines.
func applyConfig(p *plot.Plot, cfg *core.PlotConfig) error {
	axesBG, err := core.ParseColor(cfg.AxesBackground)
	if err != nil {
		return err
	}
	p.BackgroundColor = axesBG

	// Title.
	titleColor, err := core.ParseColor(cfg.TitleColor)
	if err != nil {
		return err
	}
	p.Title.Text = cfg.Title
	p.Title.TextStyle.Color = titleColor
	p.Title.TextStyle.Font.Size = vg.Points(cfg.TitleSize)
	p.Title.TextStyle.Font.Weight = fontWeight(cfg.TitleWeight)
	p.Title.TextStyle.Font.Style = fontStyle(cfg.TitleStyle)
	if cfg.TitlePad != nil {
		p.Title.Padding = vg.Points(*cfg.TitlePad)
	}

	// Axis labels.
	labelColor, err := core.ParseColor(cfg.AxisLabelColor)
	if err != nil {
		return err
	}
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	for _, st := range []*plot.Axis{&p.X, &p.Y} {
		st.Label.TextStyle.Color = labelColor
		st.Label.TextStyle.Font.Weight = fontWeight(cfg.AxisLabelWeight)
		st.Label.TextStyle.Font.Style = fontStyle(cfg.AxisLabelStyle)
	}
	p.X.Label.TextStyle.Font.Size = vg.Points(cfg.XLabelSize())
	p.Y.Label.TextStyle.Font.Size = vg.Points(cfg.YLabelSize())

	// Tick labels.
	tickColor, err := core.ParseColor(cfg.TickLabelColor)
	if err != nil {
		return err
	}
	p.X.Tick.Label.Font.Size = vg.Points(cfg.XTickSize())
	p.Y.Tick.Label.Font.Size = vg.Points(cfg.YTickSize())
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Tick.Label.Color = tickColor
		ax.Tick.Label.Font.Weight = fontWeight(cfg.TickLabelWeight)
	}

	// Scales.
	if cfg.XScale == core.Log {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if cfg.YScale == core.Log {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if cfg.ShowGrid {
		gridColor, err := core.ParseColor(cfg.GridColor)
		if err != nil {
			return err
		}
		grid := plotter.NewGrid()
		style := draw.LineStyle{
			Color:  core.WithAlpha(gridColor, cfg.GridAlpha),
			Width:  vg.Points(cfg.GridWidth),
			Dashes: dashPattern(cfg.GridStyle),
		}
		grid.Vertical = style
		grid.Horizontal = style
		p.Add(grid)
	}

	// Legend styling; entries are added per series by the renderers.
	p.Legend.TextStyle.Font.Size = vg.Points(cfg.LegendSize)
	p.Legend.TextStyle.Font.Weight = fontWeight(cfg.LegendWeight)
	switch cfg.LegendLocation {
	case core.LegendUpperLeft:
		p.Legend.Top, p.Legend.Left = true, true
	case core.LegendLowerRight:
		p.Legend.Top, p.Legend.Left = false, false
	case core.LegendLowerLeft:
		p.Legend.Top, p.Legend.Left = false, true
	default: // best, upper right
		p.Legend.Top, p.Legend.Left = true, false
	}

	// Spines. The library draws the bottom and left axis lines; hiding a
	// side zeroes its line, and the top/right toggles add frame rules.
	if !cfg.ShowBottomSpine {
		p.X.LineStyle.Width = 0
	}
	if !cfg.ShowLeftSpine {
		p.Y.LineStyle.Width = 0
	}
	if cfg.ShowTopSpine || cfg.ShowRightSpine {
		p.Add(&spineFrame{
			top:   cfg.ShowTopSpine,
			right: cfg.ShowRightSpine,
			style: p.X.LineStyle,
		})
	}

	return nil
}

// finish pins explicit axis limits and wraps the axes in a Figure. It runs
// after all plotters are added because adding data widens the ranges, and
// configured limits must win over auto-ranging.
func finish(p *plot.Plot, cfg *core.PlotConfig) *core.Figure {
	if cfg.XLimits != nil {
		p.X.Min, p.X.Max = cfg.XLimits.Min, cfg.XLimits.Max
	}
	if cfg.YLimits != nil {
		p.Y.Min, p.Y.Max = cfg.YLimits.Min, cfg.YLimits.Max
	}
	return core.NewFigure(cfg, p)
}

// drawOrder returns the series sorted for drawing: ZOrder ascending, ties
// keeping their given order. Composition modes (stacked, grouped) ignore it
// because their order is semantic.
func drawOrder(series []core.Series) []core.Series {
	out := append([]core.Series(nil), series...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZOrder < out[j].ZOrder })
	return out
}

// legendSeries clears the labels when the configuration hides the legend, so
// no entries are registered while drawing.
func legendSeries(series []core.Series, cfg *core.PlotConfig) []core.Series {
	if cfg.ShowLegend {
		return series
	}
	out := append([]core.Series(nil), series...)
	for i := range out {
		out[i].Label = ""
	}
	return out
}

// spineFrame draws the top and/or right border of the plotting area, which
// the underlying library omits by default.
type spineFrame struct {
	top, right bool
	style      draw.LineStyle
}

func (s *spineFrame) Plot(c draw.Canvas, _ *plot.Plot) {
	if s.top {
		c.StrokeLine2(s.style, c.Min.X, c.Max.Y, c.Max.X, c.Max.Y)
	}
	if s.right {
		c.StrokeLine2(s.style, c.Max.X, c.Min.Y, c.Max.X, c.Max.Y)
	}
}

func fontWeight(w core.FontWeight) xfnt.Weight {
	if w == core.WeightBold {
		return xfnt.WeightBold
	}
	return xfnt.WeightNormal
}

func fontStyle(s core.FontStyle) xfnt.Style {
	if s == core.StyleItalic {
		return xfnt.StyleItalic
	}
	return xfnt.StyleNormal
}

// dashPattern maps a named line style to vg dash lengths. Solid and unknown
// styles draw unbroken lines.
func dashPattern(s core.LineStyle) []vg.Length {
	switch s {
	case core.Dashed:
		return []vg.Length{vg.Points(6), vg.Points(4)}
	case core.DashDot:
		return []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)}
	case core.Dotted:
		return []vg.Length{vg.Points(1), vg.Points(3)}
	default:
		return nil
	}
}

// seriesLineStyle builds the stroke style for a series' line component.
func seriesLineStyle(s core.Series) (draw.LineStyle, error) {
	c, err := core.ParseColor(s.Color)
	if err != nil {
		return draw.LineStyle{}, fmt.Errorf("series %q: %w", s.Label, err)
	}
	width := s.LineWidth
	if width == 0 {
		width = 1.5
	}
	return draw.LineStyle{
		Color:  core.WithAlpha(c, s.LineAlpha),
		Width:  vg.Points(width),
		Dashes: dashPattern(s.LineStyle),
	}, nil
}

// seriesGlyphStyle builds the marker style for a series' scatter component.
func seriesGlyphStyle(s core.Series) (draw.GlyphStyle, error) {
	c, err := core.ParseColor(s.Color)
	if err != nil {
		return draw.GlyphStyle{}, fmt.Errorf("series %q: %w", s.Label, err)
	}
	size := s.MarkerSize
	if size == 0 {
		size = 3
	}
	return draw.GlyphStyle{
		Color:  core.WithAlpha(c, s.LineAlpha),
		Radius: vg.Points(size),
		Shape:  glyphShape(s.Marker),
	}, nil
}

func glyphShape(m core.Marker) draw.GlyphDrawer {
	switch m {
	case core.Square:
		return draw.BoxGlyph{}
	case core.Triangle:
		return draw.PyramidGlyph{}
	case core.Diamond:
		return diamondGlyph{}
	case core.Cross:
		return draw.CrossGlyph{}
	case core.Plus:
		return draw.PlusGlyph{}
	case core.Ring:
		return draw.RingGlyph{}
	default:
		return draw.CircleGlyph{}
	}
}

// diamondGlyph is a filled rhombus marker; the underlying library has no
// diamond shape of its own.
type diamondGlyph struct{}

func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + sty.Radius})
	p.Line(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - sty.Radius})
	p.Line(vg.Point{X: pt.X - sty.Radius, Y: pt.Y})
	p.Close()
	c.SetColor(sty.Color)
	c.Fill(p)
}

// fillColor resolves a series' area fill color, falling back to the base
// series color.
func fillColor(s core.Series) (color.Color, error) {
	name := s.FillColor
	if name == "" {
		name = s.Color
	}
	c, err := core.ParseColor(name)
	if err != nil {
		return nil, fmt.Errorf("series %q: %w", s.Label, err)
	}
	alpha := s.FillAlpha
	if alpha == 0 {
		alpha = 0.3
	}
	return core.WithAlpha(c, alpha), nil
}

// edgeStyle resolves bar/marker outline styling.
func edgeStyle(s core.Series) (draw.LineStyle, error) {
	name := s.EdgeColor
	if name == "" {
		name = s.Color
	}
	c, err := core.ParseColor(name)
	if err != nil {
		return draw.LineStyle{}, fmt.Errorf("series %q: %w", s.Label, err)
	}
	return draw.LineStyle{Color: c, Width: vg.Points(s.EdgeWidth)}, nil
}
