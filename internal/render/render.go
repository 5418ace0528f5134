// Package render draws scatter geometry as a PNG or SVG chart.
package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/iwvelando/status-plot/internal/apperr"
	"github.com/iwvelando/status-plot/pkg/mathutil"
	"github.com/iwvelando/status-plot/pkg/scatter"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	colorRed   = drawing.Color{R: 255, A: 255}
	colorBlue  = drawing.Color{B: 255, A: 255}
	colorGreen = drawing.Color{G: 255, A: 255}
	colorBlack = drawing.Color{A: 255}
	colorWhite = drawing.Color{R: 255, G: 255, B: 255, A: 255}
)

// drawingColor maps a point color to the chart library's color.
func drawingColor(c scatter.Color) drawing.Color {
	switch c {
	case scatter.Blue:
		return colorBlue
	case scatter.Green:
		return colorGreen
	case scatter.Black:
		return colorBlack
	default:
		return colorRed
	}
}

// Sink is an output file whose format has been resolved from its extension.
type Sink struct {
	Path   string
	Format Format
}

// NewSink resolves the output format of path. It does no I/O, so callers can
// reject a bad output path before reading any input.
func NewSink(path string) (Sink, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Sink{}, err
	}
	return Sink{Path: path, Format: format}, nil
}

// Write draws g and writes the image to the sink's path. Nothing is written
// when drawing fails.
func (s Sink) Write(g scatter.Geometry) error {
	var buf bytes.Buffer
	if err := Draw(&buf, g, s.Format); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
		return apperr.Wrap("render.Sink.Write", apperr.KindIO, s.Path, err)
	}
	return nil
}

// Draw renders g to w in the given format.
func Draw(w io.Writer, g scatter.Geometry, f Format) error {
	var provider chart.RendererProvider
	switch f {
	case PNG:
		provider = chart.PNG
	case SVG:
		provider = chart.SVG
	default:
		return apperr.Wrap("render.Draw", apperr.KindFormat, "", fmt.Errorf("unsupported format %s", f))
	}

	if err := checkRanges(g); err != nil {
		return apperr.Wrap("render.Draw", apperr.KindRender, "", err)
	}

	ch := newChart(g)
	if err := ch.Render(provider, w); err != nil {
		return apperr.Wrap("render.Draw", apperr.KindRender, "", err)
	}
	return nil
}

// checkRanges rejects axis ranges the chart cannot be scaled to, such as an
// empty geometry or a log whose payloads are all zero.
func checkRanges(g scatter.Geometry) error {
	if len(g.Points) == 0 || g.XMax <= 0 {
		return fmt.Errorf("invalid x-axis range [0, %v]: no points to draw", g.XMax)
	}
	if math.IsNaN(g.YMax) || math.IsInf(g.YMax, 0) || g.YMax < 0 || mathutil.IsZero(g.YMax) {
		return fmt.Errorf("invalid y-axis range [0, %v]", g.YMax)
	}
	return nil
}

func newChart(g scatter.Geometry) chart.Chart {
	xs := make([]float64, len(g.Points))
	ys := make([]float64, len(g.Points))
	colors := make([]drawing.Color, len(g.Points))
	for i, p := range g.Points {
		xs[i] = p.X
		ys[i] = p.Y
		colors[i] = drawingColor(p.Color)
	}

	return chart.Chart{
		Width:  g.Config.Width,
		Height: g.Config.Height,
		Background: chart.Style{
			FillColor: colorWhite,
			Padding:   marginBox(g.Config.Margin),
		},
		Canvas: chart.Style{FillColor: colorWhite},
		XAxis:  chart.XAxis{Range: &chart.ContinuousRange{Min: 0, Max: g.XMax}},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: g.YMax}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style:   pointStyle(g.Config.Radius, colors),
			},
		},
	}
}

// marginBox sets IsSet so a margin of 0 is kept instead of the library default.
func marginBox(margin int) chart.Box {
	return chart.Box{Top: margin, Left: margin, Right: margin, Bottom: margin, IsSet: true}
}

// pointStyle renders filled points only (no connecting line), colored per index.
func pointStyle(radius int, colors []drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    float64(radius),
		DotColorProvider: func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
			if index < 0 || index >= len(colors) {
				return colorRed
			}
			return colors[index]
		},
	}
}
