package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"sonar-sim.klederson.com/internal/samplelog"
)

const (
	plotWidth  = 1200
	plotHeight = 700
	plotMargin = 60
	fontSize   = 13.0
	fontDPI    = 72.0
)

var (
	colorBackground = color.RGBA{0x00, 0x11, 0x00, 0xff}
	colorAxis       = color.RGBA{0x00, 0x8f, 0x11, 0xff}
	colorPressure   = color.RGBA{0xcc, 0x66, 0xff, 0xff}
	colorBearing    = color.RGBA{0xff, 0xaa, 0x00, 0xff}
	colorRange      = color.RGBA{0xff, 0x33, 0x00, 0xff}
)

// PNGExporter plots pressure, bearing and range against time.
type PNGExporter struct {
	font *truetype.Font
	err  error
}

// NewPNGExporter parses the embedded Go Regular font.
func NewPNGExporter() *PNGExporter {
	f, err := freetype.ParseFont(goregular.TTF)
	return &PNGExporter{font: f, err: err}
}

type series struct {
	label string
	color color.RGBA
	value func(samplelog.Entry) float64
}

func (x *PNGExporter) Export(ctx context.Context, path string, entries []samplelog.Entry) error {
	if x.err != nil {
		return fmt.Errorf("parsing font: %w", x.err)
	}
	if len(entries) == 0 {
		return ErrEmptyLog
	}

	img := image.NewRGBA(image.Rect(0, 0, plotWidth, plotHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorBackground}, image.Point{}, draw.Src)

	fc := freetype.NewContext()
	fc.SetDPI(fontDPI)
	fc.SetFont(x.font)
	fc.SetFontSize(fontSize)
	fc.SetHinting(font.HintingFull)
	fc.SetClip(img.Bounds())
	fc.SetDst(img)

	panels := []series{
		{Columns[1], colorPressure, func(e samplelog.Entry) float64 { return e.Pressure }},
		{Columns[2], colorBearing, func(e samplelog.Entry) float64 { return e.BearingDeg }},
		{Columns[4], colorRange, func(e samplelog.Entry) float64 { return e.Range }},
	}

	first, last := entries[0], entries[len(entries)-1]
	title := fmt.Sprintf("Sonar simulation: %s samples, t = %.2f s .. %.2f s",
		humanize.Comma(int64(len(entries))), first.Time, last.Time)
	drawText(fc, image.White, plotMargin, 30, title)

	panelH := (plotHeight - 2*plotMargin) / len(panels)
	for i, s := range panels {
		if err := ctx.Err(); err != nil {
			return err
		}
		r := image.Rect(plotMargin, plotMargin+i*panelH+10, plotWidth-plotMargin, plotMargin+(i+1)*panelH-10)
		plotSeries(img, fc, r, entries, s)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("png create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("png encode: %w", err)
	}
	return f.Close()
}

func plotSeries(img *image.RGBA, fc *freetype.Context, r image.Rectangle, entries []samplelog.Entry, s series) {
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, e := range entries {
		v := s.value(e)
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	span := maxV - minV
	if span == 0 {
		span = 1
	}

	// frame
	for x := r.Min.X; x <= r.Max.X; x++ {
		img.Set(x, r.Min.Y, colorAxis)
		img.Set(x, r.Max.Y, colorAxis)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		img.Set(r.Min.X, y, colorAxis)
		img.Set(r.Max.X, y, colorAxis)
	}

	n := len(entries)
	toPx := func(i int, v float64) image.Point {
		x := r.Min.X
		if n > 1 {
			x += i * r.Dx() / (n - 1)
		}
		y := r.Max.Y - int(math.Round((v-minV)/span*float64(r.Dy())))
		return image.Pt(x, y)
	}

	prev := toPx(0, s.value(entries[0]))
	img.Set(prev.X, prev.Y, s.color)
	for i := 1; i < n; i++ {
		p := toPx(i, s.value(entries[i]))
		drawLine(img, prev, p, s.color)
		prev = p
	}

	drawText(fc, image.NewUniform(s.color), r.Min.X+6, r.Min.Y+16, s.label)
	drawText(fc, image.NewUniform(colorAxis), r.Max.X-120, r.Min.Y+16, fmt.Sprintf("max %.2f", maxV))
	drawText(fc, image.NewUniform(colorAxis), r.Max.X-120, r.Max.Y-6, fmt.Sprintf("min %.2f", minV))
}

func drawText(fc *freetype.Context, src image.Image, x, y int, s string) {
	fc.SetSrc(src)
	_, _ = fc.DrawString(s, freetype.Pt(x, y))
}

// drawLine is Bresenham between two points.
func drawLine(img *image.RGBA, a, b image.Point, c color.Color) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	e := dx + dy
	for {
		img.Set(a.X, a.Y, c)
		if a == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
