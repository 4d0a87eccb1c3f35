package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"stockicon/icon"

	svg "github.com/ajstarks/svgo"
)

// svgScale is the number of user units per pixel. svgo takes integer
// coordinates, so the drawing is done on a finer grid and mapped back to
// pixel dimensions through the viewBox.
const svgScale = 10

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func unit(v float64) int {
	return int(math.Round(v * svgScale))
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

// SVG writes a vector rendition of l. The gradient is continuous rather than
// stepped per row, otherwise it matches the raster icon.
func SVG(w io.Writer, l icon.Layout) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	size := l.Size
	canvas.Startview(size, size, 0, 0, size*svgScale, size*svgScale)
	canvas.Title("Stock chart icon")

	canvas.Def()
	canvas.LinearGradient("background", 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 0, Color: rgb(icon.GradientTop), Opacity: 1},
		{Offset: 100, Color: rgb(icon.GradientBottom), Opacity: 1},
	})
	canvas.DefEnd()

	body := l.Silhouette()
	corner := unit(float64(l.CornerRadius))
	canvas.Roundrect(unit(body.Min.X), unit(body.Min.Y), unit(body.Dx()), unit(body.Dy()), corner, corner,
		"fill:url(#background)")

	xs := make([]int, len(l.Chart))
	ys := make([]int, len(l.Chart))
	for i, p := range l.Chart {
		xs[i], ys[i] = unit(p.X), unit(p.Y)
	}
	canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.3f;stroke-width:%d;stroke-linejoin:round;stroke-linecap:butt",
		rgb(icon.LineColor), opacity(icon.LineColor), unit(float64(l.LineWidth))))

	end := l.Chart[len(l.Chart)-1]
	canvas.Circle(unit(end.X), unit(end.Y), unit(float64(l.DotRadius)),
		fmt.Sprintf("fill:%s;fill-opacity:%.3f", rgb(icon.DotColor), opacity(icon.DotColor)))

	barStyle := fmt.Sprintf("fill:%s;fill-opacity:%.3f", rgb(icon.BarColor), opacity(icon.BarColor))
	for _, bar := range l.Bars {
		if bar.Dx() <= 0 || bar.Dy() <= 0 {
			continue
		}
		r := unit(min(float64(l.BarRadius), bar.Dx()/2, bar.Dy()/2))
		canvas.Roundrect(unit(bar.Min.X), unit(bar.Min.Y), unit(bar.Dx()), unit(bar.Dy()), r, r, barStyle)
	}

	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("could not write SVG: %w", ew.err)
	}
	return nil
}
