// Package icon draws the stock chart application icon.
//
// Every coordinate is derived from the icon size alone, so a given size
// always produces the same pixels. Render is safe for concurrent use.
package icon

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// Render returns a size x size icon. The image is non-premultiplied so that
// transparent corners keep the gradient colour underneath.
func Render(size int) (*image.NRGBA, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	l := NewLayout(size)

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fillRows(img, func(y int) color.NRGBA {
		return Gradient(y, size)
	})

	silhouette := roundedRectMask(size, l.CornerRadius)
	setAlpha(img, silhouette)

	paint(img, stroke(size, l.Chart[:], float64(l.LineWidth)), silhouette, LineColor)

	dot := fill(size, func(z *vector.Rasterizer) {
		circlePath(z, l.Chart[len(l.Chart)-1], float64(l.DotRadius))
	})
	paint(img, dot, silhouette, DotColor)

	bars := fill(size, func(z *vector.Rasterizer) {
		for _, bar := range l.Bars {
			roundedRectPath(z, bar, float64(l.BarRadius))
		}
	})
	paint(img, bars, silhouette, BarColor)

	return img, nil
}

// Silhouette is the outline of the icon body in continuous coordinates, for
// vector output. The raster mask is built by roundedRectMask.
func (l Layout) Silhouette() Rect {
	s := float64(l.Size)
	return Rect{Max: Point{s, s}}
}
