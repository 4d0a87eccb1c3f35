package icon

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so that four curves approximate a circle.
const kappa = 0.5522847498307936

func newMask(size int) *image.Alpha {
	return image.NewAlpha(image.Rect(0, 0, size, size))
}

func fill(size int, path func(z *vector.Rasterizer)) *image.Alpha {
	m := newMask(size)
	z := vector.NewRasterizer(size, size)
	z.DrawOp = draw.Src
	path(z)
	z.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	return m
}

// roundedRectMask covers pixels 0..size-1 on both axes with corners of the
// given radius. A pixel is inside when its index lies within the shape, so
// the mask is either 0 or 255 and the outer ring is fully opaque.
func roundedRectMask(size, radius int) *image.Alpha {
	m := newMask(size)
	last := size - 1
	radius = max(0, min(radius, last/2))
	r2 := radius * radius

	for y := range size {
		cy := min(max(y, radius), last-radius)
		for x := range size {
			cx := min(max(x, radius), last-radius)
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				m.Pix[m.PixOffset(x, y)] = 0xff
			}
		}
	}
	return m
}

func roundedRectPath(z *vector.Rasterizer, r Rect, radius float64) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	radius = max(0, min(radius, r.Dx()/2, r.Dy()/2))

	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	rad := float32(radius)
	k := float32(radius * (1 - kappa))

	z.MoveTo(x0+rad, y0)
	z.LineTo(x1-rad, y0)
	z.CubeTo(x1-k, y0, x1, y0+k, x1, y0+rad)
	z.LineTo(x1, y1-rad)
	z.CubeTo(x1, y1-k, x1-k, y1, x1-rad, y1)
	z.LineTo(x0+rad, y1)
	z.CubeTo(x0+k, y1, x0, y1-k, x0, y1-rad)
	z.LineTo(x0, y0+rad)
	z.CubeTo(x0, y0+k, x0+k, y0, x0+rad, y0)
	z.ClosePath()
}

func circlePath(z *vector.Rasterizer, c Point, radius float64) {
	if radius <= 0 {
		return
	}
	cx, cy := float32(c.X), float32(c.Y)
	r := float32(radius)
	k := float32(radius * kappa)

	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func toFixedPoint(p Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// stroke returns the coverage of an open polyline drawn with butt ends and
// round joins.
func stroke(size int, pts []Point, width float64) *image.Alpha {
	m := newMask(size)
	if len(pts) < 2 || width <= 0 {
		return m
	}

	scanner := rasterx.NewScannerGV(size, size, m, m.Bounds())
	scanner.SetColor(color.Opaque)
	stroker := rasterx.NewStroker(size, size, scanner)
	stroker.SetStroke(toFixed(width), toFixed(4*width), rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round)

	stroker.Start(toFixedPoint(pts[0]))
	for _, p := range pts[1:] {
		stroker.Line(toFixedPoint(p))
	}
	stroker.Stop(false)
	stroker.Draw()

	return m
}

func fillRows(dst *image.NRGBA, rowColor func(y int) color.NRGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := image.Rect(b.Min.X, y, b.Max.X, y+1)
		draw.Draw(dst, row, image.NewUniform(rowColor(y)), image.Point{}, draw.Src)
	}
}

// setAlpha overwrites the alpha channel of dst with m, leaving colour intact.
func setAlpha(dst *image.NRGBA, m *image.Alpha) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Pix[dst.PixOffset(x, y)+3] = m.Pix[m.PixOffset(x, y)]
		}
	}
}

// paint replaces pixels of dst with c in proportion to cov, restricted to
// clip. Nothing is blended: a fully covered pixel takes c verbatim, alpha
// included.
func paint(dst *image.NRGBA, cov, clip *image.Alpha, c color.NRGBA) {
	const full = 255 * 255
	src := [4]uint32{uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A)}

	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			w := uint32(cov.Pix[cov.PixOffset(x, y)]) * uint32(clip.Pix[clip.PixOffset(x, y)])
			if w == 0 {
				continue
			}
			p := dst.Pix[dst.PixOffset(x, y):]
			for i, s := range src {
				d := uint32(p[i])
				p[i] = uint8((d*(full-w) + s*w + full/2) / full)
			}
		}
	}
}
