package icon

import (
	"errors"
	"fmt"
	"image/color"
)

const (
	MinSize = 1
	MaxSize = 2048
)

var ErrInvalidSize = errors.New("invalid icon size")

var (
	GradientTop    = color.NRGBA{R: 14, G: 165, B: 233, A: 255}
	GradientBottom = color.NRGBA{R: 56, G: 189, B: 248, A: 255}
	LineColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	DotColor       = color.NRGBA{R: 16, G: 185, B: 129, A: 255}
	BarColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 150}
)

type Point struct {
	X, Y float64
}

type Rect struct {
	Min, Max Point
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Layout holds every coordinate of the artwork for one icon size. All values
// are in pixel space with the origin at the top-left corner.
type Layout struct {
	Size         int
	CornerRadius int

	Margin      int
	ChartTop    int
	ChartHeight int

	Chart     [4]Point
	LineWidth int
	DotRadius int

	Bars      [3]Rect
	BarRadius int
}

func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}
	return nil
}

func NewLayout(size int) Layout {
	l := Layout{
		Size:         size,
		CornerRadius: size / 5,
		Margin:       size / 5,
		ChartTop:     size / 4,
		ChartHeight:  size / 2,
		LineWidth:    max(2, size/16),
		DotRadius:    max(2, size/16),
	}

	s, m := float64(size), float64(l.Margin)
	top, h := float64(l.ChartTop), float64(l.ChartHeight)
	l.Chart = [4]Point{
		{m, top + 0.7*h},
		{0.35 * s, top + 0.3*h},
		{0.55 * s, top + 0.5*h},
		{s - m, top + 0.1*h},
	}

	barHeight := max(2, size/16)
	barWidth := size / 6
	barGap := size / 12
	barBottom := size - l.Margin
	l.BarRadius = max(1, barHeight/2)
	for i := range l.Bars {
		x := l.Margin + i*(barWidth+barGap)
		l.Bars[i] = Rect{
			Min: Point{float64(x), float64(barBottom - barHeight)},
			Max: Point{float64(x + barWidth), float64(barBottom)},
		}
	}

	return l
}

// Gradient returns the background colour of row y.
func Gradient(y, size int) color.NRGBA {
	ratio := float64(y) / float64(size)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*ratio)
	}
	return color.NRGBA{
		R: lerp(GradientTop.R, GradientBottom.R),
		G: lerp(GradientTop.G, GradientBottom.G),
		B: lerp(GradientTop.B, GradientBottom.B),
		A: 255,
	}
}
