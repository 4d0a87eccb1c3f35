package icon

import (
	"errors"
	"math"
	"testing"
)

func TestNewLayoutMinimums(t *testing.T) {
	l := NewLayout(16)
	if l.LineWidth != 2 {
		t.Errorf("line width = %d, want 2", l.LineWidth)
	}
	if l.DotRadius != 2 {
		t.Errorf("dot radius = %d, want 2", l.DotRadius)
	}
	if l.BarRadius != 1 {
		t.Errorf("bar radius = %d, want 1", l.BarRadius)
	}
	if h := l.Bars[0].Dy(); h != 2 {
		t.Errorf("bar height = %v, want 2", h)
	}
}

func TestNewLayout(t *testing.T) {
	tests := []struct {
		size      int
		margin    int
		corner    int
		lineWidth int
		chart     [4]Point
	}{
		{
			size: 16, margin: 3, corner: 3, lineWidth: 2,
			chart: [4]Point{{3, 4 + 0.7*8}, {0.35 * 16, 4 + 0.3*8}, {0.55 * 16, 4 + 0.5*8}, {13, 4 + 0.1*8}},
		},
		{
			size: 48, margin: 9, corner: 9, lineWidth: 3,
			chart: [4]Point{{9, 12 + 0.7*24}, {0.35 * 48, 12 + 0.3*24}, {0.55 * 48, 12 + 0.5*24}, {39, 12 + 0.1*24}},
		},
		{
			size: 128, margin: 25, corner: 25, lineWidth: 8,
			chart: [4]Point{{25, 32 + 0.7*64}, {0.35 * 128, 32 + 0.3*64}, {0.55 * 128, 32 + 0.5*64}, {103, 32 + 0.1*64}},
		},
	}

	for _, tt := range tests {
		l := NewLayout(tt.size)
		if l.Margin != tt.margin {
			t.Errorf("size %d: margin = %d, want %d", tt.size, l.Margin, tt.margin)
		}
		if l.CornerRadius != tt.corner {
			t.Errorf("size %d: corner radius = %d, want %d", tt.size, l.CornerRadius, tt.corner)
		}
		if l.LineWidth != tt.lineWidth {
			t.Errorf("size %d: line width = %d, want %d", tt.size, l.LineWidth, tt.lineWidth)
		}
		for i, p := range l.Chart {
			if math.Abs(p.X-tt.chart[i].X) > 1e-9 || math.Abs(p.Y-tt.chart[i].Y) > 1e-9 {
				t.Errorf("size %d: chart point %d = %v, want %v", tt.size, i, p, tt.chart[i])
			}
		}
	}
}

func TestNewLayoutBars(t *testing.T) {
	l := NewLayout(128)
	width, gap, height := 128/6, 128/12, 128/16
	bottom := float64(128 - l.Margin)

	for i, bar := range l.Bars {
		wantX := float64(l.Margin + i*(width+gap))
		if bar.Min.X != wantX || bar.Dx() != float64(width) {
			t.Errorf("bar %d spans x %v..%v, want %v wide from %v", i, bar.Min.X, bar.Max.X, width, wantX)
		}
		if bar.Max.Y != bottom || bar.Dy() != float64(height) {
			t.Errorf("bar %d spans y %v..%v, want %v high ending at %v", i, bar.Min.Y, bar.Max.Y, height, bottom)
		}
	}
}

func TestNewLayoutNonNegative(t *testing.T) {
	for size := MinSize; size <= 64; size++ {
		l := NewLayout(size)
		for _, v := range []int{l.CornerRadius, l.Margin, l.ChartTop, l.ChartHeight, l.LineWidth, l.DotRadius, l.BarRadius} {
			if v < 0 {
				t.Fatalf("size %d: negative dimension in %+v", size, l)
			}
		}
		for _, p := range l.Chart {
			if p.X < 0 || p.Y < 0 {
				t.Fatalf("size %d: chart point %v out of range", size, p)
			}
		}
	}
}

func TestGradientEnds(t *testing.T) {
	if got := Gradient(0, 128); got != GradientTop {
		t.Errorf("top row = %v, want %v", got, GradientTop)
	}
	last := Gradient(127, 128)
	if last.R >= GradientBottom.R+1 || last.R < GradientBottom.R-1 {
		t.Errorf("bottom row red = %d, want about %d", last.R, GradientBottom.R)
	}
	if last.A != 255 {
		t.Errorf("bottom row alpha = %d, want 255", last.A)
	}
}

func TestValidateSize(t *testing.T) {
	tests := []struct {
		size int
		ok   bool
	}{
		{0, false},
		{-5, false},
		{MinSize, true},
		{16, true},
		{MaxSize, true},
		{MaxSize + 1, false},
	}
	for _, tt := range tests {
		err := ValidateSize(tt.size)
		if tt.ok && err != nil {
			t.Errorf("ValidateSize(%d) = %v, want nil", tt.size, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidSize) {
			t.Errorf("ValidateSize(%d) = %v, want ErrInvalidSize", tt.size, err)
		}
	}
}
