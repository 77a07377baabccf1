package renderer

import (
	"image"
	"testing"
)

func TestLayout_PanelsDoNotOverlap(t *testing.T) {
	l := NewLayout(10, 10, 24)
	c, th, bar := l.ColorPanel(), l.ThermalPanel(), l.Colorbar()
	if c.Overlaps(th) || th.Overlaps(bar) {
		t.Errorf("panels overlap: color %v thermal %v colorbar %v", c, th, bar)
	}
	if c.Dx() != 240 || c.Dy() != 240 {
		t.Errorf("ColorPanel size = %dx%d, want 240x240", c.Dx(), c.Dy())
	}
	if th.Size() != c.Size() {
		t.Errorf("ThermalPanel size = %v, want %v", th.Size(), c.Size())
	}
	w, h := l.Size()
	if !image.Rect(0, 0, w, h).In(image.Rect(0, 0, w, h)) || w <= bar.Max.X || h <= bar.Max.Y {
		t.Errorf("Size() = %dx%d does not contain colorbar %v", w, h, bar)
	}
}

func TestLayout_PointerToCells(t *testing.T) {
	l := NewLayout(3, 4, 20)
	origin := l.ColorPanel().Min

	x, y := l.PointerToCells(origin.X+30, origin.Y+45)
	if x != 1.5 || y != 2.25 {
		t.Errorf("PointerToCells = (%v,%v), want (1.5,2.25)", x, y)
	}

	x, y = l.PointerToCells(origin.X-1, origin.Y)
	if x >= 0 {
		t.Errorf("pointer left of panel gave x = %v, want negative", x)
	}
	if y != 0 {
		t.Errorf("y = %v, want 0", y)
	}

	if x, y := (Layout{}).PointerToCells(5, 5); x >= 0 || y >= 0 {
		t.Errorf("zero tile layout gave (%v,%v), want negative", x, y)
	}
}

func TestLayout_ShortMapKeepsColorbarReadable(t *testing.T) {
	l := NewLayout(1, 5, 10)
	if got := l.Colorbar().Dy(); got != 100 {
		t.Errorf("Colorbar height = %d, want 100", got)
	}
}

func TestFitTile(t *testing.T) {
	tests := []struct {
		name                          string
		rows, cols, maxTile, maxPanel int
		want                          int
	}{
		{"small map keeps max tile", 10, 10, 24, 600, 24},
		{"large map shrinks", 200, 100, 24, 600, 3},
		{"huge map floors at one", 2000, 2000, 24, 600, 1},
		{"empty map", 0, 0, 24, 600, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitTile(tt.rows, tt.cols, tt.maxTile, tt.maxPanel); got != tt.want {
				t.Errorf("FitTile(%d, %d, %d, %d) = %d, want %d",
					tt.rows, tt.cols, tt.maxTile, tt.maxPanel, got, tt.want)
			}
		})
	}
}
