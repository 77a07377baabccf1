package renderer

import (
	"image/color"
	"testing"
)

func TestHot_Endpoints(t *testing.T) {
	if got, want := Hot(0), (color.RGBA{11, 0, 0, 255}); got != want {
		t.Errorf("Hot(0) = %v, want %v", got, want)
	}
	if got, want := Hot(1), (color.RGBA{255, 255, 255, 255}); got != want {
		t.Errorf("Hot(1) = %v, want %v", got, want)
	}
	if HotR(0) != Hot(1) || HotR(1) != Hot(0) {
		t.Error("HotR is not the reverse of Hot")
	}
}

func TestThermalScale_ClampsAndOrders(t *testing.T) {
	s := DefaultThermalScale()
	if s.Color(-30) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Color(-30) = %v, want white", s.Color(-30))
	}
	if s.Color(-100) != s.Color(-30) {
		t.Error("values below Min do not clamp")
	}
	if s.Color(100) != s.Color(30) {
		t.Error("values above Max do not clamp")
	}

	// Warmer values never get brighter
	brightness := func(c color.RGBA) int { return int(c.R) + int(c.G) + int(c.B) }
	prev := brightness(s.Color(-30))
	for temp := -29.0; temp <= 30; temp++ {
		b := brightness(s.Color(temp))
		if b > prev {
			t.Errorf("brightness rose from %d to %d at %v", prev, b, temp)
		}
		prev = b
	}
}

func TestThermalScale_Normalize(t *testing.T) {
	s := ThermalScale{Min: -30, Max: 30}
	tests := map[float64]float64{-30: 0, 0: 0.5, 30: 1, 60: 1, -60: 0}
	for in, want := range tests {
		if got := s.Normalize(in); got != want {
			t.Errorf("Normalize(%v) = %v, want %v", in, got, want)
		}
	}
	if got := (ThermalScale{Min: 5, Max: 5}).Normalize(5); got != 0 {
		t.Errorf("degenerate Normalize = %v, want 0", got)
	}
}

func TestThermalScale_Ticks(t *testing.T) {
	ticks := DefaultThermalScale().Ticks(7)
	want := []float64{-30, -20, -10, 0, 10, 20, 30}
	if len(ticks) != len(want) {
		t.Fatalf("len(Ticks(7)) = %d, want %d", len(ticks), len(want))
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("Ticks(7)[%d] = %v, want %v", i, ticks[i], want[i])
		}
	}
}

func TestHot_ControlColors(t *testing.T) {
	tests := []struct {
		x    float64
		want color.RGBA
	}{
		{0.365079, color.RGBA{255, 0, 0, 255}},
		{0.746032, color.RGBA{255, 255, 0, 255}},
		{-1, color.RGBA{11, 0, 0, 255}},
		{2, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := Hot(tt.x); got != tt.want {
			t.Errorf("Hot(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
