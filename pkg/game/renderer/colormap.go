package renderer

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Default bounds of the thermal color scale
const (
	DefaultThermalMin = -30.0
	DefaultThermalMax = 30.0
)

// hotStop is one control color of the hot colormap at position x
type hotStop struct {
	x float64
	c colorful.Color
}

// Control colors of the "hot" colormap: black through red and yellow to white.
// Each channel is piecewise linear between consecutive stops.
var hotStops = []hotStop{
	{0, colorful.Color{R: 0.0416, G: 0, B: 0}},
	{0.365079, colorful.Color{R: 1, G: 0, B: 0}},
	{0.746032, colorful.Color{R: 1, G: 1, B: 0}},
	{1, colorful.Color{R: 1, G: 1, B: 1}},
}

// ThermalScale maps thermal values onto the reversed hot colormap: the low end
// of the scale is white, the high end dark red. Values outside [Min, Max] clamp.
type ThermalScale struct {
	Min float64
	Max float64
}

// DefaultThermalScale returns the fixed -30..30 scale
func DefaultThermalScale() ThermalScale {
	return ThermalScale{Min: DefaultThermalMin, Max: DefaultThermalMax}
}

// Normalize maps t to [0,1] within the scale
func (s ThermalScale) Normalize(t float64) float64 {
	if s.Max <= s.Min {
		return 0
	}
	return clamp01((t - s.Min) / (s.Max - s.Min))
}

// Color returns the display color for a thermal value
func (s ThermalScale) Color(t float64) color.RGBA {
	return HotR(s.Normalize(t))
}

// Ticks returns n evenly spaced values from Min to Max inclusive, for colorbar labels
func (s ThermalScale) Ticks(n int) []float64 {
	if n < 2 {
		return []float64{s.Min}
	}
	ticks := make([]float64, n)
	step := (s.Max - s.Min) / float64(n-1)
	for i := range ticks {
		ticks[i] = s.Min + step*float64(i)
	}
	ticks[n-1] = s.Max
	return ticks
}

// Hot returns the hot colormap color at x in [0,1]
func Hot(x float64) color.RGBA {
	r, g, b := interpolate(hotStops, clamp01(x)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HotR returns the reversed hot colormap color at x in [0,1]
func HotR(x float64) color.RGBA {
	return Hot(1 - clamp01(x))
}

func interpolate(stops []hotStop, x float64) colorful.Color {
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if x <= hi.x {
			if hi.x == lo.x {
				return hi.c
			}
			return lo.c.BlendRgb(hi.c, (x-lo.x)/(hi.x-lo.x))
		}
	}
	return stops[len(stops)-1].c
}

func clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
