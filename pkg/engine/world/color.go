package world

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color as authored on items and backgrounds
type RGB struct {
	R, G, B uint8
}

// Normalized returns the color scaled to [0,1] per channel
func (c RGB) Normalized() Color {
	return Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Color is a normalized RGB triple with each channel in [0,1]
type Color colorful.Color

// Distance returns the Euclidean distance between two normalized colors
func (c Color) Distance(other Color) float64 {
	return colorful.Color(c).DistanceRgb(colorful.Color(other))
}

// RGB converts a normalized color back to 8-bit channels, clamping out of range values
func (c Color) RGB() RGB {
	r, g, b := colorful.Color(c).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// MeanColor returns the component-wise arithmetic mean of the given colors.
// The second return value is false when colors is empty.
func MeanColor(colors []Color) (Color, bool) {
	if len(colors) == 0 {
		return Color{}, false
	}
	var sum Color
	for _, c := range colors {
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
	}
	n := float64(len(colors))
	return Color{R: sum.R / n, G: sum.G / n, B: sum.B / n}, true
}
