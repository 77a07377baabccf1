package renderer

import (
	"image/color"

	"citygrid/pkg/game/views"
)

// ColorPixels returns the color view as opaque RGBA bytes, one pixel per cell,
// row-major. Window backends scale the result up to the tile size.
func ColorPixels(v *views.Views) []byte {
	return pixels(v, func(row, col int) color.RGBA {
		c := v.Color[row][col].RGB()
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	})
}

// ThermalPixels returns the thermal view mapped through scale as RGBA bytes
func ThermalPixels(v *views.Views, scale ThermalScale) []byte {
	return pixels(v, func(row, col int) color.RGBA {
		return scale.Color(v.Thermal[row][col])
	})
}

// ColorbarPixels returns a one pixel wide, height tall strip of the scale with
// Max at the top
func ColorbarPixels(scale ThermalScale, height int) []byte {
	if height <= 0 {
		return nil
	}
	pix := make([]byte, 0, 4*height)
	for i := 0; i < height; i++ {
		f := 1.0
		if height > 1 {
			f = 1 - float64(i)/float64(height-1)
		}
		c := HotR(f)
		pix = append(pix, c.R, c.G, c.B, c.A)
	}
	return pix
}

func pixels(v *views.Views, at func(row, col int) color.RGBA) []byte {
	if v == nil {
		return nil
	}
	rows, cols := v.Rows(), v.Cols()
	pix := make([]byte, 0, 4*rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := at(row, col)
			pix = append(pix, c.R, c.G, c.B, c.A)
		}
	}
	return pix
}
