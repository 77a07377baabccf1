package renderer

import "image"

// Layout positions the color panel, the thermal panel and its colorbar in
// pixel space for window backends
type Layout struct {
	Rows          int
	Cols          int
	Tile          int // pixels per map cell
	Margin        int
	TitleHeight   int
	ColorbarWidth int
	LabelWidth    int // room for colorbar tick labels
}

// NewLayout creates a layout for a rows x cols map with the given tile size
func NewLayout(rows, cols, tile int) Layout {
	return Layout{
		Rows:          rows,
		Cols:          cols,
		Tile:          tile,
		Margin:        24,
		TitleHeight:   32,
		ColorbarWidth: 16,
		LabelWidth:    48,
	}
}

// panelSize returns the pixel size of one map panel
func (l Layout) panelSize() (w, h int) {
	return l.Cols * l.Tile, l.Rows * l.Tile
}

// ColorPanel returns the rectangle of the color view
func (l Layout) ColorPanel() image.Rectangle {
	w, h := l.panelSize()
	x := l.Margin
	y := l.Margin + l.TitleHeight
	return image.Rect(x, y, x+w, y+h)
}

// ThermalPanel returns the rectangle of the thermal view
func (l Layout) ThermalPanel() image.Rectangle {
	c := l.ColorPanel()
	return c.Add(image.Pt(c.Dx()+l.Margin*2, 0))
}

// Colorbar returns the rectangle of the thermal colorbar, right of the thermal
// panel and spanning its height (at least ten tiles' worth of pixels)
func (l Layout) Colorbar() image.Rectangle {
	t := l.ThermalPanel()
	h := t.Dy()
	if min := 10 * l.Tile; h < min {
		h = min
	}
	x := t.Max.X + l.Margin
	return image.Rect(x, t.Min.Y, x+l.ColorbarWidth, t.Min.Y+h)
}

// Size returns the window size needed to show everything
func (l Layout) Size() (w, h int) {
	bar := l.Colorbar()
	return bar.Max.X + l.LabelWidth + l.Margin, bar.Max.Y + l.Margin
}

// PointerToCells converts a pointer pixel position into cell units relative
// to the color panel. Positions left of or above the panel come out negative.
func (l Layout) PointerToCells(px, py int) (x, y float64) {
	if l.Tile <= 0 {
		return -1, -1
	}
	c := l.ColorPanel()
	return float64(px-c.Min.X) / float64(l.Tile), float64(py-c.Min.Y) / float64(l.Tile)
}

// FitTile picks the largest tile size up to maxTile that keeps a rows x cols
// panel within maxPanel pixels on its longer side. The result is at least 1.
func FitTile(rows, cols, maxTile, maxPanel int) int {
	tile := maxTile
	if longest := max(rows, cols); longest > 0 && maxPanel > 0 {
		if fit := maxPanel / longest; fit < tile {
			tile = fit
		}
	}
	if tile < 1 {
		tile = 1
	}
	return tile
}
