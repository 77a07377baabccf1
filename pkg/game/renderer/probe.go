package renderer

import (
	"math"

	"citygrid/pkg/engine/world"
	"citygrid/pkg/game/views"
)

// Probe answers hover queries for a rendered map. It only reads the grid and views.
type Probe struct {
	grid  *world.Grid
	views *views.Views
}

// NewProbe creates a probe over a grid and the views generated from it
func NewProbe(grid *world.Grid, v *views.Views) *Probe {
	return &Probe{grid: grid, views: v}
}

// CellAt converts a pointer position in cell units into grid coordinates.
// Cell (row, col) covers [col, col+1) horizontally and [row, row+1) vertically.
func CellAt(x, y float64) (row, col int) {
	return int(math.Floor(y)), int(math.Floor(x))
}

// LabelAt returns the name of the item closest in color to the cell under the
// pointer. The second return value is false when the pointer is outside the
// map, in which case the tooltip should be hidden.
func (p *Probe) LabelAt(x, y float64) (string, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return "", false
	}
	row, col := CellAt(x, y)
	return p.LabelAtCell(row, col)
}

// LabelAtCell is LabelAt for integer cell coordinates
func (p *Probe) LabelAtCell(row, col int) (string, bool) {
	if p == nil || p.views == nil || !p.views.InBounds(row, col) {
		return "", false
	}
	cell := p.grid.GetCell(row, col)
	if cell == nil {
		return "", false
	}
	name := cell.NearestName(p.views.Color[row][col])
	if name == "" {
		name = LabelEmpty
	}
	return name, true
}
