// Package views projects a populated grid into the dense arrays handed to
// renderers: one color view and one thermal view, both indexed [row][col].
package views

import (
	"errors"

	"citygrid/pkg/engine/world"
)

// ErrNilGrid is returned when views are requested for a missing grid
var ErrNilGrid = errors.New("nil grid")

// Views holds the rendered projections of a grid
type Views struct {
	Color   [][]world.Color // normalized RGB per cell
	Thermal [][]float64
	Overall float64 // thermal shown on road cells
}

// Generate builds the color and thermal views. Road cells show overall on the
// thermal view; every other cell shows its own aggregate thermal.
func Generate(grid *world.Grid, overall float64) (*Views, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}

	rows, cols := grid.Rows(), grid.Cols()
	v := &Views{
		Color:   make([][]world.Color, rows),
		Thermal: make([][]float64, rows),
		Overall: overall,
	}
	for row := 0; row < rows; row++ {
		v.Color[row] = make([]world.Color, cols)
		v.Thermal[row] = make([]float64, cols)
	}

	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		v.Color[row][col] = cell.AggregateColor()
		if cell.Category == world.Road {
			v.Thermal[row][col] = overall
		} else {
			v.Thermal[row][col] = cell.AggregateThermal()
		}
	})

	return v, nil
}

// Rows returns the number of rows in the views
func (v *Views) Rows() int {
	return len(v.Thermal)
}

// Cols returns the number of columns in the views
func (v *Views) Cols() int {
	if len(v.Thermal) == 0 {
		return 0
	}
	return len(v.Thermal[0])
}

// InBounds reports whether row/col addresses a cell of the views
func (v *Views) InBounds(row, col int) bool {
	return row >= 0 && row < v.Rows() && col >= 0 && col < v.Cols()
}

// ThermalRange returns the smallest and largest thermal values in the view.
// An empty view returns overall for both.
func (v *Views) ThermalRange() (lo, hi float64) {
	lo, hi = v.Overall, v.Overall
	first := true
	for _, row := range v.Thermal {
		for _, t := range row {
			if first {
				lo, hi = t, t
				first = false
				continue
			}
			if t < lo {
				lo = t
			}
			if t > hi {
				hi = t
			}
		}
	}
	return lo, hi
}
