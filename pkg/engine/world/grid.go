package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrInvalidDimension is returned when a grid is requested with negative rows or cols
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Grid represents the city map with encapsulated cell storage
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates a grid with the given dimensions. Every position is filled
// with an empty cell of the given category; generators replace them via SetCell.
// Zero rows or cols yields an empty grid.
func NewGrid(rows, cols int, fill Category) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}

	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]*Cell, rows)
	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = NewCell(row, col, fill)
		}
	}
	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total number of cells
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if g == nil || !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// SetCell stores cell at its own position. Returns false if the cell is nil
// or its position lies outside the grid.
func (g *Grid) SetCell(cell *Cell) bool {
	if cell == nil || !g.IsValidPosition(cell.Row, cell.Col) {
		return false
	}
	g.cells[cell.Row][cell.Col] = cell
	return true
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// CountByCategory returns how many cells carry each category
func (g *Grid) CountByCategory() map[Category]int {
	counts := make(map[Category]int, len(AllCategories()))
	g.ForEachCell(func(row, col int, cell *Cell) {
		counts[cell.Category]++
	})
	return counts
}

// Categories returns the set of categories present on the grid
func (g *Grid) Categories() mapset.Set[Category] {
	present := mapset.New[Category]()
	g.ForEachCell(func(row, col int, cell *Cell) {
		present.Put(cell.Category)
	})
	return present
}

// Validate checks that every position holds a cell at its own coordinates.
// Returns an error description or empty string if valid.
func (g *Grid) Validate() string {
	if g.rows < 0 || g.cols < 0 {
		return "Grid has invalid dimensions"
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row][col]
			if cell == nil {
				return fmt.Sprintf("Grid has no cell at %d:%d", row, col)
			}
			if cell.Row != row || cell.Col != col {
				return fmt.Sprintf("Cell at %d:%d reports position %d:%d", row, col, cell.Row, cell.Col)
			}
		}
	}
	return ""
}
