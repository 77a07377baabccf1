package views

import "citygrid/pkg/engine/world"

// Overall thermal constants
const (
	ThermalBaseline = 10.0 // Seed of the overall thermal accumulator
	FallbackThermal = 25.0 // Returned when no cell contributes
)

// OverallThermal averages the aggregate thermal of every non-road cell, with
// ThermalBaseline added to the running total. Roads take their thermal from
// this value and so never contribute to it. A grid without contributing cells
// yields FallbackThermal.
func OverallThermal(grid *world.Grid) float64 {
	if grid == nil {
		return FallbackThermal
	}

	total := ThermalBaseline
	count := 0
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.Category == world.Road {
			return
		}
		total += cell.AggregateThermal()
		count++
	})

	if count == 0 {
		return FallbackThermal
	}
	return total / float64(count)
}
