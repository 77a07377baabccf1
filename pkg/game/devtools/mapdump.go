// Package devtools provides developer tools for inspecting generated maps.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"citygrid/pkg/engine/world"
	"citygrid/pkg/game/generator"
	"citygrid/pkg/game/views"
)

// DumpMap writes a debug dump of grid and its views to w: metadata, legend,
// the glyph map and the thermal view matrix. The glyph map section is a valid
// layout for the fixed layout generator.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func DumpMap(w io.Writer, grid *world.Grid, v *views.Views) error {
	if grid == nil || v == nil {
		return views.ErrNilGrid
	}
	bw := bufio.NewWriter(w)

	rows, cols := grid.Rows(), grid.Cols()
	counts := grid.CountByCategory()
	items := 0
	grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		items += cell.ItemCount()
	})
	lo, hi := v.ThermalRange()

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (layout, aggregates, views) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "grid_rows: %d\n", rows)
	fmt.Fprintf(bw, "grid_cols: %d\n", cols)
	fmt.Fprintf(bw, "grid_cells: %d\n", grid.Size())
	fmt.Fprintf(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	for _, category := range world.AllCategories() {
		fmt.Fprintf(bw, "cells_%s: %d\n", category.DisplayName(), counts[category])
	}
	fmt.Fprintf(bw, "items_total: %d\n", items)
	fmt.Fprintf(bw, "overall_thermal: %.4f\n", v.Overall)
	fmt.Fprintf(bw, "thermal_range: %.4f..%.4f\n", lo, hi)
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell glyphs) ---")
	fmt.Fprintf(bw, "%c = house  %c = house with tree  %c = road  %c = tree  %c = bare tree cell\n",
		generator.GlyphHouse, generator.GlyphHouseWithTree, generator.GlyphRoad, generator.GlyphTree, generator.GlyphBareTree)
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			line.WriteRune(generator.LayoutGlyph(grid.GetCell(row, col)))
		}
		fmt.Fprintln(bw, line.String())
	}
	fmt.Fprintln(bw, "")

	// --- Thermal view ---
	fmt.Fprintln(bw, "--- Thermal view (°C, roads show overall) ---")
	for row := 0; row < v.Rows(); row++ {
		values := make([]string, len(v.Thermal[row]))
		for col, t := range v.Thermal[row] {
			values[col] = fmt.Sprintf("%7.2f", t)
		}
		fmt.Fprintln(bw, strings.Join(values, " "))
	}
	fmt.Fprintln(bw, "")

	// --- Items ---
	fmt.Fprintln(bw, "--- Items (row,col: names in placement order) ---")
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.IsEmpty() {
			return
		}
		names := make([]string, 0, cell.ItemCount())
		for _, item := range cell.Items() {
			names = append(names, item.Name())
		}
		fmt.Fprintf(bw, "  row: %d col: %d category: %s items: %s\n", row, col, cell.Category.DisplayName(), strings.Join(names, ", "))
	})

	return bw.Flush()
}
