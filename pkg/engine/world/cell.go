// Package world provides the 2D city block primitives: cells, the items placed
// on them and the grid that owns both.
package world

import "math"

// DefaultThermal is the thermal value of a cell with nothing placed on it
const DefaultThermal = 25.0

// NamedColor pairs a normalized color with the name shown for it
type NamedColor struct {
	Color Color
	Name  string
}

// Cell represents a single block in the grid
type Cell struct {
	// Grid position
	Row int
	Col int

	// Category is fixed at construction
	Category Category

	items      []*Item
	background RGB
}

// NewCell creates a new empty cell. The background color is derived from the
// category once and never recomputed.
func NewCell(row, col int, category Category) *Cell {
	return &Cell{
		Row:        row,
		Col:        col,
		Category:   category,
		background: category.Background(),
	}
}

// AddItem places an item on the cell, after any already placed
func (c *Cell) AddItem(item *Item) {
	if c == nil || item == nil {
		return
	}
	c.items = append(c.items, item)
}

// Items returns the placed items in placement order
func (c *Cell) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount returns the number of placed items
func (c *Cell) ItemCount() int {
	return len(c.items)
}

// IsEmpty returns true if nothing has been placed on the cell
func (c *Cell) IsEmpty() bool {
	return len(c.items) == 0
}

// Background returns the category-derived background color
func (c *Cell) Background() RGB {
	return c.background
}

// AggregateColor returns the mean normalized color of the placed items, or the
// normalized background when the cell is empty
func (c *Cell) AggregateColor() Color {
	colors := make([]Color, 0, len(c.items))
	for _, item := range c.items {
		colors = append(colors, item.Normalized())
	}
	if mean, ok := MeanColor(colors); ok {
		return mean
	}
	return c.background.Normalized()
}

// AggregateThermal returns the mean thermal value of the placed items, or
// DefaultThermal when the cell is empty
func (c *Cell) AggregateThermal() float64 {
	if len(c.items) == 0 {
		return DefaultThermal
	}
	sum := 0.0
	for _, item := range c.items {
		sum += item.Thermal()
	}
	return sum / float64(len(c.items))
}

// ItemNames returns one (color, name) pair per placed item in placement order.
// An empty cell yields its background paired with the category display name.
// Items sharing a color are all kept; lookups resolve to the first.
func (c *Cell) ItemNames() []NamedColor {
	if len(c.items) == 0 {
		return []NamedColor{{Color: c.background.Normalized(), Name: c.Category.DisplayName()}}
	}
	names := make([]NamedColor, 0, len(c.items))
	for _, item := range c.items {
		names = append(names, NamedColor{Color: item.Normalized(), Name: item.Name()})
	}
	return names
}

// NearestName returns the name whose color is closest to the given color.
// Ties go to the earliest pair; an empty name means nothing matched.
func (c *Cell) NearestName(color Color) string {
	return NearestName(c.ItemNames(), color)
}

// NearestName returns the name of the pair closest to color by Euclidean
// distance, preferring the first pair on ties
func NearestName(names []NamedColor, color Color) string {
	closest := ""
	minDiff := math.Inf(1)
	for _, nc := range names {
		diff := color.Distance(nc.Color)
		if diff < minDiff {
			minDiff = diff
			closest = nc.Name
		}
	}
	return closest
}
