package world

// Category is the fixed type label of a cell
type Category int

// Category constants. Tree doubles as the "other" category: anything that is
// neither a house nor a road falls back to its background and label.
const (
	House Category = iota
	Road
	Tree
)

// Background colors per category, used when a cell carries no items
var (
	BackgroundHouse = RGB{255, 255, 255}
	BackgroundRoad  = RGB{128, 128, 128}
	BackgroundOther = RGB{0, 0, 0}
)

// AllCategories returns all valid categories for iteration
func AllCategories() []Category {
	return []Category{House, Road, Tree}
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case House:
		return "House"
	case Road:
		return "Road"
	case Tree:
		return "Tree"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the category is one of the known categories
func (c Category) IsValid() bool {
	return c >= House && c <= Tree
}

// Background returns the color a cell of this category shows when empty
func (c Category) Background() RGB {
	switch c {
	case House:
		return BackgroundHouse
	case Road:
		return BackgroundRoad
	default:
		return BackgroundOther
	}
}

// DisplayName returns the label shown for an empty cell of this category.
// Renderers pass it through gettext, so it also serves as the translation key.
func (c Category) DisplayName() string {
	switch c {
	case House:
		return "house"
	case Road:
		return "road"
	default:
		return "tree"
	}
}

// Glyph returns the single-character symbol used in layouts and dumps
func (c Category) Glyph() rune {
	switch c {
	case House:
		return 'H'
	case Road:
		return 'R'
	default:
		return 'T'
	}
}
