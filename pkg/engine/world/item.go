package world

// Item represents an object placed on a cell. Items are immutable once created.
type Item struct {
	name    string
	color   RGB
	thermal float64
}

// NewItem creates a new item with the given name, color and thermal contribution
func NewItem(name string, color RGB, thermal float64) *Item {
	return &Item{name: name, color: color, thermal: thermal}
}

// NewTreeItem creates the tree placed by the city block generator
func NewTreeItem() *Item {
	return NewItem(TreeItemName, TreeItemColor, TreeItemThermal)
}

// Tree item constants
const (
	TreeItemName    = "Tree"
	TreeItemThermal = -1.0
)

// TreeItemColor is the color of a placed tree
var TreeItemColor = RGB{0, 128, 0}

// Name returns the item name
func (i *Item) Name() string {
	return i.name
}

// Color returns the item's 8-bit color
func (i *Item) Color() RGB {
	return i.color
}

// Normalized returns the item's color scaled to [0,1]
func (i *Item) Normalized() Color {
	return i.color.Normalized()
}

// Thermal returns the item's thermal contribution
func (i *Item) Thermal() float64 {
	return i.thermal
}
