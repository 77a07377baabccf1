// Package renderer defines the rendering boundary: the Renderer interface
// backends implement, the hover probe and the shared thermal color scale.
package renderer

import (
	"citygrid/pkg/engine/world"
	"citygrid/pkg/game/views"
)

// Renderer defines the interface for map rendering backends.
// Implementations include TUI (terminal) and Ebiten (window).
type Renderer interface {
	// Init prepares the backend (colors, fonts, window, translations)
	Init() error

	// Render displays the color and thermal views side by side and serves
	// hover queries until the user is done. It never mutates grid or v.
	Render(v *views.Views, grid *world.Grid) error

	// Name returns the backend name used in configuration
	Name() string
}

// Labels shown by every backend. They double as gettext keys.
const (
	TitleColorView   = "RGB View"
	TitleThermalView = "Thermal View"
	LabelEmpty       = "Empty"
	LabelUnit        = "°C"
)
