package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.logger.Info("window opened", "width", w, "height", h)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	e.updateTooltip(ebiten.CursorPosition())
	return nil
}

// updateTooltip resolves the label under the cursor. Only the color panel
// answers hover; anywhere else hides the tooltip.
func (e *EbitenRenderer) updateTooltip(cx, cy int) {
	x, y := e.layout.PointerToCells(cx, cy)
	label, ok := e.probe.LabelAt(x, y)
	if ok {
		label = dynamicGet(label)
	}
	e.tooltip = tooltip{visible: ok, label: label, x: cx, y: cy}
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.layout.Size()
}
