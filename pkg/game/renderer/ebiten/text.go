package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawText draws s with its top-left corner at (x, y)
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// measureText returns the pixel size of s in face
func measureText(s string, face *text.GoTextFace) (w, h float64) {
	return text.Measure(s, face, face.Size*1.2)
}
