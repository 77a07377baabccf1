package ebiten

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"citygrid/pkg/game/renderer"
)

// Draw renders both panels, the colorbar and the tooltip (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.views == nil || e.sansFontSource == nil {
		return
	}
	if e.colorImage == nil {
		e.buildImages()
	}

	e.drawPanel(screen, e.colorImage, e.layout.ColorPanel(), dynamicGet(renderer.TitleColorView))
	e.drawPanel(screen, e.thermalImage, e.layout.ThermalPanel(), dynamicGet(renderer.TitleThermalView))
	e.drawColorbar(screen)
	e.drawTooltip(screen)
}

// buildImages uploads the views as one pixel per cell images. Images are
// created lazily because the graphics driver is only ready inside the game loop.
func (e *EbitenRenderer) buildImages() {
	rows, cols := e.views.Rows(), e.views.Cols()
	if rows > 0 && cols > 0 {
		e.colorImage = ebiten.NewImage(cols, rows)
		e.colorImage.WritePixels(renderer.ColorPixels(e.views))
		e.thermalImage = ebiten.NewImage(cols, rows)
		e.thermalImage.WritePixels(renderer.ThermalPixels(e.views, e.scale))
	}

	height := e.layout.Colorbar().Dy()
	e.colorbarImage = ebiten.NewImage(1, height)
	e.colorbarImage.WritePixels(renderer.ColorbarPixels(e.scale, height))
}

// drawPanel draws a view image scaled to the tile size, its border and title
func (e *EbitenRenderer) drawPanel(screen, img *ebiten.Image, rect image.Rectangle, title string) {
	if img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(e.layout.Tile), float64(e.layout.Tile))
		op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
		screen.DrawImage(img, op)
	}
	strokeRect(screen, rect)

	face := e.getTitleFontFace()
	_, h := measureText(title, face)
	drawText(screen, title, face, float64(rect.Min.X), float64(rect.Min.Y)-h-6, colorText)
}

// drawColorbar draws the thermal legend with tick labels and the unit
func (e *EbitenRenderer) drawColorbar(screen *ebiten.Image) {
	bar := e.layout.Colorbar()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bar.Dx()), 1)
	op.GeoM.Translate(float64(bar.Min.X), float64(bar.Min.Y))
	screen.DrawImage(e.colorbarImage, op)
	strokeRect(screen, bar)

	face := e.getSansFontFace()
	for _, tick := range e.scale.Ticks(colorbarTicks) {
		y := float32(bar.Max.Y) - float32(e.scale.Normalize(tick))*float32(bar.Dy())
		x := float32(bar.Max.X)
		vector.StrokeLine(screen, x, y, x+tickLength, y, 1, colorBorder, false)

		label := fmt.Sprintf("%g", tick)
		_, h := measureText(label, face)
		drawText(screen, label, face, float64(x+tickLength+2), float64(y)-h/2, colorText)
	}

	unit := dynamicGet(renderer.LabelUnit)
	_, h := measureText(unit, face)
	drawText(screen, unit, face, float64(bar.Min.X), float64(bar.Min.Y)-h-6, colorText)
}

// drawTooltip draws the hover label next to the cursor, kept inside the window
func (e *EbitenRenderer) drawTooltip(screen *ebiten.Image) {
	if !e.tooltip.visible {
		return
	}
	face := e.getSansFontFace()
	w, h := measureText(e.tooltip.label, face)
	boxW := w + 2*tooltipPadding
	boxH := h + 2*tooltipPadding

	x := float64(e.tooltip.x + tooltipOffset)
	y := float64(e.tooltip.y + tooltipOffset)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if x+boxW > float64(sw) {
		x = float64(e.tooltip.x) - tooltipOffset - boxW
	}
	if y+boxH > float64(sh) {
		y = float64(e.tooltip.y) - tooltipOffset - boxH
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), colorTooltipBg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 1, colorBorder, false)
	drawText(screen, e.tooltip.label, face, x+tooltipPadding, y+tooltipPadding, colorText)
}

func strokeRect(screen *ebiten.Image, r image.Rectangle) {
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, colorBorder, false)
}
