package ebiten

import "image/color"

// Window palette
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorBorder     = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorTooltipBg  = color.RGBA{30, 30, 50, 230}    // Semi-transparent dark
)

const (
	windowTitle     = "City Grid"
	defaultTileSize = 24
	maxPanelSize    = 600 // longest side of one map panel, in pixels

	uiFontSize    = 13.0
	titleFontSize = 16.0

	colorbarTicks  = 7
	tickLength     = 4
	tooltipPadding = 6
	tooltipOffset  = 14 // distance from cursor to tooltip corner
)
