// Package ebiten provides an Ebiten-based window renderer for city maps.
// Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	"citygrid/pkg/engine/world"
	"citygrid/pkg/game/renderer"
	"citygrid/pkg/game/views"
)

// dynamicGet is used for runtime translation key lookups.
var dynamicGet = gotext.Get

// EbitenRenderer shows the color and thermal views in a window with a hover tooltip
type EbitenRenderer struct {
	maxTileSize int
	scale       renderer.ThermalScale
	logger      *slog.Logger

	sansFontSource     *text.GoTextFaceSource // UI text and tooltip
	sansBoldFontSource *text.GoTextFaceSource // panel titles
	cachedSansFace     *text.GoTextFace
	cachedTitleFace    *text.GoTextFace

	layout renderer.Layout
	views  *views.Views
	probe  *renderer.Probe

	colorImage    *ebiten.Image
	thermalImage  *ebiten.Image
	colorbarImage *ebiten.Image

	tooltip            tooltip
	windowOpenedLogged bool
}

// tooltip is the hover label state computed in Update and drawn in Draw
type tooltip struct {
	visible bool
	label   string
	x, y    int // cursor position in screen pixels
}

// New creates an Ebiten renderer. maxTileSize caps the pixel size of one map cell.
func New(maxTileSize int, scale renderer.ThermalScale, logger *slog.Logger) *EbitenRenderer {
	if maxTileSize <= 0 {
		maxTileSize = defaultTileSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EbitenRenderer{
		maxTileSize: maxTileSize,
		scale:       scale,
		logger:      logger,
	}
}

// Name returns the backend name
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Init loads fonts. It does not open the window.
func (e *EbitenRenderer) Init() error {
	return e.loadFonts()
}

// Render opens the window and blocks until it is closed or Esc is pressed
func (e *EbitenRenderer) Render(v *views.Views, grid *world.Grid) error {
	if v == nil || grid == nil {
		return views.ErrNilGrid
	}
	if e.sansFontSource == nil {
		if err := e.Init(); err != nil {
			return err
		}
	}

	e.views = v
	e.probe = renderer.NewProbe(grid, v)
	tile := renderer.FitTile(v.Rows(), v.Cols(), e.maxTileSize, maxPanelSize)
	e.layout = renderer.NewLayout(v.Rows(), v.Cols(), tile)

	w, h := e.layout.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(dynamicGet(windowTitle))
	e.logger.Debug("starting window", "width", w, "height", h, "tile", tile)

	return ebiten.RunGame(e)
}
