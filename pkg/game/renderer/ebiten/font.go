package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts creates the face sources from the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	e.sansFontSource = sans
	e.sansBoldFontSource = bold
	e.cachedSansFace = nil
	e.cachedTitleFace = nil
	return nil
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   uiFontSize,
		}
	}
	return e.cachedSansFace
}

// getTitleFontFace returns a cached bold face for panel titles
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	if e.cachedTitleFace == nil {
		e.cachedTitleFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   titleFontSize,
		}
	}
	return e.cachedTitleFace
}
