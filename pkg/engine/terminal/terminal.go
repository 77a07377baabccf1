package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// PanelsFit reports whether count panels of panelWidth columns, separated by
// gap columns, fit on one line of a terminal width columns wide
func PanelsFit(width, panelWidth, count, gap int) bool {
	if count <= 0 {
		return true
	}
	return panelWidth*count+gap*(count-1) <= width
}
