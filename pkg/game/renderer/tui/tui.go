// Package tui renders the color and thermal views in a truecolor terminal and
// answers hover queries typed as "row col".
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"citygrid/pkg/engine/input"
	"citygrid/pkg/engine/terminal"
	"citygrid/pkg/engine/world"
	"citygrid/pkg/game/renderer"
	"citygrid/pkg/game/views"
)

// Layout constants, in terminal columns
const (
	CellWidth     = 2 // each map cell is drawn as two blank columns
	PanelGap      = 4
	ColorbarSteps = 30
	ColorbarTicks = 7
)

// queryPrompt asks for a hover position; it is a gettext key taking the last row and col
const queryPrompt = "row col (0..%d, 0..%d), q to quit> "

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since item and category names are looked up as keys at runtime.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	in    io.Reader
	scale renderer.ThermalScale
	width func() int

	colorTitle  color.Style
	colorAxis   color.Style
	colorLabel  color.Style
	colorSubtle color.Style
	colorDenied color.Style
	colorPrompt color.Style
}

// New creates a new TUI renderer writing to out. Hover queries are read from
// in; a nil in draws the views without entering the query loop.
func New(out io.Writer, in io.Reader, scale renderer.ThermalScale) *TUIRenderer {
	return &TUIRenderer{
		out:   out,
		in:    in,
		scale: scale,
		width: terminal.GetWidth,
	}
}

// Name returns the backend name
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorAxis = color.Style{color.FgGray}
	t.colorLabel = color.Style{color.FgBlack, color.BgWhite, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorPrompt = color.Style{color.FgMagenta}
	return nil
}

// Render draws both views and the colorbar, then serves hover queries
func (t *TUIRenderer) Render(v *views.Views, grid *world.Grid) error {
	if v == nil || grid == nil {
		return views.ErrNilGrid
	}

	t.printViews(v)
	t.printColorbar()
	t.printLegend(grid)

	// An empty map has nothing to hover over
	if t.in == nil || v.Rows() == 0 || v.Cols() == 0 {
		return nil
	}
	return t.queryLoop(renderer.NewProbe(grid, v), v)
}

// printViews prints the color and thermal panels, side by side when the
// terminal is wide enough and stacked otherwise
func (t *TUIRenderer) printViews(v *views.Views) {
	panelWidth := v.Cols() * CellWidth
	if panelWidth < len(renderer.TitleThermalView) {
		panelWidth = len(renderer.TitleThermalView)
	}

	colorTitle := dynamicGet(renderer.TitleColorView)
	thermalTitle := dynamicGet(renderer.TitleThermalView)

	if terminal.PanelsFit(t.width(), panelWidth, 2, PanelGap) {
		fmt.Fprintf(t.out, "%s%s%s\n",
			t.colorTitle.Sprint(padRight(colorTitle, panelWidth)),
			strings.Repeat(" ", PanelGap),
			t.colorTitle.Sprint(thermalTitle))
		for row := 0; row < v.Rows(); row++ {
			fmt.Fprintf(t.out, "%s%s%s\n",
				padRight(t.colorRow(v, row), panelWidth),
				strings.Repeat(" ", PanelGap),
				t.thermalRow(v, row))
		}
		fmt.Fprintln(t.out)
		return
	}

	fmt.Fprintln(t.out, t.colorTitle.Sprint(colorTitle))
	for row := 0; row < v.Rows(); row++ {
		fmt.Fprintln(t.out, t.colorRow(v, row))
	}
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorTitle.Sprint(thermalTitle))
	for row := 0; row < v.Rows(); row++ {
		fmt.Fprintln(t.out, t.thermalRow(v, row))
	}
	fmt.Fprintln(t.out)
}

// colorRow renders one row of the color view as background-colored blocks
func (t *TUIRenderer) colorRow(v *views.Views, row int) string {
	var b strings.Builder
	for _, c := range v.Color[row] {
		rgb := c.RGB()
		b.WriteString(color.RGB(rgb.R, rgb.G, rgb.B, true).Sprint(strings.Repeat(" ", CellWidth)))
	}
	return b.String()
}

// thermalRow renders one row of the thermal view through the thermal scale
func (t *TUIRenderer) thermalRow(v *views.Views, row int) string {
	var b strings.Builder
	for _, temp := range v.Thermal[row] {
		c := t.scale.Color(temp)
		b.WriteString(color.RGB(c.R, c.G, c.B, true).Sprint(strings.Repeat(" ", CellWidth)))
	}
	return b.String()
}

// printColorbar prints the thermal scale as a horizontal bar with tick labels
func (t *TUIRenderer) printColorbar() {
	var bar strings.Builder
	for i := 0; i < ColorbarSteps; i++ {
		temp := t.scale.Min + (t.scale.Max-t.scale.Min)*float64(i)/float64(ColorbarSteps-1)
		c := t.scale.Color(temp)
		bar.WriteString(color.RGB(c.R, c.G, c.B, true).Sprint(" "))
	}
	fmt.Fprintf(t.out, "%s %s\n", bar.String(), t.colorAxis.Sprint(dynamicGet(renderer.LabelUnit)))
	fmt.Fprintln(t.out, t.colorAxis.Sprint(tickLine(t.scale.Ticks(ColorbarTicks), ColorbarSteps)))
	fmt.Fprintln(t.out)
}

// printLegend lists the categories present on the map with their empty-cell
// swatch, in category order
func (t *TUIRenderer) printLegend(grid *world.Grid) {
	present := grid.Categories()
	if present.Size() == 0 {
		return
	}
	entries := make([]string, 0, present.Size())
	for _, category := range world.AllCategories() {
		if !present.Has(category) {
			continue
		}
		bg := category.Background()
		swatch := color.RGB(bg.R, bg.G, bg.B, true).Sprint(strings.Repeat(" ", CellWidth))
		entries = append(entries, dynamicGet(category.DisplayName())+":"+swatch)
	}
	fmt.Fprintf(t.out, "%s: %s\n\n", t.colorAxis.Sprint(dynamicGet("Legend")), strings.Join(entries, "  "))
}

// tickLine spreads tick labels across width columns
func tickLine(ticks []float64, width int) string {
	line := []byte(strings.Repeat(" ", width+4))
	for i, tick := range ticks {
		label := fmt.Sprintf("%g", tick)
		pos := 0
		if len(ticks) > 1 {
			pos = i * (width - 1) / (len(ticks) - 1)
		}
		if i == len(ticks)-1 && pos+len(label) > len(line) {
			pos = len(line) - len(label)
		}
		copy(line[pos:], label)
	}
	return strings.TrimRight(string(line), " ")
}

// queryLoop reads "row col" lines and prints the hover label for each until
// quit or end of input
func (t *TUIRenderer) queryLoop(probe *renderer.Probe, v *views.Views) error {
	reader := input.NewLineReader(t.in)
	for {
		fmt.Fprint(t.out, t.colorPrompt.Sprint(dynamicGet(queryPrompt, v.Rows()-1, v.Cols()-1)))

		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(t.out)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		q, err := input.ParseQuery(line)
		if err != nil {
			fmt.Fprintln(t.out, t.colorDenied.Sprint(err.Error()))
			continue
		}
		if q.Quit {
			return nil
		}

		fmt.Fprintln(t.out, t.describe(probe, q))
	}
}

// describe formats the tooltip for a query: the label when inside the map,
// a subtle notice when outside
func (t *TUIRenderer) describe(probe *renderer.Probe, q input.Query) string {
	label, ok := probe.LabelAt(q.X, q.Y)
	if !ok {
		return t.colorSubtle.Sprint(dynamicGet("(outside map)"))
	}
	return t.colorLabel.Sprint(" " + dynamicGet(label) + " ")
}

// padRight pads s with spaces to width visible columns, ignoring color codes
func padRight(s string, width int) string {
	visible := len([]rune(color.ClearCode(s)))
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
