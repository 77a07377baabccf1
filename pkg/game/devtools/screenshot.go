package devtools

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/leonelquinteros/gotext"

	"citygrid/pkg/engine/world"
	"citygrid/pkg/game/renderer"
	"citygrid/pkg/game/views"
)

// dynamicGet is used for runtime translation key lookups.
// Using a variable avoids go vet's non-constant format string check.
var dynamicGet = gotext.Get

// SaveScreenshotHTML writes both views as a standalone HTML page. Hovering a
// cell of the color view shows the same label as the interactive renderers.
func SaveScreenshotHTML(w io.Writer, grid *world.Grid, v *views.Views, scale renderer.ThermalScale) error {
	if grid == nil || v == nil {
		return views.ErrNilGrid
	}
	probe := renderer.NewProbe(grid, v)
	unit := dynamicGet(renderer.LabelUnit)

	var page strings.Builder
	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>City Grid - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            vertical-align: top;
            margin: 20px 20px 20px 0;
        }
        .map-row { display: flex; }
        .cell { width: 16px; height: 16px; }
        .colorbar { display: inline-block; vertical-align: top; margin: 20px 0; }
        .tick { font-size: 12px; }
    </style>
</head>
<body>
`)

	page.WriteString(fmt.Sprintf(`    <div class="header">%dx%d, overall %.2f %s</div>`+"\n",
		v.Rows(), v.Cols(), v.Overall, html.EscapeString(unit)))

	writeMapHTML(&page, dynamicGet(renderer.TitleColorView), v, func(row, col int) (string, string) {
		c := v.Color[row][col].RGB()
		label, _ := probe.LabelAtCell(row, col)
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), dynamicGet(label)
	})
	writeMapHTML(&page, dynamicGet(renderer.TitleThermalView), v, func(row, col int) (string, string) {
		t := v.Thermal[row][col]
		c := scale.Color(t)
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), fmt.Sprintf("%.2f %s", t, unit)
	})

	// Colorbar, hot end on top
	page.WriteString(`    <div class="colorbar">` + "\n")
	ticks := scale.Ticks(7)
	for i := len(ticks) - 1; i >= 0; i-- {
		c := scale.Color(ticks[i])
		page.WriteString(fmt.Sprintf(`        <div class="tick"><span class="cell" style="display:inline-block;background:#%02x%02x%02x"></span> %g</div>`+"\n",
			c.R, c.G, c.B, ticks[i]))
	}
	page.WriteString(`    </div>` + "\n")

	page.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, page.String())
	return err
}

// writeMapHTML writes one view panel; at returns the CSS color and hover title of a cell
func writeMapHTML(page *strings.Builder, title string, v *views.Views, at func(row, col int) (string, string)) {
	page.WriteString(`    <div class="map-container">` + "\n")
	page.WriteString(fmt.Sprintf(`        <div class="header">%s</div>`+"\n", html.EscapeString(title)))
	for row := 0; row < v.Rows(); row++ {
		page.WriteString(`        <div class="map-row">`)
		for col := 0; col < v.Cols(); col++ {
			bg, label := at(row, col)
			page.WriteString(fmt.Sprintf(`<span class="cell" style="background:%s" title="%s"></span>`, bg, html.EscapeString(label)))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")
}
