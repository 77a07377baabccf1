package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"citygrid/pkg/engine/world"
	"citygrid/pkg/game/generator"
	"citygrid/pkg/game/renderer"
	"citygrid/pkg/game/views"
)

func renderLayout(t *testing.T, width int, queries string, layout ...string) string {
	t.Helper()
	gen := generator.NewLayoutGenerator(layout)
	rows, cols := gen.Dimensions()
	grid, _, err := gen.Generate(rows, cols)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	v, err := views.Generate(grid, views.OverallThermal(grid))
	if err != nil {
		t.Fatalf("views: %v", err)
	}

	var out bytes.Buffer
	var in *strings.Reader
	r := New(&out, nil, renderer.DefaultThermalScale())
	if queries != "" {
		in = strings.NewReader(queries)
		r = New(&out, in, renderer.DefaultThermalScale())
	}
	r.width = func() int { return width }
	if err := r.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := r.Render(v, grid); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return color.ClearCode(out.String())
}

func TestRender_SideBySide(t *testing.T) {
	out := renderLayout(t, 200, "", "HhR", "TtR")
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], renderer.TitleColorView) || !strings.Contains(lines[0], renderer.TitleThermalView) {
		t.Errorf("first line %q should hold both titles", lines[0])
	}
	if !strings.Contains(out, "-30") || !strings.Contains(out, "30") {
		t.Errorf("colorbar ticks missing from output:\n%s", out)
	}
}

func TestRender_Stacked(t *testing.T) {
	out := renderLayout(t, 10, "", "HhR")
	lines := strings.Split(out, "\n")
	if strings.Contains(lines[0], renderer.TitleThermalView) {
		t.Errorf("narrow terminal should stack panels, got first line %q", lines[0])
	}
	if !strings.Contains(out, renderer.TitleThermalView) {
		t.Error("thermal title missing")
	}
}

func TestRender_QueryLoop(t *testing.T) {
	out := renderLayout(t, 200, "0 1\n0 0\n\n9 9\nbogus\n1 2\nq\n0 0\n", "HhR", "TtR")

	if !strings.Contains(out, " "+world.TreeItemName+" ") {
		t.Errorf("expected tree label in output:\n%s", out)
	}
	if !strings.Contains(out, " house ") {
		t.Errorf("expected house label in output:\n%s", out)
	}
	if !strings.Contains(out, " road ") {
		t.Errorf("expected road label in output:\n%s", out)
	}
	if !strings.Contains(out, "(outside map)") {
		t.Errorf("expected outside notice in output:\n%s", out)
	}
	if !strings.Contains(out, "bad query") {
		t.Errorf("expected bad query notice in output:\n%s", out)
	}
	// Nothing after quit is answered: "0 0" appears once as house
	if n := strings.Count(out, " house "); n != 1 {
		t.Errorf("house label printed %d times, want 1", n)
	}
}

func TestRender_QueryLoopEndsAtEOF(t *testing.T) {
	out := renderLayout(t, 200, "1 0", "Ht", "Tt")
	if !strings.Contains(out, " "+world.TreeItemName+" ") {
		t.Errorf("expected tree label for final unterminated line:\n%s", out)
	}
}

func TestRender_NilViews(t *testing.T) {
	r := New(&bytes.Buffer{}, nil, renderer.DefaultThermalScale())
	if err := r.Render(nil, nil); err == nil {
		t.Error("Render(nil, nil) error = nil, want error")
	}
}

func TestTickLine(t *testing.T) {
	line := tickLine([]float64{-30, 0, 30}, 30)
	if !strings.HasPrefix(line, "-30") {
		t.Errorf("tickLine = %q, want prefix -30", line)
	}
	if !strings.HasSuffix(line, "30") || !strings.Contains(line, " 0 ") {
		t.Errorf("tickLine = %q, want 0 in the middle and 30 at the end", line)
	}
}

func TestPadRight(t *testing.T) {
	styled := color.Style{color.FgRed}.Sprint("ab")
	got := padRight(styled, 5)
	if n := len(color.ClearCode(got)); n != 5 {
		t.Errorf("visible width = %d, want 5", n)
	}
	if padRight("abcdef", 3) != "abcdef" {
		t.Error("padRight should not truncate")
	}
}

func TestRender_LegendListsPresentCategories(t *testing.T) {
	out := renderLayout(t, 200, "", "HRH")
	if !strings.Contains(out, "Legend: house:") {
		t.Errorf("legend missing house entry:\n%s", out)
	}
	if !strings.Contains(out, "road:") {
		t.Errorf("legend missing road entry:\n%s", out)
	}
	if strings.Contains(out, "tree:") {
		t.Errorf("legend lists tree for a map without trees:\n%s", out)
	}
}

func TestRender_PromptShowsLastRowAndCol(t *testing.T) {
	out := renderLayout(t, 200, "q\n", "HhR", "TtR")
	if !strings.Contains(out, "(0..1, 0..2)") {
		t.Errorf("prompt should give the 0..1 row and 0..2 col ranges:\n%s", out)
	}
}

func TestRender_EmptyMapSkipsQueries(t *testing.T) {
	out := renderLayout(t, 200, "0 0\n")
	if strings.Contains(out, "0..-1") {
		t.Errorf("empty map printed a negative range:\n%s", out)
	}
	if strings.Contains(out, "q to quit") || strings.Contains(out, "(outside map)") {
		t.Errorf("empty map should not serve queries:\n%s", out)
	}
}
