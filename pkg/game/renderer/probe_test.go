package renderer

import (
	"math"
	"testing"

	"citygrid/pkg/engine/world"
	"citygrid/pkg/game/generator"
	"citygrid/pkg/game/views"
)

func newTestProbe(t *testing.T, layout ...string) *Probe {
	t.Helper()
	gen := generator.NewLayoutGenerator(layout)
	rows, cols := gen.Dimensions()
	grid, _, err := gen.Generate(rows, cols)
	if err != nil {
		t.Fatalf("layout %v: %v", layout, err)
	}
	v, err := views.Generate(grid, views.OverallThermal(grid))
	if err != nil {
		t.Fatalf("views.Generate: %v", err)
	}
	return NewProbe(grid, v)
}

func TestProbe_LabelsPerCell(t *testing.T) {
	p := newTestProbe(t, "HhRTt")
	tests := []struct {
		x, y float64
		want string
	}{
		{0.5, 0.5, "house"},
		{1.2, 0.9, world.TreeItemName},
		{2.99, 0.0, "road"},
		{3.0, 0.5, world.TreeItemName},
		{4.7, 0.1, "tree"},
	}
	for _, tt := range tests {
		got, ok := p.LabelAt(tt.x, tt.y)
		if !ok {
			t.Errorf("LabelAt(%v, %v) hidden, want %q", tt.x, tt.y, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("LabelAt(%v, %v) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestProbe_OutOfBoundsHides(t *testing.T) {
	p := newTestProbe(t, "HH", "HH")
	for _, pos := range [][2]float64{
		{-0.1, 0.5},
		{0.5, -0.1},
		{2.0, 0.5},
		{0.5, 2.0},
		{math.NaN(), 0.5},
		{math.Inf(1), 0.5},
	} {
		if label, ok := p.LabelAt(pos[0], pos[1]); ok {
			t.Errorf("LabelAt(%v, %v) = %q, want hidden", pos[0], pos[1], label)
		}
	}
}

func TestProbe_NilAndEmpty(t *testing.T) {
	var p *Probe
	if _, ok := p.LabelAtCell(0, 0); ok {
		t.Error("nil probe LabelAtCell visible, want hidden")
	}
	empty := newTestProbe(t)
	if _, ok := empty.LabelAt(0, 0); ok {
		t.Error("empty map LabelAt visible, want hidden")
	}
}

func TestProbe_DoesNotMutate(t *testing.T) {
	p := newTestProbe(t, "hR")
	before := p.views.Thermal[0][1]
	for i := 0; i < 3; i++ {
		p.LabelAt(1.5, 0.5)
		p.LabelAt(0.5, 0.5)
	}
	if p.views.Thermal[0][1] != before {
		t.Error("probing changed the thermal view")
	}
	if p.grid.GetCell(0, 0).ItemCount() != 1 {
		t.Error("probing changed the grid")
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		x, y     float64
		row, col int
	}{
		{0, 0, 0, 0},
		{3.9, 1.1, 1, 3},
		{-0.5, 2.5, 2, -1},
	}
	for _, tt := range tests {
		row, col := CellAt(tt.x, tt.y)
		if row != tt.row || col != tt.col {
			t.Errorf("CellAt(%v, %v) = (%d,%d), want (%d,%d)", tt.x, tt.y, row, col, tt.row, tt.col)
		}
	}
}
