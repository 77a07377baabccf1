package terminal

import "testing"

func TestPanelsFit(t *testing.T) {
	tests := []struct {
		width, panel, count, gap int
		want                     bool
	}{
		{80, 20, 2, 4, true},
		{80, 38, 2, 4, true},
		{80, 39, 2, 4, false},
		{10, 100, 0, 4, true},
		{DefaultWidth, 40, 1, 0, true},
	}
	for _, tt := range tests {
		if got := PanelsFit(tt.width, tt.panel, tt.count, tt.gap); got != tt.want {
			t.Errorf("PanelsFit(%d, %d, %d, %d) = %v, want %v", tt.width, tt.panel, tt.count, tt.gap, got, tt.want)
		}
	}
}
