package pagination

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		active   int
		count    int
		vertical bool
		rtl      bool
		mirrors  bool
		want     int
	}{
		{"LTR identity", 2, 5, false, false, false, 2},
		{"RTL flips middle", 2, 5, false, true, false, 2},
		{"RTL flips first to last", 0, 5, false, true, false, 4},
		{"RTL flips last to first", 4, 5, false, true, false, 0},
		{"RTL platform mirrors", 2, 5, false, true, true, 2},
		{"RTL platform mirrors first", 0, 5, false, true, true, 0},
		{"RTL vertical exempt", 2, 5, true, true, false, 2},
		{"RTL vertical exempt first", 1, 5, true, true, false, 1},
		{"Vertical LTR", 3, 4, true, false, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.active, tt.count, tt.vertical, tt.rtl, tt.mirrors)
			if got != tt.want {
				t.Errorf("Resolve(%d, %d, vertical=%v, rtl=%v, mirrors=%v) = %d, want %d",
					tt.active, tt.count, tt.vertical, tt.rtl, tt.mirrors, got, tt.want)
			}
		})
	}
}

func TestResolveTracksCount(t *testing.T) {
	// Same active index against a changed count must not reuse the old flip
	if got := Resolve(1, 3, false, true, false); got != 1 {
		t.Fatalf("count 3: got %d, want 1", got)
	}
	if got := Resolve(1, 6, false, true, false); got != 4 {
		t.Fatalf("count 6: got %d, want 4", got)
	}
}

func TestFlowFor(t *testing.T) {
	tests := []struct {
		name     string
		vertical bool
		rtl      bool
		mirrors  bool
		want     Flow
	}{
		{"LTR row", false, false, false, FlowRow},
		{"RTL reverse row", false, true, false, FlowReverseRow},
		{"RTL mirrored platform row", false, true, true, FlowRow},
		{"Vertical column", true, false, false, FlowColumn},
		{"Vertical RTL column", true, true, false, FlowColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlowFor(tt.vertical, tt.rtl, tt.mirrors); got != tt.want {
				t.Errorf("FlowFor = %s, want %s", got, tt.want)
			}
		})
	}
}
