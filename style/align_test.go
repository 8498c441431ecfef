package style

import (
	"testing"

	"github.com/emberterm/ember/geom"
)

func TestAlignmentApply(t *testing.T) {
	size := geom.P(10, 11)

	tests := []struct {
		name  string
		align Alignment
		want  geom.Point
	}{
		{"top", AlignTop, geom.P(5, 0)},
		{"bottom", AlignBottom, geom.P(5, 11)},
		{"left", AlignLeft, geom.P(0, 5)},
		{"right", AlignRight, geom.P(10, 5)},
		{"top-left", AlignTop | AlignLeft, geom.P(0, 0)},
		{"bottom-right", AlignBottom | AlignRight, geom.P(10, 11)},
		{"all sides", AlignTop | AlignLeft | AlignBottom | AlignRight, geom.P(5, 5)},
		{"center", AlignCenter, geom.P(5, 5)},
		{"empty", 0, geom.P(5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.align.Apply(size); got != tt.want {
				t.Errorf("Apply(%v) = %v, want %v", size, got, tt.want)
			}
		})
	}
}

// Anchors are half-size offsets over the full grid, so on an 80x24
// grid the center sits at (40,12) and bottom-right at (80,24), one
// past the last addressable cell. Placement clamps the overshoot.
func TestAlignmentApplyFullSizeOffsets(t *testing.T) {
	size := geom.P(80, 24)

	tests := []struct {
		name  string
		align Alignment
		want  geom.Point
	}{
		{"empty", 0, geom.P(40, 12)},
		{"center", AlignCenter, geom.P(40, 12)},
		{"bottom-right", AlignBottom | AlignRight, geom.P(80, 24)},
		{"top-left", AlignTop | AlignLeft, geom.P(0, 0)},
		{"right", AlignRight, geom.P(80, 12)},
		{"bottom", AlignBottom, geom.P(40, 24)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.align.Apply(size); got != tt.want {
				t.Errorf("Apply(%v) = %v, want %v", size, got, tt.want)
			}
		})
	}
}

func TestAlignmentCenterHalvesOffset(t *testing.T) {
	size := geom.P(21, 21)

	// Pure right anchors at the full width; center pulls halfway back.
	right := AlignRight.Apply(size)
	centered := (AlignRight | AlignCenter).Apply(size)

	if right != geom.P(21, 10) {
		t.Fatalf("right anchor = %v, want (21,10)", right)
	}
	if centered != geom.P(15, 10) {
		t.Errorf("center-right anchor = %v, want (15,10)", centered)
	}
}
