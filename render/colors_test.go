package render

import (
	"testing"

	stabletrack "github.com/stabletrack/go-stabletrack"
)

// TestIDColorDeterministic checks the same stable ID always renders in
// the same color
func TestIDColorDeterministic(t *testing.T) {

	for id := stabletrack.StableID(1); id <= 50; id++ {

		first := IDColor(id)
		second := IDColor(id)

		if first != second {
			t.Errorf("stable %d produced colors %v and %v", id, first, second)
		}
	}
}

// TestIDColorChannelRange checks every channel stays within the visible
// range used for dark footage
func TestIDColorChannelRange(t *testing.T) {

	for id := stabletrack.StableID(1); id <= 200; id++ {

		clr := IDColor(id)

		for name, v := range map[string]uint8{"R": clr.R, "G": clr.G, "B": clr.B} {
			if v < 50 {
				t.Errorf("stable %d channel %s is %d, want >= 50", id, name, v)
			}
		}

		if clr.A != 255 {
			t.Errorf("stable %d alpha is %d, want 255", id, clr.A)
		}
	}
}

// TestIDColorSpread checks neighbouring IDs do not collapse onto one
// color
func TestIDColorSpread(t *testing.T) {

	seen := make(map[[3]uint8]stabletrack.StableID)

	for id := stabletrack.StableID(1); id <= 30; id++ {

		clr := IDColor(id)
		key := [3]uint8{clr.R, clr.G, clr.B}

		if other, exists := seen[key]; exists {
			t.Errorf("stable %d and %d share color %v", id, other, clr)
		}

		seen[key] = id
	}
}

// TestFade checks trail fading scales towards black and clamps alpha
func TestFade(t *testing.T) {

	clr := IDColor(1)

	if got := fade(clr, 1); got != clr {
		t.Errorf("fade with alpha 1 changed color %v to %v", clr, got)
	}

	if got := fade(clr, 0); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("fade with alpha 0 returned %v, want black", got)
	}

	if got := fade(clr, 2); got != clr {
		t.Errorf("fade clamps alpha above 1, got %v want %v", got, clr)
	}
}
