package theme

import (
	"testing"

	"github.com/theirongolddev/splitabill/internal/model"
)

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("slate").Name; got != "slate" {
		t.Fatalf("ByName(slate) = %q", got)
	}
	if got := ByName("nope").Name; got != FlexokiDark.Name {
		t.Fatalf("ByName(nope) = %q, want %q", got, FlexokiDark.Name)
	}
}

func TestNextWraps(t *testing.T) {
	name := All[0].Name
	for range All {
		name = Next(name)
	}
	if name != All[0].Name {
		t.Fatalf("cycling through every theme ended at %q", name)
	}
	if got := Next("unknown"); got != All[0].Name {
		t.Fatalf("Next(unknown) = %q", got)
	}
}

func TestPriorityAndHealthColors(t *testing.T) {
	th := Slate
	if th.PriorityColor(model.PriorityHigh) != th.Red {
		t.Error("high priority should be red")
	}
	if th.PriorityColor(model.PriorityMedium) != th.Yellow {
		t.Error("medium priority should be yellow")
	}
	if th.PriorityColor(model.PriorityLow) != th.Blue {
		t.Error("low priority should be blue")
	}
	if th.HealthColor(model.HealthBalanced) != th.Green {
		t.Error("balanced should be green")
	}
	if th.HealthColor(model.HealthNoDeposit) != th.TextMuted {
		t.Error("no deposit should be muted")
	}
}

func TestSeriesColorCycles(t *testing.T) {
	th := Slate
	n := len(th.Series)
	if th.SeriesColor(n) != th.SeriesColor(0) {
		t.Errorf("SeriesColor(%d) should wrap to the first color", n)
	}
	if (Theme{Accent: "1"}).SeriesColor(3) != "1" {
		t.Error("empty series should fall back to accent")
	}
}
