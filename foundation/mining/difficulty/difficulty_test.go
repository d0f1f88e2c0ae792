package difficulty_test

import (
	"testing"
	"time"

	"github.com/hashforge/miner/foundation/mining/difficulty"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestAdjust(t *testing.T) {
	type table struct {
		name     string
		current  uint
		observed time.Duration
		want     uint
	}

	tt := []table{
		{name: "fast block raises", current: 3, observed: 5 * time.Second, want: 4},
		{name: "slow block lowers", current: 3, observed: 50 * time.Second, want: 2},
		{name: "on target holds", current: 3, observed: 30 * time.Second, want: 3},
		{name: "lower band edge holds", current: 3, observed: 24 * time.Second, want: 3},
		{name: "upper band edge holds", current: 3, observed: 45 * time.Second, want: 3},
		{name: "capped at max", current: 8, observed: 5 * time.Second, want: 8},
		{name: "floored at min", current: 1, observed: 50 * time.Second, want: 1},
		{name: "out of band value clamped", current: 40, observed: 30 * time.Second, want: 8},
	}

	t.Log("Given the need to retarget difficulty toward the block interval.")
	{
		for i, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling %s.", i, tst.name)
			{
				got := difficulty.Adjust(tst.current, tst.observed)
				if got != tst.want {
					t.Fatalf("\t%s\tShould get the expected difficulty: got %d, exp %d", failed, got, tst.want)
				}
				t.Logf("\t%s\tShould get the expected difficulty.", success)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	t.Log("Given the need to defensively clamp injected difficulty values.")
	{
		if got := difficulty.Clamp(0); got != difficulty.Min {
			t.Fatalf("\t%s\tShould clamp 0 to the minimum: got %d", failed, got)
		}
		t.Logf("\t%s\tShould clamp 0 to the minimum.", success)

		if got := difficulty.Clamp(12); got != difficulty.Max {
			t.Fatalf("\t%s\tShould clamp 12 to the maximum: got %d", failed, got)
		}
		t.Logf("\t%s\tShould clamp 12 to the maximum.", success)

		if got := difficulty.Clamp(5); got != 5 {
			t.Fatalf("\t%s\tShould leave in range values alone: got %d", failed, got)
		}
		t.Logf("\t%s\tShould leave in range values alone.", success)
	}
}
