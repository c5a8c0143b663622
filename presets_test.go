package odds_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	odds "github.com/ayejay/odds.go"
	"github.com/ayejay/odds.go/xoshiro"
)

var catalog = []uint64{2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 25, 30, 50, 60, 100, 128, 256}

func TestFixedSourceMatchesOneIn(t *testing.T) {
	for _, bound := range append([]uint64{0, 1}, catalog...) {
		seed := 1000 + bound

		check := odds.FixedSource(xoshiro.New(seed), bound)
		ref := xoshiro.New(seed)

		for i := 0; i < 500; i++ {
			got := check()
			want := odds.OneIn(ref, bound)
			if got != want {
				t.Errorf("bound %d draw %d: Fixed check = %v, OneIn = %v", bound, i, got, want)
				break
			}
		}
	}
}

func TestPresetsFollowReseed(t *testing.T) {
	results := func() []bool {
		odds.Seed(77)
		out := make([]bool, 200)
		for i := range out {
			out[i] = odds.P100()
		}
		return out
	}

	first := results()
	second := results()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("preset sequence not reproducible after Seed (-first +second):\n%s", diff)
	}
}

func TestPresetRates(t *testing.T) {
	cases := []struct {
		name   string
		check  odds.Check
		bound  uint64
		trials int
	}{
		{name: "P2", check: odds.P2, bound: 2, trials: 1_000_000},
		{name: "P6", check: odds.P6, bound: 6, trials: 600_000},
		{name: "P128", check: odds.P128, bound: 128, trials: 1_000_000},
	}

	odds.Seed(0xabcdef)
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			hits := 0
			for i := 0; i < c.trials; i++ {
				if c.check() {
					hits++
				}
			}
			rate := float64(hits) / float64(c.trials)
			ideal := 1 / float64(c.bound)
			if math.Abs(rate-ideal) > 0.01 {
				t.Errorf("%s rate %.5f, want %.5f ±0.01", c.name, rate, ideal)
			}
		})
	}
}

func TestFixedCertain(t *testing.T) {
	for _, bound := range []uint64{0, 1} {
		check := odds.Fixed(bound)
		for i := 0; i < 100; i++ {
			if !check() {
				t.Fatalf("Fixed(%d)() = false, want true", bound)
			}
		}
	}
}
