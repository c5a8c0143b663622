package odds_test

import (
	"fmt"

	odds "github.com/ayejay/odds.go"
	"github.com/ayejay/odds.go/xoshiro"
)

func Example() {
	// Seed the default stream once for a reproducible run.
	odds.Seed(1337)

	hits := 0
	const trials = 1_000_000
	for i := 0; i < trials; i++ {
		if odds.P100() {
			hits++
		}
	}
	fmt.Println("close to 1%:", hits > 9_000 && hits < 11_000)
	// Output:
	// close to 1%: true
}

func ExampleOneIn() {
	// A goroutine-owned stream avoids the default stream's mutex.
	src := xoshiro.New(42)

	sixes := 0
	const rolls = 600_000
	for i := 0; i < rolls; i++ {
		if odds.OneIn(src, 6) {
			sixes++
		}
	}
	fmt.Println("about one in six:", sixes > 95_000 && sixes < 105_000)
	// Output:
	// about one in six: true
}

func ExampleFixedSource() {
	// Presets resolve their sampling strategy once, then cost a draw and
	// a compare per call.
	src := xoshiro.New(7)
	check := odds.FixedSource(src, 20)

	hits := 0
	const trials = 200_000
	for i := 0; i < trials; i++ {
		if check() {
			hits++
		}
	}
	fmt.Println("about 5%:", hits > 8_000 && hits < 12_000)
	// Output:
	// about 5%: true
}
