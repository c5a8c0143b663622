// Package odds provides fast, deterministic "1 in N" probability checks
// built on unbiased bounded sampling.
//
// The package-level functions draw from R, a process-wide default stream
// seeded once from system entropy and safe for concurrent use:
//
//	if odds.Chance(100) {
//		// 1% of the time
//	}
//
// For deterministic replay, re-seed the default stream:
//
//	odds.Seed(1337)
//
// Hot paths that cannot afford the default stream's mutex should own an
// unsynchronized stream per goroutine and use the explicit-source forms:
//
//	src := xoshiro.New(seed)
//	if odds.OneIn(src, 20) { ... }
//
// Common denominators are available as preset zero-argument checks (P2
// through P256), which resolve their sampling strategy once at
// construction:
//
//	if odds.P100() { ... }
//
// All bounded sampling is free of modulo bias: for any bound > 0 every
// value in [0, bound) is returned with probability exactly 1/bound. The
// underlying generator is xoshiro256** seeded via splitmix64; see the
// subpackages for the raw generators. Nothing in this module is suitable
// for cryptographic use.
package odds
