package odds

import (
	"math"
	"math/bits"
)

// Source is the minimal interface the samplers need: one raw 64-bit draw.
//
// *xoshiro.Source, *splitmix.Mixer, and *Locked all satisfy it. The
// samplers never retain src beyond the call.
type Source interface {
	Uint64() uint64
}

// UniformBounded returns an integer uniformly distributed in [0, bound),
// drawn from src, with zero modulo bias: for any bound > 0 every value in
// [0, bound) has probability exactly 1/bound.
//
// bound == 0 is a documented degenerate case and returns 0 without
// drawing.
//
// Power-of-two bounds take a single masked draw. All other bounds use
// Lemire's multiply-rejection scheme; its acceptance probability is at
// least 1 - bound/2^64, so redraws are vanishingly rare for realistic
// bounds and the amortized cost stays at one draw.
func UniformBounded(src Source, bound uint64) uint64 {
	if bound == 0 {
		return 0
	}
	if bound&(bound-1) == 0 {
		return src.Uint64() & (bound - 1)
	}

	// 2^64 mod bound, computed with 64-bit wraparound.
	threshold := -bound % bound
	for {
		hi, lo := bits.Mul64(src.Uint64(), bound)
		if lo >= threshold {
			return hi
		}
	}
}

// uniformBoundedPortable is the mod-limit rejection variant for targets
// without a native wide multiply. bits.Mul64 is available on every Go
// target, so this path is never selected at runtime; it exists to
// cross-check that both rejection schemes produce the same distribution
// (they do not produce the same draw sequence).
func uniformBoundedPortable(src Source, bound uint64) uint64 {
	if bound == 0 {
		return 0
	}
	if bound&(bound-1) == 0 {
		return src.Uint64() & (bound - 1)
	}

	// Largest multiple of bound representable in 64 bits.
	limit := (math.MaxUint64 / bound) * bound
	for {
		if x := src.Uint64(); x < limit {
			return x % bound
		}
	}
}

// OneIn reports whether a trial with success probability exactly 1/bound
// succeeded, drawing from src.
//
// bound <= 1 is defined as certain: it returns true without consuming a
// draw, so the stream's subsequent output is unaffected.
func OneIn(src Source, bound uint64) bool {
	if bound <= 1 {
		return true
	}
	return UniformBounded(src, bound) == 0
}

// Float64 returns a float64 in [0, 1) drawn from src, built from the top
// 53 bits of one draw.
func Float64(src Source) float64 {
	return float64(src.Uint64()>>11) / (1 << 53)
}

// SampleRate generates a random float64 in [0, 1) from src and checks it
// against rate.
//
// rate should be in the range [0, 1]. When rate <= 0 this function always
// returns false; when rate >= 1 it always returns true.
func SampleRate(src Source, rate float64) bool {
	return Float64(src) < rate
}
