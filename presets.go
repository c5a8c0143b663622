package odds

import "math/bits"

// Check is a zero-argument probability check with a fixed denominator,
// usable as a first-class value.
type Check func() bool

// Fixed returns a Check that succeeds with probability exactly 1/bound,
// drawing from the default stream R.
//
// The power-of-two decision and the rejection threshold are resolved once
// at construction, so the per-call work in the common case is one draw and
// one compare. For the same bound and the same underlying draw sequence,
// the returned Check is behaviorally identical to OneIn.
func Fixed(bound uint64) Check {
	return FixedSource(R, bound)
}

// FixedSource is Fixed drawing from an explicit stream.
func FixedSource(src Source, bound uint64) Check {
	switch {
	case bound <= 1:
		return func() bool { return true }
	case bound&(bound-1) == 0:
		mask := bound - 1
		return func() bool {
			return src.Uint64()&mask == 0
		}
	default:
		threshold := -bound % bound
		return func() bool {
			for {
				hi, lo := bits.Mul64(src.Uint64(), bound)
				if lo >= threshold {
					return hi == 0
				}
			}
		}
	}
}

// Preset checks for common denominators, all drawing from the default
// stream. P100() is true 1% of the time, P6() emulates a fair die landing
// on a chosen face, and so on.
var (
	P2   = Fixed(2)
	P3   = Fixed(3)
	P4   = Fixed(4)
	P5   = Fixed(5)
	P6   = Fixed(6)
	P8   = Fixed(8)
	P10  = Fixed(10)
	P12  = Fixed(12)
	P16  = Fixed(16)
	P20  = Fixed(20)
	P25  = Fixed(25)
	P30  = Fixed(30)
	P50  = Fixed(50)
	P60  = Fixed(60)
	P100 = Fixed(100)
	P128 = Fixed(128)
	P256 = Fixed(256)
)
