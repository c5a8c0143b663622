package odds

import (
	"math/rand"
	"sync"

	"github.com/ayejay/odds.go/xoshiro"
)

var (
	_ Source        = (*Locked)(nil)
	_ rand.Source64 = (*Locked)(nil)
)

// Locked wraps one xoshiro256** stream with a mutex, making it safe for
// concurrent use.
//
// The raw generators are intentionally unsynchronized; Locked is the one
// place a lock is taken, so code that owns a stream exclusively never pays
// for it. Locked also implements rand.Source64, so it can back a
// *math/rand.Rand shared between goroutines.
type Locked struct {
	lock sync.Mutex
	src  *xoshiro.Source
}

// NewLocked creates a Locked stream seeded with seed.
func NewLocked(seed uint64) *Locked {
	return &Locked{src: xoshiro.New(seed)}
}

// Uint64 returns one raw 64-bit draw.
func (l *Locked) Uint64() (n uint64) {
	l.lock.Lock()
	n = l.src.Uint64()
	l.lock.Unlock()
	return
}

// Uint32 returns one raw 32-bit draw, the upper half of a 64-bit draw.
func (l *Locked) Uint32() (n uint32) {
	l.lock.Lock()
	n = l.src.Uint32()
	l.lock.Unlock()
	return
}

// Reseed atomically replaces the stream's entire state with one mixed
// from seed. Only future draws are affected.
func (l *Locked) Reseed(seed uint64) {
	l.lock.Lock()
	l.src.Reseed(seed)
	l.lock.Unlock()
}

// UniformBounded returns an unbiased integer in [0, bound) from this
// stream. See the package-level UniformBounded for the contract.
func (l *Locked) UniformBounded(bound uint64) uint64 {
	return UniformBounded(l, bound)
}

// OneIn reports a trial with success probability exactly 1/bound using
// this stream. See the package-level OneIn for the contract.
func (l *Locked) OneIn(bound uint64) bool {
	return OneIn(l, bound)
}

// Int63 implements rand.Source.
func (l *Locked) Int63() int64 {
	return int64(l.Uint64() >> 1)
}

// Seed implements rand.Source. It is Reseed under rand's seed type.
func (l *Locked) Seed(seed int64) {
	l.Reseed(uint64(seed))
}

// R is the default stream.
//
// It is seeded once from system entropy at package init and is safe for
// concurrent use. It should be used instead of hand-wiring a stream when
// determinism isn't required.
//
// For example:
//
//	import "github.com/ayejay/odds.go"
//	n := odds.R.UniformBounded(20)
//
// For deterministic replay or testing, call odds.Seed once up front.
var R = NewLocked(GetSeed())

// Seed re-seeds the default stream R.
//
// It affects only future draws from R; streams created with NewLocked or
// xoshiro.New are unaffected.
func Seed(seed uint64) {
	R.Reseed(seed)
}

// Default returns the default stream R.
func Default() *Locked {
	return R
}

// Next64 returns one raw 64-bit draw from the default stream.
func Next64() uint64 {
	return R.Uint64()
}

// Next32 returns one raw 32-bit draw from the default stream.
func Next32() uint32 {
	return R.Uint32()
}

// Bounded returns an unbiased integer in [0, bound) from the default
// stream.
func Bounded(bound uint64) uint64 {
	return R.UniformBounded(bound)
}

// Chance reports a trial with success probability exactly 1/bound using
// the default stream.
//
// Chance(0) and Chance(1) are defined as certain and return true without
// consuming a draw.
func Chance(bound uint64) bool {
	return R.OneIn(bound)
}

// ShouldSample reports a trial with success probability rate using the
// default stream. See SampleRate.
func ShouldSample(rate float64) bool {
	return SampleRate(R, rate)
}
