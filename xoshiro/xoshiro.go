// Package xoshiro implements the xoshiro256** pseudo-random number
// generator, based on the public domain reference implementation by David
// Blackman and Sebastiano Vigna:
//
// https://prng.di.unimi.it/xoshiro256starstar.c
//
// xoshiro256** has 256 bits of state, 64 bits of output per step, a period
// of 2^256-1, and strong statistical quality at the cost of four
// arithmetic/bitwise operations per draw. It is not suitable for
// cryptographic use.
package xoshiro

import (
	"math/bits"
	"math/rand"

	"github.com/ayejay/odds.go/splitmix"
)

var _ rand.Source64 = (*Source)(nil)

// fallbackState replaces an all-zero seeding result.
// xoshiro256** can never leave the all-zero state, so it must not enter it.
var fallbackState = [4]uint64{
	0x9e3779b97f4a7c15,
	0xbf58476d1ce4e5b9,
	0x94d049bb133111eb,
	0xd1b54a32d192ed03,
}

// Source is a single xoshiro256** stream.
//
// A Source is not safe for concurrent use: Uint64 and Reseed mutate the
// state without synchronization. Each logical execution context should own
// its own Source. For a shared stream use odds.Locked instead.
type Source struct {
	state [4]uint64
}

// New returns a Source seeded with seed.
//
// Same seed, same stream: two Sources created from equal seeds produce
// identical draw sequences.
func New(seed uint64) *Source {
	s := new(Source)
	s.Reseed(seed)
	return s
}

// Reseed replaces the entire state with four words expanded from seed by
// the splitmix64 mixer. Draws after Reseed depend only on seed, with no
// residual influence from the prior state.
//
// If the mixer ever yields four zero words, a fixed non-zero state is
// substituted instead.
func (s *Source) Reseed(seed uint64) {
	sm := splitmix.New(seed)
	s.state[0] = sm.Next()
	s.state[1] = sm.Next()
	s.state[2] = sm.Next()
	s.state[3] = sm.Next()

	if s.state[0]|s.state[1]|s.state[2]|s.state[3] == 0 {
		s.state = fallbackState
	}
}

// Uint64 returns the next 64-bit word in the stream and advances the state
// by one step.
func (s *Source) Uint64() uint64 {
	result := bits.RotateLeft64(s.state[1]*5, 7) * 9

	t := s.state[1] << 17

	s.state[2] ^= s.state[0]
	s.state[3] ^= s.state[1]
	s.state[1] ^= s.state[2]
	s.state[0] ^= s.state[3]

	s.state[2] ^= t
	s.state[3] = bits.RotateLeft64(s.state[3], 45)

	return result
}

// Uint32 returns the upper half of one Uint64 draw.
//
// The upper bits are the better-scrambled half of the ** output, so prefer
// this over truncation when only 32 bits are needed.
func (s *Source) Uint32() uint32 {
	return uint32(s.Uint64() >> 32)
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed implements rand.Source. It is Reseed under rand's seed type.
func (s *Source) Seed(seed int64) {
	s.Reseed(uint64(seed))
}
