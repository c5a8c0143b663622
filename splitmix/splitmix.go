// Package splitmix implements the splitmix64 pseudo-random number
// generator.
//
// splitmix64 is a tiny, fast generator with a period of 2^64 and exactly
// one word of state. Its main job in this module is expanding a single
// 64-bit seed into the well-distributed state words that larger-state
// generators need, but it also satisfies math/rand.Source64 so it can back
// a *math/rand.Rand directly.
package splitmix

import "math/rand"

var _ rand.Source64 = (*Mixer)(nil)

// increment is the golden-ratio constant added to the state on every step.
const increment = 0x9e3779b97f4a7c15

// Mixer is a single splitmix64 stream.
//
// It is not safe for concurrent use. Each logical execution context should
// own its own Mixer.
type Mixer struct {
	state uint64
}

// New creates a Mixer starting from seed.
//
// Same seed, same stream: the output sequence is a pure function of seed.
// Every 64-bit value, including zero, is a valid seed.
func New(seed uint64) *Mixer {
	return &Mixer{state: seed}
}

// Next advances the state by the fixed increment and returns the next
// value in the stream, finalized with three xor-shift/multiply avalanche
// rounds.
func (m *Mixer) Next() uint64 {
	m.state += increment
	z := m.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uint64 implements rand.Source64.
func (m *Mixer) Uint64() uint64 {
	return m.Next()
}

// Int63 implements rand.Source.
func (m *Mixer) Int63() int64 {
	return int64(m.Next() >> 1)
}

// Seed implements rand.Source.
func (m *Mixer) Seed(seed int64) {
	m.state = uint64(seed)
}
