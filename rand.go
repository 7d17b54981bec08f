package poisson

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/pkg/errors"
)

// Source is the stream of randomness behind a distribution.
// Anything that can hand us a uniform float, a bounded int and a
// standard-normal draw will do; a *rand.Rand satisfies this as-is.
//
// A given Source seeded the same way must yield the same draws in the
// same order - the whole distribution inherits its determinism (or lack
// thereof) from here.
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64

	// Intn returns a uniform int in [0, n). Panics if n <= 0
	// (as math/rand does).
	Intn(n int) int

	// NormFloat64 returns a standard-normal distributed value
	NormFloat64() float64
}

// NewSource returns the default Source seeded with the given value.
// Identical seeds give identical streams.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(int64(seed)))
}

// NewEntropySource returns the default Source seeded from the operating
// system's entropy. If we can't read entropy we return the error rather
// than quietly falling back to some fixed seed -- callers asking for an
// unseeded distribution are owed non-determinism.
func NewEntropySource() (Source, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read seed entropy")
	}
	return NewSource(binary.LittleEndian.Uint64(buf[:])), nil
}

// splitMix64 is the classic splitmix64 generator dressed up as a
// rand.Source64 so we can hang math/rand's float & normal machinery
// off it. Not a great generator, but cheap, and handy as a second
// Source implementation when exercising source substitution.
type splitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a Source backed by a splitmix64 stream
// seeded with the given value.
func NewSplitMix64(seed uint64) Source {
	return rand.New(&splitMix64{state: seed})
}

// Uint64 advances the stream
func (s *splitMix64) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Int63 satisfies rand.Source
func (s *splitMix64) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed satisfies rand.Source
func (s *splitMix64) Seed(seed int64) {
	s.state = uint64(seed)
}
