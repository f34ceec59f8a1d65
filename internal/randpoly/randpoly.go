// Package randpoly generates reproducible pseudo-random polynomials for
// property tests.
//
// The stream of random bytes is produced by a keyed blake2b XOF, so that the
// same key always yields the same polynomials on every platform.
package randpoly

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Source is a deterministic source of random polynomials. A Source must not be
// used concurrently.
type Source struct {
	xof blake2b.XOF
	buf [8]byte
}

// New returns a Source seeded with key. Keys longer than 64 bytes are
// rejected by blake2b.
func New(key []byte) (*Source, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	return &Source{xof: xof}, nil
}

// Reset rewinds the source to the start of its stream.
func (s *Source) Reset() {
	s.xof.Reset()
}

// Uint64 returns the next 8 bytes of the stream.
func (s *Source) Uint64() uint64 {
	if _, err := s.xof.Read(s.buf[:]); err != nil {
		// An XOF of unknown output length can't run dry.
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Float64 returns a uniformly distributed value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) * 0x1p-53
}

// Uniform returns a uniformly distributed value in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// Coefficients returns n+1 coefficients of a degree n polynomial, each
// uniformly distributed in [-scale, scale). The leading coefficient is kept
// away from zero.
func (s *Source) Coefficients(n int, scale float64) []float64 {
	c := make([]float64, n+1)
	for i := range c {
		c[i] = s.Uniform(-scale, scale)
	}
	for math.Abs(c[0]) < scale*1e-3 {
		c[0] = s.Uniform(-scale, scale)
	}
	return c
}

// Roots returns n values uniformly distributed in [lo, hi), in the order they
// were drawn.
func (s *Source) Roots(n int, lo, hi float64) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = s.Uniform(lo, hi)
	}
	return r
}

// Expand returns the coefficients, in decreasing order of degree, of
// lead · Π (x - rᵢ).
func Expand(lead float64, roots ...float64) []float64 {
	c := []float64{lead}
	for _, r := range roots {
		next := make([]float64, len(c)+1)
		for i, v := range c {
			next[i] += v
			next[i+1] -= v * r
		}
		c = next
	}
	return c
}

// Fingerprint returns a digest of the exact bit patterns of vals, so that
// repeated computations can be compared for bit-identical results. NaNs with
// different payloads produce different fingerprints.
func Fingerprint(vals ...float64) [32]byte {
	h := blake3.New()
	var b [8]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		h.Write(b[:])
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
