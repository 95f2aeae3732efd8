package bignum

import (
	crand "crypto/rand"
	"io"

	"github.com/apmath/bignum/internal/engine"
)

// Rand is caller-owned pseudo-random generator state. The same seed
// reproduces the same sequence, every generation call mutates the state,
// and concurrent use from multiple goroutines without external
// serialization is unsupported.
//
// Rand is NOT suitable for security-sensitive work: its output is fully
// predictable from the seed. Use the SecureRand functions for keys,
// nonces and anything else an attacker must not guess.
type Rand struct {
	st *engine.RandState
}

// NewRand returns a Mersenne Twister generator seeded with seed.
func NewRand(seed uint64) *Rand {
	r := &Rand{st: engine.NewRandStateMT()}
	r.st.Seed(seed)
	return r
}

// NewRandLC returns a linear-congruential generator with a modulus of
// roughly 2^bits, seeded with seed. Requested sizes beyond the engine's
// parameter table are rejected.
func NewRandLC(bits uint, seed uint64) (*Rand, error) {
	st, ok := engine.NewRandStateLC(bits)
	if !ok {
		return nil, rangeErrorf("NewRandLC", "no generator parameters for %d bits", bits)
	}
	st.Seed(seed)
	return &Rand{st: st}, nil
}

// Seed reseeds the generator.
func (r *Rand) Seed(seed uint64) { r.st.Seed(seed) }

// RandBits returns a value of exactly n bits: the top bit (position
// n-1) is forced to 1, the rest are uniform. n = 0 yields 0.
func RandBits(r *Rand, n uint) *Int {
	z := New()
	if n == 0 {
		return z
	}
	z.c.z.RandBits(r.st, n)
	z.c.z.SetBit(n - 1)
	return z
}

// RandBitsRaw returns a uniform value in [0, 2^n) with no bit-length
// guarantee.
func RandBitsRaw(r *Rand, n uint) *Int {
	z := New()
	z.c.z.RandBits(r.st, n)
	return z
}

// RandBelow returns a uniform value in [0, bound). bound must be
// positive.
func RandBelow(r *Rand, bound *Int) (*Int, error) {
	if bound.Sign() <= 0 {
		return nil, rangeErrorf("RandBelow", "bound must be positive")
	}
	z := New()
	z.c.z.RandBelow(r.st, bound.c.z)
	return z, nil
}

// RandBitsRuns returns an n-bit value with long runs of ones and zeros,
// a stress pattern for arithmetic corner cases rather than a uniform
// sample.
func RandBitsRuns(r *Rand, n uint) *Int {
	z := New()
	z.c.z.RandBitsRuns(r.st, n)
	return z
}

/*
 * cryptographically secure generation
 *
 * The entropy source is an external collaborator with a plain
 * fail/succeed contract: any short or failed read aborts the operation.
 */

// secureMaxAttempts bounds the rejection-sampling loop of
// SecureRandBelow before it falls back to modular reduction.
const secureMaxAttempts = 64

// SecureRandBits returns a value of exactly n bits sourced from the
// system entropy provider. n = 0 yields 0.
func SecureRandBits(n uint) (*Int, error) {
	return SecureRandBitsFrom(crand.Reader, n)
}

// SecureRandBitsFrom is SecureRandBits reading entropy from src.
// Excess high bits of the byte stream are masked off; the top bit is
// then forced to 1 so the result always has exactly n bits, covering
// the case where masking alone leaves it short.
func SecureRandBitsFrom(src io.Reader, n uint) (*Int, error) {
	z := New()
	if n == 0 {
		return z, nil
	}
	buf := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, err
	}
	if excess := uint(len(buf))*8 - n; excess > 0 {
		buf[0] &= 0xff >> excess
	}
	z.SetBytes(buf)
	z.c.z.SetBit(n - 1)
	return z, nil
}

// SecureRandBelow returns a value in [0, bound) sourced from the system
// entropy provider. bound must be positive.
func SecureRandBelow(bound *Int) (*Int, error) {
	return SecureRandBelowFrom(crand.Reader, bound)
}

// SecureRandBelowFrom is SecureRandBelow reading entropy from src.
// Candidates of bound's bit length are rejection-sampled, which is
// bias-free; after secureMaxAttempts misses the candidate is reduced
// modulo bound instead. The fallback carries a slight modular bias and
// keeps the running time bounded; each attempt succeeds with
// probability above 1/2, so reaching it is astronomically unlikely.
func SecureRandBelowFrom(src io.Reader, bound *Int) (*Int, error) {
	if bound.Sign() <= 0 {
		return nil, rangeErrorf("SecureRandBelow", "bound must be positive")
	}
	bits := bound.BitLen()
	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf))*8 - bits
	var last *Int
	for attempt := 0; attempt < secureMaxAttempts; attempt++ {
		if _, err := io.ReadFull(src, buf); err != nil {
			return nil, err
		}
		if excess > 0 {
			buf[0] &= 0xff >> excess
		}
		last = New().SetBytes(buf)
		if last.Cmp(bound) < 0 {
			return last, nil
		}
	}
	return last.Mod(bound)
}
