package engine

/*
#cgo LDFLAGS: -lgmp
#include <gmp.h>
*/
import "C"

import "runtime"

// RandState is one GMP random generator state (gmp_randstate_t). It is
// caller-owned mutable state: every generation call advances it, and
// concurrent use without external serialization corrupts the sequence.
type RandState struct {
	s       C.gmp_randstate_t
	cleared bool
}

// NewRandStateMT returns a Mersenne Twister generator state.
func NewRandStateMT() *RandState {
	st := &RandState{}
	C.gmp_randinit_mt(&st.s[0])
	runtime.SetFinalizer(st, (*RandState).finalize)
	return st
}

// NewRandStateLC returns a linear-congruential generator state sized for
// the given modulus bit count, and ok=false when bits exceeds the
// parameter table GMP ships (currently 128).
func NewRandStateLC(bits uint) (*RandState, bool) {
	st := &RandState{}
	if C.gmp_randinit_lc_2exp_size(&st.s[0], C.mp_bitcnt_t(bits)) == 0 {
		return nil, false
	}
	runtime.SetFinalizer(st, (*RandState).finalize)
	return st, true
}

func (st *RandState) finalize() {
	if !st.cleared {
		st.cleared = true
		C.gmp_randclear(&st.s[0])
	}
}

// Clear releases the state eagerly.
func (st *RandState) Clear() { st.finalize() }

// Seed reseeds the generator. The same seed reproduces the same sequence.
func (st *RandState) Seed(seed uint64) {
	C.gmp_randseed_ui(&st.s[0], C.ulong(seed))
}

// SeedZ reseeds the generator from an arbitrary-precision seed.
func (st *RandState) SeedZ(seed *Z) {
	C.gmp_randseed(&st.s[0], &seed.z[0])
}

// RandBits sets z to a uniform value in [0, 2^n).
func (z *Z) RandBits(st *RandState, n uint) {
	C.mpz_urandomb(&z.z[0], &st.s[0], C.mp_bitcnt_t(n))
}

// RandBelow sets z to a uniform value in [0, bound). bound must be
// positive.
func (z *Z) RandBelow(st *RandState, bound *Z) {
	C.mpz_urandomm(&z.z[0], &st.s[0], &bound.z[0])
}

// RandBitsRuns sets z to a random n-bit value with long runs of ones and
// zeros, useful for stressing corner cases in arithmetic.
func (z *Z) RandBitsRuns(st *RandState, n uint) {
	C.mpz_rrandomb(&z.z[0], &st.s[0], C.mp_bitcnt_t(n))
}
