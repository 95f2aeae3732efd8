package engine

/*
#cgo LDFLAGS: -lgmp
#include <gmp.h>
*/
import "C"

// Bit operations follow GMP's infinite two's-complement model: negative
// operands behave as if sign-extended with 1-bits forever.

// And sets z = x & y.
func (z *Z) And(x, y *Z) { C.mpz_and(&z.z[0], &x.z[0], &y.z[0]) }

// Or sets z = x | y.
func (z *Z) Or(x, y *Z) { C.mpz_ior(&z.z[0], &x.z[0], &y.z[0]) }

// Xor sets z = x ^ y.
func (z *Z) Xor(x, y *Z) { C.mpz_xor(&z.z[0], &x.z[0], &y.z[0]) }

// Not sets z = ^x, which equals -(x+1).
func (z *Z) Not(x *Z) { C.mpz_com(&z.z[0], &x.z[0]) }

// Lsh sets z = x * 2^n.
func (z *Z) Lsh(x *Z, n uint) { C.mpz_mul_2exp(&z.z[0], &x.z[0], C.mp_bitcnt_t(n)) }

// Rsh sets z = floor(x / 2^n), the arithmetic (sign-extending) shift.
func (z *Z) Rsh(x *Z, n uint) { C.mpz_fdiv_q_2exp(&z.z[0], &x.z[0], C.mp_bitcnt_t(n)) }

// Bit returns bit i of z, with sign extension for negative z.
func (z *Z) Bit(i uint) uint {
	return uint(C.mpz_tstbit(&z.z[0], C.mp_bitcnt_t(i)))
}

// SetBit sets bit i of z to 1.
func (z *Z) SetBit(i uint) { C.mpz_setbit(&z.z[0], C.mp_bitcnt_t(i)) }

// ClearBit sets bit i of z to 0.
func (z *Z) ClearBit(i uint) { C.mpz_clrbit(&z.z[0], C.mp_bitcnt_t(i)) }

// ToggleBit complements bit i of z.
func (z *Z) ToggleBit(i uint) { C.mpz_combit(&z.z[0], C.mp_bitcnt_t(i)) }

// noBit is GMP's "no such bit / not defined" sentinel (the largest
// mp_bitcnt_t value).
const noBit = ^uint(0)

// Scan1 returns the index of the first 1-bit at or above position i,
// and ok=false when there is no such bit.
func (z *Z) Scan1(i uint) (uint, bool) {
	p := uint(C.mpz_scan1(&z.z[0], C.mp_bitcnt_t(i)))
	return p, p != noBit
}

// Scan0 returns the index of the first 0-bit at or above position i,
// and ok=false when there is no such bit (negative z sign-extends with
// 1-bits forever).
func (z *Z) Scan0(i uint) (uint, bool) {
	p := uint(C.mpz_scan0(&z.z[0], C.mp_bitcnt_t(i)))
	return p, p != noBit
}

// PopCount returns the number of 1-bits in z, and ok=false for negative
// z where the count is infinite.
func (z *Z) PopCount() (uint, bool) {
	n := uint(C.mpz_popcount(&z.z[0]))
	return n, n != noBit
}

// HamDist returns the Hamming distance between z and x, and ok=false
// when the operands have different signs and the distance is infinite.
func (z *Z) HamDist(x *Z) (uint, bool) {
	n := uint(C.mpz_hamdist(&z.z[0], &x.z[0]))
	return n, n != noBit
}
