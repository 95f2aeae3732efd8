package engine

/*
#cgo LDFLAGS: -lgmp
#include <gmp.h>
*/
import "C"

// Division entry points. Callers guarantee the divisor is nonzero; GMP
// raises SIGFPE otherwise, so the zero check belongs to package bignum.

// FloorQuo sets z = floor(x / y).
func (z *Z) FloorQuo(x, y *Z) { C.mpz_fdiv_q(&z.z[0], &x.z[0], &y.z[0]) }

// FloorRem sets z = x - floor(x/y)*y. The result has the sign of y.
func (z *Z) FloorRem(x, y *Z) { C.mpz_fdiv_r(&z.z[0], &x.z[0], &y.z[0]) }

// FloorQuoRem sets z = floor(x / y) and r to the matching remainder.
func (z *Z) FloorQuoRem(r, x, y *Z) { C.mpz_fdiv_qr(&z.z[0], &r.z[0], &x.z[0], &y.z[0]) }

// CeilQuo sets z = ceil(x / y).
func (z *Z) CeilQuo(x, y *Z) { C.mpz_cdiv_q(&z.z[0], &x.z[0], &y.z[0]) }

// CeilRem sets z = x - ceil(x/y)*y. The result has the opposite sign of y.
func (z *Z) CeilRem(x, y *Z) { C.mpz_cdiv_r(&z.z[0], &x.z[0], &y.z[0]) }

// CeilQuoRem sets z = ceil(x / y) and r to the matching remainder.
func (z *Z) CeilQuoRem(r, x, y *Z) { C.mpz_cdiv_qr(&z.z[0], &r.z[0], &x.z[0], &y.z[0]) }

// TruncQuo sets z = trunc(x / y), rounding toward zero.
func (z *Z) TruncQuo(x, y *Z) { C.mpz_tdiv_q(&z.z[0], &x.z[0], &y.z[0]) }

// TruncRem sets z = x - trunc(x/y)*y. The result has the sign of x.
func (z *Z) TruncRem(x, y *Z) { C.mpz_tdiv_r(&z.z[0], &x.z[0], &y.z[0]) }

// TruncQuoRem sets z = trunc(x / y) and r to the matching remainder.
func (z *Z) TruncQuoRem(r, x, y *Z) { C.mpz_tdiv_qr(&z.z[0], &r.z[0], &x.z[0], &y.z[0]) }

// Mod sets z = x mod y with the result always in [0, |y|).
func (z *Z) Mod(x, y *Z) { C.mpz_mod(&z.z[0], &x.z[0], &y.z[0]) }

// DivExact sets z = x / y assuming y divides x exactly. The result is
// undefined when the assumption does not hold.
func (z *Z) DivExact(x, y *Z) { C.mpz_divexact(&z.z[0], &x.z[0], &y.z[0]) }

// Divisible reports whether y divides z. Zero divides only zero.
func (z *Z) Divisible(y *Z) bool {
	return C.mpz_divisible_p(&z.z[0], &y.z[0]) != 0
}

// Congruent reports whether z is congruent to c modulo m. Modulus zero
// means exact equality.
func (z *Z) Congruent(c, m *Z) bool {
	return C.mpz_congruent_p(&z.z[0], &c.z[0], &m.z[0]) != 0
}

/*
 * power-of-two variants
 */

// FloorQuoPow2 sets z = floor(x / 2^n).
func (z *Z) FloorQuoPow2(x *Z, n uint) { C.mpz_fdiv_q_2exp(&z.z[0], &x.z[0], C.mp_bitcnt_t(n)) }

// FloorRemPow2 sets z = x mod 2^n, non-negative.
func (z *Z) FloorRemPow2(x *Z, n uint) { C.mpz_fdiv_r_2exp(&z.z[0], &x.z[0], C.mp_bitcnt_t(n)) }

// CeilQuoPow2 sets z = ceil(x / 2^n).
func (z *Z) CeilQuoPow2(x *Z, n uint) { C.mpz_cdiv_q_2exp(&z.z[0], &x.z[0], C.mp_bitcnt_t(n)) }

// CeilRemPow2 sets z to the ceiling-remainder of x by 2^n, non-positive.
func (z *Z) CeilRemPow2(x *Z, n uint) { C.mpz_cdiv_r_2exp(&z.z[0], &x.z[0], C.mp_bitcnt_t(n)) }

// TruncQuoPow2 sets z = trunc(x / 2^n).
func (z *Z) TruncQuoPow2(x *Z, n uint) { C.mpz_tdiv_q_2exp(&z.z[0], &x.z[0], C.mp_bitcnt_t(n)) }

// TruncRemPow2 sets z to the truncating remainder of x by 2^n, with the
// sign of x.
func (z *Z) TruncRemPow2(x *Z, n uint) { C.mpz_tdiv_r_2exp(&z.z[0], &x.z[0], C.mp_bitcnt_t(n)) }
