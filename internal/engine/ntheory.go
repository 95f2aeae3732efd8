package engine

/*
#cgo LDFLAGS: -lgmp
#include <gmp.h>

// mpz_kronecker may be defined as a macro aliasing mpz_jacobi; rewrap.
static int z_kronecker(const mpz_t a, const mpz_t b) { return mpz_kronecker(a, b); }
*/
import "C"

// GCD sets z = gcd(x, y). The result is always non-negative and
// gcd(0, 0) = 0.
func (z *Z) GCD(x, y *Z) { C.mpz_gcd(&z.z[0], &x.z[0], &y.z[0]) }

// LCM sets z = lcm(x, y), non-negative, zero when either operand is zero.
func (z *Z) LCM(x, y *Z) { C.mpz_lcm(&z.z[0], &x.z[0], &y.z[0]) }

// GCDExt sets z = gcd(x, y) and s, t to Bézout coefficients with
// x*s + y*t = z. Either of s, t may be nil.
func (z *Z) GCDExt(s, t, x, y *Z) {
	var sp, tp *C.__mpz_struct
	if s != nil {
		sp = &s.z[0]
	}
	if t != nil {
		tp = &t.z[0]
	}
	C.mpz_gcdext(&z.z[0], sp, tp, &x.z[0], &y.z[0])
}

// ModInverse sets z = x^-1 mod m and reports whether the inverse exists.
// When it does not, z is unchanged.
func (z *Z) ModInverse(x, m *Z) bool {
	return C.mpz_invert(&z.z[0], &x.z[0], &m.z[0]) != 0
}

// Jacobi returns the Jacobi symbol (z/y). y must be odd and positive.
func (z *Z) Jacobi(y *Z) int { return int(C.mpz_jacobi(&z.z[0], &y.z[0])) }

// Kronecker returns the Kronecker symbol (z/y), the Jacobi symbol
// extended to all y.
func (z *Z) Kronecker(y *Z) int { return int(C.z_kronecker(&z.z[0], &y.z[0])) }

// ProbabPrime runs reps Miller-Rabin rounds on z and returns 2 when z is
// definitely prime, 1 when probably prime (error probability at most
// 4^-reps) and 0 when definitely composite.
func (z *Z) ProbabPrime(reps int) int {
	return int(C.mpz_probab_prime_p(&z.z[0], C.int(reps)))
}

// NextPrime sets z to the next probable prime above x.
func (z *Z) NextPrime(x *Z) { C.mpz_nextprime(&z.z[0], &x.z[0]) }

// PowMod sets z = b^e mod m. A negative exponent requires b to be
// invertible mod m; the caller checks that first.
func (z *Z) PowMod(b, e, m *Z) { C.mpz_powm(&z.z[0], &b.z[0], &e.z[0], &m.z[0]) }

// PowModSec is PowMod with a constant-time implementation resilient to
// side-channel attacks. Requires e > 0 and m odd.
func (z *Z) PowModSec(b, e, m *Z) { C.mpz_powm_sec(&z.z[0], &b.z[0], &e.z[0], &m.z[0]) }

// Sqrt sets z = floor(sqrt(x)). x must be non-negative.
func (z *Z) Sqrt(x *Z) { C.mpz_sqrt(&z.z[0], &x.z[0]) }

// SqrtRem sets z = floor(sqrt(x)) and r = x - z*z. x must be non-negative.
func (z *Z) SqrtRem(r, x *Z) { C.mpz_sqrtrem(&z.z[0], &r.z[0], &x.z[0]) }

// Root sets z = floor(x^(1/n)) and reports whether the root is exact.
// n must be positive and x non-negative when n is even.
func (z *Z) Root(x *Z, n uint) bool {
	return C.mpz_root(&z.z[0], &x.z[0], C.ulong(n)) != 0
}

// RootRem sets z = floor(x^(1/n)) and r = x - z^n.
func (z *Z) RootRem(r, x *Z, n uint) {
	C.mpz_rootrem(&z.z[0], &r.z[0], &x.z[0], C.ulong(n))
}

// PerfectSquare reports whether z is a perfect square.
func (z *Z) PerfectSquare() bool { return C.mpz_perfect_square_p(&z.z[0]) != 0 }

// PerfectPower reports whether z = a^b for some a and b > 1.
func (z *Z) PerfectPower() bool { return C.mpz_perfect_power_p(&z.z[0]) != 0 }

// Remove sets z = x with all factors f divided out and returns how many
// times f divided x. f must not be -1, 0 or 1.
func (z *Z) Remove(x, f *Z) uint {
	return uint(C.mpz_remove(&z.z[0], &x.z[0], &f.z[0]))
}

/*
 * sequences
 */

// Factorial sets z = n!.
func (z *Z) Factorial(n uint) { C.mpz_fac_ui(&z.z[0], C.ulong(n)) }

// DoubleFactorial sets z = n!!.
func (z *Z) DoubleFactorial(n uint) { C.mpz_2fac_ui(&z.z[0], C.ulong(n)) }

// MultiFactorial sets z = n!^(m), the m-step factorial.
func (z *Z) MultiFactorial(n, m uint) { C.mpz_mfac_uiui(&z.z[0], C.ulong(n), C.ulong(m)) }

// Primorial sets z to the product of all primes <= n.
func (z *Z) Primorial(n uint) { C.mpz_primorial_ui(&z.z[0], C.ulong(n)) }

// Binomial sets z = binomial(x, k).
func (z *Z) Binomial(x *Z, k uint) { C.mpz_bin_ui(&z.z[0], &x.z[0], C.ulong(k)) }

// BinomialUint sets z = binomial(n, k).
func (z *Z) BinomialUint(n, k uint) { C.mpz_bin_uiui(&z.z[0], C.ulong(n), C.ulong(k)) }

// Fibonacci sets z = F(n).
func (z *Z) Fibonacci(n uint) { C.mpz_fib_ui(&z.z[0], C.ulong(n)) }

// FibonacciPair sets z = F(n) and prev = F(n-1).
func (z *Z) FibonacciPair(prev *Z, n uint) {
	C.mpz_fib2_ui(&z.z[0], &prev.z[0], C.ulong(n))
}

// Lucas sets z = L(n).
func (z *Z) Lucas(n uint) { C.mpz_lucnum_ui(&z.z[0], C.ulong(n)) }

// LucasPair sets z = L(n) and prev = L(n-1).
func (z *Z) LucasPair(prev *Z, n uint) {
	C.mpz_lucnum2_ui(&z.z[0], &prev.z[0], C.ulong(n))
}
