package bignum

// Primality is the tri-state outcome of a probabilistic primality test.
type Primality int

const (
	// Composite means the value is certainly not prime.
	Composite Primality = iota
	// ProbablyPrime means no compositeness witness was found; the error
	// probability after reps rounds is at most 4^-reps.
	ProbablyPrime
	// DefinitelyPrime means the value is small enough to have been proven
	// prime outright.
	DefinitelyPrime
)

// GCD returns the greatest common divisor of a and b. The result is
// always non-negative regardless of operand signs, and GCD(0, 0) = 0.
func GCD(a, b *Int) *Int {
	z := New()
	z.c.z.GCD(a.c.z, b.c.z)
	return z
}

// LCM returns the least common multiple of a and b, non-negative, and 0
// when either operand is 0.
func LCM(a, b *Int) *Int {
	z := New()
	z.c.z.LCM(a.c.z, b.c.z)
	return z
}

// GCDExt returns g = gcd(a, b) together with Bézout coefficients s, t
// satisfying a*s + b*t = g exactly.
func GCDExt(a, b *Int) (g, s, t *Int) {
	g, s, t = New(), New(), New()
	g.c.z.GCDExt(s.c.z, t.c.z, a.c.z, b.c.z)
	return g, s, t
}

// ModInverse returns the multiplicative inverse of x modulo m as the
// unique representative in [0, |m|), with ok=false whenever
// gcd(x, m) != 1 and no inverse exists.
func (x *Int) ModInverse(m *Int) (*Int, bool) {
	if m.IsZero() {
		return nil, false
	}
	z := New()
	if !z.c.z.ModInverse(x.c.z, m.c.z) {
		return nil, false
	}
	return z, true
}

// Jacobi returns the Jacobi symbol (x/y), one of {-1, 0, 1}; it is 0 iff
// x and y share a common factor. y must be a positive odd integer;
// anything else is a programmer error and panics.
func Jacobi(x, y *Int) int {
	if !y.IsOdd() || y.Sign() <= 0 {
		panic("bignum: Jacobi: modulus must be a positive odd integer")
	}
	return x.c.z.Jacobi(y.c.z)
}

// Kronecker returns the Kronecker symbol (x/y), the extension of the
// Jacobi symbol to arbitrary y.
func Kronecker(x, y *Int) int {
	return x.c.z.Kronecker(y.c.z)
}

// ProbablyPrime runs reps rounds of Miller-Rabin on x. reps must be
// positive; 25 is a reasonable default, giving an error probability
// below 4^-25 for a ProbablyPrime verdict.
func (x *Int) ProbablyPrime(reps int) Primality {
	if reps < 1 {
		panic("bignum: ProbablyPrime: reps must be positive")
	}
	return Primality(x.c.z.ProbabPrime(reps))
}

// primalityReps is the Miller-Rabin round count used internally by
// NextPrime and PreviousPrime.
const primalityReps = 25

// NextPrime returns the smallest probable prime greater than x. For
// large values the result carries the usual negligible Miller-Rabin
// error probability, not a proof.
func (x *Int) NextPrime() *Int {
	z := New()
	z.c.z.NextPrime(x.c.z)
	return z
}

// PreviousPrime returns the largest probable prime smaller than x, or an
// error when x <= 2 and no such prime exists.
func (x *Int) PreviousPrime() (*Int, error) {
	if x.CmpInt64(2) <= 0 {
		return nil, rangeErrorf("PreviousPrime", "no prime below %s", x)
	}
	c := x.SubInt64(1)
	if c.CmpInt64(2) == 0 {
		return c, nil
	}
	if !c.IsOdd() {
		c.SubAssign(NewInt64(1))
	}
	// c is odd and >= 3; the loop terminates at 3 at the latest.
	two := NewInt64(2)
	for {
		if c.ProbablyPrime(primalityReps) != Composite {
			return c, nil
		}
		c.SubAssign(two)
	}
}

/*
 * modular exponentiation
 */

// PowMod returns x^e mod m in [0, |m|). A zero modulus fails with
// ErrDivisionByZero. A negative exponent is resolved through the modular
// inverse of x, so it fails the same way when gcd(x, m) != 1.
func (x *Int) PowMod(e, m *Int) (*Int, error) {
	if m.IsZero() {
		return nil, ErrDivisionByZero
	}
	base := x
	exp := e
	if e.Sign() < 0 {
		inv, ok := x.ModInverse(m)
		if !ok {
			return nil, ErrDivisionByZero
		}
		base = inv
		exp = e.Neg()
	}
	z := New()
	z.c.z.PowMod(base.c.z, exp.c.z, m.c.z)
	return z, nil
}

// PowModSec returns x^e mod m using a constant-time exponentiation whose
// running time and memory access pattern depend only on operand sizes,
// for use with secret exponents. It requires e > 0 and an odd nonzero
// modulus; PowMod has no timing guarantee whatsoever.
func (x *Int) PowModSec(e, m *Int) (*Int, error) {
	if e.Sign() <= 0 {
		return nil, rangeErrorf("PowModSec", "exponent must be positive")
	}
	if m.IsZero() {
		return nil, ErrDivisionByZero
	}
	if !m.IsOdd() {
		return nil, rangeErrorf("PowModSec", "modulus must be odd")
	}
	z := New()
	z.c.z.PowModSec(x.c.z, e.c.z, m.c.z)
	return z, nil
}

/*
 * roots
 */

// Sqrt returns floor(sqrt(x)), or ErrNegativeSqrt for negative x.
func (x *Int) Sqrt() (*Int, error) {
	if x.Sign() < 0 {
		return nil, ErrNegativeSqrt
	}
	z := New()
	z.c.z.Sqrt(x.c.z)
	return z, nil
}

// SqrtRem returns s = floor(sqrt(x)) and r = x - s*s.
func (x *Int) SqrtRem() (s, r *Int, err error) {
	if x.Sign() < 0 {
		return nil, nil, ErrNegativeSqrt
	}
	s, r = New(), New()
	s.c.z.SqrtRem(r.c.z, x.c.z)
	return s, r, nil
}

// Root returns floor(x^(1/n)). n must be positive; an even n requires a
// non-negative x.
func (x *Int) Root(n uint) (*Int, error) {
	if n == 0 {
		return nil, rangeErrorf("Root", "order must be positive")
	}
	if x.Sign() < 0 && n%2 == 0 {
		return nil, ErrNegativeSqrt
	}
	z := New()
	z.c.z.Root(x.c.z, n)
	return z, nil
}

// RootRem returns s = floor(x^(1/n)) and r = x - s^n.
func (x *Int) RootRem(n uint) (s, r *Int, err error) {
	if n == 0 {
		return nil, nil, rangeErrorf("RootRem", "order must be positive")
	}
	if x.Sign() < 0 && n%2 == 0 {
		return nil, nil, ErrNegativeSqrt
	}
	s, r = New(), New()
	s.c.z.RootRem(r.c.z, x.c.z, n)
	return s, r, nil
}

// IsPerfectSquare reports whether x is the square of an integer.
// Negative values are not.
func (x *Int) IsPerfectSquare() bool { return x.c.z.PerfectSquare() }

// IsPerfectPower reports whether x = a^b for some integers a and b > 1.
func (x *Int) IsPerfectPower() bool { return x.c.z.PerfectPower() }

// RemoveFactor divides z by f as many times as it divides exactly and
// returns the multiplicity removed; zero multiplicity is valid and
// leaves z unchanged. f must not be -1, 0 or 1, which would divide
// forever.
func (z *Int) RemoveFactor(f *Int) (uint, error) {
	if f.IsZero() || f.CmpInt64(1) == 0 || f.CmpInt64(-1) == 0 {
		return 0, rangeErrorf("RemoveFactor", "factor must not be 0 or ±1")
	}
	z.ensureUnique()
	fz := f.c.z
	if f.c == z.c {
		// Removing a value from itself: work from an independent copy of
		// the factor so the engine never reads through the buffer it is
		// rewriting.
		fz = newCellCopy(f.c).z
	}
	n := z.c.z.Remove(z.c.z, fz)
	return n, nil
}
