package bignum

import (
	"errors"
	"testing"
)

func TestGCDAndLCM(t *testing.T) {
	if got := GCD(NewInt64(48), NewInt64(18)).Int64(); got != 6 {
		t.Errorf("gcd(48, 18) = %d, want 6", got)
	}
	// Always non-negative, whatever the operand signs.
	if got := GCD(NewInt64(-48), NewInt64(18)).Int64(); got != 6 {
		t.Errorf("gcd(-48, 18) = %d, want 6", got)
	}
	if got := GCD(New(), New()).Int64(); got != 0 {
		t.Errorf("gcd(0, 0) = %d, want 0", got)
	}
	if got := GCD(New(), NewInt64(-7)).Int64(); got != 7 {
		t.Errorf("gcd(0, -7) = %d, want 7", got)
	}
	if got := LCM(NewInt64(4), NewInt64(6)).Int64(); got != 12 {
		t.Errorf("lcm(4, 6) = %d, want 12", got)
	}
	if got := LCM(NewInt64(-4), NewInt64(6)).Int64(); got != 12 {
		t.Errorf("lcm(-4, 6) = %d, want 12", got)
	}
	if got := LCM(New(), NewInt64(5)).Int64(); got != 0 {
		t.Errorf("lcm(0, 5) = %d, want 0", got)
	}
}

func TestGCDExtBezout(t *testing.T) {
	cases := [][2]int64{{240, 46}, {-240, 46}, {17, 5}, {0, 9}, {12, 0}}
	for _, c := range cases {
		a, b := NewInt64(c[0]), NewInt64(c[1])
		g, s, t2 := GCDExt(a, b)
		// a*s + b*t must reproduce g exactly.
		sum := a.Mul(s).Add(b.Mul(t2))
		if !sum.Equal(g) {
			t.Errorf("Bézout broken for (%d, %d): %s*%s + %s*%s = %s, g = %s",
				c[0], c[1], a, s, b, t2, sum, g)
		}
		if g.Sign() < 0 {
			t.Errorf("gcd(%d, %d) = %s is negative", c[0], c[1], g)
		}
	}
}

func TestModInverse(t *testing.T) {
	inv, ok := NewInt64(3).ModInverse(NewInt64(7))
	if !ok || inv.Int64() != 5 {
		t.Errorf("3^-1 mod 7 = (%s, %v), want (5, true)", inv, ok)
	}
	// Result is the canonical representative in [0, m).
	if inv.Sign() < 0 || inv.Cmp(NewInt64(7)) >= 0 {
		t.Errorf("inverse %s not reduced", inv)
	}
	// gcd(6, 9) = 3: no inverse.
	if _, ok := NewInt64(6).ModInverse(NewInt64(9)); ok {
		t.Error("6 mod 9 should have no inverse")
	}
	if _, ok := NewInt64(3).ModInverse(New()); ok {
		t.Error("inverse mod 0 should not exist")
	}
	// (x * x^-1) mod m == 1 over a spread of values.
	m := NewInt64(101)
	for x := int64(1); x < 101; x++ {
		inv, ok := NewInt64(x).ModInverse(m)
		if !ok {
			t.Fatalf("no inverse of %d mod 101", x)
		}
		prod, _ := NewInt64(x).Mul(inv).Mod(m)
		if prod.Int64() != 1 {
			t.Errorf("%d * %s mod 101 = %s", x, inv, prod)
		}
	}
}

func TestJacobiAndKronecker(t *testing.T) {
	// (2/15) = 1, (7/15) = -1, (3/15) = 0.
	if got := Jacobi(NewInt64(2), NewInt64(15)); got != 1 {
		t.Errorf("(2/15) = %d, want 1", got)
	}
	if got := Jacobi(NewInt64(7), NewInt64(15)); got != -1 {
		t.Errorf("(7/15) = %d, want -1", got)
	}
	if got := Jacobi(NewInt64(3), NewInt64(15)); got != 0 {
		t.Errorf("(3/15) = %d, want 0", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Jacobi with even modulus should panic")
		}
	}()
	Jacobi(NewInt64(3), NewInt64(8))
}

func TestKroneckerExtendsJacobi(t *testing.T) {
	// Kronecker agrees with Jacobi where both are defined.
	if got := Kronecker(NewInt64(7), NewInt64(15)); got != -1 {
		t.Errorf("kronecker(7, 15) = %d", got)
	}
	// (x/2) cases: 0 for even x, 1 for x ≡ ±1 (mod 8), -1 for x ≡ ±3.
	if got := Kronecker(NewInt64(4), NewInt64(2)); got != 0 {
		t.Errorf("kronecker(4, 2) = %d, want 0", got)
	}
	if got := Kronecker(NewInt64(7), NewInt64(2)); got != 1 {
		t.Errorf("kronecker(7, 2) = %d, want 1", got)
	}
	if got := Kronecker(NewInt64(3), NewInt64(2)); got != -1 {
		t.Errorf("kronecker(3, 2) = %d, want -1", got)
	}
}

func TestPrimality(t *testing.T) {
	// Small values are settled definitively.
	if got := NewInt64(17).ProbablyPrime(25); got != DefinitelyPrime {
		t.Errorf("17: %v, want DefinitelyPrime", got)
	}
	if got := NewInt64(18).ProbablyPrime(25); got != Composite {
		t.Errorf("18: %v, want Composite", got)
	}
	if got := NewInt64(1).ProbablyPrime(25); got != Composite {
		t.Errorf("1: %v, want Composite", got)
	}
	// 2^127 - 1 is a Mersenne prime, far past the definite range.
	m127 := NewInt64(1).Lsh(127).SubInt64(1)
	if got := m127.ProbablyPrime(25); got == Composite {
		t.Error("2^127-1 reported composite")
	}
	// Carmichael number 561 must still be caught by Miller-Rabin.
	if got := NewInt64(561).ProbablyPrime(25); got != Composite {
		t.Errorf("561: %v, want Composite", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("ProbablyPrime(0) should panic")
		}
	}()
	NewInt64(7).ProbablyPrime(0)
}

func TestNextAndPreviousPrime(t *testing.T) {
	if got := NewInt64(10).NextPrime().Int64(); got != 11 {
		t.Errorf("next prime after 10 = %d", got)
	}
	if got := NewInt64(11).NextPrime().Int64(); got != 13 {
		t.Errorf("next prime after 11 = %d", got)
	}
	if got := NewInt64(-5).NextPrime().Int64(); got != 2 {
		t.Errorf("next prime after -5 = %d", got)
	}

	cases := []struct{ x, want int64 }{{10, 7}, {8, 7}, {3, 2}, {100, 97}}
	for _, c := range cases {
		p, err := NewInt64(c.x).PreviousPrime()
		if err != nil {
			t.Fatalf("PreviousPrime(%d): %v", c.x, err)
		}
		if p.Int64() != c.want {
			t.Errorf("previous prime below %d = %s, want %d", c.x, p, c.want)
		}
	}
	for _, x := range []int64{2, 1, 0, -9} {
		if _, err := NewInt64(x).PreviousPrime(); err == nil {
			t.Errorf("PreviousPrime(%d) should fail", x)
		}
	}
}

func TestPowMod(t *testing.T) {
	got, err := NewInt64(4).PowMod(NewInt64(13), NewInt64(497))
	if err != nil || got.Int64() != 445 {
		t.Errorf("4^13 mod 497 = (%s, %v), want 445", got, err)
	}
	// Zero exponent yields 1 for any nonzero modulus.
	got, err = NewInt64(9).PowMod(New(), NewInt64(7))
	if err != nil || got.Int64() != 1 {
		t.Errorf("9^0 mod 7 = (%s, %v), want 1", got, err)
	}
	// Negative exponent goes through the inverse: 3^-1 mod 7 = 5.
	got, err = NewInt64(3).PowMod(NewInt64(-1), NewInt64(7))
	if err != nil || got.Int64() != 5 {
		t.Errorf("3^-1 mod 7 = (%s, %v), want 5", got, err)
	}
	// ... and fails when no inverse exists.
	if _, err := NewInt64(6).PowMod(NewInt64(-2), NewInt64(9)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("6^-2 mod 9: %v", err)
	}
	if _, err := NewInt64(2).PowMod(NewInt64(5), New()); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("mod 0: %v", err)
	}
	// Result stays in [0, |m|) even for negative bases.
	got, _ = NewInt64(-2).PowMod(NewInt64(3), NewInt64(5))
	if got.Int64() != 2 {
		t.Errorf("(-2)^3 mod 5 = %s, want 2", got)
	}
}

func TestPowModSec(t *testing.T) {
	got, err := NewInt64(4).PowModSec(NewInt64(13), NewInt64(497))
	if err != nil || got.Int64() != 445 {
		t.Errorf("secure 4^13 mod 497 = (%s, %v)", got, err)
	}
	// Preconditions: positive exponent, odd nonzero modulus.
	if _, err := NewInt64(4).PowModSec(New(), NewInt64(7)); err == nil {
		t.Error("zero exponent should be rejected")
	}
	if _, err := NewInt64(4).PowModSec(NewInt64(-3), NewInt64(7)); err == nil {
		t.Error("negative exponent should be rejected")
	}
	if _, err := NewInt64(4).PowModSec(NewInt64(3), NewInt64(8)); err == nil {
		t.Error("even modulus should be rejected")
	}
	if _, err := NewInt64(4).PowModSec(NewInt64(3), New()); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("zero modulus: %v", err)
	}
	// Agrees with the variable-time path on valid inputs.
	a, _ := NewInt64(123456).PowMod(NewInt64(789), NewInt64(1000003))
	b, err := NewInt64(123456).PowModSec(NewInt64(789), NewInt64(1000003))
	if err != nil || !a.Equal(b) {
		t.Errorf("sec/nonsec disagree: %s vs %s (%v)", a, b, err)
	}
}

func TestRoots(t *testing.T) {
	s, err := NewInt64(99).Sqrt()
	if err != nil || s.Int64() != 9 {
		t.Errorf("sqrt(99) = (%s, %v), want 9", s, err)
	}
	if _, err := NewInt64(-1).Sqrt(); !errors.Is(err, ErrNegativeSqrt) {
		t.Errorf("sqrt(-1): %v", err)
	}
	s, r, err := NewInt64(99).SqrtRem()
	if err != nil || s.Int64() != 9 || r.Int64() != 18 {
		t.Errorf("sqrtrem(99) = (%s, %s, %v)", s, r, err)
	}

	c, err := NewInt64(-27).Root(3)
	if err != nil || c.Int64() != -3 {
		t.Errorf("cbrt(-27) = (%s, %v), want -3", c, err)
	}
	if _, err := NewInt64(-16).Root(4); !errors.Is(err, ErrNegativeSqrt) {
		t.Errorf("(-16)^(1/4): %v", err)
	}
	if _, err := NewInt64(16).Root(0); err == nil {
		t.Error("zeroth root should fail")
	}
	s, r, err = NewInt64(100).RootRem(3)
	if err != nil || s.Int64() != 4 || r.Int64() != 36 {
		t.Errorf("rootrem(100, 3) = (%s, %s, %v)", s, r, err)
	}
}

func TestPerfectPredicates(t *testing.T) {
	if !NewInt64(144).IsPerfectSquare() || NewInt64(145).IsPerfectSquare() {
		t.Error("IsPerfectSquare wrong around 144")
	}
	if NewInt64(-4).IsPerfectSquare() {
		t.Error("-4 reported as perfect square")
	}
	if !New().IsPerfectSquare() {
		t.Error("0 is a perfect square")
	}
	if !NewInt64(27).IsPerfectPower() || !NewInt64(-27).IsPerfectPower() {
		t.Error("±27 are perfect powers (cube)")
	}
	if NewInt64(20).IsPerfectPower() {
		t.Error("20 reported as perfect power")
	}
}

func TestRemoveFactor(t *testing.T) {
	z := NewInt64(2 * 2 * 2 * 3 * 5)
	n, err := z.RemoveFactor(NewInt64(2))
	if err != nil || n != 3 || z.Int64() != 15 {
		t.Errorf("RemoveFactor(120, 2) = (%d, %v), rest %s", n, err, z)
	}
	// Zero multiplicity leaves the value untouched.
	n, err = z.RemoveFactor(NewInt64(7))
	if err != nil || n != 0 || z.Int64() != 15 {
		t.Errorf("RemoveFactor(15, 7) = (%d, %v), rest %s", n, err, z)
	}
	for _, f := range []int64{0, 1, -1} {
		if _, err := NewInt64(10).RemoveFactor(NewInt64(f)); err == nil {
			t.Errorf("RemoveFactor(%d) should fail", f)
		}
	}
	// Aliased factor: removing z from itself once.
	a := NewInt64(6)
	n, err = a.RemoveFactor(a)
	if err != nil || n != 1 || a.Int64() != 1 {
		t.Errorf("self RemoveFactor = (%d, %v), rest %s", n, err, a)
	}
	// COW: removing from a copy must not touch the original.
	orig := NewInt64(24)
	cp := orig.Copy()
	cp.RemoveFactor(NewInt64(2))
	if orig.Int64() != 24 || cp.Int64() != 3 {
		t.Errorf("COW broken: orig=%s cp=%s", orig, cp)
	}
}
