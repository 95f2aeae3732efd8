package bignum

import (
	"errors"
	"testing"
)

// The canonical examples of the three rounding families, -17 and 17 by 5.
func TestDivisionFamilies(t *testing.T) {
	cases := []struct {
		name       string
		x, y       int64
		div        func(x, y *Int) (*Int, *Int, error)
		wantQ      int64
		wantR      int64
	}{
		{"trunc 17/5", 17, 5, (*Int).TruncQuoRem, 3, 2},
		{"trunc -17/5", -17, 5, (*Int).TruncQuoRem, -3, -2},
		{"trunc 17/-5", 17, -5, (*Int).TruncQuoRem, -3, 2},
		{"trunc -17/-5", -17, -5, (*Int).TruncQuoRem, 3, -2},
		{"floor 17/5", 17, 5, (*Int).FloorQuoRem, 3, 2},
		{"floor -17/5", -17, 5, (*Int).FloorQuoRem, -4, 3},
		{"floor 17/-5", 17, -5, (*Int).FloorQuoRem, -4, -3},
		{"floor -17/-5", -17, -5, (*Int).FloorQuoRem, 3, -2},
		{"ceil 17/5", 17, 5, (*Int).CeilQuoRem, 4, -3},
		{"ceil -17/5", -17, 5, (*Int).CeilQuoRem, -3, -2},
		{"ceil 17/-5", 17, -5, (*Int).CeilQuoRem, -3, 2},
		{"ceil -17/-5", -17, -5, (*Int).CeilQuoRem, 4, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, r, err := c.div(NewInt64(c.x), NewInt64(c.y))
			if err != nil {
				t.Fatal(err)
			}
			if q.Int64() != c.wantQ || r.Int64() != c.wantR {
				t.Errorf("got (%s, %s), want (%d, %d)", q, r, c.wantQ, c.wantR)
			}
			// dividend = q*divisor + r must hold for every family.
			back := q.MulInt64(c.y).Add(r)
			if back.Int64() != c.x {
				t.Errorf("identity broken: %s*%d + %s = %s", q, c.y, r, back)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	x := NewInt64(5)
	zero := New()
	if _, _, err := x.FloorQuoRem(zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("FloorQuoRem by zero: %v", err)
	}
	if _, _, err := x.CeilQuoRem(zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("CeilQuoRem by zero: %v", err)
	}
	if _, _, err := x.TruncQuoRem(zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("TruncQuoRem by zero: %v", err)
	}
	if _, err := x.FloorQuo(zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("FloorQuo by zero: %v", err)
	}
	if _, err := x.Mod(zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Mod by zero: %v", err)
	}
	if _, err := x.DivExact(zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("DivExact by zero: %v", err)
	}
}

func TestSingleEntryPoints(t *testing.T) {
	x, y := NewInt64(-17), NewInt64(5)
	q, _ := x.FloorQuo(y)
	r, _ := x.FloorRem(y)
	if q.Int64() != -4 || r.Int64() != 3 {
		t.Errorf("floor(-17/5) = (%s, %s)", q, r)
	}
	q, _ = x.CeilQuo(y)
	r, _ = x.CeilRem(y)
	if q.Int64() != -3 || r.Int64() != -2 {
		t.Errorf("ceil(-17/5) = (%s, %s)", q, r)
	}
	q, _ = x.TruncQuo(y)
	r, _ = x.TruncRem(y)
	if q.Int64() != -3 || r.Int64() != -2 {
		t.Errorf("trunc(-17/5) = (%s, %s)", q, r)
	}
}

func TestNativeDivisorVariants(t *testing.T) {
	q, r, err := NewInt64(17).TruncQuoRemInt64(5)
	if err != nil || q.Int64() != 3 || r.Int64() != 2 {
		t.Errorf("TruncQuoRemInt64(17, 5) = (%s, %s, %v)", q, r, err)
	}
	q, r, err = NewInt64(-17).FloorQuoRemInt64(5)
	if err != nil || q.Int64() != -4 || r.Int64() != 3 {
		t.Errorf("FloorQuoRemInt64(-17, 5) = (%s, %s, %v)", q, r, err)
	}
	q, r, err = NewInt64(-17).CeilQuoRemInt64(5)
	if err != nil || q.Int64() != -3 || r.Int64() != -2 {
		t.Errorf("CeilQuoRemInt64(-17, 5) = (%s, %s, %v)", q, r, err)
	}
}

// Each family's quotient-only and remainder-only entry points are also
// available against a native divisor and agree with the *Int forms.
func TestNativeDivisorSingleEntryPoints(t *testing.T) {
	cases := []struct {
		name string
		op   func(x *Int, d int64) (*Int, error)
		x, d int64
		want int64
	}{
		{"FloorQuoInt64", (*Int).FloorQuoInt64, -17, 5, -4},
		{"FloorRemInt64", (*Int).FloorRemInt64, -17, 5, 3},
		{"FloorQuoInt64 neg divisor", (*Int).FloorQuoInt64, 17, -5, -4},
		{"FloorRemInt64 neg divisor", (*Int).FloorRemInt64, 17, -5, -3},
		{"CeilQuoInt64", (*Int).CeilQuoInt64, -17, 5, -3},
		{"CeilRemInt64", (*Int).CeilRemInt64, -17, 5, -2},
		{"TruncQuoInt64", (*Int).TruncQuoInt64, -17, 5, -3},
		{"TruncRemInt64", (*Int).TruncRemInt64, -17, 5, -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.op(NewInt64(c.x), c.d)
			if err != nil {
				t.Fatal(err)
			}
			if got.Int64() != c.want {
				t.Errorf("got %s, want %d", got, c.want)
			}
		})
	}

	for _, c := range []struct {
		name string
		op   func(x *Int, d int64) (*Int, error)
	}{
		{"FloorQuoInt64", (*Int).FloorQuoInt64},
		{"FloorRemInt64", (*Int).FloorRemInt64},
		{"CeilQuoInt64", (*Int).CeilQuoInt64},
		{"CeilRemInt64", (*Int).CeilRemInt64},
		{"TruncQuoInt64", (*Int).TruncQuoInt64},
		{"TruncRemInt64", (*Int).TruncRemInt64},
	} {
		if _, err := c.op(NewInt64(1), 0); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%s by zero: %v", c.name, err)
		}
	}
}

func TestMod(t *testing.T) {
	// Mod is non-negative in [0, |m|) regardless of either sign.
	cases := []struct{ x, m, want int64 }{
		{17, 5, 2}, {-17, 5, 3}, {17, -5, 2}, {-17, -5, 3}, {0, 7, 0},
	}
	for _, c := range cases {
		got, err := NewInt64(c.x).Mod(NewInt64(c.m))
		if err != nil {
			t.Fatal(err)
		}
		if got.Int64() != c.want {
			t.Errorf("Mod(%d, %d) = %s, want %d", c.x, c.m, got, c.want)
		}
	}
}

func TestDivExact(t *testing.T) {
	x := NewInt64(7 * 11 * 13)
	q, err := x.DivExact(NewInt64(11))
	if err != nil || q.Int64() != 7*13 {
		t.Errorf("DivExact(1001, 11) = (%s, %v)", q, err)
	}
}

func TestDivisibility(t *testing.T) {
	if !NewInt64(1001).IsDivisibleBy(NewInt64(13)) {
		t.Error("13 should divide 1001")
	}
	if NewInt64(1001).IsDivisibleBy(NewInt64(9)) {
		t.Error("9 should not divide 1001")
	}
	if !NewInt64(-24).IsDivisibleByInt64(6) {
		t.Error("6 should divide -24")
	}
	// Zero divides only zero.
	if NewInt64(5).IsDivisibleBy(New()) {
		t.Error("0 should not divide 5")
	}
	if !New().IsDivisibleBy(New()) {
		t.Error("0 should divide 0")
	}
}

func TestCongruence(t *testing.T) {
	if !NewInt64(17).IsCongruent(NewInt64(2), NewInt64(5)) {
		t.Error("17 ≡ 2 (mod 5) should hold")
	}
	if NewInt64(17).IsCongruent(NewInt64(3), NewInt64(5)) {
		t.Error("17 ≡ 3 (mod 5) should not hold")
	}
	// Congruence mod 0 means exact equality.
	if !NewInt64(9).IsCongruent(NewInt64(9), New()) {
		t.Error("9 ≡ 9 (mod 0) should hold")
	}
	if NewInt64(9).IsCongruent(NewInt64(-9), New()) {
		t.Error("9 ≡ -9 (mod 0) should not hold")
	}
}

func TestPow2Division(t *testing.T) {
	x := NewInt64(-17)
	if got := x.FloorQuoPow2(2).Int64(); got != -5 {
		t.Errorf("floor(-17/4) = %d, want -5", got)
	}
	if got := x.CeilQuoPow2(2).Int64(); got != -4 {
		t.Errorf("ceil(-17/4) = %d, want -4", got)
	}
	if got := x.TruncQuoPow2(2).Int64(); got != -4 {
		t.Errorf("trunc(-17/4) = %d, want -4", got)
	}
	if got := x.FloorRemPow2(2).Int64(); got != 3 {
		t.Errorf("-17 mod 4 = %d, want 3", got)
	}
	if got := x.TruncRemPow2(2).Int64(); got != -1 {
		t.Errorf("truncrem(-17, 4) = %d, want -1", got)
	}
	if got := x.CeilRemPow2(2).Int64(); got != -1 {
		t.Errorf("ceilrem(-17, 4) = %d, want -1", got)
	}
	// Each family's q*2^n + r = x.
	for n := uint(0); n < 8; n++ {
		q, r := x.FloorQuoPow2(n), x.FloorRemPow2(n)
		if q.Lsh(n).Add(r).Int64() != -17 {
			t.Errorf("floor pow2 identity broken at n=%d", n)
		}
	}
}
