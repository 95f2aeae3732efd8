package bignum

// The three division families differ only in how the quotient is rounded
// and, consequently, which sign the remainder carries:
//
//	family      quotient      remainder sign
//	Floor       toward -inf   sign of divisor
//	Ceil        toward +inf   opposite sign of divisor
//	Trunc       toward 0      sign of dividend
//
// All satisfy dividend = quotient*divisor + remainder, and all fail with
// ErrDivisionByZero on a zero divisor.

// FloorQuoRem returns the floor quotient and remainder of x by y.
func (x *Int) FloorQuoRem(y *Int) (q, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	q, r = New(), New()
	q.c.z.FloorQuoRem(r.c.z, x.c.z, y.c.z)
	return q, r, nil
}

// FloorQuo returns the quotient of x by y rounded toward -inf.
func (x *Int) FloorQuo(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	q := New()
	q.c.z.FloorQuo(x.c.z, y.c.z)
	return q, nil
}

// FloorRem returns x - floor(x/y)*y; the result has the sign of y.
func (x *Int) FloorRem(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	r := New()
	r.c.z.FloorRem(x.c.z, y.c.z)
	return r, nil
}

// CeilQuoRem returns the ceiling quotient and remainder of x by y.
func (x *Int) CeilQuoRem(y *Int) (q, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	q, r = New(), New()
	q.c.z.CeilQuoRem(r.c.z, x.c.z, y.c.z)
	return q, r, nil
}

// CeilQuo returns the quotient of x by y rounded toward +inf.
func (x *Int) CeilQuo(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	q := New()
	q.c.z.CeilQuo(x.c.z, y.c.z)
	return q, nil
}

// CeilRem returns x - ceil(x/y)*y; the result has the opposite sign of y.
func (x *Int) CeilRem(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	r := New()
	r.c.z.CeilRem(x.c.z, y.c.z)
	return r, nil
}

// TruncQuoRem returns the truncating quotient and remainder of x by y.
func (x *Int) TruncQuoRem(y *Int) (q, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	q, r = New(), New()
	q.c.z.TruncQuoRem(r.c.z, x.c.z, y.c.z)
	return q, r, nil
}

// TruncQuo returns the quotient of x by y rounded toward zero.
func (x *Int) TruncQuo(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	q := New()
	q.c.z.TruncQuo(x.c.z, y.c.z)
	return q, nil
}

// TruncRem returns x - trunc(x/y)*y; the result has the sign of x.
func (x *Int) TruncRem(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	r := New()
	r.c.z.TruncRem(x.c.z, y.c.z)
	return r, nil
}

/*
 * native divisor variants
 */

// FloorQuoRemInt64 is FloorQuoRem with a native divisor.
func (x *Int) FloorQuoRemInt64(d int64) (q, r *Int, err error) {
	return x.FloorQuoRem(NewInt64(d))
}

// FloorQuoInt64 is FloorQuo with a native divisor.
func (x *Int) FloorQuoInt64(d int64) (*Int, error) {
	return x.FloorQuo(NewInt64(d))
}

// FloorRemInt64 is FloorRem with a native divisor.
func (x *Int) FloorRemInt64(d int64) (*Int, error) {
	return x.FloorRem(NewInt64(d))
}

// CeilQuoRemInt64 is CeilQuoRem with a native divisor.
func (x *Int) CeilQuoRemInt64(d int64) (q, r *Int, err error) {
	return x.CeilQuoRem(NewInt64(d))
}

// CeilQuoInt64 is CeilQuo with a native divisor.
func (x *Int) CeilQuoInt64(d int64) (*Int, error) {
	return x.CeilQuo(NewInt64(d))
}

// CeilRemInt64 is CeilRem with a native divisor.
func (x *Int) CeilRemInt64(d int64) (*Int, error) {
	return x.CeilRem(NewInt64(d))
}

// TruncQuoRemInt64 is TruncQuoRem with a native divisor.
func (x *Int) TruncQuoRemInt64(d int64) (q, r *Int, err error) {
	return x.TruncQuoRem(NewInt64(d))
}

// TruncQuoInt64 is TruncQuo with a native divisor.
func (x *Int) TruncQuoInt64(d int64) (*Int, error) {
	return x.TruncQuo(NewInt64(d))
}

// TruncRemInt64 is TruncRem with a native divisor.
func (x *Int) TruncRemInt64(d int64) (*Int, error) {
	return x.TruncRem(NewInt64(d))
}

/*
 * modulo, exact division, predicates
 */

// Mod returns x mod m, always in [0, |m|): the modulus sign affects
// nothing but is tolerated. Mod by zero fails.
func (x *Int) Mod(m *Int) (*Int, error) {
	if m.IsZero() {
		return nil, ErrDivisionByZero
	}
	r := New()
	r.c.z.Mod(x.c.z, m.c.z)
	return r, nil
}

// DivExact returns x / y assuming y divides x exactly. This is a
// performance escape hatch: when the assumption does not hold the result
// is undefined, not merely wrong-signed. Use IsDivisibleBy first when
// unsure. Division by zero still fails explicitly.
func (x *Int) DivExact(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	q := New()
	q.c.z.DivExact(x.c.z, y.c.z)
	return q, nil
}

// IsDivisibleBy reports whether y divides x. Zero divides only zero.
func (x *Int) IsDivisibleBy(y *Int) bool {
	return x.c.z.Divisible(y.c.z)
}

// IsDivisibleByInt64 is IsDivisibleBy with a native divisor.
func (x *Int) IsDivisibleByInt64(d int64) bool {
	return x.IsDivisibleBy(NewInt64(d))
}

// IsCongruent reports whether x is congruent to c modulo m. A zero
// modulus means exact equality.
func (x *Int) IsCongruent(c, m *Int) bool {
	return x.c.z.Congruent(c.c.z, m.c.z)
}

/*
 * power-of-two variants
 *
 * The count parameter is unsigned, so the "negative exponent" error of
 * the general API is unrepresentable here.
 */

// FloorQuoPow2 returns floor(x / 2^n).
func (x *Int) FloorQuoPow2(n uint) *Int {
	z := New()
	z.c.z.FloorQuoPow2(x.c.z, n)
	return z
}

// FloorRemPow2 returns x mod 2^n, non-negative.
func (x *Int) FloorRemPow2(n uint) *Int {
	z := New()
	z.c.z.FloorRemPow2(x.c.z, n)
	return z
}

// CeilQuoPow2 returns ceil(x / 2^n).
func (x *Int) CeilQuoPow2(n uint) *Int {
	z := New()
	z.c.z.CeilQuoPow2(x.c.z, n)
	return z
}

// CeilRemPow2 returns the ceiling-remainder of x by 2^n, non-positive.
func (x *Int) CeilRemPow2(n uint) *Int {
	z := New()
	z.c.z.CeilRemPow2(x.c.z, n)
	return z
}

// TruncQuoPow2 returns trunc(x / 2^n).
func (x *Int) TruncQuoPow2(n uint) *Int {
	z := New()
	z.c.z.TruncQuoPow2(x.c.z, n)
	return z
}

// TruncRemPow2 returns the truncating remainder of x by 2^n, with the
// sign of x.
func (x *Int) TruncRemPow2(n uint) *Int {
	z := New()
	z.c.z.TruncRemPow2(x.c.z, n)
	return z
}
