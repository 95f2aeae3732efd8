package bignum

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/apmath/bignum/internal/engine"
)

// Float is an arbitrary-precision floating-point value mirroring Int's
// copy-on-write storage design, with one extra attribute: a per-value
// precision in bits. Every operation rounds its result to the result
// value's precision.
type Float struct {
	c *fcell
}

// fcell is the Float counterpart of cell.
type fcell struct {
	f    *engine.F
	refs atomic.Int32
}

func newFcell(prec uint) *fcell {
	c := &fcell{f: engine.NewF(prec)}
	c.refs.Store(1)
	return c
}

func newFcellCopy(other *fcell) *fcell {
	c := &fcell{f: engine.NewFCopy(other.f)}
	c.refs.Store(1)
	return c
}

func (c *fcell) retain() *fcell {
	c.refs.Add(1)
	return c
}

func (c *fcell) release() {
	if c.refs.Add(-1) == 0 {
		c.f.Clear()
	}
}

// defaultPrecMu serializes access to the engine's process-wide default
// precision, which is plain global state on the C side.
var defaultPrecMu sync.Mutex

// SetDefaultPrecision sets the process-wide default precision in bits.
// It affects only subsequently constructed Floats, never retroactively.
func SetDefaultPrecision(bits uint) error {
	if bits == 0 {
		return ErrInvalidPrecision
	}
	defaultPrecMu.Lock()
	defer defaultPrecMu.Unlock()
	engine.SetDefaultFloatPrec(bits)
	return nil
}

// DefaultPrecision returns the current default precision in bits.
func DefaultPrecision() uint {
	defaultPrecMu.Lock()
	defer defaultPrecMu.Unlock()
	return engine.DefaultFloatPrec()
}

// NewFloat returns a new Float holding 0 at the default precision.
func NewFloat() *Float { return &Float{c: newFcell(0)} }

// NewFloatPrec returns a new Float holding 0 with at least prec bits of
// precision. Non-positive precision is rejected.
func NewFloatPrec(prec uint) (*Float, error) {
	if prec == 0 {
		return nil, ErrInvalidPrecision
	}
	return &Float{c: newFcell(prec)}, nil
}

// NewFloatFromInt64 returns a new Float holding v at the default
// precision.
func NewFloatFromInt64(v int64) *Float {
	f := NewFloat()
	f.c.f.SetInt64(v)
	return f
}

// NewFloatFromFloat64 returns a new Float holding v. NaN and infinite
// inputs yield ErrNonFinite.
func NewFloatFromFloat64(v float64) (*Float, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNonFinite
	}
	f := NewFloat()
	f.c.f.SetFloat64(v)
	return f, nil
}

// NewFloatFromInt returns a new Float holding x, rounded to the default
// precision when x needs more bits.
func NewFloatFromInt(x *Int) *Float {
	f := NewFloat()
	f.c.f.SetZ(x.c.z)
	return f
}

// ParseFloat interprets s in the given base (2..62). The mantissa may
// carry a fraction after '.'; an exponent part follows 'e'/'E' for
// bases up to 10 and '@' for any base.
func ParseFloat(s string, base int) (*Float, error) {
	if base < 2 || base > 62 {
		return nil, rangeErrorf("ParseFloat", "base must be in 2..62, got %d", base)
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, ParseError{Input: s, Base: base}
	}
	f := NewFloat()
	if !f.c.f.SetString(trimmed, base) {
		return nil, ParseError{Input: clip(s, 64), Base: base}
	}
	return f, nil
}

// Copy returns a new handle sharing f's storage in O(1); the storage is
// cloned lazily on the first mutation through either handle.
func (f *Float) Copy() *Float {
	return &Float{c: f.c.retain()}
}

func (f *Float) ensureUnique() {
	if f.c.refs.Load() > 1 {
		fresh := newFcellCopy(f.c)
		f.c.release()
		f.c = fresh
	}
}

// Set rebinds f to the value (and precision) of x and returns f.
// Self-assignment is a no-op.
func (f *Float) Set(x *Float) *Float {
	if f.c == x.c {
		return f
	}
	old := f.c
	f.c = x.c.retain()
	old.release()
	return f
}

// SetInt64 sets f to v and returns f.
func (f *Float) SetInt64(v int64) *Float {
	f.ensureUnique()
	f.c.f.SetInt64(v)
	return f
}

// Prec returns f's precision in bits.
func (f *Float) Prec() uint { return f.c.f.Prec() }

// SetPrec changes f's precision in bits, truncating the value when the
// precision shrinks. Non-positive precision is rejected.
func (f *Float) SetPrec(bits uint) error {
	if bits == 0 {
		return ErrInvalidPrecision
	}
	f.ensureUnique()
	f.c.f.SetPrec(bits)
	return nil
}

// result allocates a Float wide enough for an operation over the given
// operands: the maximum of their precisions.
func result(precs ...*Float) *Float {
	var p uint
	for _, f := range precs {
		if fp := f.Prec(); fp > p {
			p = fp
		}
	}
	return &Float{c: newFcell(p)}
}

// Add returns x + y rounded to the wider operand precision.
func (x *Float) Add(y *Float) *Float {
	z := result(x, y)
	z.c.f.Add(x.c.f, y.c.f)
	return z
}

// AddAssign sets f = f + y, rounded to f's precision, and returns f.
func (f *Float) AddAssign(y *Float) *Float {
	f.ensureUnique()
	f.c.f.Add(f.c.f, y.c.f)
	return f
}

// Sub returns x - y rounded to the wider operand precision.
func (x *Float) Sub(y *Float) *Float {
	z := result(x, y)
	z.c.f.Sub(x.c.f, y.c.f)
	return z
}

// SubAssign sets f = f - y and returns f.
func (f *Float) SubAssign(y *Float) *Float {
	f.ensureUnique()
	f.c.f.Sub(f.c.f, y.c.f)
	return f
}

// Mul returns x * y rounded to the wider operand precision.
func (x *Float) Mul(y *Float) *Float {
	z := result(x, y)
	z.c.f.Mul(x.c.f, y.c.f)
	return z
}

// MulAssign sets f = f * y and returns f.
func (f *Float) MulAssign(y *Float) *Float {
	f.ensureUnique()
	f.c.f.Mul(f.c.f, y.c.f)
	return f
}

// Div returns x / y rounded to the wider operand precision; division by
// zero fails.
func (x *Float) Div(y *Float) (*Float, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	z := result(x, y)
	z.c.f.Div(x.c.f, y.c.f)
	return z, nil
}

// Sqrt returns the square root of x; negative x fails.
func (x *Float) Sqrt() (*Float, error) {
	if x.Sign() < 0 {
		return nil, ErrNegativeSqrt
	}
	z := result(x)
	z.c.f.Sqrt(x.c.f)
	return z, nil
}

// Pow returns x^n.
func (x *Float) Pow(n uint) *Float {
	z := result(x)
	z.c.f.PowUint(x.c.f, n)
	return z
}

// Neg returns -x.
func (x *Float) Neg() *Float {
	z := result(x)
	z.c.f.Neg(x.c.f)
	return z
}

// Abs returns |x|.
func (x *Float) Abs() *Float {
	z := result(x)
	z.c.f.Abs(x.c.f)
	return z
}

// Mul2Exp returns x * 2^n, exact.
func (x *Float) Mul2Exp(n uint) *Float {
	z := result(x)
	z.c.f.Mul2Exp(x.c.f, n)
	return z
}

// Div2Exp returns x / 2^n, exact up to x's precision.
func (x *Float) Div2Exp(n uint) *Float {
	z := result(x)
	z.c.f.Div2Exp(x.c.f, n)
	return z
}

// Floor returns x rounded toward -inf to an integer value.
func (x *Float) Floor() *Float {
	z := result(x)
	z.c.f.Floor(x.c.f)
	return z
}

// Ceil returns x rounded toward +inf to an integer value.
func (x *Float) Ceil() *Float {
	z := result(x)
	z.c.f.Ceil(x.c.f)
	return z
}

// Trunc returns x rounded toward zero to an integer value.
func (x *Float) Trunc() *Float {
	z := result(x)
	z.c.f.Trunc(x.c.f)
	return z
}

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Float) Sign() int { return x.c.f.Sign() }

// Cmp returns -1, 0 or +1 comparing x and y exactly.
func (x *Float) Cmp(y *Float) int { return x.c.f.Cmp(y.c.f) }

// Equal reports whether x and y compare equal.
func (x *Float) Equal(y *Float) bool { return x.Cmp(y) == 0 }

// Float64 returns x as a float64, truncating precision.
func (x *Float) Float64() float64 { return x.c.f.Float64() }

// Int64 returns x truncated toward zero; exact only when IsInt64
// reports true.
func (x *Float) Int64() int64 { return x.c.f.Int64() }

// IsInt64 reports whether the truncation of x fits an int64.
func (x *Float) IsInt64() bool { return x.c.f.FitsInt64() }

// IsInt reports whether x is an exact integer.
func (x *Float) IsInt() bool { return x.c.f.IsInt() }

// Int returns x truncated toward zero as an Int.
func (x *Float) Int() *Int {
	z := New()
	z.c.z.SetF(x.c.f)
	return z
}

// Text formats x in the given base with up to digits significant
// digits (0 = all meaningful digits), as a mantissa scaled by an
// explicit exponent: "0.ddd" followed by "e<exp>" for bases up to 10
// and "@<exp>" beyond, the form ParseFloat accepts back.
func (x *Float) Text(base int, digits int) (string, error) {
	if base < 2 || base > 62 {
		return "", rangeErrorf("Text", "base must be in 2..62, got %d", base)
	}
	if digits < 0 {
		return "", rangeErrorf("Text", "digit count must be non-negative")
	}
	mant, exp := x.c.f.Digits(base, digits)
	neg := strings.HasPrefix(mant, "-")
	if neg {
		mant = mant[1:]
	}
	if mant == "" {
		return "0", nil
	}
	marker := "e"
	if base > 10 {
		marker = "@"
	}
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString("0.")
	sb.WriteString(mant)
	sb.WriteString(marker)
	sb.WriteString(strconv.Itoa(exp))
	return sb.String(), nil
}

// String returns x in base 10 with full precision. It implements
// fmt.Stringer.
func (x *Float) String() string {
	if x == nil || x.c == nil {
		return "<nil>"
	}
	s, _ := x.Text(10, 0)
	return s
}
