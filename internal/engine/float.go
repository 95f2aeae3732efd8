package engine

/*
#cgo LDFLAGS: -lgmp
#include <gmp.h>
#include <stdlib.h>

static int f_sgn(const mpf_t f) { return mpf_sgn(f); }
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// F is one GMP floating-point buffer (mpf_t) with a fixed per-value
// precision in bits.
type F struct {
	f       C.mpf_t
	cleared bool
}

// SetDefaultFloatPrec sets the process-wide default precision, in bits,
// for subsequently created F buffers. Existing buffers are unaffected.
func SetDefaultFloatPrec(bits uint) {
	C.mpf_set_default_prec(C.mp_bitcnt_t(bits))
}

// DefaultFloatPrec returns the current default precision in bits.
func DefaultFloatPrec() uint {
	return uint(C.mpf_get_default_prec())
}

// NewF returns a new buffer holding 0 with at least prec bits of
// precision; prec 0 selects the default precision.
func NewF(prec uint) *F {
	f := &F{}
	if prec == 0 {
		C.mpf_init(&f.f[0])
	} else {
		C.mpf_init2(&f.f[0], C.mp_bitcnt_t(prec))
	}
	runtime.SetFinalizer(f, (*F).finalize)
	return f
}

// NewFCopy returns a new buffer with x's precision holding a deep copy
// of x.
func NewFCopy(x *F) *F {
	f := NewF(x.Prec())
	f.Set(x)
	return f
}

func (f *F) finalize() {
	if !f.cleared {
		f.cleared = true
		C.mpf_clear(&f.f[0])
	}
}

// Clear releases the buffer eagerly.
func (f *F) Clear() { f.finalize() }

// Prec returns f's precision in bits.
func (f *F) Prec() uint { return uint(C.mpf_get_prec(&f.f[0])) }

// SetPrec changes f's precision in bits, truncating the value if it
// shrinks.
func (f *F) SetPrec(bits uint) { C.mpf_set_prec(&f.f[0], C.mp_bitcnt_t(bits)) }

// Set sets f = x, rounded to f's precision.
func (f *F) Set(x *F) { C.mpf_set(&f.f[0], &x.f[0]) }

// SetInt64 sets f to the exact value of v.
func (f *F) SetInt64(v int64) { C.mpf_set_si(&f.f[0], C.long(v)) }

// SetFloat64 sets f to v. v must be finite.
func (f *F) SetFloat64(v float64) { C.mpf_set_d(&f.f[0], C.double(v)) }

// SetZ sets f to the integer x, rounded to f's precision.
func (f *F) SetZ(x *Z) { C.mpf_set_z(&f.f[0], &x.z[0]) }

// SetString parses s in the given base (2..62) and reports success.
func (f *F) SetString(s string, base int) bool {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return C.mpf_set_str(&f.f[0], cs, C.int(base)) == 0
}

// Float64 returns f as a float64, truncating precision.
func (f *F) Float64() float64 { return float64(C.mpf_get_d(&f.f[0])) }

// Int64 returns f truncated toward zero; exact only when the value fits.
func (f *F) Int64() int64 { return int64(C.mpf_get_si(&f.f[0])) }

// FitsInt64 reports whether the truncation of f fits an int64.
func (f *F) FitsInt64() bool { return C.mpf_fits_slong_p(&f.f[0]) != 0 }

// IsInt reports whether f is an exact integer.
func (f *F) IsInt() bool { return C.mpf_integer_p(&f.f[0]) != 0 }

// Digits returns up to n significant digits of f in the given base,
// most significant first without a radix point, together with the
// decimal exponent such that f = 0.mantissa * base^exp. n = 0 requests
// all meaningful digits.
func (f *F) Digits(base int, n int) (mantissa string, exp int) {
	var e C.mp_exp_t
	p := C.mpf_get_str(nil, &e, C.int(base), C.size_t(n), &f.f[0])
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p), int(e)
}

// Sign returns -1, 0 or +1 according to the sign of f.
func (f *F) Sign() int { return int(C.f_sgn(&f.f[0])) }

// Cmp returns -1, 0 or +1 comparing f and x.
func (f *F) Cmp(x *F) int { return norm(int(C.mpf_cmp(&f.f[0], &x.f[0]))) }

// Add sets f = x + y, rounded to f's precision.
func (f *F) Add(x, y *F) { C.mpf_add(&f.f[0], &x.f[0], &y.f[0]) }

// Sub sets f = x - y, rounded to f's precision.
func (f *F) Sub(x, y *F) { C.mpf_sub(&f.f[0], &x.f[0], &y.f[0]) }

// Mul sets f = x * y, rounded to f's precision.
func (f *F) Mul(x, y *F) { C.mpf_mul(&f.f[0], &x.f[0], &y.f[0]) }

// Div sets f = x / y, rounded to f's precision. y must be nonzero.
func (f *F) Div(x, y *F) { C.mpf_div(&f.f[0], &x.f[0], &y.f[0]) }

// Sqrt sets f = sqrt(x). x must be non-negative.
func (f *F) Sqrt(x *F) { C.mpf_sqrt(&f.f[0], &x.f[0]) }

// PowUint sets f = x^n.
func (f *F) PowUint(x *F, n uint) { C.mpf_pow_ui(&f.f[0], &x.f[0], C.ulong(n)) }

// Neg sets f = -x.
func (f *F) Neg(x *F) { C.mpf_neg(&f.f[0], &x.f[0]) }

// Abs sets f = |x|.
func (f *F) Abs(x *F) { C.mpf_abs(&f.f[0], &x.f[0]) }

// Mul2Exp sets f = x * 2^n.
func (f *F) Mul2Exp(x *F, n uint) { C.mpf_mul_2exp(&f.f[0], &x.f[0], C.mp_bitcnt_t(n)) }

// Div2Exp sets f = x / 2^n.
func (f *F) Div2Exp(x *F, n uint) { C.mpf_div_2exp(&f.f[0], &x.f[0], C.mp_bitcnt_t(n)) }

// Floor sets f = floor(x).
func (f *F) Floor(x *F) { C.mpf_floor(&f.f[0], &x.f[0]) }

// Ceil sets f = ceil(x).
func (f *F) Ceil(x *F) { C.mpf_ceil(&f.f[0], &x.f[0]) }

// Trunc sets f = trunc(x), rounding toward zero.
func (f *F) Trunc(x *F) { C.mpf_trunc(&f.f[0], &x.f[0]) }

// SetF sets z to x truncated toward zero.
func (z *Z) SetF(x *F) { C.mpz_set_f(&z.z[0], &x.f[0]) }
