package engine

/*
#cgo LDFLAGS: -lgmp
#include <gmp.h>
#include <stdlib.h>

// GMP exposes a handful of predicates only as macros. cgo cannot call
// macros, so they are rewrapped as real functions, the same trick the
// upstream C bridges use.
static int z_sgn(const mpz_t z)            { return mpz_sgn(z); }
static int z_odd(const mpz_t z)            { return mpz_odd_p(z); }
static int z_cmp_si(const mpz_t z, long v) { return mpz_cmp_si(z, v); }
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Z is one GMP integer buffer (mpz_t). The zero value is not usable;
// buffers come from NewZ and friends.
type Z struct {
	z       C.mpz_t
	cleared bool
}

// NewZ returns a new buffer holding 0.
func NewZ() *Z {
	z := &Z{}
	C.mpz_init(&z.z[0])
	runtime.SetFinalizer(z, (*Z).finalize)
	return z
}

// NewZBits returns a new buffer holding 0 with at least bits bits of
// capacity reserved.
func NewZBits(bits uint) *Z {
	z := &Z{}
	C.mpz_init2(&z.z[0], C.mp_bitcnt_t(bits))
	runtime.SetFinalizer(z, (*Z).finalize)
	return z
}

// NewZCopy returns a new buffer holding a deep copy of x.
func NewZCopy(x *Z) *Z {
	z := &Z{}
	C.mpz_init_set(&z.z[0], &x.z[0])
	runtime.SetFinalizer(z, (*Z).finalize)
	return z
}

func (z *Z) finalize() {
	if !z.cleared {
		z.cleared = true
		C.mpz_clear(&z.z[0])
	}
}

// Clear releases the buffer eagerly. The finalizer remains as a no-op
// backstop for buffers that are never cleared explicitly.
func (z *Z) Clear() {
	z.finalize()
}

/*
 * assignment and native conversion
 */

// Set sets z = x.
func (z *Z) Set(x *Z) { C.mpz_set(&z.z[0], &x.z[0]) }

// SetInt64 sets z to the exact value of v.
func (z *Z) SetInt64(v int64) { C.mpz_set_si(&z.z[0], C.long(v)) }

// SetUint64 sets z to the exact value of v.
func (z *Z) SetUint64(v uint64) { C.mpz_set_ui(&z.z[0], C.ulong(v)) }

// SetFloat64 sets z to v truncated toward zero. v must be finite.
func (z *Z) SetFloat64(v float64) { C.mpz_set_d(&z.z[0], C.double(v)) }

// SetString parses s in the given base and stores the value in z.
// It reports whether the parse succeeded; on failure z is unspecified.
// Base 0 selects the base from a 0x/0X, 0b/0B or leading-0 prefix.
func (z *Z) SetString(s string, base int) bool {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return C.mpz_set_str(&z.z[0], cs, C.int(base)) == 0
}

// Int64 returns the low-order bits of z as an int64. The result is exact
// only when FitsInt64 reports true.
func (z *Z) Int64() int64 { return int64(C.mpz_get_si(&z.z[0])) }

// Uint64 returns the low-order bits of |z| as a uint64. The result is
// exact only when FitsUint64 reports true.
func (z *Z) Uint64() uint64 { return uint64(C.mpz_get_ui(&z.z[0])) }

// Float64 returns z truncated toward zero as a float64. Values outside
// the double range yield a system-defined result, possibly infinite.
func (z *Z) Float64() float64 { return float64(C.mpz_get_d(&z.z[0])) }

// FitsInt64 reports whether z fits an int64 exactly.
func (z *Z) FitsInt64() bool { return C.mpz_fits_slong_p(&z.z[0]) != 0 }

// FitsUint64 reports whether z fits a uint64 exactly.
func (z *Z) FitsUint64() bool { return C.mpz_fits_ulong_p(&z.z[0]) != 0 }

/*
 * predicates and comparison
 */

// Sign returns -1, 0 or +1 according to the sign of z.
func (z *Z) Sign() int { return int(C.z_sgn(&z.z[0])) }

// Odd reports whether z is odd.
func (z *Z) Odd() bool { return C.z_odd(&z.z[0]) != 0 }

// Cmp returns -1, 0 or +1 according to whether z is less than, equal to
// or greater than x.
func (z *Z) Cmp(x *Z) int { return norm(int(C.mpz_cmp(&z.z[0], &x.z[0]))) }

// CmpAbs compares |z| and |x|.
func (z *Z) CmpAbs(x *Z) int { return norm(int(C.mpz_cmpabs(&z.z[0], &x.z[0]))) }

// CmpInt64 compares z and v.
func (z *Z) CmpInt64(v int64) int { return norm(int(C.z_cmp_si(&z.z[0], C.long(v)))) }

// norm collapses GMP's "negative/zero/positive" comparison results to
// exactly {-1, 0, 1}.
func norm(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

/*
 * arithmetic
 */

// Add sets z = x + y.
func (z *Z) Add(x, y *Z) { C.mpz_add(&z.z[0], &x.z[0], &y.z[0]) }

// Sub sets z = x - y.
func (z *Z) Sub(x, y *Z) { C.mpz_sub(&z.z[0], &x.z[0], &y.z[0]) }

// Mul sets z = x * y.
func (z *Z) Mul(x, y *Z) { C.mpz_mul(&z.z[0], &x.z[0], &y.z[0]) }

// MulInt64 sets z = x * v.
func (z *Z) MulInt64(x *Z, v int64) { C.mpz_mul_si(&z.z[0], &x.z[0], C.long(v)) }

// AddMul sets z += x * y.
func (z *Z) AddMul(x, y *Z) { C.mpz_addmul(&z.z[0], &x.z[0], &y.z[0]) }

// SubMul sets z -= x * y.
func (z *Z) SubMul(x, y *Z) { C.mpz_submul(&z.z[0], &x.z[0], &y.z[0]) }

// Neg sets z = -x.
func (z *Z) Neg(x *Z) { C.mpz_neg(&z.z[0], &x.z[0]) }

// Abs sets z = |x|.
func (z *Z) Abs(x *Z) { C.mpz_abs(&z.z[0], &x.z[0]) }

// PowUint sets z = x^n.
func (z *Z) PowUint(x *Z, n uint) { C.mpz_pow_ui(&z.z[0], &x.z[0], C.ulong(n)) }

// BitLen returns the number of bits in the minimal binary representation
// of |z|. BitLen(0) is 1, following mpz_sizeinbase.
func (z *Z) BitLen() uint { return uint(C.mpz_sizeinbase(&z.z[0], 2)) }

// SizeInBase returns the number of digits |z| needs in the given base,
// possibly overestimating by one.
func (z *Z) SizeInBase(base int) uint {
	return uint(C.mpz_sizeinbase(&z.z[0], C.int(base)))
}
