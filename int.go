package bignum

import (
	"math"
)

// Int is an arbitrary-precision signed integer with value semantics over
// shared, copy-on-write storage. The zero Int (as in new(Int)) is not
// usable; obtain handles from the constructors, Copy, or operation
// results.
type Int struct {
	c *cell
}

// wrap turns a freshly created cell into a handle.
func wrap(c *cell) *Int { return &Int{c: c} }

// New returns a new Int holding 0.
func New() *Int { return wrap(newCell()) }

// NewWithCapacity returns a new Int holding 0 with at least bits bits of
// storage preallocated, avoiding reallocation during later growth.
func NewWithCapacity(bits uint) *Int { return wrap(newCellBits(bits)) }

// NewInt64 returns a new Int holding v exactly.
func NewInt64(v int64) *Int {
	z := New()
	z.c.z.SetInt64(v)
	return z
}

// NewUint64 returns a new Int holding v exactly.
func NewUint64(v uint64) *Int {
	z := New()
	z.c.z.SetUint64(v)
	return z
}

// NewFloat64 returns a new Int holding v truncated toward zero.
// NaN and infinite inputs yield ErrNonFinite.
func NewFloat64(v float64) (*Int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNonFinite
	}
	z := New()
	z.c.z.SetFloat64(v)
	return z, nil
}

// Copy returns a new handle sharing x's storage in O(1). The storage is
// cloned lazily by whichever handle mutates first.
func (x *Int) Copy() *Int {
	return &Int{c: x.c.retain()}
}

// ensureUnique re-establishes exclusive ownership of the storage cell
// before a mutation: O(1) when the cell is unshared, a digit-count deep
// copy otherwise. Every mutating method calls it first, which is what
// makes mutation unobservable through other handles.
func (z *Int) ensureUnique() {
	if z.c.shared() {
		fresh := newCellCopy(z.c)
		z.c.release()
		z.c = fresh
	}
}

// Set rebinds z to the value of x and returns z. The storage is shared
// until the next mutation. Self-assignment is a no-op.
func (z *Int) Set(x *Int) *Int {
	if z.c == x.c {
		return z
	}
	old := z.c
	z.c = x.c.retain()
	old.release()
	return z
}

// SetInt64 sets z to v exactly and returns z.
func (z *Int) SetInt64(v int64) *Int {
	z.ensureUnique()
	z.c.z.SetInt64(v)
	return z
}

// SetUint64 sets z to v exactly and returns z.
func (z *Int) SetUint64(v uint64) *Int {
	z.ensureUnique()
	z.c.z.SetUint64(v)
	return z
}

// Swap exchanges the values of z and x in O(1) by rebinding their
// storage references. No cell is mutated, so unlike the mutating
// methods Swap needs no uniqueness step: handles that shared storage
// with z or x keep their values and simply stop aliasing the swapped
// handle. Swapping a handle with itself is a no-op.
func (z *Int) Swap(x *Int) {
	z.c, x.c = x.c, z.c
}

/*
 * native conversions
 */

// Int64 returns the low-order 64 bits of x, sign-adjusted. The result
// equals x only when IsInt64 reports true; check it first when the
// magnitude is not known to be small.
func (x *Int) Int64() int64 { return x.c.z.Int64() }

// Uint64 returns the low-order 64 bits of |x|. The result equals x only
// when IsUint64 reports true.
func (x *Int) Uint64() uint64 { return x.c.z.Uint64() }

// IsInt64 reports whether x fits an int64 exactly.
func (x *Int) IsInt64() bool { return x.c.z.FitsInt64() }

// IsUint64 reports whether x fits a uint64 exactly.
func (x *Int) IsUint64() bool { return x.c.z.FitsUint64() }

// Float64 returns x truncated toward zero as a float64. When |x| exceeds
// the double range the result is system-defined and may be infinite.
func (x *Int) Float64() float64 { return x.c.z.Float64() }

/*
 * comparison
 */

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Int) Sign() int { return x.c.z.Sign() }

// Cmp returns -1, 0 or +1 according to whether x is less than, equal to
// or greater than y.
func (x *Int) Cmp(y *Int) int { return x.c.z.Cmp(y.c.z) }

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int { return x.c.z.CmpAbs(y.c.z) }

// CmpInt64 compares x and v.
func (x *Int) CmpInt64(v int64) int { return x.c.z.CmpInt64(v) }

// Equal reports whether x and y hold the same value.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool { return x.Sign() == 0 }

// IsOdd reports whether x is odd.
func (x *Int) IsOdd() bool { return x.c.z.Odd() }

// BitLen returns the number of bits in the minimal binary representation
// of |x|; BitLen of 0 is 1.
func (x *Int) BitLen() uint { return x.c.z.BitLen() }
