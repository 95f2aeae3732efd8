package bignum

// Non-mutating arithmetic allocates a fresh result and leaves the
// operands untouched; the Assign variants mutate the receiver after
// re-establishing exclusive storage ownership. Every entry point
// tolerates arbitrary aliasing: the receiver and any argument may be the
// same handle or share a cell, because operands are only ever read and
// the engine computes alias-safe.

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	z := New()
	z.c.z.Add(x.c.z, y.c.z)
	return z
}

// AddAssign sets z = z + y and returns z.
func (z *Int) AddAssign(y *Int) *Int {
	z.ensureUnique()
	z.c.z.Add(z.c.z, y.c.z)
	return z
}

// AddInt64 returns x + v.
func (x *Int) AddInt64(v int64) *Int { return x.Add(NewInt64(v)) }

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	z := New()
	z.c.z.Sub(x.c.z, y.c.z)
	return z
}

// SubAssign sets z = z - y and returns z.
func (z *Int) SubAssign(y *Int) *Int {
	z.ensureUnique()
	z.c.z.Sub(z.c.z, y.c.z)
	return z
}

// SubInt64 returns x - v.
func (x *Int) SubInt64(v int64) *Int { return x.Sub(NewInt64(v)) }

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int {
	z := New()
	z.c.z.Mul(x.c.z, y.c.z)
	return z
}

// MulAssign sets z = z * y and returns z.
func (z *Int) MulAssign(y *Int) *Int {
	z.ensureUnique()
	z.c.z.Mul(z.c.z, y.c.z)
	return z
}

// MulInt64 returns x * v.
func (x *Int) MulInt64(v int64) *Int {
	z := New()
	z.c.z.MulInt64(x.c.z, v)
	return z
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	z := New()
	z.c.z.Neg(x.c.z)
	return z
}

// NegAssign sets z = -z and returns z.
func (z *Int) NegAssign() *Int {
	z.ensureUnique()
	z.c.z.Neg(z.c.z)
	return z
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	z := New()
	z.c.z.Abs(x.c.z)
	return z
}

// AbsAssign sets z = |z| and returns z.
func (z *Int) AbsAssign() *Int {
	z.ensureUnique()
	z.c.z.Abs(z.c.z)
	return z
}

// AddProduct sets z = z + a*b and returns z. It is a fused convenience
// over Mul plus AddAssign and promises nothing stronger; a, b and z may
// all alias.
func (z *Int) AddProduct(a, b *Int) *Int {
	z.ensureUnique()
	if a.c == z.c || b.c == z.c {
		// The engine's fused add-multiply reads z while writing it, so a
		// shared operand goes through an independent product instead.
		p := a.Mul(b)
		z.c.z.Add(z.c.z, p.c.z)
		return z
	}
	z.c.z.AddMul(a.c.z, b.c.z)
	return z
}

// SubProduct sets z = z - a*b and returns z, with the same aliasing
// contract as AddProduct.
func (z *Int) SubProduct(a, b *Int) *Int {
	z.ensureUnique()
	if a.c == z.c || b.c == z.c {
		p := a.Mul(b)
		z.c.z.Sub(z.c.z, p.c.z)
		return z
	}
	z.c.z.SubMul(a.c.z, b.c.z)
	return z
}

// Pow returns x^n.
func (x *Int) Pow(n uint) *Int {
	z := New()
	z.c.z.PowUint(x.c.z, n)
	return z
}
