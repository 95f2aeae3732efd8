package bignum

// Bitwise operations act on the conceptual infinite two's-complement
// representation: a negative value behaves as if sign-extended to the
// left with 1-bits forever. In particular Not(x) always equals -(x+1).

// And returns x & y.
func (x *Int) And(y *Int) *Int {
	z := New()
	z.c.z.And(x.c.z, y.c.z)
	return z
}

// AndAssign sets z = z & y and returns z.
func (z *Int) AndAssign(y *Int) *Int {
	z.ensureUnique()
	z.c.z.And(z.c.z, y.c.z)
	return z
}

// Or returns x | y.
func (x *Int) Or(y *Int) *Int {
	z := New()
	z.c.z.Or(x.c.z, y.c.z)
	return z
}

// OrAssign sets z = z | y and returns z.
func (z *Int) OrAssign(y *Int) *Int {
	z.ensureUnique()
	z.c.z.Or(z.c.z, y.c.z)
	return z
}

// Xor returns x ^ y.
func (x *Int) Xor(y *Int) *Int {
	z := New()
	z.c.z.Xor(x.c.z, y.c.z)
	return z
}

// XorAssign sets z = z ^ y and returns z.
func (z *Int) XorAssign(y *Int) *Int {
	z.ensureUnique()
	z.c.z.Xor(z.c.z, y.c.z)
	return z
}

// Not returns the one's complement of x, which equals -(x+1).
func (x *Int) Not() *Int {
	z := New()
	z.c.z.Not(x.c.z)
	return z
}

// NotAssign sets z = ^z and returns z.
func (z *Int) NotAssign() *Int {
	z.ensureUnique()
	z.c.z.Not(z.c.z)
	return z
}

// Lsh returns x * 2^n. The count is unsigned; a negative count is
// unrepresentable rather than reinterpreted as a right shift.
func (x *Int) Lsh(n uint) *Int {
	z := New()
	z.c.z.Lsh(x.c.z, n)
	return z
}

// Rsh returns the arithmetic (sign-extending) right shift of x by n,
// equal to floor(x / 2^n).
func (x *Int) Rsh(n uint) *Int {
	z := New()
	z.c.z.Rsh(x.c.z, n)
	return z
}

// LshAssign sets z = z * 2^n and returns z.
func (z *Int) LshAssign(n uint) *Int {
	z.ensureUnique()
	z.c.z.Lsh(z.c.z, n)
	return z
}

// RshAssign sets z = floor(z / 2^n) and returns z.
func (z *Int) RshAssign(n uint) *Int {
	z.ensureUnique()
	z.c.z.Rsh(z.c.z, n)
	return z
}

/*
 * single-bit access, 0-indexed from the least significant bit
 */

// Bit returns bit i of x (0 or 1). For negative x, bits above the
// highest magnitude bit read as 1 by sign extension.
func (x *Int) Bit(i uint) uint { return x.c.z.Bit(i) }

// SetBit sets bit i of z to 1 and returns z.
func (z *Int) SetBit(i uint) *Int {
	z.ensureUnique()
	z.c.z.SetBit(i)
	return z
}

// ClearBit sets bit i of z to 0 and returns z.
func (z *Int) ClearBit(i uint) *Int {
	z.ensureUnique()
	z.c.z.ClearBit(i)
	return z
}

// ToggleBit complements bit i of z and returns z.
func (z *Int) ToggleBit(i uint) *Int {
	z.ensureUnique()
	z.c.z.ToggleBit(i)
	return z
}

// Scan1 returns the position of the first 1-bit at or above position i,
// with ok=false when x has no set bit there (possible only for x >= 0,
// since negative values sign-extend with ones).
func (x *Int) Scan1(i uint) (pos uint, ok bool) { return x.c.z.Scan1(i) }

// Scan0 returns the position of the first 0-bit at or above position i,
// with ok=false when every higher bit is 1 (possible only for x < 0).
func (x *Int) Scan0(i uint) (pos uint, ok bool) { return x.c.z.Scan0(i) }

// PopCount returns the number of 1-bits in the minimal binary
// representation of x. For negative x the count is infinite and ok is
// false.
func (x *Int) PopCount() (count uint, ok bool) { return x.c.z.PopCount() }

// HammingDistance returns the number of bit positions where x and y
// differ, which equals PopCount(x ^ y) and is zero iff x == y. When
// exactly one operand is negative the distance is infinite and ok is
// false.
func (x *Int) HammingDistance(y *Int) (count uint, ok bool) {
	return x.c.z.HamDist(y.c.z)
}
