// Package bignum provides arbitrary-precision numeric value types backed
// by shared, copy-on-write storage over the GMP engine.
//
// An Int is a handle to a reference-counted storage cell. Copy returns a
// second handle sharing the same cell in O(1); the first mutation through
// either handle re-establishes exclusive ownership by cloning the digits,
// so a mutation is never observable through another handle:
//
//	a, _ := bignum.Parse("123456789123456789", 10)
//	b := a.Copy()          // shares a's storage
//	a.AddAssign(bignum.NewInt64(1))
//	// b still reads 123456789123456789
//
// Handles must be copied with Copy (or rebound with Set); assigning the
// Int struct itself bypasses the reference count, like copying a
// sync.Mutex or a big.Int does.
//
// Non-mutating operations (Add, Mul, FloorQuo, ...) allocate a fresh
// result and never touch their operands; mutating operations carry an
// Assign suffix or are documented as mutating. Both kinds tolerate
// arbitrary aliasing between receiver and arguments.
//
// Handles are not safe for concurrent mutation of the same value or of
// values that share storage; the reference count is atomic, so
// concurrently copying and reading distinct handles that share a cell is
// safe. Package-level synchronization is deliberately absent.
package bignum
