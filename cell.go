package bignum

import (
	"sync/atomic"

	"github.com/apmath/bignum/internal/engine"
)

// cell is the storage unit behind Int handles: exclusive ownership of one
// engine buffer plus the count of handles currently referencing it. A
// cell's digits are mutated only while refs == 1; handles that want to
// write while the cell is shared clone it first (see Int.ensureUnique).
type cell struct {
	z    *engine.Z
	refs atomic.Int32
}

// newCell returns a cell holding 0, referenced once.
func newCell() *cell {
	c := &cell{z: engine.NewZ()}
	c.refs.Store(1)
	return c
}

// newCellBits returns a cell holding 0 with at least bits bits of
// capacity reserved.
func newCellBits(bits uint) *cell {
	c := &cell{z: engine.NewZBits(bits)}
	c.refs.Store(1)
	return c
}

// newCellCopy returns an independent deep copy of other. Mutating either
// cell afterwards never affects the other.
func newCellCopy(other *cell) *cell {
	c := &cell{z: engine.NewZCopy(other.z)}
	c.refs.Store(1)
	return c
}

// retain registers one more handle and returns the cell.
func (c *cell) retain() *cell {
	c.refs.Add(1)
	return c
}

// release drops one handle. The engine buffer is cleared eagerly when the
// last handle lets go; the engine finalizer remains as a backstop for
// handles collected without releasing.
func (c *cell) release() {
	if c.refs.Add(-1) == 0 {
		c.z.Clear()
	}
}

// shared reports whether more than one handle references the cell.
func (c *cell) shared() bool {
	return c.refs.Load() > 1
}
