package bignum

// Binary serialization is platform-independent and fully parameterized:
// word order, bytes per word, per-word endianness and "nail" bits (high
// bits of every word left zero). The engine's raw export carries only
// the magnitude, so the format prepends one explicit sign byte:
//
//	[1 sign byte: 0 = non-negative, 1 = negative][magnitude words]
//
// Zero exports to the sign byte alone, with no magnitude words, which
// keeps it distinguishable from any non-zero minimal-size export.

// WordOrder selects which end of the word sequence comes first.
type WordOrder int

const (
	// MSWFirst stores the most significant word first.
	MSWFirst WordOrder = 1
	// LSWFirst stores the least significant word first.
	LSWFirst WordOrder = -1
)

// Endian selects the byte order within each word.
type Endian int

const (
	// BigEndian stores the most significant byte of each word first.
	BigEndian Endian = 1
	// NativeEndian uses the host byte order.
	NativeEndian Endian = 0
	// LittleEndian stores the least significant byte of each word first.
	LittleEndian Endian = -1
)

// ExportParams describes one binary layout. The zero value is invalid;
// DefaultExportParams is the conventional big-endian byte stream.
type ExportParams struct {
	// Order is the word order of the stream.
	Order WordOrder
	// WordSize is the number of bytes per word, at least 1.
	WordSize int
	// Endian is the byte order within each word.
	Endian Endian
	// Nails is the number of high bits per word to keep zero; it must be
	// smaller than 8*WordSize.
	Nails uint
}

// DefaultExportParams returns the plain big-endian byte-stream layout.
func DefaultExportParams() ExportParams {
	return ExportParams{Order: MSWFirst, WordSize: 1, Endian: BigEndian}
}

// validate rejects parameter tuples the engine would misinterpret.
func (p ExportParams) validate(op string) error {
	if p.Order != MSWFirst && p.Order != LSWFirst {
		return rangeErrorf(op, "invalid word order %d", p.Order)
	}
	if p.WordSize < 1 {
		return rangeErrorf(op, "word size must be at least 1, got %d", p.WordSize)
	}
	if p.Endian < LittleEndian || p.Endian > BigEndian {
		return rangeErrorf(op, "invalid endianness %d", p.Endian)
	}
	if p.Nails >= 8*uint(p.WordSize) {
		return rangeErrorf(op, "nails %d leave no value bits in %d-byte words", p.Nails, p.WordSize)
	}
	return nil
}

// Export serializes x under the given parameters. Importing the result
// with identical parameters recovers x exactly, including sign.
func (x *Int) Export(p ExportParams) ([]byte, error) {
	if err := p.validate("Export"); err != nil {
		return nil, err
	}
	sign := byte(0)
	if x.Sign() < 0 {
		sign = 1
	}
	words := x.c.z.Export(int(p.Order), p.WordSize, int(p.Endian), p.Nails)
	out := make([]byte, 0, 1+len(words))
	out = append(out, sign)
	return append(out, words...), nil
}

// Import deserializes data produced by Export with the same parameters.
// The data must hold the sign byte plus a whole number of words.
func Import(data []byte, p ExportParams) (*Int, error) {
	if err := p.validate("Import"); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, rangeErrorf("Import", "missing sign byte")
	}
	sign, words := data[0], data[1:]
	if sign > 1 {
		return nil, rangeErrorf("Import", "invalid sign byte %d", sign)
	}
	if len(words)%p.WordSize != 0 {
		return nil, rangeErrorf("Import", "magnitude length %d is not a multiple of word size %d", len(words), p.WordSize)
	}
	z := New()
	z.c.z.Import(words, int(p.Order), p.WordSize, int(p.Endian), p.Nails)
	if sign == 1 {
		z.c.z.Neg(z.c.z)
	}
	return z, nil
}

// Bytes returns |x| as a minimal big-endian byte slice; 0 yields an
// empty slice. The sign is not carried: use Export when it matters.
func (x *Int) Bytes() []byte {
	return x.c.z.Export(int(MSWFirst), 1, int(BigEndian), 0)
}

// SetBytes sets z to the non-negative value of the big-endian byte
// slice b and returns z.
func (z *Int) SetBytes(b []byte) *Int {
	z.ensureUnique()
	z.c.z.Import(b, int(MSWFirst), 1, int(BigEndian), 0)
	return z
}

/*
 * raw limb access
 */

// Limbs returns a copy of the magnitude of x as engine limbs, least
// significant first. It is the read half of the advanced-interop escape
// hatch; the copy keeps callers away from live engine memory.
func (x *Int) Limbs() []uint {
	return x.c.z.Limbs()
}

// SetLimbs overwrites z with a magnitude given as engine limbs, least
// significant first, negated when negative is set, and returns z. The
// engine's mandatory finish step runs before SetLimbs returns, so the
// handle is consistent immediately; there is no window in which a
// partially written value is observable.
func (z *Int) SetLimbs(limbs []uint, negative bool) *Int {
	z.ensureUnique()
	z.c.z.SetLimbs(limbs, negative)
	return z
}
