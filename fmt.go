package bignum

import "strings"

// Text formats x in the given base. Positive bases 2..62 use lower-case
// letters (and upper-case beyond 35); negative bases -2..-36 select
// upper-case letters. A leading '-' marks negative values; there is no
// leading '+' and no padding.
func (x *Int) Text(base int) (string, error) {
	if (base < 2 || base > 62) && (base > -2 || base < -36) {
		return "", rangeErrorf("Text", "base must be in 2..62 or -2..-36, got %d", base)
	}
	return x.c.z.String(base), nil
}

// String returns x in base 10. It implements fmt.Stringer.
func (x *Int) String() string {
	if x == nil || x.c == nil {
		return "<nil>"
	}
	return x.c.z.String(10)
}

// Parse interprets s in the given base and returns the value. Base 0
// auto-detects by prefix: 0x/0X hexadecimal, 0b/0B binary, a remaining
// leading 0 octal, decimal otherwise. Explicit bases run 2..62. A single
// leading '-' is accepted; whitespace is tolerated and ignored; anything
// else malformed yields a ParseError, never a partial value.
func Parse(s string, base int) (*Int, error) {
	if base != 0 && (base < 2 || base > 62) {
		return nil, rangeErrorf("Parse", "base must be 0 or in 2..62, got %d", base)
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, ParseError{Input: s, Base: base}
	}
	z := New()
	if !z.c.z.SetString(trimmed, base) {
		return nil, ParseError{Input: clip(s, 64), Base: base}
	}
	return z, nil
}

// SetString parses s like Parse and assigns the result to z.
// On failure z is left unchanged.
func (z *Int) SetString(s string, base int) (*Int, error) {
	v, err := Parse(s, base)
	if err != nil {
		return nil, err
	}
	return z.Set(v), nil
}

// clip shortens s for inclusion in error messages.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
