package bignum

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable failure conditions of the package.
// Programmer errors (for example writing through a released limb view)
// panic instead; they are bugs, not runtime conditions.
var (
	// ErrDivisionByZero is returned by every division-family operation,
	// Mod, and modular exponentiation when the divisor or modulus is zero,
	// and by PowMod when a negative exponent has no modular inverse.
	ErrDivisionByZero = errors.New("bignum: division or modulo by zero")

	// ErrNegativeSqrt is returned when a square or even-order root of a
	// negative value is requested.
	ErrNegativeSqrt = errors.New("bignum: square root of negative value")

	// ErrInvalidPrecision is returned for non-positive floating-point
	// precision values.
	ErrInvalidPrecision = errors.New("bignum: precision must be positive")

	// ErrNonFinite is returned when constructing an Int from a NaN or
	// infinite float64.
	ErrNonFinite = errors.New("bignum: value is not finite")
)

// ParseError reports that a string could not be parsed as a number.
type ParseError struct {
	// Input is the rejected input, possibly truncated for display.
	Input string
	// Base is the radix the parse was attempted in (0 = auto-detect).
	Base int
}

// Error returns the error message for a ParseError.
func (e ParseError) Error() string {
	return fmt.Sprintf("bignum: cannot parse %q in base %d", e.Input, e.Base)
}

// RangeError reports an argument outside an operation's accepted range,
// such as an invalid radix, word size, nail count or exponent.
type RangeError struct {
	// Op is the operation that rejected the argument.
	Op string
	// Msg explains the violated constraint.
	Msg string
}

// Error returns the error message for a RangeError.
func (e RangeError) Error() string {
	return fmt.Sprintf("bignum: %s: %s", e.Op, e.Msg)
}

// rangeErrorf builds a RangeError with a formatted constraint message.
func rangeErrorf(op, format string, args ...any) error {
	return RangeError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
