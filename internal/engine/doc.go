// Package engine binds the GNU GMP library through cgo and exposes the
// primitive operations the bignum package is built on: mutable integer
// buffers (Z, wrapping mpz_t), floating-point buffers (F, wrapping mpf_t)
// and random generator state (RandState, wrapping gmp_randstate_t).
//
// The package is a thin boundary, not an abstraction: every exported
// function corresponds to one GMP entry point, with macros rewrapped as C
// functions in the cgo preambles. Ownership, sharing and aliasing policy
// live one level up, in package bignum; engine buffers are plain mutable
// state and follow GMP's own aliasing rules (result and operands may be
// the same buffer).
//
// All buffers are created by constructors and released either explicitly
// with Clear or by a finalizer backstop when the handle becomes garbage.
// Calling any method on a cleared buffer is a programmer error.
package engine
