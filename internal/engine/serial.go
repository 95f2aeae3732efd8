package engine

/*
#cgo LDFLAGS: -lgmp
#include <gmp.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// String returns z formatted in the given base: 2..62, or -2..-36 for
// upper-case digits. The base is validated by package bignum.
func (z *Z) String(base int) string {
	p := C.mpz_get_str(nil, C.int(base), &z.z[0])
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

// Export writes |z| into a fresh byte slice as count words of size bytes
// each, in the given word order (1 = most significant word first, -1 =
// least significant first) and byte endianness (1 big, -1 little, 0
// native), with the top nails bits of every word zero. Zero exports to an
// empty slice.
func (z *Z) Export(order, size, endian int, nails uint) []byte {
	numb := 8*uint(size) - nails
	count := (z.BitLen() + numb - 1) / numb
	if z.Sign() == 0 {
		return nil
	}
	buf := make([]byte, count*uint(size))
	var written C.size_t
	C.mpz_export(unsafe.Pointer(&buf[0]), &written, C.int(order), C.size_t(size),
		C.int(endian), C.size_t(nails), &z.z[0])
	return buf[:int(written)*size]
}

// Import sets z to the magnitude encoded in buf under the same
// parameters Export uses. An empty buf yields zero.
func (z *Z) Import(buf []byte, order, size, endian int, nails uint) {
	if len(buf) == 0 {
		z.SetInt64(0)
		return
	}
	count := len(buf) / size
	C.mpz_import(&z.z[0], C.size_t(count), C.int(order), C.size_t(size),
		C.int(endian), C.size_t(nails), unsafe.Pointer(&buf[0]))
}

/*
 * limb access
 */

// LimbCount returns the number of limbs in |z|.
func (z *Z) LimbCount() int { return int(C.mpz_size(&z.z[0])) }

// Limbs returns a copy of the limbs of |z|, least significant first.
func (z *Z) Limbs() []uint {
	n := z.LimbCount()
	if n == 0 {
		return nil
	}
	p := C.mpz_limbs_read(&z.z[0])
	src := unsafe.Slice((*C.mp_limb_t)(p), n)
	out := make([]uint, n)
	for i, l := range src {
		out[i] = uint(l)
	}
	return out
}

// SetLimbs overwrites z with the given limbs, least significant first,
// negated when negative is set. The write goes through the engine's raw
// limb pointer and is resynchronized with mpz_limbs_finish afterwards,
// which is the mandatory "finish" step of the write-through contract.
// The previous value of z is not preserved. High zero limbs are trimmed
// to keep the buffer canonical.
func (z *Z) SetLimbs(limbs []uint, negative bool) {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		z.SetInt64(0)
		return
	}
	p := C.mpz_limbs_write(&z.z[0], C.mp_size_t(n))
	view := unsafe.Slice((*C.mp_limb_t)(p), n)
	for i := 0; i < n; i++ {
		view[i] = C.mp_limb_t(limbs[i])
	}
	size := C.mp_size_t(n)
	if negative {
		size = -size
	}
	C.mpz_limbs_finish(&z.z[0], size)
}
