package bignum

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestRandReproducibility(t *testing.T) {
	a, b := NewRand(12345), NewRand(12345)
	for i := 0; i < 20; i++ {
		x, y := RandBitsRaw(a, 256), RandBitsRaw(b, 256)
		if !x.Equal(y) {
			t.Fatalf("same seed diverged at draw %d: %s vs %s", i, x, y)
		}
	}
	// A different seed should diverge quickly.
	c := NewRand(54321)
	same := 0
	for i := 0; i < 20; i++ {
		if RandBitsRaw(a, 256).Equal(RandBitsRaw(c, 256)) {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical sequences")
	}
	// Reseeding restarts the sequence.
	a.Seed(7)
	first := RandBitsRaw(a, 128)
	a.Seed(7)
	if !RandBitsRaw(a, 128).Equal(first) {
		t.Error("reseed did not restart the sequence")
	}
}

func TestRandBits(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 50; i++ {
		x := RandBits(r, 64)
		if x.BitLen() != 64 {
			t.Fatalf("RandBits(64) has %d bits", x.BitLen())
		}
	}
	if !RandBits(r, 0).IsZero() {
		t.Error("RandBits(0) should be 0")
	}
	// Raw variant may be shorter but never longer.
	for i := 0; i < 50; i++ {
		if x := RandBitsRaw(r, 64); x.Cmp(NewInt64(1).Lsh(64)) >= 0 {
			t.Fatalf("RandBitsRaw(64) out of range: %s", x)
		}
	}
}

func TestRandBelow(t *testing.T) {
	r := NewRand(2)
	bound := NewInt64(1000)
	for i := 0; i < 200; i++ {
		x, err := RandBelow(r, bound)
		if err != nil {
			t.Fatal(err)
		}
		if x.Sign() < 0 || x.Cmp(bound) >= 0 {
			t.Fatalf("RandBelow out of range: %s", x)
		}
	}
	if _, err := RandBelow(r, New()); err == nil {
		t.Error("zero bound should be rejected")
	}
	if _, err := RandBelow(r, NewInt64(-5)); err == nil {
		t.Error("negative bound should be rejected")
	}
}

func TestRandLC(t *testing.T) {
	r, err := NewRandLC(64, 99)
	if err != nil {
		t.Fatal(err)
	}
	x := RandBitsRaw(r, 128)
	if x.Sign() < 0 {
		t.Errorf("LC draw negative: %s", x)
	}
	// Far beyond the engine's parameter table.
	if _, err := NewRandLC(1 << 20, 1); err == nil {
		t.Error("oversized LC request should be rejected")
	}
}

func TestRandBitsRuns(t *testing.T) {
	r := NewRand(3)
	x := RandBitsRuns(r, 256)
	if x.Sign() < 0 || x.BitLen() > 256 {
		t.Errorf("RandBitsRuns out of range: %s", x)
	}
}

func TestSecureRandBits(t *testing.T) {
	for _, n := range []uint{1, 8, 9, 63, 64, 65, 521} {
		x, err := SecureRandBits(n)
		if err != nil {
			t.Fatal(err)
		}
		if x.BitLen() != n {
			t.Errorf("SecureRandBits(%d) has %d bits", n, x.BitLen())
		}
	}
	x, err := SecureRandBits(0)
	if err != nil || !x.IsZero() {
		t.Errorf("SecureRandBits(0) = (%s, %v)", x, err)
	}
}

func TestSecureRandBitsFromMasksAndForces(t *testing.T) {
	// All-ones entropy: masking keeps n bits, the top bit is already set.
	src := bytes.NewReader(bytes.Repeat([]byte{0xff}, 16))
	x, err := SecureRandBitsFrom(src, 12)
	if err != nil {
		t.Fatal(err)
	}
	if x.Int64() != 0xfff {
		t.Errorf("masked all-ones 12-bit draw = %s, want 4095", x)
	}
	// All-zero entropy: the forced top bit is the whole value.
	src = bytes.NewReader(make([]byte, 16))
	x, err = SecureRandBitsFrom(src, 12)
	if err != nil {
		t.Fatal(err)
	}
	if x.Int64() != 0x800 {
		t.Errorf("forced-top-bit 12-bit draw = %s, want 2048", x)
	}
}

func TestSecureRandBelow(t *testing.T) {
	bound := NewInt64(1000)
	for i := 0; i < 50; i++ {
		x, err := SecureRandBelow(bound)
		if err != nil {
			t.Fatal(err)
		}
		if x.Sign() < 0 || x.Cmp(bound) >= 0 {
			t.Fatalf("SecureRandBelow out of range: %s", x)
		}
	}
	if _, err := SecureRandBelow(New()); err == nil {
		t.Error("zero bound should be rejected")
	}
	// A bound of 1 has only one inhabitant.
	x, err := SecureRandBelow(NewInt64(1))
	if err != nil || !x.IsZero() {
		t.Errorf("SecureRandBelow(1) = (%s, %v)", x, err)
	}
}

// failingReader errors after serving a fixed number of bytes.
type failingReader struct {
	left int
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.left <= 0 {
		return 0, io.ErrUnexpectedEOF
	}
	n := len(p)
	if n > f.left {
		n = f.left
	}
	for i := 0; i < n; i++ {
		p[i] = 0xab
	}
	f.left -= n
	return n, nil
}

func TestSecureRandEntropyFailure(t *testing.T) {
	// Short reads abort the draw instead of degrading it.
	if _, err := SecureRandBitsFrom(&failingReader{left: 3}, 64); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("short entropy read: %v", err)
	}
	if _, err := SecureRandBelowFrom(&failingReader{}, NewInt64(1000)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("failed entropy read: %v", err)
	}
}

func TestSecureRandBelowFromRejectionFallback(t *testing.T) {
	// 0xff candidates always exceed a bound of 200, so every attempt is
	// rejected and the modular fallback must produce a reduced value.
	src := bytes.NewReader(bytes.Repeat([]byte{0xff}, secureMaxAttempts+8))
	x, err := SecureRandBelowFrom(src, NewInt64(200))
	if err != nil {
		t.Fatal(err)
	}
	if x.Sign() < 0 || x.CmpInt64(200) >= 0 {
		t.Errorf("fallback out of range: %s", x)
	}
}
