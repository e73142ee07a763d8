package rs

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestCleanRoundTrip(t *testing.T) {
	const k, tParity = 16, 10
	message := []byte{110, 211, 97, 221, 35, 153, 52, 124, 191, 109, 194, 65, 59, 242, 74, 22}

	buf := make([]byte, k+tParity)
	copy(buf, message)

	ctx, err := NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := ctx.Encode(buf, k, tParity); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	n, err := ctx.Decode(buf, k, tParity)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 0 {
		t.Fatalf("Decode returned %d corrections on a clean block, want 0", n)
	}
	if !bytes.Equal(buf[:k], message) {
		t.Fatalf("decoded message = %v, want %v", buf[:k], message)
	}
}

func TestCorrectableCorruption(t *testing.T) {
	// exactly floor(t/2)=5 errors, the maximum this code can correct.
	const k, tParity = 16, 10
	message := []byte{110, 211, 97, 221, 35, 153, 52, 124, 191, 109, 194, 65, 59, 242, 74, 22}
	errVec := []byte{0, 0, 0, 92, 0, 237, 0, 0, 0, 8, 153, 0, 0, 0, 0, 0, 0, 0, 0, 0, 161, 0, 0, 0, 0, 0}

	buf := make([]byte, k+tParity)
	copy(buf, message)

	ctx, err := NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := ctx.Encode(buf, k, tParity); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for i, e := range errVec {
		buf[i] ^= e
	}

	n, err := ctx.Decode(buf, k, tParity)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 5 {
		t.Fatalf("Decode returned %d corrections, want 5", n)
	}
	if !bytes.Equal(buf[:k], message) {
		t.Fatalf("decoded message = %v, want %v", buf[:k], message)
	}
}

func TestOverCapacityDetection(t *testing.T) {
	// 6 errors against t=10 (capacity floor(10/2)=5). The decoder either
	// detects (ErrUncorrectable) or silently miscorrects; both are
	// acceptable once the error count exceeds capacity, so this test only
	// records the outcome and never fails on either branch.
	const k, tParity = 16, 10
	message := []byte{110, 211, 97, 221, 35, 153, 52, 124, 191, 109, 194, 65, 59, 242, 74, 22}

	buf := make([]byte, k+tParity)
	copy(buf, message)

	ctx, err := NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := ctx.Encode(buf, k, tParity); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	positions := []int{2, 4, 6, 9, 15, 24}
	for _, p := range positions {
		buf[p] ^= 0x5A
	}

	n, err := ctx.Decode(buf, k, tParity)
	t.Logf("over-capacity decode: n=%d err=%v match=%v", n, err, bytes.Equal(buf[:k], message))
}

func TestSingleSymbolCode(t *testing.T) {
	// t=1: a single parity symbol can only ever detect, never correct.
	const k, tParity = 8, 1
	message := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	ctx, err := NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	buf := make([]byte, k+tParity)
	copy(buf, message)
	if err := ctx.Encode(buf, k, tParity); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if n, err := ctx.Decode(buf, k, tParity); err != nil || n != 0 {
		t.Fatalf("clean decode: n=%d err=%v, want 0,nil", n, err)
	}

	buf[3] ^= 0x11
	n, err := ctx.Decode(buf, k, tParity)
	if err != ErrUncorrectable {
		t.Fatalf("single corrupted symbol with t=1: n=%d err=%v, want ErrUncorrectable", n, err)
	}
}

func TestTwoParityOneError(t *testing.T) {
	// t=2: one error anywhere in the block must be corrected.
	const k, tParity = 8, 2
	message := []byte{9, 8, 7, 6, 5, 4, 3, 2}

	ctx, err := NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	for pos := 0; pos < k+tParity; pos++ {
		buf := make([]byte, k+tParity)
		copy(buf, message)
		if err := ctx.Encode(buf, k, tParity); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		buf[pos] ^= 0x7F

		n, err := ctx.Decode(buf, k, tParity)
		if err != nil {
			t.Fatalf("pos=%d: Decode error: %v", pos, err)
		}
		if n != 1 {
			t.Fatalf("pos=%d: Decode returned %d corrections, want 1", pos, n)
		}
		if !bytes.Equal(buf[:k], message) {
			t.Fatalf("pos=%d: decoded message = %v, want %v", pos, buf[:k], message)
		}
	}
}

func TestMaximumBlock(t *testing.T) {
	// k=203, t=52 is the largest block this code supports; 26 random
	// errors is exactly half the parity budget.
	const k, tParity = 203, 52
	rng := rand.New(rand.NewSource(1))

	message := make([]byte, k)
	rng.Read(message)

	ctx, err := NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	buf := make([]byte, k+tParity)
	copy(buf, message)
	if err := ctx.Encode(buf, k, tParity); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	positions := rng.Perm(k + tParity)[:tParity/2]
	for _, p := range positions {
		var delta byte
		for delta == 0 {
			delta = byte(rng.Intn(256))
		}
		buf[p] ^= delta
	}

	n, err := ctx.Decode(buf, k, tParity)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != tParity/2 {
		t.Fatalf("Decode returned %d corrections, want %d", n, tParity/2)
	}
	if !bytes.Equal(buf[:k], message) {
		t.Fatalf("decoded message does not match original")
	}
}

func TestEncoderDivisibility(t *testing.T) {
	const k, tParity = 20, 8
	rng := rand.New(rand.NewSource(2))

	ctx, err := NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	message := make([]byte, k)
	rng.Read(message)

	buf := make([]byte, k+tParity)
	copy(buf, message)
	if err := ctx.Encode(buf, k, tParity); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for i := 0; i < tParity; i++ {
		if got := polyEval(buf, gfexp[i]); got != 0 {
			t.Fatalf("codeword(alpha^%d) = %d, want 0 (not divisible by generator)", i, got)
		}
	}
}

func TestBlockSizeBoundary(t *testing.T) {
	ctx, err := NewContext(1)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	buf255 := make([]byte, 255)
	if err := ctx.Encode(buf255, 254, 1); err != nil {
		t.Fatalf("k+t=255 should be accepted: %v", err)
	}

	buf256 := make([]byte, 256)
	if err := ctx.Encode(buf256, 255, 1); err != ErrBlockTooLarge {
		t.Fatalf("k+t=256 error = %v, want ErrBlockTooLarge", err)
	}
}

func TestContextMismatchRejected(t *testing.T) {
	ctx, err := NewContext(4)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	buf := make([]byte, 10+6)
	if err := ctx.Encode(buf, 10, 6); err != ErrContextMismatch {
		t.Fatalf("Encode with mismatched t error = %v, want ErrContextMismatch", err)
	}
}
