package std

import (
	"bytes"
	"testing"
)

func TestCompressBlockRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("compressed payload"), 64)

	compressed := CompressBlock(payload)
	if len(compressed) >= len(payload) {
		t.Fatalf("compressed length %d not smaller than input %d for repetitive payload", len(compressed), len(payload))
	}

	out, err := DecompressBlock(compressed)
	if err != nil {
		t.Fatalf("DecompressBlock: %v", err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatalf("round trip mismatch")
	}
}

func TestDecompressBlockRejectsGarbage(t *testing.T) {
	if _, err := DecompressBlock([]byte{0xff, 0xff, 0xff}); err == nil {
		t.Fatalf("DecompressBlock expected error for malformed input")
	}
}
