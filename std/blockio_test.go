package std

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/xtaci/rscodec/rs"
)

type writerToStub struct {
	data          []byte
	writeToCalled bool
	readCalled    bool
}

func (w *writerToStub) Read(p []byte) (int, error) {
	w.readCalled = true
	return copy(p, w.data), io.EOF
}

func (w *writerToStub) WriteTo(dst io.Writer) (int64, error) {
	w.writeToCalled = true
	n, err := dst.Write(w.data)
	return int64(n), err
}

type readerFromStub struct {
	bytes.Buffer
	readFromCalled bool
}

func (r *readerFromStub) ReadFrom(src io.Reader) (int64, error) {
	r.readFromCalled = true
	return r.Buffer.ReadFrom(src)
}

type noWriterToReader struct {
	data   []byte
	offset int
}

func (r *noWriterToReader) Read(p []byte) (int, error) {
	if r.offset >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.offset:])
	r.offset += n
	return n, nil
}

func TestCopyPrefersWriterTo(t *testing.T) {
	src := &writerToStub{data: []byte("hello world")}
	var dst bytes.Buffer

	n, err := Copy(&dst, src)
	if err != nil {
		t.Fatalf("Copy returned error: %v", err)
	}
	if n != int64(len(src.data)) {
		t.Fatalf("Copy returned %d, want %d", n, len(src.data))
	}
	if !src.writeToCalled {
		t.Fatalf("WriteTo was not used")
	}
	if src.readCalled {
		t.Fatalf("Read should not be called when WriteTo is available")
	}
	if got := dst.String(); got != string(src.data) {
		t.Fatalf("unexpected dst: %q", got)
	}
}

func TestCopyPrefersReaderFrom(t *testing.T) {
	src := &noWriterToReader{data: []byte("reader from data")}
	dst := &readerFromStub{}

	n, err := Copy(dst, src)
	if err != nil {
		t.Fatalf("Copy returned error: %v", err)
	}
	if n != int64(len("reader from data")) {
		t.Fatalf("Copy returned %d, want %d", n, len("reader from data"))
	}
	if !dst.readFromCalled {
		t.Fatalf("ReadFrom was not used")
	}
	if got := dst.String(); got != "reader from data" {
		t.Fatalf("unexpected dst: %q", got)
	}
}

func TestEncodeDecodeStreamRoundTrip(t *testing.T) {
	const k, tParity = 16, 6
	ctx, err := rs.NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	payload := make([]byte, k*5+7) // several full blocks plus a short final one
	rng.Read(payload)

	var encoded bytes.Buffer
	stats := &Stats{}
	blocks, err := EncodeStream(ctx, &encoded, bytes.NewReader(payload), k, tParity, stats)
	if err != nil {
		t.Fatalf("EncodeStream: %v", err)
	}
	if blocks != 6 {
		t.Fatalf("EncodeStream blocks = %d, want 6", blocks)
	}
	if stats.BlocksEncoded != 6 {
		t.Fatalf("stats.BlocksEncoded = %d, want 6", stats.BlocksEncoded)
	}

	var decoded bytes.Buffer
	decStats := &Stats{}
	dblocks, corrections, err := DecodeStream(ctx, &decoded, bytes.NewReader(encoded.Bytes()), k, tParity, decStats)
	if err != nil {
		t.Fatalf("DecodeStream: %v", err)
	}
	if dblocks != 6 {
		t.Fatalf("DecodeStream blocks = %d, want 6", dblocks)
	}
	if corrections != 0 {
		t.Fatalf("DecodeStream corrections = %d, want 0 on a clean stream", corrections)
	}
	if !bytes.Equal(decoded.Bytes(), payload) {
		t.Fatalf("round trip payload mismatch")
	}
	if decStats.BlocksClean != 6 {
		t.Fatalf("decStats.BlocksClean = %d, want 6", decStats.BlocksClean)
	}
}

func TestDecodeStreamCorrectsDamagedBlock(t *testing.T) {
	const k, tParity = 16, 6
	ctx, err := rs.NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	payload := []byte("0123456789abcdef") // exactly one block of k bytes

	var encoded bytes.Buffer
	if _, err := EncodeStream(ctx, &encoded, bytes.NewReader(payload), k, tParity, nil); err != nil {
		t.Fatalf("EncodeStream: %v", err)
	}

	raw := encoded.Bytes()
	// flip a byte inside the RS block, past the 4-byte length prefix
	raw[4+2] ^= 0xFF

	var decoded bytes.Buffer
	blocks, corrections, err := DecodeStream(ctx, &decoded, bytes.NewReader(raw), k, tParity, nil)
	if err != nil {
		t.Fatalf("DecodeStream: %v", err)
	}
	if blocks != 1 {
		t.Fatalf("DecodeStream blocks = %d, want 1", blocks)
	}
	if corrections != 1 {
		t.Fatalf("DecodeStream corrections = %d, want 1", corrections)
	}
	if !bytes.Equal(decoded.Bytes(), payload) {
		t.Fatalf("decoded payload = %q, want %q", decoded.Bytes(), payload)
	}
}

func TestDecodeStreamOverCapacity(t *testing.T) {
	// t=2 tolerates at most one symbol error; two corrupted positions push
	// past the code's correction capacity. The decoder may either detect
	// this (ErrUncorrectable) or silently miscorrect, so this only records
	// the outcome rather than asserting which branch was taken.
	const k, tParity = 8, 2
	ctx, err := rs.NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	payload := []byte("abcdefgh")

	var encoded bytes.Buffer
	if _, err := EncodeStream(ctx, &encoded, bytes.NewReader(payload), k, tParity, nil); err != nil {
		t.Fatalf("EncodeStream: %v", err)
	}

	raw := encoded.Bytes()
	raw[4+0] ^= 0xFF
	raw[4+3] ^= 0xFF

	var decoded bytes.Buffer
	blocks, corrections, err := DecodeStream(ctx, &decoded, bytes.NewReader(raw), k, tParity, nil)
	t.Logf("over-capacity stream decode: blocks=%d corrections=%d err=%v match=%v",
		blocks, corrections, err, bytes.Equal(decoded.Bytes(), payload))
}

func TestDecodeStreamRecordsUncorrectable(t *testing.T) {
	// t=1 can only ever detect, never correct: a single corrupted symbol
	// always surfaces as rs.ErrUncorrectable, so this is a deterministic
	// way to drive the uncorrectable path (unlike the over-capacity case
	// above, which may also silently miscorrect).
	const k, tParity = 8, 1
	ctx, err := rs.NewContext(tParity)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	payload := []byte("abcdefgh")

	var encoded bytes.Buffer
	if _, err := EncodeStream(ctx, &encoded, bytes.NewReader(payload), k, tParity, nil); err != nil {
		t.Fatalf("EncodeStream: %v", err)
	}

	raw := encoded.Bytes()
	raw[4+0] ^= 0xFF

	stats := &Stats{}
	var decoded bytes.Buffer
	_, _, err = DecodeStream(ctx, &decoded, bytes.NewReader(raw), k, tParity, stats)
	if err != rs.ErrUncorrectable {
		t.Fatalf("DecodeStream error = %v, want rs.ErrUncorrectable", err)
	}
	if stats.BlocksUncorrectable != 1 {
		t.Fatalf("stats.BlocksUncorrectable = %d, want 1", stats.BlocksUncorrectable)
	}
	if stats.BlocksClean != 0 {
		t.Fatalf("stats.BlocksClean = %d, want 0 (uncorrectable block must not count as clean)", stats.BlocksClean)
	}
}
