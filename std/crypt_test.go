package std

import (
	"bytes"
	"testing"
)

func TestSelectCipherRoundTrip(t *testing.T) {
	methods := []string{"aes", "aes-128", "aes-192", "3des", "blowfish", "twofish", "cast5", "tea", "xtea", "salsa20"}
	passphrase := []byte("correct horse battery staple")

	for _, method := range methods {
		enc, effective := SelectCipher(method, passphrase)
		if effective != method {
			t.Fatalf("%s: effective method = %q, want %q", method, effective, method)
		}
		dec, _ := SelectCipher(method, passphrase)

		plain := bytes.Repeat([]byte("block-cipher-payload"), 3)
		cipherText := make([]byte, len(plain))
		enc.XORKeyStream(cipherText, plain)
		if bytes.Equal(cipherText, plain) {
			t.Fatalf("%s: ciphertext equals plaintext", method)
		}

		recovered := make([]byte, len(plain))
		dec.XORKeyStream(recovered, cipherText)
		if !bytes.Equal(recovered, plain) {
			t.Fatalf("%s: round trip mismatch", method)
		}
	}
}

func TestSelectCipherUnknownFallsBackToAES(t *testing.T) {
	_, effective := SelectCipher("does-not-exist", []byte("key"))
	if effective != "aes" {
		t.Fatalf("effective method = %q, want aes", effective)
	}
}

func TestDeriveKeyIsDeterministicAndSized(t *testing.T) {
	a := DeriveKey([]byte("passphrase"), 24)
	b := DeriveKey([]byte("passphrase"), 24)
	if !bytes.Equal(a, b) {
		t.Fatalf("DeriveKey not deterministic for the same passphrase and size")
	}
	if len(a) != 24 {
		t.Fatalf("DeriveKey length = %d, want 24", len(a))
	}

	c := DeriveKey([]byte("different"), 24)
	if bytes.Equal(a, c) {
		t.Fatalf("DeriveKey produced the same key for different passphrases")
	}
}
