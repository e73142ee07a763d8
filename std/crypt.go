// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package std

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/sha256"
	"log"

	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/salsa20"
	"golang.org/x/crypto/tea"
	"golang.org/x/crypto/twofish"
	"golang.org/x/crypto/xtea"
)

// SALT is the PBKDF2 salt used when deriving a cipher key from a
// passphrase.
const SALT = "rscodec-pbkdf2-salt"

// Cipher obscures a block payload before it is handed to the codec's
// Encode, and restores it after a successful Decode. The nonce is fixed
// at all-zero, so a Cipher must never be reused across two different
// payloads under the same key.
type Cipher interface {
	XORKeyStream(dst, src []byte)
}

type blockCipher struct{ stream cipher.Stream }

func (b *blockCipher) XORKeyStream(dst, src []byte) { b.stream.XORKeyStream(dst, src) }

func newCTRCipher(block cipher.Block) Cipher {
	iv := make([]byte, block.BlockSize())
	return &blockCipher{stream: cipher.NewCTR(block, iv)}
}

type salsaCipher struct{ key [32]byte }

func (s *salsaCipher) XORKeyStream(dst, src []byte) {
	var nonce [8]byte
	salsa20.XORKeyStream(dst, src, nonce[:], &s.key)
}

// cryptMethod maps cipher names to their constructor functions and required key sizes.
type cryptMethod struct {
	keySize int // required key size in bytes
	build   func(key []byte) (Cipher, error)
}

// cryptMethods is a lookup table for supported encryption methods.
var cryptMethods = map[string]cryptMethod{
	"aes": {32, func(key []byte) (Cipher, error) {
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return newCTRCipher(block), nil
	}},
	"aes-128": {16, func(key []byte) (Cipher, error) {
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return newCTRCipher(block), nil
	}},
	"aes-192": {24, func(key []byte) (Cipher, error) {
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return newCTRCipher(block), nil
	}},
	"3des": {24, func(key []byte) (Cipher, error) {
		block, err := des.NewTripleDESCipher(key)
		if err != nil {
			return nil, err
		}
		return newCTRCipher(block), nil
	}},
	"blowfish": {16, func(key []byte) (Cipher, error) {
		block, err := blowfish.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return newCTRCipher(block), nil
	}},
	"twofish": {16, func(key []byte) (Cipher, error) {
		block, err := twofish.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return newCTRCipher(block), nil
	}},
	"cast5": {16, func(key []byte) (Cipher, error) {
		block, err := cast5.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return newCTRCipher(block), nil
	}},
	"tea": {16, func(key []byte) (Cipher, error) {
		block, err := tea.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return newCTRCipher(block), nil
	}},
	"xtea": {16, func(key []byte) (Cipher, error) {
		block, err := xtea.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return newCTRCipher(block), nil
	}},
	"salsa20": {32, func(key []byte) (Cipher, error) {
		c := new(salsaCipher)
		copy(c.key[:], key)
		return c, nil
	}},
}

// SelectCipher translates a human readable cipher name into a Cipher built
// from a pbkdf2-derived key. It also reports the effective cipher name
// after applying fallbacks, so callers can log the final choice the way
// server/main.go logged its negotiated crypt method.
func SelectCipher(method string, passphrase []byte) (Cipher, string) {
	m, ok := cryptMethods[method]
	if !ok {
		log.Printf("crypt: unknown cipher %q, falling back to aes", method)
		method, m = "aes", cryptMethods["aes"]
	}

	key := DeriveKey(passphrase, m.keySize)
	c, err := m.build(key)
	if err != nil {
		log.Printf("crypt: failed to create %s cipher: %v, falling back to aes", method, err)
		aesMethod := cryptMethods["aes"]
		c, _ = aesMethod.build(DeriveKey(passphrase, aesMethod.keySize))
		return c, "aes"
	}
	return c, method
}

// DeriveKey stretches a passphrase into a keySize-byte cipher key using PBKDF2-HMAC-SHA256.
func DeriveKey(passphrase []byte, keySize int) []byte {
	if keySize == 0 {
		keySize = 32
	}
	return pbkdf2.Key(passphrase, []byte(SALT), 4096, keySize, sha256.New)
}
