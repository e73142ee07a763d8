// The MIT License (MIT)
//
// # Copyright (c) 2022 Takuro Sakai
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
//
// Ported from cppecc.h (Takuro Sakai); this package is not derived from
// xtaci/kcptun.

package rs

// ValidateParams checks the block-size invariants (I1, I2) shared by Encode
// and Decode, so callers can fail fast before touching a buffer.
func ValidateParams(k, t int) error {
	if t < 1 || t > MaxParity {
		return ErrInvalidT
	}
	if k < 0 || k+t > MaxBlockSize {
		return ErrBlockTooLarge
	}
	return nil
}

// Encode performs systematic Reed-Solomon encoding: message[0:k] is the
// caller's data, and Encode fills message[k:k+t] with parity symbols such
// that the full k+t byte buffer, read as a polynomial with message[0] as
// the leading coefficient, is divisible by the context's generator.
//
// The context must already be initialized with this t (via NewContext or
// Init). message must have length >= k+t.
func (c *Context) Encode(message []byte, k, t int) error {
	if err := ValidateParams(k, t); err != nil {
		return err
	}
	if c.t != t {
		return ErrContextMismatch
	}
	total := k + t
	if len(message) < total {
		return ErrShortBuffer
	}

	work := c.scratch[:total]
	copy(work[:k], message[:k])
	for i := k; i < total; i++ {
		work[i] = 0
	}

	generator := c.generator
	for i := 0; i < k; i++ {
		if coef := work[i]; coef != 0 {
			for j := 1; j <= t; j++ {
				work[i+j] ^= gfMul(generator[j], coef)
			}
		}
	}

	copy(message[k:total], work[k:total])
	return nil
}
