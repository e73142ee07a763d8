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

// Decode attempts to correct message (length k+t) in place.
//
// It returns (0, nil) if all syndromes are zero (no detectable errors: the
// channel may still have corrupted the block in a way this code cannot
// detect — that is intrinsic to the code, not a bug). It returns (e, nil)
// after correcting e symbols. And it returns (0, ErrUncorrectable) when the
// error locator fails to factor or the Chien search cannot locate all
// roots; message's contents are unspecified in that case and must be
// discarded by the caller.
//
// A third outcome — miscorrection, where more than floor(t/2) errors were
// introduced but sigma still happened to factor — is indistinguishable from
// success at this layer: Decode returns a positive count and message is
// "corrected" to the wrong codeword. Callers that need certainty must layer
// an integrity check such as a CRC on top.
func (c *Context) Decode(message []byte, k, t int) (int, error) {
	if err := ValidateParams(k, t); err != nil {
		return 0, err
	}
	if c.t != t {
		return 0, ErrContextMismatch
	}
	n := k + t
	if len(message) < n {
		return 0, ErrShortBuffer
	}

	syndromes := c.syndromes[:t]
	var hasError byte
	for i := 0; i < t; i++ {
		syndromes[i] = polyEval(message[:n], gfexp[i])
		hasError |= syndromes[i]
	}
	if hasError == 0 {
		return 0, nil
	}

	numSigma := modifiedBerlekampMassey(c.sigma[:t], syndromes)
	if numSigma < 0 {
		return 0, ErrUncorrectable
	}
	sigma := c.sigma[:numSigma]

	positions := c.positions[:numSigma-1]
	numPositions := chienSearch(positions, n, sigma)
	if numPositions < 0 {
		return 0, ErrUncorrectable
	}
	positions = positions[:numPositions]

	omega := c.omega[:numSigma-1]
	polyMulLen(omega, syndromes, sigma, numSigma-1)

	forneyCorrect(message, n, positions, sigma, omega)
	return numSigma - 1, nil
}
