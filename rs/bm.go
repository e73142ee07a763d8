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

// modifiedBerlekampMassey recovers the minimum-degree error locator sigma
// consistent with the given syndromes, writing it into result (capacity
// >= len(syndromes)) and returning numSigma = deg(sigma)+1, or -1 if the
// recurrence produced an inconsistent locator.
//
// This keeps the previous locator pre-shifted on every iteration (the
// "modified" variant), which folds the degree/length bookkeeping of the
// textbook presentation into a single unconditional shift at the bottom of
// the loop. Two working buffers take turns holding the "candidate" locator;
// an index toggle (sg1/work) stands in for the reference's pointer swap.
func modifiedBerlekampMassey(result []byte, syndromes []byte) int {
	n := len(syndromes)

	sg0 := make([]byte, n+1)
	sg1 := make([]byte, n+1)
	work := make([]byte, n+1)

	sg0[1] = 1
	sg1[0] = 1

	s0 := 1
	s1 := 0
	k := -1

	for i := 0; i < n; i++ {
		s := syndromes[i]
		for j := 1; j <= s1; j++ {
			s ^= gfMul(sg1[j], syndromes[i-j])
		}
		if s != 0 {
			l := gflog[s]
			for j := 0; j <= i; j++ {
				work[j] = sg1[j] ^ gfMulExp(sg0[j], l)
			}
			d := i - k
			if s1 < d {
				for j := 0; j <= s0; j++ {
					sg0[j] = gfDivExp(sg1[j], l)
				}
				k = i - s1
				s0 = d
				s1 = d
			}
			sg1, work = work, sg1
		}
		for j := s0 - 1; j >= 0; j-- {
			sg0[j+1] = sg0[j]
		}
		sg0[0] = 0
		s0++
	}

	if sg1[s1] == 0 {
		return -1
	}
	size := s1 + 1
	copy(result[:size], sg1[:size])
	return size
}
