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

// chienSearchTwo solves a quadratic root pair directly: it scans i in
// [start, end) looking for z0=alpha^i, z1=a^z0 such that mulexp(z1,i)==b,
// which identifies the two roots of a degree-2 sigma. It returns -1 if no
// consistent pair is found in range.
//
// The in-range check `index <= i || end <= index` rejects a root equal to
// alpha^i discovered at step i, along with any root already outside the
// scan window, so each distinct root pair is only ever reported once.
func chienSearchTwo(result []byte, start, end int, a, b byte) int {
	for i := start; i < end; i++ {
		z0 := gfexp[i]
		z1 := a ^ z0
		if gfMulExp(z1, byte(i)) == b {
			index := int(gflog[z1])
			if index <= i || end <= index {
				return -1
			}
			result[0] = z1
			result[1] = z0
			return 2
		}
	}
	return -1
}

// chienSearch finds the roots of sigma (length numSigma, degree s0 =
// numSigma-1) over a field of size n = k+t, returning the error locators
// (each an alpha^(n-1-p) value where p is a byte position in the received
// word) or -1 on failure.
//
// Degree 1 reads the single root directly. Degree 2 delegates to
// chienSearchTwo. Degree >= 3 performs an incremental Chien sweep, peeling
// off roots as they're found and handing the residual quadratic to
// chienSearchTwo once only two roots remain — a performance optimization
// that must (and does) produce identical corrections to a naive full sweep.
func chienSearch(result []byte, n int, sigma []byte) int {
	numSigma := len(sigma)
	s0 := numSigma - 1
	sum := sigma[1]
	mul := sigma[s0]

	if s0 == 1 {
		if n <= int(gflog[sum]) {
			return -1
		}
		result[0] = sum
		return 1
	}
	if s0 == 2 {
		return chienSearchTwo(result, 0, n, sum, mul)
	}

	var temp0 [2]byte
	index := s0 - 1
	z := gfOrder
	for i := 0; i < n; i++ {
		temp := byte(1)
		wz := z
		for j := 1; j <= s0; j++ {
			temp ^= gfMulExp(sigma[j], byte(wz))
			wz = (wz + z) % gfOrder
		}
		z--
		if temp != 0 {
			continue
		}
		p := gfexp[i]
		sum ^= p
		mul = gfDiv(mul, p)
		result[index] = p
		index--
		if index == 1 {
			t := chienSearchTwo(temp0[:], i+1, n, sum, mul)
			if t < 0 {
				return -1
			}
			result[0] = temp0[0]
			result[1] = temp0[1]
			return s0
		}
	}
	return -1
}
