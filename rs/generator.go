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

// buildGenerator constructs g(x) = (x-alpha^0)(x-alpha^1)...(x-alpha^(t-1))
// as a length-(t+1) byte sequence with leading coefficient 1, writing into
// result (which must have capacity t+1) and using tmp as scratch (capacity
// t+1). The generator depends only on t, so two calls with the same t
// produce bit-identical output.
func buildGenerator(result []byte, tmp []byte, t int) {
	result[0] = 1
	size := 1
	binomial := [2]byte{1, 0}
	for i := 0; i < t; i++ {
		binomial[1] = gfexp[i]
		size = polyMul(tmp, result[:size], binomial[:])
		copy(result[:size], tmp[:size])
	}
}
