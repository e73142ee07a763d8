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

// forneyCorrect XORs the Forney error magnitude into each recovered
// position of message (length n=k+t), given the error locators in
// positions, sigma, and the truncated error evaluator omega.
func forneyCorrect(message []byte, n int, positions []byte, sigma []byte, omega []byte) {
	for _, root := range positions {
		l := byte(gfOrder - int(gflog[root]))
		d := sigmaDashValue(sigma, l)
		o := omegaValue(omega, l)
		p := n - 1 - int(gflog[root])
		message[p] ^= gfDivExp(gfDiv(o, d), l)
	}
}
