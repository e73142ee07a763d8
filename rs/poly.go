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

// Polynomials in this package are byte slices. The codeword and the
// generator are ordered highest-degree-first (poly[0] is the leading
// coefficient), which is the order polyEval and polyAdd assume. The
// decoder's syndrome, sigma and omega polynomials are ordered
// lowest-degree-first (poly[i] is the coefficient of x^i), which is the
// order omegaValue and sigmaDashValue assume; polyMul and polyMulLen work
// on either order. None of the routines below allocate;
// callers supply the output buffer and its capacity must match what the
// routine documents.

// polyScale multiplies every coefficient of p by the scalar x, writing into
// result. len(result) must be >= len(p).
func polyScale(result, p []byte, x byte) {
	for i := range p {
		result[i] = gfMul(p[i], x)
	}
}

// polyAdd XORs p and q, aligning the shorter operand to the least
// significant end, and returns the number of coefficients written into
// result. len(result) must be >= max(len(p), len(q)).
func polyAdd(result, p, q []byte) int {
	size := len(p)
	if len(q) > size {
		size = len(q)
	}
	d := 0
	if len(q) > len(p) {
		d = len(q) - len(p)
	}
	for i := 0; i < d; i++ {
		result[i] = 0
	}
	for i := range p {
		result[i+size-len(p)] = p[i]
	}
	for i := range q {
		result[i+size-len(q)] ^= q[i]
	}
	return size
}

// polyMul computes the full convolution of p and q, writing len(p)+len(q)-1
// coefficients into result.
func polyMul(result, p, q []byte) int {
	total := len(p) + len(q) - 1
	for i := 0; i < total; i++ {
		result[i] = 0
	}
	for i := range q {
		for j := range p {
			result[i+j] ^= gfMul(p[j], q[i])
		}
	}
	return total
}

// polyMulLen computes the product of p and q truncated to l coefficients,
// using log-domain multiplication to halve table lookups in the inner loop.
func polyMulLen(result, p, q []byte, l int) int {
	for i := 0; i < l; i++ {
		result[i] = 0
	}
	psize := len(p)
	if psize > l {
		psize = l
	}
	for i := 0; i < psize; i++ {
		if p[i] == 0 {
			continue
		}
		logp := gflog[p[i]]
		qs := l - i
		if len(q) < qs {
			qs = len(q)
		}
		for j := 0; j < qs; j++ {
			if q[j] == 0 {
				continue
			}
			result[i+j] ^= gfMulExp(q[j], logp)
		}
	}
	return l
}

// polyEval evaluates poly at x via Horner's method, leading coefficient
// first.
func polyEval(poly []byte, x byte) byte {
	y := poly[0]
	for i := 1; i < len(poly); i++ {
		y = gfMul(y, x) ^ poly[i]
	}
	return y
}

// omegaValue evaluates the error evaluator polynomial omega at alpha^l in
// the log domain, folding all coefficients.
func omegaValue(omega []byte, l byte) byte {
	w := l
	o := omega[0]
	for i := 1; i < len(omega); i++ {
		o ^= gfMulExp(omega[i], w)
		w = byte((int(w) + int(l)) % gfOrder)
	}
	return o
}

// sigmaDashValue evaluates the formal derivative of sigma at alpha^l,
// folding only the odd-index coefficients (the even-index terms vanish
// under differentiation in characteristic 2).
func sigmaDashValue(sigma []byte, l byte) byte {
	size := len(sigma) - 1
	l2 := byte((2 * int(l)) % gfOrder)
	w := l2
	d := sigma[1]
	for i := 3; i <= size; i += 2 {
		d ^= gfMulExp(sigma[i], w)
		w = byte((int(w) + int(l2)) % gfOrder)
	}
	return d
}
