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

// Context is the caller-owned scratch workspace shared by every encode and
// decode call for a given t. It is NOT safe for concurrent use by multiple
// goroutines; a goroutine that needs to process blocks in parallel should
// allocate one Context per in-flight block (the field tables package-level
// gflog/gfexp are read-only and may be shared freely).
type Context struct {
	t int // the t this context was last initialized for; 0 means uninitialized

	generator []byte // t+1 bytes, leading coefficient 1
	syndromes []byte // t+1 bytes (only the first t are used)
	sigma     []byte // t bytes: the error locator
	positions []byte // t bytes: discovered error positions
	omega     []byte // 2t bytes: the error evaluator
	scratch   [gfSize]byte
}

// NewContext allocates a Context and initializes its generator polynomial
// for t parity symbols. t must satisfy 1 <= t <= MaxParity.
func NewContext(t int) (*Context, error) {
	c := new(Context)
	if err := c.Init(t); err != nil {
		return nil, err
	}
	return c, nil
}

// Init (re)builds the generator polynomial for t parity symbols. It is
// idempotent: calling Init twice with the same t leaves the generator
// bit-identical, and a Context may be reinitialized for a new t and then
// reused for any number of blocks sharing that t.
func (c *Context) Init(t int) error {
	if t < 1 || t > MaxParity {
		return ErrInvalidT
	}
	if cap(c.generator) < t+1 {
		c.generator = make([]byte, t+1)
		c.syndromes = make([]byte, t+1)
		c.sigma = make([]byte, t)
		c.positions = make([]byte, t)
		c.omega = make([]byte, 2*t)
	}
	c.generator = c.generator[:t+1]
	c.syndromes = c.syndromes[:t+1]
	c.sigma = c.sigma[:t]
	c.positions = c.positions[:t]
	c.omega = c.omega[:2*t]

	buildGenerator(c.generator, c.scratch[:t+1], t)
	c.t = t
	return nil
}
