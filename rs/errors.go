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

import "errors"

var (
	// ErrInvalidT is returned when t falls outside [1, MaxParity].
	ErrInvalidT = errors.New("rs: t must satisfy 1 <= t <= 52")

	// ErrBlockTooLarge is returned when k+t exceeds 255.
	ErrBlockTooLarge = errors.New("rs: k+t must not exceed 255")

	// ErrShortBuffer is returned when the caller's message buffer is smaller
	// than k+t bytes.
	ErrShortBuffer = errors.New("rs: message buffer shorter than k+t")

	// ErrContextMismatch is returned when a Context initialized for one t is
	// used to encode or decode with a different t.
	ErrContextMismatch = errors.New("rs: context was initialized for a different t")

	// ErrUncorrectable is returned by Decode when the error locator fails to
	// factor or the Chien search cannot find all roots. The message buffer's
	// contents are unspecified after this error and must be discarded.
	ErrUncorrectable = errors.New("rs: block is uncorrectable")
)
