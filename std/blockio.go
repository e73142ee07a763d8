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
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/xtaci/rscodec/rs"
)

const bufSize = 4096

// Copy is a memory-optimized io.Copy: it uses src's WriterTo or dst's
// ReaderFrom when available, and otherwise copies through a bufSize buffer.
func Copy(dst io.Writer, src io.Reader) (written int64, err error) {
	if wt, ok := src.(io.WriterTo); ok {
		return wt.WriteTo(dst)
	}
	if rt, ok := dst.(io.ReaderFrom); ok {
		return rt.ReadFrom(src)
	}
	buf := make([]byte, bufSize)
	return io.CopyBuffer(dst, src, buf)
}

// EncodeStream reads r in k-byte messages, RS-encodes each one with ctx into
// a k+t-byte block, and writes a 4-byte big-endian length-prefixed block to
// w. The final message is zero-padded to k bytes if the input does not
// divide evenly; the prefix records the unpadded message length so
// DecodeStream can trim the padding back off.
func EncodeStream(ctx *rs.Context, w io.Writer, r io.Reader, k, t int, stats *Stats) (blocks int64, err error) {
	buf := make([]byte, k+t)
	var header [4]byte
	for {
		n, readErr := io.ReadFull(r, buf[:k])
		if n == 0 {
			if readErr == io.EOF {
				return blocks, nil
			}
			return blocks, errors.WithStack(readErr)
		}
		for i := n; i < k; i++ {
			buf[i] = 0
		}
		if err := ctx.Encode(buf, k, t); err != nil {
			return blocks, errors.WithStack(err)
		}

		binary.BigEndian.PutUint32(header[:], uint32(n))
		if _, err := w.Write(header[:]); err != nil {
			return blocks, errors.WithStack(err)
		}
		if _, err := w.Write(buf); err != nil {
			return blocks, errors.WithStack(err)
		}
		if stats != nil {
			stats.RecordEncode(k + t)
		}
		blocks++

		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			return blocks, nil
		}
		if readErr != nil {
			return blocks, errors.WithStack(readErr)
		}
	}
}

// DecodeStream reverses EncodeStream: it reads length-prefixed k+t-byte
// blocks from r, RS-decodes each with ctx, and writes the recovered message
// (trimmed to its original length) to w. It returns the number of blocks
// processed and the total number of symbols corrected across all of them.
// A block that Decode reports as uncorrectable aborts the stream with
// rs.ErrUncorrectable; partial output already written to w is not rolled
// back. A block with more errors than the code can correct may instead be
// miscorrected, which DecodeStream cannot detect.
func DecodeStream(ctx *rs.Context, w io.Writer, r io.Reader, k, t int, stats *Stats) (blocks int64, corrections int64, err error) {
	buf := make([]byte, k+t)
	var header [4]byte
	for {
		if _, readErr := io.ReadFull(r, header[:]); readErr != nil {
			if readErr == io.EOF {
				return blocks, corrections, nil
			}
			return blocks, corrections, errors.WithStack(readErr)
		}
		n := int(binary.BigEndian.Uint32(header[:]))
		if n < 0 || n > k {
			return blocks, corrections, errors.New("blockio: corrupt length prefix")
		}

		if _, readErr := io.ReadFull(r, buf); readErr != nil {
			return blocks, corrections, errors.WithStack(readErr)
		}

		fixed, decErr := ctx.Decode(buf, k, t)
		if stats != nil {
			if decErr != nil {
				stats.RecordDecode(-1, k+t)
			} else {
				stats.RecordDecode(fixed, k+t)
			}
		}
		if decErr != nil {
			return blocks, corrections, decErr
		}
		corrections += int64(fixed)
		blocks++

		if _, err := w.Write(buf[:n]); err != nil {
			return blocks, corrections, errors.WithStack(err)
		}
	}
}
