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
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Stats accumulates running counters over the lifetime of a codec process.
// Every field is updated with sync/atomic so callers may encode and decode
// blocks concurrently while a logger drains the counters in the background.
type Stats struct {
	BlocksEncoded       uint64
	BlocksDecoded       uint64
	BlocksClean         uint64
	BlocksCorrected     uint64
	SymbolsCorrected    uint64
	BlocksUncorrectable uint64
	BytesIn             uint64
	BytesOut            uint64
}

// DefaultStats is the process-wide counter set for callers that don't need
// an isolated instance.
var DefaultStats = &Stats{}

// RecordEncode accounts for one successful Encode call over n bytes.
func (s *Stats) RecordEncode(n int) {
	atomic.AddUint64(&s.BlocksEncoded, 1)
	atomic.AddUint64(&s.BytesOut, uint64(n))
}

// RecordDecode accounts for one Decode outcome: n corrected symbols (0 for a
// clean block), or a negative n for ErrUncorrectable.
func (s *Stats) RecordDecode(n int, bytesIn int) {
	atomic.AddUint64(&s.BlocksDecoded, 1)
	atomic.AddUint64(&s.BytesIn, uint64(bytesIn))
	switch {
	case n < 0:
		atomic.AddUint64(&s.BlocksUncorrectable, 1)
	case n == 0:
		atomic.AddUint64(&s.BlocksClean, 1)
	default:
		atomic.AddUint64(&s.BlocksCorrected, 1)
		atomic.AddUint64(&s.SymbolsCorrected, uint64(n))
	}
}

// Header returns the CSV column names, in the same order as ToSlice.
func (s *Stats) Header() []string {
	return []string{
		"BlocksEncoded", "BlocksDecoded", "BlocksClean", "BlocksCorrected",
		"SymbolsCorrected", "BlocksUncorrectable", "BytesIn", "BytesOut",
	}
}

// ToSlice snapshots the counters as strings for CSV output.
func (s *Stats) ToSlice() []string {
	return []string{
		fmt.Sprint(atomic.LoadUint64(&s.BlocksEncoded)),
		fmt.Sprint(atomic.LoadUint64(&s.BlocksDecoded)),
		fmt.Sprint(atomic.LoadUint64(&s.BlocksClean)),
		fmt.Sprint(atomic.LoadUint64(&s.BlocksCorrected)),
		fmt.Sprint(atomic.LoadUint64(&s.SymbolsCorrected)),
		fmt.Sprint(atomic.LoadUint64(&s.BlocksUncorrectable)),
		fmt.Sprint(atomic.LoadUint64(&s.BytesIn)),
		fmt.Sprint(atomic.LoadUint64(&s.BytesOut)),
	}
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.BlocksEncoded, 0)
	atomic.StoreUint64(&s.BlocksDecoded, 0)
	atomic.StoreUint64(&s.BlocksClean, 0)
	atomic.StoreUint64(&s.BlocksCorrected, 0)
	atomic.StoreUint64(&s.SymbolsCorrected, 0)
	atomic.StoreUint64(&s.BlocksUncorrectable, 0)
	atomic.StoreUint64(&s.BytesIn, 0)
	atomic.StoreUint64(&s.BytesOut, 0)
}

// StatsLogger periodically appends a row of stats's counters to a CSV file
// at path, rolling to a new file whenever path (interpreted through
// time.Format on its basename) changes. It blocks, so callers run it in its
// own goroutine.
func StatsLogger(path string, interval int, stats *Stats) {
	if path == "" || interval == 0 {
		return
	}
	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		logdir, logfile := filepath.Split(path)
		f, err := os.OpenFile(logdir+time.Now().Format(logfile), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Println(err)
			return
		}
		w := csv.NewWriter(f)
		if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
			if err := w.Write(append([]string{"Unix"}, stats.Header()...)); err != nil {
				log.Println(err)
			}
		}
		if err := w.Write(append([]string{fmt.Sprint(time.Now().Unix())}, stats.ToSlice()...)); err != nil {
			log.Println(err)
		}
		w.Flush()
		f.Close()
	}
}
