// Copyright ©2026 The bíogo Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package bench drives the ordered set and sorting benchmarks, timing each
// operation and recording results to CSV tables.
package bench

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/ansel1/merry"
	"github.com/schollz/progressbar/v3"

	"github.com/biogo/ordbench/internal/logging"
)

// A Result is the elapsed time of a labelled benchmark step.
type Result struct {
	Label   string
	Size    int
	Elapsed time.Duration
}

// Millis returns the elapsed time in milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// A Sink receives benchmark results.
type Sink interface {
	Put(Result) error
}

// Sinks is a Sink that passes results to each of its elements in turn.
type Sinks []Sink

// Put passes r to each sink, stopping at the first error.
func (s Sinks) Put(r Result) error {
	for _, sink := range s {
		err := sink.Put(r)
		if err != nil {
			return err
		}
	}
	return nil
}

// LogSink logs each result at info level.
type LogSink struct{}

// Put logs r.
func (LogSink) Put(r Result) error {
	logging.InfofWithFields(logging.Fields{"label": r.Label, "size": r.Size, "ms": r.Millis()},
		"%s took %v", r.Label, r.Elapsed)
	return nil
}

// A Table writes rows of a CSV table.
type Table struct {
	w *csv.Writer
	c io.Closer
}

// NewTable returns a Table writing to w, after writing header.
func NewTable(w io.Writer, header ...string) (*Table, error) {
	t := &Table{w: csv.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		t.c = c
	}
	err := t.w.Write(header)
	if err != nil {
		return nil, merry.Prepend(err, "bench: writing table header")
	}
	return t, nil
}

// CreateTable creates the file at path and returns a Table writing to it.
func CreateTable(path string, header ...string) (*Table, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, merry.Prependf(err, "bench: creating %s", path)
	}
	t, err := NewTable(f, header...)
	if err != nil {
		f.Close()
		return nil, err
	}
	return t, nil
}

// Write writes a row of fields to the table.
func (t *Table) Write(fields ...string) error {
	return merry.Wrap(t.w.Write(fields))
}

// Put writes r as a label, milliseconds row.
func (t *Table) Put(r Result) error {
	return t.Write(r.Label, strconv.FormatFloat(r.Millis(), 'f', -1, 64))
}

// Close flushes the table and closes the underlying writer if it is an io.Closer.
func (t *Table) Close() error {
	t.w.Flush()
	err := t.w.Error()
	if t.c != nil {
		cerr := t.c.Close()
		if err == nil {
			err = cerr
		}
	}
	return merry.Wrap(err)
}

// Time returns the time taken to run fn.
func Time(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// Keys returns the keys 1 to n in an order shuffled by swapping each
// position with a position chosen uniformly at random using seed.
func Keys(n int, seed int64) []int {
	rnd := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}
	for i := range keys {
		j := rnd.Intn(n)
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys
}

// progress wraps an optional progress bar.
type progress struct {
	bar *progressbar.ProgressBar
}

func newProgress(w io.Writer, total int, desc string) progress {
	if w == nil {
		return progress{}
	}
	return progress{bar: progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)}
}

func (p progress) step() {
	if p.bar != nil {
		p.bar.Add(1)
	}
}

func (p progress) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
