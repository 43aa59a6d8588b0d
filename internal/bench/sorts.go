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

package bench

import (
	"io"
	"math/rand"
	"path/filepath"
	"strconv"
	"time"

	"github.com/biogo/ordbench/internal/config"
	"github.com/biogo/ordbench/internal/logging"
	"github.com/biogo/ordbench/sorts"
)

// SortResultsFile is the name of the sort sweep results table.
const SortResultsFile = "sorting_results.csv"

// A Sorter is a named in place int sort.
type Sorter struct {
	Name string
	Sort func([]int)
}

// Sorters are the sorts timed by SortSuite, in table column order.
var Sorters = []Sorter{
	{"Bubble", sorts.Bubble},
	{"Insertion", sorts.Insertion},
	{"Merge", sorts.Merge},
	{"Quick", sorts.Quick},
}

// A SweepRow holds the mean time taken by each of Sorters for one input size.
type SweepRow struct {
	Size int
	Mean []time.Duration
}

// SortSuite times each of Sorters over cfg.Runs random inputs at each of cfg.Sizes.
// Every sorter receives its own copy of the same input in each run.
func SortSuite(cfg config.SortConfig, prog io.Writer) []SweepRow {
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	rnd := rand.New(rand.NewSource(cfg.Seed))
	bar := newProgress(prog, len(cfg.Sizes)*cfg.Runs, "sorts")
	defer bar.finish()

	rows := make([]SweepRow, 0, len(cfg.Sizes))
	for _, n := range cfg.Sizes {
		total := make([]time.Duration, len(Sorters))
		work := make([]int, n)
		for run := 0; run < cfg.Runs; run++ {
			data := sorts.Random(rnd, n, cfg.MaxValue)
			for i, s := range Sorters {
				copy(work, data)
				total[i] += Time(func() { s.Sort(work) })
			}
			bar.step()
		}
		row := SweepRow{Size: n, Mean: make([]time.Duration, len(Sorters))}
		fields := logging.Fields{"n": n}
		for i := range total {
			row.Mean[i] = total[i] / time.Duration(cfg.Runs)
			fields[Sorters[i].Name] = row.Mean[i].Microseconds()
		}
		logging.InfofWithFields(fields, "sorted %d values", n)
		rows = append(rows, row)
	}
	return rows
}

// WriteSweep writes rows to t as size then per sorter mean microseconds.
func WriteSweep(t *Table, rows []SweepRow) error {
	for _, r := range rows {
		fields := []string{strconv.Itoa(r.Size)}
		for _, d := range r.Mean {
			fields = append(fields, strconv.FormatInt(d.Microseconds(), 10))
		}
		err := t.Write(fields...)
		if err != nil {
			return err
		}
	}
	return nil
}

func sweepHeader() []string {
	h := []string{"Size"}
	for _, s := range Sorters {
		h = append(h, s.Name)
	}
	return h
}

// RunSorts runs SortSuite writing results to SortResultsFile in dir.
func RunSorts(cfg config.SortConfig, dir string, prog io.Writer) ([]SweepRow, error) {
	path := filepath.Join(dir, SortResultsFile)
	t, err := CreateTable(path, sweepHeader()...)
	if err != nil {
		return nil, err
	}
	rows := SortSuite(cfg, prog)
	err = WriteSweep(t, rows)
	cerr := t.Close()
	if err != nil {
		return nil, err
	}
	if cerr != nil {
		return nil, cerr
	}
	logging.Infof("sort results saved to %s", path)
	return rows, nil
}
