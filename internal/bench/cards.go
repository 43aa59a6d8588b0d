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
	"os"
	"path/filepath"
	"reflect"

	"github.com/ansel1/merry"
	"github.com/dustin/go-humanize"

	"github.com/biogo/ordbench/card"
	"github.com/biogo/ordbench/countsort"
	"github.com/biogo/ordbench/internal/config"
	"github.com/biogo/ordbench/internal/logging"
)

// Card benchmark output file names.
const (
	ComparatorMatchedFile = "matched_l.csv"
	BucketMatchedFile     = "matched_b.csv"
	CardTimesFile         = "times.csv"
)

// A CardReport holds the outcome of CardSuite.
type CardReport struct {
	Rows       int
	Comparator Result
	Bucket     Result
	// Agree is whether both sorts produced the same order. They differ only
	// when PINs fall outside the bucket range.
	Agree bool
}

func loadFile(path string, load func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return merry.Prependf(err, "bench: opening %s", path)
	}
	defer f.Close()
	return merry.Prependf(load(f), "bench: loading %s", path)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return merry.Prependf(err, "bench: creating %s", path)
	}
	err = write(f)
	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	return merry.Prependf(err, "bench: writing %s", path)
}

// CardSuite loads the two card dumps named in cfg, sorts the detail rows by
// expiry then PIN with both a comparison sort and the counting sort, and writes
// each matched table and the timings to dir.
func CardSuite(cfg config.CardsConfig, dir string) (*CardReport, error) {
	var (
		masked  []card.Masked
		details []card.Detail
	)
	err := loadFile(cfg.MaskedPath, func(r io.Reader) (err error) {
		masked, err = card.LoadMasked(r)
		return
	})
	if err != nil {
		return nil, err
	}
	err = loadFile(cfg.DetailPath, func(r io.Reader) (err error) {
		details, err = card.LoadDetails(r)
		return
	})
	if err != nil {
		return nil, err
	}
	logging.Infof("loaded %s masked and %s detail rows",
		humanize.Comma(int64(len(masked))), humanize.Comma(int64(len(details))))
	if len(masked) != len(details) {
		logging.Warnf("dump lengths differ, matching first %d rows", min(len(masked), len(details)))
	}

	recs := card.Records(details)
	var byComparator, byBucket []countsort.Record
	rep := &CardReport{Rows: len(details)}
	rep.Comparator = Result{Label: "nlogn", Size: len(recs), Elapsed: Time(func() {
		byComparator = countsort.ComparatorSort(recs)
	})}
	rep.Bucket = Result{Label: "Bucket", Size: len(recs), Elapsed: Time(func() {
		byBucket = countsort.Sort(recs, cfg.SecondaryRange)
	})}
	rep.Agree = reflect.DeepEqual(byComparator, byBucket)
	if !rep.Agree {
		logging.Warnf("comparison and counting sort orders differ; PINs may lie outside [0, %d)", cfg.SecondaryRange)
	}

	err = writeFile(filepath.Join(dir, ComparatorMatchedFile), func(w io.Writer) error {
		return card.WriteMatched(w, masked, card.Details(byComparator))
	})
	if err != nil {
		return nil, err
	}
	err = writeFile(filepath.Join(dir, BucketMatchedFile), func(w io.Writer) error {
		return card.WriteMatched(w, masked, card.Details(byBucket))
	})
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, CardTimesFile)
	t, err := CreateTable(path, "Algorithm", "Time_ms")
	if err != nil {
		return nil, err
	}
	err = Sinks{t, LogSink{}}.Put(rep.Comparator)
	if err == nil {
		err = Sinks{t, LogSink{}}.Put(rep.Bucket)
	}
	cerr := t.Close()
	if err != nil {
		return nil, err
	}
	if cerr != nil {
		return nil, cerr
	}
	logging.Infof("times saved to %s", path)
	return rep, nil
}
