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

// Package card reads and writes the card dump tables used by the linear sort
// benchmark.
//
// The first dump holds masked card numbers, one per row. The second holds
// the number suffix, expiry date, verification code, PIN and issuing network
// of each card. Rows of the second dump are sorted by expiry then PIN and
// paired positionally with rows of the first to rebuild full card numbers.
package card

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/ansel1/merry"

	"github.com/biogo/ordbench/countsort"
)

// MatchedHeader is the header row written by WriteMatched.
var MatchedHeader = []string{"Credit Card Number", "Expiry Date", "Verification Code", "PIN", "Issueing Network"}

// A Masked is a row of the first dump.
type Masked struct {
	Number string
}

// A Detail is a row of the second dump. ExpiryIndex and PINValue are the
// sort keys derived from Expiry and PIN.
type Detail struct {
	Suffix  string
	Expiry  string
	CVV     string
	PIN     string
	Network string

	ExpiryIndex int
	PINValue    int
}

var months = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// ParseExpiry parses an expiry date in Mmm-YY form, returning the month index
// year*12 + month with years taken to be in the 2000s. If s is not a valid
// expiry date, ok is false.
func ParseExpiry(s string) (index int, ok bool) {
	if len(s) < 6 || s[3] != '-' {
		return 0, false
	}
	month, ok := months[s[:3]]
	if !ok {
		return 0, false
	}
	c0, c1 := s[4], s[5]
	if c0 < '0' || c0 > '9' || c1 < '0' || c1 > '9' {
		return 0, false
	}
	year := 2000 + int(c0-'0')*10 + int(c1-'0')
	return year*12 + month, true
}

// ParsePIN returns the integer value of a PIN, or zero if it cannot be parsed.
func ParsePIN(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return cr
}

// LoadMasked reads the first dump from r. The header row is skipped. Quotes
// are taken literally wherever they appear in a field.
func LoadMasked(r io.Reader) ([]Masked, error) {
	cr := newReader(r)
	var rows []Masked
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, merry.Prependf(err, "card: reading masked dump row %d", line)
		}
		if line == 0 || len(rec) == 0 {
			continue
		}
		rows = append(rows, Masked{Number: rec[0]})
	}
}

// LoadDetails reads the second dump from r. The header row and rows with fewer
// than five fields are skipped. Unparsable expiry dates and PINs give zero keys.
func LoadDetails(r io.Reader) ([]Detail, error) {
	cr := newReader(r)
	var rows []Detail
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, merry.Prependf(err, "card: reading detail dump row %d", line)
		}
		if line == 0 || len(rec) < 5 {
			continue
		}
		d := Detail{
			Suffix:  rec[0],
			Expiry:  rec[1],
			CVV:     rec[2],
			PIN:     rec[3],
			Network: rec[4],
		}
		d.ExpiryIndex, _ = ParseExpiry(d.Expiry)
		d.PINValue = ParsePIN(d.PIN)
		rows = append(rows, d)
	}
}

// MergeNumber completes a masked card number with the last four characters of
// suffix. A trailing "****" in masked is replaced, otherwise everything after
// the last '-' is replaced, otherwise the digits are appended.
func MergeNumber(masked, suffix string) string {
	last4 := "????"
	if len(suffix) >= 4 {
		last4 = suffix[len(suffix)-4:]
	}
	if strings.HasSuffix(masked, "****") {
		return masked[:len(masked)-4] + last4
	}
	if i := strings.LastIndexByte(masked, '-'); i >= 0 {
		return masked[:i+1] + last4
	}
	return masked + last4
}

// WriteMatched writes the pairing of masked and details to w as CSV, pairing rows
// by position up to the length of the shorter table.
func WriteMatched(w io.Writer, masked []Masked, details []Detail) error {
	cw := csv.NewWriter(w)
	err := cw.Write(MatchedHeader)
	if err != nil {
		return merry.Prepend(err, "card: writing matched header")
	}
	n := len(masked)
	if len(details) < n {
		n = len(details)
	}
	for i := 0; i < n; i++ {
		d := details[i]
		err = cw.Write([]string{MergeNumber(masked[i].Number, d.Suffix), d.Expiry, d.CVV, d.PIN, d.Network})
		if err != nil {
			return merry.Prependf(err, "card: writing matched row %d", i)
		}
	}
	cw.Flush()
	return merry.Wrap(cw.Error())
}

// Records returns details as sort records keyed on expiry then PIN. Each
// record's payload is the corresponding Detail.
func Records(details []Detail) []countsort.Record {
	recs := make([]countsort.Record, len(details))
	for i, d := range details {
		recs[i] = countsort.Record{Primary: d.ExpiryIndex, Secondary: d.PINValue, Payload: d}
	}
	return recs
}

// Details returns the Detail payloads of recs.
func Details(recs []countsort.Record) []Detail {
	details := make([]Detail, len(recs))
	for i, r := range recs {
		details[i] = r.Payload.(Detail)
	}
	return details
}
