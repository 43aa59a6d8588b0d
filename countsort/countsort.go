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

// Package countsort implements a stable linear time sort of records on a
// composite (primary, secondary) key using two counting sort passes.
//
// The first pass orders records by their secondary key over a fixed bucket
// range. The second pass orders the result by primary key over a histogram
// sized to the observed primary key range. Because each pass is stable the
// composition orders records by primary key, then secondary key, keeping the
// input order of records with equal keys.
package countsort

import "sort"

// DefaultSecondaryRange is the number of secondary key buckets used for
// four digit PIN values, [0, 9999].
const DefaultSecondaryRange = 10000

// A Record is a sortable row with a composite key and an opaque payload that
// is carried through sorting unchanged.
type Record struct {
	Primary   int
	Secondary int
	Payload   interface{}
}

// Clamp returns key limited to the bucket range [0, k).
func Clamp(key, k int) int {
	if key < 0 {
		return 0
	}
	if key >= k {
		return k - 1
	}
	return key
}

// Sort returns recs ordered by ascending Primary then ascending Secondary. Secondary
// keys are clamped into [0, secondaryRange). A secondaryRange less than one is
// treated as one. recs is not altered.
func Sort(recs []Record, secondaryRange int) []Record {
	return ByPrimary(BySecondary(recs, secondaryRange))
}

// BySecondary returns a stable ordering of recs by Secondary key using a histogram
// of secondaryRange buckets. Secondary keys outside [0, secondaryRange) are placed in
// the nearest bucket. recs is not altered.
func BySecondary(recs []Record, secondaryRange int) []Record {
	if secondaryRange < 1 {
		secondaryRange = 1
	}
	return place(recs, make([]int, secondaryRange), func(r *Record) int {
		return Clamp(r.Secondary, secondaryRange)
	})
}

// MaxPrimarySpan is the largest spread of Primary keys ByPrimary will
// allocate a histogram for.
const MaxPrimarySpan = 1 << 24

// ByPrimary returns a stable ordering of recs by Primary key using a histogram
// spanning the smallest to the largest Primary key present. recs is not altered.
// If the keys spread wider than MaxPrimarySpan, a stable comparison sort on
// Primary is used instead.
func ByPrimary(recs []Record) []Record {
	if len(recs) == 0 {
		return []Record{}
	}
	lo, hi := recs[0].Primary, recs[0].Primary
	for _, r := range recs[1:] {
		if r.Primary < lo {
			lo = r.Primary
		}
		if r.Primary > hi {
			hi = r.Primary
		}
	}
	if uint64(hi)-uint64(lo) >= MaxPrimarySpan {
		out := append([]Record(nil), recs...)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Primary < out[j].Primary })
		return out
	}
	return place(recs, make([]int, hi-lo+1), func(r *Record) int {
		return r.Primary - lo
	})
}

// place performs a stable counting sort of recs into a new slice using the
// zeroed histogram cnt. bucket must return an index into cnt.
func place(recs []Record, cnt []int, bucket func(*Record) int) []Record {
	for i := range recs {
		cnt[bucket(&recs[i])]++
	}
	for i := 1; i < len(cnt); i++ {
		cnt[i] += cnt[i-1]
	}

	// cnt[b] is now one past the last slot for bucket b. Scanning the input
	// backwards and filling each bucket from its end keeps equal keys in
	// input order.
	out := make([]Record, len(recs))
	for i := len(recs) - 1; i >= 0; i-- {
		b := bucket(&recs[i])
		cnt[b]--
		out[cnt[b]] = recs[i]
	}
	return out
}

// ComparatorSort returns recs ordered by ascending Primary then ascending Secondary
// using a stable comparison sort. Secondary keys are compared without clamping.
// recs is not altered.
func ComparatorSort(recs []Record) []Record {
	out := make([]Record, len(recs))
	copy(out, recs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Primary != out[j].Primary {
			return out[i].Primary < out[j].Primary
		}
		return out[i].Secondary < out[j].Secondary
	})
	return out
}
