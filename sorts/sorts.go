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

// Package sorts provides the elementary comparison sorts used as baselines
// when benchmarking ordered structures. All sorts order a []int ascending in place.
package sorts

import (
	"math/rand"
	"sort"
)

// Bubble sorts a by repeated adjacent exchange.
func Bubble(a []int) {
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
}

// Insertion sorts a by insertion into a growing sorted prefix.
func Insertion(a []int) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for ; j >= 0 && a[j] > key; j-- {
			a[j+1] = a[j]
		}
		a[j+1] = key
	}
}

// Merge sorts a by top-down merge sort. Merge is stable.
func Merge(a []int) {
	if len(a) < 2 {
		return
	}
	mergeSort(a, make([]int, len(a)))
}

func mergeSort(a, buf []int) {
	if len(a) < 2 {
		return
	}
	m := (len(a) + 1) / 2
	mergeSort(a[:m], buf[:m])
	mergeSort(a[m:], buf[m:])

	copy(buf, a)
	l, r := buf[:m], buf[m:len(a)]
	var i, j, k int
	for i < len(l) && j < len(r) {
		if l[i] <= r[j] {
			a[k] = l[i]
			i++
		} else {
			a[k] = r[j]
			j++
		}
		k++
	}
	k += copy(a[k:], l[i:])
	copy(a[k:], r[j:])
}

// Quick sorts a by quicksort using the last element of each range as the pivot.
// Only the smaller partition is sorted recursively, so stack depth is logarithmic
// even for already sorted input.
func Quick(a []int) {
	lo, hi := 0, len(a)
	for hi-lo > 1 {
		p := lo + Partition(sort.IntSlice(a[lo:hi]), hi-lo-1)
		if p-lo < hi-p-1 {
			Quick(a[lo:p])
			lo = p + 1
		} else {
			Quick(a[p+1 : hi])
			hi = p
		}
	}
}

// Partition partitions list such that all elements less than or equal to the value at pivot
// prior to the call are placed before that element and all elements greater than that value
// are placed after it. The final location of the element at pivot prior to the call is returned.
func Partition(list sort.Interface, pivot int) int {
	var index, last int
	if last = list.Len() - 1; last < 0 {
		return -1
	}
	list.Swap(pivot, last)
	for i := 0; i < last; i++ {
		if !list.Less(last, i) {
			list.Swap(index, i)
			index++
		}
	}
	list.Swap(last, index)
	return index
}

// Random returns n values drawn uniformly from [0, max] using rnd.
func Random(rnd *rand.Rand, n, max int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = rnd.Intn(max + 1)
	}
	return v
}
