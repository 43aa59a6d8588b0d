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

package sorts

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

var sorters = []struct {
	name string
	fn   func([]int)
}{
	{"bubble", Bubble},
	{"insertion", Insertion},
	{"merge", Merge},
	{"quick", Quick},
}

func (s *S) TestSorts(c *check.C) {
	r := rand.New(rand.NewSource(42))
	inputs := [][]int{
		nil,
		{},
		{1},
		{2, 1},
		{3, 3, 3},
		{5, -1, 4, 0, 4, -1},
		Random(r, 100, 10),
		Random(r, 1000, 1000000),
	}
	sorted := make([]int, 500)
	for i := range sorted {
		sorted[i] = i
	}
	reversed := make([]int, 500)
	for i := range reversed {
		reversed[i] = len(reversed) - i
	}
	inputs = append(inputs, sorted, reversed)

	for _, srt := range sorters {
		for i, in := range inputs {
			got := append([]int(nil), in...)
			want := append([]int(nil), in...)
			sort.Ints(want)
			srt.fn(got)
			c.Check(got, check.DeepEquals, want, check.Commentf("%s sort of input %d", srt.name, i))
		}
	}
}

func (s *S) TestQuickSortedDepth(c *check.C) {
	// Sorted input is the worst case for a last element pivot. Quick must
	// still complete without exhausting the stack.
	a := make([]int, 20000)
	for i := range a {
		a[i] = i
	}
	Quick(a)
	c.Check(sort.IntsAreSorted(a), check.Equals, true)
}

func (s *S) TestPartition(c *check.C) {
	for _, test := range []struct {
		in    []int
		pivot int
		want  int
	}{
		{[]int{}, 0, -1},
		{[]int{7}, 0, 0},
		{[]int{3, 1, 4, 1, 5, 9, 2, 6}, 7, 6},
		{[]int{3, 1, 4, 1, 5, 9, 2, 6}, 0, 3},
		{[]int{2, 2, 2, 2}, 3, 3},
	} {
		a := append([]int(nil), test.in...)
		p := Partition(sort.IntSlice(a), test.pivot)
		c.Check(p, check.Equals, test.want, check.Commentf("%v pivot %d", test.in, test.pivot))
		if p < 0 {
			continue
		}
		v := test.in[test.pivot]
		c.Check(a[p], check.Equals, v)
		for _, e := range a[:p] {
			c.Check(e <= v, check.Equals, true)
		}
		for _, e := range a[p+1:] {
			c.Check(e > v, check.Equals, true)
		}
	}
}

func (s *S) TestRandom(c *check.C) {
	v := Random(rand.New(rand.NewSource(1)), 1000, 9)
	c.Check(len(v), check.Equals, 1000)
	for _, e := range v {
		c.Check(e >= 0 && e <= 9, check.Equals, true)
	}
	c.Check(v, check.DeepEquals, Random(rand.New(rand.NewSource(1)), 1000, 9))
}

// Benchmarks

func BenchmarkSorts(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		in := Random(rand.New(rand.NewSource(1)), n, 1000000)
		work := make([]int, n)
		for _, srt := range sorters {
			b.Run(fmt.Sprintf("%s/%d", srt.name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					copy(work, in)
					srt.fn(work)
				}
			})
		}
	}
}
