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

package bst

import (
	"math"
	"sort"

	"gopkg.in/check.v1"
)

func ascending(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func minHeight(n int) int {
	return int(math.Ceil(math.Log2(float64(n + 1))))
}

func (s *S) TestBalancedOrder(c *check.C) {
	c.Check(BalancedOrder(nil), check.DeepEquals, []int{})
	c.Check(BalancedOrder([]int{4}), check.DeepEquals, []int{4})
	c.Check(BalancedOrder(ascending(7)), check.DeepEquals, []int{4, 2, 6, 1, 3, 5, 7})
	c.Check(BalancedOrder(ascending(4)), check.DeepEquals, []int{2, 1, 3, 4})
}

func (s *S) TestBalancedOrderPreservesInput(c *check.C) {
	in := ascending(100)
	order := BalancedOrder(in)
	c.Check(in, check.DeepEquals, ascending(100))

	perm := append([]int(nil), order...)
	sort.Ints(perm)
	c.Check(perm, check.DeepEquals, in)
}

func (s *S) TestBalancedOrderHeight(c *check.C) {
	for _, n := range []int{1, 2, 3, 5, 7, 8, 100, 1023, 1024, 5000} {
		t := treeOf(BalancedOrder(ascending(n))...)
		h, want := t.Height(), minHeight(n)
		c.Check(h >= want && h <= want+1, check.Equals, true,
			check.Commentf("n=%d height=%d minimum=%d", n, h, want))
		c.Check(t.Len(), check.Equals, n)
		checkTree(t, c, "balanced insertion of %d keys", n)
	}

	// Complete trees are exactly minimal.
	for _, n := range []int{1, 7, 1023} {
		c.Check(treeOf(BalancedOrder(ascending(n))...).Height(), check.Equals, minHeight(n))
	}
}

func (s *S) TestBalancedOrderMidpointFirst(c *check.C) {
	in := []int{-40, -3, 0, 9, 17, 100}
	order := BalancedOrder(in)
	c.Check(order[0], check.Equals, in[(len(in)-1)/2])
	c.Check(order, check.DeepEquals, []int{0, -40, 17, -3, 9, 100})
}
