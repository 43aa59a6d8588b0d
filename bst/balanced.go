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

type span struct {
	lo, hi int
}

// BalancedOrder returns the elements of sorted in an order that, when inserted
// into an empty Tree, produces a tree of minimum height. sorted must be in
// ascending order and is not altered.
//
// Index ranges are visited breadth first, starting with the whole of sorted,
// and the midpoint of each non-empty range is emitted before its two halves
// are queued.
func BalancedOrder(sorted []int) []int {
	order := make([]int, 0, len(sorted))
	queue := []span{{0, len(sorted) - 1}}
	for len(queue) != 0 {
		s := queue[0]
		queue = queue[1:]
		if s.lo > s.hi {
			continue
		}
		mid := (s.lo + s.hi) / 2
		order = append(order, sorted[mid])
		queue = append(queue, span{s.lo, mid - 1}, span{mid + 1, s.hi})
	}
	return order
}
