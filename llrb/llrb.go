// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
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

// Package llrb provides an int keyed ordered set held in a bottom-up 2-3
// Left-Leaning Red Black tree. It is the self-balancing reference that the
// unbalanced bst.Tree is measured against.
//
// Insertion and deletion walk the tree with an explicit stack of links and
// repair colors on the way back up, so no operation recurses. A duplicate
// insertion or an absent deletion leaves the tree untouched.
package llrb

// A Node is a member of a Set. Red reports the color of the link from the
// node's parent.
type Node struct {
	Key         int
	Left, Right *Node
	Red         bool
}

// A Set is an ordered set of int keys.
type Set struct {
	Root  *Node
	Count int
}

func isRed(n *Node) bool { return n != nil && n.Red }

// rotateLeft turns a right leaning red link into a left leaning one.
func rotateLeft(n *Node) *Node {
	r := n.Right
	n.Right, r.Left = r.Left, n
	r.Red, n.Red = n.Red, true
	return r
}

// rotateRight turns a left leaning red link into a right leaning one.
func rotateRight(n *Node) *Node {
	l := n.Left
	n.Left, l.Right = l.Right, n
	l.Red, n.Red = n.Red, true
	return l
}

func flip(n *Node) {
	n.Red = !n.Red
	n.Left.Red = !n.Left.Red
	n.Right.Red = !n.Right.Red
}

// balance restores the 2-3 shape of the subtree at n after one of its
// children has changed.
func balance(n *Node) *Node {
	if isRed(n.Right) && !isRed(n.Left) {
		n = rotateLeft(n)
	}
	if isRed(n.Left) && isRed(n.Left.Left) {
		n = rotateRight(n)
	}
	if isRed(n.Left) && isRed(n.Right) {
		flip(n)
	}
	return n
}

// borrowLeft makes n.Left or one of its children red before descending left.
func borrowLeft(n *Node) *Node {
	flip(n)
	if isRed(n.Right.Left) {
		n.Right = rotateRight(n.Right)
		n = rotateLeft(n)
		flip(n)
	}
	return n
}

// borrowRight makes n.Right or one of its children red before descending right.
func borrowRight(n *Node) *Node {
	flip(n)
	if isRed(n.Left.Left) {
		n = rotateRight(n)
		flip(n)
	}
	return n
}

// rebalance applies balance to each link in path, deepest first.
func rebalance(path []**Node) {
	for i := len(path) - 1; i >= 0; i-- {
		*path[i] = balance(*path[i])
	}
}

// Len returns the number of keys in the set.
func (self *Set) Len() int { return self.Count }

// Has returns whether key is in the set.
func (self *Set) Has(key int) bool {
	for n := self.Root; n != nil; {
		switch {
		case key < n.Key:
			n = n.Left
		case key > n.Key:
			n = n.Right
		default:
			return true
		}
	}
	return false
}

// Insert adds key to the set. Inserting a key already present is a no-op.
func (self *Set) Insert(key int) {
	var path []**Node
	link := &self.Root
	for *link != nil {
		n := *link
		switch {
		case key < n.Key:
			path = append(path, link)
			link = &n.Left
		case key > n.Key:
			path = append(path, link)
			link = &n.Right
		default:
			return
		}
	}
	*link = &Node{Key: key, Red: true}
	self.Count++
	rebalance(path)
	self.Root.Red = false
}

// Delete removes key from the set. Deleting an absent key is a no-op.
func (self *Set) Delete(key int) {
	if !self.Has(key) {
		return
	}
	if !isRed(self.Root.Left) && !isRed(self.Root.Right) {
		self.Root.Red = true
	}

	var (
		path []**Node
		link = &self.Root
		succ bool // removing the minimum of the subtree at link
	)
	for {
		n := *link
		if succ {
			if n.Left == nil {
				*link = nil
				break
			}
			if !isRed(n.Left) && !isRed(n.Left.Left) {
				n = borrowLeft(n)
				*link = n
			}
			path = append(path, link)
			link = &n.Left
			continue
		}

		if key < n.Key {
			if !isRed(n.Left) && !isRed(n.Left.Left) {
				n = borrowLeft(n)
				*link = n
			}
			path = append(path, link)
			link = &n.Left
			continue
		}
		if isRed(n.Left) {
			n = rotateRight(n)
			*link = n
		}
		if key == n.Key && n.Right == nil {
			*link = nil
			break
		}
		if !isRed(n.Right) && !isRed(n.Right.Left) {
			n = borrowRight(n)
			*link = n
		}
		path = append(path, link)
		if key == n.Key {
			m := n.Right
			for m.Left != nil {
				m = m.Left
			}
			n.Key = m.Key
			succ = true
		}
		link = &n.Right
	}
	self.Count--
	rebalance(path)
	if self.Root != nil {
		self.Root.Red = false
	}
}

// Keys returns the keys of the set in ascending order.
func (self *Set) Keys() []int {
	keys := make([]int, 0, self.Count)
	var stack []*Node
	for n := self.Root; n != nil || len(stack) > 0; {
		for ; n != nil; n = n.Left {
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, n.Key)
		n = n.Right
	}
	return keys
}
