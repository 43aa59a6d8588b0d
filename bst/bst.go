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

// Package bst implements an unbalanced binary search tree over int keys.
//
// The tree performs no rebalancing, so its shape is entirely determined by
// the order of insertions and deletions. Keys inserted in sorted order produce
// a chain with height equal to the number of keys, while BalancedOrder gives
// an insertion order that produces a minimum height tree.
//
// Deletion is Hibbard deletion: a node with two children takes the key of its
// in-order successor, which is then excised from the right subtree.
package bst

// A Node represents a node in the tree.
type Node struct {
	Key         int
	Left, Right *Node
}

// A Tree manages the root node of a binary search tree. Public methods are exposed through this type.
type Tree struct {
	Root  *Node // Root node of the tree.
	Count int   // Number of keys stored.
}

// Len returns the number of keys stored in the Tree.
func (self *Tree) Len() int {
	return self.Count
}

// Has returns whether key is stored in the Tree.
func (self *Tree) Has(key int) bool {
	return self.Root.search(key) != nil
}

func (self *Node) search(key int) (n *Node) {
	n = self
	for n != nil {
		switch {
		case key == n.Key:
			return n
		case key < n.Key:
			n = n.Left
		default:
			n = n.Right
		}
	}

	return
}

// Insert inserts key into the Tree. If key is already present the call is a no-op.
func (self *Tree) Insert(key int) {
	link := &self.Root
	for n := *link; n != nil; n = *link {
		switch {
		case key == n.Key:
			return
		case key < n.Key:
			link = &n.Left
		default:
			link = &n.Right
		}
	}
	*link = &Node{Key: key}
	self.Count++
}

// Delete removes key from the Tree. If key is not present the call is a no-op.
func (self *Tree) Delete(key int) {
	link := &self.Root
	for n := *link; n != nil; n = *link {
		switch {
		case key == n.Key:
			*link = n.excise()
			self.Count--
			return
		case key < n.Key:
			link = &n.Left
		default:
			link = &n.Right
		}
	}
}

// excise removes the receiver's key from the subtree rooted at the receiver and
// returns the new subtree root.
func (self *Node) excise() (root *Node) {
	switch {
	case self.Left == nil:
		root = self.Right
	case self.Right == nil:
		root = self.Left
	default:
		// The successor is the leftmost node of the right subtree. It has no
		// left child, so removing it from the right subtree is a single link
		// rewrite.
		link := &self.Right
		for (*link).Left != nil {
			link = &(*link).Left
		}
		succ := *link
		self.Key = succ.Key
		*link = succ.Right
		succ.Right = nil
		return self
	}
	self.Left, self.Right = nil, nil
	return
}

// Destroy releases every node in the Tree, leaving it empty. Calling Destroy on
// an empty Tree is a no-op.
func (self *Tree) Destroy() {
	self.release(nil)
}

// release detaches every node in the tree in post-order, children before their
// parent, calling visit on each detached node if visit is not nil.
func (self *Tree) release(visit func(*Node)) {
	if self.Root == nil {
		return
	}
	stack := []*Node{self.Root}
	self.Root, self.Count = nil, 0
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		switch {
		case n.Left != nil:
			stack = append(stack, n.Left)
			n.Left = nil
		case n.Right != nil:
			stack = append(stack, n.Right)
			n.Right = nil
		default:
			stack = stack[:len(stack)-1]
			if visit != nil {
				visit(n)
			}
		}
	}
}

// Min returns the minimum key stored in the Tree. If the Tree is empty, ok is false.
func (self *Tree) Min() (key int, ok bool) {
	if self.Root == nil {
		return 0, false
	}
	return self.Root.min().Key, true
}

func (self *Node) min() (n *Node) {
	for n = self; n.Left != nil; n = n.Left {
	}
	return
}

// Max returns the maximum key stored in the Tree. If the Tree is empty, ok is false.
func (self *Tree) Max() (key int, ok bool) {
	if self.Root == nil {
		return 0, false
	}
	return self.Root.max().Key, true
}

func (self *Node) max() (n *Node) {
	for n = self; n.Right != nil; n = n.Right {
	}
	return
}

// Height returns the number of nodes on the longest path from the root to a leaf.
// An empty Tree has height zero.
func (self *Tree) Height() int {
	if self.Root == nil {
		return 0
	}
	var h int
	level := []*Node{self.Root}
	for len(level) != 0 {
		h++
		var next []*Node
		for _, n := range level {
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		level = next
	}
	return h
}

// An Operation is a function that operates on a key. If done is returned true, the
// Operation is indicating that no further work needs to be done and so the Do function should
// traverse no further.
type Operation func(key int) (done bool)

// Do performs fn on all keys stored in the tree in ascending order. A boolean is returned
// indicating whether the Do traversal was interupted by an Operation returning true.
func (self *Tree) Do(fn Operation) bool {
	var stack []*Node
	n := self.Root
	for n != nil || len(stack) != 0 {
		for ; n != nil; n = n.Left {
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fn(n.Key) {
			return true
		}
		n = n.Right
	}
	return false
}

// DoReverse performs fn on all keys stored in the tree in descending order. A boolean is
// returned indicating whether the traversal was interupted by an Operation returning true.
func (self *Tree) DoReverse(fn Operation) bool {
	var stack []*Node
	n := self.Root
	for n != nil || len(stack) != 0 {
		for ; n != nil; n = n.Right {
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fn(n.Key) {
			return true
		}
		n = n.Left
	}
	return false
}

// Keys returns the keys stored in the Tree in ascending order.
func (self *Tree) Keys() []int {
	keys := make([]int, 0, self.Count)
	self.Do(func(k int) (done bool) {
		keys = append(keys, k)
		return
	})
	return keys
}
