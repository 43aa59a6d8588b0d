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
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"gopkg.in/check.v1"
)

// Integrity checks

// Is this tree a BST?
func (t *Tree) isBST() bool {
	if t == nil {
		return true
	}
	return t.Root.isBST(math.MinInt, math.MaxInt)
}

// Are all the keys in the BST rooted at n strictly between min and max,
// and does the same property hold for both subtrees?
func (n *Node) isBST(min, max int) bool {
	if n == nil {
		return true
	}
	if n.Key <= min || n.Key >= max {
		return false
	}
	return n.Left.isBST(min, n.Key) && n.Right.isBST(n.Key, max)
}

// Does the node count agree with Count?
func (t *Tree) isCounted() bool {
	var nodes int
	t.Do(func(int) (done bool) {
		nodes++
		return
	})
	return nodes == t.Count
}

// Is the in-order traversal strictly ascending?
func (t *Tree) isAscending() bool {
	keys := t.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			return false
		}
	}
	return true
}

func checkTree(t *Tree, c *check.C, f string, i ...interface{}) (ok bool) {
	comm := check.Commentf(f, i...)
	ok = true
	ok = ok && c.Check(t.isBST(), check.Equals, true, comm)
	ok = ok && c.Check(t.isCounted(), check.Equals, true, comm)
	ok = ok && c.Check(t.isAscending(), check.Equals, true, comm)
	return
}

// Test helpers

// Build a tree from a simplified Newick format returning the root node.
// Single letter node names only, no error checking and all nodes are full or leaf.
func makeTree(desc string) (n *Node) {
	var build func([]rune) (*Node, int)
	build = func(desc []rune) (cn *Node, i int) {
		if len(desc) == 0 || desc[0] == ';' {
			return nil, 0
		}

		var c int
		cn = &Node{}
		for {
			b := desc[i]
			i++
			if b == '(' {
				cn.Left, c = build(desc[i:])
				i += c
				continue
			}
			if b == ',' {
				cn.Right, c = build(desc[i:])
				i += c
				continue
			}
			if b == ')' {
				if cn.Left == nil && cn.Right == nil {
					return nil, i
				}
				continue
			}
			if b != ';' {
				cn.Key = int(b)
			}
			return cn, i
		}
	}

	n, _ = build([]rune(desc))
	if n.Left == nil && n.Right == nil && n.Key == 0 {
		n = nil
	}

	return
}

// Return a Newick format description of a tree defined by a node.
func describeTree(n *Node, char bool) string {
	s := []rune(nil)

	var follow func(*Node)
	follow = func(n *Node) {
		children := n.Left != nil || n.Right != nil
		if children {
			s = append(s, '(')
		}
		if n.Left != nil {
			follow(n.Left)
		}
		if children {
			s = append(s, ',')
		}
		if n.Right != nil {
			follow(n.Right)
		}
		if children {
			s = append(s, ')')
		}
		if char {
			s = append(s, rune(n.Key))
		} else {
			s = append(s, []rune(fmt.Sprintf("%d", n.Key))...)
		}
	}
	if n == nil {
		s = []rune("()")
	} else {
		follow(n)
	}
	s = append(s, ';')

	return string(s)
}

func treeOf(keys ...int) *Tree {
	t := &Tree{}
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// Tests
func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestMakeAndDescribeTree(c *check.C) {
	c.Check(describeTree((*Node)(nil), true), check.DeepEquals, "();")
	for _, desc := range []string{
		"();",
		"((a,c)b,(e,g)f)d;",
	} {
		t := makeTree(desc)
		c.Check(describeTree(t, true), check.DeepEquals, desc)
	}
}

func (s *S) TestInsertShape(c *check.C) {
	t := treeOf('d', 'b', 'f', 'a', 'c', 'e', 'g')
	c.Check(t.Root, check.DeepEquals, makeTree("((a,c)b,(e,g)f)d;"))
	c.Check(t.Len(), check.Equals, 7)
	c.Check(t.Height(), check.Equals, 3)
}

func (s *S) TestNilOperations(c *check.C) {
	t := &Tree{}
	_, ok := t.Min()
	c.Check(ok, check.Equals, false)
	_, ok = t.Max()
	c.Check(ok, check.Equals, false)
	c.Check(t.Has(0), check.Equals, false)
	c.Check(t.Height(), check.Equals, 0)
	c.Check(t.Keys(), check.DeepEquals, []int{})
	c.Check(t.Do(func(int) bool { return true }), check.Equals, false)
	t.Delete(0)
	c.Check(t, check.DeepEquals, &Tree{})
	t.Destroy()
	c.Check(t, check.DeepEquals, &Tree{})
}

func (s *S) TestInsertion(c *check.C) {
	min, max := 0, 1000
	t := &Tree{}
	for i := min; i <= max; i++ {
		t.Insert(i)
		c.Check(t.Len(), check.Equals, i+1)
		if !checkTree(t, c, "after insertion of %d", i) {
			c.Fatal("Cannot continue test: invariant contradiction")
		}
	}
	lo, _ := t.Min()
	hi, _ := t.Max()
	c.Check(lo, check.Equals, min)
	c.Check(hi, check.Equals, max)
}

func (s *S) TestDuplicateInsertion(c *check.C) {
	t := treeOf(50, 30, 70, 20, 40, 60, 80)
	before := describeTree(t.Root, false)
	for _, k := range []int{50, 20, 80, 40} {
		t.Insert(k)
		c.Check(t.Len(), check.Equals, 7)
		c.Check(describeTree(t.Root, false), check.Equals, before)
	}
	c.Check(t.Keys(), check.DeepEquals, []int{20, 30, 40, 50, 60, 70, 80})
}

func (s *S) TestHas(c *check.C) {
	min, max := 0, 10000
	r := rand.New(rand.NewSource(1))
	t := &Tree{}
	for _, i := range r.Perm(max + 1) {
		if i&1 == 0 {
			t.Insert(i)
		}
	}
	for i := min; i <= max; i++ {
		c.Check(t.Has(i), check.Equals, i&1 == 0) // Only even keys were inserted.
	}
}

func (s *S) TestDeleteCases(c *check.C) {
	for _, test := range []struct {
		insert string
		target rune
		want   string
	}{
		{"dbfaceg", 'a', "((,c)b,(e,g)f)d;"}, // Leaf.
		{"dbfaceg", 'g', "((a,c)b,(e,)f)d;"}, // Leaf.
		{"dbfaeg", 'b', "(a,(e,g)f)d;"},      // Left child only.
		{"dbfceg", 'b', "(c,(e,g)f)d;"},      // Right child only.
		{"dbfaceg", 'b', "((a,)c,(e,g)f)d;"}, // Two children.
		{"dbfaceg", 'd', "((a,c)b,(,g)f)e;"}, // Two children at the root.
		{"dbac", 'd', "(a,c)b;"},             // Root with left child only.
		{"d", 'd', "();"},                    // Sole node.
	} {
		t := &Tree{}
		for _, k := range test.insert {
			t.Insert(int(k))
		}
		t.Delete(int(test.target))
		c.Check(describeTree(t.Root, true), check.Equals, test.want,
			check.Commentf("delete %c after inserting %q", test.target, test.insert))
		c.Check(t.Len(), check.Equals, len(test.insert)-1)
		c.Check(t.Has(int(test.target)), check.Equals, false)
		checkTree(t, c, "delete %c after inserting %q", test.target, test.insert)
	}
}

func (s *S) TestDeleteSuccessorReplacement(c *check.C) {
	t := treeOf(50, 30, 70, 20, 40, 60, 80)
	replaced := t.Root.Left
	t.Delete(30)
	c.Check(t.Keys(), check.DeepEquals, []int{20, 40, 50, 60, 70, 80})
	c.Check(t.Root.Left, check.Equals, replaced)
	c.Check(replaced.Key, check.Equals, 40)
	c.Check(describeTree(t.Root, false), check.Equals, "((20,)40,(60,80)70)50;")
	checkTree(t, c, "delete 30")
}

func (s *S) TestDeleteDeepSuccessor(c *check.C) {
	// The successor of 10 has a right subtree that must be spliced into its place.
	t := treeOf(10, 5, 20, 15, 25, 12, 13, 14)
	t.Delete(10)
	c.Check(t.Root.Key, check.Equals, 12)
	c.Check(t.Keys(), check.DeepEquals, []int{5, 12, 13, 14, 15, 20, 25})
	checkTree(t, c, "delete 10")
}

func (s *S) TestDeleteAbsent(c *check.C) {
	t := treeOf(50, 30, 70, 20, 40, 60, 80)
	before := describeTree(t.Root, false)
	for _, k := range []int{0, 25, 55, 100} {
		t.Delete(k)
		c.Check(describeTree(t.Root, false), check.Equals, before)
		c.Check(t.Len(), check.Equals, 7)
	}
}

func (s *S) TestDeletion(c *check.C) {
	r := rand.New(rand.NewSource(1))
	min, max := 0, 2000
	t := &Tree{}
	for _, i := range r.Perm(max - min + 1) {
		t.Insert(i + min)
	}
	e := t.Len()
	for _, i := range r.Perm(max - min + 1) {
		t.Delete(i + min)
		e--
		c.Check(t.Len(), check.Equals, e)
		c.Check(t.Has(i+min), check.Equals, false)
		if !checkTree(t, c, "after deletion of %d", i+min) {
			c.Fatal("Cannot continue test: invariant contradiction")
		}
	}
	c.Check(t, check.DeepEquals, &Tree{})
}

func (s *S) TestRandomInsertionDeletion(c *check.C) {
	var (
		r          = rand.New(rand.NewSource(1))
		count, max = 20000, 500
		t          = &Tree{}
		verify     = map[int]struct{}{}
	)
	for i := 0; i < count; i++ {
		if r.Float64() < 0.5 {
			k := r.Intn(max)
			t.Insert(k)
			verify[k] = struct{}{}
		} else {
			k := r.Intn(max)
			t.Delete(k)
			delete(verify, k)
		}
		c.Assert(t.Len(), check.Equals, len(verify))
		if i%100 == 0 && !checkTree(t, c, "iteration %d", i) {
			c.Fatal("Cannot continue test: invariant contradiction")
		}
	}
	want := make([]int, 0, len(verify))
	for k := range verify {
		want = append(want, k)
	}
	sort.Ints(want)
	c.Check(t.Keys(), check.DeepEquals, want)
}

func (s *S) TestDo(c *check.C) {
	t := treeOf(50, 30, 70, 20, 40, 60, 80)

	var got []int
	c.Check(t.Do(func(k int) (done bool) {
		got = append(got, k)
		return k == 50
	}), check.Equals, true)
	c.Check(got, check.DeepEquals, []int{20, 30, 40, 50})

	got = got[:0]
	c.Check(t.DoReverse(func(k int) (done bool) {
		got = append(got, k)
		return
	}), check.Equals, false)
	c.Check(got, check.DeepEquals, []int{80, 70, 60, 50, 40, 30, 20})
}

func (s *S) TestDestroy(c *check.C) {
	t := treeOf(50, 30, 70, 20, 40, 60, 80)
	var got []int
	seen := map[*Node]bool{}
	t.release(func(n *Node) {
		c.Check(seen[n], check.Equals, false)
		seen[n] = true
		c.Check(n.Left, check.IsNil)
		c.Check(n.Right, check.IsNil)
		got = append(got, n.Key)
	})
	c.Check(got, check.DeepEquals, []int{20, 40, 30, 60, 80, 70, 50})
	c.Check(t, check.DeepEquals, &Tree{})

	// Destroying an already empty tree is safe.
	t.Destroy()
	c.Check(t, check.DeepEquals, &Tree{})
}

func (s *S) TestDestroyChain(c *check.C) {
	const n = 10000
	t := &Tree{}
	for i := 0; i < n; i++ {
		t.Insert(i)
	}
	c.Check(t.Height(), check.Equals, n)
	var released int
	t.release(func(*Node) { released++ })
	c.Check(released, check.Equals, n)
	c.Check(t, check.DeepEquals, &Tree{})
}

func (s *S) TestDegenerateHeight(c *check.C) {
	const n = 1023
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i + 1
	}

	chain := treeOf(sorted...)
	c.Check(chain.Height(), check.Equals, n)
	checkTree(chain, c, "ascending insertion")

	balanced := treeOf(BalancedOrder(sorted)...)
	c.Check(balanced.Height() <= 11, check.Equals, true)
	c.Check(balanced.Keys(), check.DeepEquals, sorted)
	checkTree(balanced, c, "balanced insertion")
}

// Benchmarks

func keys(n int) []int {
	return rand.New(rand.NewSource(1)).Perm(n)
}

func BenchmarkInsertRandom(b *testing.B) {
	k := keys(b.N)
	b.ResetTimer()
	t := &Tree{}
	for i := 0; i < b.N; i++ {
		t.Insert(k[i])
	}
}

func BenchmarkInsertBalanced(b *testing.B) {
	sorted := make([]int, b.N)
	for i := range sorted {
		sorted[i] = i
	}
	k := BalancedOrder(sorted)
	b.ResetTimer()
	t := &Tree{}
	for i := 0; i < b.N; i++ {
		t.Insert(k[i])
	}
}

func BenchmarkInsertSorted1e3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := &Tree{}
		for k := 0; k < 1e3; k++ {
			t.Insert(k)
		}
	}
}

func BenchmarkHas(b *testing.B) {
	k := keys(b.N)
	t := treeOf(k...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Has(i)
	}
}

func BenchmarkDelete(b *testing.B) {
	k := keys(b.N)
	t := treeOf(k...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Delete(k[i])
	}
}

// Benchmarks for comparison to the built-in type.

func BenchmarkInsertMap(b *testing.B) {
	var m = map[int]struct{}{}
	for i := 0; i < b.N; i++ {
		m[i] = struct{}{}
	}
}

func BenchmarkDeleteMap(b *testing.B) {
	b.StopTimer()
	var m = map[int]struct{}{}
	for i := 0; i < b.N; i++ {
		m[i] = struct{}{}
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		delete(m, i)
	}
}
