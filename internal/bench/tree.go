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
	"path/filepath"
	"sort"

	"github.com/NVIDIA/sortedmap"
	"github.com/dustin/go-humanize"
	"github.com/google/btree"

	"github.com/biogo/ordbench/bst"
	"github.com/biogo/ordbench/internal/config"
	"github.com/biogo/ordbench/internal/logging"
	"github.com/biogo/ordbench/llrb"
)

// TreeResultsFile is the name of the ordered set results table.
const TreeResultsFile = "results.csv"

// An OrderedSet is an ordered set of int keys that can be timed by TreeSuite.
type OrderedSet interface {
	Insert(key int)
	Delete(key int)
	Len() int
}

var (
	_ OrderedSet = (*bst.Tree)(nil)
	_ OrderedSet = (*llrb.Set)(nil)
	_ OrderedSet = btreeSet{}
	_ OrderedSet = sortedMapSet{}
)

// btreeDegree is the B-tree degree used for the btree reference set.
const btreeDegree = 32

type btreeSet struct {
	t *btree.BTree
}

func newBTreeSet() OrderedSet { return btreeSet{t: btree.New(btreeDegree)} }

func (s btreeSet) Insert(key int) { s.t.ReplaceOrInsert(btree.Int(key)) }
func (s btreeSet) Delete(key int) { s.t.Delete(btree.Int(key)) }
func (s btreeSet) Len() int       { return s.t.Len() }

type sortedMapSet struct {
	m sortedmap.LLRBTree
}

func newSortedMapSet() OrderedSet {
	return sortedMapSet{m: sortedmap.NewLLRBTree(sortedmap.CompareInt, nil)}
}

// The int comparator cannot fail on int keys, so errors from the sorted map
// indicate a broken invariant.

func (s sortedMapSet) Insert(key int) {
	_, err := s.m.Put(key, struct{}{})
	if err != nil {
		panic(err)
	}
}

func (s sortedMapSet) Delete(key int) {
	_, err := s.m.DeleteByKey(key)
	if err != nil {
		panic(err)
	}
}

func (s sortedMapSet) Len() int {
	n, err := s.m.Len()
	if err != nil {
		panic(err)
	}
	return n
}

// A SetKind names an OrderedSet implementation and how to make an empty one.
type SetKind struct {
	Name string
	New  func() OrderedSet
}

// References are the balanced ordered sets the unbalanced tree is compared against.
var References = []SetKind{
	{"SortedSet", func() OrderedSet { return &llrb.Set{} }},
	{"BTree", newBTreeSet},
	{"SortedMap", newSortedMapSet},
}

// A TreeReport holds the tree heights observed by TreeSuite.
type TreeReport struct {
	Size           int
	RandomHeight   int
	BalancedHeight int
	SortedHeight   int
}

func insertAll(s OrderedSet, keys []int) {
	for _, k := range keys {
		s.Insert(k)
	}
}

func deleteAll(s OrderedSet, keys []int) {
	for _, k := range keys {
		s.Delete(k)
	}
}

// TreeSuite times insertion and removal of a shuffled key set into the
// unbalanced tree in random and balanced order and into each reference set.
// Removal always uses the shuffled order. Results are passed to sink.
func TreeSuite(cfg config.TreeConfig, sink Sink, prog io.Writer) (*TreeReport, error) {
	keys := Keys(cfg.Size, cfg.Seed)
	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)
	balanced := bst.BalancedOrder(sorted)

	logging.Infof("timing ordered sets with %s keys", humanize.Comma(int64(cfg.Size)))

	type step struct {
		label string
		run   func() Result
	}
	timeInsert := func(label string, s OrderedSet, keys []int) step {
		return step{label, func() Result {
			return Result{Label: label, Size: len(keys), Elapsed: Time(func() { insertAll(s, keys) })}
		}}
	}
	timeDelete := func(label string, s OrderedSet, fill, keys []int) step {
		return step{label, func() Result {
			insertAll(s, fill)
			return Result{Label: label, Size: len(keys), Elapsed: Time(func() { deleteAll(s, keys) })}
		}}
	}

	var (
		randomTree   = &bst.Tree{}
		balancedTree = &bst.Tree{}
		steps        = []step{
			timeInsert("BST_random_insert", randomTree, keys),
			timeInsert("BST_balanced_insert", balancedTree, balanced),
		}
	)
	for _, ref := range References {
		steps = append(steps, timeInsert(ref.Name+"_insert", ref.New(), keys))
	}
	steps = append(steps,
		timeDelete("BST_random_remove", &bst.Tree{}, keys, keys),
		timeDelete("BST_balanced_remove", &bst.Tree{}, balanced, keys),
	)
	for _, ref := range References {
		steps = append(steps, timeDelete(ref.Name+"_remove", ref.New(), keys, keys))
	}

	bar := newProgress(prog, len(steps)+1, "ordered sets")
	defer bar.finish()
	for _, s := range steps {
		err := sink.Put(s.run())
		if err != nil {
			return nil, err
		}
		bar.step()
	}

	chain := &bst.Tree{}
	insertAll(chain, sorted)
	bar.step()

	rep := &TreeReport{
		Size:           cfg.Size,
		RandomHeight:   randomTree.Height(),
		BalancedHeight: balancedTree.Height(),
		SortedHeight:   chain.Height(),
	}
	randomTree.Destroy()
	balancedTree.Destroy()
	chain.Destroy()

	logging.InfofWithFields(logging.Fields{
		"random":   rep.RandomHeight,
		"balanced": rep.BalancedHeight,
		"sorted":   rep.SortedHeight,
	}, "tree heights for %s keys", humanize.Comma(int64(cfg.Size)))

	return rep, nil
}

// RunTree runs TreeSuite writing results to TreeResultsFile in dir.
func RunTree(cfg config.TreeConfig, dir string, prog io.Writer) (*TreeReport, error) {
	path := filepath.Join(dir, TreeResultsFile)
	t, err := CreateTable(path, "Test", "Time_ms")
	if err != nil {
		return nil, err
	}
	rep, err := TreeSuite(cfg, Sinks{t, LogSink{}}, prog)
	cerr := t.Close()
	if err != nil {
		return nil, err
	}
	if cerr != nil {
		return nil, cerr
	}
	logging.Infof("ordered set results saved to %s", path)
	return rep, nil
}
