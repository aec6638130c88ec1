// Package builder implements the top-down BVH construction: each group of
// (AABB, object index) pairs is split on its longest axis at the median,
// recursively, until every group has collapsed to a single leaf.
//
// The algorithm is expressed recursively rather than via an explicit work
// queue; spec §4.2 leaves the work-set traversal order unspecified ("only
// the resulting tree shape matters, which is fully determined by the split
// rule plus sort order"), so recursion and a breadth-first queue produce
// identical trees and recursion is the more direct Go translation.
package builder

import (
	"sort"

	"github.com/kestrelsim/bvhdomain/aabb"
	"github.com/kestrelsim/bvhdomain/bvhtree"
	"github.com/kestrelsim/bvhdomain/internal/xerrors"
)

// pair is one (AABB, ObjectIndex) item carried through the recursion.
type pair struct {
	box aabb.AABB
	idx int
}

// Build constructs a new tree from a dense slice of N AABBs, where index i
// in aabbs is object i. Returns xerrors.ErrInvalidInput if aabbs is empty.
func Build(aabbs []aabb.AABB) (*bvhtree.Tree, error) {
	if len(aabbs) == 0 {
		return nil, xerrors.Wrap(xerrors.CodeInvalidInput, "build requires a non-empty aabb slice", nil)
	}

	items := make([]pair, len(aabbs))
	for i, box := range aabbs {
		items[i] = pair{box: box, idx: i}
	}

	root := buildNode(items)
	return &bvhtree.Tree{Root: root, N: len(aabbs)}, nil
}

// buildNode builds one subtree from items, following spec §4.2 steps 1-2.
func buildNode(items []pair) *bvhtree.Node {
	if len(items) == 1 {
		return bvhtree.NewLeaf(items[0].box, items[0].idx)
	}

	combined := items[0].box
	for _, it := range items[1:] {
		combined = aabb.Merge(combined, it.box)
	}

	extent := [3]float32{
		combined.Max[0] - combined.Min[0],
		combined.Max[1] - combined.Min[1],
		combined.Max[2] - combined.Min[2],
	}
	splitAxis := 0
	for d := 1; d < 3; d++ {
		if extent[d] > extent[splitAxis] {
			splitAxis = d
		}
	}

	// Stable sort by center coordinate along split_axis (spec §4.2.d).
	sort.SliceStable(items, func(i, j int) bool {
		ci := (items[i].box.Min[splitAxis] + items[i].box.Max[splitAxis]) / 2
		cj := (items[j].box.Min[splitAxis] + items[j].box.Max[splitAxis]) / 2
		return ci < cj
	})

	// s = clamp(len/2, 1, len-1): both halves always non-empty (§4.2.e).
	s := len(items) / 2
	if s < 1 {
		s = 1
	}
	if s > len(items)-1 {
		s = len(items) - 1
	}

	left := buildNode(items[:s])
	right := buildNode(items[s:])
	return bvhtree.NewInternal(left, right)
}
