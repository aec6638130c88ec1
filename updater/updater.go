// Package updater implements the incremental refit-with-rebuild-fallback
// update step: post-order refit of leaves and internal AABBs, falling back
// to a full Builder.Build when too large a fraction of leaves changed.
package updater

import (
	"github.com/kestrelsim/bvhdomain/aabb"
	"github.com/kestrelsim/bvhdomain/builder"
	"github.com/kestrelsim/bvhdomain/bvhtree"
	"github.com/kestrelsim/bvhdomain/internal/xerrors"
)

// DefaultThreshold is the default changed-leaf-ratio above which Update
// discards the refit and rebuilds from scratch (spec §4.3).
const DefaultThreshold = 0.30

// Result reports what Update actually did, for logging/diagnostics.
type Result struct {
	Tree         *bvhtree.Tree
	ChangedCount int
	Rebuilt      bool
}

// Update refits tree against newAabbs (same object-index assignment as the
// tree's original build), or builds fresh if tree is nil (first frame). If
// the fraction of changed leaves exceeds threshold, the refitted tree is
// discarded and a fresh build is returned instead.
//
// Returns xerrors.ErrInvalidInput if tree is non-nil and len(newAabbs) !=
// tree.N.
func Update(tree *bvhtree.Tree, newAabbs []aabb.AABB, threshold float32) (Result, error) {
	if tree == nil || tree.Root == nil {
		built, err := builder.Build(newAabbs)
		if err != nil {
			return Result{}, err
		}
		return Result{Tree: built, Rebuilt: true}, nil
	}
	if len(newAabbs) != tree.N {
		return Result{}, xerrors.Wrap(xerrors.CodeInvalidInput,
			"update: aabbs length does not match tree's object count", nil)
	}

	changed, err := refit(tree.Root, newAabbs)
	if err != nil {
		return Result{}, err
	}

	if float32(changed)/float32(tree.N) > threshold {
		built, err := builder.Build(newAabbs)
		if err != nil {
			return Result{}, err
		}
		return Result{Tree: built, ChangedCount: changed, Rebuilt: true}, nil
	}
	return Result{Tree: tree, ChangedCount: changed}, nil
}

// refit performs the post-order DFS of spec §4.3: leaves compare against
// newAabbs and overwrite on change; internals recompute Aabb/LeafCount from
// their (already-refit) children. Returns the number of leaves whose AABB
// changed.
func refit(n *bvhtree.Node, newAabbs []aabb.AABB) (int, error) {
	if n.IsLeaf {
		next := newAabbs[n.ObjIndex]
		if !aabb.Equal(n.Aabb, next) {
			n.Aabb = next
			return 1, nil
		}
		return 0, nil
	}

	if n.Left == nil || n.Right == nil {
		return 0, xerrors.ErrInconsistentTree
	}

	changedLeft, err := refit(n.Left, newAabbs)
	if err != nil {
		return 0, err
	}
	changedRight, err := refit(n.Right, newAabbs)
	if err != nil {
		return 0, err
	}

	n.Aabb = aabb.Merge(n.Left.Aabb, n.Right.Aabb)
	n.LeafCount = n.Left.LeafCount + n.Right.LeafCount
	return changedLeft + changedRight, nil
}
