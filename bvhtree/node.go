// Package bvhtree owns the BVH's node and tree types: an owned binary tree
// with no parent back-pointers, where every internal node has exactly two
// children and caches the union AABB and leaf count of its subtree.
package bvhtree

import (
	"fmt"
	"strings"

	"github.com/kestrelsim/bvhdomain/aabb"
)

// noObjIndex is the sentinel ObjIndex carried by internal nodes. Go has no
// sum types, so — per the reference implementation — Node collapses Leaf
// and Internal into one struct with an IsLeaf flag, making this sentinel
// necessary instead of a tagged union.
const noObjIndex = -1

// Node is either a Leaf (IsLeaf true, Left == Right == nil, ObjIndex >= 0)
// or an Internal node (IsLeaf false, both children non-nil, ObjIndex ==
// noObjIndex). There is no third shape.
type Node struct {
	Aabb      aabb.AABB
	Left      *Node
	Right     *Node
	IsLeaf    bool
	ObjIndex  int
	LeafCount int
}

// NewLeaf builds a Leaf node for a single object.
func NewLeaf(box aabb.AABB, objIndex int) *Node {
	return &Node{
		Aabb:      box,
		IsLeaf:    true,
		ObjIndex:  objIndex,
		LeafCount: 1,
	}
}

// NewInternal builds an Internal node from two already-built children,
// computing its AABB and leaf count from them (invariants §3.2, §3.3).
func NewInternal(left, right *Node) *Node {
	return &Node{
		Aabb:      aabb.Merge(left.Aabb, right.Aabb),
		Left:      left,
		Right:     right,
		IsLeaf:    false,
		ObjIndex:  noObjIndex,
		LeafCount: left.LeafCount + right.LeafCount,
	}
}

// Tree is the owned BVH over a fixed population of N objects. The zero
// value is not usable; construct with builder.Build.
type Tree struct {
	Root *Node
	N    int
}

// Height returns the tree's height in nodes (1 for a single leaf), or 0 for
// an absent (N==0) tree. Useful for diagnostics, mirroring the teacher's
// RTree.Height.
func (t *Tree) Height() int {
	if t == nil || t.Root == nil {
		return 0
	}
	var walk func(n *Node) int
	walk = func(n *Node) int {
		if n.IsLeaf {
			return 1
		}
		l, r := walk(n.Left), walk(n.Right)
		if l > r {
			return l + 1
		}
		return r + 1
	}
	return walk(t.Root)
}

// TotalVolume sums aabb.Volume over every leaf in the tree. Not used by the
// core pipeline; exposed only as a CLI diagnostic (SPEC_FULL.md §5.1).
func (t *Tree) TotalVolume() float32 {
	if t == nil || t.Root == nil {
		return 0
	}
	var total float32
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf {
			total += aabb.Volume(n.Aabb)
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(t.Root)
	return total
}

// DumpString renders the tree as an indented ├──/└── text tree, adapted
// from the reference implementation's print_tree_structure debug dump. It
// is a diagnostic only, never part of the core's public contract.
func (t *Tree) DumpString() string {
	if t == nil || t.Root == nil {
		return "<empty tree>\n"
	}
	var sb strings.Builder
	var walk func(n *Node, prefix string, isLeft bool)
	walk = func(n *Node, prefix string, isLeft bool) {
		connector := "└── "
		if isLeft {
			connector = "├── "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		if n.IsLeaf {
			fmt.Fprintf(&sb, "Leaf(idx=%d)", n.ObjIndex)
		} else {
			fmt.Fprintf(&sb, "Node(leaves=%d)", n.LeafCount)
		}
		sb.WriteByte('\n')
		if n.IsLeaf {
			return
		}
		childPrefix := prefix + "    "
		if isLeft {
			childPrefix = prefix + "│   "
		}
		walk(n.Left, childPrefix, true)
		walk(n.Right, childPrefix, false)
	}
	walk(t.Root, "", false)
	return sb.String()
}
