// Package render defines the narrow boundary between the core tracker and
// any presentation layer. The reference implementation's visualizers
// (bvh_tree_visualizer.hpp, subdomain_visualizer.hpp) are GLFW/GLEW-bound
// and explicitly out of scope; these interfaces capture only the data those
// visualizers consumed, so a real renderer can be plugged in without the
// core ever importing a graphics library.
package render

import (
	"github.com/kestrelsim/bvhdomain/aabb"
	"github.com/kestrelsim/bvhdomain/bvhtree"
)

// TreeSink receives one callback per node as a tree is walked, depth-first,
// root first. Implementations that want a full traversal should not assume
// any particular child visit order beyond "left then right" for a given
// parent.
type TreeSink interface {
	VisitNode(n *bvhtree.Node, depth int)
}

// DomainSink receives the per-frame state a subdomain visualizer would draw:
// every object's current bounds, and the stabilized grouping produced by
// extractor.ExtractSubdomains + domaintracker.DomainTracker.Match.
type DomainSink interface {
	VisitFrame(aabbs []aabb.AABB, groups [][]int)
}

// NopSink implements both TreeSink and DomainSink by discarding everything;
// it is the default for callers that only want the core's return values.
type NopSink struct{}

// VisitNode implements TreeSink.
func (NopSink) VisitNode(*bvhtree.Node, int) {}

// VisitFrame implements DomainSink.
func (NopSink) VisitFrame([]aabb.AABB, [][]int) {}

// WalkTree drives a TreeSink over tree, depth-first, left child before
// right. A nil tree or root produces no callbacks.
func WalkTree(tree *bvhtree.Tree, sink TreeSink) {
	if tree == nil {
		return
	}
	walk(tree.Root, 0, sink)
}

func walk(n *bvhtree.Node, depth int, sink TreeSink) {
	if n == nil {
		return
	}
	sink.VisitNode(n, depth)
	if !n.IsLeaf {
		walk(n.Left, depth+1, sink)
		walk(n.Right, depth+1, sink)
	}
}
