// Package extractor implements the greedy K-subtree partition: a bounded
// priority queue that repeatedly splits the largest subtree until it holds
// K entries (or can split no further), then flushes each entry's leaves
// into one group.
package extractor

import (
	"container/heap"

	"github.com/kestrelsim/bvhdomain/bvhtree"
	"github.com/kestrelsim/bvhdomain/internal/xerrors"
)

// queueEntry is one node waiting in the bounded priority queue, ordered by
// (LeafCount DESC, insertion order ASC) — see heapByLeafCount below.
type queueEntry struct {
	node      *bvhtree.Node
	insertion int
}

// heapByLeafCount implements container/heap.Interface so that Pop always
// returns the largest subtree first, ties broken strictly FIFO.
type heapByLeafCount []queueEntry

func (h heapByLeafCount) Len() int { return len(h) }
func (h heapByLeafCount) Less(i, j int) bool {
	if h[i].node.LeafCount != h[j].node.LeafCount {
		return h[i].node.LeafCount > h[j].node.LeafCount
	}
	return h[i].insertion < h[j].insertion
}
func (h heapByLeafCount) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *heapByLeafCount) Push(x interface{}) {
	*h = append(*h, x.(queueEntry))
}
func (h *heapByLeafCount) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// ExtractSubdomains selects the K largest coherent subtrees of tree as
// groups of object indices. Always returns exactly K groups (padding with
// empty ones when the tree has fewer than K leaves); groups are pairwise
// disjoint and ordered by non-increasing size, equal sizes in FIFO order.
//
// Returns xerrors.ErrInvalidInput if k == 0, and xerrors.ErrInconsistentTree
// if an internal node is found with a missing child.
func ExtractSubdomains(tree *bvhtree.Tree, k int) ([][]int, error) {
	if k == 0 {
		return nil, xerrors.Wrap(xerrors.CodeInvalidInput, "extract_subdomains requires k >= 1", nil)
	}
	if tree == nil || tree.Root == nil {
		return pad(nil, k), nil
	}

	q := &heapByLeafCount{}
	counter := 0
	heap.Push(q, queueEntry{node: tree.Root, insertion: counter})
	counter++

	for q.Len() < k && q.Len() > 0 {
		top := (*q)[0]
		if top.node.IsLeaf {
			// A leaf cannot be split further. If every remaining entry is a
			// leaf, no further progress is possible and the loop must stop
			// (spec §4.4 step 3 / §9's "all-leaves" guard) — otherwise
			// re-push it and keep trying other, splittable entries.
			if allLeaves(*q) {
				break
			}
			heap.Pop(q)
			heap.Push(q, top)
			continue
		}

		popped := heap.Pop(q).(queueEntry)
		if popped.node.Left == nil || popped.node.Right == nil {
			return nil, xerrors.ErrInconsistentTree
		}
		heap.Push(q, queueEntry{node: popped.node.Left, insertion: counter})
		counter++
		heap.Push(q, queueEntry{node: popped.node.Right, insertion: counter})
		counter++
	}

	groups := make([][]int, 0, q.Len())
	for q.Len() > 0 {
		entry := heap.Pop(q).(queueEntry)
		groups = append(groups, bvhtree.LeafObjIndices(entry.node))
	}
	return pad(groups, k), nil
}

// allLeaves reports whether every entry currently queued is a leaf, the
// terminal condition described in spec §9: without this guard, a queue that
// never reaches k entries because it ran out of internal nodes would loop
// forever re-pushing the same leaf.
func allLeaves(entries []queueEntry) bool {
	for _, e := range entries {
		if !e.node.IsLeaf {
			return false
		}
	}
	return true
}

// pad appends empty groups until groups has length exactly k.
func pad(groups [][]int, k int) [][]int {
	out := make([][]int, 0, k)
	out = append(out, groups...)
	for len(out) < k {
		out = append(out, nil)
	}
	return out
}
