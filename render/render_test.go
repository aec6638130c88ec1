package render

import (
	"testing"

	"github.com/kestrelsim/bvhdomain/aabb"
	"github.com/kestrelsim/bvhdomain/builder"
	"github.com/kestrelsim/bvhdomain/bvhtree"
	"github.com/maja42/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float32) aabb.AABB {
	return aabb.AABB{Min: vmath.Vec3f{minX, minY, minZ}, Max: vmath.Vec3f{maxX, maxY, maxZ}}
}

type recordingSink struct {
	nodes []*bvhtree.Node
	depth []int
}

func (r *recordingSink) VisitNode(n *bvhtree.Node, depth int) {
	r.nodes = append(r.nodes, n)
	r.depth = append(r.depth, depth)
}

func TestWalkTree_VisitsEveryNode(t *testing.T) {
	tr, err := builder.Build([]aabb.AABB{
		box(0, 0, 0, 1, 1, 1),
		box(10, 0, 0, 11, 1, 1),
	})
	require.NoError(t, err)

	sink := &recordingSink{}
	WalkTree(tr, sink)

	require.Len(t, sink.nodes, 3)
	assert.Equal(t, 0, sink.depth[0])
}

func TestWalkTree_NilTreeNoPanic(t *testing.T) {
	sink := &recordingSink{}
	assert.NotPanics(t, func() { WalkTree(nil, sink) })
	assert.Empty(t, sink.nodes)
}

func TestNopSink_DiscardsSilently(t *testing.T) {
	var sink NopSink
	assert.NotPanics(t, func() {
		sink.VisitNode(nil, 0)
		sink.VisitFrame(nil, nil)
	})
}
