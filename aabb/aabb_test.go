package aabb

import (
	"testing"

	"github.com/maja42/vmath"
	"github.com/stretchr/testify/assert"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	return AABB{
		Min: vmath.Vec3f{minX, minY, minZ},
		Max: vmath.Vec3f{maxX, maxY, maxZ},
	}
}

func TestMerge(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(10, 0, 0, 11, 1, 1)

	got := Merge(a, b)
	assert.Equal(t, box(0, 0, 0, 11, 1, 1), got)
}

func TestMerge_CommutativeAndAssociative(t *testing.T) {
	a := box(0, 0, 0, 1, 2, 1)
	b := box(-3, 1, 0, 2, 2, 5)
	c := box(4, -1, -1, 9, 9, 9)

	assert.Equal(t, Merge(a, b), Merge(b, a))
	assert.Equal(t, Merge(Merge(a, b), c), Merge(a, Merge(b, c)))
}

func TestVolume(t *testing.T) {
	assert.Equal(t, float32(6), Volume(box(0, 0, 0, 1, 2, 3)))
	assert.Equal(t, float32(0), Volume(box(0, 0, 0, 0, 2, 3)))
}

func TestOverlap(t *testing.T) {
	a := box(0, 0, 0, 2, 2, 2)
	b := box(1, 1, 1, 3, 3, 3)
	assert.Equal(t, float32(1), Overlap(a, b))

	disjoint := box(10, 10, 10, 11, 11, 11)
	assert.Equal(t, float32(0), Overlap(a, disjoint))
}

func TestOverlap_SelfEqualsVolume(t *testing.T) {
	a := box(-2, -3, -4, 5, 6, 7)
	assert.Equal(t, Volume(a), Overlap(a, a))
}

func TestOverlap_NeverNegative(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(5, 5, 5, 6, 6, 6)
	assert.GreaterOrEqual(t, Overlap(a, b), float32(0))
}

func TestEqual(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(0, 0, 0, 1, 1, 1)
	c := box(0, 0, 0, 1, 1, 1.0000001)

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}
