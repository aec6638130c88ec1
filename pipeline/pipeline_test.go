package pipeline

import (
	"testing"

	"github.com/kestrelsim/bvhdomain/aabb"
	"github.com/kestrelsim/bvhdomain/updater"
	"github.com/maja42/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float32) aabb.AABB {
	return aabb.AABB{Min: vmath.Vec3f{minX, minY, minZ}, Max: vmath.Vec3f{maxX, maxY, maxZ}}
}

func rowOfCubes(n int, offset float32) []aabb.AABB {
	out := make([]aabb.AABB, n)
	for i := 0; i < n; i++ {
		f := float32(i)*2 + offset
		out[i] = box(f, 0, 0, f+1, 1, 1)
	}
	return out
}

func TestSession_FirstStepBuilds(t *testing.T) {
	s := NewSession(2, updater.DefaultThreshold)
	res, err := s.Step(rowOfCubes(4, 0))
	require.NoError(t, err)
	assert.True(t, res.Rebuilt)
	require.Len(t, res.Groups, 2)
	assert.NotNil(t, s.Tree())
}

func TestSession_StableFramePreservesIdentity(t *testing.T) {
	s := NewSession(2, updater.DefaultThreshold)
	first, err := s.Step(rowOfCubes(4, 0))
	require.NoError(t, err)

	second, err := s.Step(rowOfCubes(4, 0))
	require.NoError(t, err)
	assert.False(t, second.Rebuilt)
	assert.Equal(t, first.Groups, second.Groups)
}

func TestSession_LengthMismatchPropagatesError(t *testing.T) {
	s := NewSession(2, updater.DefaultThreshold)
	_, err := s.Step(rowOfCubes(4, 0))
	require.NoError(t, err)

	_, err = s.Step(rowOfCubes(5, 0))
	assert.Error(t, err)
}

func TestSession_KZeroPropagatesInvalidInput(t *testing.T) {
	s := NewSession(0, updater.DefaultThreshold)
	_, err := s.Step(rowOfCubes(3, 0))
	assert.Error(t, err)
}
