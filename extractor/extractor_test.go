package extractor

import (
	"testing"

	"github.com/kestrelsim/bvhdomain/aabb"
	"github.com/kestrelsim/bvhdomain/builder"
	"github.com/kestrelsim/bvhdomain/internal/xerrors"
	"github.com/maja42/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float32) aabb.AABB {
	return aabb.AABB{Min: vmath.Vec3f{minX, minY, minZ}, Max: vmath.Vec3f{maxX, maxY, maxZ}}
}

func rowOfCubes(n int) []aabb.AABB {
	out := make([]aabb.AABB, n)
	for i := 0; i < n; i++ {
		f := float32(i) * 2
		out[i] = box(f, 0, 0, f+1, 1, 1)
	}
	return out
}

func union(groups [][]int) map[int]bool {
	u := map[int]bool{}
	for _, g := range groups {
		for _, idx := range g {
			u[idx] = true
		}
	}
	return u
}

func TestExtractSubdomains_KZeroIsInvalidInput(t *testing.T) {
	tr, err := builder.Build(rowOfCubes(3))
	require.NoError(t, err)
	_, err = ExtractSubdomains(tr, 0)
	require.Error(t, err)
	assert.True(t, xerrors.IsInvalidInput(err))
}

func TestExtractSubdomains_K1ReturnsAllIndices(t *testing.T) {
	tr, err := builder.Build(rowOfCubes(5))
	require.NoError(t, err)

	groups, err := ExtractSubdomains(tr, 1)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, groups[0])
}

func TestExtractSubdomains_KEqualsNReturnsSingletons(t *testing.T) {
	n := 5
	tr, err := builder.Build(rowOfCubes(n))
	require.NoError(t, err)

	groups, err := ExtractSubdomains(tr, n)
	require.NoError(t, err)
	require.Len(t, groups, n)
	for _, g := range groups {
		assert.Len(t, g, 1)
	}
	assert.Len(t, union(groups), n)
}

func TestExtractSubdomains_KGreaterThanNPads(t *testing.T) {
	n := 5
	tr, err := builder.Build(rowOfCubes(n))
	require.NoError(t, err)

	groups, err := ExtractSubdomains(tr, n+1)
	require.NoError(t, err)
	require.Len(t, groups, n+1)

	emptyCount := 0
	singletonCount := 0
	for _, g := range groups {
		switch len(g) {
		case 0:
			emptyCount++
		case 1:
			singletonCount++
		default:
			t.Fatalf("unexpected group size %d", len(g))
		}
	}
	assert.Equal(t, 1, emptyCount)
	assert.Equal(t, n, singletonCount)
}

// Scenario 5 (spec §8): K=3 over 7 leaves.
func TestExtractSubdomains_SevenLeavesKThree(t *testing.T) {
	tr, err := builder.Build(rowOfCubes(7))
	require.NoError(t, err)

	groups, err := ExtractSubdomains(tr, 3)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, 7, total)

	for i := 1; i < len(groups); i++ {
		assert.GreaterOrEqual(t, len(groups[i-1]), len(groups[i]), "groups must be non-increasing in size")
	}

	seen := map[int]bool{}
	for _, g := range groups {
		for _, idx := range g {
			assert.False(t, seen[idx], "index %d appears in more than one group", idx)
			seen[idx] = true
		}
	}
}

func TestExtractSubdomains_GroupsArePairwiseDisjointAndSubsetOfRange(t *testing.T) {
	n := 23
	tr, err := builder.Build(rowOfCubes(n))
	require.NoError(t, err)

	groups, err := ExtractSubdomains(tr, 4)
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, g := range groups {
		for _, idx := range g {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, n)
			assert.False(t, seen[idx])
			seen[idx] = true
		}
	}
	assert.Len(t, seen, n)
}
