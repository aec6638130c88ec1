// Package domaintracker implements cross-frame subdomain identity matching:
// given the previous frame's groups and a new frame's groups, find the
// minimum symmetric-difference assignment between them (Hungarian /
// Jonker-Volgenant shortest-augmenting-path, O(n^3)) and relabel the new
// groups into the previous frame's slot order.
//
// Translated from the reference DomainTracker::hungarian_solve
// (_examples/original_source/cppimpl/domain_tracker.cpp), which itself
// follows the classical potentials-and-augmenting-path formulation.
package domaintracker

import (
	"github.com/katalvlaran/lvlath/matrix"
	"github.com/kestrelsim/bvhdomain/internal/xerrors"
)

// sentinelCost stands in for the reference's HUNGARIAN_INFINITY: a cost so
// large that the solver only ever picks it when no real match remains.
const sentinelCost = 1e10

// DomainTracker holds the previous frame's ordered groups across calls. The
// zero value is ready to use (no previous groups yet).
type DomainTracker struct {
	previous [][]int
}

// New returns a DomainTracker with no prior frame.
func New() *DomainTracker {
	return &DomainTracker{}
}

// Match relabels newGroups so that slot i corresponds, under minimum
// symmetric-difference assignment, to slot i of the previous call's result.
// On the first call it stores newGroups verbatim and returns it.
func (dt *DomainTracker) Match(newGroups [][]int) ([][]int, error) {
	if dt.previous == nil {
		dt.previous = cloneGroups(newGroups)
		return cloneGroups(newGroups), nil
	}

	ordered, err := assign(dt.previous, newGroups)
	if err != nil {
		return nil, err
	}
	dt.previous = cloneGroups(ordered)
	return cloneGroups(ordered), nil
}

// assign implements spec §4.5 steps 1-3: build the cost matrix, solve the
// assignment, and relabel.
func assign(previous, newGroups [][]int) ([][]int, error) {
	n := len(previous)
	m := len(newGroups)
	size := n
	if m > size {
		size = m
	}

	cost, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.CodeAssignmentFailure, "failed to allocate cost matrix", err)
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			c := sentinelCost
			if i < n && j < m {
				c = float64(symmetricDiffLen(previous[i], newGroups[j]))
			}
			if err := cost.Set(i, j, c); err != nil {
				return nil, xerrors.Wrap(xerrors.CodeAssignmentFailure, "failed to set cost matrix entry", err)
			}
		}
	}

	rowAssignment, err := hungarianSolve(cost, size)
	if err != nil {
		return nil, err
	}

	ordered := make([][]int, n)
	matchedReal := make([]bool, m)
	for i := 0; i < n; i++ {
		j := rowAssignment[i]
		if j < m {
			ordered[i] = newGroups[j]
			matchedReal[j] = true
		}
	}
	for j := 0; j < m; j++ {
		if !matchedReal[j] {
			ordered = append(ordered, newGroups[j])
		}
	}
	return ordered, nil
}

// symmetricDiffLen returns |a △ b| — the count of object indices present in
// exactly one of a or b.
func symmetricDiffLen(a, b []int) int {
	inA := make(map[int]bool, len(a))
	for _, v := range a {
		inA[v] = true
	}
	inB := make(map[int]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	diff := 0
	for v := range inA {
		if !inB[v] {
			diff++
		}
	}
	for v := range inB {
		if !inA[v] {
			diff++
		}
	}
	return diff
}

// hungarianSolve runs the classical O(n^3) potentials/augmenting-path
// assignment on the size×size cost matrix, and returns, for each row i, the
// column it was matched to. 1-indexed internal arrays (u, v, p, way) mirror
// the reference implementation exactly; index 0 is the "no row/column yet"
// sentinel used by the augmenting-path backtrack.
func hungarianSolve(cost *matrix.Dense, size int) ([]int, error) {
	const inf = 1e18

	u := make([]float64, size+1)
	v := make([]float64, size+1)
	p := make([]int, size+1) // p[j] = row (1-indexed) currently matched to column j
	way := make([]int, size+1)

	for i := 1; i <= size; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, size+1)
		used := make([]bool, size+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= size; j++ {
				if used[j] {
					continue
				}
				raw, err := cost.At(i0-1, j-1)
				if err != nil {
					return nil, xerrors.Wrap(xerrors.CodeAssignmentFailure, "cost matrix read failed", err)
				}
				cur := raw - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= size; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if j0 < 0 {
				return nil, xerrors.ErrAssignmentFailure
			}
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowAssignment := make([]int, size)
	for i := range rowAssignment {
		rowAssignment[i] = -1
	}
	for j := 1; j <= size; j++ {
		if p[j] != 0 {
			rowAssignment[p[j]-1] = j - 1
		}
	}
	for _, j := range rowAssignment {
		if j < 0 {
			return nil, xerrors.ErrAssignmentFailure
		}
	}
	return rowAssignment, nil
}

func cloneGroups(groups [][]int) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		if g == nil {
			continue
		}
		cp := make([]int, len(g))
		copy(cp, g)
		out[i] = cp
	}
	return out
}
