// Package aabb provides the primitive operations on axis-aligned bounding
// boxes that the rest of the tracker is built on: merge, volume, overlap,
// and bit-identity equality.
package aabb

import (
	"github.com/maja42/vmath"
	"github.com/maja42/vmath/math32"
)

// AABB is a 3D axis-aligned bounding box. The invariant Min[d] <= Max[d]
// for every axis d is the caller's responsibility; these helpers never
// validate it, matching the reference implementation.
type AABB struct {
	Min vmath.Vec3f
	Max vmath.Vec3f
}

// Empty is the identity element for Merge: merging anything with Empty
// returns that thing unchanged.
var Empty = AABB{
	Min: vmath.Vec3f{math32.Infinity, math32.Infinity, math32.Infinity},
	Max: vmath.Vec3f{math32.NegInfinity, math32.NegInfinity, math32.NegInfinity},
}

// Merge returns the componentwise min/max of a and b.
func Merge(a, b AABB) AABB {
	var m AABB
	for d := 0; d < 3; d++ {
		m.Min[d] = vmath.Min(a.Min[d], b.Min[d])
		m.Max[d] = vmath.Max(a.Max[d], b.Max[d])
	}
	return m
}

// Volume returns the product over axes of max(0, max[d]-min[d]).
//
// Unused by the core pipeline (Builder/Updater/SubdomainExtractor/
// DomainTracker never call it); kept because the reference implementation
// exposes it, and the CLI's final summary line uses it as a diagnostic.
func Volume(a AABB) float32 {
	v := float32(1)
	for d := 0; d < 3; d++ {
		extent := a.Max[d] - a.Min[d]
		if extent < 0 {
			extent = 0
		}
		v *= extent
	}
	return v
}

// Overlap returns the product over axes of the per-axis intersection
// length, or 0 as soon as one axis does not overlap.
func Overlap(a, b AABB) float32 {
	v := float32(1)
	for d := 0; d < 3; d++ {
		minMax := vmath.Min(a.Max[d], b.Max[d])
		maxMin := vmath.Max(a.Min[d], b.Min[d])
		if minMax < maxMin {
			return 0
		}
		v *= minMax - maxMin
	}
	return v
}

// Equal reports whether all six components are bitwise equal. Refit uses
// this to decide whether a leaf's box changed; sub-ULP float noise that
// still compares equal is, by design, not a change.
func Equal(a, b AABB) bool {
	return a.Min == b.Min && a.Max == b.Max
}
