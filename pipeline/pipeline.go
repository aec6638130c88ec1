// Package pipeline implements the per-frame control flow of spec.md §2:
// build (frame 0) or update (frames >= 1), extract K subdomains, then
// match them against the previous frame's ordering. It is the "Glue"
// component — a thin sequencing of the four core packages, with no
// algorithmic logic of its own.
package pipeline

import (
	"github.com/kestrelsim/bvhdomain/aabb"
	"github.com/kestrelsim/bvhdomain/bvhtree"
	"github.com/kestrelsim/bvhdomain/domaintracker"
	"github.com/kestrelsim/bvhdomain/extractor"
	"github.com/kestrelsim/bvhdomain/internal/bvhlog"
	"github.com/kestrelsim/bvhdomain/updater"
)

// Session owns one tracker's state across frames: the current tree, the K
// to extract, the rebuild threshold, and the DomainTracker's previous
// ordering.
type Session struct {
	K         int
	Threshold float32

	tree    *bvhtree.Tree
	tracker *domaintracker.DomainTracker
	log     bvhlog.Logger
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithLogger attaches a logger; the default is bvhlog.Noop().
func WithLogger(l bvhlog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession creates a Session extracting k subdomains per frame, rebuilding
// past the given changed-leaf-ratio threshold (updater.DefaultThreshold is
// a sensible default).
func NewSession(k int, threshold float32, opts ...Option) *Session {
	s := &Session{
		K:         k,
		Threshold: threshold,
		tracker:   domaintracker.New(),
		log:       bvhlog.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FrameResult is what one call to Step returns: the stabilized groups plus
// diagnostics about what the updater did this frame.
type FrameResult struct {
	Groups       [][]int
	Rebuilt      bool
	ChangedCount int
}

// Step advances the session by one frame: it is a dense slice of N AABBs,
// with entry i always naming object i (spec.md §6's input contract). N must
// stay constant across the session's lifetime.
func (s *Session) Step(frameAabbs []aabb.AABB) (FrameResult, error) {
	res, err := updater.Update(s.tree, frameAabbs, s.Threshold)
	if err != nil {
		return FrameResult{}, err
	}
	s.tree = res.Tree

	if res.Rebuilt {
		s.log.Info("frame: rebuilt tree (changed=%d/%d)", res.ChangedCount, s.tree.N)
	} else {
		s.log.Debug("frame: refit tree (changed=%d/%d)", res.ChangedCount, s.tree.N)
	}

	groups, err := extractor.ExtractSubdomains(s.tree, s.K)
	if err != nil {
		return FrameResult{}, err
	}

	ordered, err := s.tracker.Match(groups)
	if err != nil {
		return FrameResult{}, err
	}

	return FrameResult{Groups: ordered, Rebuilt: res.Rebuilt, ChangedCount: res.ChangedCount}, nil
}

// Tree exposes the session's current tree, mainly for diagnostics
// (DumpString, TotalVolume) — never mutated by callers.
func (s *Session) Tree() *bvhtree.Tree {
	return s.tree
}
