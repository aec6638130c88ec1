// Package frames loads the per-frame AABB sequences a Session is driven
// with. The on-disk format mirrors the reference harness's CSV layout
// (_examples/original_source/cppimpl/aabb_data_handler.cpp): a header row,
// then one row per frame holding a timestamp followed by N AABBs encoded as
// six floats each (minx,miny,minz,maxx,maxy,maxz).
package frames

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kestrelsim/bvhdomain/aabb"
	"github.com/kestrelsim/bvhdomain/internal/xerrors"
	"github.com/maja42/vmath"
	"github.com/spf13/cast"
)

// Frame is one timestamped snapshot of all tracked objects' AABBs.
type Frame struct {
	Time  float32
	AABBs []aabb.AABB
}

// Source yields frames in order. A Session is driven by repeatedly reading
// from a Source until io.EOF.
type Source interface {
	Next() (Frame, error)
}

// sliceSource replays an in-memory slice of frames; mainly useful for tests
// and for callers that already have frame data in hand.
type sliceSource struct {
	frames []Frame
	pos    int
}

// NewSliceSource returns a Source that replays frames in order.
func NewSliceSource(frames []Frame) Source {
	return &sliceSource{frames: frames}
}

func (s *sliceSource) Next() (Frame, error) {
	if s.pos >= len(s.frames) {
		return Frame{}, io.EOF
	}
	f := s.frames[s.pos]
	s.pos++
	return f, nil
}

// CSVSource reads frames from a CSV reader, one row per frame: the first
// column is the frame's timestamp, followed by numObjects*6 columns of
// AABB min/max coordinates. The header row (if any) must be consumed by the
// caller before the first call to Next — see ReadAll for the common case of
// reading an entire file at once.
type CSVSource struct {
	r          *csv.Reader
	numObjects int
}

// NewCSVSource wraps r, expecting each row to carry numObjects AABBs.
func NewCSVSource(r io.Reader, numObjects int) *CSVSource {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 1 + numObjects*6
	cr.TrimLeadingSpace = true
	return &CSVSource{r: cr, numObjects: numObjects}
}

// SkipHeader discards the next row without parsing it, for files that carry
// a column-name header line.
func (s *CSVSource) SkipHeader() error {
	_, err := s.r.Read()
	return err
}

// Next reads and parses the next frame. It returns io.EOF once the
// underlying reader is exhausted.
func (s *CSVSource) Next() (Frame, error) {
	record, err := s.r.Read()
	if err != nil {
		return Frame{}, err
	}

	values := make([]float32, len(record))
	for i, cell := range record {
		v, castErr := cast.ToFloat32E(cell)
		if castErr != nil {
			return Frame{}, xerrors.Wrap(xerrors.CodeInvalidInput,
				fmt.Sprintf("frames: column %d is not numeric: %q", i, cell), castErr)
		}
		values[i] = v
	}

	frame := Frame{
		Time:  values[0],
		AABBs: make([]aabb.AABB, s.numObjects),
	}
	for i := 0; i < s.numObjects; i++ {
		base := 1 + i*6
		frame.AABBs[i] = aabb.AABB{
			Min: vmath.Vec3f{values[base], values[base+1], values[base+2]},
			Max: vmath.Vec3f{values[base+3], values[base+4], values[base+5]},
		}
	}
	return frame, nil
}

// ReadAll consumes a header row followed by every remaining row of r,
// returning the full parsed frame sequence.
func ReadAll(r io.Reader, numObjects int) ([]Frame, error) {
	src := NewCSVSource(r, numObjects)
	if err := src.SkipHeader(); err != nil {
		return nil, xerrors.Wrap(xerrors.CodeInvalidInput, "frames: failed to read header row", err)
	}

	var out []Frame
	for {
		f, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
