package state

import (
	"LocalSketch/internal/geom"
)

// Trace is one continuous stroke. Points are in drawing order and never
// empty. ID is unique within the process and never reused.
type Trace struct {
	ID     uint64       `json:"id"`
	Points []geom.Point `json:"points"`
}

// Clone returns a copy that shares no memory with t.
func (t Trace) Clone() Trace {
	pts := make([]geom.Point, len(t.Points))
	copy(pts, t.Points)
	return Trace{ID: t.ID, Points: pts}
}

// Bounds is the trace's bounding rect.
func (t Trace) Bounds() geom.Rect {
	return geom.BoundingRect(t.Points)
}

// Reason tells why a trace is waiting in the removed set.
type Reason int

const (
	// Struck traces were committed ink hit by a strike-through.
	Struck Reason = iota
	// Scribble is the strike-through gesture itself.
	Scribble
)

func (r Reason) String() string {
	switch r {
	case Struck:
		return "struck"
	case Scribble:
		return "scribble"
	}
	return "unknown"
}

// Removed is a trace waiting for the purge.
type Removed struct {
	Trace  Trace
	Reason Reason
}

// Snapshot is an independent copy of the committed traces.
type Snapshot []Trace

func cloneTraces(in []Trace) []Trace {
	out := make([]Trace, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}
