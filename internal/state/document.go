// Package state owns the trace model of a drawing area: the committed
// traces, the trace being drawn, the traces waiting to be purged after a
// strike-through, and the undo history over the committed set.
package state

import (
	"LocalSketch/internal/geom"
)

// Document is the authoritative trace store. A trace is in exactly one of
// committed, inProgress or removed at any time.
//
// Document is not safe for concurrent use; its owner serializes access.
type Document struct {
	committed  []Trace
	inProgress *Trace
	removed    []Removed
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Begin starts a new in-progress trace at p and returns its ID.
// Any previous in-progress trace is discarded.
func (d *Document) Begin(p geom.Point) uint64 {
	t := NewTrace(p)
	d.inProgress = &t
	return t.ID
}

// Append adds p to the in-progress trace. It reports false when nothing is
// being drawn.
func (d *Document) Append(p geom.Point) bool {
	if d.inProgress == nil {
		return false
	}
	d.inProgress.Points = append(d.inProgress.Points, p)
	return true
}

// InProgress returns the trace being drawn.
func (d *Document) InProgress() (Trace, bool) {
	if d.inProgress == nil {
		return Trace{}, false
	}
	return *d.inProgress, true
}

// Take detaches the in-progress trace so it can be committed or claimed.
func (d *Document) Take() (Trace, bool) {
	if d.inProgress == nil {
		return Trace{}, false
	}
	t := *d.inProgress
	d.inProgress = nil
	return t, true
}

// Commit appends t to the committed traces.
func (d *Document) Commit(t Trace) {
	d.committed = append(d.committed, t)
}

// Committed returns the committed traces without copying. Callers must not
// modify the result.
func (d *Document) Committed() []Trace {
	return d.committed
}

// Removed returns the traces waiting for the purge without copying.
func (d *Document) Removed() []Removed {
	return d.removed
}

// Extract moves every committed trace matching hit into the removed set
// with reason Struck, keeping the order of the rest. It returns the moved
// traces.
func (d *Document) Extract(hit func(Trace) bool) []Trace {
	var out []Trace
	kept := d.committed[:0:0]
	for _, t := range d.committed {
		if hit(t) {
			out = append(out, t)
			d.removed = append(d.removed, Removed{Trace: t, Reason: Struck})
			continue
		}
		kept = append(kept, t)
	}
	d.committed = kept
	return out
}

// Discard places t straight into the removed set.
func (d *Document) Discard(t Trace, why Reason) {
	d.removed = append(d.removed, Removed{Trace: t, Reason: why})
}

// Purge drops the removed set and reports how many traces it held.
func (d *Document) Purge() int {
	n := len(d.removed)
	d.removed = nil
	return n
}

// Snapshot copies the committed traces. In-progress and removed traces are
// never part of a snapshot.
func (d *Document) Snapshot() Snapshot {
	return cloneTraces(d.committed)
}

// Restore replaces the committed traces with a copy of s.
func (d *Document) Restore(s Snapshot) {
	d.committed = cloneTraces(s)
}

// Clear empties the document.
func (d *Document) Clear() {
	d.committed = nil
	d.inProgress = nil
	d.removed = nil
}
