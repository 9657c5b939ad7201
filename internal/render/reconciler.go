package render

import (
	"image/color"

	"LocalSketch/internal/geom"
)

// Item is one trace as it should appear on the target.
type Item struct {
	ID     uint64
	Points []geom.Point
	Color  color.Color
}

// Stats counts the edits one Sync made.
type Stats struct {
	Created int
	Updated int
	Deleted int
	Moved   int
}

// Changed reports whether the target was touched at all.
func (s Stats) Changed() bool {
	return s.Created+s.Updated+s.Deleted+s.Moved > 0
}

type entry struct {
	id     uint64
	points int
	height float64
	width  float64
	color  color.Color
	prim   Primitive
}

// Reconciler maps a desired list of items onto a Target with as few edits
// as it can. Primitives are keyed by trace ID, so removing a trace from the
// middle of the list deletes one primitive and restyles nothing else.
//
// A trace's points only ever grow while it is drawn and are frozen once it
// is committed, so the point count together with the surface height stands
// in for its geometry.
type Reconciler struct {
	target  Target
	entries []entry

	Width float64
	Cap   Cap
}

// NewReconciler creates a reconciler drawing onto t with the given stroke
// width and round caps.
func NewReconciler(t Target, width float64) *Reconciler {
	return &Reconciler{target: t, Width: width, Cap: CapRound}
}

// Len is the number of primitives currently on the target.
func (r *Reconciler) Len() int {
	return len(r.entries)
}

// IDs lists the trace IDs on the target in draw order.
func (r *Reconciler) IDs() []uint64 {
	out := make([]uint64, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.id
	}
	return out
}

// Sync brings the target in line with items, drawn in slice order. height
// is the surface height used to flip y.
func (r *Reconciler) Sync(items []Item, height float64) Stats {
	var st Stats

	want := make(map[uint64]struct{}, len(items))
	for _, it := range items {
		want[it.ID] = struct{}{}
	}
	kept := r.entries[:0]
	for _, e := range r.entries {
		if _, ok := want[e.id]; ok {
			kept = append(kept, e)
			continue
		}
		r.target.Remove(e.prim)
		st.Deleted++
	}
	r.entries = kept

	for i, it := range items {
		if i < len(r.entries) && r.entries[i].id == it.ID {
			e := &r.entries[i]
			if e.points != len(it.Points) || e.height != height || e.width != r.Width || !SameColor(e.color, it.Color) {
				r.target.Update(e.prim, r.stroke(it, height))
				r.fill(e, it, height)
				st.Updated++
			}
			continue
		}

		if j := r.indexOf(it.ID, i+1); j >= 0 {
			r.target.Remove(r.entries[j].prim)
			r.entries = append(r.entries[:j], r.entries[j+1:]...)
			st.Moved++
		} else {
			st.Created++
		}

		e := entry{id: it.ID, prim: r.target.Insert(i, r.stroke(it, height))}
		r.fill(&e, it, height)
		r.entries = append(r.entries, entry{})
		copy(r.entries[i+1:], r.entries[i:])
		r.entries[i] = e
	}

	for len(r.entries) > len(items) {
		last := len(r.entries) - 1
		r.target.Remove(r.entries[last].prim)
		r.entries = r.entries[:last]
		st.Deleted++
	}
	return st
}

// Reset removes every primitive from the target.
func (r *Reconciler) Reset() {
	for _, e := range r.entries {
		r.target.Remove(e.prim)
	}
	r.entries = nil
}

// StrokeFor builds the stroke for points in c with the given width.
func StrokeFor(points []geom.Point, c color.Color, width, height float64) Stroke {
	return Stroke{
		Commands: Geometry(points, height),
		Color:    c,
		Cap:      CapRound,
		Width:    width,
	}
}

func (r *Reconciler) stroke(it Item, height float64) Stroke {
	s := StrokeFor(it.Points, it.Color, r.Width, height)
	s.Cap = r.Cap
	return s
}

func (r *Reconciler) fill(e *entry, it Item, height float64) {
	e.points = len(it.Points)
	e.height = height
	e.width = r.Width
	e.color = it.Color
}

func (r *Reconciler) indexOf(id uint64, from int) int {
	for j := from; j < len(r.entries); j++ {
		if r.entries[j].id == id {
			return j
		}
	}
	return -1
}
