// Package pencil is a freehand drawing area. It records pointer motion as
// traces, keeps a render target in step with them, erases ink crossed out
// with a zig-zag strike-through and offers undo/redo and exports.
//
// Host events must be delivered in order. The area locks internally
// because its purge timer fires on another goroutine.
package pencil

import (
	"image/color"
	"log"
	"sync"
	"time"

	"LocalSketch/internal/geom"
	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

// Area is one drawing surface.
type Area struct {
	mu  sync.Mutex
	cfg Config
	id  string

	width, height float64

	doc     *state.Document
	capture *state.Capture
	eraser  *state.Eraser
	history *state.History
	recon   *render.Reconciler

	destroyed bool
}

// New creates an Area. It fails with ErrNoTarget when cfg has no target.
func New(cfg Config) (*Area, error) {
	if cfg.Target == nil {
		return nil, ErrNoTarget
	}
	cfg.setDefaults()

	a := &Area{
		cfg:    cfg,
		id:     state.NewDocumentID(),
		width:  cfg.Width,
		height: cfg.Height,
		doc:    state.NewDocument(),
		recon:  render.NewReconciler(cfg.Target, cfg.LineWidth),
	}
	a.capture = state.NewCapture(a.doc)
	a.eraser = state.NewEraser(a.doc, state.EraserConfig{
		Enabled:      cfg.Erase,
		Policy:       cfg.Policy,
		MinReversals: cfg.MinReversals,
		PurgeDelay:   cfg.PurgeDelay,
		Scheduler:    state.SchedulerFunc(a.afterFunc),
		OnPurge:      func(int) { a.syncLocked() },
	})
	a.capture.AddStarter(a.eraser)
	a.capture.AddClaimer(a.eraser)

	if cfg.History {
		a.history = state.NewHistory(cfg.MaxHistory)
		a.history.Record(a.doc.Snapshot())
	}
	log.Printf("[AREA] Created %s (%gx%g, erase=%t, history=%t)", a.id, a.width, a.height, cfg.Erase, cfg.History)
	return a, nil
}

// afterFunc runs f under the area's lock so purges are serialized with
// pointer events.
func (a *Area) afterFunc(d time.Duration, f func()) state.Timer {
	return a.cfg.Scheduler.AfterFunc(d, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.destroyed {
			return
		}
		f()
	})
}

// ID identifies this area in exports.
func (a *Area) ID() string {
	return a.id
}

// StartCapture begins a trace at p.
func (a *Area) StartCapture(p geom.Point) {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	prev, finished := a.capture.Start(p)
	if finished {
		a.committedLocked(prev)
		// the new trace is already being drawn, keep the purge on hold
		a.eraser.CaptureStarted()
	}
	a.syncLocked()
	a.mu.Unlock()

	if finished {
		a.notify()
	}
}

// Sample extends the trace being drawn. Samples while not capturing are
// ignored.
func (a *Area) Sample(p geom.Point) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return
	}
	if a.capture.Sample(p) {
		a.syncLocked()
	}
}

// CommitCapture finishes the trace being drawn. It does nothing when no
// trace is being drawn.
func (a *Area) CommitCapture() {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	out, ok := a.capture.Commit()
	if ok {
		a.committedLocked(out)
		a.syncLocked()
	}
	a.mu.Unlock()

	if ok {
		a.notify()
	}
}

func (a *Area) committedLocked(out state.Outcome) {
	if out.Claimed {
		log.Printf("[AREA] Trace %d erased as strike-through", out.Trace.ID)
	} else {
		log.Printf("[AREA] Committed trace %d (%d points)", out.Trace.ID, len(out.Trace.Points))
	}
	if a.history != nil {
		a.history.Record(a.doc.Snapshot())
	}
	a.eraser.Schedule()
}

// Capturing reports whether a trace is being drawn.
func (a *Area) Capturing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.capture.State() == state.Capturing
}

// Traces returns a copy of the committed traces in drawing order.
func (a *Area) Traces() []state.Trace {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.Snapshot()
}

// Pending is the number of traces waiting for the purge.
func (a *Area) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.doc.Removed())
}

// Undo restores the previous committed state. It reports false when
// history is off or there is nothing to undo.
func (a *Area) Undo() bool {
	return a.step("Undo", func(h *state.History) (state.Snapshot, bool) { return h.Undo() })
}

// Redo re-applies an undone state.
func (a *Area) Redo() bool {
	return a.step("Redo", func(h *state.History) (state.Snapshot, bool) { return h.Redo() })
}

func (a *Area) step(name string, move func(*state.History) (state.Snapshot, bool)) bool {
	a.mu.Lock()
	if a.destroyed || a.history == nil {
		a.mu.Unlock()
		return false
	}
	snap, ok := move(a.history)
	if ok {
		// struck traces may come back with the snapshot; they must not
		// also sit in the removed set
		a.eraser.Flush()
		a.doc.Restore(snap)
		a.syncLocked()
		log.Printf("[AREA] %s to %d trace(s), cursor %d/%d", name, len(snap), a.history.Cursor(), a.history.Len())
	}
	a.mu.Unlock()

	if ok {
		a.notify()
	}
	return ok
}

// CanUndo reports whether Undo would change anything.
func (a *Area) CanUndo() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history != nil && a.history.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (a *Area) CanRedo() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history != nil && a.history.CanRedo()
}

// Clear drops every trace, the pending purge and the history.
func (a *Area) Clear() {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	a.eraser.Stop()
	a.doc.Clear()
	a.capture.Reset()
	if a.history != nil {
		a.history.Clear()
		a.history.Record(a.doc.Snapshot())
	}
	a.syncLocked()
	a.mu.Unlock()

	log.Printf("[AREA] Cleared %s", a.id)
	a.notify()
}

// Destroy removes every primitive and releases the target. The area
// ignores all calls afterwards.
func (a *Area) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return
	}
	a.destroyed = true
	a.eraser.Stop()
	a.recon.Reset()
	if r, ok := a.cfg.Target.(render.Releaser); ok {
		r.Release()
	}
	log.Printf("[AREA] Destroyed %s", a.id)
}

// Destroyed reports whether Destroy was called.
func (a *Area) Destroyed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.destroyed
}

// Resize sets the surface size and redraws against the new height.
func (a *Area) Resize(width, height float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed || (width == a.width && height == a.height) {
		return
	}
	a.width, a.height = width, height
	a.syncLocked()
}

// Size returns the surface size.
func (a *Area) Size() (width, height float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.width, a.height
}

// SetColor changes the committed stroke color.
func (a *Area) SetColor(c color.Color) {
	a.update(func() { a.cfg.Color = c })
}

// SetActiveColor changes the color of the trace being drawn.
func (a *Area) SetActiveColor(c color.Color) {
	a.update(func() { a.cfg.ActiveColor = c })
}

// SetLineWidth changes the stroke width of every trace.
func (a *Area) SetLineWidth(w float64) {
	if w <= 0 {
		return
	}
	a.update(func() {
		a.cfg.LineWidth = w
		a.recon.Width = w
	})
}

// SetErase turns strike-through erasing on or off.
func (a *Area) SetErase(on bool) {
	a.update(func() { a.eraser.Enabled = on })
}

// Erasing reports whether strike-through erasing is on.
func (a *Area) Erasing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.eraser.Enabled
}

func (a *Area) update(f func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return
	}
	f()
	a.syncLocked()
}

// syncLocked redraws committed, then struck, then in-progress traces.
func (a *Area) syncLocked() {
	if a.destroyed {
		return
	}
	committed := a.doc.Committed()
	removed := a.doc.Removed()

	items := make([]render.Item, 0, len(committed)+len(removed)+1)
	for _, t := range committed {
		items = append(items, render.Item{ID: t.ID, Points: t.Points, Color: a.cfg.Color})
	}
	for _, r := range removed {
		items = append(items, render.Item{ID: r.Trace.ID, Points: r.Trace.Points, Color: a.cfg.StrikeColor})
	}
	if t, ok := a.doc.InProgress(); ok {
		items = append(items, render.Item{ID: t.ID, Points: t.Points, Color: a.cfg.ActiveColor})
	}
	a.recon.Sync(items, a.height)
}

func (a *Area) notify() {
	if a.cfg.OnChange != nil {
		a.cfg.OnChange()
	}
}
