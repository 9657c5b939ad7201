package state

import (
	"fmt"
	"log"
	"time"

	"LocalSketch/internal/geom"
	"LocalSketch/internal/gesture"
)

// DefaultPurgeDelay is how long struck traces stay visible.
const DefaultPurgeDelay = 300 * time.Millisecond

// Policy selects which committed traces a strike-through removes.
type Policy int

const (
	// PolicyContainment removes a trace when any of its points lies inside
	// the strike-through's bounding rect.
	PolicyContainment Policy = iota
	// PolicyOverlap removes a trace when its bounding rect overlaps the
	// strike-through's. Coarser, removes more.
	PolicyOverlap
)

func (p Policy) String() string {
	switch p {
	case PolicyContainment:
		return "containment"
	case PolicyOverlap:
		return "overlap"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a policy name back to its value.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "containment":
		return PolicyContainment, nil
	case "overlap":
		return PolicyOverlap, nil
	}
	return 0, fmt.Errorf("unknown removal policy %q", s)
}

// Hits reports whether trace t is hit by a strike-through bounded by box.
func (p Policy) Hits(t Trace, box geom.Rect) bool {
	if p == PolicyOverlap {
		return geom.Overlap(t.Bounds(), box)
	}
	for _, pt := range t.Points {
		if geom.PointInRect(pt, box) {
			return true
		}
	}
	return false
}

// EraserConfig configures an Eraser. Zero values select defaults.
type EraserConfig struct {
	Enabled      bool
	Policy       Policy
	MinReversals int
	PurgeDelay   time.Duration
	Scheduler    Scheduler
	// OnPurge runs after a scheduled purge emptied the removed set.
	OnPurge func(n int)
}

// Eraser is the removal engine. It claims strike-through traces at commit,
// moves the committed traces they hit into the removed set and purges that
// set after a delay. At most one purge timer is live; a newer schedule
// invalidates the older one.
type Eraser struct {
	Enabled bool

	doc        *Document
	classifier gesture.Classifier
	policy     Policy
	delay      time.Duration
	sched      Scheduler
	onPurge    func(n int)

	timer Timer
	gen   uint64
}

// NewEraser creates an eraser over doc.
func NewEraser(doc *Document, cfg EraserConfig) *Eraser {
	if cfg.PurgeDelay <= 0 {
		cfg.PurgeDelay = DefaultPurgeDelay
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = TimeScheduler
	}
	return &Eraser{
		Enabled:    cfg.Enabled,
		doc:        doc,
		classifier: gesture.NewClassifier(cfg.MinReversals),
		policy:     cfg.Policy,
		delay:      cfg.PurgeDelay,
		sched:      cfg.Scheduler,
		onPurge:    cfg.OnPurge,
	}
}

// Policy returns the removal policy in use.
func (e *Eraser) Policy() Policy {
	return e.policy
}

// Claim takes t when erasing is enabled and t is a strike-through.
func (e *Eraser) Claim(doc *Document, t Trace) bool {
	if !e.Enabled || !e.classifier.IsStrikeThrough(t.Points) {
		return false
	}

	box := t.Bounds()
	struck := doc.Extract(func(c Trace) bool { return e.policy.Hits(c, box) })
	doc.Discard(t, Scribble)
	log.Printf("[ERASER] Strike-through %d removed %d trace(s) (%s)", t.ID, len(struck), e.policy)
	return true
}

// CaptureStarted holds a pending purge so it cannot fire while a new trace
// is being drawn. Schedule resumes it.
func (e *Eraser) CaptureStarted() {
	e.cancel()
}

// Schedule (re)arms the purge timer if anything is waiting to be purged.
func (e *Eraser) Schedule() {
	e.cancel()
	if len(e.doc.Removed()) == 0 {
		return
	}
	gen := e.gen
	e.timer = e.sched.AfterFunc(e.delay, func() { e.fire(gen) })
}

// Pending reports whether a purge timer is armed.
func (e *Eraser) Pending() bool {
	return e.timer != nil
}

// Flush cancels any timer and purges immediately. It returns the number of
// traces dropped.
func (e *Eraser) Flush() int {
	e.cancel()
	return e.doc.Purge()
}

// Stop cancels any timer without purging.
func (e *Eraser) Stop() {
	e.cancel()
}

func (e *Eraser) fire(gen uint64) {
	if gen != e.gen {
		return
	}
	e.timer = nil
	n := e.doc.Purge()
	log.Printf("[ERASER] Purged %d trace(s)", n)
	if e.onPurge != nil {
		e.onPurge(n)
	}
}

func (e *Eraser) cancel() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}
