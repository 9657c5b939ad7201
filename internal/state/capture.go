package state

import (
	"LocalSketch/internal/geom"
)

// CaptureState is the state of a Capture.
type CaptureState int

const (
	Idle CaptureState = iota
	Capturing
)

func (s CaptureState) String() string {
	if s == Capturing {
		return "capturing"
	}
	return "idle"
}

// Claimer may take ownership of a freshly finished trace instead of letting
// it be committed. Claim runs with the trace already detached from the
// document and reports whether it took the trace.
type Claimer interface {
	Claim(doc *Document, t Trace) bool
}

// Starter is told when a new capture begins.
type Starter interface {
	CaptureStarted()
}

// Outcome describes a finished capture.
type Outcome struct {
	Trace   Trace
	Claimed bool
}

// Capture turns pointer down/move/up signals into document mutations.
type Capture struct {
	doc      *Document
	state    CaptureState
	claimers []Claimer
	starters []Starter
}

// NewCapture creates an idle capture machine over doc.
func NewCapture(doc *Document) *Capture {
	return &Capture{doc: doc}
}

// AddClaimer registers cl. Claimers are consulted in registration order;
// the first to claim a trace wins.
func (c *Capture) AddClaimer(cl Claimer) {
	c.claimers = append(c.claimers, cl)
}

// AddStarter registers s to be told about every new capture.
func (c *Capture) AddStarter(s Starter) {
	c.starters = append(c.starters, s)
}

// State returns the current state.
func (c *Capture) State() CaptureState {
	return c.state
}

// Start begins a trace at p. If a trace is already being drawn, it is
// finished first and its outcome returned.
func (c *Capture) Start(p geom.Point) (Outcome, bool) {
	var prev Outcome
	var finished bool
	if c.state == Capturing {
		prev, finished = c.Commit()
	}
	for _, s := range c.starters {
		s.CaptureStarted()
	}
	c.doc.Begin(p)
	c.state = Capturing
	return prev, finished
}

// Sample appends p to the trace being drawn. Samples outside a capture are
// ignored and reported as false.
func (c *Capture) Sample(p geom.Point) bool {
	if c.state != Capturing {
		return false
	}
	return c.doc.Append(p)
}

// Commit finishes the trace being drawn. A claimer may take it; otherwise
// it is appended to the committed traces. Commit while idle does nothing.
func (c *Capture) Commit() (Outcome, bool) {
	if c.state != Capturing {
		return Outcome{}, false
	}
	c.state = Idle

	t, ok := c.doc.Take()
	if !ok {
		return Outcome{}, false
	}
	for _, cl := range c.claimers {
		if cl.Claim(c.doc, t) {
			return Outcome{Trace: t, Claimed: true}, true
		}
	}
	c.doc.Commit(t)
	return Outcome{Trace: t}, true
}

// Reset drops any capture in progress.
func (c *Capture) Reset() {
	c.state = Idle
}
