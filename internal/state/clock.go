package state

import (
	"sync/atomic"

	"github.com/google/uuid"

	"LocalSketch/internal/geom"
)

var traceSeq uint64

func nextTraceID() uint64 {
	return atomic.AddUint64(&traceSeq, 1)
}

// NewTrace starts a trace at p with a fresh ID.
func NewTrace(p geom.Point) Trace {
	return Trace{ID: nextTraceID(), Points: []geom.Point{p}}
}

// NewDocumentID names a drawing area for exports and mirrors.
func NewDocumentID() string {
	return uuid.NewString()
}
