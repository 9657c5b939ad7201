package state

import (
	"time"

	"LocalSketch/internal/geom"
)

type fakeTimer struct {
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	live := !t.stopped && !t.fired
	t.stopped = true
	return live
}

// fakeScheduler collects tasks and runs them only when told to.
type fakeScheduler struct {
	timers []*fakeTimer
	delays []time.Duration
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{f: f}
	s.timers = append(s.timers, t)
	s.delays = append(s.delays, d)
	return t
}

// fire runs every timer that is still live, stale ones included when
// force is set, to mimic a Stop that lost the race with the callback.
func (s *fakeScheduler) fire(force bool) int {
	n := 0
	for _, t := range s.timers {
		if t.fired || (t.stopped && !force) {
			continue
		}
		t.fired = true
		t.f()
		n++
	}
	return n
}

func line(x0, y0, x1, y1 float64, n int) []geom.Point {
	out := make([]geom.Point, n)
	for i := range out {
		f := float64(i) / float64(n-1)
		out[i] = geom.Pt(x0+(x1-x0)*f, y0+(y1-y0)*f)
	}
	return out
}

func scribble(x0, x1, y float64, legs int) []geom.Point {
	out := []geom.Point{geom.Pt(x0, y)}
	for i := 1; i <= legs; i++ {
		x := x1
		if i%2 == 0 {
			x = x0
		}
		out = append(out, geom.Pt(x, y+float64(i)))
	}
	return out
}

func draw(c *Capture, points []geom.Point) (Outcome, bool) {
	c.Start(points[0])
	for _, p := range points[1:] {
		c.Sample(p)
	}
	return c.Commit()
}
