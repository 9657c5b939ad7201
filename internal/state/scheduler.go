package state

import (
	"time"
)

// Timer is a handle to a scheduled one-shot task.
type Timer interface {
	// Stop cancels the task, reporting whether it had not yet run.
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, f func()) Timer

func (s SchedulerFunc) AfterFunc(d time.Duration, f func()) Timer {
	return s(d, f)
}

// TimeScheduler schedules with time.AfterFunc. Callbacks run on their own
// goroutine.
var TimeScheduler Scheduler = SchedulerFunc(func(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
})
