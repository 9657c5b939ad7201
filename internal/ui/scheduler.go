package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"LocalSketch/internal/state"
)

// mainThreadScheduler runs delayed tasks on fyne's UI goroutine so they
// may touch canvas objects.
var mainThreadScheduler state.Scheduler = state.SchedulerFunc(func(d time.Duration, f func()) state.Timer {
	return time.AfterFunc(d, func() { fyne.Do(f) })
})
