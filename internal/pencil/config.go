package pencil

import (
	"image/color"
	"time"

	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

var (
	DefaultColor       = color.NRGBA{A: 0xff}
	DefaultActiveColor = color.NRGBA{R: 0xf3, G: 0x17, B: 0x17, A: 0xff}
	DefaultStrikeColor = color.NRGBA{R: 0xb4, G: 0xb4, B: 0xb4, A: 0xff}
)

const DefaultLineWidth = 3.0

// Config configures an Area. Only Target is required; zero values select
// the defaults.
type Config struct {
	// Target receives the drawn paths.
	Target render.Target
	// Width and Height are the surface size. Height flips y between the
	// trace model (y up) and draw space (y down).
	Width, Height float64

	// Color is used for committed traces.
	Color color.Color
	// ActiveColor is used for the trace being drawn. Set it to Color to
	// draw in one color throughout.
	ActiveColor color.Color
	// StrikeColor marks traces hit by a strike-through until they are
	// purged.
	StrikeColor color.Color
	LineWidth   float64

	// Erase turns on strike-through erasing.
	Erase        bool
	Policy       state.Policy
	MinReversals int
	PurgeDelay   time.Duration

	// History turns on undo/redo.
	History    bool
	MaxHistory int

	// Scheduler runs the delayed purge. Defaults to time.AfterFunc. It must
	// not call f before AfterFunc has returned.
	Scheduler state.Scheduler

	// OnChange is called once per finished gesture, undo, redo or clear,
	// never while the area is locked.
	OnChange func()
}

func (c *Config) setDefaults() {
	if c.Color == nil {
		c.Color = DefaultColor
	}
	if c.ActiveColor == nil {
		c.ActiveColor = DefaultActiveColor
	}
	if c.StrikeColor == nil {
		c.StrikeColor = DefaultStrikeColor
	}
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.PurgeDelay <= 0 {
		c.PurgeDelay = state.DefaultPurgeDelay
	}
	if c.MaxHistory <= 0 {
		c.MaxHistory = state.DefaultMaxHistory
	}
	if c.Scheduler == nil {
		c.Scheduler = state.TimeScheduler
	}
}
