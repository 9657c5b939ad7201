// Package render keeps the drawable primitives of a rendering target in
// step with a drawing area's traces.
package render

import (
	"image/color"
	"strconv"
	"strings"
)

// Op is a path command.
type Op int

const (
	MoveTo Op = iota
	LineTo
)

// Command is one step of a path in draw space (y grows downward).
type Command struct {
	Op   Op
	X, Y float64
}

// Cap is a line cap style.
type Cap int

const (
	CapRound Cap = iota
	CapButt
	CapSquare
)

func (c Cap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapSquare:
		return "square"
	}
	return "round"
}

// Stroke is everything a target needs to draw one path.
type Stroke struct {
	Commands []Command
	Color    color.Color
	Cap      Cap
	Width    float64
}

// PathData renders the commands as SVG path data, e.g. "M1,2L3,4".
func (s Stroke) PathData() string {
	var b strings.Builder
	for _, c := range s.Commands {
		if c.Op == MoveTo {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		b.WriteString(formatCoord(c.X))
		b.WriteByte(',')
		b.WriteString(formatCoord(c.Y))
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Primitive is a target-owned handle to one drawn path.
type Primitive any

// Target is a surface holding an ordered list of path primitives.
type Target interface {
	// Insert adds a primitive at index, shifting later ones back.
	Insert(index int, s Stroke) Primitive
	// Update redraws p in place.
	Update(p Primitive, s Stroke)
	// Remove deletes p.
	Remove(p Primitive)
}

// Releaser is implemented by targets that hold resources or are attached
// to a host container.
type Releaser interface {
	Release()
}
