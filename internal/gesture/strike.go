// Package gesture recognizes the strike-through scribble: a rapid
// back-and-forth stroke drawn over existing ink to erase it.
package gesture

import (
	"math"

	"LocalSketch/internal/geom"
)

const (
	// DefaultMinReversals is the number of large reversals that makes a
	// trace a strike-through.
	DefaultMinReversals = 3
	// StrictMinReversals demands a longer scribble before erasing.
	StrictMinReversals = 5
)

// reversalAngle is the turn beyond which a heading change counts as a
// reversal of travel.
const reversalAngle = math.Pi / 2

// Classifier decides whether a finished trace is a strike-through.
type Classifier struct {
	MinReversals int
}

// NewClassifier returns a classifier requiring min reversals, or
// DefaultMinReversals when min is not positive.
func NewClassifier(need int) Classifier {
	if need <= 0 {
		need = DefaultMinReversals
	}
	return Classifier{MinReversals: need}
}

// IsStrikeThrough reports whether points form a strike-through.
func (c Classifier) IsStrikeThrough(points []geom.Point) bool {
	if len(points) < 2 {
		return false
	}
	need := c.MinReversals
	if need <= 0 {
		need = DefaultMinReversals
	}
	return Reversals(points) >= need
}

// Reversals counts large reversals in travel direction along points.
//
// A turn sharper than π/2 counts on its own. A softer turn is summed with
// the next one so that a reversal smeared across two samples by slow input
// still counts; a counted pair consumes both turns. The result depends on
// point order.
func Reversals(points []geom.Point) int {
	turns := turnsOf(headings(points))

	n := 0
	for i := 0; i < len(turns); i++ {
		if math.Abs(turns[i]) > reversalAngle {
			n++
			continue
		}
		if i+1 < len(turns) && math.Abs(turns[i]+turns[i+1]) > reversalAngle {
			n++
			i++
		}
	}
	return n
}

// headings returns the direction of every segment between consecutive
// points. Zero-length segments carry no direction and are skipped.
func headings(points []geom.Point) []float64 {
	if len(points) < 2 {
		return nil
	}
	out := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if a.X == b.X && a.Y == b.Y {
			continue
		}
		out = append(out, geom.Direction(a, b))
	}
	return out
}

func turnsOf(dirs []float64) []float64 {
	if len(dirs) < 2 {
		return nil
	}
	out := make([]float64, len(dirs)-1)
	for i := 1; i < len(dirs); i++ {
		out[i-1] = geom.Turn(dirs[i-1], dirs[i])
	}
	return out
}
