// Package geom holds the plane geometry shared by the capture, erase and
// render stages. Coordinates are in the drawing area's local space with y
// growing upward.
package geom

import (
	"math"
	"time"
)

// Point is a single captured sample.
type Point struct {
	X float64   `json:"x"`
	Y float64   `json:"y"`
	T time.Time `json:"t"`
}

// Pt builds a point without a timestamp.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	XMin, XMax float64
	YMin, YMax float64
}

// BoundingRect returns the smallest Rect holding every point.
// It panics on an empty slice: traces are never empty.
func BoundingRect(points []Point) Rect {
	if len(points) == 0 {
		panic("geom: bounding rect of an empty trace")
	}

	r := Rect{
		XMin: points[0].X, XMax: points[0].X,
		YMin: points[0].Y, YMax: points[0].Y,
	}
	for _, p := range points[1:] {
		r.XMin = math.Min(r.XMin, p.X)
		r.XMax = math.Max(r.XMax, p.X)
		r.YMin = math.Min(r.YMin, p.Y)
		r.YMax = math.Max(r.YMax, p.Y)
	}
	return r
}

// PointInRect reports whether p lies inside r, edges included.
func PointInRect(p Point, r Rect) bool {
	return p.X >= r.XMin && p.X <= r.XMax &&
		p.Y >= r.YMin && p.Y <= r.YMax
}

// Overlap reports whether a and b share an area of strictly positive size.
// Rects that only touch along an edge or a corner do not overlap.
func Overlap(a, b Rect) bool {
	return a.XMin < b.XMax && b.XMin < a.XMax &&
		a.YMin < b.YMax && b.YMin < a.YMax
}

// Direction is the heading from a to b measured from the vertical axis,
// i.e. atan2(dx, dy). Straight up is 0, straight right is π/2.
func Direction(a, b Point) float64 {
	return math.Atan2(b.X-a.X, b.Y-a.Y)
}

// Turn is the signed change from heading from to heading to, normalized
// into (-π, π].
func Turn(from, to float64) float64 {
	d := to - from
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
