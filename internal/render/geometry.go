package render

import (
	"LocalSketch/internal/geom"
)

// Geometry converts trace points into draw-space path commands, flipping y
// against the surface height. A single point is doubled so the path has a
// zero-length segment that round caps turn into a dot.
func Geometry(points []geom.Point, height float64) []Command {
	if len(points) == 0 {
		return nil
	}
	if len(points) == 1 {
		points = []geom.Point{points[0], points[0]}
	}

	cmds := make([]Command, len(points))
	for i, p := range points {
		op := LineTo
		if i == 0 {
			op = MoveTo
		}
		cmds[i] = Command{Op: op, X: p.X, Y: height - p.Y}
	}
	return cmds
}
