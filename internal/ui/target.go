package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"LocalSketch/internal/render"
)

// canvasTarget draws paths as fyne canvas objects. Each primitive is a
// container of line segments, plus discs at every vertex when the cap is
// round so joints and single-point dots show.
type canvasTarget struct {
	layer    *fyne.Container
	released bool
}

func newCanvasTarget() *canvasTarget {
	return &canvasTarget{layer: container.NewWithoutLayout()}
}

func (t *canvasTarget) Insert(index int, s render.Stroke) render.Primitive {
	obj := container.NewWithoutLayout(strokeObjects(s)...)
	obj.Resize(t.layer.Size())

	objs := append(t.layer.Objects, nil)
	copy(objs[index+1:], objs[index:])
	objs[index] = obj
	t.layer.Objects = objs
	t.layer.Refresh()
	return obj
}

func (t *canvasTarget) Update(p render.Primitive, s render.Stroke) {
	obj := p.(*fyne.Container)
	obj.Objects = strokeObjects(s)
	obj.Refresh()
}

func (t *canvasTarget) Remove(p render.Primitive) {
	t.layer.Remove(p.(*fyne.Container))
}

// Release empties and hides the layer.
func (t *canvasTarget) Release() {
	t.layer.RemoveAll()
	t.layer.Hide()
	t.released = true
}

func (t *canvasTarget) resize(size fyne.Size) {
	t.layer.Resize(size)
	for _, o := range t.layer.Objects {
		o.Resize(size)
	}
}

func strokeObjects(s render.Stroke) []fyne.CanvasObject {
	var c color.Color = color.Black
	if s.Color != nil {
		c = s.Color
	}
	width := float32(s.Width)
	objs := make([]fyne.CanvasObject, 0, 2*len(s.Commands))

	for i := 1; i < len(s.Commands); i++ {
		a, b := s.Commands[i-1], s.Commands[i]
		if b.Op == render.MoveTo || (a.X == b.X && a.Y == b.Y) {
			continue
		}
		line := canvas.NewLine(c)
		line.StrokeWidth = width
		line.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
		line.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
		objs = append(objs, line)
	}

	if s.Cap == render.CapRound {
		r := width / 2
		for i, cmd := range s.Commands {
			if i > 0 && cmd == s.Commands[i-1] {
				continue
			}
			disc := canvas.NewCircle(c)
			disc.Move(fyne.NewPos(float32(cmd.X)-r, float32(cmd.Y)-r))
			disc.Resize(fyne.NewSize(width, width))
			objs = append(objs, disc)
		}
	}
	return objs
}
