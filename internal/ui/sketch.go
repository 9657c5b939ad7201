package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/geom"
	"LocalSketch/internal/pencil"
)

// SketchWidget hosts a pencil.Area in a fyne window. It turns mouse
// presses and drags into captures, with y flipped so it grows upward.
type SketchWidget struct {
	widget.BaseWidget
	Area *pencil.Area

	target *canvasTarget
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)

// NewSketchWidget creates the widget and its drawing area. cfg.Target is
// replaced by the widget's own canvas layer.
func NewSketchWidget(cfg pencil.Config) (*SketchWidget, error) {
	t := newCanvasTarget()
	cfg.Target = t
	if cfg.Scheduler == nil {
		cfg.Scheduler = mainThreadScheduler
	}
	a, err := pencil.New(cfg)
	if err != nil {
		return nil, err
	}

	s := &SketchWidget{Area: a, target: t}
	s.ExtendBaseWidget(s)
	return s, nil
}

func (s *SketchWidget) point(pos fyne.Position) geom.Point {
	return geom.Point{
		X: float64(pos.X),
		Y: float64(s.Size().Height - pos.Y),
		T: time.Now(),
	}
}

func (s *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		s.Area.StartCapture(s.point(e.Position))
	}
}

func (s *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		s.Area.CommitCapture()
	}
}

func (s *SketchWidget) Dragged(e *fyne.DragEvent) {
	s.Area.Sample(s.point(e.Position))
}

func (s *SketchWidget) DragEnd() {
	s.Area.CommitCapture()
}

// Destroy releases the drawing area and hides the widget.
func (s *SketchWidget) Destroy() {
	s.Area.Destroy()
	s.Hide()
}

func (s *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	return &sketchRenderer{
		sketch:     s,
		background: canvas.NewRectangle(color.White),
	}
}

type sketchRenderer struct {
	sketch     *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.sketch.target.layer}
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.sketch.target.resize(size)
	r.sketch.Area.Resize(float64(size.Width), float64(size.Height))
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sketchRenderer) Refresh() {
	r.background.Refresh()
	r.sketch.target.layer.Refresh()
}

func (r *sketchRenderer) Destroy() {}
