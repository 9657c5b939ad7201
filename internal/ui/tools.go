package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/pencil"
)

// Palette is the set of ink colors offered in the toolbar.
var Palette = []color.Color{
	color.NRGBA{A: 0xff},
	color.NRGBA{R: 0xff, A: 0xff},
	color.NRGBA{G: 0x99, A: 0xff},
	color.NRGBA{B: 0xff, A: 0xff},
	color.NRGBA{R: 0xff, G: 0xaa, A: 0xff},
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the controls for s: undo/redo, clear, exports, ink
// color, line width and the strike-through toggle. Choices are saved to
// prefs.
func NewToolbar(s *SketchWidget, win fyne.Window, prefs fyne.Preferences) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { s.Area.Undo() }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { s.Area.Redo() }),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			dialog.ShowConfirm("Clear", "Clear the drawing and its history?", func(ok bool) {
				if ok {
					s.Area.Clear()
				}
			}, win)
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { saveSVG(win, s.Area) }),
		widget.NewToolbarAction(theme.FileImageIcon(), func() { savePNG(win, s.Area) }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { savePDF(win, s.Area) }),
	)

	var swatches []fyne.CanvasObject
	for i, c := range Palette {
		i := i
		swatches = append(swatches, newColorSwatch(c, func(c color.Color) {
			s.Area.SetColor(c)
			prefs.SetInt(prefColor, i)
		}))
	}

	width := widget.NewSlider(1, 20)
	width.SetValue(prefs.FloatWithFallback(prefLineWidth, pencil.DefaultLineWidth))
	width.OnChanged = func(v float64) {
		s.Area.SetLineWidth(v)
		prefs.SetFloat(prefLineWidth, v)
	}
	widthBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), width)

	erase := widget.NewCheck("Strike to erase", func(on bool) {
		s.Area.SetErase(on)
		prefs.SetBool(prefErase, on)
	})
	erase.SetChecked(s.Area.Erasing())

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Ink:"),
		container.NewHBox(swatches...),
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		widthBox,
		erase,
		layout.NewSpacer(),
	)
}
