package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp shows sketch with its toolbar and a status line, and blocks until
// the window closes.
func RunApp(app fyne.App, sketch *SketchWidget, status string) {
	win := app.NewWindow("Local Sketch")
	win.Resize(fyne.NewSize(1024, 768))

	toolbar := NewToolbar(sketch, win, app.Preferences())
	statusBar := widget.NewLabel(status)

	win.SetContent(container.NewBorder(toolbar, statusBar, nil, nil, sketch))
	win.SetOnClosed(sketch.Destroy)
	win.ShowAndRun()
}
