package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"LocalSketch/internal/pencil"
)

const pngTimeout = 10 * time.Second

func saveSVG(win fyne.Window, a *pencil.Area) {
	saveFile(win, "sketch.svg", func(w io.Writer) error {
		_, err := io.WriteString(w, a.SVG())
		return err
	})
}

func savePNG(win fyne.Window, a *pencil.Area) {
	saveFile(win, "sketch.png", func(w io.Writer) error {
		ctx, cancel := context.WithTimeout(context.Background(), pngTimeout)
		defer cancel()
		data, err := a.PNG(ctx)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
}

func savePDF(win fyne.Window, a *pencil.Area) {
	saveFile(win, "sketch.pdf", a.PDF)
}

func saveFile(win fyne.Window, name string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return
		}
		if err := writeExport(wc, write); err != nil {
			log.Printf("[UI] Export to %s failed: %v", wc.URI(), err)
			dialog.ShowError(err, win)
			return
		}
		log.Printf("[UI] Exported %s", wc.URI())
	}, win)
	d.SetFileName(name)
	d.Show()
}

func writeExport(wc io.WriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing export: %w", cerr)
		}
	}()
	return write(wc)
}
