package pencil

import (
	"context"
	"io"
	"log"

	"LocalSketch/internal/export"
	"LocalSketch/internal/render"
)

// frame is a consistent view of the committed drawing taken for an export.
type frame struct {
	id            string
	width, height float64
	strokes       []render.Stroke
}

// frameLocked purges struck traces, so they never reach an export, and
// captures the committed traces as strokes. The trace being drawn is not
// part of the document yet and is left out.
func (a *Area) frameLocked() frame {
	if a.eraser.Flush() > 0 {
		a.syncLocked()
	}
	committed := a.doc.Committed()
	f := frame{id: a.id, width: a.width, height: a.height, strokes: make([]render.Stroke, len(committed))}
	for i, t := range committed {
		f.strokes[i] = render.StrokeFor(t.Points, a.cfg.Color, a.cfg.LineWidth, a.height)
	}
	return f
}

func (a *Area) frame() (frame, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return frame{}, ErrDestroyed
	}
	return a.frameLocked(), nil
}

// SVG returns the drawing as an SVG document. It returns an empty string
// after Destroy.
func (a *Area) SVG() string {
	f, err := a.frame()
	if err != nil {
		return ""
	}
	return export.SVG(f.id, f.width, f.height, f.strokes)
}

// SVGDataURL returns SVG wrapped in a data: URL.
func (a *Area) SVGDataURL() string {
	return export.DataURL(a.SVG())
}

// PNG rasterizes the drawing. The frame is taken before waiting, so
// drawing may continue meanwhile; a failure leaves the area untouched and
// the call can simply be retried. Rasterizer failures and ctx expiry both
// surface as ErrRenderTarget.
func (a *Area) PNG(ctx context.Context) ([]byte, error) {
	f, err := a.frame()
	if err != nil {
		return nil, err
	}
	data, err := export.PNG(ctx, export.SVG(f.id, f.width, f.height, f.strokes), f.width, f.height)
	if err != nil {
		log.Printf("[EXPORT] PNG of %s failed: %v", f.id, err)
		return nil, err
	}
	return data, nil
}

// PNGDataURL returns PNG wrapped in a base64 data: URL.
func (a *Area) PNGDataURL(ctx context.Context) (string, error) {
	f, err := a.frame()
	if err != nil {
		return "", err
	}
	return export.PNGDataURL(ctx, export.SVG(f.id, f.width, f.height, f.strokes), f.width, f.height)
}

// PDF writes the drawing as a one-page PDF.
func (a *Area) PDF(w io.Writer) error {
	f, err := a.frame()
	if err != nil {
		return err
	}
	if err := export.PDF(w, f.id, f.width, f.height, f.strokes); err != nil {
		log.Printf("[EXPORT] PDF of %s failed: %v", f.id, err)
		return err
	}
	return nil
}
