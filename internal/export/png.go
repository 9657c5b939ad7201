package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrRenderTarget is returned when the raster image for an export could
// not be produced, including when the caller gave up waiting for it.
var ErrRenderTarget = errors.New("render target failed to materialize")

// PNG rasterizes SVG markup into a width×height PNG image. Rasterizing
// runs on its own goroutine; if ctx ends first PNG returns ErrRenderTarget
// without waiting for it.
func PNG(ctx context.Context, svg string, width, height float64) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := rasterize(svg, width, height)
		done <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrRenderTarget, ctx.Err())
	case r := <-done:
		return r.data, r.err
	}
}

// PNGDataURL is PNG wrapped in a base64 data: URL.
func PNGDataURL(ctx context.Context, svg string, width, height float64) (string, error) {
	data, err := PNG(ctx, svg, width, height)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

func rasterize(svg string, width, height float64) ([]byte, error) {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty surface %dx%d", ErrRenderTarget, w, h)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: parse svg: %w", ErrRenderTarget, err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %w", ErrRenderTarget, err)
	}
	return buf.Bytes(), nil
}
