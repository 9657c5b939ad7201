package pencil

import (
	"errors"

	"LocalSketch/internal/export"
)

var (
	// ErrNoTarget is returned by New when Config.Target is nil.
	ErrNoTarget = errors.New("pencil: no render target configured")
	// ErrDestroyed is returned by exports after Destroy.
	ErrDestroyed = errors.New("pencil: drawing area destroyed")
	// ErrRenderTarget is returned when a raster export could not be made.
	ErrRenderTarget = export.ErrRenderTarget
)
