package ui

import (
	"fyne.io/fyne/v2"

	"LocalSketch/internal/pencil"
)

const (
	prefColor     = "color"
	prefLineWidth = "lineWidth"
	prefErase     = "erase"
)

// ConfigFromPreferences builds an area configuration from the user's saved
// toolbar choices. Erasing and history default to on.
func ConfigFromPreferences(prefs fyne.Preferences, onChange func()) pencil.Config {
	cfg := pencil.Config{
		LineWidth: prefs.FloatWithFallback(prefLineWidth, pencil.DefaultLineWidth),
		Erase:     prefs.BoolWithFallback(prefErase, true),
		History:   true,
		OnChange:  onChange,
	}
	if i := prefs.IntWithFallback(prefColor, 0); i >= 0 && i < len(Palette) {
		cfg.Color = Palette[i]
	}
	return cfg
}
