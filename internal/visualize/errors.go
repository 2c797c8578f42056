package visualize

import "errors"

var (
	// ErrEmptyChunkSet is returned when Render is called without chunks.
	ErrEmptyChunkSet = errors.New("no chunks to visualize")
	// ErrUnknownTheme is returned by Resolve for names outside the built-in palettes.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrEmptyPalette is returned for custom themes without colors.
	ErrEmptyPalette = errors.New("custom theme needs at least one color")
)
