package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrMissingGlyph is returned when the font has no glyph for a rune.
	ErrMissingGlyph = errors.New("text: font has no glyph")

	// ErrEmptyText is returned when asked to rasterize an empty string.
	ErrEmptyText = errors.New("text: empty text")
)
