package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrSourceClosed is returned when a glyph is loaded from a closed FontSource.
	ErrSourceClosed = errors.New("text: font source is closed")

	// ErrUnknownParser is returned when no parser is registered under the
	// requested name.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrInvalidSize is returned when a face is created with a non-positive size.
	ErrInvalidSize = errors.New("text: face size must be positive")
)

// GlyphError is returned when a glyph cannot be loaded or rasterized.
type GlyphError struct {
	GID GlyphID
	Err error
}

func (e *GlyphError) Error() string {
	return "text: glyph " + e.GID.String() + ": " + e.Err.Error()
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
