package text

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// GlyphImage represents a rasterized glyph.
// This contains the coverage mask and positioning information.
type GlyphImage struct {
	// Mask is the coverage bitmap, with its top-left corner at (0, 0).
	// It is owned by the caller.
	Mask *image.Alpha

	// Bounds is the integer-pixel bitmap rectangle relative to the glyph
	// origin, which lies on the baseline at the left edge.
	// Bounds.Min.X is the bitmap left bearing; Bounds.Min.Y is minus the
	// bitmap top.
	Bounds image.Rectangle

	// Advance is the horizontal advance in 26.6 fixed point pixels.
	Advance fixed.Int26_6
}

// Width returns the bitmap width in pixels.
func (g *GlyphImage) Width() int {
	return g.Bounds.Dx()
}

// Height returns the bitmap height in pixels.
func (g *GlyphImage) Height() int {
	return g.Bounds.Dy()
}

// LeftBearing returns the horizontal distance from the origin to the left
// edge of the bitmap.
func (g *GlyphImage) LeftBearing() int {
	return g.Bounds.Min.X
}

// AdvanceWidth returns the advance truncated to whole pixels.
func (g *GlyphImage) AdvanceWidth() int {
	return g.Advance.Floor()
}
