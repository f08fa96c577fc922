package text

import (
	"golang.org/x/image/vector"
)

// Face is a glyph source bound to a single point size.
//
// A Face is the per-export handle on a shared FontSource: the pixel size is
// fixed at creation instead of being re-set on a shared handle, and the
// rasterizer it owns makes it unsafe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	ppem   float64
	config faceConfig
	rast   *vector.Rasterizer
}

// newFace creates a Face for the given source and size.
func newFace(s *FontSource, size float64, config faceConfig) *Face {
	return &Face{
		source: s,
		size:   size,
		ppem:   size * config.dpi / 72,
		config: config,
		rast:   vector.NewRasterizer(0, 0),
	}
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// PixelsPerEm returns the pixel size of this face.
func (f *Face) PixelsPerEm() float64 {
	return f.ppem
}

// Hinting returns the hinting mode of this face.
func (f *Face) Hinting() Hinting {
	return f.config.hinting
}

// GlyphIndex returns the glyph index for r.
// The second result is false when the font has no glyph for r.
func (f *Face) GlyphIndex(r rune) (GlyphID, bool) {
	parsed := f.source.Parsed()
	if parsed == nil {
		return 0, false
	}
	gid := parsed.GlyphIndex(r)
	return gid, gid != 0
}

// LoadGlyph loads and rasterizes the glyph gid at this face's size.
// The returned mask is freshly allocated and owned by the caller.
func (f *Face) LoadGlyph(gid GlyphID) (GlyphImage, error) {
	parsed := f.source.Parsed()
	if parsed == nil {
		return GlyphImage{}, ErrSourceClosed
	}

	// Query the advance before the outline; backends may share buffers
	// between the two calls.
	advance, err := parsed.GlyphAdvance(gid, f.ppem, f.config.hinting)
	if err != nil {
		return GlyphImage{}, &GlyphError{GID: gid, Err: err}
	}
	outline, err := parsed.GlyphOutline(gid, f.ppem)
	if err != nil {
		return GlyphImage{}, &GlyphError{GID: gid, Err: err}
	}

	bounds, mask := rasterizeOutline(f.rast, outline)
	return GlyphImage{
		Mask:    mask,
		Bounds:  bounds,
		Advance: advance,
	}, nil
}
