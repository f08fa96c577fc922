package atlas

import (
	"github.com/gogpu/glyphatlas/text"
)

// GlyphSource yields glyph metrics and coverage bitmaps at a fixed size.
// *text.Face implements GlyphSource.
type GlyphSource interface {
	// GlyphIndex returns the glyph index for r, or false if the font has
	// no glyph for it.
	GlyphIndex(r rune) (text.GlyphID, bool)

	// LoadGlyph loads and rasterizes a glyph.
	LoadGlyph(gid text.GlyphID) (text.GlyphImage, error)
}

// GlyphMetrics holds the integer metrics of one character.
type GlyphMetrics struct {
	Char rune

	// Resolved is false when the font has no glyph for Char.
	// Unresolved characters have all-zero metrics.
	Resolved bool

	// Advance is the horizontal advance truncated to whole pixels.
	Advance int

	// Width and Height are the bitmap dimensions.
	Width, Height int

	// LeftBearing is the offset from the pen to the bitmap's left edge.
	LeftBearing int
}

// isSpace reports whether r is placed as advance only.
func isSpace(r rune) bool {
	return r == ' '
}

// metricsOf converts a rendered glyph to GlyphMetrics.
func metricsOf(r rune, g *text.GlyphImage) GlyphMetrics {
	return GlyphMetrics{
		Char:        r,
		Resolved:    true,
		Advance:     g.AdvanceWidth(),
		Width:       g.Width(),
		Height:      g.Height(),
		LeftBearing: g.LeftBearing(),
	}
}

// loadGlyph resolves and loads r. Unresolved characters return ok == false
// and no error.
func loadGlyph(src GlyphSource, r rune) (g text.GlyphImage, ok bool, err error) {
	gid, ok := src.GlyphIndex(r)
	if !ok {
		return text.GlyphImage{}, false, nil
	}
	g, err = src.LoadGlyph(gid)
	if err != nil {
		return text.GlyphImage{}, false, &CharError{Char: r, Err: err}
	}
	return g, true, nil
}

// Measure runs the metrics pass: it loads every character of cs once and
// returns its metrics, in CharacterSet order.
func Measure(src GlyphSource, cs CharacterSet) ([]GlyphMetrics, error) {
	metrics := make([]GlyphMetrics, len(cs))
	for i, r := range cs {
		g, ok, err := loadGlyph(src, r)
		if err != nil {
			return nil, err
		}
		if !ok {
			metrics[i] = GlyphMetrics{Char: r}
			continue
		}
		metrics[i] = metricsOf(r, &g)
	}
	return metrics, nil
}
