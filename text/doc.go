// Package text loads fonts and renders individual glyphs to coverage masks
// for atlas packing.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight glyph source bound to one point size
//   - FontParser: Pluggable font parsing backend (default: golang.org/x/image)
//
// # Example usage
//
//	// Load font (do once, share across exports)
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	// Create a face per export (not safe for concurrent use)
//	face, err := source.Face(12)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if id, ok := face.GlyphIndex('A'); ok {
//	    glyph, err := face.LoadGlyph(id)
//	    ...
//	}
//
// # Pluggable Parser Backend
//
// Two parsers are registered:
//
//   - "ximage": golang.org/x/image/font/sfnt (default)
//   - "gotext": github.com/go-text/typesetting/font
//
// Both produce glyph outlines which are rasterized with
// golang.org/x/image/vector, so the coverage masks only differ where the
// parsers disagree on outlines or advances.
//
//	source, err := text.NewFontSource(data, text.WithParser("gotext"))
//
// # Concurrency
//
// FontSource is safe for concurrent use. Face is not: it owns a rasterizer
// and is bound to a single pixel size. Concurrent exports must each create
// their own Face from the shared FontSource.
package text
