package text

import (
	"sort"
	"sync"

	"golang.org/x/image/math/fixed"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/sfnt or github.com/go-text/typesetting).
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// FamilyName returns the font family name, e.g. "Go".
	// Returns empty string if not available.
	FamilyName() string

	// StyleName returns the font subfamily name, e.g. "Regular".
	// Returns empty string if not available.
	StyleName() string

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance width of a glyph at ppem pixels per em.
	// Hinted advances are rounded to whole pixels.
	GlyphAdvance(gid GlyphID, ppem float64, h Hinting) (fixed.Int26_6, error)

	// GlyphOutline returns the glyph outline scaled to ppem pixels per em,
	// with the origin on the baseline and the Y axis increasing down.
	GlyphOutline(gid GlyphID, ppem float64) (Outline, error)
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the names of all registered parsers, sorted.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getParser returns the parser registered under name.
func getParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}

// scaleToFixed converts a pixel value to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func scaleToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
