package text

import "strconv"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a glyph index within a font.
// Index 0 is the .notdef glyph, which is never reported as resolved.
type GlyphID uint32

// String returns the decimal glyph index.
func (g GlyphID) String() string {
	return strconv.FormatUint(uint64(g), 10)
}

// Hinting specifies font hinting mode.
// Only on/off is supported: hinted advances are rounded to whole pixels.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}
