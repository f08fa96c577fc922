package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use as long as every call gets its own
// sfnt.Buffer, so each method allocates one.
type ximageParsedFont struct {
	font *opentype.Font
}

// FamilyName implements ParsedFont.FamilyName.
func (f *ximageParsedFont) FamilyName() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// StyleName implements ParsedFont.StyleName.
func (f *ximageParsedFont) StyleName() string {
	if name, err := f.font.Name(nil, sfnt.NameIDSubfamily); err == nil {
		return name
	}
	return ""
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID, ppem float64, h Hinting) (fixed.Int26_6, error) {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), scaleToFixed(ppem), ximageHinting(h))
	if err != nil {
		return 0, err
	}
	return advance, nil
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *ximageParsedFont) GlyphOutline(gid GlyphID, ppem float64) (Outline, error) {
	var buf sfnt.Buffer
	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), scaleToFixed(ppem), nil)
	if err != nil {
		return nil, err
	}

	// Segments become invalid once buf is re-used, so copy them out.
	outline := make(Outline, len(segments))
	for i, seg := range segments {
		outline[i] = OutlineSegment{
			Op:     ximageOp(seg.Op),
			Points: seg.Args,
		}
	}
	return outline, nil
}

// ximageHinting maps our hinting toggle to x/image hinting.
func ximageHinting(h Hinting) font.Hinting {
	if h == HintingFull {
		return font.HintingFull
	}
	return font.HintingNone
}

// ximageOp maps an sfnt segment operator to OutlineOp.
func ximageOp(op sfnt.SegmentOp) OutlineOp {
	switch op {
	case sfnt.SegmentOpLineTo:
		return OutlineOpLineTo
	case sfnt.SegmentOpQuadTo:
		return OutlineOpQuadTo
	case sfnt.SegmentOpCubeTo:
		return OutlineOpCubicTo
	default:
		return OutlineOpMoveTo
	}
}
