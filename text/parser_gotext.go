package text

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/math/fixed"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &gotextParsedFont{font: face.Font, desc: face.Font.Describe()}, nil
}

// gotextParsedFont implements ParsedFont using go-text's font.Font.
// font.Font is read-only and safe for concurrent use; font.Face is not,
// so a lightweight Face is created per call.
type gotextParsedFont struct {
	font *font.Font
	desc font.Description
}

// FamilyName implements ParsedFont.FamilyName.
func (f *gotextParsedFont) FamilyName() string {
	return f.desc.Family
}

// StyleName implements ParsedFont.StyleName.
// go-text exposes the font aspect rather than the raw subfamily string,
// so the usual subfamily spelling is rebuilt from weight and slant.
func (f *gotextParsedFont) StyleName() string {
	var parts []string
	switch w := f.desc.Aspect.Weight; {
	case w >= font.WeightBlack:
		parts = append(parts, "Black")
	case w >= font.WeightExtraBold:
		parts = append(parts, "ExtraBold")
	case w >= font.WeightBold:
		parts = append(parts, "Bold")
	case w >= font.WeightSemibold:
		parts = append(parts, "SemiBold")
	case w >= font.WeightMedium:
		parts = append(parts, "Medium")
	case w > 0 && w <= font.WeightThin:
		parts = append(parts, "Thin")
	case w > 0 && w <= font.WeightExtraLight:
		parts = append(parts, "ExtraLight")
	case w > 0 && w <= font.WeightLight:
		parts = append(parts, "Light")
	}
	if f.desc.Aspect.Style == font.StyleItalic {
		parts = append(parts, "Italic")
	}
	if len(parts) == 0 {
		return "Regular"
	}
	return strings.Join(parts, " ")
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) GlyphID {
	gid, ok := f.font.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphID(gid)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(gid GlyphID, ppem float64, h Hinting) (fixed.Int26_6, error) {
	face := font.NewFace(f.font)
	advance := scaleToFixed(float64(face.HorizontalAdvance(font.GID(gid))) * f.scale(ppem))
	if h == HintingFull {
		advance = fixed.I(advance.Round())
	}
	return advance, nil
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *gotextParsedFont) GlyphOutline(gid GlyphID, ppem float64) (Outline, error) {
	face := font.NewFace(f.font)
	data := face.GlyphData(font.GID(gid))
	if data == nil {
		// Blank glyphs such as space carry no outline data.
		return nil, nil
	}
	glyph, ok := data.(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("glyph %d is not an outline (%T)", gid, data)
	}

	scale := f.scale(ppem)
	outline := make(Outline, len(glyph.Segments))
	for i, seg := range glyph.Segments {
		out := OutlineSegment{Op: gotextOp(seg.Op)}
		for j := range out.Op.pointCount() {
			// go-text's Y axis increases up; ours increases down.
			out.Points[j] = fixed.Point26_6{
				X: scaleToFixed(float64(seg.Args[j].X) * scale),
				Y: scaleToFixed(-float64(seg.Args[j].Y) * scale),
			}
		}
		outline[i] = out
	}
	return outline, nil
}

// scale returns the factor converting font units to pixels.
func (f *gotextParsedFont) scale(ppem float64) float64 {
	upem := f.font.Upem()
	if upem == 0 {
		return 0
	}
	return ppem / float64(upem)
}

// gotextOp maps a go-text segment operator to OutlineOp.
func gotextOp(op ot.SegmentOp) OutlineOp {
	switch op {
	case ot.SegmentOpLineTo:
		return OutlineOpLineTo
	case ot.SegmentOpQuadTo:
		return OutlineOpQuadTo
	case ot.SegmentOpCubeTo:
		return OutlineOpCubicTo
	default:
		return OutlineOpMoveTo
	}
}
