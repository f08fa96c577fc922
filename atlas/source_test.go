package atlas

import (
	"errors"
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas/text"
)

// fakeGlyph describes one glyph of a fakeSource.
type fakeGlyph struct {
	advance     int
	width       int
	height      int
	leftBearing int
	coverage    uint8
}

// fakeSource is an in-memory GlyphSource. Characters not in glyphs are
// unresolved. Loads are counted per character.
type fakeSource struct {
	glyphs map[rune]fakeGlyph
	fail   map[rune]error
	loads  map[rune]int

	// mutate, if set, changes a glyph after its first load.
	mutate func(r rune, g fakeGlyph) fakeGlyph
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		glyphs: make(map[rune]fakeGlyph),
		fail:   make(map[rune]error),
		loads:  make(map[rune]int),
	}
}

// uniform adds every character of cs with the same metrics. Spaces get
// an empty bitmap.
func (s *fakeSource) uniform(cs CharacterSet, advance, width, height int) *fakeSource {
	for _, r := range cs {
		g := fakeGlyph{advance: advance, width: width, height: height, coverage: 0x80}
		if r == ' ' {
			g.width, g.height = 0, 0
		}
		s.glyphs[r] = g
	}
	return s
}

func (s *fakeSource) GlyphIndex(r rune) (text.GlyphID, bool) {
	if _, ok := s.glyphs[r]; !ok {
		if _, ok := s.fail[r]; !ok {
			return 0, false
		}
	}
	return text.GlyphID(r) + 1, true
}

func (s *fakeSource) LoadGlyph(gid text.GlyphID) (text.GlyphImage, error) {
	r := rune(gid) - 1
	if err, ok := s.fail[r]; ok {
		return text.GlyphImage{}, err
	}
	g, ok := s.glyphs[r]
	if !ok {
		return text.GlyphImage{}, errors.New("fake: unknown glyph")
	}
	s.loads[r]++
	if s.mutate != nil && s.loads[r] > 1 {
		g = s.mutate(r, g)
	}

	mask := image.NewAlpha(image.Rect(0, 0, g.width, g.height))
	for i := range mask.Pix {
		mask.Pix[i] = g.coverage
	}
	return text.GlyphImage{
		Mask:    mask,
		Bounds:  image.Rect(g.leftBearing, -g.height, g.leftBearing+g.width, 0),
		Advance: fixed.I(g.advance),
	}, nil
}

// measureLayout runs the metrics pass and the layout for src.
func measureLayout(src GlyphSource, cs CharacterSet, maxRowWidth int) (Layout, error) {
	metrics, err := Measure(src, cs)
	if err != nil {
		return Layout{}, err
	}
	return ComputeLayout(metrics, maxRowWidth)
}
