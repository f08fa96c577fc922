package fontdata

import "slices"

// Font is the metadata of one (font, size) export.
type Font struct {
	// Name is the display name of the font, family and style joined by a dot.
	Name string

	// Size is the requested point size.
	Size int

	// Characters are the per-character records, in export order.
	Characters []Char
}

// Char is the atlas record of a single character.
type Char struct {
	Char         rune
	AdvanceWidth int
	ImageX       int
	ImageY       int
	ImageWidth   int
	ImageHeight  int
}

// Lookup returns the record for r.
func (f *Font) Lookup(r rune) (Char, bool) {
	for _, c := range f.Characters {
		if c.Char == r {
			return c, true
		}
	}
	return Char{}, false
}

// Equal reports whether f and g describe the same export.
func (f *Font) Equal(g *Font) bool {
	if f == nil || g == nil {
		return f == g
	}
	return f.Name == g.Name && f.Size == g.Size && slices.Equal(f.Characters, g.Characters)
}
