package atlas

import (
	"image"
	"iter"
)

// Placement records where a character's bitmap sits in the atlas.
type Placement struct {
	Char rune

	// X and Y are the top-left pixel of the bitmap in the canvas.
	X, Y int

	// Width and Height are the bitmap dimensions; zero for spaces and
	// unresolved characters.
	Width, Height int

	// Advance is the horizontal advance in whole pixels.
	Advance int
}

// Rect returns the pixel rectangle covered by the placement.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// Placements is an insertion-ordered set of placements keyed by character.
// Iteration follows CharacterSet order, which keeps serialized output
// deterministic.
type Placements struct {
	list  []Placement
	index map[rune]int
}

// NewPlacements creates an empty table with room for n placements.
func NewPlacements(n int) *Placements {
	return &Placements{
		list:  make([]Placement, 0, n),
		index: make(map[rune]int, n),
	}
}

// Add appends p. It returns ErrDuplicateChar if p.Char is already placed.
func (t *Placements) Add(p Placement) error {
	if _, ok := t.index[p.Char]; ok {
		return &CharError{Char: p.Char, Err: ErrDuplicateChar}
	}
	t.index[p.Char] = len(t.list)
	t.list = append(t.list, p)
	return nil
}

// Get returns the placement of r.
func (t *Placements) Get(r rune) (Placement, bool) {
	i, ok := t.index[r]
	if !ok {
		return Placement{}, false
	}
	return t.list[i], true
}

// Len returns the number of placements.
func (t *Placements) Len() int {
	return len(t.list)
}

// All returns an iterator over the placements in insertion order.
func (t *Placements) All() iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		for _, p := range t.list {
			if !yield(p) {
				return
			}
		}
	}
}

// Slice returns a copy of the placements in insertion order.
func (t *Placements) Slice() []Placement {
	out := make([]Placement, len(t.list))
	copy(out, t.list)
	return out
}
