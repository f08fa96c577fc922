package atlas

// Shelf tracks the pen of a row-wrapping shelf packer.
//
// Rows ("shelves") have a fixed height, the tallest bitmap of the whole
// character set. Glyphs are placed left to right on the current row; when a
// glyph does not fit, the pen moves to the start of the next row. The same
// Shelf type drives both the layout dry run and the render pass, so the
// canvas size and the final positions can never disagree.
type Shelf struct {
	width      int // Row width limit (canvas width)
	cellHeight int // Height of every row

	penX, penY int
	rows       int // Rows touched by a placed glyph

	usedArea int // Bitmap area placed so far
}

// NewShelf creates a packer for rows of the given width and cell height.
func NewShelf(width, cellHeight int) *Shelf {
	return &Shelf{
		width:      width,
		cellHeight: cellHeight,
	}
}

// Skip moves the pen right by advance without placing anything and without
// checking for a wrap. Spaces and other advance-only characters use Skip.
func (s *Shelf) Skip(advance int) {
	s.penX += advance
}

// Place returns the top-left position for a glyph and advances the pen.
//
// A new row is started when penX + advance + leftBearing exceeds the row
// width. The left bearing term can trigger the wrap before the bitmap would
// literally overflow; it is kept as is for layout compatibility.
func (s *Shelf) Place(m GlyphMetrics) (x, y int) {
	if s.Wraps(m) {
		s.penX = 0
		s.penY += s.cellHeight
	}
	x, y = s.penX, s.penY
	s.penX += m.Advance
	s.usedArea += m.Width * m.Height
	if row := y/max(s.cellHeight, 1) + 1; row > s.rows {
		s.rows = row
	}
	return x, y
}

// Wraps reports whether placing m would start a new row.
func (s *Shelf) Wraps(m GlyphMetrics) bool {
	return s.penX+m.Advance+m.LeftBearing > s.width
}

// Rows returns the number of rows that received at least one glyph.
func (s *Shelf) Rows() int {
	return s.rows
}

// UsedHeight returns the canvas height needed by the glyphs placed so far.
func (s *Shelf) UsedHeight() int {
	return s.rows * s.cellHeight
}

// UsedArea returns the total bitmap area placed so far.
func (s *Shelf) UsedArea() int {
	return s.usedArea
}
