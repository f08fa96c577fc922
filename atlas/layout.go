package atlas

// MaxRowWidth is the default maximum canvas width in pixels.
const MaxRowWidth = 512

// Estimate is the row-count estimate of the canvas size, computed from
// the sum of all advances.
type Estimate struct {
	// TotalWidth is the sum of all advances.
	TotalWidth int

	// CellHeight is the tallest bitmap height, the height of every row.
	CellHeight int

	// NumOverlaps is how many times TotalWidth exceeds the row width
	// (TotalWidth / maxRowWidth), zero for single-row atlases.
	NumOverlaps int

	// Width and Height are the estimated canvas dimensions.
	Width, Height int
}

// EstimateSize computes the canvas size estimate for metrics.
//
// If the advances fit within maxRowWidth the atlas is a single row of
// TotalWidth x CellHeight. Otherwise it is maxRowWidth wide and
// (TotalWidth/maxRowWidth + 1) rows high. The estimate ignores where rows
// actually wrap and may be too small; see ComputeLayout.
func EstimateSize(metrics []GlyphMetrics, maxRowWidth int) Estimate {
	var e Estimate
	for _, m := range metrics {
		e.TotalWidth += m.Advance
		e.CellHeight = max(e.CellHeight, m.Height)
	}

	if e.TotalWidth <= maxRowWidth {
		e.Width = e.TotalWidth
		e.Height = e.CellHeight
		return e
	}

	e.NumOverlaps = e.TotalWidth / maxRowWidth
	e.Width = maxRowWidth
	e.Height = (e.NumOverlaps + 1) * e.CellHeight
	return e
}

// Layout is the canvas geometry of one atlas.
type Layout struct {
	// Width and Height are the canvas dimensions to allocate.
	Width, Height int

	// CellHeight is the height of every row.
	CellHeight int

	// Rows is the number of rows the render pass will use.
	Rows int

	// Estimate is the size estimate the layout started from.
	Estimate Estimate

	// Grown reports whether the height had to exceed the estimate.
	Grown bool

	// UsedArea is the total bitmap area the render pass will place.
	UsedArea int

	// Metrics are the per-character metrics, in CharacterSet order.
	Metrics []GlyphMetrics
}

// ComputeLayout sizes the canvas for metrics.
//
// The width and the starting height come from EstimateSize. The exact wrap
// rule is then replayed with a Shelf; if the rows it produces do not fit in
// the estimated height, the height grows to fit them. Rendering with the
// returned layout therefore never runs past the bottom of the canvas.
func ComputeLayout(metrics []GlyphMetrics, maxRowWidth int) (Layout, error) {
	if maxRowWidth <= 0 {
		return Layout{}, &ConfigError{Field: "MaxRowWidth", Reason: "must be positive"}
	}

	est := EstimateSize(metrics, maxRowWidth)
	shelf := plan(metrics, est.Width, est.CellHeight)

	l := Layout{
		Width:      est.Width,
		Height:     est.Height,
		CellHeight: est.CellHeight,
		Rows:       shelf.Rows(),
		Estimate:   est,
		UsedArea:   shelf.UsedArea(),
		Metrics:    metrics,
	}
	if need := shelf.UsedHeight(); need > l.Height {
		l.Height = need
		l.Grown = true
	}
	return l, nil
}

// Utilization returns the fraction of the canvas covered by glyph bitmaps
// (0.0 to 1.0). Overhanging neighbours are counted twice, so a crowded
// atlas may report slightly more than it covers.
func (l Layout) Utilization() float64 {
	area := l.Width * l.Height
	if area <= 0 {
		return 0
	}
	return min(float64(l.UsedArea)/float64(area), 1)
}

// plan replays the render pass's pen movement without drawing.
func plan(metrics []GlyphMetrics, width, cellHeight int) *Shelf {
	shelf := NewShelf(width, cellHeight)
	for _, m := range metrics {
		switch {
		case isSpace(m.Char):
			shelf.Skip(m.Advance)
		case !m.Resolved:
			// Zero-size placement at the pen; nothing moves.
		default:
			shelf.Place(m)
		}
	}
	return shelf
}
