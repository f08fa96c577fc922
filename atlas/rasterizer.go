package atlas

import (
	"log/slog"
)

// Rasterizer runs the render pass of an atlas export.
// A Rasterizer is bound to one GlyphSource and is not safe for concurrent
// use when the source is not.
type Rasterizer struct {
	src    GlyphSource
	logger *slog.Logger
}

// RasterizerOption configures a Rasterizer.
type RasterizerOption func(*Rasterizer)

// WithLogger sets the logger for render diagnostics.
// By default nothing is logged.
func WithLogger(l *slog.Logger) RasterizerOption {
	return func(r *Rasterizer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRasterizer creates a Rasterizer reading glyphs from src.
func NewRasterizer(src GlyphSource, opts ...RasterizerOption) *Rasterizer {
	r := &Rasterizer{
		src:    src,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws every character of cs into a new canvas sized by layout and
// returns the canvas with the placements, both in CharacterSet order.
//
// Per character:
//   - a space records an advance-only placement and moves the pen;
//   - a character without a glyph records an all-zero placement;
//   - any other glyph may wrap to a new row (see Shelf.Place), is copied
//     to the canvas at the pen and moves the pen by its advance.
//
// Each glyph is loaded again and must match the metrics the layout was
// computed from, otherwise ErrInconsistentMetrics is returned.
func (r *Rasterizer) Render(cs CharacterSet, layout Layout) (*Canvas, *Placements, error) {
	if len(cs) != len(layout.Metrics) {
		return nil, nil, ErrLengthMismatch
	}

	canvas := NewCanvas(layout.Width, layout.Height)
	placements := NewPlacements(len(cs))
	shelf := NewShelf(layout.Width, layout.CellHeight)

	for i, ch := range cs {
		g, ok, err := loadGlyph(r.src, ch)
		if err != nil {
			return nil, nil, err
		}

		if !ok {
			r.logger.Debug("atlas: no glyph for character", "char", string(ch), "code", int(ch))
			if err := placements.Add(Placement{Char: ch}); err != nil {
				return nil, nil, err
			}
			continue
		}

		m := metricsOf(ch, &g)
		if m != layout.Metrics[i] {
			return nil, nil, &CharError{Char: ch, Err: ErrInconsistentMetrics}
		}

		if isSpace(ch) {
			// Advance only: nothing is drawn and the pen never wraps here.
			if err := placements.Add(Placement{Char: ch, Advance: m.Advance}); err != nil {
				return nil, nil, err
			}
			shelf.Skip(m.Advance)
			continue
		}

		wrapped := shelf.Wraps(m)
		x, y := shelf.Place(m)
		if wrapped {
			r.logger.Debug("atlas: row wrap", "char", string(ch), "y", y)
		}
		if y+m.Height > canvas.Height() {
			return nil, nil, &CharError{Char: ch, Err: ErrCanvasOverflow}
		}
		if x+m.Width > canvas.Width() {
			r.logger.Debug("atlas: glyph clipped at right edge",
				"char", string(ch), "x", x, "width", m.Width, "canvas_width", canvas.Width())
		}

		canvas.Blit(g.Mask, x, y)

		p := Placement{
			Char:    ch,
			X:       x,
			Y:       y,
			Width:   m.Width,
			Height:  m.Height,
			Advance: m.Advance,
		}
		if err := placements.Add(p); err != nil {
			return nil, nil, err
		}
	}

	return canvas, placements, nil
}
