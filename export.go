package glyphatlas

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/fontdata"
	"github.com/gogpu/glyphatlas/internal/parallel"
	"github.com/gogpu/glyphatlas/text"
)

// Exporter turns fonts into atlas exports.
//
// An Exporter holds only its Config and is safe for concurrent use.
type Exporter struct {
	config Config
}

// NewExporter creates an Exporter from DefaultConfig and opts.
// It returns a *ConfigError if the resulting configuration is invalid.
func NewExporter(opts ...Option) (*Exporter, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Exporter{config: config}, nil
}

// Config returns a copy of the exporter configuration.
func (e *Exporter) Config() Config {
	c := e.config
	c.CharacterSet = append(atlas.CharacterSet(nil), c.CharacterSet...)
	return c
}

// Result is one finished export. The result exclusively owns its canvas.
type Result struct {
	// Family and Style name the font.
	Family string
	Style  string

	// Size is the requested point size.
	Size int

	// Canvas is the normalized atlas image.
	Canvas *atlas.Canvas

	// Layout is the canvas geometry the export was rendered with.
	Layout atlas.Layout

	// Placements are the per-character placements, in character set order.
	Placements *atlas.Placements

	// Font is the metadata written to the Lua file.
	Font *fontdata.Font

	format ImageFormat
}

// BaseName returns the common base name of the output files.
func (r *Result) BaseName() string {
	return BaseName(r.Family, r.Style, r.Size)
}

// ImageFileName returns the file name of the atlas image.
func (r *Result) ImageFileName() string {
	return imageFileName(r.BaseName(), r.format)
}

// DataFileName returns the file name of the Lua metadata.
func (r *Result) DataFileName() string {
	return dataFileName(r.BaseName())
}

// Utilization is the fraction of the canvas covered by glyph bitmaps.
// An empty canvas has zero utilization.
func (r *Result) Utilization() float64 {
	return r.Layout.Utilization()
}

// Export renders src at size points.
// A new face is created for the export and discarded afterwards.
func (e *Exporter) Export(src *text.FontSource, size int) (*Result, error) {
	if size <= 0 {
		return nil, &ExportError{Size: size, Err: ErrInvalidSize}
	}
	if src.Parsed() == nil {
		return nil, &ExportError{Size: size, Err: text.ErrSourceClosed}
	}
	face, err := src.Face(float64(size),
		text.WithDPI(e.config.DPI),
		text.WithHinting(e.config.Hinting),
	)
	if err != nil {
		return nil, &ExportError{Size: size, Err: err}
	}
	return e.ExportGlyphs(face, src.FamilyName(), src.StyleName(), size)
}

// ExportGlyphs renders the configured character set from gs.
// gs must already be bound to size; size is only recorded in the result.
func (e *Exporter) ExportGlyphs(gs atlas.GlyphSource, family, style string, size int) (*Result, error) {
	if size <= 0 {
		return nil, &ExportError{Size: size, Err: ErrInvalidSize}
	}

	log := Logger().With("font", family+"."+style, "size", size)
	cs := e.config.CharacterSet

	metrics, err := atlas.Measure(gs, cs)
	if err != nil {
		return nil, &ExportError{Size: size, Err: err}
	}

	layout, err := atlas.ComputeLayout(metrics, e.config.MaxRowWidth)
	if err != nil {
		return nil, &ExportError{Size: size, Err: err}
	}
	if layout.Grown {
		log.Warn("glyphatlas: row estimate too small, canvas grown",
			"estimated_height", layout.Estimate.Height,
			"height", layout.Height,
			"rows", layout.Rows)
	}

	canvas, placements, err := atlas.NewRasterizer(gs, atlas.WithLogger(log)).Render(cs, layout)
	if err != nil {
		return nil, &ExportError{Size: size, Err: err}
	}
	atlas.Normalize(canvas)

	res := &Result{
		Family:     family,
		Style:      style,
		Size:       size,
		Canvas:     canvas,
		Layout:     layout,
		Placements: placements,
		Font:       buildFont(family+"."+style, size, placements),
		format:     e.config.Format,
	}

	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("glyphatlas: atlas exported",
			"width", canvas.Width(),
			"height", canvas.Height(),
			"rows", layout.Rows,
			"cell_height", layout.CellHeight,
			"utilization", res.Utilization())
	}
	return res, nil
}

// buildFont converts placements to metadata records, keeping their order.
func buildFont(name string, size int, placements *atlas.Placements) *fontdata.Font {
	f := &fontdata.Font{
		Name:       name,
		Size:       size,
		Characters: make([]fontdata.Char, 0, placements.Len()),
	}
	for p := range placements.All() {
		f.Characters = append(f.Characters, fontdata.Char{
			Char:         p.Char,
			AdvanceWidth: p.Advance,
			ImageX:       p.X,
			ImageY:       p.Y,
			ImageWidth:   p.Width,
			ImageHeight:  p.Height,
		})
	}
	return f
}

// ExportAll exports src at every size and, when dir is not empty, writes
// each result into dir.
//
// Results are returned in the order of sizes. A failed size leaves a nil
// entry and does not stop the others; the returned error joins every
// *ExportError. With Config.Workers other than 1 the sizes run on a worker
// pool, each with its own face, and Config.Progress sees every size before
// the first export starts.
func (e *Exporter) ExportAll(src *text.FontSource, sizes []int, dir string) ([]*Result, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}

	results := make([]*Result, len(sizes))
	errs := make([]error, len(sizes))

	progress := e.config.Progress
	if progress == nil {
		progress = func(int) {}
	}

	job := func(i int) {
		res, err := e.Export(src, sizes[i])
		if err == nil && dir != "" {
			if _, werr := res.WriteFiles(dir); werr != nil {
				err = &ExportError{Size: sizes[i], Err: werr}
			}
		}
		if err != nil {
			errs[i] = err
			return
		}
		results[i] = res
	}

	if e.config.Workers == 1 || len(sizes) == 1 {
		for i := range sizes {
			progress(sizes[i])
			job(i)
		}
	} else {
		pool := parallel.NewWorkerPool(e.config.Workers)
		defer pool.Close()

		work := make([]func(), len(sizes))
		for i := range sizes {
			progress(sizes[i])
			work[i] = func() { job(i) }
		}
		pool.ExecuteAll(work)
	}

	return results, errors.Join(errs...)
}
