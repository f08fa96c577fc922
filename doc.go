// Package glyphatlas exports fonts as packed glyph atlases.
//
// # Overview
//
// An export renders one font at one point size into a single RGBA atlas
// image and a Lua metadata table describing where every character sits in
// the image and how far it advances the pen. Runtime text renderers blit
// sub-rectangles of the atlas using that table.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glyphatlas"
//	    "github.com/gogpu/glyphatlas/text"
//	)
//
//	src, err := text.NewFontSourceFromFile("Go-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	e, err := glyphatlas.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := e.Export(src, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	files, err := res.WriteFiles("out")
//
// # Pipeline
//
// Each export runs the same steps in order:
//   - metrics pass: every character is loaded once (atlas.Measure)
//   - layout: canvas size from the row estimate, grown if the exact wrap
//     plan needs more rows (atlas.ComputeLayout)
//   - render pass: glyph coverage copied to the canvas (atlas.Rasterizer)
//   - normalization: coverage-only white atlas (atlas.Normalize)
//   - metadata: one fontdata.Char per character, in character set order
//
// # Concurrency
//
// A text.FontSource is shared and safe for concurrent use. Every export
// creates its own text.Face bound to one size, so ExportAll can run sizes
// on worker goroutines without sharing a pixel-size setting.
//
// # Output Files
//
// For family "Go", style "Regular" and size 16 the files are
// "GoRegular-16pt.png" and "GoRegular-16pt-data.lua".
package glyphatlas
