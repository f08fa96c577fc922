// Package atlas packs rendered glyphs into a single coverage atlas.
//
// Building an atlas is a fixed sequence of passes over an ordered
// CharacterSet:
//
//  1. Measure loads every glyph once and records its GlyphMetrics.
//  2. ComputeLayout derives the canvas size. It keeps the historical size
//     estimate (row count from total advance / MaxRowWidth) and grows the
//     height when a dry run of the real wrap rule needs more rows.
//  3. Rasterizer.Render re-loads each glyph, wraps rows with a Shelf and
//     blits the coverage into a Canvas, returning the ordered Placements.
//  4. Normalize turns the canvas into white-with-alpha.
//
// The Canvas returned by Render belongs to the caller alone. Each pass
// takes it by pointer and none keeps a reference after returning, so a
// canvas is never shared between exports.
//
// Row wrapping is a shelf packer, not a rectangle packer: glyphs are placed
// left to right in CharacterSet order and a new row of fixed cell height is
// started when
//
//	penX + advance + leftBearing > canvasWidth
//
// Spaces only move the pen and never wrap. Existing consumers depend on this
// exact rule, left bearing included.
package atlas
