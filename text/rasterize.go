package text

import (
	"image"
	"image/draw"

	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// rasterizeOutline renders an outline with its origin at (0, 0) to a fresh
// coverage mask. It returns the integer-pixel bounds of the mask relative to
// the origin.
//
// The quantization follows golang.org/x/image/font/opentype: the sub-pixel
// bounds are floored/ceiled to whole pixels and the outline is biased so
// that the rasterizer only sees coordinates inside [0, width] x [0, height].
func rasterizeOutline(z *vector.Rasterizer, outline Outline) (image.Rectangle, *image.Alpha) {
	if len(outline) == 0 {
		return image.Rectangle{}, image.NewAlpha(image.Rectangle{})
	}

	b := outline.Bounds()
	dr := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	width, height := dr.Dx(), dr.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return dr, mask
	}

	biasX := -fixed.Int26_6(dr.Min.X << 6)
	biasY := -fixed.Int26_6(dr.Min.Y << 6)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X+biasX) / 64, float32(p.Y+biasY) / 64
	}

	z.Reset(width, height)
	z.DrawOp = draw.Src
	for i, seg := range outline {
		switch seg.Op {
		case OutlineOpMoveTo:
			if i > 0 {
				z.ClosePath()
			}
			z.MoveTo(pt(seg.Points[0]))
		case OutlineOpLineTo:
			z.LineTo(pt(seg.Points[0]))
		case OutlineOpQuadTo:
			bx, by := pt(seg.Points[0])
			cx, cy := pt(seg.Points[1])
			z.QuadTo(bx, by, cx, cy)
		case OutlineOpCubicTo:
			bx, by := pt(seg.Points[0])
			cx, cy := pt(seg.Points[1])
			dx, dy := pt(seg.Points[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return dr, mask
}
