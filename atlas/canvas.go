package atlas

import "image"

// Canvas is the atlas pixel buffer: 4 bytes per pixel, non-premultiplied
// R, G, B, A. A new canvas is fully transparent.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas allocates a transparent width x height canvas.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the underlying image for encoding.
// Callers must not keep it past the lifetime of the export.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Pix returns the raw pixel bytes.
func (c *Canvas) Pix() []byte {
	return c.img.Pix
}

// Blit composites a coverage mask into the canvas with its top-left corner
// at (x, y). Every channel of a destination pixel, alpha included, becomes
// the larger of its current value and the coverage value, so a bitmap that
// overhangs its advance never erases a neighbour's pixels. Writes outside
// the canvas are clipped.
func (c *Canvas) Blit(mask *image.Alpha, x, y int) {
	if mask == nil {
		return
	}
	mb := mask.Bounds()
	dst := c.img
	for my := mb.Min.Y; my < mb.Max.Y; my++ {
		dy := y + my - mb.Min.Y
		if dy < 0 || dy >= dst.Rect.Max.Y {
			continue
		}
		for mx := mb.Min.X; mx < mb.Max.X; mx++ {
			dx := x + mx - mb.Min.X
			if dx < 0 || dx >= dst.Rect.Max.X {
				continue
			}
			v := mask.Pix[mask.PixOffset(mx, my)]
			if v == 0 {
				continue
			}
			px := dst.Pix[dst.PixOffset(dx, dy):][:4:4]
			for i := range px {
				px[i] = max(px[i], v)
			}
		}
	}
}
