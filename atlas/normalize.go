package atlas

// bytesPerPixel is the canvas pixel size; the alpha byte is last.
const bytesPerPixel = 4

// Normalize makes the canvas coverage-only: every non-zero color channel
// is set to 255 and alpha is left untouched. The renderer tints the atlas
// with an arbitrary color at draw time, so only alpha may carry coverage.
//
// Every pixel is visited exactly once, row by row, so sub-image strides
// are honored.
func Normalize(c *Canvas) {
	img := c.img
	rowBytes := img.Rect.Dx() * bytesPerPixel
	for y := 0; y < img.Rect.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+rowBytes]
		for i := 0; i < len(row); i += bytesPerPixel {
			// Skip the alpha at i+3.
			for ch := i; ch < i+3; ch++ {
				if row[ch] > 0 {
					row[ch] = 0xff
				}
			}
		}
	}
}
