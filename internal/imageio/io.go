// Package imageio encodes atlas canvases to image files.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyImage is returned when the image has zero width or height.
	ErrEmptyImage = errors.New("imageio: empty image")
)

// Format is an output image container.
type Format int

const (
	// FormatPNG writes lossless PNG. It is the default.
	FormatPNG Format = iota

	// FormatBMP writes 32-bit BMP with alpha.
	FormatBMP

	// FormatTIFF writes uncompressed TIFF.
	FormatTIFF
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// Ext returns the file extension including the leading dot.
func (f Format) Ext() string {
	switch f {
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tiff"
	default:
		return ".png"
	}
}

// ParseFormat maps a format name or file extension to a Format.
// The match is case-insensitive and a leading dot is ignored.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return FormatPNG, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ErrEmptyImage
	}

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f))
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}

// WriteFile encodes img into the file at path, creating or truncating it.
// A partially written file is removed on failure.
func WriteFile(path string, img image.Image, f Format) error {
	path = filepath.Clean(path)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(file, img, f); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("imageio: close file: %w", err)
	}
	return nil
}
