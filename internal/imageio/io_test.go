package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	img.SetNRGBA(3, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{"tiff", FormatTIFF, false},
		{"jpeg", FormatPNG, true},
		{"", FormatPNG, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnsupportedFormat", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatExt(t *testing.T) {
	if FormatPNG.Ext() != ".png" || FormatBMP.Ext() != ".bmp" || FormatTIFF.Ext() != ".tiff" {
		t.Errorf("unexpected extensions: %s %s %s", FormatPNG.Ext(), FormatBMP.Ext(), FormatTIFF.Ext())
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	src := testImage()

	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		FormatPNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		FormatBMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		FormatTIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}

	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := decode(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Bounds() != src.Bounds() {
				t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
			}
			// Fully opaque pixel survives every container unchanged.
			r, g, b, a := got.At(3, 2).RGBA()
			if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 || a>>8 != 255 {
				t.Errorf("pixel (3,2) = (%d,%d,%d,%d), want opaque white", r>>8, g>>8, b>>8, a>>8)
			}
			if f == FormatBMP {
				return
			}
			if _, _, _, a := got.At(0, 0).RGBA(); a != 0 {
				t.Errorf("pixel (0,0) alpha = %d, want 0", a)
			}
		})
	}
}

func TestEncode_EmptyImage(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 0, 0)), FormatPNG)
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Encode(empty) error = %v, want ErrEmptyImage", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.png")

	if err := WriteFile(path, testImage(), FormatPNG); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", img.Bounds())
	}
}

func TestWriteFile_RemovesOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.png")

	err := WriteFile(path, image.NewNRGBA(image.Rect(0, 0, 0, 0)), FormatPNG)
	if err == nil {
		t.Fatal("WriteFile(empty) should fail")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("partial file left behind: %v", statErr)
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "atlas.png")
	if err := WriteFile(path, testImage(), FormatPNG); err == nil {
		t.Error("WriteFile into missing directory should fail")
	}
}
