package glyphatlas

import (
	"bufio"
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/gogpu/glyphatlas/fontdata"
	"github.com/gogpu/glyphatlas/internal/imageio"
)

// Files are the paths written for one export.
type Files struct {
	Image string
	Data  string
}

// WriteFiles writes the atlas image and the Lua metadata into dir.
//
// Image encoders cannot store a zero-area image, so an empty atlas is
// written as a single transparent pixel. The in-memory canvas is unchanged.
func (r *Result) WriteFiles(dir string) (Files, error) {
	files := Files{
		Image: filepath.Join(dir, r.ImageFileName()),
		Data:  filepath.Join(dir, r.DataFileName()),
	}

	var img image.Image = r.Canvas.Image()
	if r.Canvas.Width() == 0 || r.Canvas.Height() == 0 {
		Logger().Warn("glyphatlas: empty atlas written as 1x1 transparent image",
			"file", files.Image,
			"width", r.Canvas.Width(),
			"height", r.Canvas.Height())
		img = image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	if err := imageio.WriteFile(files.Image, img, r.format); err != nil {
		return Files{}, errors.Wrapf(err, "glyphatlas: write atlas %s", files.Image)
	}
	if err := writeData(files.Data, r.Font); err != nil {
		return Files{}, errors.Wrapf(err, "glyphatlas: write metadata %s", files.Data)
	}

	Logger().Info("glyphatlas: export written", "image", files.Image, "data", files.Data)
	return files, nil
}

// writeData encodes f into the file at path.
func writeData(path string, f *fontdata.Font) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(file)
	if err := fontdata.Encode(w, f); err != nil {
		_ = file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Verify reads back the metadata file written for r and checks that it
// decodes to r.Font.
func (r *Result) Verify(dir string) error {
	path := filepath.Join(dir, r.DataFileName())
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return errors.Wrapf(err, "glyphatlas: verify %s", path)
	}
	defer func() { _ = file.Close() }()

	got, err := fontdata.Decode(file)
	if err != nil {
		return errors.Wrapf(err, "glyphatlas: verify %s", path)
	}
	if !got.Equal(r.Font) {
		return errors.Wrapf(ErrMetadataMismatch, "glyphatlas: verify %s", path)
	}
	return nil
}
