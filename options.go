package glyphatlas

import (
	"fmt"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/internal/imageio"
	"github.com/gogpu/glyphatlas/text"
)

// ImageFormat selects the atlas image container.
type ImageFormat = imageio.Format

// Supported atlas image formats.
const (
	FormatPNG  = imageio.FormatPNG
	FormatBMP  = imageio.FormatBMP
	FormatTIFF = imageio.FormatTIFF
)

// ParseImageFormat maps "png", "bmp" or "tiff" to an ImageFormat.
func ParseImageFormat(s string) (ImageFormat, error) {
	return imageio.ParseFormat(s)
}

// Config holds the settings shared by every export of an Exporter.
type Config struct {
	// MaxRowWidth is the widest the atlas may be, in pixels.
	// Default: atlas.MaxRowWidth (512).
	MaxRowWidth int

	// DPI converts point sizes to pixels. Default: text.DefaultDPI (96).
	DPI float64

	// Hinting is the single hinting toggle. Default: text.HintingFull.
	Hinting text.Hinting

	// CharacterSet lists the exported characters in atlas order.
	// Default: atlas.PrintableASCII().
	CharacterSet atlas.CharacterSet

	// Format is the atlas image format. Default: FormatPNG.
	Format ImageFormat

	// Workers is the number of sizes exported concurrently by ExportAll.
	// 1 exports sequentially and 0 uses GOMAXPROCS. Default: 1.
	Workers int

	// Progress, if set, is called by ExportAll with each size before that
	// size is exported. Calls are made in request order from the calling
	// goroutine.
	Progress func(size int)
}

// DefaultConfig returns the configuration of the classic exporter.
func DefaultConfig() Config {
	return Config{
		MaxRowWidth:  atlas.MaxRowWidth,
		DPI:          text.DefaultDPI,
		Hinting:      text.HintingFull,
		CharacterSet: atlas.PrintableASCII(),
		Format:       FormatPNG,
		Workers:      1,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.MaxRowWidth <= 0 {
		return &ConfigError{Field: "MaxRowWidth", Reason: "must be positive"}
	}
	if c.DPI <= 0 {
		return &ConfigError{Field: "DPI", Reason: "must be positive"}
	}
	if c.Hinting != text.HintingNone && c.Hinting != text.HintingFull {
		return &ConfigError{Field: "Hinting", Reason: "must be HintingNone or HintingFull"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must not be negative"}
	}
	switch c.Format {
	case FormatPNG, FormatBMP, FormatTIFF:
	default:
		return &ConfigError{Field: "Format", Reason: "unsupported image format"}
	}
	seen := make(map[rune]struct{}, len(c.CharacterSet))
	for _, r := range c.CharacterSet {
		if _, dup := seen[r]; dup {
			return &ConfigError{Field: "CharacterSet", Reason: fmt.Sprintf("duplicate character %q", r)}
		}
		seen[r] = struct{}{}
	}
	return nil
}

// Option configures an Exporter.
//
// Example:
//
//	e, err := glyphatlas.NewExporter(
//	    glyphatlas.WithMaxRowWidth(1024),
//	    glyphatlas.WithHinting(text.HintingNone),
//	)
type Option func(*Config)

// WithMaxRowWidth sets the maximum atlas width in pixels.
func WithMaxRowWidth(w int) Option {
	return func(c *Config) {
		c.MaxRowWidth = w
	}
}

// WithDPI sets the resolution used to convert point sizes to pixels.
func WithDPI(dpi float64) Option {
	return func(c *Config) {
		c.DPI = dpi
	}
}

// WithHinting sets the hinting mode.
func WithHinting(h text.Hinting) Option {
	return func(c *Config) {
		c.Hinting = h
	}
}

// WithCharacterSet sets the exported characters.
// The set is copied.
func WithCharacterSet(cs atlas.CharacterSet) Option {
	return func(c *Config) {
		c.CharacterSet = append(atlas.CharacterSet(nil), cs...)
	}
}

// WithFormat sets the atlas image format.
func WithFormat(f ImageFormat) Option {
	return func(c *Config) {
		c.Format = f
	}
}

// WithWorkers sets how many sizes ExportAll exports concurrently.
// Zero uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithProgress sets the callback ExportAll reports each size to before
// exporting it.
func WithProgress(fn func(size int)) Option {
	return func(c *Config) {
		c.Progress = fn
	}
}
