package text

// DefaultDPI is the resolution used to convert points to pixels.
// At 96 DPI a 12pt face renders at 16 pixels per em.
const DefaultDPI = 96

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName, // Default parser (ximage)
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/sfnt.
// "gotext" selects github.com/go-text/typesetting.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	hinting Hinting
	dpi     float64
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting: HintingFull,
		dpi:     DefaultDPI,
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithDPI sets the resolution used to convert the face size to pixels.
// Non-positive values keep the default.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}
