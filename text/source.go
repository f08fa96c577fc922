package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across exports.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// parsed is nil after Close.
	parsed ParsedFont

	// Metadata, NFC-normalized
	family string
	style  string

	// mu protects parsed
	mu sync.RWMutex

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to select the parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	// Apply options first to get parser name
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Parsers may keep references into the buffer, so hand them a copy.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}
	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		parsed: parsed,
		family: norm.NFC.String(parsed.FamilyName()),
		style:  norm.NFC.String(parsed.StyleName()),
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a glyph source bound to size (in points).
// Each export should create its own Face: a Face is not safe for
// concurrent use, while the FontSource it reads from is.
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	if size <= 0 {
		return nil, ErrInvalidSize
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return newFace(s, size, config), nil
}

// FamilyName returns the font family name, e.g. "Go".
func (s *FontSource) FamilyName() string {
	s.copyCheck()
	return s.family
}

// StyleName returns the font style (subfamily) name, e.g. "Regular".
func (s *FontSource) StyleName() string {
	s.copyCheck()
	return s.style
}

// Name returns the display name of the font: family and style joined by a dot.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.family + "." + s.style
}

// ParserName returns the name of the parser backend requested for this source.
func (s *FontSource) ParserName() string {
	s.copyCheck()
	return s.config.parserName
}

// Parsed returns the parsed font, or nil once the source is closed.
// This is primarily used by Face implementations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Close releases resources associated with the FontSource.
// All faces created from this source fail with ErrSourceClosed afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.parsed = nil

	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
