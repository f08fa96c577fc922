package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas package.
var (
	// ErrCanvasOverflow is returned when a glyph row would fall below the
	// bottom of the canvas.
	ErrCanvasOverflow = errors.New("atlas: glyph row exceeds canvas height")

	// ErrDuplicateChar is returned when a character is placed twice.
	ErrDuplicateChar = errors.New("atlas: duplicate character")

	// ErrInconsistentMetrics is returned when the render pass loads a glyph
	// whose metrics differ from the measure pass.
	ErrInconsistentMetrics = errors.New("atlas: glyph metrics changed between passes")

	// ErrLengthMismatch is returned when metrics and characters have different lengths.
	ErrLengthMismatch = errors.New("atlas: metrics and characters must have same length")
)

// ConfigError represents a layout configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}

// CharError wraps an error with the character that caused it.
type CharError struct {
	Char rune
	Err  error
}

func (e *CharError) Error() string {
	return fmt.Sprintf("atlas: character %q: %v", e.Char, e.Err)
}

func (e *CharError) Unwrap() error {
	return e.Err
}
