package glyphatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the export driver.
var (
	// ErrInvalidSize is returned when an export is requested for a
	// non-positive point size.
	ErrInvalidSize = errors.New("glyphatlas: size must be positive")

	// ErrNoSizes is returned by ExportAll when no sizes are requested.
	ErrNoSizes = errors.New("glyphatlas: no sizes requested")

	// ErrMetadataMismatch is returned by Verify when the metadata read back
	// from disk differs from the exported metadata.
	ErrMetadataMismatch = errors.New("glyphatlas: metadata read back differs")
)

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("glyphatlas: invalid config %s: %s", e.Field, e.Reason)
}

// ExportError is the failure of the export of one size.
type ExportError struct {
	Size int
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("glyphatlas: export %dpt: %v", e.Size, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
