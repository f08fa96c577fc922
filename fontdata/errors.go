package fontdata

import "errors"

// Sentinel errors for fontdata package.
var (
	// ErrNotTable is returned when the chunk does not return the expected table.
	ErrNotTable = errors.New("fontdata: chunk did not return a table")

	// ErrDuplicateChar is returned when a character has more than one record.
	ErrDuplicateChar = errors.New("fontdata: duplicate character record")
)

// FieldError reports a missing or mistyped field.
type FieldError struct {
	// Record is the 1-based index in Characters, or 0 for top-level fields.
	Record int
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Record == 0 {
		return "fontdata: field " + e.Field + ": " + e.Reason
	}
	return "fontdata: Characters[" + itoa(e.Record) + "]." + e.Field + ": " + e.Reason
}
