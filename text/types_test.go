package text

import "testing"

func TestHintingString(t *testing.T) {
	tests := []struct {
		h    Hinting
		want string
	}{
		{HintingNone, "None"},
		{HintingFull, "Full"},
		{Hinting(7), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hinting(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestGlyphIDString(t *testing.T) {
	if got := GlyphID(42).String(); got != "42" {
		t.Errorf("GlyphID(42).String() = %q, want %q", got, "42")
	}
}

func TestGlyphErrorUnwrap(t *testing.T) {
	err := &GlyphError{GID: 3, Err: ErrSourceClosed}
	if err.Error() != "text: glyph 3: text: font source is closed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Unwrap() != ErrSourceClosed {
		t.Error("Unwrap() should return the wrapped error")
	}
}

func TestParsersRegistered(t *testing.T) {
	names := Parsers()
	if len(names) < 2 || names[0] != "gotext" || names[1] != "ximage" {
		t.Errorf("Parsers() = %v, want [gotext ximage ...]", names)
	}
}
