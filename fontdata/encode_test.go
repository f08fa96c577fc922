package fontdata

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	f := &Font{
		Name: "Go.Regular",
		Size: 16,
		Characters: []Char{
			{Char: ' ', AdvanceWidth: 4},
			{Char: 'A', AdvanceWidth: 10, ImageX: 4, ImageY: 0, ImageWidth: 9, ImageHeight: 12},
		},
	}

	want := "return {\n" +
		"\tName = \"Go.Regular\";\n" +
		"\tSize = 16;\n" +
		"\tCharacters = {\n" +
		"\t\t{ Char = ' '; AdvanceWidth = 4; ImageX = 0; ImageY = 0; ImageWidth = 0; ImageHeight = 0; };\n" +
		"\t\t{ Char = 'A'; AdvanceWidth = 10; ImageX = 4; ImageY = 0; ImageWidth = 9; ImageHeight = 12; };\n" +
		"\t}\n" +
		"}\n"

	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.String() != want {
		t.Errorf("Encode output mismatch\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
	if f.String() != want {
		t.Error("String() differs from Encode output")
	}
}

func TestEncode_Empty(t *testing.T) {
	f := &Font{Name: "X.Y", Size: 1}
	want := "return {\n\tName = \"X.Y\";\n\tSize = 1;\n\tCharacters = {\n\t}\n}\n"
	if got := f.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestQuoteChar(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'a', `'a'`},
		{' ', `' '`},
		{'"', `'"'`},
		{'\'', `'\''`},
		{'\\', `'\\'`},
		{'\n', `'\10'`},
		{0x7f, `'\127'`},
		{'é', `'é'`},
	}

	for _, tt := range tests {
		if got := QuoteChar(tt.r); got != tt.want {
			t.Errorf("QuoteChar(%q) = %s, want %s", tt.r, got, tt.want)
		}
	}
}

func TestEncode_EscapedRecords(t *testing.T) {
	f := &Font{
		Name: "A.B",
		Size: 8,
		Characters: []Char{
			{Char: '\''},
			{Char: '\\'},
		},
	}
	out := f.String()
	for _, want := range []string{`Char = '\'';`, `Char = '\\';`} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %s:\n%s", want, out)
		}
	}
}

func TestEncode_EscapesName(t *testing.T) {
	f := &Font{Name: `My "Font".Bold\Italic`, Size: 8}
	if !strings.Contains(f.String(), `Name = "My \"Font\".Bold\\Italic";`) {
		t.Errorf("name not escaped:\n%s", f.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

var errWrite = bytes.ErrTooLarge

func TestEncode_WriteError(t *testing.T) {
	if err := Encode(failWriter{}, &Font{}); err != errWrite {
		t.Errorf("Encode error = %v, want %v", err, errWrite)
	}
}
