package fontdata

import (
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Encode writes f as a Lua chunk to w.
func Encode(w io.Writer, f *Font) error {
	var b bytes.Buffer
	b.WriteString("return {\n")
	b.WriteString("\tName = \"" + escapeName(f.Name) + "\";\n")
	b.WriteString("\tSize = " + itoa(f.Size) + ";\n")
	b.WriteString("\tCharacters = {\n")
	for _, c := range f.Characters {
		b.WriteString("\t\t{ Char = " + QuoteChar(c.Char) + "; ")
		b.WriteString("AdvanceWidth = " + itoa(c.AdvanceWidth) + "; ")
		b.WriteString("ImageX = " + itoa(c.ImageX) + "; ")
		b.WriteString("ImageY = " + itoa(c.ImageY) + "; ")
		b.WriteString("ImageWidth = " + itoa(c.ImageWidth) + "; ")
		b.WriteString("ImageHeight = " + itoa(c.ImageHeight) + "; ")
		b.WriteString("};\n")
	}
	b.WriteString("\t}\n")
	b.WriteString("}\n")

	_, err := w.Write(b.Bytes())
	return err
}

// String returns the Lua chunk for f.
func (f *Font) String() string {
	var sb strings.Builder
	_ = Encode(&sb, f)
	return sb.String()
}

// QuoteChar returns r as a single-quoted Lua string literal.
// A quote becomes '\'' and a backslash '\\'; control characters use
// decimal escapes. Everything else is written literally.
func QuoteChar(r rune) string {
	switch {
	case r == '\'':
		return `'\''`
	case r == '\\':
		return `'\\'`
	case r < 0x20 || r == 0x7f:
		return `'\` + strconv.Itoa(int(r)) + `'`
	default:
		return "'" + string(r) + "'"
	}
}

// escapeName escapes the characters that would end a double-quoted Lua
// string. Ordinary family names pass through unchanged.
func escapeName(s string) string {
	if !strings.ContainsAny(s, "\"\\\n") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return r.Replace(s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
