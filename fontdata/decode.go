package fontdata

import (
	"fmt"
	"io"
	"unicode/utf8"

	lua "github.com/KaijuEngine/go-lua"
)

// Decode reads a Lua chunk produced by Encode.
//
// The chunk runs in a fresh Lua state without standard libraries, so
// metadata files cannot reach the file system or the process.
func Decode(r io.Reader) (*Font, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fontdata: read: %w", err)
	}
	return DecodeString(string(src))
}

// DecodeString is like Decode but reads from a string.
func DecodeString(src string) (*Font, error) {
	l := lua.NewState()
	if err := lua.LoadString(l, src); err != nil {
		return nil, fmt.Errorf("fontdata: load chunk: %w", err)
	}
	if err := l.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("fontdata: run chunk: %w", err)
	}
	if !l.IsTable(-1) {
		return nil, ErrNotTable
	}

	f := &Font{}
	var ok bool
	if f.Name, ok = stringField(l, "Name"); !ok {
		return nil, &FieldError{Field: "Name", Reason: "want string"}
	}
	if f.Size, ok = intField(l, "Size"); !ok {
		return nil, &FieldError{Field: "Size", Reason: "want number"}
	}

	l.Field(-1, "Characters")
	defer l.Pop(1)
	if !l.IsTable(-1) {
		return nil, &FieldError{Field: "Characters", Reason: "want table"}
	}

	n := l.RawLength(-1)
	f.Characters = make([]Char, 0, n)
	seen := make(map[rune]bool, n)
	for i := 1; i <= n; i++ {
		l.RawGetInt(-1, i)
		c, err := readChar(l, i)
		l.Pop(1)
		if err != nil {
			return nil, err
		}
		if seen[c.Char] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateChar, c.Char)
		}
		seen[c.Char] = true
		f.Characters = append(f.Characters, c)
	}
	return f, nil
}

// readChar reads the character record on top of the stack.
func readChar(l *lua.State, record int) (Char, error) {
	if !l.IsTable(-1) {
		return Char{}, &FieldError{Record: record, Field: "(record)", Reason: "want table"}
	}

	var c Char
	s, ok := stringField(l, "Char")
	if !ok {
		return Char{}, &FieldError{Record: record, Field: "Char", Reason: "want string"}
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return Char{}, &FieldError{Record: record, Field: "Char", Reason: "want exactly one character"}
	}
	c.Char = r

	for _, fld := range []struct {
		name string
		dst  *int
	}{
		{"AdvanceWidth", &c.AdvanceWidth},
		{"ImageX", &c.ImageX},
		{"ImageY", &c.ImageY},
		{"ImageWidth", &c.ImageWidth},
		{"ImageHeight", &c.ImageHeight},
	} {
		v, ok := intField(l, fld.name)
		if !ok {
			return Char{}, &FieldError{Record: record, Field: fld.name, Reason: "want number"}
		}
		*fld.dst = v
	}
	return c, nil
}

// stringField reads t[name] from the table on top of the stack.
func stringField(l *lua.State, name string) (string, bool) {
	l.Field(-1, name)
	defer l.Pop(1)
	if l.TypeOf(-1) != lua.TypeString {
		return "", false
	}
	return l.ToString(-1)
}

// intField reads the number t[name] from the table on top of the stack.
func intField(l *lua.State, name string) (int, bool) {
	l.Field(-1, name)
	defer l.Pop(1)
	if l.TypeOf(-1) != lua.TypeNumber {
		return 0, false
	}
	return l.ToInteger(-1)
}
