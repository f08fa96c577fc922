package atlas

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// CharacterSet is the ordered sequence of characters exported to an atlas.
// Placement order follows the sequence, so the same set always yields the
// same layout.
type CharacterSet []rune

// PrintableASCII returns the default character set: the code points 32
// (space) up to and including 125 ('}').
func PrintableASCII() CharacterSet {
	cs := make(CharacterSet, 0, 126-32)
	for r := rune(32); r < 126; r++ {
		cs = append(cs, r)
	}
	return cs
}

// ParseCharacterSet parses a comma separated list of code points and
// inclusive ranges, e.g. "32-125,0xA0-0xFF". Numbers use Go literal syntax,
// so decimal, 0x hex and 0o octal all work. The result is sorted in code
// point order without duplicates.
func ParseCharacterSet(s string) (CharacterSet, error) {
	var runes []rune
	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		lo, hi, found := strings.Cut(item, "-")
		first, err := parseCodePoint(lo)
		if err != nil {
			return nil, err
		}
		last := first
		if found {
			if last, err = parseCodePoint(hi); err != nil {
				return nil, err
			}
		}
		if last < first {
			return nil, fmt.Errorf("atlas: invalid character range %q", item)
		}
		for r := first; r <= last; r++ {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return nil, fmt.Errorf("atlas: empty character set %q", s)
	}

	var cs CharacterSet
	rangetable.Visit(rangetable.New(runes...), func(r rune) {
		cs = append(cs, r)
	})
	return cs, nil
}

// parseCodePoint parses a single code point.
func parseCodePoint(s string) (rune, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("atlas: invalid code point %q: %w", s, err)
	}
	r := rune(n)
	if r < 0 || r > unicode.MaxRune || !utf8.ValidRune(r) {
		return 0, fmt.Errorf("atlas: code point %q out of range", s)
	}
	return r, nil
}

// String returns the characters as a string.
func (cs CharacterSet) String() string {
	return string(cs)
}
