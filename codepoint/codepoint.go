// Package codepoint converts between the textual U+XXXX notation used
// throughout the Unihan database and integer code points.
package codepoint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Max is the largest valid Unicode code point.
const Max = 0x10FFFF

// ErrSyntax is returned for strings not in U+XXXX notation.
var ErrSyntax = errors.New("invalid code point notation")

// Codepoint is a Unicode scalar value as it appears in Unihan source files.
type Codepoint uint32

// Parse decodes notation of the form "U+4E00" (4 to 6 hex digits, case-insensitive).
func Parse(s string) (Codepoint, error) {
	if len(s) < 6 || len(s) > 8 || (s[0] != 'U' && s[0] != 'u') || s[1] != '+' {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	n, err := strconv.ParseUint(s[2:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if n > Max {
		return 0, fmt.Errorf("%w: %q out of range", ErrSyntax, s)
	}
	return Codepoint(n), nil
}

// ParseHex decodes a bare hexadecimal code point such as "2F00".
func ParseHex(s string) (Codepoint, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil || s == "" {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if n > Max {
		return 0, fmt.Errorf("%w: %q out of range", ErrSyntax, s)
	}
	return Codepoint(n), nil
}

// MustParse is like Parse but panics on malformed input. Intended for tables and tests.
func MustParse(s string) Codepoint {
	cp, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return cp
}

// String returns the U+XXXX notation with at least four upper-case hex digits.
func (cp Codepoint) String() string {
	return fmt.Sprintf("U+%04X", uint32(cp))
}

// Rune returns cp as a Go rune.
func (cp Codepoint) Rune() rune {
	return rune(cp)
}
