/*
Package radical builds the table of CJK radicals from a radical definition
file (CJKRadicals.txt) in the format

	# comment
	1; 2F00; 4E00
	90'; 2E26; 4E2C

i.e. radical number, radical character, unified ideograph. A trailing
apostrophe on the radical number marks the simplified-script variant.

A line without marker seeds both script variants of its radical number, a
line with marker overwrites the simplified variant only. A later unmarked line
for an already present number overwrites the traditional variant only.
*/
package radical

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/unihan/codepoint"
)

// Script selects one of the two variants of a radical.
type Script int

const (
	Traditional Script = iota // Hant
	Simplified                // Hans
)

func (s Script) String() string {
	if s == Simplified {
		return "Hans"
	}
	return "Hant"
}

// Variant is one script form of a radical.
type Variant struct {
	Number    int
	Radical   codepoint.Codepoint // radical glyph, usually from the Kangxi Radicals block
	Ideograph codepoint.Codepoint // unified ideograph for the radical
}

// Entry carries both script variants of a radical number.
type Entry struct {
	Hans Variant
	Hant Variant
}

// Variant returns the variant for script s.
func (e Entry) Variant(s Script) Variant {
	if s == Simplified {
		return e.Hans
	}
	return e.Hant
}

// Line is one decoded line of the radical definition file.
type Line struct {
	Number    int
	Script    Script
	Marked    bool // number carried an explicit apostrophe
	Radical   codepoint.Codepoint
	Ideograph codepoint.Codepoint
}

// Table maps radical numbers 1..Max() to entries.
type Table struct {
	entries []*Entry // index = number-1
	count   int
}

// NewTable creates an empty radical table.
func NewTable() *Table {
	return &Table{}
}

// Add merges one line into the table. For a number not yet present both
// variants are seeded from the line; otherwise only the line's own script
// variant is overwritten.
func (t *Table) Add(l Line) {
	if l.Number < 1 || l.Number > MaxNumber {
		return
	}
	for len(t.entries) < l.Number {
		t.entries = append(t.entries, nil)
	}
	v := Variant{Number: l.Number, Radical: l.Radical, Ideograph: l.Ideograph}
	e := t.entries[l.Number-1]
	if e == nil {
		t.entries[l.Number-1] = &Entry{Hans: v, Hant: v}
		t.count++
		return
	}
	if l.Script == Simplified {
		e.Hans = v
	} else {
		e.Hant = v
	}
}

// Lookup returns the entry for a radical number.
func (t *Table) Lookup(n int) (Entry, bool) {
	if n < 1 || n > len(t.entries) || t.entries[n-1] == nil {
		return Entry{}, false
	}
	return *t.entries[n-1], true
}

// Max returns the largest radical number present.
func (t *Table) Max() int {
	return len(t.entries)
}

// Len returns the number of radical numbers present.
func (t *Table) Len() int {
	return t.count
}

// LoadTable reads a radical definition file into a new table.
func LoadTable(r io.Reader) (*Table, error) {
	reader := NewReader(r)
	t := NewTable()
	for {
		l, err := reader.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		t.Add(l)
	}
	tracer().Infof("radical table loaded with %d radicals", t.Len())
	return t, nil
}

// LineError reports a malformed line of the radical definition file.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("radicals: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Reader streams lines from a radical definition file.
type Reader struct {
	scanner *bufio.Scanner
	lineno  int
}

// NewReader creates a Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next radical line. It returns io.EOF when exhausted.
func (r *Reader) Next() (Line, error) {
	for r.scanner.Scan() {
		r.lineno++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		l, err := decodeLine(text)
		if err != nil {
			return Line{}, &LineError{Line: r.lineno, Text: text, Err: err}
		}
		return l, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Line{}, err
	}
	return Line{}, io.EOF
}

// MaxNumber is the largest radical number accepted. The Kangxi system has 214
// radicals; the limit leaves room for other systems.
const MaxNumber = 4096

func decodeLine(text string) (l Line, err error) {
	parts := strings.Split(text, ";")
	if len(parts) != 3 {
		return l, fmt.Errorf("expected 3 fields, have %d", len(parts))
	}
	num := strings.TrimSpace(parts[0])
	if trimmed := strings.TrimRight(num, "'"); trimmed != num {
		l.Script, l.Marked = Simplified, true
		num = trimmed
	}
	if l.Number, err = strconv.Atoi(num); err != nil || l.Number < 1 || l.Number > MaxNumber {
		return l, fmt.Errorf("invalid radical number %q", parts[0])
	}
	if l.Radical, err = codepoint.ParseHex(parts[1]); err != nil {
		return l, err
	}
	l.Ideograph, err = codepoint.ParseHex(parts[2])
	return l, err
}
