/*
Package unihanfile reads the tab-separated text files of the Unihan database.

Every data line holds one code point, one field identifier and one raw value:

	U+4E00	kDefinition	one; a, an; alone
	U+4E00	kTotalStrokes	1

Lines starting with '#' and blank lines are skipped. A byte order mark at the
beginning of a file is ignored. Values are trimmed and otherwise passed on
unchanged; compatibility ideographs in particular keep their code points.
*/
package unihanfile

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/unihan"
	"github.com/npillmayer/unihan/codepoint"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineLength is the longest line accepted. Some kDefinition and
// kHanyuPinyin values exceed bufio's default of 64 KB in combination.
const maxLineLength = 1 << 20

var (
	errFieldCount = errors.New("expected codepoint, field and value separated by tabs")
	errEmptyField = errors.New("empty field identifier")
)

// Reader streams raw records from a Unihan text file.
type Reader struct {
	scanner *bufio.Scanner
	source  string
	line    int
}

// NewReader creates a Reader. source names the input in error messages.
func NewReader(source string, r io.Reader) *Reader {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &Reader{scanner: scanner, source: source}
}

// Load folds a Unihan text file into a new database.
func Load(source string, r io.Reader, dec unihan.FieldDecoder) (*unihan.Database, error) {
	return unihan.Load(source, NewReader(source, r), dec)
}

// Next returns the next data line as a raw record.
// It returns io.EOF when exhausted and a *unihan.LineError for malformed lines.
func (r *Reader) Next() (unihan.RawRecord, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		return r.decodeLine(line)
	}
	if err := r.scanner.Err(); err != nil {
		return unihan.RawRecord{}, &unihan.LineError{Source: r.source, Line: r.line + 1, Err: err}
	}
	return unihan.RawRecord{}, io.EOF
}

func (r *Reader) decodeLine(line string) (unihan.RawRecord, error) {
	rec := unihan.RawRecord{Source: r.source, Line: r.line, Text: line}
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return rec, r.lineError(rec, errFieldCount)
	}
	cp, err := codepoint.Parse(strings.TrimSpace(fields[0]))
	if err != nil {
		return rec, r.lineError(rec, err)
	}
	rec.Codepoint = cp
	if rec.Field = strings.TrimSpace(fields[1]); rec.Field == "" {
		return rec, r.lineError(rec, errEmptyField)
	}
	rec.Value = strings.TrimSpace(fields[2])
	return rec, nil
}

func (r *Reader) lineError(rec unihan.RawRecord, err error) error {
	return &unihan.LineError{
		Source: rec.Source,
		Line:   rec.Line,
		Text:   rec.Text,
		Field:  rec.Field,
		Err:    err,
	}
}
