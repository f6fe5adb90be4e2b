package unihan

import (
	"fmt"
	"io"
	"slices"
	"unicode"

	"github.com/npillmayer/unihan/codepoint"
	"github.com/npillmayer/unihan/cpindex"
	"golang.org/x/text/unicode/rangetable"
)

// RawRecord is a single data line of a Unihan file, split but not yet decoded.
//
// Source, Line and Text identify the line for error messages and may be left
// empty by readers which do not read from files.
type RawRecord struct {
	Codepoint codepoint.Codepoint
	Field     string // field identifier, e.g. "kTotalStrokes"
	Value     string // raw value text
	Source    string
	Line      int
	Text      string
}

// RecordReader yields raw records one-by-one.
// It should return io.EOF when the stream is exhausted.
type RecordReader interface {
	Next() (RawRecord, error)
}

// FieldDecoder decodes the raw value of a field.
// *decode.Decoder is the implementation driven by the field schema.
type FieldDecoder interface {
	Decode(field, raw string) (any, error)
}

// Record holds the decoded fields of one code point.
type Record struct {
	Codepoint codepoint.Codepoint
	Fields    map[string]any
}

// Field returns the decoded value of a field.
func (rec *Record) Field(name string) (any, bool) {
	if rec == nil {
		return nil, false
	}
	v, ok := rec.Fields[name]
	return v, ok
}

// Names returns the field identifiers of rec, sorted.
func (rec *Record) Names() []string {
	names := make([]string, 0, len(rec.Fields))
	for name := range rec.Fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Database is a set of decoded records, indexed by code point.
//
// A database contains:
//   - records in order of first occurrence of their code point
//   - a paged code point index pointing to records (slot = position + 1).
//
// Once loaded, a Database is not modified by this package and may be read
// concurrently.
type Database struct {
	index      cpindex.PagedMap
	records    []*Record
	Identifier string // Identifies the database
}

// NewDatabase creates an empty database.
func NewDatabase(name string) *Database {
	return &Database{Identifier: name}
}

// Load folds all records of a streaming, format-agnostic source into a new
// database. Every raw value is decoded with dec.
//
// File format parsing is outside the base package. Use adapters like package
// unihanfile to read concrete files and feed this API.
func Load(name string, reader RecordReader, dec FieldDecoder) (*Database, error) {
	db := NewDatabase(name)
	if err := db.Fold(reader, dec); err != nil {
		return nil, err
	}
	tracer().Infof("database %s: %d code points, %d index pages", name, db.Len(), db.index.NumPages())
	return db, nil
}

// Fold decodes all records of reader into db. The first error aborts the
// fold; decoding errors are wrapped in a *LineError.
func (db *Database) Fold(reader RecordReader, dec FieldDecoder) (err error) {
	var raw RawRecord
	var v any
	for {
		raw, err = reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			break
		}
		if v, err = dec.Decode(raw.Field, raw.Value); err != nil {
			err = &LineError{
				Source: raw.Source,
				Line:   raw.Line,
				Text:   raw.Text,
				Field:  raw.Field,
				Err:    err,
			}
			break
		}
		db.Set(raw.Codepoint, raw.Field, v)
	}
	tracer().Errorf("%s: %v", db.Identifier, err)
	return err
}

// Set sets a decoded field of a code point, overwriting a previous value.
func (db *Database) Set(cp codepoint.Codepoint, field string, v any) {
	rec := db.record(cp)
	if rec == nil {
		return
	}
	rec.Fields[field] = v
}

// record returns the record for cp, creating it if necessary.
// It returns nil for code points beyond codepoint.Max.
func (db *Database) record(cp codepoint.Codepoint) *Record {
	if cp > codepoint.Max {
		return nil
	}
	if slot := db.index.Get(cp); slot != 0 {
		return db.records[slot-1]
	}
	rec := &Record{Codepoint: cp, Fields: make(map[string]any)}
	db.records = append(db.records, rec)
	db.index.Set(cp, uint32(len(db.records)))
	return rec
}

// Lookup returns the record of a code point.
func (db *Database) Lookup(cp codepoint.Codepoint) (*Record, bool) {
	if db == nil {
		return nil, false
	}
	slot := db.index.Get(cp)
	if slot == 0 {
		return nil, false
	}
	return db.records[slot-1], true
}

// Get returns the decoded value of a field of a code point.
func (db *Database) Get(cp codepoint.Codepoint, field string) (any, bool) {
	rec, _ := db.Lookup(cp)
	return rec.Field(field)
}

// Len returns the number of code points in db.
func (db *Database) Len() int {
	if db == nil {
		return 0
	}
	return len(db.records)
}

// Codepoints returns all code points of db in ascending order.
func (db *Database) Codepoints() []codepoint.Codepoint {
	cps := make([]codepoint.Codepoint, db.Len())
	for i, rec := range db.records {
		cps[i] = rec.Codepoint
	}
	slices.Sort(cps)
	return cps
}

// Merge copies all fields of other into db. Fields present in both are
// taken from other.
func (db *Database) Merge(other *Database) {
	if other == nil {
		return
	}
	for _, src := range other.records {
		rec := db.record(src.Codepoint)
		for field, v := range src.Fields {
			rec.Fields[field] = v
		}
	}
}

// RangeTable returns the code points of db as a range table, e.g. for use with
// unicode.Is.
func (db *Database) RangeTable() *unicode.RangeTable {
	runes := make([]rune, db.Len())
	for i, rec := range db.records {
		runes[i] = rec.Codepoint.Rune()
	}
	return rangetable.New(runes...)
}

// LineError reports a malformed or undecodable line of a Unihan source.
type LineError struct {
	Source string // file name
	Line   int    // 1-based line number
	Text   string // content of the line
	Field  string // field identifier, if known
	Err    error
}

func (e *LineError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s:%d: field %s: %v: %q", e.Source, e.Line, e.Field, e.Err, e.Text)
	}
	return fmt.Sprintf("%s:%d: %v: %q", e.Source, e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
