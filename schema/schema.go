// Package schema loads the Unihan field-definition document.
//
// The document is a YAML sequence of field records, each carrying a name and
// a map of raw attributes as published for the Unihan database:
//
//	- name: kTotalStrokes
//	  attributes:
//	    Status: Normative
//	    Category: Radical-Stroke Counts
//	    delimiter: space
//	    syntax: '[1-9][0-9]{0,2}'
//
// Loading normalizes the attributes into a Field. A missing file, malformed
// YAML or an uncompilable syntax pattern aborts the whole load.
package schema

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownField is returned when a field identifier is not declared by the schema.
var ErrUnknownField = errors.New("unknown field")

// Status is the interned, lower-cased status attribute of a field.
type Status string

// Status values declared by field records.
const (
	Mandatory   Status = "mandatory"
	Optional    Status = "optional"
	Provisional Status = "provisional"
	Deprecated  Status = "deprecated"
	Obsolete    Status = "obsolete"
	Normative   Status = "normative"
	Informative Status = "informative"
)

// Category is the interned category attribute, e.g. "radical-stroke_counts".
type Category string

// Arity is the declared shape of a decoded value.
type Arity int

const (
	Scalar Arity = iota
	List
)

func (a Arity) String() string {
	if a == List {
		return "list"
	}
	return "scalar"
}

// Field is the immutable schema record of one field identifier.
type Field struct {
	Name      string
	Status    Status
	Category  Category
	Delimiter string         // empty: value is never split
	Syntax    *regexp.Regexp // anchored; nil if the record has no syntax attribute
}

// Arity returns List for fields declaring a delimiter.
func (f *Field) Arity() Arity {
	if f.Delimiter != "" {
		return List
	}
	return Scalar
}

// Split splits raw at the field's delimiter. Empty items are dropped.
// Fields without delimiter yield raw as the only item.
func (f *Field) Split(raw string) []string {
	if f.Delimiter == "" {
		return []string{raw}
	}
	parts := strings.Split(raw, f.Delimiter)
	items := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// Validate checks one (already split) item against the syntax pattern.
func (f *Field) Validate(item string) bool {
	return f.Syntax == nil || f.Syntax.MatchString(item)
}

// Schema maps field identifiers to their records.
type Schema struct {
	fields map[string]*Field
	order  []string
}

// New creates a schema from explicit field records. Later records replace earlier
// ones with the same name.
func New(fields ...*Field) *Schema {
	s := &Schema{fields: make(map[string]*Field, len(fields))}
	for _, f := range fields {
		s.add(f)
	}
	return s
}

func (s *Schema) add(f *Field) {
	if _, dup := s.fields[f.Name]; !dup {
		s.order = append(s.order, f.Name)
	}
	s.fields[f.Name] = f
}

// Lookup returns the record for a field identifier.
func (s *Schema) Lookup(name string) (*Field, bool) {
	if s == nil {
		return nil, false
	}
	f, ok := s.fields[name]
	return f, ok
}

// Field is like Lookup but returns an error wrapping ErrUnknownField.
func (s *Schema) Field(name string) (*Field, error) {
	f, ok := s.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return f, nil
}

// Names returns field identifiers in document order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// --- Loading ---------------------------------------------------------------

type fieldRecord struct {
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes"`
}

// LoadFile loads and parses a field-definition document from path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML field records into a Schema.
func Parse(data []byte) (*Schema, error) {
	var records []fieldRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}
	s := New()
	for i, rec := range records {
		f, err := normalize(rec)
		if err != nil {
			return nil, fmt.Errorf("schema record %d: %w", i, err)
		}
		s.add(f)
	}
	tracer().Infof("schema loaded with %d fields", s.Len())
	return s, nil
}

func normalize(rec fieldRecord) (*Field, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return nil, errors.New("field record without name")
	}
	f := &Field{Name: name}
	attr := func(key string) (string, bool) {
		for k, v := range rec.Attributes {
			if strings.EqualFold(k, key) {
				return strings.TrimSpace(v), true
			}
		}
		return "", false
	}
	if v, ok := attr("status"); ok {
		f.Status = Status(strings.ToLower(v))
	}
	if v, ok := attr("category"); ok {
		f.Category = Category(strings.ReplaceAll(strings.ToLower(v), " ", "_"))
	}
	if v, ok := attr("delimiter"); ok {
		switch v {
		case "space":
			f.Delimiter = " "
		case "N/A", "":
		default:
			f.Delimiter = v
		}
	}
	if v, ok := attr("syntax"); ok && v != "" {
		re, err := regexp.Compile(`^(?:` + v + `)$`)
		if err != nil {
			return nil, fmt.Errorf("field %s: syntax: %w", name, err)
		}
		f.Syntax = re
	}
	return f, nil
}
