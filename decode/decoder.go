/*
Package decode turns raw Unihan field values into typed values.

Every field identifier is bound to a Rule in a static dispatch table. A
Decoder combines this table with the field schema (for delimiters and syntax
patterns) and the Cantonese romanization index, which some rules delegate to.

Fields with a declared delimiter are split before decoding and the rule is
applied to every item. A single resulting item is unwrapped to a scalar unless
the Decoder was created WithFixedArity. Rules implementing ListRule see the
whole item list instead (kTotalStrokes needs the item count).

Identifiers without a registered rule keep their raw value. Composite rules
fail with an error wrapping ErrMismatch if a value does not have the expected
shape.

A Decoder is immutable after construction and safe for concurrent use.
*/
package decode

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/unihan/jyutping"
	"github.com/npillmayer/unihan/schema"
)

// ErrMismatch is returned if a value does not match its field's micro-grammar.
var ErrMismatch = errors.New("value does not match field format")

// ErrSyntax is returned in strict mode if a value violates the schema's syntax pattern.
var ErrSyntax = errors.New("value violates field syntax")

// Rule decodes one raw item of a field.
type Rule interface {
	Decode(d *Decoder, raw string) (Value, error)
}

// ListRule is implemented by rules which decode all items of a delimited
// field at once.
type ListRule interface {
	Rule
	DecodeList(d *Decoder, items []string) (Value, error)
}

// RuleFunc adapts a function to Rule.
type RuleFunc func(d *Decoder, raw string) (Value, error)

// Decode calls f(d, raw).
func (f RuleFunc) Decode(d *Decoder, raw string) (Value, error) {
	return f(d, raw)
}

// Decoder decodes raw field values.
type Decoder struct {
	schema     *schema.Schema
	jyutping   *jyutping.Index
	rules      map[string]Rule
	ownRules   bool
	fixedArity bool
	strict     bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithFixedArity keeps list values for all delimited fields, even if there is
// only one item.
func WithFixedArity() Option {
	return func(d *Decoder) { d.fixedArity = true }
}

// WithSyntaxValidation checks every item against the field's syntax pattern
// before decoding.
func WithSyntaxValidation() Option {
	return func(d *Decoder) { d.strict = true }
}

// WithRule binds a rule to a field identifier, replacing a built-in rule.
func WithRule(field string, r Rule) Option {
	return func(d *Decoder) {
		if !d.ownRules { // copy on write, the static table stays untouched
			own := make(map[string]Rule, len(rules)+1)
			for k, v := range rules {
				own[k] = v
			}
			d.rules, d.ownRules = own, true
		}
		d.rules[field] = r
	}
}

// New creates a Decoder. ix may be nil, then all Cantonese readings stay raw strings.
func New(sch *schema.Schema, ix *jyutping.Index, opts ...Option) *Decoder {
	d := &Decoder{
		schema:   sch,
		jyutping: ix,
		rules:    rules,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode decodes the raw value of field name.
// It returns an error wrapping schema.ErrUnknownField for fields missing from the schema.
func (d *Decoder) Decode(name, raw string) (Value, error) {
	f, err := d.schema.Field(name)
	if err != nil {
		return nil, err
	}
	rule := d.rule(name)
	if f.Arity() == schema.Scalar {
		if err := d.validate(f, raw); err != nil {
			return nil, err
		}
		return rule.Decode(d, raw)
	}
	items := f.Split(raw)
	for _, item := range items {
		if err := d.validate(f, item); err != nil {
			return nil, err
		}
	}
	return d.decodeItems(rule, items)
}

func (d *Decoder) decodeItems(rule Rule, items []string) (Value, error) {
	if lr, ok := rule.(ListRule); ok {
		return lr.DecodeList(d, items)
	}
	values := make([]Value, 0, len(items))
	for _, item := range items {
		v, err := rule.Decode(d, item)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if len(values) == 1 && !d.fixedArity {
		return values[0], nil
	}
	return values, nil
}

func (d *Decoder) validate(f *schema.Field, item string) error {
	if d.strict && !f.Validate(item) {
		return fmt.Errorf("%w: %s %q", ErrSyntax, f.Name, item)
	}
	return nil
}

func (d *Decoder) rule(name string) Rule {
	if r, ok := d.rules[name]; ok {
		return r
	}
	return passThrough
}

// Registered returns the field identifiers with a dedicated rule, sorted.
func (d *Decoder) Registered() []string {
	names := make([]string, 0, len(d.rules))
	for name := range d.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
