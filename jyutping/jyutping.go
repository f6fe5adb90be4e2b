/*
Package jyutping decodes Cantonese syllables in Jyutping romanization.

Syllables are not parsed by rules but looked up in a romanization index,
a delimited table with a header row:

	jyutping,initial,nucleus,coda,tone
	jat1,j,a,t,1
	m4,,m,,4

Columns jyutping, nucleus and coda are required. A missing initial is derived
by stripping the final (nucleus+coda) and the tone digits from the syllable,
a missing tone is taken from the trailing digit.

The index is built once and is read-only afterwards; it may be shared by
concurrent decoders.
*/
package jyutping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/derekparker/trie"
)

// ErrNotFound is returned by Lookup for syllables missing from the index.
var ErrNotFound = errors.New("jyutping syllable not found")

// Syllable is one entry of the romanization index.
type Syllable struct {
	Jyutping string
	Initial  string
	Nucleus  string
	Coda     string
	Final    string // Nucleus + Coda
	Tone     int
}

func (s Syllable) String() string {
	return s.Jyutping
}

// Index is a lookup table keyed by jyutping string.
type Index struct {
	syllables *trie.Trie
	size      int
}

// NewIndex creates an index from explicit syllables. Final is recomputed.
func NewIndex(syllables ...Syllable) *Index {
	ix := &Index{syllables: trie.New()}
	for _, s := range syllables {
		ix.add(s)
	}
	return ix
}

func (ix *Index) add(s Syllable) {
	s.Final = s.Nucleus + s.Coda
	if _, exists := ix.syllables.Find(s.Jyutping); !exists {
		ix.size++
	}
	sy := s
	ix.syllables.Add(s.Jyutping, &sy)
}

// Len returns the number of distinct syllables.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return ix.size
}

// Lookup returns the syllable for a jyutping string, or an error wrapping ErrNotFound.
func (ix *Index) Lookup(jyutping string) (*Syllable, error) {
	if s, ok := ix.Find(jyutping); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, jyutping)
}

// Find is the lenient variant of Lookup: it returns false instead of an error.
func (ix *Index) Find(jyutping string) (*Syllable, bool) {
	if ix == nil || jyutping == "" {
		return nil, false
	}
	node, ok := ix.syllables.Find(jyutping)
	if !ok {
		return nil, false
	}
	s, ok := node.Meta().(*Syllable)
	return s, ok
}

// WithPrefix returns all syllables starting with prefix, sorted by jyutping.
// WithPrefix("si") yields the tone variants si1 … si6 and longer syllables like sik1.
func (ix *Index) WithPrefix(prefix string) []*Syllable {
	if ix == nil {
		return nil
	}
	keys := ix.syllables.PrefixSearch(prefix)
	sort.Strings(keys)
	result := make([]*Syllable, 0, len(keys))
	for _, k := range keys {
		if s, ok := ix.Find(k); ok {
			result = append(result, s)
		}
	}
	return result
}

// LoadIndex parses a romanization index table.
func LoadIndex(r io.Reader) (*Index, error) {
	table := csv.NewReader(r)
	table.Comment = '#'
	table.TrimLeadingSpace = true
	table.FieldsPerRecord = -1
	header, err := table.Read()
	if err == io.EOF {
		return nil, errors.New("jyutping index: missing header")
	} else if err != nil {
		return nil, fmt.Errorf("jyutping index: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"jyutping", "nucleus", "coda"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("jyutping index: missing column %q", required)
		}
	}
	get := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	ix := NewIndex()
	for {
		row, err := table.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("jyutping index: %w", err)
		}
		s := Syllable{
			Jyutping: get(row, "jyutping"),
			Initial:  get(row, "initial"),
			Nucleus:  get(row, "nucleus"),
			Coda:     get(row, "coda"),
		}
		if s.Jyutping == "" {
			continue
		}
		if s.Tone, err = tone(s.Jyutping, get(row, "tone")); err != nil {
			return nil, fmt.Errorf("jyutping index: syllable %q: %w", s.Jyutping, err)
		}
		if _, hasInitial := col["initial"]; !hasInitial {
			if s.Initial, err = initial(s.Jyutping, s.Nucleus+s.Coda); err != nil {
				return nil, fmt.Errorf("jyutping index: %w", err)
			}
		}
		ix.add(s)
	}
	tracer().Infof("jyutping index loaded with %d syllables", ix.Len())
	return ix, nil
}

func tone(jyutping, column string) (int, error) {
	if column == "" {
		column = strings.TrimLeft(jyutping, "abcdefghijklmnopqrstuvwxyz")
	}
	t, err := strconv.Atoi(column)
	if err != nil || t < 1 || t > 6 {
		return 0, fmt.Errorf("invalid tone %q", column)
	}
	return t, nil
}

func initial(jyutping, final string) (string, error) {
	base := strings.TrimRight(jyutping, "0123456789")
	if !strings.HasSuffix(base, final) {
		return "", fmt.Errorf("syllable %q does not end in final %q", jyutping, final)
	}
	return strings.TrimSuffix(base, final), nil
}
