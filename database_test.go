package unihan

import (
	"errors"
	"io"
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/unihan/codepoint"
	"github.com/npillmayer/unihan/decode"
	"github.com/npillmayer/unihan/schema"
)

type sliceRecordReader struct {
	entries []RawRecord
	index   int
}

func (r *sliceRecordReader) Next() (RawRecord, error) {
	if r.index >= len(r.entries) {
		return RawRecord{}, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry, nil
}

// rawDecoder keeps raw values and fails for field kBroken.
type rawDecoder struct{}

var errBroken = errors.New("broken")

func (rawDecoder) Decode(field, raw string) (any, error) {
	if field == "kBroken" {
		return nil, errBroken
	}
	return raw, nil
}

func records(lines ...string) *sliceRecordReader {
	r := &sliceRecordReader{}
	for i, line := range lines {
		f := strings.Split(line, "\t")
		r.entries = append(r.entries, RawRecord{
			Codepoint: codepoint.MustParse(f[0]),
			Field:     f[1],
			Value:     f[2],
			Source:    "test",
			Line:      i + 1,
			Text:      line,
		})
	}
	return r
}

func TestLoadTotalStrokes(t *testing.T) {
	sch := schema.New(&schema.Field{Name: "kTotalStrokes", Delimiter: " "})
	db, err := Load("strokes", records("U+4E00\tkTotalStrokes\t1"), decode.New(sch, nil))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := db.Get(0x4E00, "kTotalStrokes")
	if !ok {
		t.Fatalf("kTotalStrokes of U+4E00 missing")
	}
	counts, ok := v.(decode.ScriptCounts)
	if !ok || counts[decode.Hans] != 1 || counts[decode.Hant] != 1 || len(counts) != 2 {
		t.Fatalf("expected {Hans: 1, Hant: 1}, got %v", v)
	}
}

func TestFoldLastWriteWins(t *testing.T) {
	db, err := Load("fold", records(
		"U+4E01\tkDefinition\tfirst",
		"U+4E00\tkMandarin\tyī",
		"U+4E01\tkMandarin\tdīng",
		"U+4E01\tkDefinition\tsecond",
	), rawDecoder{})
	if err != nil {
		t.Fatal(err)
	}
	if db.Len() != 2 {
		t.Fatalf("expected 2 code points, have %d", db.Len())
	}
	if v, _ := db.Get(0x4E01, "kDefinition"); v != "second" {
		t.Errorf("kDefinition of U+4E01 should be 'second', is %v", v)
	}
	rec, ok := db.Lookup(0x4E01)
	if !ok {
		t.Fatal("U+4E01 missing")
	}
	if rec.Codepoint != 0x4E01 || len(rec.Fields) != 2 {
		t.Errorf("unexpected record %v", rec)
	}
	if names := rec.Names(); names[0] != "kDefinition" || names[1] != "kMandarin" {
		t.Errorf("unexpected field names %v", names)
	}
}

func TestFoldAborts(t *testing.T) {
	db := NewDatabase("abort")
	err := db.Fold(records(
		"U+4E00\tkMandarin\tyī",
		"U+4E01\tkBroken\tx",
		"U+4E02\tkMandarin\tqī",
	), rawDecoder{})
	var lerr *LineError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected line error, got %v", err)
	}
	if lerr.Line != 2 || lerr.Field != "kBroken" || lerr.Source != "test" {
		t.Errorf("line error lacks context: %v", lerr)
	}
	if !errors.Is(err, errBroken) {
		t.Errorf("line error should wrap decoding error")
	}
	if _, ok := db.Lookup(0x4E02); ok {
		t.Errorf("records after the failing line must not be folded")
	}
}

func TestUnknownFieldIsFatal(t *testing.T) {
	sch := schema.New(&schema.Field{Name: "kMandarin"})
	_, err := Load("unknown", records("U+4E00\tkNoSuchField\tx"), decode.New(sch, nil))
	if !errors.Is(err, schema.ErrUnknownField) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestCodepointsSorted(t *testing.T) {
	db, err := Load("sorted", records(
		"U+20000\tkMandarin\ta",
		"U+4E00\tkMandarin\tb",
		"U+3400\tkMandarin\tc",
	), rawDecoder{})
	if err != nil {
		t.Fatal(err)
	}
	cps := db.Codepoints()
	want := []codepoint.Codepoint{0x3400, 0x4E00, 0x20000}
	for i := range want {
		if cps[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, cps)
		}
	}
	rt := db.RangeTable()
	for _, cp := range want {
		if !unicode.Is(rt, cp.Rune()) {
			t.Errorf("range table should contain %s", cp)
		}
	}
	if unicode.Is(rt, 0x4E01) {
		t.Errorf("range table should not contain U+4E01")
	}
}

func TestMerge(t *testing.T) {
	a, _ := Load("a", records(
		"U+4E00\tkMandarin\tyī",
		"U+4E00\tkDefinition\tone",
	), rawDecoder{})
	b, _ := Load("b", records(
		"U+4E00\tkDefinition\tunit",
		"U+4E01\tkMandarin\tdīng",
	), rawDecoder{})
	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("expected 2 code points, have %d", a.Len())
	}
	if v, _ := a.Get(0x4E00, "kDefinition"); v != "unit" {
		t.Errorf("merged database should win, have %v", v)
	}
	if v, _ := a.Get(0x4E00, "kMandarin"); v != "yī" {
		t.Errorf("fields missing in merged database should stay, have %v", v)
	}
	if _, ok := a.Get(0x4E01, "kMandarin"); !ok {
		t.Errorf("U+4E01 should have been merged")
	}
}

func TestNilDatabase(t *testing.T) {
	var db *Database
	if db.Len() != 0 {
		t.Errorf("nil database should be empty")
	}
	if _, ok := db.Get(0x4E00, "kMandarin"); ok {
		t.Errorf("nil database should not find anything")
	}
}
