package unihanfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/unihan"
	"github.com/npillmayer/unihan/codepoint"
)

func mustOpenFixture(t *testing.T, file string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("..", "testdata", "unihan", file))
	if err != nil {
		t.Fatalf("cannot open fixture %s: %v", file, err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// keepRaw decodes nothing.
type keepRaw struct{}

func (keepRaw) Decode(_, raw string) (any, error) { return raw, nil }

func TestReaderSkipsCommentsAndBlankLines(t *testing.T) {
	src := "# Unihan_Readings.txt\n\nU+4E00\tkDefinition\tone; a, an; alone\n  \nU+4E01\tkMandarin\tdīng\n"
	r := NewReader("readings", strings.NewReader(src))
	var recs []unihan.RawRecord
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		recs = append(recs, rec)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Codepoint != 0x4E00 || recs[0].Field != "kDefinition" || recs[0].Value != "one; a, an; alone" {
		t.Errorf("unexpected first record %+v", recs[0])
	}
	if recs[1].Line != 5 || recs[1].Source != "readings" {
		t.Errorf("second record should come from readings:5, is %s:%d", recs[1].Source, recs[1].Line)
	}
}

func TestReaderIgnoresBOM(t *testing.T) {
	r := NewReader("bom", strings.NewReader("\ufeffU+4E00\tkMandarin\tyī\n"))
	rec, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if rec.Codepoint != 0x4E00 {
		t.Errorf("expected U+4E00, got %s", rec.Codepoint)
	}
}

func TestReaderKeepsRawValues(t *testing.T) {
	input := "U+8C48\tkDefinition\t\uF900 compat\n" +
		"U+4E00\tkMandarin\tyi\u0304\n" // i with combining macron
	r := NewReader("raw", strings.NewReader(input))
	for _, want := range []string{"\uF900 compat", "yi\u0304"} {
		rec, err := r.Next()
		if err != nil {
			t.Fatal(err)
		}
		if rec.Value != want {
			t.Errorf("expected value %q, got %q", want, rec.Value)
		}
	}
}

func TestMalformedLines(t *testing.T) {
	for _, line := range []string{
		"U+4E00\tkMandarin",
		"U+4E00\tkMandarin\tyī\textra",
		"4E00\tkMandarin\tyī",
		"U+4E00\t \tyī",
	} {
		_, err := NewReader("bad", strings.NewReader("# header\n"+line+"\n")).Next()
		var lerr *unihan.LineError
		if !errors.As(err, &lerr) {
			t.Errorf("%q: expected line error, got %v", line, err)
			continue
		}
		if lerr.Line != 2 || lerr.Text != line {
			t.Errorf("%q: line error lacks context: %v", line, lerr)
		}
	}
	_, err := NewReader("bad", strings.NewReader("U+XYZ\tkMandarin\tyī\n")).Next()
	if !errors.Is(err, codepoint.ErrSyntax) {
		t.Errorf("expected code point syntax error, got %v", err)
	}
}

func TestLoadFixture(t *testing.T) {
	db, err := Load("Unihan_Readings.txt", mustOpenFixture(t, "Unihan_Readings.txt"), keepRaw{})
	if err != nil {
		t.Fatal(err)
	}
	if db.Len() == 0 {
		t.Fatal("fixture should contain records")
	}
	if v, ok := db.Get(0x4E00, "kMandarin"); !ok || v != "yī" {
		t.Errorf("kMandarin of U+4E00 should be yī, is %v", v)
	}
}
