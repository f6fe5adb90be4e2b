package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldsYAML = `
- name: kTotalStrokes
  attributes:
    Status: Normative
    Category: Radical-Stroke Counts
    delimiter: space
    syntax: '[1-9][0-9]{0,2}'
- name: kDefinition
  attributes:
    Status: Informative
    Category: Readings
    delimiter: N/A
- name: kIRG_GSource
  attributes:
    status: PROVISIONAL
    category: IRG Sources
- name: kFanqie
  attributes:
    Status: Optional
    Category: Readings
    delimiter: ","
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(fieldsYAML))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"kTotalStrokes", "kDefinition", "kIRG_GSource", "kFanqie"}, s.Names())

	f, ok := s.Lookup("kTotalStrokes")
	require.True(t, ok)
	assert.Equal(t, Normative, f.Status)
	assert.Equal(t, Category("radical-stroke_counts"), f.Category)
	assert.Equal(t, " ", f.Delimiter)
	assert.Equal(t, List, f.Arity())
	require.NotNil(t, f.Syntax)
	assert.True(t, f.Validate("12"))
	assert.False(t, f.Validate("012"))
	assert.False(t, f.Validate("12 13"))

	f, ok = s.Lookup("kDefinition")
	require.True(t, ok)
	assert.Equal(t, "", f.Delimiter)
	assert.Equal(t, Scalar, f.Arity())
	assert.Nil(t, f.Syntax)
	assert.True(t, f.Validate("anything goes"))

	f, ok = s.Lookup("kIRG_GSource")
	require.True(t, ok)
	assert.Equal(t, Provisional, f.Status)
	assert.Equal(t, Category("irg_sources"), f.Category)

	f, ok = s.Lookup("kFanqie")
	require.True(t, ok)
	assert.Equal(t, ",", f.Delimiter)
}

func TestUnknownField(t *testing.T) {
	s, err := Parse([]byte(fieldsYAML))
	require.NoError(t, err)
	_, err = s.Field("kNoSuchField")
	assert.ErrorIs(t, err, ErrUnknownField)
	_, ok := s.Lookup("kNoSuchField")
	assert.False(t, ok)
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed yaml", doc: "- name: [unclosed"},
		{name: "missing name", doc: "- attributes:\n    Status: Normative\n"},
		{name: "bad syntax", doc: "- name: kX\n  attributes:\n    syntax: '[a-'\n"},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.doc))
		assert.Error(t, err, tt.name)
	}
}

func TestLoadFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fieldsYAML), 0o644))
	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
}

func TestSplit(t *testing.T) {
	f := &Field{Name: "kMandarin", Delimiter: " "}
	assert.Equal(t, []string{"yī", "yí"}, f.Split("yī  yí "))
	assert.Equal(t, []string{"a"}, (&Field{Name: "kDefinition"}).Split("a"))
	assert.Empty(t, f.Split(""))
}
