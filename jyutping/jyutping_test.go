package jyutping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexCSV = `# test index
jyutping,initial,nucleus,coda,tone
jat1,j,a,t,1
si1,s,i,,1
si6,s,i,,6
sik1,s,i,k,1
m4,,m,,4
`

func TestLoadIndex(t *testing.T) {
	ix, err := LoadIndex(strings.NewReader(indexCSV))
	require.NoError(t, err)
	assert.Equal(t, 5, ix.Len())

	s, err := ix.Lookup("jat1")
	require.NoError(t, err)
	assert.Equal(t, Syllable{Jyutping: "jat1", Initial: "j", Nucleus: "a", Coda: "t", Final: "at", Tone: 1}, *s)

	s, err = ix.Lookup("m4")
	require.NoError(t, err)
	assert.Equal(t, "", s.Initial)
	assert.Equal(t, "m", s.Final)
	assert.Equal(t, 4, s.Tone)
}

func TestStrictAndLenientLookup(t *testing.T) {
	ix, err := LoadIndex(strings.NewReader(indexCSV))
	require.NoError(t, err)

	_, err = ix.Lookup("xyz9")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = ix.Lookup("")
	assert.ErrorIs(t, err, ErrNotFound)

	s, ok := ix.Find("xyz9")
	assert.False(t, ok)
	assert.Nil(t, s)
	// a prefix of a known syllable is not a syllable
	_, ok = ix.Find("si")
	assert.False(t, ok)
	s, ok = ix.Find("si6")
	require.True(t, ok)
	assert.Equal(t, 6, s.Tone)
}

func TestNilIndex(t *testing.T) {
	var ix *Index
	_, ok := ix.Find("jat1")
	assert.False(t, ok)
	_, err := ix.Lookup("jat1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, ix.Len())
	assert.Nil(t, ix.WithPrefix("j"))
}

func TestWithPrefix(t *testing.T) {
	ix, err := LoadIndex(strings.NewReader(indexCSV))
	require.NoError(t, err)
	var got []string
	for _, s := range ix.WithPrefix("si") {
		got = append(got, s.Jyutping)
	}
	assert.Equal(t, []string{"si1", "si6", "sik1"}, got)
	assert.Empty(t, ix.WithPrefix("zz"))
}

func TestDerivedColumns(t *testing.T) {
	ix, err := LoadIndex(strings.NewReader("jyutping,nucleus,coda\ngwong2,o,ng\nng5,ng,\n"))
	require.NoError(t, err)
	s, err := ix.Lookup("gwong2")
	require.NoError(t, err)
	assert.Equal(t, "gw", s.Initial)
	assert.Equal(t, "ong", s.Final)
	assert.Equal(t, 2, s.Tone)
	s, err = ix.Lookup("ng5")
	require.NoError(t, err)
	assert.Equal(t, "", s.Initial)
	assert.Equal(t, 5, s.Tone)
}

func TestLoadIndexFailures(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty", src: ""},
		{name: "missing column", src: "jyutping,nucleus\njat1,a\n"},
		{name: "bad tone", src: "jyutping,nucleus,coda,tone\njat1,a,t,9\n"},
		{name: "final mismatch", src: "jyutping,nucleus,coda\njat1,o,k\n"},
	}
	for _, tt := range tests {
		_, err := LoadIndex(strings.NewReader(tt.src))
		assert.Error(t, err, tt.name)
	}
}

func TestDuplicateSyllableCountsOnce(t *testing.T) {
	ix := NewIndex(
		Syllable{Jyutping: "jat1", Initial: "j", Nucleus: "a", Coda: "t", Tone: 1},
		Syllable{Jyutping: "jat1", Initial: "j", Nucleus: "a", Coda: "t", Tone: 1},
	)
	assert.Equal(t, 1, ix.Len())
	s, ok := ix.Find("jat1")
	require.True(t, ok)
	assert.Equal(t, "at", s.Final)
}
