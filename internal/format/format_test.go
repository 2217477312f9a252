package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/jpl-au/sift/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight(t *testing.T) {
	var buf bytes.Buffer
	plain := NewStyles(&buf, false)
	assert.Equal(t, "robin david", Highlight("robin david", []int{0, 6}, plain.Match))
	assert.Equal(t, "abc", Highlight("abc", nil, plain.Match))

	colour := NewStyles(&buf, true)
	got := Highlight("robin david", []int{0, 0, 6, 99}, colour.Match)
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "obin ")
	assert.Contains(t, got, "avid")
}

func TestHighlight_RuneIndexes(t *testing.T) {
	var buf bytes.Buffer
	st := NewStyles(&buf, true)
	got := Highlight("café x", []int{3}, st.Match)
	assert.True(t, strings.HasPrefix(got, "caf"))
	assert.Contains(t, got, "é")
	assert.True(t, strings.HasSuffix(got, " x"))
}

func TestResults(t *testing.T) {
	rec := fuzzy.Record{
		"name":  fuzzy.String("Loris Francois"),
		"email": fuzzy.String("loris@gmail.com"),
	}
	results := []fuzzy.Result{
		{
			Record: rec,
			Score:  0.006,
			Info: []fuzzy.FieldResult{
				{Field: "email", Patterns: []fuzzy.Match{{Value: "gmail", Indexes: []int{6, 7, 8, 9, 10}}}},
			},
		},
		{
			Record: rec,
			Score:  1.001,
			Info: []fuzzy.FieldResult{
				{Field: "name", Patterns: []fuzzy.Match{{Value: "oi", Insertions: 1, Indexes: []int{1, 3}}}},
				{Field: "email", Patterns: []fuzzy.Match{{Value: "gmail", Indexes: []int{6, 7, 8, 9, 10}}}},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Results(&buf, results, NewStyles(&buf, false)))
	want := "" +
		"1  0.006  email  loris@gmail.com\n" +
		"2  1.001  name   Loris Francois\n" +
		"          email  loris@gmail.com\n"
	assert.Equal(t, want, buf.String())
}

func TestScore(t *testing.T) {
	assert.Equal(t, "0.000", Score(0))
	assert.Equal(t, "0.012", Score(0.012))
	assert.Equal(t, "2.003", Score(2.003))
}

func TestCollections(t *testing.T) {
	cols := []store.Collection{
		{Name: "people", Records: 5, Description: "address book"},
		{Name: "places", Records: 12},
	}

	var buf bytes.Buffer
	require.NoError(t, Collections(&buf, cols))
	assert.Equal(t, "people\nplaces\n", buf.String())

	buf.Reset()
	require.NoError(t, CollectionsLong(&buf, cols, NewStyles(&buf, false)))
	out := buf.String()
	for _, s := range []string{"NAME", "RECORDS", "people", "address book", "places", "12"} {
		assert.Contains(t, out, s)
	}

	buf.Reset()
	require.NoError(t, CollectionsLong(&buf, nil, NewStyles(&buf, false)))
	assert.Empty(t, buf.String())
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Stats(&buf, &store.Stats{Collections: 2, Records: 10, Bytes: 2048, Largest: "people"}))
	out := buf.String()
	assert.Contains(t, out, "collections: 2")
	assert.Contains(t, out, "size:        2.0K")
	assert.Contains(t, out, "largest:     people")
	assert.Contains(t, out, "oldest:      -")
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512B", humanSize(512))
	assert.Equal(t, "1.5K", humanSize(1536))
	assert.Equal(t, "1.0M", humanSize(1<<20))
	assert.Equal(t, "2.0G", humanSize(2<<30))
}
