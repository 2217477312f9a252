package records

import (
	"strings"
	"testing"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, format Format, input string, opts LoadOptions) []fuzzy.Record {
	t.Helper()
	recs, err := Load(strings.NewReader(input), format, opts)
	require.NoError(t, err)
	return recs
}

func names(t *testing.T, recs []fuzzy.Record) []string {
	t.Helper()
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i], _ = r.Lookup(fuzzy.FieldPath{"name"})
	}
	return out
}

func TestLoad_JSON(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		recs := load(t, FormatJSON, `[{"name":"Ada"},{"name":"Bob","age":3}]`, LoadOptions{})
		assert.Equal(t, []string{"Ada", "Bob"}, names(t, recs))
		assert.Equal(t, fuzzy.KindOther, recs[1]["age"].Kind())
	})

	t.Run("single object", func(t *testing.T) {
		recs := load(t, FormatJSON, `{"name":"Ada"}`, LoadOptions{})
		assert.Equal(t, []string{"Ada"}, names(t, recs))
	})

	t.Run("nested values stay records", func(t *testing.T) {
		recs := load(t, FormatJSON, `[{"name":{"First":"Armand","Last":"Roy"}}]`, LoadOptions{})
		last, ok := recs[0].Lookup(fuzzy.FieldPath{"name", "Last"})
		require.True(t, ok)
		assert.Equal(t, "Roy", last)
	})

	t.Run("root path", func(t *testing.T) {
		recs := load(t, FormatJSON, `{"data":{"items":[{"name":"Ada"}]},"total":1}`, LoadOptions{Root: "data.items"})
		assert.Equal(t, []string{"Ada"}, names(t, recs))
	})

	t.Run("empty input", func(t *testing.T) {
		recs := load(t, FormatJSON, "  \n", LoadOptions{})
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	})
}

func TestLoad_JSONErrors(t *testing.T) {
	_, err := Load(strings.NewReader(`[{"name":"Ada"},"text"]`), FormatJSON, LoadOptions{})
	assert.ErrorIs(t, err, ErrNotObject)
	assert.ErrorContains(t, err, "element 1")

	_, err = Load(strings.NewReader(`[{"name":`), FormatJSON, LoadOptions{})
	assert.ErrorContains(t, err, "decode json")

	_, err = Load(strings.NewReader(`{"data":[]}`), FormatJSON, LoadOptions{Root: "missing"})
	assert.ErrorIs(t, err, ErrRootNotFound)

	_, err = Load(strings.NewReader(`[{},{},{}]`), FormatJSON, LoadOptions{MaxRecords: 2})
	assert.ErrorIs(t, err, ErrTooManyRecords)

	_, err = Load(strings.NewReader(`{}`), Format("xml"), LoadOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_JSONL(t *testing.T) {
	input := "{\"name\":\"Ada\"}\n\n{\"name\":\"Bob\"}\n"
	recs := load(t, FormatJSONL, input, LoadOptions{})
	assert.Equal(t, []string{"Ada", "Bob"}, names(t, recs))

	recs = load(t, FormatJSONL, `{"user":{"name":"Cy"}}`, LoadOptions{Root: "user"})
	assert.Equal(t, []string{"Cy"}, names(t, recs))

	_, err := Load(strings.NewReader("{\"name\":\"Ada\"}\nnot json\n"), FormatJSONL, LoadOptions{})
	assert.ErrorContains(t, err, "line 2")
}

func TestLoad_YAML(t *testing.T) {
	t.Run("sequence", func(t *testing.T) {
		recs := load(t, FormatYAML, "- name: Ada\n- name: Bob\n", LoadOptions{})
		assert.Equal(t, []string{"Ada", "Bob"}, names(t, recs))
	})

	t.Run("multiple documents", func(t *testing.T) {
		recs := load(t, FormatYAML, "name: Ada\n---\nname: Bob\n---\n- name: Cy\n", LoadOptions{})
		assert.Equal(t, []string{"Ada", "Bob", "Cy"}, names(t, recs))
	})

	t.Run("root path", func(t *testing.T) {
		recs := load(t, FormatYAML, "people:\n  - name: Ada\n", LoadOptions{Root: "people"})
		assert.Equal(t, []string{"Ada"}, names(t, recs))
	})

	t.Run("scalar document", func(t *testing.T) {
		_, err := Load(strings.NewReader("just text\n"), FormatYAML, LoadOptions{})
		assert.ErrorIs(t, err, ErrNotObject)
	})
}

func TestLoad_TOML(t *testing.T) {
	input := `
[[records]]
name = "Ada"
email = "ada@example.com"

[[records]]
name = "Bob"

[[other]]
name = "ignored"
`
	recs := load(t, FormatTOML, input, LoadOptions{})
	assert.Equal(t, []string{"Ada", "Bob"}, names(t, recs))

	recs = load(t, FormatTOML, input, LoadOptions{Root: "other"})
	assert.Equal(t, []string{"ignored"}, names(t, recs))

	_, err := Load(strings.NewReader(`title = "x"`), FormatTOML, LoadOptions{})
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"people.json":    FormatJSON,
		"people.JSONL":   FormatJSONL,
		"people.ndjson":  FormatJSONL,
		"a/b/people.yml": FormatYAML,
		"people.yaml":    FormatYAML,
		"people.toml":    FormatTOML,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := DetectFormat(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := DetectFormat("people.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = DetectFormat("people")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeAndAnnotate(t *testing.T) {
	rec := fuzzy.Record{"name": fuzzy.String("Ada"), "tags": fuzzy.Other([]any{"x"})}
	b, err := Encode(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada","tags":["x"]}`, string(b))

	out, err := Annotate(b, "_position", 3)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada","tags":["x"],"_position":3}`, string(out))
}

func TestLoad_LargeIntegers(t *testing.T) {
	const big = `9007199254740993`

	for _, tt := range []struct {
		name   string
		format Format
		input  string
		opts   LoadOptions
	}{
		{"json", FormatJSON, `[{"id": ` + big + `, "name": "x"}]`, LoadOptions{}},
		{"jsonl", FormatJSONL, `{"id": ` + big + `, "name": "x"}` + "\n", LoadOptions{}},
		{"root path", FormatJSON, `{"data": [{"id": ` + big + `, "name": "x"}]}`, LoadOptions{Root: "data"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			recs := load(t, tt.format, tt.input, tt.opts)
			require.Len(t, recs, 1)
			data, err := Encode(recs[0])
			require.NoError(t, err)
			assert.Equal(t, `{"id":`+big+`,"name":"x"}`, string(data))

			var back fuzzy.Record
			require.NoError(t, back.UnmarshalJSON(data))
			again, err := Encode(back)
			require.NoError(t, err)
			assert.Equal(t, string(data), string(again))
		})
	}
}
