package fuzzy_test

import (
	"encoding/json"
	"testing"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	r := fuzzy.FromMap(map[string]any{
		"name":  map[string]any{"first": "Robin"},
		"yaml":  map[any]any{"k": "v", 1: "dropped"},
		"email": "robin@example.com",
		"age":   30,
		"gone":  nil,
	})

	assert.Equal(t, fuzzy.KindRecord, r["name"].Kind())
	assert.Equal(t, fuzzy.KindRecord, r["yaml"].Kind())
	assert.Equal(t, fuzzy.KindString, r["email"].Kind())
	assert.Equal(t, fuzzy.KindOther, r["age"].Kind())
	assert.Equal(t, fuzzy.KindAbsent, r["gone"].Kind())

	yaml, ok := r["yaml"].Record()
	require.True(t, ok)
	assert.Equal(t, []string{"k"}, yaml.Keys())
}

func TestRecord_Lookup(t *testing.T) {
	r := fuzzy.FromMap(map[string]any{
		"name":  map[string]any{"first": "Robin", "deep": map[string]any{"x": "y"}},
		"email": "robin@example.com",
		"age":   30,
	})

	tests := []struct {
		path fuzzy.FieldPath
		want string
		ok   bool
	}{
		{fuzzy.FieldPath{"email"}, "robin@example.com", true},
		{fuzzy.FieldPath{"name", "first"}, "Robin", true},
		{fuzzy.FieldPath{"name", "deep", "x"}, "y", true},
		{fuzzy.FieldPath{"name"}, "", false},
		{fuzzy.FieldPath{"age"}, "", false},
		{fuzzy.FieldPath{"email", "x"}, "", false},
		{fuzzy.FieldPath{"missing"}, "", false},
		{fuzzy.FieldPath{"name", "missing"}, "", false},
		{nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			got, ok := r.Lookup(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord_JSON(t *testing.T) {
	var r fuzzy.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":{"last":"Roy"},"id":2}`), &r))

	last, ok := r.Lookup(fuzzy.FieldPath{"name", "last"})
	require.True(t, ok)
	assert.Equal(t, "Roy", last)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":{"last":"Roy"},"id":2}`, string(data))

	require.NoError(t, json.Unmarshal([]byte(`{"id":12345678901234567890,"score":1.5}`), &r))
	data, err = json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"id":12345678901234567890,"score":1.5}`, string(data))
}

func TestResult_JSON(t *testing.T) {
	results, err := fuzzy.Search(people(), []string{"roy"}, fuzzy.Fields("name"), fuzzy.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 1)

	data, err := json.Marshal(results[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"entry": {"id": 2, "name": "Armand Roy", "email": "armand.roy@live.com"},
		"info": [{"field": "name", "patterns": [{"value": "roy", "insertions": 0, "matchIndexes": [7, 8, 9]}]}],
		"score": 0.007
	}`, string(data))
}
