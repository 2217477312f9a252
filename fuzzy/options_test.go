package fuzzy_test

import (
	"testing"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	o := fuzzy.DefaultOptions()
	assert.False(t, o.CaseSensitive)
	assert.False(t, o.FieldMatching)
	assert.Equal(t, -1, o.MaxInsertions)
	assert.False(t, o.Bounded())
}

func TestOptions_ZeroValue(t *testing.T) {
	var o fuzzy.Options
	assert.True(t, o.Bounded(), "zero value caps insertions at 0")

	_, ok := fuzzy.Find("rd", "robin david", o)
	assert.False(t, ok)
	m, ok := fuzzy.Find("rd", "robin david", fuzzy.DefaultOptions())
	assert.True(t, ok)
	assert.Equal(t, 5, m.Insertions)
}

func TestOptions_Merge(t *testing.T) {
	yes, zero := true, 0

	o := fuzzy.DefaultOptions().Merge(fuzzy.Overrides{CaseSensitive: &yes})
	assert.True(t, o.CaseSensitive)
	assert.False(t, o.FieldMatching)
	assert.Equal(t, fuzzy.Unbounded, o.MaxInsertions)

	o = o.Merge(fuzzy.Overrides{MaxInsertions: &zero})
	assert.True(t, o.CaseSensitive)
	assert.Equal(t, 0, o.MaxInsertions)
	assert.True(t, o.Bounded())

	assert.Equal(t, o, o.Merge(fuzzy.Overrides{}))
}

func TestOptionsFromMap(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want fuzzy.Options
	}{
		{"nil", nil, fuzzy.DefaultOptions()},
		{"all set", map[string]any{"caseSensitive": true, "fieldMatching": true, "maxInsertions": 2},
			fuzzy.Options{CaseSensitive: true, FieldMatching: true, MaxInsertions: 2}},
		{"json number", map[string]any{"maxInsertions": float64(3)},
			fuzzy.Options{MaxInsertions: 3}},
		{"miscased keys ignored", map[string]any{"FieldMatching": true, "CaseSensitive": true, "max_insertions": 1},
			fuzzy.DefaultOptions()},
		{"wrong types ignored", map[string]any{"caseSensitive": "true", "maxInsertions": "2"},
			fuzzy.DefaultOptions()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fuzzy.OptionsFromMap(tt.in))
		})
	}
}
