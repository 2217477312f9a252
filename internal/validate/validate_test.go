package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	valid := []string{"people", "contacts-2024", "a", "x1-y2", "with_underscore"}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			got, err := Collection(name)
			require.NoError(t, err)
			assert.Equal(t, name, got)
		})
	}

	invalid := []struct {
		name    string
		suggest string
	}{
		{"", ""},
		{"People", "people"},
		{"my people", "my-people"},
		{"-lead", "lead"},
		{"trail-", "trail"},
		{"café", "cafe"},
	}
	for _, tt := range invalid {
		t.Run("invalid "+tt.name, func(t *testing.T) {
			_, err := Collection(tt.name)
			assert.ErrorIs(t, err, ErrInvalidCollection)
			if tt.suggest != "" {
				assert.Contains(t, err.Error(), tt.suggest)
			}
		})
	}

	_, err := Collection(strings.Repeat("a", MaxCollectionLen+1))
	assert.ErrorIs(t, err, ErrInvalidCollection)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "people", Suggest("People"))
	assert.Equal(t, "address-book", Suggest("Address Book"))
	assert.Empty(t, Suggest("!!!"))
	assert.LessOrEqual(t, len(Suggest(strings.Repeat("ab ", 40))), MaxCollectionLen)
}

func TestPatterns(t *testing.T) {
	assert.NoError(t, Patterns(nil))
	assert.NoError(t, Patterns([]string{"gmail", ""}))
	assert.ErrorIs(t, Patterns([]string{"ok", "bad\x00"}), ErrInvalidPattern)
}

func TestSize(t *testing.T) {
	assert.NoError(t, Size("file", 10, 0))
	assert.NoError(t, Size("file", 10, 10))
	assert.ErrorIs(t, Size("file", 11, 10), ErrTooLarge)
}
