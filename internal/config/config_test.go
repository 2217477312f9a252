package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at fresh temp dirs so global
// and local configs never touch the real user environment.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Chdir(work)
	return home, work
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.Equal(t, fuzzy.DefaultOptions(), cfg.SearchOptions())
	assert.Equal(t, DefaultLimit, cfg.Limit())
	assert.Equal(t, DefaultMaxRecords, cfg.MaxRecords())
	_, set := cfg.Colour()
	assert.False(t, set)
}

func TestLoad_LocalWins(t *testing.T) {
	home, work := isolate(t)

	require.NoError(t, os.MkdirAll(filepath.Join(home, Dir), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, Dir, "config.yaml"),
		[]byte("search:\n  case_sensitive: true\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.True(t, cfg.SearchOptions().CaseSensitive)

	require.NoError(t, os.MkdirAll(filepath.Join(work, Dir), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(work, Dir, "config.yaml"),
		[]byte("search:\n  max_insertions: 2\n  fields: name,email\n"), 0644))

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, cfg.Scope())
	opts := cfg.SearchOptions()
	assert.False(t, opts.CaseSensitive)
	assert.Equal(t, 2, opts.MaxInsertions)
	assert.Equal(t, "name,email", cfg.Fields())
}

func TestLoad_Invalid(t *testing.T) {
	_, work := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(work, Dir), 0755))

	t.Run("malformed yaml", func(t *testing.T) {
		require.NoError(t, os.WriteFile(LocalPath(), []byte("search: [\n"), 0644))
		_, err := Load()
		assert.ErrorContains(t, err, "malformed config file")
	})

	t.Run("out of range", func(t *testing.T) {
		require.NoError(t, os.WriteFile(LocalPath(), []byte("search:\n  max_insertions: -5\n"), 0644))
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestSetGet(t *testing.T) {
	cfg := &Config{}

	tests := []struct {
		key, value, want string
	}{
		{"author.name", "Ada", "Ada"},
		{"search.case_sensitive", "TRUE", "true"},
		{"search.field_matching", "false", "false"},
		{"search.max_insertions", "-1", "-1"},
		{"search.max_insertions", "3", "3"},
		{"search.fields", "name.last,email", "name.last,email"},
		{"search.limit", "0", "0"},
		{"search.workers", "4", "4"},
		{"output.colour", "false", "false"},
		{"output.colour", "auto", "auto"},
		{"limits.max_records", "10", "10"},
		{"limits.max_file_size", "2048", "2048"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			require.NoError(t, cfg.Set(tt.key, tt.value))
			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, fuzzy.Options{CaseSensitive: true, MaxInsertions: 3}, cfg.SearchOptions())
}

func TestSet_Rejects(t *testing.T) {
	cfg := &Config{}

	assert.ErrorIs(t, cfg.Set("nope", "x"), ErrUnknownKey)
	assert.ErrorIs(t, cfg.Set("search.case_sensitive", "yes"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("search.max_insertions", "-2"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("search.max_insertions", "many"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("search.fields", " , "), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("search.workers", "1000"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("limits.max_records", "0"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("output.colour", "sometimes"), ErrInvalidValue)

	_, err := cfg.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)

	for _, k := range ValidKeys() {
		assert.False(t, cfg.IsSet(k), k)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	home, _ := isolate(t)

	cfg, err := LoadScope(ScopeGlobal)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("search.field_matching", "true"))
	require.NoError(t, cfg.Set("author.name", "Ada"))
	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(home, Dir, "config.yaml"))

	loaded, err := Load()
	require.NoError(t, err)
	assert.True(t, loaded.SearchOptions().FieldMatching)
	assert.True(t, loaded.IsSet("search.field_matching"))
	assert.False(t, loaded.IsSet("search.case_sensitive"))
	assert.Equal(t, "Ada", loaded.All()["author.name"])
	assert.Len(t, loaded.All(), len(ValidKeys()))
}
