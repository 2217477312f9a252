package guide

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	index, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, index, "# sift")

	search, err := Get("search")
	require.NoError(t, err)
	assert.Contains(t, search, "--fields")
	assert.Contains(t, search, "earliest matched character")

	_, err = Get("nope")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.NotContains(t, names, "guide")
	assert.Subset(t, names, []string{"collections", "config", "explain", "import", "mcp", "search"})

	for _, n := range names {
		_, err := Get(n)
		assert.NoError(t, err, n)
	}
}
