package all

import (
	"testing"

	"github.com/jpl-au/sift/extension"
	"github.com/stretchr/testify/assert"
)

func TestRegistered(t *testing.T) {
	assert.ElementsMatch(t, []string{"collection", "core", "search"}, extension.Names())

	seen := map[string]string{}
	for _, ext := range extension.All() {
		for _, c := range ext.Commands() {
			prev, dup := seen[c.Name()]
			assert.False(t, dup, "%s registered by %s and %s", c.Name(), prev, ext.Name())
			seen[c.Name()] = ext.Name()
		}
	}
	for _, name := range []string{"init", "import", "search", "explain", "ls", "rm", "export", "config", "serve", "guide", "db", "stats", "compact", "version"} {
		assert.Contains(t, seen, name)
	}
}
