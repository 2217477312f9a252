// Package all imports all core sift extensions.
// Import this package to register all built-in commands.
package all

import (
	_ "github.com/jpl-au/sift/extension/collection"
	_ "github.com/jpl-au/sift/extension/core"
	_ "github.com/jpl-au/sift/extension/search"
)
