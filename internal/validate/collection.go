// collection.go implements collection name validation.
//
// Collection names appear in CLI arguments, MCP resource URIs
// (sift://collections/{name}) and log entries, so they are restricted to
// lowercase slugs: letters, digits, hyphens and underscores, not
// starting or ending with a separator.

package validate

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// MaxCollectionLen bounds collection names.
const MaxCollectionLen = 64

// Collection validates a collection name and returns it unchanged.
//
// When the name is not a slug, the error suggests the slugified form so
// "My People" reports "try my-people".
func Collection(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidCollection)
	}
	if len(name) > MaxCollectionLen {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidCollection, MaxCollectionLen)
	}
	if !slug.IsSlug(name) {
		if s := Suggest(name); s != "" {
			return "", fmt.Errorf("%w: %q (try %q)", ErrInvalidCollection, name, s)
		}
		return "", fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return name, nil
}

// Suggest derives a valid collection name from arbitrary text, such as an
// import file name. Returns "" when nothing usable remains.
func Suggest(s string) string {
	out := slug.Make(s)
	if len(out) > MaxCollectionLen {
		out = strings.TrimRight(out[:MaxCollectionLen], "-")
	}
	return out
}
