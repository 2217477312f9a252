// content.go implements validation of search input and import sizes.
//
// Patterns are free text; only null bytes are rejected since they cannot be
// stored in the audit log and never occur in real field values. Sizes are
// checked against configured limits so an accidental multi-gigabyte import
// fails fast instead of bloating the database.

package validate

import (
	"fmt"
	"strings"
)

// Patterns rejects patterns containing null bytes. Empty patterns are
// allowed; the matcher drops them.
func Patterns(patterns []string) error {
	for _, p := range patterns {
		if strings.ContainsRune(p, 0) {
			return fmt.Errorf("%w: null byte in pattern", ErrInvalidPattern)
		}
	}
	return nil
}

// Size checks n against max. A max of 0 or less means no limit.
func Size(what string, n, max int64) error {
	if max > 0 && n > max {
		return fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrTooLarge, what, n, max)
	}
	return nil
}
