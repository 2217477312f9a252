// Package validate provides input validation for sift's domain types.
//
// This package enforces integrity rules at the boundary between user input
// and the storage layer. Each validation function returns nil (or the
// normalised value) on success, or an error wrapping one of the sentinels in
// errors.go:
//
//	if errors.Is(err, validate.ErrInvalidCollection) {
//	    // handle bad name
//	}
//
// Collection validates collection names (lowercase slugs).
// Patterns validates search patterns before they reach the matcher.
// Size validates input byte counts against configured limits.
package validate
