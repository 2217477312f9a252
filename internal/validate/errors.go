// errors.go defines sentinel errors for validation failures.
//
// Validation failures carry no context beyond their category, so plain
// sentinels are enough; the validation functions wrap them with detail via
// fmt.Errorf and callers match with errors.Is.

package validate

import "errors"

var (
	ErrInvalidCollection = errors.New("invalid collection name")
	ErrInvalidPattern    = errors.New("invalid pattern")
	ErrTooLarge          = errors.New("input too large")
)
