package records

import (
	"encoding/json"
	"fmt"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/tidwall/sjson"
)

// Encode renders a record as a single line of JSON with sorted keys.
func Encode(r fuzzy.Record) (json.RawMessage, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return b, nil
}

// Annotate sets key to value in a JSON object without re-encoding the rest
// of the document. Keys are gjson paths, so dots address nested objects;
// a literal dot must be escaped.
func Annotate(data []byte, key string, value any) ([]byte, error) {
	out, err := sjson.SetBytes(data, key, value)
	if err != nil {
		return nil, fmt.Errorf("annotate %s: %w", key, err)
	}
	return out, nil
}
