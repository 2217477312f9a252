package fuzzy

// Unbounded disables the insertion cap. Any negative MaxInsertions behaves the
// same way.
const Unbounded = -1

// Options configures matching and aggregation.
//
// The zero value is not the default: its MaxInsertions of 0 only allows
// contiguous matches. Start from [DefaultOptions] and adjust fields, or use
// [Options.Merge].
type Options struct {
	// CaseSensitive disables lowercasing before comparison.
	CaseSensitive bool `json:"caseSensitive" yaml:"case_sensitive"`
	// FieldMatching requires all patterns to match within a single field.
	// When false a record only needs every pattern to match somewhere.
	FieldMatching bool `json:"fieldMatching" yaml:"field_matching"`
	// MaxInsertions caps the insertions a single match may accumulate.
	// Values <= -1 mean no cap.
	MaxInsertions int `json:"maxInsertions" yaml:"max_insertions"`
}

// DefaultOptions returns case-insensitive, record-matching, unbounded options.
func DefaultOptions() Options {
	return Options{MaxInsertions: Unbounded}
}

// Bounded reports whether an insertion cap is in effect.
func (o Options) Bounded() bool {
	return o.MaxInsertions > Unbounded
}

// Overrides holds optional replacements for Options fields. A nil field
// leaves the corresponding option untouched.
type Overrides struct {
	CaseSensitive *bool
	FieldMatching *bool
	MaxInsertions *int
}

// Merge overlays the set fields of ov onto o.
func (o Options) Merge(ov Overrides) Options {
	if ov.CaseSensitive != nil {
		o.CaseSensitive = *ov.CaseSensitive
	}
	if ov.FieldMatching != nil {
		o.FieldMatching = *ov.FieldMatching
	}
	if ov.MaxInsertions != nil {
		o.MaxInsertions = *ov.MaxInsertions
	}
	return o
}

// Option keys accepted by OptionsFromMap.
const (
	KeyCaseSensitive = "caseSensitive"
	KeyFieldMatching = "fieldMatching"
	KeyMaxInsertions = "maxInsertions"
)

// OptionsFromMap overlays a loosely typed option map onto DefaultOptions.
//
// Keys must match exactly: "FieldMatching" or "field_matching" are ignored,
// as are values of the wrong type. Numbers decoded from JSON (float64) and
// plain ints are both accepted for maxInsertions.
func OptionsFromMap(m map[string]any) Options {
	var ov Overrides
	if v, ok := m[KeyCaseSensitive].(bool); ok {
		ov.CaseSensitive = &v
	}
	if v, ok := m[KeyFieldMatching].(bool); ok {
		ov.FieldMatching = &v
	}
	switch v := m[KeyMaxInsertions].(type) {
	case int:
		ov.MaxInsertions = &v
	case int64:
		n := int(v)
		ov.MaxInsertions = &n
	case float64:
		n := int(v)
		ov.MaxInsertions = &n
	}
	return DefaultOptions().Merge(ov)
}
