package fuzzy

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	// KindAbsent is the zero Value: the key is missing or was null.
	KindAbsent Kind = iota
	// KindString is a searchable leaf.
	KindString
	// KindRecord is a nested mapping.
	KindRecord
	// KindOther is any other scalar or list. It is carried through for
	// display but never searched.
	KindOther
)

// Value is a record field: a string leaf, a nested record, or something the
// engine does not search.
type Value struct {
	kind Kind
	str  string
	rec  Record
	raw  any
}

// String returns a string leaf.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Nested returns a nested record value.
func Nested(r Record) Value { return Value{kind: KindRecord, rec: r} }

// Other wraps a value the engine carries but never searches.
func Other(v any) Value {
	if v == nil {
		return Value{}
	}
	return Value{kind: KindOther, raw: v}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string leaf, if v is one.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Record returns the nested record, if v is one.
func (v Value) Record() (Record, bool) { return v.rec, v.kind == KindRecord }

// Interface converts v back to plain Go values (string, map[string]any, or the
// wrapped value).
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindRecord:
		return v.rec.ToMap()
	case KindOther:
		return v.raw
	default:
		return nil
	}
}

// MarshalJSON encodes the plain form of v.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// Record is a mapping from field name to value. The engine only reads it.
type Record map[string]Value

// FromMap converts decoded data (JSON, YAML, TOML) into a Record. Nested
// map[string]any values become nested records, strings become leaves and
// everything else becomes KindOther. map[any]any keys are stringified when
// they are strings and dropped otherwise.
func FromMap(m map[string]any) Record {
	r := make(Record, len(m))
	for k, v := range m {
		r[k] = valueOf(v)
	}
	return r
}

func valueOf(v any) Value {
	switch t := v.(type) {
	case string:
		return String(t)
	case map[string]any:
		return Nested(FromMap(t))
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			if ks, ok := k.(string); ok {
				m[ks] = vv
			}
		}
		return Nested(FromMap(m))
	case Record:
		return Nested(t)
	case Value:
		return t
	default:
		return Other(v)
	}
}

// ToMap converts r back to plain Go values.
func (r Record) ToMap() map[string]any {
	m := make(map[string]any, len(r))
	for k, v := range r {
		m[k] = v.Interface()
	}
	return m
}

// MarshalJSON encodes r as a JSON object with sorted keys.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}

// UnmarshalJSON decodes a JSON object into r. Numbers are kept as
// json.Number so they encode back unchanged.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	*r = FromMap(m)
	return nil
}

// Lookup walks path through r and returns the string at its end. It reports
// false when a key is missing, an intermediate value is not a record, or the
// terminal value is not a string.
func (r Record) Lookup(path FieldPath) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	cur := r
	for i, key := range path {
		v, ok := cur[key]
		if !ok {
			return "", false
		}
		if i == len(path)-1 {
			return v.Str()
		}
		if cur, ok = v.Record(); !ok {
			return "", false
		}
	}
	return "", false
}

// Keys returns the top-level keys of r in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
