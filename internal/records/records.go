// Package records decodes record files into fuzzy.Record values.
//
// Supported formats are JSON (an array of objects or a single object), JSON
// lines, YAML (a sequence or a mapping, across any number of documents) and
// TOML (an array of tables under a key, "records" by default). A gjson path
// can select where the records live inside each document:
//
//	recs, err := records.Load(f, records.FormatJSON, records.LoadOptions{
//		Root: "data.items",
//	})
package records

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jpl-au/sift/fuzzy"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format names a record file encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// DefaultTOMLKey is the table array read from TOML files when no root is given.
const DefaultTOMLKey = "records"

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrTooManyRecords    = errors.New("too many records")
	ErrNotObject         = errors.New("record is not an object")
	ErrRootNotFound      = errors.New("root path not found")
)

// Formats lists every supported format, for flag help and validation.
func Formats() []Format {
	return []Format{FormatJSON, FormatJSONL, FormatYAML, FormatTOML}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case FormatJSON, FormatJSONL, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "ndjson":
		return FormatJSONL, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
}

// DetectFormat picks a format from a file name's extension.
func DetectFormat(name string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension (use --format)", ErrUnsupportedFormat, name)
	}
	return ParseFormat(ext)
}

// LoadOptions configures decoding.
type LoadOptions struct {
	// Root is a gjson path applied to each document before records are
	// extracted. For TOML it replaces the default "records" key.
	Root string

	// MaxRecords fails the load once more records than this are decoded.
	// 0 means no limit.
	MaxRecords int
}

// Load decodes every record in r.
func Load(r io.Reader, format Format, opts LoadOptions) ([]fuzzy.Record, error) {
	l := &loader{opts: opts}
	var err error
	switch format {
	case FormatJSON:
		err = l.json(r)
	case FormatJSONL:
		err = l.jsonl(r)
	case FormatYAML:
		err = l.yaml(r)
	case FormatTOML:
		err = l.toml(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if l.out == nil {
		l.out = []fuzzy.Record{}
	}
	return l.out, nil
}

type loader struct {
	opts LoadOptions
	out  []fuzzy.Record
}

func (l *loader) json(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read json: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if !json.Valid(data) {
		return fmt.Errorf("decode json: invalid document")
	}
	doc, err := l.root(data)
	if err != nil {
		return err
	}
	return l.add(doc, "")
}

func (l *loader) jsonl(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		if !json.Valid(b) {
			return fmt.Errorf("decode jsonl line %d: invalid json", line)
		}
		doc, err := l.root(b)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := l.add(doc, fmt.Sprintf("line %d", line)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read jsonl: %w", err)
	}
	return nil
}

func (l *loader) yaml(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	for n := 1; ; n++ {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode yaml document %d: %w", n, err)
		}
		if doc == nil {
			continue
		}
		if l.opts.Root != "" {
			if doc, err = l.rootOf(doc); err != nil {
				return fmt.Errorf("yaml document %d: %w", n, err)
			}
		}
		if err := l.add(doc, fmt.Sprintf("document %d", n)); err != nil {
			return err
		}
	}
}

func (l *loader) toml(r io.Reader) error {
	var doc map[string]any
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("decode toml: %w", err)
	}
	if l.opts.Root != "" {
		v, err := l.rootOf(doc)
		if err != nil {
			return err
		}
		return l.add(v, "")
	}
	v, ok := doc[DefaultTOMLKey]
	if !ok {
		return fmt.Errorf("%w: toml has no [[%s]] tables", ErrRootNotFound, DefaultTOMLKey)
	}
	return l.add(v, "")
}

// root applies the gjson root path to raw JSON and returns the decoded value.
func (l *loader) root(data []byte) (any, error) {
	if l.opts.Root == "" {
		return decodeJSON(data)
	}
	res := gjson.GetBytes(data, l.opts.Root)
	if !res.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, l.opts.Root)
	}
	return decodeJSON([]byte(res.Raw))
}

// decodeJSON keeps numbers as json.Number so integers beyond float64
// precision are stored and exported exactly as they were written.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// rootOf applies the root path to an already decoded YAML or TOML value by
// way of its JSON rendering, so every format shares gjson path semantics.
func (l *loader) rootOf(v any) (any, error) {
	data, err := json.Marshal(normalise(v))
	if err != nil {
		return nil, fmt.Errorf("apply root %s: %w", l.opts.Root, err)
	}
	return l.root(data)
}

// add appends the records held by v: an object is one record, an array
// holds one record per element.
func (l *loader) add(v any, where string) error {
	switch t := v.(type) {
	case []any:
		for i, e := range t {
			m, ok := object(e)
			if !ok {
				return notObject(where, i)
			}
			if err := l.push(m); err != nil {
				return err
			}
		}
		return nil
	case []map[string]any:
		for _, m := range t {
			if err := l.push(m); err != nil {
				return err
			}
		}
		return nil
	}
	m, ok := object(v)
	if !ok {
		return notObject(where, -1)
	}
	return l.push(m)
}

func (l *loader) push(m map[string]any) error {
	if l.opts.MaxRecords > 0 && len(l.out) >= l.opts.MaxRecords {
		return fmt.Errorf("%w: limit is %d", ErrTooManyRecords, l.opts.MaxRecords)
	}
	l.out = append(l.out, fuzzy.FromMap(m))
	return nil
}

func notObject(where string, i int) error {
	switch {
	case where != "" && i >= 0:
		return fmt.Errorf("%w: %s, element %d", ErrNotObject, where, i)
	case where != "":
		return fmt.Errorf("%w: %s", ErrNotObject, where)
	case i >= 0:
		return fmt.Errorf("%w: element %d", ErrNotObject, i)
	}
	return ErrNotObject
}

func object(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		m, ok := normalise(t).(map[string]any)
		return m, ok
	}
	return nil, false
}

// normalise converts map[any]any (YAML with non-string keys) into
// map[string]any so the value can be JSON encoded. Non-string keys are
// formatted with %v.
func normalise(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[fmt.Sprint(k)] = normalise(vv)
		}
		return m
	case map[string]any:
		for k, vv := range t {
			t[k] = normalise(vv)
		}
		return t
	case []any:
		for i := range t {
			t[i] = normalise(t[i])
		}
		return t
	}
	return v
}
