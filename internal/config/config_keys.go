// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to keep the YAML structure apart from the
// string-keyed interface used by "sift config" and the MCP server
// (e.g., "search.max_insertions").
//
// Design: Pointers are used for optional fields so "not set" (nil) and
// "explicitly set to zero/false" stay distinct, and defaults only apply when
// the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/sift/fuzzy"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"search.case_sensitive", "search.field_matching", "search.max_insertions",
		"search.fields", "search.limit", "search.workers",
		"output.colour",
		"limits.max_records", "limits.max_file_size",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	opts := c.SearchOptions()
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "search.case_sensitive":
		return strconv.FormatBool(opts.CaseSensitive), nil
	case "search.field_matching":
		return strconv.FormatBool(opts.FieldMatching), nil
	case "search.max_insertions":
		return strconv.Itoa(opts.MaxInsertions), nil
	case "search.fields":
		return c.Fields(), nil
	case "search.limit":
		return strconv.Itoa(c.Limit()), nil
	case "search.workers":
		return strconv.Itoa(c.Workers()), nil
	case "output.colour":
		colour, set := c.Colour()
		if !set {
			return "auto", nil
		}
		return strconv.FormatBool(colour), nil
	case "limits.max_records":
		return strconv.Itoa(c.MaxRecords()), nil
	case "limits.max_file_size":
		return strconv.FormatInt(c.MaxFileSize(), 10), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "search.case_sensitive":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Search.CaseSensitive = &b
	case "search.field_matching":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Search.FieldMatching = &b
	case "search.max_insertions":
		n, err := strconv.Atoi(value)
		if err != nil || n < fuzzy.Unbounded || n > MaxMaxInsertions {
			return fmt.Errorf("%w: search.max_insertions must be an integer between -1 and %d", ErrInvalidValue, MaxMaxInsertions)
		}
		c.Search.MaxInsertions = &n
	case "search.fields":
		if fuzzy.ParseSelector(value).String() == "" {
			return fmt.Errorf("%w: search.fields must name at least one field", ErrInvalidValue)
		}
		c.Search.Fields = value
	case "search.limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > MaxLimit {
			return fmt.Errorf("%w: search.limit must be an integer between 0 and %d", ErrInvalidValue, MaxLimit)
		}
		c.Search.Limit = &n
	case "search.workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > MaxWorkers {
			return fmt.Errorf("%w: search.workers must be an integer between 0 and %d", ErrInvalidValue, MaxWorkers)
		}
		c.Search.Workers = &n
	case "output.colour":
		if strings.EqualFold(value, "auto") {
			c.Output.Colour = nil
			return nil
		}
		b, err := parseBool(key, value)
		if err != nil {
			return fmt.Errorf("%w: output.colour must be true, false or auto", ErrInvalidValue)
		}
		c.Output.Colour = &b
	case "limits.max_records":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxRecords || n > MaxMaxRecords {
			return fmt.Errorf("%w: limits.max_records must be a positive integer", ErrInvalidValue)
		}
		c.Limits.MaxRecords = &n
	case "limits.max_file_size":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < MinMaxFileSize || n > MaxMaxFileSize {
			return fmt.Errorf("%w: limits.max_file_size must be a positive integer", ErrInvalidValue)
		}
		c.Limits.MaxFileSize = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		all[k] = v
	}
	return all
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "search.case_sensitive":
		return c.Search.CaseSensitive != nil
	case "search.field_matching":
		return c.Search.FieldMatching != nil
	case "search.max_insertions":
		return c.Search.MaxInsertions != nil
	case "search.fields":
		return c.Search.Fields != ""
	case "search.limit":
		return c.Search.Limit != nil
	case "search.workers":
		return c.Search.Workers != nil
	case "output.colour":
		return c.Output.Colour != nil
	case "limits.max_records":
		return c.Limits.MaxRecords != nil
	case "limits.max_file_size":
		return c.Limits.MaxFileSize != nil
	default:
		return false
	}
}
