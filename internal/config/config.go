// Package config provides reading and writing of sift configuration.
// Supports both global (~/.sift/config.yaml) and local (.sift/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to wherever the config was read from.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/sift/fuzzy"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.sift/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .sift/config.yaml
	ScopeLocal
)

// Dir is the directory holding both the local config and the repository
// databases.
const Dir = ".sift"

// Author is recorded against audit log entries.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Search holds the default search options. CLI flags and MCP arguments
// override them per call.
type Search struct {
	CaseSensitive *bool  `yaml:"case_sensitive,omitempty"`
	FieldMatching *bool  `yaml:"field_matching,omitempty"`
	MaxInsertions *int   `yaml:"max_insertions,omitempty"`
	Fields        string `yaml:"fields,omitempty"`
	Limit         *int   `yaml:"limit,omitempty"`
	Workers       *int   `yaml:"workers,omitempty"`
}

// Output holds presentation preferences.
type Output struct {
	Colour *bool `yaml:"colour,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxRecords  *int   `yaml:"max_records,omitempty"`
	MaxFileSize *int64 `yaml:"max_file_size,omitempty"`
}

// Default values applied when not configured.
const (
	DefaultLimit       = 20
	DefaultWorkers     = 0 // GOMAXPROCS
	DefaultMaxRecords  = 1_000_000
	DefaultMaxFileSize = 256 * 1024 * 1024 // 256 MB
)

// Validation bounds for configuration values.
const (
	MaxMaxInsertions = 1 << 20
	MaxLimit         = 100_000
	MaxWorkers       = 256
	MinMaxRecords    = 1
	MaxMaxRecords    = 100_000_000
	MinMaxFileSize   = 1
	MaxMaxFileSize   = 8 * 1024 * 1024 * 1024 // 8 GB
)

// Config contains configuration for sift.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Search Search `yaml:"search,omitempty"`
	Output Output `yaml:"output,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Search.MaxInsertions != nil {
		v := *c.Search.MaxInsertions
		if v < fuzzy.Unbounded || v > MaxMaxInsertions {
			return fmt.Errorf("%w: search.max_insertions must be between %d and %d, got %d",
				ErrInvalidValue, fuzzy.Unbounded, MaxMaxInsertions, v)
		}
	}
	if c.Search.Limit != nil {
		v := *c.Search.Limit
		if v < 0 || v > MaxLimit {
			return fmt.Errorf("%w: search.limit must be between 0 and %d, got %d",
				ErrInvalidValue, MaxLimit, v)
		}
	}
	if c.Search.Workers != nil {
		v := *c.Search.Workers
		if v < 0 || v > MaxWorkers {
			return fmt.Errorf("%w: search.workers must be between 0 and %d, got %d",
				ErrInvalidValue, MaxWorkers, v)
		}
	}
	if c.Limits.MaxRecords != nil {
		v := *c.Limits.MaxRecords
		if v < MinMaxRecords || v > MaxMaxRecords {
			return fmt.Errorf("%w: limits.max_records must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxRecords, MaxMaxRecords, v)
		}
	}
	if c.Limits.MaxFileSize != nil {
		v := *c.Limits.MaxFileSize
		if v < MinMaxFileSize || v > MaxMaxFileSize {
			return fmt.Errorf("%w: limits.max_file_size must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxFileSize, int64(MaxMaxFileSize), v)
		}
	}
	return nil
}

// SearchOptions returns the configured search defaults layered over
// fuzzy.DefaultOptions.
func (c *Config) SearchOptions() fuzzy.Options {
	return fuzzy.DefaultOptions().Merge(fuzzy.Overrides{
		CaseSensitive: c.Search.CaseSensitive,
		FieldMatching: c.Search.FieldMatching,
		MaxInsertions: c.Search.MaxInsertions,
	})
}

// Fields returns the default field selector spec (empty when unset).
func (c *Config) Fields() string {
	return c.Search.Fields
}

// Limit returns the default number of results to print (0 means all).
func (c *Config) Limit() int {
	if c.Search.Limit == nil {
		return DefaultLimit
	}
	return *c.Search.Limit
}

// Workers returns the number of search goroutines (0 means GOMAXPROCS).
func (c *Config) Workers() int {
	if c.Search.Workers == nil {
		return DefaultWorkers
	}
	return *c.Search.Workers
}

// Colour returns the colour preference and whether it was set. When unset
// callers fall back to terminal detection.
func (c *Config) Colour() (colour, set bool) {
	if c.Output.Colour == nil {
		return false, false
	}
	return *c.Output.Colour, true
}

// MaxRecords returns the maximum records accepted by a single import.
func (c *Config) MaxRecords() int {
	if c.Limits.MaxRecords == nil {
		return DefaultMaxRecords
	}
	return *c.Limits.MaxRecords
}

// MaxFileSize returns the maximum size in bytes of an imported file.
func (c *Config) MaxFileSize() int64 {
	if c.Limits.MaxFileSize == nil {
		return DefaultMaxFileSize
	}
	return *c.Limits.MaxFileSize
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.sift/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
