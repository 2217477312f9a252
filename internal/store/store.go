// Package store defines record persistence types and the Store interface.
// Implementations handle the actual database operations while consumers
// depend only on this interface, enabling testing and alternative backends.
package store

import (
	"encoding/json"
	"time"
)

// Collection is a named group of records. Searches always target a single
// collection.
type Collection struct {
	ID          int64  // Database primary key (internal)
	Name        string // Unique slug (e.g., "people", "contacts-2024")
	Description string // Free text shown by "sift ls -l"
	Records     int64  // Number of records currently held
	CreatedAt   int64  // Unix timestamp of creation
	UpdatedAt   int64  // Unix timestamp of the last import
}

// CollectionJSON is the API-friendly representation of a Collection with
// RFC3339 timestamps.
type CollectionJSON struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Records     int64  `json:"records"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToJSON converts a Collection to its API representation.
func (c *Collection) ToJSON() CollectionJSON {
	return CollectionJSON{
		Name:        c.Name,
		Description: c.Description,
		Records:     c.Records,
		CreatedAt:   time.Unix(c.CreatedAt, 0).UTC().Format(time.RFC3339),
		UpdatedAt:   time.Unix(c.UpdatedAt, 0).UTC().Format(time.RFC3339),
	}
}

// Record is a stored JSON object. Position is the record's zero-based index
// within its collection and defines the order records are searched in.
type Record struct {
	ID        int64
	Position  int
	Data      json.RawMessage
	CreatedAt int64
}

// MarshalJSON encodes a value with indentation for human-readable CLI output.
// Use this instead of json.Marshal when the output will be displayed to users.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// CreateOptions configures collection creation.
type CreateOptions struct {
	Description string
}

// Stats provides aggregate database statistics for operational visibility.
type Stats struct {
	Collections int64  `json:"collections"` // Collection count
	Records     int64  `json:"records"`     // Records across all collections
	Bytes       int64  `json:"bytes"`       // Total size of stored record JSON
	Largest     string `json:"largest"`     // Collection holding the most records
	OldestAt    int64  `json:"oldest_at"`   // Unix timestamp of the earliest collection (0 if none)
	NewestAt    int64  `json:"newest_at"`   // Unix timestamp of the most recent import (0 if none)
}
