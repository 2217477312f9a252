// collections.go implements collection management and import.

package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/fuzzy"
	"github.com/jpl-au/sift/internal/records"
	"github.com/jpl-au/sift/internal/service"
	"github.com/jpl-au/sift/internal/store"
	"github.com/jpl-au/sift/internal/validate"
)

// CreateCollection creates an empty collection.
func (s *Service) CreateCollection(ctx context.Context, name, description string) (*store.Collection, error) {
	return s.store.CreateCollection(ctx, name, store.CreateOptions{Description: description})
}

// Collection returns one collection with its record count.
func (s *Service) Collection(ctx context.Context, name string) (*store.Collection, error) {
	return s.store.Collection(ctx, name)
}

// ListCollections returns all collections ordered by name.
func (s *Service) ListCollections(ctx context.Context) ([]store.Collection, error) {
	return s.store.ListCollections(ctx)
}

// DropCollection removes a collection and its records.
func (s *Service) DropCollection(ctx context.Context, name string) error {
	if err := s.store.DropCollection(ctx, name); err != nil {
		return err
	}
	s.fireEvent(extension.DropEvent{Collection: name})
	return nil
}

// Import stores recs in the named collection, creating it when missing.
// The configured limits.max_records applies to the collection's total
// after the import.
func (s *Service) Import(ctx context.Context, name string, recs []fuzzy.Record, opts service.ImportOptions) (int, error) {
	name, err := validate.Collection(name)
	if err != nil {
		return 0, err
	}

	created := false
	existing, err := s.store.Collection(ctx, name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if existing, err = s.store.CreateCollection(ctx, name, store.CreateOptions{Description: opts.Description}); err != nil {
			return 0, err
		}
		created = true
	case err != nil:
		return 0, err
	}

	total := len(recs)
	if !opts.Replace {
		total += int(existing.Records)
	}
	if s.maxRecords > 0 && total > s.maxRecords {
		return 0, fmt.Errorf("%w: %s would hold %d records, limit is %d",
			records.ErrTooManyRecords, name, total, s.maxRecords)
	}

	data := make([]json.RawMessage, len(recs))
	for i, r := range recs {
		if data[i], err = records.Encode(r); err != nil {
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
	}

	var n int
	if opts.Replace {
		n, err = s.store.ReplaceRecords(ctx, name, data)
	} else {
		n, err = s.store.AppendRecords(ctx, name, data)
	}
	if err != nil {
		return 0, err
	}

	s.fireEvent(extension.ImportEvent{
		Collection: name,
		Count:      n,
		Created:    created,
		Replaced:   opts.Replace,
		Author:     opts.Author,
	})
	return n, nil
}

// Records returns a collection's records in import order.
func (s *Service) Records(ctx context.Context, name string, limit int) ([]fuzzy.Record, error) {
	rows, err := s.store.Records(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	out := make([]fuzzy.Record, len(rows))
	for i, row := range rows {
		if err := json.Unmarshal(row.Data, &out[i]); err != nil {
			return nil, fmt.Errorf("decode record %d of %s: %w", row.Position, name, err)
		}
	}
	return out, nil
}
