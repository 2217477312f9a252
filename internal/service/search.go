package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/jpl-au/sift/internal/validate"
)

// ErrNoFields is returned when a search names no fields to match against.
var ErrNoFields = errors.New("no fields selected (use --fields or set search.fields)")

// SearchRequest describes one search.
type SearchRequest struct {
	Collection string
	Patterns   []string
	Selector   fuzzy.Selector
	Options    fuzzy.Options

	// Limit truncates the ranked results. 0 returns all of them.
	Limit int

	// Workers sets search parallelism. 1 searches on the calling goroutine,
	// 0 uses GOMAXPROCS.
	Workers int
}

// SearchRecords runs req against records that are already in memory. The
// collection name is ignored. Services call this after loading records, and
// commands call it directly to search files that were never imported.
func SearchRecords(ctx context.Context, recs []fuzzy.Record, req SearchRequest) ([]fuzzy.Result, error) {
	if err := validate.Patterns(req.Patterns); err != nil {
		return nil, err
	}
	if len(req.Selector.Paths()) == 0 {
		return nil, ErrNoFields
	}

	var (
		results []fuzzy.Result
		err     error
	)
	if req.Workers == 1 {
		results, err = fuzzy.Search(recs, req.Patterns, req.Selector, req.Options)
	} else {
		results, err = fuzzy.SearchParallel(ctx, recs, req.Patterns, req.Selector, req.Options, req.Workers)
	}
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}
	return results, nil
}
