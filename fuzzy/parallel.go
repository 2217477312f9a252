package fuzzy

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SearchParallel is Search with records sharded across up to workers
// goroutines. workers <= 0 uses GOMAXPROCS. The output is identical to Search
// for the same input; cancelling ctx stops the scan between records and
// returns ctx.Err().
func SearchParallel(ctx context.Context, records []Record, patterns []string, selector Selector, opts Options, workers int) ([]Result, error) {
	pats := Sanitize(patterns, opts.CaseSensitive)
	if len(records) == 0 || len(pats) == 0 {
		return nil, ErrNothingToSearch
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	paths := selector.Paths()
	slots := make([]*Result, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if r, ok := searchRecord(records[i], pats, paths, opts); ok {
				slots[i] = &r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, 0)
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	sortResults(results)
	return results, nil
}
