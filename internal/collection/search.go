// search.go implements fuzzy search over stored collections.
//
// Records are loaded in position order and handed to the in-memory engine,
// so results for equal scores follow import order.

package collection

import (
	"context"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/jpl-au/sift/internal/service"
)

// Search runs a fuzzy search over one collection.
func (s *Service) Search(ctx context.Context, req service.SearchRequest) ([]fuzzy.Result, error) {
	recs, err := s.Records(ctx, req.Collection, 0)
	if err != nil {
		return nil, err
	}
	return service.SearchRecords(ctx, recs, req)
}
