package fuzzy

import (
	"errors"
	"sort"
)

// ErrNothingToSearch is returned when there are no usable patterns or no
// records. It distinguishes "nothing was requested" from "nothing matched",
// which is an empty, non-nil result slice.
var ErrNothingToSearch = errors.New("nothing to search")

// FieldResult holds the matches of the patterns that matched one field.
type FieldResult struct {
	Field    string  `json:"field"`
	Patterns []Match `json:"patterns"`
}

// Result is an accepted record with the fields that contributed to it.
type Result struct {
	Record Record        `json:"entry"`
	Info   []FieldResult `json:"info"`
	Score  float64       `json:"score"`
}

// Search ranks records by how well patterns match the fields chosen by
// selector.
//
// Patterns are sanitised first (see [Sanitize]). Fields that are missing or
// not strings are skipped for that record. Accepted records are returned in
// ascending score order; see the package documentation for the aggregation
// modes and the score. ErrNothingToSearch is returned when no patterns remain
// or records is empty.
func Search(records []Record, patterns []string, selector Selector, opts Options) ([]Result, error) {
	pats := Sanitize(patterns, opts.CaseSensitive)
	if len(records) == 0 || len(pats) == 0 {
		return nil, ErrNothingToSearch
	}

	paths := selector.Paths()
	results := make([]Result, 0)
	for _, rec := range records {
		if r, ok := searchRecord(rec, pats, paths, opts); ok {
			results = append(results, r)
		}
	}
	sortResults(results)
	return results, nil
}

// searchRecord applies every pattern to every selected field of rec and
// decides whether the record is accepted.
func searchRecord(rec Record, pats []string, paths []FieldPath, opts Options) (Result, bool) {
	var (
		info      []FieldResult
		fieldFull bool
		matched   = make(map[string]struct{}, len(pats))
	)

	for _, path := range paths {
		text, ok := rec.Lookup(path)
		if !ok {
			continue
		}
		fr := FieldResult{Field: path.String()}
		for _, p := range pats {
			m, ok := Find(p, text, opts)
			if !ok {
				continue
			}
			fr.Patterns = append(fr.Patterns, m)
			matched[p] = struct{}{}
		}

		switch {
		case len(fr.Patterns) == len(pats):
			info = append(info, fr)
			fieldFull = true
		case !opts.FieldMatching && len(fr.Patterns) > 0:
			info = append(info, fr)
		}
	}

	accepted := fieldFull
	if !opts.FieldMatching {
		accepted = len(matched) == len(pats)
	}
	if !accepted {
		return Result{}, false
	}
	return Result{Record: rec, Info: info, Score: score(info)}, true
}

// sortResults orders results by ascending score. The sort is stable so equal
// scores keep record input order.
func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
}
