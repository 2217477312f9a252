// Package fuzzy implements fuzzy subsequence search over structured records.
//
// A pattern matches a text when its characters appear in the text in the same
// order, not necessarily next to each other. Every text character skipped
// between two matched pattern characters is an insertion. Characters before
// the first matched character are free, so a match is "slide forward to the
// first hit, then track drift tightly".
//
// # Components
//
// The package is layered leaf-first:
//
//   - matchAt runs a single anchored subsequence scan and enforces the
//     optional insertion cap.
//   - [Find] tries every anchor in a text and keeps the fewest-insertion
//     match, concatenating the index lists of equally good anchors.
//   - [Search] drives Find across every pattern and every selected field of
//     every record, applies the aggregation mode and ranks the accepted
//     records by [Result.Score].
//
// # Usage
//
//	records := []fuzzy.Record{
//	    fuzzy.FromMap(map[string]any{"name": "Robin David", "email": "robin.david@gmail.com"}),
//	}
//	results, err := fuzzy.Search(records, []string{"gmail"}, fuzzy.Fields("name", "email"), fuzzy.DefaultOptions())
//	if errors.Is(err, fuzzy.ErrNothingToSearch) {
//	    // no patterns or no records were given
//	}
//
// # Scoring
//
// A record's score is the sum, over all patterns, of the smallest insertion
// count that pattern achieved in any field, plus the smallest matched index
// divided by 1000. Lower is better. Results are sorted by score with a stable
// sort, so equal scores keep the input order of the records.
//
// # Aggregation
//
// In record-matching mode (the default) a record is accepted when every
// pattern matched somewhere across its fields. With [Options.FieldMatching]
// set, a record is accepted only when a single field matched every pattern,
// and fields that matched only some of the patterns are discarded.
//
// # Cost
//
// Search is a linear scan with no index. The worst case is
// O(records × fields × patterns × len(text)²) because every anchor restarts a
// scan over the rest of the text. [SearchParallel] shards records across
// goroutines when that matters.
//
// # Thread Safety
//
// Search and Find never modify their inputs and keep no state between calls.
// They are safe for concurrent use on shared read-only records.
package fuzzy
