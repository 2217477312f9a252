package fuzzy

import "unicode"

// Match is the outcome of matching one pattern against one field's text.
type Match struct {
	// Value is the pattern as it was compared. Lowercased unless the search
	// is case-sensitive.
	Value string `json:"value"`
	// Insertions counts text characters skipped between consecutive matched
	// pattern characters.
	Insertions int `json:"insertions"`
	// Indexes holds the rune offsets in the text where pattern characters
	// matched. When several anchors tie on insertions their lists are
	// concatenated in anchor order.
	Indexes []int `json:"matchIndexes"`
}

// matchAt scans text from offset, consuming pattern characters in order.
//
// Characters before the first matched pattern character are free. After that
// every non-matching character is an insertion, and the scan fails as soon as
// the count exceeds maxInsertions (when maxInsertions >= 0). It returns the
// insertion count and the matched indexes, or ok=false.
func matchAt(pattern, text []rune, offset, maxInsertions int) (insertions int, indexes []int, ok bool) {
	if len(pattern) == 0 {
		return 0, nil, false
	}
	indexes = make([]int, 0, len(pattern))
	p := 0
	for i := offset; i < len(text); i++ {
		if text[i] == pattern[p] {
			indexes = append(indexes, i)
			p++
			if p == len(pattern) {
				return insertions, indexes, true
			}
			continue
		}
		if len(indexes) > 0 {
			insertions++
			if maxInsertions > -1 && insertions > maxInsertions {
				return 0, nil, false
			}
		}
	}
	return 0, nil, false
}

// fold lowercases rune by rune so offsets into the folded text line up with
// offsets into the original.
func fold(s string) []rune {
	r := []rune(s)
	for i, c := range r {
		r[i] = unicode.ToLower(c)
	}
	return r
}

// foldString is fold for callers that need a string back, such as pattern
// de-duplication.
func foldString(s string) string {
	return string(fold(s))
}
