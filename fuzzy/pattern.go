package fuzzy

// Sanitize returns the non-empty patterns in order with duplicates removed.
// Duplicates are detected after lowercasing unless caseSensitive is set; the
// first spelling wins.
func Sanitize(patterns []string, caseSensitive bool) []string {
	if len(patterns) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(patterns))
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		key := p
		if !caseSensitive {
			key = foldString(p)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// SanitizeAny is Sanitize for loosely typed input such as decoded JSON.
// Entries that are not strings are dropped.
func SanitizeAny(values []any, caseSensitive bool) []string {
	strs := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			strs = append(strs, s)
		}
	}
	return Sanitize(strs, caseSensitive)
}
