package fuzzy

// Find returns the best subsequence match of pattern in text.
//
// Unless opts.CaseSensitive is set both strings are lowercased first, and the
// returned [Match.Value] is the lowercased pattern. Every offset whose
// character equals the first pattern character is tried as an anchor. The
// anchor with the fewest insertions wins. Anchors that tie with the current
// best append their indexes to it, so a field can report several equally good
// start positions. ok is false when no anchor produced a match.
func Find(pattern, text string, opts Options) (m Match, ok bool) {
	var p, t []rune
	if opts.CaseSensitive {
		p, t = []rune(pattern), []rune(text)
	} else {
		p, t = fold(pattern), fold(text)
	}
	if len(p) == 0 {
		return Match{}, false
	}

	for i := range t {
		if t[i] != p[0] {
			continue
		}
		ins, idx, matched := matchAt(p, t, i, opts.MaxInsertions)
		if !matched {
			continue
		}
		switch {
		case !ok || ins < m.Insertions:
			m.Insertions = ins
			m.Indexes = idx
			ok = true
		case ins == m.Insertions:
			m.Indexes = append(m.Indexes, idx...)
		}
	}
	if !ok {
		return Match{}, false
	}
	m.Value = string(p)
	return m, true
}
