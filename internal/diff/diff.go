// Package diff explains fuzzy matches as edit scripts. A match of pattern in
// text is the pattern with characters inserted: the matched characters are
// equal runs, the skipped characters are insertions. Insertions between the
// first and last matched character are the ones the matcher counts.
package diff

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Explanation is the best match of a pattern in a text, as a diff.
type Explanation struct {
	Pattern    string    `json:"pattern"`
	Text       string    `json:"text"`
	Matched    bool      `json:"matched"`
	Insertions int       `json:"insertions"`
	Indexes    []int     `json:"matchIndexes"`
	Segments   []Segment `json:"segments,omitempty"`

	diffs []diffmatchpatch.Diff
}

// Segment is one run of an explanation.
type Segment struct {
	Op   string `json:"op"` // "match", "skip" (counted insertion) or "context"
	Text string `json:"text"`
}

const (
	OpMatch   = "match"
	OpSkip    = "skip"
	OpContext = "context"
)

// Explain finds the best match of pattern in text and describes it.
func Explain(pattern, text string, opts fuzzy.Options) Explanation {
	e := Explanation{Pattern: pattern, Text: text}
	m, ok := fuzzy.Find(pattern, text, opts)
	if !ok {
		return e
	}
	e.Matched = true
	e.Insertions = m.Insertions
	e.Indexes = m.Indexes
	e.diffs, e.Segments = build(text, firstSpan(m.Indexes, utf8.RuneCountInString(m.Value)))
	return e
}

// build walks text once, producing go-diff runs and the matching segments
// for one matched span.
func build(text string, span []int) ([]diffmatchpatch.Diff, []Segment) {
	if len(span) == 0 {
		return nil, nil
	}
	matched := make(map[int]bool, len(span))
	for _, i := range span {
		matched[i] = true
	}
	first, last := span[0], span[len(span)-1]

	var (
		diffs []diffmatchpatch.Diff
		segs  []Segment
	)
	add := func(op string, r rune) {
		if n := len(segs); n > 0 && segs[n-1].Op == op {
			segs[n-1].Text += string(r)
			diffs[n-1].Text += string(r)
			return
		}
		t := diffmatchpatch.DiffInsert
		if op == OpMatch {
			t = diffmatchpatch.DiffEqual
		}
		segs = append(segs, Segment{Op: op, Text: string(r)})
		diffs = append(diffs, diffmatchpatch.Diff{Type: t, Text: string(r)})
	}
	for i, r := range []rune(text) {
		switch {
		case matched[i]:
			add(OpMatch, r)
		case i > first && i < last:
			add(OpSkip, r)
		default:
			add(OpContext, r)
		}
	}
	return diffs, segs
}

// firstSpan returns the indexes of the first of several tied matches. The
// finder concatenates tied matches and each holds one index per pattern rune.
func firstSpan(indexes []int, n int) []int {
	if n <= 0 || n > len(indexes) {
		return indexes
	}
	return indexes[:n]
}

// Source returns the text the explanation's diff starts from: the matched
// characters, as they appear in the text.
func (e Explanation) Source() string {
	return diffmatchpatch.New().DiffText1(e.equalOnly())
}

// Target returns the text the diff produces. It equals e.Text for any match.
func (e Explanation) Target() string {
	return diffmatchpatch.New().DiffText2(e.diffs)
}

// Distance is the total number of inserted characters, counted or not.
func (e Explanation) Distance() int {
	return diffmatchpatch.New().DiffLevenshtein(e.diffs)
}

func (e Explanation) equalOnly() []diffmatchpatch.Diff {
	out := make([]diffmatchpatch.Diff, 0, len(e.diffs))
	for _, d := range e.diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			out = append(out, d)
		}
	}
	return out
}

// Markers returns a line with ^ under each matched rune of text.
func Markers(text string, indexes []int) string {
	n := len([]rune(text))
	line := []rune(strings.Repeat(" ", n))
	for _, i := range indexes {
		if i >= 0 && i < n {
			line[i] = '^'
		}
	}
	return strings.TrimRight(string(line), " ")
}

// Colourise renders the explanation's text with matched characters in
// green and counted insertions in red.
func (e Explanation) Colourise() string {
	const (
		red   = "\033[31m"
		green = "\033[1;32m"
		reset = "\033[0m"
	)
	var b strings.Builder
	for _, s := range e.Segments {
		switch s.Op {
		case OpMatch:
			b.WriteString(green + s.Text + reset)
		case OpSkip:
			b.WriteString(red + s.Text + reset)
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Format returns the explanation as labelled lines.
func (e Explanation) Format(colour bool) string {
	if !e.Matched {
		return fmt.Sprintf("no match for %q in %q\n", e.Pattern, e.Text)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "pattern     %s\n", e.Pattern)
	if colour {
		fmt.Fprintf(&b, "text        %s\n", e.Colourise())
	} else {
		fmt.Fprintf(&b, "text        %s\n", e.Text)
		fmt.Fprintf(&b, "            %s\n", Markers(e.Text, firstSpan(e.Indexes, utf8.RuneCountInString(e.Pattern))))
	}
	fmt.Fprintf(&b, "insertions  %d\n", e.Insertions)
	return b.String()
}
