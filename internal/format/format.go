// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation so commands focus on their operation: result
// ranking lines, match highlighting, collection listings and statistics.
package format

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jpl-au/sift/fuzzy"
	"github.com/jpl-au/sift/internal/store"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// UseColour resolves the output.colour setting. When the user has not set
// it, colour is used only if stdout is a terminal.
func UseColour(colour, set bool) bool {
	if set {
		return colour
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Styles holds the lipgloss styles used for one writer.
type Styles struct {
	Match lipgloss.Style // matched characters
	Score lipgloss.Style
	Field lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles builds styles rendering to w. With colour false every style
// renders plain text, whatever the terminal supports.
func NewStyles(w io.Writer, colour bool) Styles {
	r := lipgloss.NewRenderer(w)
	if colour {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Match: r.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true),
		Score: r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Field: r.NewStyle().Bold(true),
		Muted: r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// Highlight renders the runes of s at the given indexes with style. Indexes
// may repeat or be out of range; both are ignored.
func Highlight(s string, indexes []int, style lipgloss.Style) string {
	if len(indexes) == 0 {
		return s
	}
	marked := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		marked[i] = true
	}

	var b strings.Builder
	var run []rune
	inRun := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if inRun {
			b.WriteString(style.Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		run = run[:0]
	}
	for i, r := range []rune(s) {
		if marked[i] != inRun {
			flush()
			inRun = marked[i]
		}
		run = append(run, r)
	}
	flush()
	return b.String()
}

// Score formats a result score with enough precision to show the position
// component.
func Score(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}

// Results prints ranked results, one block per record:
//
//	1  0.006  email  loris@gmail.com
//	2  1.001  name   Loris Francois
//	          email  loris@gmail.com
func Results(w io.Writer, results []fuzzy.Result, st Styles) error {
	rankWidth := len(strconv.Itoa(len(results)))
	for i, r := range results {
		fieldWidth := 0
		for _, fr := range r.Info {
			fieldWidth = max(fieldWidth, len(fr.Field))
		}
		lead := fmt.Sprintf("%*d  %s", rankWidth, i+1, st.Score.Render(Score(r.Score)))
		indent := strings.Repeat(" ", rankWidth+2+len(Score(r.Score)))
		for j, fr := range r.Info {
			prefix := indent
			if j == 0 {
				prefix = lead
			}
			value := fieldValue(r.Record, fr.Field)
			fmt.Fprintf(w, "%s  %s  %s\n", prefix,
				st.Field.Render(fmt.Sprintf("%-*s", fieldWidth, fr.Field)),
				Highlight(value, MatchIndexes(fr), st.Match))
		}
	}
	return nil
}

// MatchIndexes merges the indexes of every pattern that matched a field.
func MatchIndexes(fr fuzzy.FieldResult) []int {
	var out []int
	for _, m := range fr.Patterns {
		out = append(out, m.Indexes...)
	}
	return out
}

func fieldValue(r fuzzy.Record, field string) string {
	v, _ := r.Lookup(fuzzy.FieldPath(strings.Split(field, ".")))
	return v
}

// Collections prints collection names, one per line.
func Collections(w io.Writer, cols []store.Collection) error {
	for _, c := range cols {
		fmt.Fprintln(w, c.Name)
	}
	return nil
}

// CollectionsLong prints a table of collections with record counts, last
// import time and description.
func CollectionsLong(w io.Writer, cols []store.Collection, st Styles) error {
	if len(cols) == 0 {
		return nil
	}
	rows := make([][]string, len(cols))
	for i, c := range cols {
		desc := c.Description
		if desc == "" {
			desc = "-"
		}
		rows[i] = []string{
			c.Name,
			strconv.FormatInt(c.Records, 10),
			time.Unix(c.UpdatedAt, 0).Format("2006-01-02 15:04"),
			desc,
		}
	}

	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Headers("NAME", "RECORDS", "UPDATED", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle()
			if row == table.HeaderRow {
				s = st.Muted
			}
			if col == 1 {
				s = s.Align(lipgloss.Right)
			}
			if col < 3 {
				s = s.PaddingRight(2)
			}
			return s
		}).
		Rows(rows...)

	fmt.Fprintln(w, tbl.Render())
	return nil
}

// humanSize formats a byte count as human-readable (e.g., "1.2K", "3.4M").
func humanSize(bytes int64) string {
	const (
		_        = iota
		KB int64 = 1 << (10 * iota)
		MB
		GB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fG", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fM", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fK", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// Stats prints database statistics as aligned key/value lines.
func Stats(w io.Writer, s *store.Stats) error {
	date := func(ts int64) string {
		if ts == 0 {
			return "-"
		}
		return time.Unix(ts, 0).Format("2006-01-02 15:04")
	}
	largest := s.Largest
	if largest == "" {
		largest = "-"
	}
	lines := [][2]string{
		{"collections", strconv.FormatInt(s.Collections, 10)},
		{"records", strconv.FormatInt(s.Records, 10)},
		{"size", humanSize(s.Bytes)},
		{"largest", largest},
		{"oldest", date(s.OldestAt)},
		{"last import", date(s.NewestAt)},
	}
	for _, l := range lines {
		fmt.Fprintf(w, "%-12s %s\n", l[0]+":", l[1])
	}
	return nil
}
