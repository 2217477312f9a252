// Package progress provides CLI progress indicators for long-running sift
// commands: file-by-file import and database compaction. Output goes to
// stderr to keep stdout clean for piping, and nothing is drawn unless stderr
// is a terminal.
package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// minItems is the minimum number of items before showing progress.
const minItems = 5

// Progress tracks and displays operation progress.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	records int
	isTTY   bool
	width   int
}

// New creates a progress reporter that writes to stderr.
// If total is less than minItems, progress updates are suppressed.
func New(label string, total int) *Progress {
	return NewWriter(os.Stderr, label, total, term.IsTerminal(int(os.Stderr.Fd())))
}

// NewWriter creates a progress reporter on w. tty controls whether anything
// is drawn.
func NewWriter(w io.Writer, label string, total int, tty bool) *Progress {
	return &Progress{w: w, label: label, total: total, isTTY: tty}
}

// Increment advances the progress counter by one item that produced n
// records.
func (p *Progress) Increment(n int) {
	p.current++
	p.records += n
}

// Records returns the records counted so far.
func (p *Progress) Records() int {
	return p.records
}

// Print writes the current progress, overwriting the previous line.
func (p *Progress) Print() {
	if !p.visible() {
		return
	}
	pct := (p.current * 100) / p.total
	line := fmt.Sprintf("%s... %d/%d (%d%%) %d records", p.label, p.current, p.total, pct, p.records)
	p.width = max(p.width, len(line))
	fmt.Fprintf(p.w, "\r%s", line)
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	if !p.visible() || p.width == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
}

func (p *Progress) visible() bool {
	return p.isTTY && p.total >= minItems
}

// Spinner provides visual feedback for operations with no known length.
type Spinner struct {
	w      io.Writer
	label  string
	frame  int
	isTTY  bool
	frames []string
}

// NewSpinner creates a spinner that writes to stderr.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		w:      os.Stderr,
		label:  label,
		isTTY:  term.IsTerminal(int(os.Stderr.Fd())),
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Run calls fn, animating the spinner until it returns.
func (s *Spinner) Run(ctx context.Context, fn func(context.Context) error) error {
	if !s.isTTY {
		return fn(ctx)
	}
	done := make(chan error, 1)
	go func() { done <- fn(ctx) }()

	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	fmt.Fprintf(s.w, "%s %s...", s.frames[0], s.label)
	for {
		select {
		case err := <-done:
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.label)+8))
			return err
		case <-tick.C:
			s.frame = (s.frame + 1) % len(s.frames)
			fmt.Fprintf(s.w, "\r%s %s...", s.frames[s.frame], s.label)
		}
	}
}
