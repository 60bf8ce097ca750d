package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dotcommander/archcritic/internal/critic"
	"github.com/dotcommander/archcritic/internal/scoring"
	"golang.org/x/term"
)

// exceptionalScore is the lowest score that earns a celebration.
const exceptionalScore = 90

// CompactFormatter prints one aligned line per proposal followed by a summary line.
type CompactFormatter struct {
	w        io.Writer
	colorize bool
}

// NewCompactFormatter creates a new CompactFormatter.
func NewCompactFormatter(w io.Writer, colorize bool) *CompactFormatter {
	return &CompactFormatter{w: w, colorize: colorize}
}

// FormatAll prints the listing for evals.
func (f *CompactFormatter) FormatAll(evals []critic.ProposalEvaluation) error {
	if len(evals) == 0 {
		fmt.Fprintln(f.w, "No proposals found")
		return nil
	}

	maxNameLen := 0
	for _, e := range evals {
		if n := len(e.Proposal.Name()); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Fprintln(f.w)
	for _, e := range evals {
		name := e.Proposal.Name()
		padding := strings.Repeat(" ", maxNameLen-len(name))
		label := scoring.Classify(e.Score.Total).Label
		if f.colorize {
			label = dimStyle.Render(label)
		}
		fmt.Fprintf(f.w, "  %s%s  %s  %s\n", name, padding, ScoreLabel(e.Score.Total, f.colorize), label)
	}

	f.printSummaryLine(critic.Summarize(evals, 0))
	return nil
}

func (f *CompactFormatter) printSummaryLine(s critic.Summary) {
	text := fmt.Sprintf("%d %s, average %.1f, range %.1f-%.1f",
		s.Total, pluralizeCount("proposal", s.Total), s.Average, s.Lowest, s.Highest)

	fmt.Fprintln(f.w)
	switch {
	case f.colorize && s.Lowest >= exceptionalScore && f.isTTY():
		printCelebration(f.w, text)
	case f.colorize:
		fmt.Fprintln(f.w, scoreStyle(s.Average).Render(text))
	default:
		fmt.Fprintln(f.w, text)
	}
}

// isTTY returns true if the formatter writes to a terminal
func (f *CompactFormatter) isTTY() bool {
	file, ok := f.w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// pluralizeCount returns singular or plural form based on count.
func pluralizeCount(s string, count int) string {
	if count == 1 {
		return s
	}
	return s + "s"
}
