package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotcommander/archcritic/internal/critic"
	"github.com/dotcommander/archcritic/internal/critique"
)

// ConsoleFormatter prints full reports for terminal display. Without colour the
// output is byte-identical to the plain-text report.
type ConsoleFormatter struct {
	w        io.Writer
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(w io.Writer, quiet, verbose, colorize bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		w:        w,
		quiet:    quiet,
		verbose:  verbose,
		colorize: colorize,
	}
}

// Format prints each report; batches of more than one proposal end with a
// compact listing. Quiet mode prints the listing only.
func (f *ConsoleFormatter) Format(evals []critic.ProposalEvaluation) error {
	if !f.quiet {
		for i, e := range evals {
			if len(evals) > 1 {
				f.printProposalHeader(i, e)
			}
			f.printReport(e.Report)
			if f.verbose {
				f.printBreakdown(e)
			}
		}
	}

	if f.quiet || len(evals) > 1 {
		return NewCompactFormatter(f.w, f.colorize).FormatAll(evals)
	}
	return nil
}

func (f *ConsoleFormatter) printProposalHeader(i int, e critic.ProposalEvaluation) {
	if i > 0 {
		fmt.Fprintln(f.w)
	}
	name, path := e.Proposal.Name(), e.Proposal.Path
	if f.colorize {
		name, path = boldStyle.Render(name), dimStyle.Render(path)
	}
	fmt.Fprintf(f.w, "%s %s\n", name, path)
}

func (f *ConsoleFormatter) printReport(r critique.Report) {
	if !f.colorize {
		fmt.Fprintln(f.w, r.String())
		return
	}

	parts := make([]string, len(r.Sections))
	for i, s := range r.Sections {
		switch {
		case s.Kind == critique.SectionHeader:
			parts[i] = boxStyle.Render(s.Body)
		case s.Title != "":
			parts[i] = "\n" + bannerStyle.Render(critique.Banner(s.Title)) + "\n\n" + s.Body
		default:
			parts[i] = s.Body
		}
	}
	fmt.Fprintln(f.w, strings.Join(parts, "\n"))
}

// printBreakdown shows how the overall score was reached.
func (f *ConsoleFormatter) printBreakdown(e critic.ProposalEvaluation) {
	s := e.Score
	fmt.Fprintln(f.w, "\nSCORE BREAKDOWN:")
	for _, c := range s.Contributions {
		fmt.Fprintf(f.w, "  %-16s %5.1f x %.2f x %.1f = %5.2f\n",
			strings.ToUpper(c.Criterion), c.Score, c.Weight, c.Multiplier, c.Weighted)
	}
	fmt.Fprintf(f.w, "  %-16s %5.2f\n", "WEIGHTED", s.Weighted)
	fmt.Fprintf(f.w, "  %-16s %5.2f\n", "COMPLEXITY", s.ComplexityBonus)
	fmt.Fprintf(f.w, "  %-16s %5.2f\n", "DEPTH", s.DepthBonus)
	fmt.Fprintf(f.w, "  %-16s %5.2f\n", "STYLE", s.StyleBonus)
	fmt.Fprintf(f.w, "  %-16s %s\n", "TOTAL", ScoreLabel(s.Total, f.colorize))
}
