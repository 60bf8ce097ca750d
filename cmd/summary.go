package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/archcritic/internal/critic"
	"github.com/spf13/cobra"
)

// summaryLimit is how many lowest-scoring proposals are listed.
const summaryLimit = 5

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [files...]",
		Short: "Show score distribution across proposals",
		Long: `Critiques every proposal (the given files, or everything discovered under --root)
and displays a summary with the classification distribution, detected styles
and the lowest-scoring proposals.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args)
		},
	}
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	c, err := newCritic(cfg, newLogger(cmd.ErrOrStderr(), cfg.Verbose))
	if err != nil {
		return err
	}

	proposals, err := collectProposals(cmd, cfg, args, "")
	if err != nil {
		return err
	}
	evals, err := c.EvaluateProposals(cmd.Context(), proposals)
	if err != nil {
		return err
	}

	printSummaryReport(cmd.OutOrStdout(), critic.Summarize(evals, summaryLimit), styleCounts(evals), newPrintStyles(cfg.Color))
	return nil
}

// styleCount is the number of proposals in one detected style.
type styleCount struct {
	style string
	count int
}

// styleCounts tallies detected styles, most common first; ties sort by name.
func styleCounts(evals []critic.ProposalEvaluation) []styleCount {
	counts := make(map[string]int)
	for _, e := range evals {
		style := e.Result.Style
		if style == "" {
			style = "undetected"
		}
		counts[style]++
	}

	var out []styleCount
	for style, count := range counts {
		out = append(out, styleCount{style, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].style < out[j].style
	})
	return out
}

// printStyles holds all the styles used in the summary report.
type printStyles struct {
	header lipgloss.Style
	tiers  []lipgloss.Style
	dim    lipgloss.Style
}

// newPrintStyles creates the summary styles. Without colour every style renders
// text unchanged.
func newPrintStyles(colorize bool) printStyles {
	if !colorize {
		plain := lipgloss.NewStyle()
		return printStyles{
			header: plain,
			tiers:  []lipgloss.Style{plain, plain, plain, plain, plain},
			dim:    plain,
		}
	}
	return printStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		tiers: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
		dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

const summaryWidth = 70

func printSummaryReport(w io.Writer, s critic.Summary, styles []styleCount, ps printStyles) {
	rule := func(left, fill, right string) {
		fmt.Fprintln(w, ps.header.Render(left+strings.Repeat(fill, summaryWidth)+right))
	}
	line := func(format string, a ...any) {
		fmt.Fprintf(w, "║ %s ║\n", padRight(fmt.Sprintf(format, a...), summaryWidth-2))
	}

	fmt.Fprintln(w)
	rule("╔", "═", "╗")
	line("%s", centre("PROPOSAL CRITIQUE SUMMARY", summaryWidth-2))
	rule("╠", "═", "╣")
	line("Proposals Analyzed: %d", s.Total)
	line("Average: %.1f   Highest: %.1f   Lowest: %.1f", s.Average, s.Highest, s.Lowest)

	rule("╠", "─", "╣")
	line("CLASSIFICATION DISTRIBUTION")
	for i, tc := range s.Tiers {
		pct := 0.0
		if s.Total > 0 {
			pct = float64(tc.Count) / float64(s.Total) * 100
		}
		label := ps.tiers[i%len(ps.tiers)].Render(padRight(tc.Label, 37))
		line("  %s %3d (%5.1f%%) %s", label, tc.Count, pct, renderBar(tc.Count, s.Total))
	}

	rule("╠", "─", "╣")
	line("DETECTED STYLES")
	for i, sc := range styles {
		if i >= summaryLimit {
			break
		}
		line("  %s %-40s %3d", ps.dim.Render(fmt.Sprintf("%d.", i+1)), sc.style, sc.count)
	}

	rule("╠", "─", "╣")
	line("LOWEST SCORING PROPOSALS")
	for i, e := range s.Weakest {
		name := e.Proposal.Name()
		if len(name) > 40 {
			name = "..." + name[len(name)-37:]
		}
		line("  %s %-40s %5.1f", ps.dim.Render(fmt.Sprintf("%d.", i+1)), name, e.Score.Total)
	}
	rule("╚", "═", "╝")
	fmt.Fprintln(w)
}

func renderBar(count, total int) string {
	if total == 0 {
		return strings.Repeat("░", 10)
	}
	barWidth := 10
	filled := (count * barWidth) / total
	if count > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func centre(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
