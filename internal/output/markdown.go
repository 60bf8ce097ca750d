package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotcommander/archcritic/internal/critic"
	"github.com/dotcommander/archcritic/internal/critique"
	"github.com/dotcommander/archcritic/internal/scoring"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	w       io.Writer
	verbose bool
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(w io.Writer, verbose bool) *MarkdownFormatter {
	return &MarkdownFormatter{w: w, verbose: verbose}
}

// Format writes evals as a Markdown document
func (f *MarkdownFormatter) Format(evals []critic.ProposalEvaluation) error {
	var builder strings.Builder

	builder.WriteString("# ArchCritic Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", reportTime(evals).Format(critique.TimestampLayout)))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	builder.WriteString("## Summary\n\n")
	if len(evals) == 0 {
		builder.WriteString("*No proposals found.*\n")
	} else {
		builder.WriteString("| Proposal | Score | Classification | Style |\n")
		builder.WriteString("|----------|-------|----------------|-------|\n")
		for _, e := range evals {
			name := e.Proposal.Name()
			builder.WriteString(fmt.Sprintf("| [%s](#%s) | %.1f | %s | %s |\n",
				name, createAnchor(name), e.Score.Total,
				scoring.Classify(e.Score.Total).Label, styleOrDash(e.Result.Style)))
		}
		builder.WriteString("\n")
	}

	for _, e := range evals {
		f.writeProposal(&builder, e)
	}

	if _, err := io.WriteString(f.w, builder.String()); err != nil {
		return fmt.Errorf("error writing markdown: %w", err)
	}
	return nil
}

func (f *MarkdownFormatter) writeProposal(b *strings.Builder, e critic.ProposalEvaluation) {
	b.WriteString(fmt.Sprintf("## %s\n\n", e.Proposal.Name()))
	if e.Proposal.Author != "" {
		b.WriteString(fmt.Sprintf("**Author:** %s\n\n", e.Proposal.Author))
	}
	b.WriteString(fmt.Sprintf("**Overall score:** %.1f/100\n\n", e.Score.Total))

	b.WriteString("| Criterion | Score | Rating | Matched keywords |\n")
	b.WriteString("|-----------|-------|--------|------------------|\n")
	for _, cs := range e.Result.Criteria {
		perf := scoring.PerformanceFromScore(cs.Score)
		b.WriteString(fmt.Sprintf("| %s | %.1f | %s %s | %s |\n",
			cs.Name, cs.Score, perf.Stars, perf.Label, strings.Join(cs.Matches, ", ")))
	}
	b.WriteString("\n")

	for _, s := range e.Report.Sections {
		if s.Title == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("### %s\n\n", titleCase(s.Title)))
		b.WriteString("```text\n")
		b.WriteString(strings.TrimRight(s.Body, "\n"))
		b.WriteString("\n```\n\n")
	}

	if f.verbose {
		b.WriteString("### Score Breakdown\n\n")
		b.WriteString("| Part | Points |\n")
		b.WriteString("|------|--------|\n")
		for _, c := range e.Score.Contributions {
			b.WriteString(fmt.Sprintf("| %s | %.2f |\n", c.Criterion, c.Weighted))
		}
		b.WriteString(fmt.Sprintf("| complexity bonus | %.2f |\n", e.Score.ComplexityBonus))
		b.WriteString(fmt.Sprintf("| depth bonus | %.2f |\n", e.Score.DepthBonus))
		b.WriteString(fmt.Sprintf("| style bonus | %.2f |\n", e.Score.StyleBonus))
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
}

func styleOrDash(style string) string {
	if style == "" {
		return "-"
	}
	return style
}

// titleCase turns "EXECUTIVE SUMMARY" into "Executive Summary".
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// createAnchor creates a markdown-safe anchor
func createAnchor(text string) string {
	anchor := strings.ToLower(text)
	anchor = strings.ReplaceAll(anchor, " ", "-")
	anchor = strings.ReplaceAll(anchor, ".", "")
	anchor = strings.ReplaceAll(anchor, "/", "-")
	return anchor
}

