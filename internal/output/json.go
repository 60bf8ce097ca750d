package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/archcritic/internal/analysis"
	"github.com/dotcommander/archcritic/internal/critic"
	"github.com/dotcommander/archcritic/internal/scoring"
)

// ToolName and ToolVersion identify the producer in machine-readable reports.
var (
	ToolName    = "archcritic"
	ToolVersion = "dev"
)

// Report is the machine-readable report shared by the JSON and YAML formatters.
type Report struct {
	Header  Header   `json:"header" yaml:"header"`
	Summary Summary  `json:"summary" yaml:"summary"`
	Results []Result `json:"results" yaml:"results"`
}

// Header contains report metadata
type Header struct {
	Tool      string `json:"tool" yaml:"tool"`
	Version   string `json:"version" yaml:"version"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// Summary contains batch statistics
type Summary struct {
	Total   int     `json:"total" yaml:"total"`
	Average float64 `json:"average" yaml:"average"`
	Highest float64 `json:"highest" yaml:"highest"`
	Lowest  float64 `json:"lowest" yaml:"lowest"`
}

// Result is one proposal's evaluation.
type Result struct {
	Path           string           `json:"path,omitempty" yaml:"path,omitempty"`
	Title          string           `json:"title,omitempty" yaml:"title,omitempty"`
	Author         string           `json:"author,omitempty" yaml:"author,omitempty"`
	Score          float64          `json:"score" yaml:"score"`
	Classification string           `json:"classification" yaml:"classification"`
	Style          string           `json:"style,omitempty" yaml:"style,omitempty"`
	Analysis       *analysis.Result `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	Breakdown      *scoring.Score   `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
	Report         string           `json:"report,omitempty" yaml:"report,omitempty"`
}

// ReportOptions selects which parts of an evaluation go into a Report.
type ReportOptions struct {
	IncludeAnalysis bool
	IncludeProse    bool
}

// BuildReport converts evaluations into the machine-readable structure.
func BuildReport(evals []critic.ProposalEvaluation, opts ReportOptions) Report {
	s := critic.Summarize(evals, 0)
	report := Report{
		Header: Header{
			Tool:      ToolName,
			Version:   ToolVersion,
			Timestamp: reportTime(evals).Format(time.RFC3339),
		},
		Summary: Summary{
			Total:   s.Total,
			Average: s.Average,
			Highest: s.Highest,
			Lowest:  s.Lowest,
		},
		Results: make([]Result, len(evals)),
	}

	for i, e := range evals {
		r := Result{
			Path:           e.Proposal.Path,
			Title:          e.Proposal.Title,
			Author:         e.Proposal.Author,
			Score:          e.Score.Total,
			Classification: scoring.Classify(e.Score.Total).Label,
			Style:          e.Result.Style,
		}
		if opts.IncludeAnalysis {
			result, score := e.Result, e.Score
			r.Analysis = &result
			r.Breakdown = &score
		}
		if opts.IncludeProse {
			r.Report = e.Report.String()
		}
		report.Results[i] = r
	}
	return report
}

// reportTime is the generation time of the first report, or now for an empty batch.
func reportTime(evals []critic.ProposalEvaluation) time.Time {
	if len(evals) > 0 && !evals[0].Report.GeneratedAt.IsZero() {
		return evals[0].Report.GeneratedAt
	}
	return time.Now()
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	w      io.Writer
	indent bool
	opts   ReportOptions
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(w io.Writer, indent bool, opts ReportOptions) *JSONFormatter {
	return &JSONFormatter{w: w, indent: indent, opts: opts}
}

// Format writes evals as a JSON report
func (f *JSONFormatter) Format(evals []critic.ProposalEvaluation) error {
	report := BuildReport(evals, f.opts)

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if _, err := fmt.Fprintln(f.w, string(jsonBytes)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}

