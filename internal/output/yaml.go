package output

import (
	"fmt"
	"io"

	"github.com/dotcommander/archcritic/internal/critic"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	w    io.Writer
	opts ReportOptions
}

// NewYAMLFormatter creates a new YAMLFormatter
func NewYAMLFormatter(w io.Writer, opts ReportOptions) *YAMLFormatter {
	return &YAMLFormatter{w: w, opts: opts}
}

// Format writes evals as a YAML report
func (f *YAMLFormatter) Format(evals []critic.ProposalEvaluation) error {
	enc := yaml.NewEncoder(f.w)
	enc.SetIndent(2)
	if err := enc.Encode(BuildReport(evals, f.opts)); err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	return enc.Close()
}
