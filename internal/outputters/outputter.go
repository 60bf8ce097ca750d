package outputters

import (
	"fmt"
	"io"
	"os"

	"github.com/dotcommander/archcritic/internal/config"
	"github.com/dotcommander/archcritic/internal/critic"
	"github.com/dotcommander/archcritic/internal/output"
)

// Formatter renders a batch of evaluations
type Formatter interface {
	Format(evals []critic.ProposalEvaluation) error
}

// FormatterFactory creates a Formatter for a format name
type FormatterFactory interface {
	CreateFormatter(format string) (Formatter, error)
}

// DefaultFormatterFactory builds the formatters in the output package
type DefaultFormatterFactory struct {
	config *config.Config
	w      io.Writer
	opts   output.ReportOptions
}

// NewDefaultFormatterFactory creates a factory writing to w
func NewDefaultFormatterFactory(cfg *config.Config, w io.Writer, opts output.ReportOptions) *DefaultFormatterFactory {
	return &DefaultFormatterFactory{config: cfg, w: w, opts: opts}
}

// CreateFormatter implements FormatterFactory
func (f *DefaultFormatterFactory) CreateFormatter(format string) (Formatter, error) {
	switch format {
	case config.FormatConsole:
		return output.NewConsoleFormatter(f.w, f.config.Quiet, f.config.Verbose, f.config.Color), nil
	case config.FormatJSON:
		return output.NewJSONFormatter(f.w, true, f.opts), nil
	case config.FormatYAML:
		return output.NewYAMLFormatter(f.w, f.opts), nil
	case config.FormatMarkdown:
		return output.NewMarkdownFormatter(f.w, f.config.Verbose), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	stdout  io.Writer
	opts    output.ReportOptions
	factory FormatterFactory
}

// NewOutputter creates a new Outputter writing to stdout unless the config names
// an output file.
func NewOutputter(cfg *config.Config, stdout io.Writer) *Outputter {
	return &Outputter{
		config: cfg,
		stdout: stdout,
		opts:   output.ReportOptions{IncludeProse: true},
	}
}

// WithReportOptions selects what machine-readable formats include.
func (o *Outputter) WithReportOptions(opts output.ReportOptions) *Outputter {
	o.opts = opts
	return o
}

// WithFactory replaces the formatter factory.
func (o *Outputter) WithFactory(factory FormatterFactory) *Outputter {
	o.factory = factory
	return o
}

// Format renders evals in the given format.
func (o *Outputter) Format(evals []critic.ProposalEvaluation, format string) (err error) {
	w := o.stdout
	if o.config.Output != "" {
		file, createErr := os.Create(o.config.Output)
		if createErr != nil {
			return fmt.Errorf("error creating output file %s: %w", o.config.Output, createErr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("error writing to file %s: %w", o.config.Output, cerr)
			}
		}()
		w = file
	}

	factory := o.factory
	if factory == nil {
		cfg := *o.config
		if o.config.Output != "" {
			cfg.Color = false
		}
		factory = NewDefaultFormatterFactory(&cfg, w, o.opts)
	}

	formatter, err := factory.CreateFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(evals)
}
