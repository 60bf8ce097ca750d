package cmd

import (
	"fmt"

	"github.com/dotcommander/archcritic/internal/config"
	"github.com/dotcommander/archcritic/internal/output"
	"github.com/dotcommander/archcritic/internal/outputters"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Print the extracted features and score breakdown without prose",
		Long: `The analyze command runs the feature extraction and scoring pipeline and prints
the intermediate values: text statistics, per-criterion scores and matched
keywords, style scores, complexity, sentiment and the weighted score breakdown.

Output is JSON unless --format yaml is given.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, text)
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "Analyze this text instead of files")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, text string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format := cfg.Format
	switch format {
	case config.FormatJSON, config.FormatYAML:
	case config.FormatConsole:
		format = config.FormatJSON
	default:
		return fmt.Errorf("analyze supports json or yaml output, not %s", format)
	}

	c, err := newCritic(cfg, newLogger(cmd.ErrOrStderr(), cfg.Verbose))
	if err != nil {
		return err
	}

	proposals, err := collectProposals(cmd, cfg, args, text)
	if err != nil {
		return err
	}
	evals, err := c.EvaluateProposals(cmd.Context(), proposals)
	if err != nil {
		return err
	}

	return outputters.NewOutputter(cfg, cmd.OutOrStdout()).
		WithReportOptions(output.ReportOptions{IncludeAnalysis: true}).
		Format(evals, format)
}
