package cmd

import (
	"fmt"

	"github.com/dotcommander/archcritic/internal/rules"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print or validate rule tables",
		Long: `The rules command prints the active rule tables as YAML: the built-in tables, or
the file given with --rules. The output is a valid rule file and can be edited
and passed back with --rules.

Rule tables hold:
- criteria: name, weight, keywords, description, recommendations
- styles: name, keywords, description, bonus
- co_occurrences: style keyword pairs that add points
- technical_terms, positive_words, negative_words, conceptual_indicators
- jargon categories, critique templates, historical references

Use --check FILE to validate a rule file against the schema without printing it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(cmd, check)
		},
	}
	cmd.Flags().StringVar(&check, "check", "", "Validate a rule file and exit")
	return cmd
}

func runRules(cmd *cobra.Command, check string) error {
	if check != "" {
		rs, err := rules.LoadFile(check)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d criteria, %d styles\n", check, len(rs.Criteria), len(rs.Styles))
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rs, err := cfg.RuleSet()
	if err != nil {
		return err
	}
	return rs.Write(cmd.OutOrStdout())
}
