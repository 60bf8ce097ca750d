package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dotcommander/archcritic/internal/config"
	"github.com/dotcommander/archcritic/internal/critic"
	"github.com/dotcommander/archcritic/internal/output"
	"github.com/dotcommander/archcritic/internal/outputters"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Version is set at build time.
var Version = "dev"

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var rootCmd = newRootCmd()

// flagKeys maps persistent flags onto configuration keys.
var flagKeys = map[string]string{
	"root":             "root",
	"quiet":            "quiet",
	"verbose":          "verbose",
	"format":           "format",
	"output":           "output",
	"seed":             "seed",
	"selector":         "selector",
	"vocabulary-ratio": "vocabularyRatio",
	"rules":            "rules",
	"include":          "include",
	"exclude":          "exclude",
}

func newRootCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "archcritic [files...]",
		Short: "ArchCritic - keyword-driven critique of architectural design proposals",
		Long: `ArchCritic reads free-form descriptions of architectural design proposals and
produces a multi-section critique: per-criterion scores, a detected stylistic
movement, linguistic complexity metrics and templated prose.

INPUT:
  archcritic proposal.md             Critique one or more files
  archcritic proposals/              Critique every proposal under a directory
  archcritic --text "..."            Critique literal text
  cat brief.txt | archcritic -       Critique standard input
  archcritic                         Critique every proposal under --root
  archcritic --changed               Critique proposals changed in git

Markdown proposals may carry YAML frontmatter with title and author.

Scoring is deterministic; only the prose phrasing is random. Use --seed for
reproducible reports.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCritique(cmd, args, text)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("root", "r", "", "Directory searched when no files are given (default \".\")")
	flags.BoolP("quiet", "q", false, "Print only the score listing")
	flags.BoolP("verbose", "v", false, "Enable debug logging and score breakdowns")
	flags.StringP("format", "f", config.FormatConsole, "Output format (console|json|markdown|yaml)")
	flags.StringP("output", "o", "", "Write the report to a file instead of stdout")
	flags.Int64("seed", 0, "Seed for report phrasing (0 = time-based)")
	flags.String("selector", "biased", "Phrase selection strategy (biased|uniform)")
	flags.String("vocabulary-ratio", config.RatioDecorative, "Vocabulary ratio mode (decorative|computed)")
	flags.String("rules", "", "YAML rule file replacing the built-in tables")
	flags.StringSlice("include", nil, "Glob patterns for proposal discovery")
	flags.StringSlice("exclude", nil, "Glob patterns excluded from discovery")
	flags.Bool("no-color", false, "Disable coloured output")
	flags.Bool("changed", false, "Critique only proposals with uncommitted git changes")
	flags.Bool("staged", false, "Critique only proposals staged in git")
	cmd.MarkFlagsMutuallyExclusive("changed", "staged")

	cmd.Flags().StringVarP(&text, "text", "t", "", "Critique this text instead of files")

	cmd.AddCommand(newAnalyzeCmd(), newRulesCmd(), newSummaryCmd())
	return cmd
}

// Execute runs the root command.
func Execute() {
	rootCmd.Version = Version
	output.ToolVersion = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

// loadConfig binds the command's flags to viper and loads the configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("error binding flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.LoadConfig("")
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !isTerminal(cmd.OutOrStdout()) {
		cfg.Color = false
	}
	return cfg, nil
}

// newLogger logs to stderr at debug level when verbose, otherwise warnings only.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newCritic builds a Critic from the configuration.
func newCritic(cfg *config.Config, logger *slog.Logger) (*critic.Critic, error) {
	rs, err := cfg.RuleSet()
	if err != nil {
		return nil, err
	}
	if cfg.Rules != "" {
		logger.Debug("loaded rules", "path", cfg.Rules, "criteria", len(rs.Criteria), "styles", len(rs.Styles))
	}

	return critic.New(rs, critic.Options{
		Seed:          cfg.Seed,
		Selector:      cfg.Selector,
		ComputedRatio: cfg.ComputedRatio(),
		Logger:        logger,
	})
}

func runCritique(cmd *cobra.Command, args []string, text string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	c, err := newCritic(cfg, logger)
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

	if err := outputters.NewOutputter(cfg, cmd.OutOrStdout()).Format(evals, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
