package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/dotcommander/archcritic/internal/critique"
	"github.com/dotcommander/archcritic/internal/rules"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Output formats
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// Vocabulary ratio modes
const (
	RatioDecorative = "decorative"
	RatioComputed   = "computed"
)

var (
	formats    = []string{FormatConsole, FormatJSON, FormatMarkdown, FormatYAML}
	selectors  = []string{critique.SelectorBiased, critique.SelectorUniform}
	ratioModes = []string{RatioDecorative, RatioComputed}
)

// Config represents the archcritic configuration
type Config struct {
	Root            string   `mapstructure:"root"`
	Include         []string `mapstructure:"include"`
	Exclude         []string `mapstructure:"exclude"`
	Format          string   `mapstructure:"format"`
	Output          string   `mapstructure:"output"`
	Quiet           bool     `mapstructure:"quiet"`
	Verbose         bool     `mapstructure:"verbose"`
	Color           bool     `mapstructure:"color"`
	Seed            int64    `mapstructure:"seed"`
	Selector        string   `mapstructure:"selector"`
	VocabularyRatio string   `mapstructure:"vocabularyRatio"`
	Rules           string   `mapstructure:"rules"`
}

// LoadConfig loads configuration from defaults, an optional .archcriticrc file,
// a .env file and ARCHCRITIC_* environment variables, in increasing precedence.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("include", []string{})
	viper.SetDefault("exclude", []string{})
	viper.SetDefault("format", FormatConsole)
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("color", true)
	viper.SetDefault("seed", 0)
	viper.SetDefault("selector", critique.SelectorBiased)
	viper.SetDefault("vocabularyRatio", RatioDecorative)
	viper.SetDefault("rules", "")

	configPaths := []string{".archcriticrc.json", ".archcriticrc.yaml", ".archcriticrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// .env never overrides variables already set in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	viper.SetEnvPrefix("ARCHCRITIC")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if !slices.Contains(formats, config.Format) {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', 'markdown', or 'yaml'", config.Format)
	}
	if !slices.Contains(selectors, config.Selector) {
		return fmt.Errorf("invalid selector: %s. Must be 'biased' or 'uniform'", config.Selector)
	}
	if !slices.Contains(ratioModes, config.VocabularyRatio) {
		return fmt.Errorf("invalid vocabulary ratio: %s. Must be 'decorative' or 'computed'", config.VocabularyRatio)
	}
	if config.Seed < 0 {
		return fmt.Errorf("seed must not be negative")
	}
	return nil
}

// ComputedRatio reports whether the real vocabulary ratio was requested.
func (c *Config) ComputedRatio() bool {
	return c.VocabularyRatio == RatioComputed
}

// RuleSet returns the configured rule tables: the file named by Rules, or the
// built-in tables when none is set.
func (c *Config) RuleSet() (*rules.RuleSet, error) {
	if c.Rules == "" {
		return rules.Default(), nil
	}
	rs, err := rules.LoadFile(c.Rules)
	if err != nil {
		return nil, fmt.Errorf("error loading rules: %w", err)
	}
	return rs, nil
}
