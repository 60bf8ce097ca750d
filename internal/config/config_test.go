package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper resets viper to a clean state for each test
func resetViper() {
	viper.Reset()
}

// setupTestDir creates a temporary directory and makes it the working directory
func setupTestDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
	})
	return tmpDir
}

func TestLoadConfigDefaults(t *testing.T) {
	resetViper()
	setupTestDir(t)

	config, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, ".", config.Root)
	assert.Empty(t, config.Include)
	assert.Empty(t, config.Exclude)
	assert.Equal(t, "console", config.Format)
	assert.Empty(t, config.Output)
	assert.False(t, config.Quiet)
	assert.False(t, config.Verbose)
	assert.True(t, config.Color)
	assert.Equal(t, int64(0), config.Seed)
	assert.Equal(t, "biased", config.Selector)
	assert.Equal(t, "decorative", config.VocabularyRatio)
	assert.False(t, config.ComputedRatio())
	assert.Empty(t, config.Rules)
}

func TestLoadConfigFromJSON(t *testing.T) {
	resetViper()
	tmpDir := setupTestDir(t)

	configData := map[string]any{
		"root":            "/proposals",
		"include":         []string{"**/*.md"},
		"exclude":         []string{"drafts/**"},
		"format":          "json",
		"output":          "report.json",
		"quiet":           true,
		"color":           false,
		"seed":            42,
		"selector":        "uniform",
		"vocabularyRatio": "computed",
		"rules":           "rules.yaml",
	}
	jsonData, err := json.MarshalIndent(configData, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".archcriticrc.json"), jsonData, 0644))

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/proposals", config.Root)
	assert.Equal(t, []string{"**/*.md"}, config.Include)
	assert.Equal(t, []string{"drafts/**"}, config.Exclude)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "report.json", config.Output)
	assert.True(t, config.Quiet)
	assert.False(t, config.Color)
	assert.Equal(t, int64(42), config.Seed)
	assert.Equal(t, "uniform", config.Selector)
	assert.True(t, config.ComputedRatio())
	assert.Equal(t, "rules.yaml", config.Rules)
}

func TestLoadConfigFromYAML(t *testing.T) {
	resetViper()
	tmpDir := setupTestDir(t)

	yamlContent := "format: markdown\nseed: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".archcriticrc.yaml"), []byte(yamlContent), 0644))

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "markdown", config.Format)
	assert.Equal(t, int64(7), config.Seed)
}

func TestLoadConfigFromEnv(t *testing.T) {
	resetViper()
	setupTestDir(t)
	t.Setenv("ARCHCRITIC_FORMAT", "yaml")
	t.Setenv("ARCHCRITIC_SELECTOR", "uniform")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "uniform", config.Selector)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	resetViper()
	tmpDir := setupTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("ARCHCRITIC_SEED=99\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("ARCHCRITIC_SEED") })

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, int64(99), config.Seed)
}

func TestLoadConfigMalformedDotEnv(t *testing.T) {
	resetViper()
	tmpDir := setupTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("ARCHCRITIC_FORMAT!=json\n"), 0644))

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading .env")
}

func TestLoadConfigWithoutDotEnv(t *testing.T) {
	resetViper()
	setupTestDir(t)

	_, err := LoadConfig("")
	assert.NoError(t, err)
}

func TestLoadConfigRootOverride(t *testing.T) {
	resetViper()
	setupTestDir(t)

	config, err := LoadConfig("/override")
	require.NoError(t, err)
	assert.Equal(t, "/override", config.Root)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"format", `{"format": "html"}`, "invalid format: html"},
		{"selector", `{"selector": "roulette"}`, "invalid selector: roulette"},
		{"ratio", `{"vocabularyRatio": "exact"}`, "invalid vocabulary ratio: exact"},
		{"seed", `{"seed": -1}`, "seed must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			tmpDir := setupTestDir(t)
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".archcriticrc.json"), []byte(tt.content), 0644))

			_, err := LoadConfig("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigRuleSet(t *testing.T) {
	c := &Config{}
	rs, err := c.RuleSet()
	require.NoError(t, err)
	assert.Len(t, rs.Criteria, 7)

	c.Rules = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = c.RuleSet()
	assert.ErrorContains(t, err, "error loading rules")
}
