package docs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readGuide(t *testing.T, parts ...string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(append([]string{".."}, parts...)...))
	require.NoError(t, err)
	return string(content)
}

func TestConfigurationGuide_ConfigFileFormatsListed(t *testing.T) {
	content := readGuide(t, "guides", "configuration.md")

	for _, name := range []string{".archcriticrc.json", ".archcriticrc.yaml", ".archcriticrc.yml"} {
		assert.Contains(t, content, name)
	}
	assert.Contains(t, content, "searched in order")
}

func TestConfigurationGuide_YAMLExampleShown(t *testing.T) {
	content := readGuide(t, "guides", "configuration.md")

	assert.Contains(t, content, "## Example Configuration")
	assert.Contains(t, content, "### YAML Format")
	assert.Contains(t, content, "recommended")

	expectedKeys := []string{
		"root:",
		"include:",
		"exclude:",
		"format:",
		"output:",
		"quiet:",
		"verbose:",
		"seed:",
		"selector:",
		"vocabularyRatio:",
		"rules:",
	}
	for _, key := range expectedKeys {
		assert.Contains(t, content, key, "missing configuration key in YAML example")
	}
}

func TestConfigurationGuide_EnvironmentVariablesDocumented(t *testing.T) {
	content := readGuide(t, "guides", "configuration.md")

	assert.Contains(t, content, "## Environment Variables")
	assert.Contains(t, content, "export ARCHCRITIC_")

	expectedEnvVars := []string{
		"ARCHCRITIC_ROOT",
		"ARCHCRITIC_FORMAT",
		"ARCHCRITIC_OUTPUT",
		"ARCHCRITIC_QUIET",
		"ARCHCRITIC_VERBOSE",
		"ARCHCRITIC_SEED",
		"ARCHCRITIC_SELECTOR",
		"ARCHCRITIC_VOCABULARYRATIO",
		"ARCHCRITIC_RULES",
	}
	for _, envVar := range expectedEnvVars {
		assert.Contains(t, content, envVar)
	}

	assert.Contains(t, content, "## Priority Order")
	for _, source := range []string{"Default values", "Configuration file", "Environment variables", "Command-line flags"} {
		assert.Contains(t, content, source)
	}
}

func TestRulesReference_SectionsDocumented(t *testing.T) {
	content := readGuide(t, "reference", "rules.md")

	assert.Contains(t, content, "archcritic rules --check")
	assert.Contains(t, content, "## Schema Validation")
	for _, section := range []string{"`criteria`", "`styles`", "`co_occurrences`", "`technical_terms`", "`conceptual_indicators`", "`jargon`", "`references`"} {
		assert.Contains(t, content, section)
	}
}
