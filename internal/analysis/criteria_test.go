package analysis

import (
	"strings"
	"testing"

	"github.com/dotcommander/archcritic/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criterion(t *testing.T, name string) rules.Criterion {
	t.Helper()
	c, ok := rules.Default().Criterion(name)
	require.True(t, ok, name)
	return c
}

// filler pads a text with neutral words up to n tokens.
func filler(n int, words ...string) []string {
	tokens := append([]string{}, words...)
	for len(tokens) < n {
		tokens = append(tokens, "word")
	}
	return tokens
}

func TestScoreCriterion(t *testing.T) {
	tests := []struct {
		name        string
		criterion   string
		tokens      []string
		wantRaw     int
		wantScore   float64
		wantMatches []string
	}{
		{
			name:        "single keyword short text",
			criterion:   "aesthetics",
			tokens:      filler(5, "beautiful"),
			wantRaw:     10,
			wantScore:   100,
			wantMatches: []string{"beautiful"},
		},
		{
			name:        "no matches",
			criterion:   "economics",
			tokens:      filler(5),
			wantRaw:     0,
			wantScore:   0,
			wantMatches: []string{},
		},
		{
			name:        "mid length regime",
			criterion:   "context",
			tokens:      filler(20, "site"),
			wantRaw:     10,
			wantScore:   50,
			wantMatches: []string{"site"},
		},
		{
			name:        "long regime is stricter",
			criterion:   "context",
			tokens:      filler(80, "site", "site"),
			wantRaw:     20,
			wantScore:   20,
			wantMatches: []string{"site"},
		},
		{
			name:        "occurrences tier caps at thirty",
			criterion:   "context",
			tokens:      filler(100, "site", "site", "site", "site", "site"),
			wantRaw:     30,
			wantScore:   24,
			wantMatches: []string{"site"},
		},
		{
			name:        "coverage bonus for two keywords",
			criterion:   "context",
			tokens:      filler(50, "site", "culture"),
			wantRaw:     25,
			wantScore:   40,
			wantMatches: []string{"site", "culture"},
		},
		{
			name:        "coverage bonus for three keywords",
			criterion:   "context",
			tokens:      filler(80, "history", "site", "culture"),
			wantRaw:     40,
			wantScore:   40,
			wantMatches: []string{"site", "culture", "history"},
		},
		{
			name:        "long keyword matches inside token",
			criterion:   "sustainability",
			tokens:      filler(20, "solar-powered"),
			wantRaw:     10,
			wantScore:   50,
			wantMatches: []string{"solar"},
		},
		{
			name:        "short keyword needs exact token",
			criterion:   "sustainability",
			tokens:      filler(20, "ecological"),
			wantRaw:     0,
			wantScore:   0,
			wantMatches: []string{},
		},
		{
			name:        "short keyword exact token",
			criterion:   "sustainability",
			tokens:      filler(20, "eco"),
			wantRaw:     10,
			wantScore:   50,
			wantMatches: []string{"eco"},
		},
		{
			name:        "zero words",
			criterion:   "sustainability",
			tokens:      nil,
			wantRaw:     0,
			wantScore:   0,
			wantMatches: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreCriterion(criterion(t, tt.criterion), tt.tokens, len(tt.tokens))
			assert.Equal(t, tt.criterion, got.Name)
			assert.Equal(t, tt.wantRaw, got.Raw)
			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
			assert.Equal(t, tt.wantMatches, got.Matches)
		})
	}
}

func TestScoreCriterion_MonotonicInDistinctKeywords(t *testing.T) {
	c := criterion(t, "sustainability")
	keywords := []string{"solar", "green", "renewable", "carbon", "energy"}

	prev := -1.0
	for i := 1; i <= len(keywords); i++ {
		got := ScoreCriterion(c, filler(60, keywords[:i]...), 60)
		assert.GreaterOrEqual(t, got.Score, prev, "adding %q lowered the score", keywords[i-1])
		prev = got.Score
	}
}

func TestScoreCriterion_Bounded(t *testing.T) {
	c := criterion(t, "sustainability")
	tokens := strings.Fields(strings.Repeat("green solar sustainable renewable efficient leed carbon energy ", 3))
	got := ScoreCriterion(c, tokens, len(tokens))
	assert.LessOrEqual(t, got.Score, 100.0)
	assert.GreaterOrEqual(t, got.Score, 0.0)
}
