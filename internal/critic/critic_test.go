package critic

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dotcommander/archcritic/internal/critique"
	"github.com/dotcommander/archcritic/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProposal = `
    The design demonstrates a sustainable approach through its use of solar panels and
    green roofs, while maintaining a modernist aesthetic with clean lines and geometric
    forms. The innovative structural system allows for column-free spaces, though
    some circulation areas could be improved for better accessibility. The building
    responds well to its urban context through careful massing and material selection.
`

func fixedClock() time.Time {
	return time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)
}

func newTestCritic(t *testing.T, opts Options) *Critic {
	t.Helper()
	if opts.Clock == nil {
		opts.Clock = fixedClock
	}
	c, err := New(nil, opts)
	require.NoError(t, err)
	return c
}

func TestNew_UnknownSelector(t *testing.T) {
	_, err := New(nil, Options{Selector: "roulette"})
	assert.ErrorContains(t, err, "unknown selector")
}

func TestNew_DefaultRules(t *testing.T) {
	c := newTestCritic(t, Options{})
	assert.Equal(t, rules.Default(), c.Rules())
}

func TestEvaluate_Sample(t *testing.T) {
	c := newTestCritic(t, Options{Seed: 7})
	eval := c.Evaluate(sampleProposal)

	assert.Equal(t, 58, eval.Result.WordCount)
	assert.Equal(t, "modernist", eval.Result.Style)
	assert.InDelta(t, 39.345977, eval.Score.Total, 1e-5)
	assert.Equal(t, eval.Score.Total, eval.Report.Score)
	assert.Contains(t, eval.Report.String(), "OVERALL SCORE: 39.3/100")
	assert.Contains(t, eval.Report.String(), "GENERATED: 2024-03-14 09:26:53")
}

func TestCritique_EmptyText(t *testing.T) {
	out := newTestCritic(t, Options{}).Critique("")
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "OVERALL SCORE: 0.0/100")
}

func TestCritique_SeedIsReproducible(t *testing.T) {
	a := newTestCritic(t, Options{Seed: 42}).Critique(sampleProposal)
	b := newTestCritic(t, Options{Seed: 42}).Critique(sampleProposal)
	assert.Equal(t, a, b)
}

func TestCritique_ComputedRatio(t *testing.T) {
	out := newTestCritic(t, Options{Seed: 1, ComputedRatio: true}).Critique("one two two three")
	assert.Contains(t, out, "UNIQUE VOCABULARY RATIO: 75%")
}

func TestCritique_UniformSelector(t *testing.T) {
	out := newTestCritic(t, Options{Seed: 3, Selector: critique.SelectorUniform}).Critique(sampleProposal)
	assert.Contains(t, out, "CLOSEST TO THE WORK OF REM KOOLHAAS")
}

func TestCritique_PackageLevel(t *testing.T) {
	out := Critique(sampleProposal)
	assert.Contains(t, out, "OVERALL SCORE: 39.3/100")
	assert.Contains(t, out, "GENERATED: ")
}

func TestCritique_ConcurrentCallers(t *testing.T) {
	c := newTestCritic(t, Options{})

	var wg sync.WaitGroup
	outs := make([]string, 16)
	for i := range outs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outs[i] = c.Critique(sampleProposal)
		}(i)
	}
	wg.Wait()

	for _, out := range outs {
		assert.Contains(t, out, "OVERALL SCORE: 39.3/100")
	}
}

func TestEvaluate_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	newTestCritic(t, Options{Logger: logger}).Evaluate(sampleProposal)

	line := buf.String()
	assert.True(t, strings.Contains(line, "evaluated proposal"), line)
	assert.Contains(t, line, "words=58")
	assert.Contains(t, line, "style=modernist")
	assert.Contains(t, line, "score=39.3")
}
