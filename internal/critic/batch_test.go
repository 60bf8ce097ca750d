package critic

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dotcommander/archcritic/internal/frontend"
	"github.com/dotcommander/archcritic/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalWithScore(name string, total float64) ProposalEvaluation {
	e := ProposalEvaluation{Proposal: frontend.Proposal{Title: name}}
	e.Score = scoring.Score{Total: total}
	return e
}

func TestEvaluateProposals(t *testing.T) {
	c := newTestCritic(t, Options{Seed: 5})
	proposals := []frontend.Proposal{
		{Title: "sample", Text: sampleProposal},
		{Title: "empty"},
	}

	evals, err := c.EvaluateProposals(context.Background(), proposals)
	require.NoError(t, err)
	require.Len(t, evals, 2)

	assert.Equal(t, "sample", evals[0].Proposal.Title)
	assert.InDelta(t, 39.345977, evals[0].Score.Total, 1e-5)
	assert.Equal(t, 0.0, evals[1].Score.Total)
}

func TestEvaluateProposals_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	evals, err := newTestCritic(t, Options{}).EvaluateProposals(ctx, []frontend.Proposal{{Text: "x"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, evals)
}

func TestEvaluateFiles(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "a.md")
	txt := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(md, []byte("---\ntitle: Harbour\n---\n# Concept\n\nGreen roofs and solar panels."), 0644))
	require.NoError(t, os.WriteFile(txt, []byte(sampleProposal), 0644))

	evals, err := newTestCritic(t, Options{Seed: 9}).EvaluateFiles(context.Background(), []string{md, txt})
	require.NoError(t, err)
	require.Len(t, evals, 2)

	assert.Equal(t, "Harbour", evals[0].Proposal.Title)
	assert.Equal(t, "sustainable", evals[0].Result.Style)
	assert.InDelta(t, 39.345977, evals[1].Score.Total, 1e-5)

	_, err = newTestCritic(t, Options{}).EvaluateFiles(context.Background(), []string{filepath.Join(dir, "nope.md")})
	assert.ErrorContains(t, err, "error loading")
}

func TestSummarize(t *testing.T) {
	evals := []ProposalEvaluation{
		evalWithScore("a", 92),
		evalWithScore("b", 40),
		evalWithScore("c", 55),
		evalWithScore("d", 40),
		evalWithScore("e", 70),
	}

	s := Summarize(evals, 3)

	assert.Equal(t, 5, s.Total)
	assert.InDelta(t, 59.4, s.Average, 1e-9)
	assert.Equal(t, 92.0, s.Highest)
	assert.Equal(t, 40.0, s.Lowest)

	require.Len(t, s.Tiers, 5)
	assert.Equal(t, TierCount{"EXCEPTIONAL ARCHITECTURAL PROPOSITION", 1}, s.Tiers[0])
	assert.Equal(t, TierCount{"VERY STRONG ARCHITECTURAL CONCEPT", 0}, s.Tiers[1])
	assert.Equal(t, TierCount{"STRONG ARCHITECTURAL CONCEPT", 1}, s.Tiers[2])
	assert.Equal(t, TierCount{"ADEQUATE ARCHITECTURAL APPROACH", 1}, s.Tiers[3])
	assert.Equal(t, TierCount{"DEVELOPING ARCHITECTURAL CONCEPT", 2}, s.Tiers[4])

	require.Len(t, s.Weakest, 3)
	assert.Equal(t, "b", s.Weakest[0].Proposal.Title)
	assert.Equal(t, "d", s.Weakest[1].Proposal.Title)
	assert.Equal(t, "c", s.Weakest[2].Proposal.Title)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 5)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.Average)
	assert.Len(t, s.Tiers, 5)
	assert.Empty(t, s.Weakest)
}
