package critic

import (
	"context"
	"fmt"
	"sort"

	"github.com/dotcommander/archcritic/internal/frontend"
	"github.com/dotcommander/archcritic/internal/scoring"
)

// ProposalEvaluation is the evaluation of one proposal in a batch.
type ProposalEvaluation struct {
	Proposal   frontend.Proposal `json:"proposal" yaml:"proposal"`
	Evaluation `yaml:",inline"`
}

// EvaluateProposals critiques proposals in order. Cancelling ctx stops the run
// before the next proposal.
func (c *Critic) EvaluateProposals(ctx context.Context, proposals []frontend.Proposal) ([]ProposalEvaluation, error) {
	evals := make([]ProposalEvaluation, 0, len(proposals))
	for _, p := range proposals {
		if err := ctx.Err(); err != nil {
			return evals, err
		}
		evals = append(evals, ProposalEvaluation{Proposal: p, Evaluation: c.Evaluate(p.Text)})
		c.logger.Debug("processed proposal", "path", p.Path, "title", p.Title)
	}
	return evals, nil
}

// EvaluateFiles loads each path as a proposal and critiques it.
func (c *Critic) EvaluateFiles(ctx context.Context, paths []string) ([]ProposalEvaluation, error) {
	proposals := make([]frontend.Proposal, 0, len(paths))
	for _, path := range paths {
		p, err := frontend.LoadProposal(path)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", path, err)
		}
		proposals = append(proposals, p)
	}
	return c.EvaluateProposals(ctx, proposals)
}

// TierCount is the number of proposals that fell in one classification tier.
type TierCount struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Summary aggregates a batch of evaluations.
type Summary struct {
	Total   int                  `json:"total" yaml:"total"`
	Average float64              `json:"average" yaml:"average"`
	Highest float64              `json:"highest" yaml:"highest"`
	Lowest  float64              `json:"lowest" yaml:"lowest"`
	Tiers   []TierCount          `json:"tiers" yaml:"tiers"`
	Weakest []ProposalEvaluation `json:"weakest" yaml:"weakest"`
}

// tierLabels lists classifications from strongest to weakest.
var tierLabels = []string{
	scoring.Classify(90).Label,
	scoring.Classify(80).Label,
	scoring.Classify(65).Label,
	scoring.Classify(50).Label,
	scoring.Classify(0).Label,
}

// Summarize computes batch statistics. Weakest holds up to n proposals by
// ascending score; equal scores keep batch order.
func Summarize(evals []ProposalEvaluation, n int) Summary {
	s := Summary{Total: len(evals)}

	counts := make(map[string]int, len(tierLabels))
	var sum float64
	for i, e := range evals {
		total := e.Score.Total
		sum += total
		if i == 0 || total > s.Highest {
			s.Highest = total
		}
		if i == 0 || total < s.Lowest {
			s.Lowest = total
		}
		counts[scoring.Classify(total).Label]++
	}
	if len(evals) > 0 {
		s.Average = sum / float64(len(evals))
	}

	for _, label := range tierLabels {
		s.Tiers = append(s.Tiers, TierCount{Label: label, Count: counts[label]})
	}

	weakest := append([]ProposalEvaluation(nil), evals...)
	sort.SliceStable(weakest, func(i, j int) bool {
		return weakest[i].Score.Total < weakest[j].Score.Total
	})
	if n < 0 {
		n = 0
	}
	if len(weakest) > n {
		weakest = weakest[:n]
	}
	s.Weakest = weakest
	return s
}
