// Package critic wires analysis, scoring and report composition into the
// single critique operation, and runs it over batches of proposal files.
package critic

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/dotcommander/archcritic/internal/analysis"
	"github.com/dotcommander/archcritic/internal/critique"
	"github.com/dotcommander/archcritic/internal/rules"
	"github.com/dotcommander/archcritic/internal/scoring"
)

// Options configures a Critic. The zero value gives the default behaviour: a
// time-seeded random source, the biased selector, the decorative vocabulary
// ratio and the wall clock.
type Options struct {
	Seed          int64 // 0 means seed from the clock
	Selector      string
	ComputedRatio bool
	Clock         critique.Clock
	Logger        *slog.Logger
}

// Evaluation carries every intermediate value of one critique.
type Evaluation struct {
	Result analysis.Result `json:"analysis" yaml:"analysis"`
	Score  scoring.Score   `json:"score" yaml:"score"`
	Report critique.Report `json:"report" yaml:"report"`
}

// Critic turns proposal text into a report. It is safe for concurrent use.
type Critic struct {
	rules    *rules.RuleSet
	analyzer *analysis.Analyzer
	composer *critique.Composer
	logger   *slog.Logger
}

// New creates a Critic over rs. A nil rs uses the built-in tables.
func New(rs *rules.RuleSet, opts Options) (*Critic, error) {
	if rs == nil {
		rs = rules.Default()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := &lockedSource{r: rand.New(rand.NewSource(seed))}

	selector, err := critique.NewSelector(opts.Selector, rng)
	if err != nil {
		return nil, err
	}

	composerOpts := []critique.Option{
		critique.WithRandom(rng),
		critique.WithSelector(selector),
		critique.WithComputedVocabularyRatio(opts.ComputedRatio),
	}
	if opts.Clock != nil {
		composerOpts = append(composerOpts, critique.WithClock(opts.Clock))
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Critic{
		rules:    rs,
		analyzer: analysis.NewAnalyzer(rs),
		composer: critique.NewComposer(rs, composerOpts...),
		logger:   logger,
	}, nil
}

// Rules returns the rule tables the Critic scores against.
func (c *Critic) Rules() *rules.RuleSet {
	return c.rules
}

// Evaluate runs the full pipeline on text.
func (c *Critic) Evaluate(text string) Evaluation {
	result := c.analyzer.Analyze(text)
	score := scoring.Aggregate(c.rules, result)
	report := c.composer.Compose(result, score)

	c.logger.Debug("evaluated proposal",
		"words", result.WordCount,
		"sentences", result.SentenceCount,
		"style", result.Style,
		"score", fmt.Sprintf("%.1f", score.Total),
	)

	return Evaluation{Result: result, Score: score, Report: report}
}

// Critique returns the plain-text report for text.
func (c *Critic) Critique(text string) string {
	return c.Evaluate(text).Report.String()
}

var defaultCritic = sync.OnceValue(func() *Critic {
	c, err := New(nil, Options{})
	if err != nil {
		panic(err)
	}
	return c
})

// Critique returns the plain-text report for text using the built-in rule tables.
func Critique(text string) string {
	return defaultCritic().Critique(text)
}

// lockedSource serialises access to a *rand.Rand, which is not safe for
// concurrent use on its own.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
