// Package critique composes the prose report from analysis results and an
// overall score. All randomness flows through an injected RandomSource and
// Selector, and the timestamp through an injected Clock, so a report is fully
// reproducible given those three.
package critique

import (
	"math/rand"
	"time"

	"github.com/dotcommander/archcritic/internal/analysis"
	"github.com/dotcommander/archcritic/internal/rules"
	"github.com/dotcommander/archcritic/internal/scoring"
)

// Clock returns the current time.
type Clock func() time.Time

// TimestampLayout is the header timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

// Composer builds reports. A Composer is as safe for concurrent use as its
// RandomSource.
type Composer struct {
	rules         *rules.RuleSet
	rng           RandomSource
	selector      Selector
	clock         Clock
	computedRatio bool
}

// Option configures a Composer.
type Option func(*Composer)

// WithRandom sets the random source used for decorative values. Unless
// WithSelector is also given, the default biased selector draws from it too.
func WithRandom(rng RandomSource) Option {
	return func(c *Composer) {
		c.rng = rng
	}
}

// WithSelector replaces the phrase selection strategy.
func WithSelector(s Selector) Option {
	return func(c *Composer) {
		c.selector = s
	}
}

// WithClock sets the clock used for the header timestamp.
func WithClock(clock Clock) Option {
	return func(c *Composer) {
		c.clock = clock
	}
}

// WithComputedVocabularyRatio reports the real unique-word ratio instead of the
// decorative random value.
func WithComputedVocabularyRatio(enabled bool) Option {
	return func(c *Composer) {
		c.computedRatio = enabled
	}
}

// NewComposer creates a Composer over rs.
func NewComposer(rs *rules.RuleSet, opts ...Option) *Composer {
	c := &Composer{
		rules: rs,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.selector == nil {
		c.selector = NewBiasedSelector(c.rng)
	}
	return c
}

// Compose builds the full report. Sections are produced in a fixed order, and
// random draws are consumed in that same order.
func (c *Composer) Compose(result analysis.Result, score scoring.Score) Report {
	now := c.clock()

	report := Report{
		GeneratedAt: now,
		Score:       score.Total,
	}
	report.Sections = append(report.Sections,
		c.header(now, score.Total),
		c.summary(result, score.Total),
		c.principles(result),
	)
	if result.HasStyle() {
		report.Sections = append(report.Sections, c.style(result.Style))
	}
	report.Sections = append(report.Sections,
		c.technical(result),
		c.recommendations(result, score.Total),
		c.comparative(score.Total),
	)
	return report
}
