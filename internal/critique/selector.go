package critique

import "fmt"

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Selector picks one phrase from an ordered list of options. Implementations
// must always return a member of options when options is non-empty.
type Selector interface {
	Select(options []string, threshold float64) string
}

// Selector strategy names accepted by NewSelector.
const (
	SelectorBiased  = "biased"
	SelectorUniform = "uniform"
)

// NewSelector returns the named selection strategy drawing from rng.
func NewSelector(name string, rng RandomSource) (Selector, error) {
	switch name {
	case SelectorBiased, "":
		return &BiasedSelector{rng: rng}, nil
	case SelectorUniform:
		return &UniformSelector{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown selector %q: must be %q or %q", name, SelectorBiased, SelectorUniform)
	}
}

// BiasedSelector starts from the first option and walks the whole list; each
// option overwrites the current pick when a fresh draw exceeds threshold.
// Later options therefore win more often than earlier ones.
type BiasedSelector struct {
	rng RandomSource
}

// NewBiasedSelector creates a BiasedSelector.
func NewBiasedSelector(rng RandomSource) *BiasedSelector {
	return &BiasedSelector{rng: rng}
}

// Select implements Selector. One draw is consumed per option.
func (s *BiasedSelector) Select(options []string, threshold float64) string {
	if len(options) == 0 {
		return ""
	}
	selected := options[0]
	for _, option := range options {
		if s.rng.Float64() > threshold {
			selected = option
		}
	}
	return selected
}

// UniformSelector picks every option with equal probability and ignores threshold.
type UniformSelector struct {
	rng RandomSource
}

// NewUniformSelector creates a UniformSelector.
func NewUniformSelector(rng RandomSource) *UniformSelector {
	return &UniformSelector{rng: rng}
}

// Select implements Selector. One draw is consumed per call.
func (s *UniformSelector) Select(options []string, _ float64) string {
	if len(options) == 0 {
		return ""
	}
	i := int(s.rng.Float64() * float64(len(options)))
	if i < 0 {
		i = 0
	}
	if i >= len(options) {
		i = len(options) - 1
	}
	return options[i]
}
