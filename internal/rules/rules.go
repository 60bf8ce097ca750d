// Package rules holds the static tables that drive analysis and report
// composition. A RuleSet is built once and shared read-only; nothing in the
// pipeline mutates it.
package rules

// DefaultStyleBonus is awarded for a detected style that does not declare its own bonus.
const DefaultStyleBonus = 5

// Criterion is a weighted evaluation axis with the keywords that count as evidence for it.
type Criterion struct {
	Name            string   `yaml:"name" json:"name"`
	Weight          float64  `yaml:"weight" json:"weight"`
	Keywords        []string `yaml:"keywords" json:"keywords"`
	Description     string   `yaml:"description" json:"description"`
	Recommendations []string `yaml:"recommendations" json:"recommendations"`
}

// Style is an architectural movement recognised by keyword presence.
// Order within RuleSet.Styles matters: earlier styles win ties.
type Style struct {
	Name        string   `yaml:"name" json:"name"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	Description string   `yaml:"description" json:"description"`
	Bonus       float64  `yaml:"bonus" json:"bonus"`
}

// CoOccurrence boosts a style keyword when a companion term appears anywhere in the text.
type CoOccurrence struct {
	Keyword string `yaml:"keyword" json:"keyword"`
	With    string `yaml:"with" json:"with"`
	Points  int    `yaml:"points" json:"points"`
}

// JargonCategory groups decorative filler phrases by theme.
type JargonCategory struct {
	Name    string   `yaml:"name" json:"name"`
	Phrases []string `yaml:"phrases" json:"phrases"`
}

// Templates are sentence patterns with {aspect} and {detail} placeholders.
type Templates struct {
	Positive []string `yaml:"positive" json:"positive"`
	Negative []string `yaml:"negative" json:"negative"`
	Neutral  []string `yaml:"neutral" json:"neutral"`
}

// Reference is a named historical benchmark score.
type Reference struct {
	Name  string  `yaml:"name" json:"name"`
	Score float64 `yaml:"score" json:"score"`
}

// RuleSet is the full collection of tables.
type RuleSet struct {
	Criteria             []Criterion      `yaml:"criteria" json:"criteria"`
	Styles               []Style          `yaml:"styles" json:"styles"`
	CoOccurrences        []CoOccurrence   `yaml:"co_occurrences" json:"co_occurrences"`
	TechnicalTerms       []string         `yaml:"technical_terms" json:"technical_terms"`
	PositiveWords        []string         `yaml:"positive_words" json:"positive_words"`
	NegativeWords        []string         `yaml:"negative_words" json:"negative_words"`
	ConceptualIndicators []string         `yaml:"conceptual_indicators" json:"conceptual_indicators"`
	Jargon               []JargonCategory `yaml:"jargon" json:"jargon"`
	Templates            Templates        `yaml:"templates" json:"templates"`
	References           []Reference      `yaml:"references" json:"references"`
}

// Criterion returns the criterion with the given name.
func (r *RuleSet) Criterion(name string) (Criterion, bool) {
	for _, c := range r.Criteria {
		if c.Name == name {
			return c, true
		}
	}
	return Criterion{}, false
}

// Style returns the style with the given name.
func (r *RuleSet) Style(name string) (Style, bool) {
	for _, s := range r.Styles {
		if s.Name == name {
			return s, true
		}
	}
	return Style{}, false
}

// StyleBonus returns the aggregation bonus for a detected style, or 0 when name is empty
// or unknown.
func (r *RuleSet) StyleBonus(name string) float64 {
	if name == "" {
		return 0
	}
	s, ok := r.Style(name)
	if !ok {
		return 0
	}
	if s.Bonus <= 0 {
		return DefaultStyleBonus
	}
	return s.Bonus
}

// BoostFor returns the co-occurrence rule for a style keyword, if one exists.
func (r *RuleSet) BoostFor(keyword string) (CoOccurrence, bool) {
	for _, b := range r.CoOccurrences {
		if b.Keyword == keyword {
			return b, true
		}
	}
	return CoOccurrence{}, false
}
