package critique

import (
	"fmt"
	"math"
	"strings"

	"github.com/dotcommander/archcritic/internal/analysis"
)

func (c *Composer) technical(result analysis.Result) Section {
	vocabulary := c.selector.Select(vocabularyLevels, thresholdVocabulary)
	ratio := c.vocabularyRatio(result.Stats)
	communication := c.selector.Select(communicationLevels, thresholdCommunication)
	terminology := c.selector.Select(terminologyLevels, thresholdTerminology)

	var b strings.Builder
	fmt.Fprintf(&b, "LINGUISTIC COMPLEXITY: %.1f/100\n", result.Complexity)
	fmt.Fprintf(&b, "CONCEPTUAL DEPTH INDICATORS: %d\n", result.ConceptualDepth)
	fmt.Fprintf(&b, "TECHNICAL VOCABULARY USAGE: %s\n\n", vocabulary)
	b.WriteString("STRUCTURAL ANALYSIS:\n")
	fmt.Fprintf(&b, "- TEXTUAL DENSITY: %d WORDS, %d SENTENCES\n", result.WordCount, result.SentenceCount)
	fmt.Fprintf(&b, "- AVERAGE SENTENCE LENGTH: %.1f WORDS\n", result.AverageSentenceLength)
	fmt.Fprintf(&b, "- UNIQUE VOCABULARY RATIO: %d%%\n\n", ratio)
	fmt.Fprintf(&b, "COMMUNICATION EFFECTIVENESS: THE SUBMISSION DEMONSTRATES %s\n", communication)
	fmt.Fprintf(&b, "ARCHITECTURAL COMMUNICATION WITH %s\n", terminology)
	b.WriteString("USE OF DISCIPLINE-SPECIFIC TERMINOLOGY.\n")

	return Section{Kind: SectionTechnical, Title: "TECHNICAL ASSESSMENT", Body: b.String()}
}

// vocabularyRatio is decorative by default: a random walk from 60 that gains a
// point for each of 30 draws above one half. With the computed option it is the
// real distinct-word percentage and consumes no draws.
func (c *Composer) vocabularyRatio(stats analysis.Stats) int {
	if c.computedRatio {
		return int(math.Round(stats.UniqueRatio()))
	}
	ratio := ratioBase
	for i := 0; i < ratioSteps; i++ {
		if c.rng.Float64() > thresholdRatioStep {
			ratio++
		}
	}
	return ratio
}
