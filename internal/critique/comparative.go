package critique

import (
	"fmt"
	"math"
	"strings"

	"github.com/dotcommander/archcritic/internal/rules"
)

func (c *Composer) comparative(score float64) Section {
	ref, _ := nearestReference(c.rules.References, score)
	adverb := c.selector.Select(comparativeAdverbs, thresholdAdverb)

	var b strings.Builder
	fmt.Fprintf(&b, "%s, THIS DESIGN SCORES CLOSEST TO THE WORK OF %s\n", adverb, ref.Name)
	b.WriteString("IN OUR HISTORICAL DATABASE, WITH A SIMILAR LEVEL OF ARCHITECTURAL MERIT.\n\n")
	b.WriteString("THIS SUGGESTS THE DESIGN APPROACHES PROFESSIONAL STANDARDS COMPARABLE TO\n")
	b.WriteString("ESTABLISHED MASTERS OF THE DISCIPLINE, THOUGH FURTHER REFINEMENT COULD\n")
	b.WriteString("ELEVATE IT TO EVEN HIGHER LEVELS OF ACHIEVEMENT.\n")

	return Section{Kind: SectionComparative, Title: "COMPARATIVE ANALYSIS", Body: b.String()}
}

// nearestReference returns the reference whose score is closest to score. The
// earliest entry wins ties.
func nearestReference(refs []rules.Reference, score float64) (rules.Reference, bool) {
	var best rules.Reference
	bestDiff := math.Inf(1)
	for _, ref := range refs {
		if diff := math.Abs(ref.Score - score); diff < bestDiff {
			best, bestDiff = ref, diff
		}
	}
	return best, !math.IsInf(bestDiff, 1)
}
