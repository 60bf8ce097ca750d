package critique

// Per call-site thresholds for the selector. Higher thresholds make it more
// likely that the first option survives.
const (
	thresholdTemplate       = 0.5
	thresholdJargonCategory = 0.7
	thresholdJargonPhrase   = 0.6
	thresholdDescriptor     = 0.6
	thresholdVocabulary     = 0.5
	thresholdCommunication  = 0.6
	thresholdTerminology    = 0.7
	thresholdRecommendation = 0.5
	thresholdAdverb         = 0.7
	thresholdRatioStep      = 0.5
)

const (
	ratioBase  = 60
	ratioSteps = 30

	maxPriorityRecommendations = 3
	weakCriterionScore         = 40
	topCriteria                = 3

	undefinedStyle = "UNDEFINED STYLISTIC APPROACH"
)

var (
	styleDescriptors    = []string{"SOPHISTICATED", "DELIBERATE", "CONSCIOUS"}
	vocabularyLevels    = []string{"SOPHISTICATED", "ADEQUATE", "BASIC"}
	communicationLevels = []string{"CLEAR", "ARTICULATE", "SOPHISTICATED"}
	terminologyLevels   = []string{"APPROPRIATE", "ADVANCED", "PROFESSIONAL"}
	comparativeAdverbs  = []string{"INTERESTINGLY", "CURIOUSLY", "FASCINATINGLY", "NOTABLY"}
)

// guidance is the closing recommendation block for a band of overall scores.
type guidance struct {
	below   float64
	heading string
	items   []string
}

// guidanceTiers are checked in order; the first tier whose bound exceeds the
// score applies. The last tier has no bound.
var guidanceTiers = []guidance{
	{30, "CRITICAL IMPROVEMENTS NEEDED:", []string{
		"COMPLETE CONCEPTUAL OVERHAUL REQUIRED",
		"FUNDAMENTAL REDESIGN OF ALL MAJOR SYSTEMS",
	}},
	{50, "FUNDAMENTAL IMPROVEMENTS:", []string{
		"STRENGTHEN CONCEPTUAL FRAMEWORK THROUGH DEEPER THEORETICAL ENGAGEMENT",
		"EXPAND CONSIDERATION OF USER EXPERIENCE AND FUNCTIONAL REQUIREMENTS",
		"INTEGRATE SITE-SPECIFIC AND CONTEXTUAL ANALYSIS",
	}},
	{65, "MODERATE REFINEMENT NEEDED:", []string{
		"IMPROVE TECHNICAL DOCUMENTATION AND DETAIL RESOLUTION",
		"ENHANCE MATERIAL SELECTION RATIONALE",
	}},
	{75, "REFINEMENT OPPORTUNITIES:", []string{
		"ENHANCE TECHNICAL RESOLUTION AND DETAIL DEVELOPMENT",
		"STRENGTHEN NARRATIVE COHERENCE BETWEEN CONCEPT AND EXECUTION",
	}},
	{85, "EXCELLENCE ENHANCEMENT:", []string{
		"CONSIDER INNOVATIVE MATERIAL OR TECHNOLOGICAL APPLICATIONS",
		"EXPLORE ADVANCED SUSTAINABILITY STRATEGIES",
	}},
	{0, "MASTERY LEVEL SUGGESTIONS:", []string{
		"PURSUE GROUNDBREAKING RESEARCH OPPORTUNITIES",
		"CONSIDER PUBLICATION OR EXHIBITION",
	}},
}

func guidanceFor(score float64) guidance {
	for _, g := range guidanceTiers[:len(guidanceTiers)-1] {
		if score < g.below {
			return g
		}
	}
	return guidanceTiers[len(guidanceTiers)-1]
}
