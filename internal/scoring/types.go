package scoring

// Score is the overall evaluation of a proposal together with how it was reached.
type Score struct {
	Total           float64        `json:"total" yaml:"total"`                       // 0-100 final score
	Weighted        float64        `json:"weighted" yaml:"weighted"`                 // sum of criterion contributions
	ComplexityBonus float64        `json:"complexity_bonus" yaml:"complexity_bonus"` // 0-10
	DepthBonus      float64        `json:"depth_bonus" yaml:"depth_bonus"`           // 0-10
	StyleBonus      float64        `json:"style_bonus" yaml:"style_bonus"`           // 0 when no style detected
	Contributions   []Contribution `json:"contributions" yaml:"contributions"`
}

// Contribution is one criterion's share of the weighted total
type Contribution struct {
	Criterion  string  `json:"criterion" yaml:"criterion"`
	Score      float64 `json:"score" yaml:"score"`
	Weight     float64 `json:"weight" yaml:"weight"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
	Weighted   float64 `json:"weighted" yaml:"weighted"`
}

// Classification is the executive label pair for an overall score
type Classification struct {
	Label string `json:"label" yaml:"label"`
	Tone  string `json:"tone" yaml:"tone"`
}

// Classify returns the executive classification for an overall score
func Classify(score float64) Classification {
	switch {
	case score >= 90:
		return Classification{"EXCEPTIONAL ARCHITECTURAL PROPOSITION", "DEMONSTRATES MASTERY"}
	case score >= 80:
		return Classification{"VERY STRONG ARCHITECTURAL CONCEPT", "DEMONSTRATES ADVANCED UNDERSTANDING"}
	case score >= 65:
		return Classification{"STRONG ARCHITECTURAL CONCEPT", "SHOWS SOLID UNDERSTANDING"}
	case score >= 50:
		return Classification{"ADEQUATE ARCHITECTURAL APPROACH", "DISPLAYS COMPETENT HANDLING"}
	default:
		return Classification{"DEVELOPING ARCHITECTURAL CONCEPT", "REQUIRES SIGNIFICANT REFINEMENT"}
	}
}

// Performance is the descriptive rating of a single criterion score
type Performance struct {
	Label string `json:"label" yaml:"label"`
	Stars string `json:"stars" yaml:"stars"`
}

// PerformanceFromScore maps a criterion score onto its rating
func PerformanceFromScore(score float64) Performance {
	switch {
	case score >= 85:
		return Performance{"EXCELLENT", "★★★"}
	case score >= 70:
		return Performance{"VERY GOOD", "★★★"}
	case score >= 60:
		return Performance{"GOOD", "★★☆"}
	case score >= 50:
		return Performance{"ADEQUATE PLUS", "★★☆"}
	case score >= 30:
		return Performance{"ADEQUATE", "★☆☆"}
	case score >= 10:
		return Performance{"NEEDS IMPROVEMENT", "☆☆☆"}
	default:
		return Performance{"POOR", "☆☆☆"}
	}
}
