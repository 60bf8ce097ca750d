package analysis

// keywordPoints converts how often one keyword matched into criterion points.
func keywordPoints(count int) int {
	switch {
	case count >= 3:
		return 30
	case count == 2:
		return 20
	case count == 1:
		return 10
	default:
		return 0
	}
}

// coverageBonus rewards matching several distinct keywords of one criterion.
func coverageBonus(distinct int) int {
	switch {
	case distinct >= 3:
		return 10
	case distinct == 2:
		return 5
	default:
		return 0
	}
}

// occurrencePoints is the 1/2/3 density tier used for technical terms and
// conceptual indicators.
func occurrencePoints(count int) int {
	switch {
	case count > 2:
		return 3
	case count == 2:
		return 2
	case count == 1:
		return 1
	default:
		return 0
	}
}
