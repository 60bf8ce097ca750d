package scoring

const (
	maxComplexityBonus = 10
	maxDepthBonus      = 10
	maxTotal           = 100
)

// WeightMultiplier scales a criterion's nominal weight: heavy criteria are
// amplified, light ones damped.
func WeightMultiplier(weight float64) float64 {
	switch {
	case weight > 0.24:
		return 1.1
	case weight > 0.1:
		return 1.0
	case weight > 0.05:
		return 0.9
	default:
		return 0.8
	}
}

// ComplexityBonus converts a 0-100 complexity score into at most 10 points.
// Values in (2, 5] get an extra point.
func ComplexityBonus(complexity float64) float64 {
	bonus := complexity * 0.1
	switch {
	case bonus > maxComplexityBonus:
		return maxComplexityBonus
	case bonus > 5:
		return bonus
	case bonus > 2:
		return bonus + 1
	default:
		return bonus
	}
}

// DepthBonus converts the conceptual depth count into at most 10 points.
// Values in (0, 5] get an extra half point.
func DepthBonus(depth int) float64 {
	bonus := float64(depth) * 2
	switch {
	case bonus > maxDepthBonus:
		return maxDepthBonus
	case bonus > 5:
		return bonus
	case bonus > 0:
		return bonus + 0.5
	default:
		return 0
	}
}

// clamp bounds a total to [0, 100]
func clamp(v float64) float64 {
	switch {
	case v > maxTotal:
		return maxTotal
	case v < 0:
		return 0
	default:
		return v
	}
}
