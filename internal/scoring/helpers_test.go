package scoring

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWeightMultiplier(t *testing.T) {
	tests := []struct {
		weight float64
		want   float64
	}{
		{0.25, 1.1},
		{0.241, 1.1},
		{0.24, 1.0},
		{0.20, 1.0},
		{0.15, 1.0},
		{0.10, 0.9},
		{0.06, 0.9},
		{0.05, 0.8},
		{0.01, 0.8},
	}
	for _, tt := range tests {
		if got := WeightMultiplier(tt.weight); got != tt.want {
			t.Errorf("WeightMultiplier(%v) = %v, want %v", tt.weight, got, tt.want)
		}
	}
}

func TestComplexityBonus(t *testing.T) {
	tests := []struct {
		name       string
		complexity float64
		want       float64
	}{
		{"zero", 0, 0},
		{"low band", 15, 1.5},
		{"low band upper range", 19, 1.9},
		{"nudge band", 30, 4},
		{"nudge band upper range", 45, 5.5},
		{"upper band", 69.5, 6.95},
		{"capped", 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComplexityBonus(tt.complexity); !approxEqual(got, tt.want) {
				t.Errorf("ComplexityBonus(%v) = %v, want %v", tt.complexity, got, tt.want)
			}
		})
	}
}

func TestDepthBonus(t *testing.T) {
	tests := []struct {
		depth int
		want  float64
	}{
		{0, 0},
		{1, 2.5},
		{2, 4.5},
		{3, 6},
		{5, 10},
		{9, 10},
	}
	for _, tt := range tests {
		if got := DepthBonus(tt.depth); !approxEqual(got, tt.want) {
			t.Errorf("DepthBonus(%d) = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(120); got != 100 {
		t.Errorf("clamp(120) = %v", got)
	}
	if got := clamp(-3); got != 0 {
		t.Errorf("clamp(-3) = %v", got)
	}
	if got := clamp(42.5); got != 42.5 {
		t.Errorf("clamp(42.5) = %v", got)
	}
}
