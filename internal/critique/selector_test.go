package critique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRandom replays values in order, wrapping around.
type scriptedRandom struct {
	values []float64
	calls  int
}

func (s *scriptedRandom) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func constRandom(v float64) *scriptedRandom {
	return &scriptedRandom{values: []float64{v}}
}

func TestBiasedSelector_Select(t *testing.T) {
	options := []string{"a", "b", "c", "d"}

	tests := []struct {
		name  string
		draws []float64
		want  string
	}{
		{"no draw passes keeps first", []float64{0.1, 0.1, 0.1, 0.1}, "a"},
		{"every draw passes takes last", []float64{0.9, 0.9, 0.9, 0.9}, "d"},
		{"last passing draw wins", []float64{0.1, 0.9, 0.9, 0.1}, "c"},
		{"draw equal to threshold does not pass", []float64{0.5, 0.5, 0.5, 0.5}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRandom{values: tt.draws}
			got := NewBiasedSelector(rng).Select(options, 0.5)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(options), rng.calls, "one draw per option")
		})
	}
}

func TestBiasedSelector_AlwaysMember(t *testing.T) {
	for n := 1; n <= 6; n++ {
		options := make([]string, n)
		for i := range options {
			options[i] = string(rune('a' + i))
		}
		// Every pass/fail pattern over n draws.
		for mask := 0; mask < 1<<n; mask++ {
			draws := make([]float64, n)
			wantIdx := 0
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					draws[i] = 0.99
					wantIdx = i
				}
			}
			got := NewBiasedSelector(&scriptedRandom{values: draws}).Select(options, 0.6)
			require.Contains(t, options, got)
			assert.Equal(t, options[wantIdx], got, "n=%d mask=%b", n, mask)
		}
	}
}

func TestBiasedSelector_Empty(t *testing.T) {
	rng := constRandom(0.9)
	assert.Equal(t, "", NewBiasedSelector(rng).Select(nil, 0.5))
	assert.Equal(t, 0, rng.calls)
}

func TestUniformSelector_Select(t *testing.T) {
	options := []string{"a", "b", "c"}

	tests := []struct {
		draw float64
		want string
	}{
		{0, "a"},
		{0.33, "a"},
		{0.34, "b"},
		{0.999999, "c"},
		{1.0, "c"},
		{-0.1, "a"},
	}
	for _, tt := range tests {
		got := NewUniformSelector(constRandom(tt.draw)).Select(options, 0.7)
		assert.Equal(t, tt.want, got, "draw %v", tt.draw)
	}
	assert.Equal(t, "", NewUniformSelector(constRandom(0.5)).Select(nil, 0))
}

func TestNewSelector(t *testing.T) {
	rng := constRandom(0.1)

	s, err := NewSelector(SelectorBiased, rng)
	require.NoError(t, err)
	assert.IsType(t, &BiasedSelector{}, s)

	s, err = NewSelector("", rng)
	require.NoError(t, err)
	assert.IsType(t, &BiasedSelector{}, s)

	s, err = NewSelector(SelectorUniform, rng)
	require.NoError(t, err)
	assert.IsType(t, &UniformSelector{}, s)

	_, err = NewSelector("weighted", rng)
	assert.ErrorContains(t, err, "unknown selector")
}
