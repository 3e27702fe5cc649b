package simulator

import (
	"math/rand/v2"
	"sync/atomic"
)

// RandomSource is the only source of nondeterminism in the simulator.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

func NewRandomSource(seed uint64, stream uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, stream))
}

// WeightedChoice returns an index into weights, chosen with probability
// proportional to its weight. The draw is scaled by the weight total and
// matched against the cumulative weights, the last index absorbs any
// rounding at the top of the range.
func WeightedChoice(random RandomSource, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	cumulative := make([]float64, len(weights))
	total := 0.0
	for i, weight := range weights {
		total += weight
		cumulative[i] = total
	}

	draw := random.Float64() * total
	for i := 0; i < len(cumulative)-1; i++ {
		if draw < cumulative[i] {
			return i
		}
	}

	return len(weights) - 1
}

// Sequence hands out train numbers starting at 1
type Sequence struct {
	last atomic.Int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() int {
	return int(s.last.Add(1))
}
