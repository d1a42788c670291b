package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/lougreen/dicelab/dice Source

// Source is the randomness provider for weighted sampling.
type Source interface {
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// mathSource implements Source using math/rand.
type mathSource struct {
	random *rand.Rand
}

// NewSource creates a Source seeded from the current time.
func NewSource() Source {
	return NewSeededSource(time.Now().UnixNano())
}

// NewSeededSource creates a Source with a fixed seed, for reproducible
// experiments and tests.
func NewSeededSource(seed int64) Source {
	return &mathSource{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float in [0.0, 1.0).
func (s *mathSource) Float64() float64 {
	return s.random.Float64()
}
