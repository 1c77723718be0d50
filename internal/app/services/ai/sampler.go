package ai

import (
	"math/rand"
	"sync"
	"time"
)

// Sampler provides the randomness used by the simulated inference engine.
// Tests inject a fixed implementation to make analyses deterministic.
type Sampler interface {
	Float64InRange(low, high float64) float64
	Intn(n int) int
}

type randSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandSampler() Sampler {
	return &randSampler{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *randSampler) Float64InRange(low, high float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return low + s.rng.Float64()*(high-low)
}

func (s *randSampler) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
