package classifier

import (
	"image"
	"math/rand"
	"sync"
	"time"
)

// Stub is the placeholder model used while the trained network is
// unavailable. It ignores the image content and draws a uniformly
// random label with plausible-looking scores.
type Stub struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStub returns a stub classifier seeded from the clock.
func NewStub() *Stub {
	return &Stub{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewStubWithSource returns a stub classifier with a caller-provided
// source, used by tests for reproducible draws.
func NewStubWithSource(src rand.Source) *Stub {
	return &Stub{rng: rand.New(src)}
}

// Classify draws a label uniformly from the class set, a confidence in
// [0.70, 0.95) and a display accuracy in [91.0, 95.0).
func (s *Stub) Classify(_ image.Image) Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Prediction{
		Label:           Labels[s.rng.Intn(len(Labels))],
		Confidence:      uniform(s.rng, 0.70, 0.95),
		DisplayAccuracy: uniform(s.rng, 91.0, 95.0),
	}
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
