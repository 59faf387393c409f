package sampler

import (
	"fmt"
	"math/rand"
)

// Independent places count uniformly distributed samples in the pixel
// cell with no stratification. Mostly useful as a baseline to compare
// against the stratified sampler.
type Independent struct {
	seed int64
}

// NewIndependent creates an independent sampler
func NewIndependent(seed int64) *Independent {
	return &Independent{seed: seed}
}

// Generate returns count uniform samples for pixel (px, py)
func (s *Independent) Generate(px, py, count int) []Sample {
	if count < 0 {
		panic(fmt.Sprintf("sampler: negative sample count %d", count))
	}
	if count == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(pixelSeed(s.seed, px, py)))

	samples := make([]Sample, count)
	for i := range samples {
		samples[i] = Sample{
			X: float64(px) + rng.Float64(),
			Y: float64(py) + rng.Float64(),
		}
	}

	return samples
}
