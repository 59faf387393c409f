package sampler

import (
	"fmt"
	"math"
	"math/rand"
)

// Stratified divides the unit pixel cell into an n x n grid of strata,
// n = ceil(sqrt(count)), and places one jittered sample per stratum.
// Stratification reduces sample clumping compared to independent
// sampling at the same count.
type Stratified struct {
	seed   int64
	jitter bool
}

// NewStratified creates a stratified sampler. With jitter disabled every
// sample sits at its stratum center, which is useful for reproducible
// golden tests.
func NewStratified(seed int64, jitter bool) *Stratified {
	return &Stratified{seed: seed, jitter: jitter}
}

// Generate returns count samples for pixel (px, py), one per stratum in
// row-major stratum order. When count is not a perfect square the
// trailing strata of the scan order are skipped, so no stratum ever holds
// more than one sample.
func (s *Stratified) Generate(px, py, count int) []Sample {
	if count < 0 {
		panic(fmt.Sprintf("sampler: negative sample count %d", count))
	}
	if count == 0 {
		return nil
	}

	n := int(math.Ceil(math.Sqrt(float64(count))))
	rng := rand.New(rand.NewSource(pixelSeed(s.seed, px, py)))

	samples := make([]Sample, 0, count)
	for sy := 0; sy < n && len(samples) < count; sy++ {
		for sx := 0; sx < n && len(samples) < count; sx++ {
			jx, jy := 0.5, 0.5
			if s.jitter {
				jx = rng.Float64()
				jy = rng.Float64()
			}
			samples = append(samples, Sample{
				X: float64(px) + (float64(sx)+jx)/float64(n),
				Y: float64(py) + (float64(sy)+jy)/float64(n),
			})
		}
	}

	return samples
}
