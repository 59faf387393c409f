package sampler

// Sample is one 2D image-plane position at which the render function is
// evaluated. Coordinates are absolute: a sample for pixel (px, py) lies
// inside the unit cell [px, px+1) x [py, py+1).
type Sample struct {
	X, Y float64
}

// Sampler generates the sample positions for one pixel. Implementations
// must be deterministic: calling Generate twice with the same pixel and
// count returns the same positions, independent of goroutine or call
// order. A count of zero yields an empty slice; a negative count is a
// programming error and panics.
// Samplers hold no mutable state after construction and are safe to share
// across goroutines.
type Sampler interface {
	Generate(px, py, count int) []Sample
}

// pixelSeed mixes the base seed with the pixel coordinates so that every
// pixel gets an independent, reproducible random stream without any
// shared generator state. Uses the splitmix64 finalizer.
func pixelSeed(seed int64, px, py int) int64 {
	z := uint64(seed)
	z += uint64(uint32(px)) * 0x9e3779b97f4a7c15
	z += uint64(uint32(py)) * 0xd1b54a32d192ed03
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
