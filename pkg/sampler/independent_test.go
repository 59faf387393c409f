package sampler

import "testing"

func TestIndependentSampleCount(t *testing.T) {
	s := NewIndependent(42)

	for _, count := range []int{0, 1, 7, 100} {
		samples := s.Generate(2, 3, count)
		if len(samples) != count {
			t.Errorf("Count %d: expected %d samples, got %d", count, count, len(samples))
		}
	}
}

func TestIndependentSamplesInsideCell(t *testing.T) {
	s := NewIndependent(7)
	px, py := 20, 30

	for _, sample := range s.Generate(px, py, 100) {
		if sample.X < float64(px) || sample.X >= float64(px)+1 ||
			sample.Y < float64(py) || sample.Y >= float64(py)+1 {
			t.Errorf("Sample (%v,%v) outside cell of pixel (%d,%d)", sample.X, sample.Y, px, py)
		}
	}
}

func TestIndependentDeterminism(t *testing.T) {
	a := NewIndependent(42).Generate(5, 5, 10)
	b := NewIndependent(42).Generate(5, 5, 10)

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Sample %d differs between identically seeded samplers: %v != %v", i, a[i], b[i])
		}
	}
}

func TestIndependentNegativeCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for negative sample count")
		}
	}()
	NewIndependent(42).Generate(0, 0, -5)
}
