package filter

import "math"

// Triangle weights fall off linearly from the center to zero at the
// support radius, as a separable product of 1D triangle functions.
type Triangle struct {
	radiusX, radiusY float64
}

// NewTriangle creates a triangle filter with the given support half-extents
func NewTriangle(radiusX, radiusY float64) (*Triangle, error) {
	if err := checkRadius(radiusX, radiusY); err != nil {
		return nil, err
	}
	return &Triangle{radiusX: radiusX, radiusY: radiusY}, nil
}

// DefaultTriangle returns a triangle filter with radius 2 in both axes
func DefaultTriangle() *Triangle {
	return &Triangle{radiusX: 2.0, radiusY: 2.0}
}

// Radius returns the support half-extents
func (f *Triangle) Radius() (float64, float64) {
	return f.radiusX, f.radiusY
}

// Weight evaluates the separable triangle kernel at the given offset
func (f *Triangle) Weight(dx, dy float64) float64 {
	return math.Max(0, f.radiusX-math.Abs(dx)) * math.Max(0, f.radiusY-math.Abs(dy))
}
