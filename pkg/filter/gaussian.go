package filter

import "math"

// Gaussian evaluates exp(-alpha*d^2) per axis, shifted down by the value
// at the support boundary so the kernel reaches exactly zero at the
// radius instead of ending in a step discontinuity.
type Gaussian struct {
	radiusX, radiusY float64
	alpha            float64
	expX, expY       float64
}

// NewGaussian creates a gaussian filter; alpha controls the falloff rate
// (higher is narrower)
func NewGaussian(radiusX, radiusY, alpha float64) (*Gaussian, error) {
	if err := checkRadius(radiusX, radiusY); err != nil {
		return nil, err
	}
	return &Gaussian{
		radiusX: radiusX,
		radiusY: radiusY,
		alpha:   alpha,
		expX:    math.Exp(-alpha * radiusX * radiusX),
		expY:    math.Exp(-alpha * radiusY * radiusY),
	}, nil
}

// DefaultGaussian returns a gaussian filter with radius 2 and alpha 2
func DefaultGaussian() *Gaussian {
	f, _ := NewGaussian(2.0, 2.0, 2.0)
	return f
}

// Radius returns the support half-extents
func (f *Gaussian) Radius() (float64, float64) {
	return f.radiusX, f.radiusY
}

// Weight evaluates the separable windowed gaussian at the given offset
func (f *Gaussian) Weight(dx, dy float64) float64 {
	return f.gaussian(dx, f.expX) * f.gaussian(dy, f.expY)
}

func (f *Gaussian) gaussian(d, boundary float64) float64 {
	return math.Max(0, math.Exp(-f.alpha*d*d)-boundary)
}
