package filter

import "math"

// LanczosSinc is the Lanczos-windowed sinc filter: a separable product of
// sinc(v) and the Lanczos window sinc(v/tau), where tau is the number of
// sinc lobes inside the window. The sharpest of the filters here and the
// most expensive, with two transcendental evaluations per sample per
// axis.
type LanczosSinc struct {
	radiusX, radiusY float64
	tau              float64
}

// NewLanczosSinc creates a Lanczos-windowed sinc filter with tau lobes
func NewLanczosSinc(radiusX, radiusY, tau float64) (*LanczosSinc, error) {
	if err := checkRadius(radiusX, radiusY); err != nil {
		return nil, err
	}
	return &LanczosSinc{radiusX: radiusX, radiusY: radiusY, tau: tau}, nil
}

// DefaultLanczosSinc returns a Lanczos-sinc filter with radius 4 and
// three lobes
func DefaultLanczosSinc() *LanczosSinc {
	f, _ := NewLanczosSinc(4.0, 4.0, 3.0)
	return f
}

// Radius returns the support half-extents
func (f *LanczosSinc) Radius() (float64, float64) {
	return f.radiusX, f.radiusY
}

// Weight evaluates the separable windowed sinc at the given offset
func (f *LanczosSinc) Weight(dx, dy float64) float64 {
	return f.windowedSinc(dx, f.radiusX) * f.windowedSinc(dy, f.radiusY)
}

func (f *LanczosSinc) windowedSinc(v, radius float64) float64 {
	v = math.Abs(v)
	if v > radius {
		return 0.0
	}
	return sinc(v) * sinc(v/f.tau)
}

// sinc computes sin(pi*v)/(pi*v) with the limit at v=0 defined
// explicitly as 1 to avoid a 0/0 NaN.
func sinc(v float64) float64 {
	v = math.Abs(v)
	if v < 1e-7 {
		return 1.0
	}
	w := math.Pi * v
	return math.Sin(w) / w
}
