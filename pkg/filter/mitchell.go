package filter

import "math"

// Mitchell is the Mitchell-Netravali filter: a separable piecewise cubic
// spline parameterized by the two shape constants B and C, evaluated on
// the offset normalized by the radius. The cubic coefficients for the
// inner (|t| < 1) and outer (1 <= |t| < 2) segments are precomputed at
// construction.
type Mitchell struct {
	radiusX, radiusY float64
	p1, p2           [4]float64
}

// NewMitchell creates a Mitchell-Netravali filter with shape constants
// b and c
func NewMitchell(radiusX, radiusY, b, c float64) (*Mitchell, error) {
	if err := checkRadius(radiusX, radiusY); err != nil {
		return nil, err
	}
	return &Mitchell{
		radiusX: radiusX,
		radiusY: radiusY,
		p1:      [4]float64{1.0 - b/3.0, 0.0, -3.0 + 2.0*b + c, 2.0 - 1.5*b - c},
		p2:      [4]float64{4.0/3.0*b + 4.0*c, -2.0*b - 8.0*c, b + 5.0*c, -b/6.0 - c},
	}, nil
}

// DefaultMitchell returns a Mitchell filter with radius 2 and the classic
// B = C = 1/3 parameters
func DefaultMitchell() *Mitchell {
	f, _ := NewMitchell(2.0, 2.0, 1.0/3.0, 1.0/3.0)
	return f
}

// Radius returns the support half-extents
func (f *Mitchell) Radius() (float64, float64) {
	return f.radiusX, f.radiusY
}

// Weight evaluates the separable cubic at the given offset
func (f *Mitchell) Weight(dx, dy float64) float64 {
	return f.mitchell(dx/f.radiusX) * f.mitchell(dy/f.radiusY)
}

// mitchell evaluates the 1D cubic on the offset normalized to [-1, 1],
// rescaled to the spline's natural [-2, 2] domain
func (f *Mitchell) mitchell(v float64) float64 {
	x := 2.0 * math.Abs(v)
	if x <= 1.0 {
		return f.p1[0] + f.p1[1]*x + f.p1[2]*x*x + f.p1[3]*x*x*x
	} else if x <= 2.0 {
		return f.p2[0] + f.p2[1]*x + f.p2[2]*x*x + f.p2[3]*x*x*x
	}
	return 0.0
}
