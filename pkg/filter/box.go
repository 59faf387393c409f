package filter

// Box is the cheapest reconstruction filter: constant weight everywhere
// inside the support. Tends to produce blocky results.
type Box struct {
	radiusX, radiusY float64
}

// NewBox creates a box filter with the given support half-extents
func NewBox(radiusX, radiusY float64) (*Box, error) {
	if err := checkRadius(radiusX, radiusY); err != nil {
		return nil, err
	}
	return &Box{radiusX: radiusX, radiusY: radiusY}, nil
}

// DefaultBox returns a box filter covering exactly one pixel cell
func DefaultBox() *Box {
	return &Box{radiusX: 0.5, radiusY: 0.5}
}

// Radius returns the support half-extents
func (f *Box) Radius() (float64, float64) {
	return f.radiusX, f.radiusY
}

// Weight returns 1 for every offset inside the support
func (f *Box) Weight(dx, dy float64) float64 {
	return 1.0
}
