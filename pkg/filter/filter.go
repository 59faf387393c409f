// Package filter implements the reconstruction filters that distribute a
// sample's value over nearby pixel accumulators.
package filter

import "errors"

// ErrInvalidRadius is returned by filter constructors for a non-positive
// support radius.
var ErrInvalidRadius = errors.New("filter: radius must be positive")

// Filter is a sampling reconstruction filter. Radius returns the support
// half-extents in the x and y direction. Weight evaluates the kernel for
// an offset from the pixel center and is only called for |dx| <= rx,
// |dy| <= ry; behavior outside the support box is undefined.
// Filters are immutable after construction and safe to share across
// goroutines without synchronization.
type Filter interface {
	Radius() (x, y float64)
	Weight(dx, dy float64) float64
}

func checkRadius(radiusX, radiusY float64) error {
	if radiusX <= 0 || radiusY <= 0 {
		return ErrInvalidRadius
	}
	return nil
}
