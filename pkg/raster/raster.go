// Package raster implements the accumulation grid that collects weighted
// sample contributions and normalizes them into final values.
package raster

import (
	"errors"
	"image"

	"github.com/parkerwe/go-sampling-engine/pkg/core"
)

// ErrEmptyBounds is returned by New for degenerate bounds.
var ErrEmptyBounds = errors.New("raster: bounds must be non-empty")

// Pixel is the accumulator for a single pixel: the weighted sum of all
// contributions received so far and the total filter weight. Weight is
// monotonically non-decreasing during accumulation.
type Pixel[V core.Value[V]] struct {
	Sum    V
	Weight float64
}

// Raster is a dense grid of pixel accumulators over a pixel-coordinate
// rectangle. Bounds may have a non-zero origin; the renderer uses the
// same type for the output grid and for tile-private partial grids.
//
// A Raster is mutated by a single goroutine at a time. Race freedom
// during parallel rendering comes from giving every tile its own raster
// and merging them after all tiles complete, not from locking here.
type Raster[V core.Value[V]] struct {
	bounds image.Rectangle
	pixels []Pixel[V]
}

// New creates an empty raster (all weights zero) covering bounds
func New[V core.Value[V]](bounds image.Rectangle) (*Raster[V], error) {
	if bounds.Empty() {
		return nil, ErrEmptyBounds
	}
	return &Raster[V]{
		bounds: bounds,
		pixels: make([]Pixel[V], bounds.Dx()*bounds.Dy()),
	}, nil
}

// Bounds returns the pixel-coordinate rectangle covered by the raster
func (r *Raster[V]) Bounds() image.Rectangle {
	return r.bounds
}

func (r *Raster[V]) index(x, y int) int {
	return (y-r.bounds.Min.Y)*r.bounds.Dx() + (x - r.bounds.Min.X)
}

// Accumulate adds weight*value to the pixel's weighted sum and weight to
// its total weight. (x, y) must lie within Bounds().
func (r *Raster[V]) Accumulate(x, y int, value V, weight float64) {
	p := &r.pixels[r.index(x, y)]
	p.Sum = p.Sum.Add(value.Scale(weight))
	p.Weight += weight
}

// At returns the accumulator state of pixel (x, y)
func (r *Raster[V]) At(x, y int) Pixel[V] {
	return r.pixels[r.index(x, y)]
}

// Merge adds every accumulator of other that overlaps r's bounds into r.
// Accumulators outside r's bounds are discarded. Merge order matters for
// bit-exact reproducibility: the renderer merges tile rasters in
// ascending tile ID order.
func (r *Raster[V]) Merge(other *Raster[V]) {
	overlap := r.bounds.Intersect(other.bounds)
	for y := overlap.Min.Y; y < overlap.Max.Y; y++ {
		for x := overlap.Min.X; x < overlap.Max.X; x++ {
			o := other.At(x, y)
			p := &r.pixels[r.index(x, y)]
			p.Sum = p.Sum.Add(o.Sum)
			p.Weight += o.Weight
		}
	}
}

// Finalize produces the normalized value grid: Sum/Weight per pixel, or
// the zero value of V for pixels that received no contributions. It must
// only be called after all accumulation has completed; the raster itself
// does not block concurrent writers.
func (r *Raster[V]) Finalize() *Grid[V] {
	values := make([]V, len(r.pixels))
	for i, p := range r.pixels {
		if p.Weight != 0 {
			values[i] = p.Sum.Scale(1.0 / p.Weight)
		}
	}
	return &Grid[V]{bounds: r.bounds, values: values}
}

// Grid is a finalized, read-only grid of normalized values.
type Grid[V core.Value[V]] struct {
	bounds image.Rectangle
	values []V
}

// Bounds returns the pixel-coordinate rectangle covered by the grid
func (g *Grid[V]) Bounds() image.Rectangle {
	return g.bounds
}

// At returns the finalized value of pixel (x, y)
func (g *Grid[V]) At(x, y int) V {
	return g.values[(y-g.bounds.Min.Y)*g.bounds.Dx()+(x-g.bounds.Min.X)]
}
