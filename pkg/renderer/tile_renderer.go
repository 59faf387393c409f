package renderer

import (
	"image"
	"math"
	"time"

	"github.com/parkerwe/go-sampling-engine/pkg/core"
	"github.com/parkerwe/go-sampling-engine/pkg/filter"
	"github.com/parkerwe/go-sampling-engine/pkg/raster"
	"github.com/parkerwe/go-sampling-engine/pkg/sampler"
)

// tileRenderer renders the pixels of one tile into a tile-private raster.
// It is shared read-only by all workers; per-tile mutable state lives in
// the raster each call returns.
type tileRenderer[V core.Value[V]] struct {
	sampler sampler.Sampler
	filter  filter.Filter
	fn      core.RenderFunction[V]
	samples int
	output  image.Rectangle // full output bounds; splats outside are discarded
}

// haloBounds returns the tile bounds inflated by the filter support and
// clipped to the output bounds. Contributions that cross the tile edge
// land in the halo of this tile's raster and are summed into neighboring
// tiles' pixels during the merge phase.
func (tr *tileRenderer[V]) haloBounds(tile image.Rectangle) image.Rectangle {
	rx, ry := tr.filter.Radius()
	halo := image.Rect(
		tile.Min.X-int(math.Ceil(rx)),
		tile.Min.Y-int(math.Ceil(ry)),
		tile.Max.X+int(math.Ceil(rx)),
		tile.Max.Y+int(math.Ceil(ry)),
	)
	return halo.Intersect(tr.output)
}

// renderTile samples every pixel of the tile, evaluates the render
// function once per sample and splats the result into the private raster
func (tr *tileRenderer[V]) renderTile(tile Tile) (*raster.Raster[V], TileStats) {
	start := time.Now()

	out, err := raster.New[V](tr.haloBounds(tile.Bounds))
	if err != nil {
		// Tile bounds are a non-empty subset of the output bounds, so the
		// halo intersection cannot be empty
		panic(err)
	}

	rx, ry := tr.filter.Radius()
	sampleCount := 0

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			for _, s := range tr.sampler.Generate(x, y, tr.samples) {
				sampleCount++
				value := tr.fn.Evaluate(s.X, s.Y)
				tr.splat(out, s, value, rx, ry)
			}
		}
	}

	return out, TileStats{
		TileID:   tile.ID,
		Pixels:   tile.Bounds.Dx() * tile.Bounds.Dy(),
		Samples:  sampleCount,
		Duration: time.Since(start),
	}
}

// splat distributes one sample's value into every pixel whose center lies
// within the filter support of the sample position. Support reaching past
// the raster bounds is discarded: no wraparound, no position clamping.
func (tr *tileRenderer[V]) splat(out *raster.Raster[V], s sampler.Sample, value V, rx, ry float64) {
	bounds := out.Bounds()

	// Pixel centers sit at integer coordinates + 0.5
	x0 := max(int(math.Ceil(s.X-rx-0.5)), bounds.Min.X)
	x1 := min(int(math.Floor(s.X+rx-0.5)), bounds.Max.X-1)
	y0 := max(int(math.Ceil(s.Y-ry-0.5)), bounds.Min.Y)
	y1 := min(int(math.Floor(s.Y+ry-0.5)), bounds.Max.Y-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			weight := tr.filter.Weight(float64(x)+0.5-s.X, float64(y)+0.5-s.Y)
			if weight != 0 {
				out.Accumulate(x, y, value, weight)
			}
		}
	}
}
