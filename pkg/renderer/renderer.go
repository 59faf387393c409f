// Package renderer drives the full sampling pipeline: it partitions the
// output raster into tiles, renders the tiles in parallel and merges the
// tile results into the accumulated output raster.
package renderer

import (
	"image"
	"time"

	"github.com/parkerwe/go-sampling-engine/pkg/core"
	"github.com/parkerwe/go-sampling-engine/pkg/filter"
	"github.com/parkerwe/go-sampling-engine/pkg/log"
	"github.com/parkerwe/go-sampling-engine/pkg/raster"
	"github.com/parkerwe/go-sampling-engine/pkg/sampler"
)

var logger = log.New("renderer")

// Renderer produces a fully accumulated raster from a sampler, a
// reconstruction filter and a render function.
type Renderer[V core.Value[V]] struct {
	config  Config
	sampler sampler.Sampler
	filter  filter.Filter
	fn      core.RenderFunction[V]
	tiles   []Tile
}

// New validates the configuration and collaborators and creates a
// renderer. All precondition violations surface here, before any
// parallel work starts.
func New[V core.Value[V]](config Config, s sampler.Sampler, f filter.Filter, fn core.RenderFunction[V]) (*Renderer[V], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNoSampler
	}
	if f == nil {
		return nil, ErrNoFilter
	}
	if fn == nil {
		return nil, ErrNoRenderFunction
	}

	return &Renderer[V]{
		config:  config,
		sampler: s,
		filter:  f,
		fn:      fn,
		tiles:   NewTileGrid(config.Width, config.Height, config.TileSize),
	}, nil
}

// Render runs the pipeline to completion and returns the accumulated
// raster for finalization by the caller. There is no cancellation: a
// panic inside the render function is fatal to the whole render.
//
// The result is identical for every worker count and scheduling order:
// sample positions depend only on the sampler seed and the pixel, and
// tile rasters are merged in ascending tile ID order, so even the
// floating-point addition order is fixed.
func (r *Renderer[V]) Render() (*raster.Raster[V], Stats, error) {
	start := time.Now()

	out, err := raster.New[V](image.Rect(0, 0, r.config.Width, r.config.Height))
	if err != nil {
		return nil, Stats{}, err
	}

	tr := &tileRenderer[V]{
		sampler: r.sampler,
		filter:  r.filter,
		fn:      r.fn,
		samples: r.config.SamplesPerPixel,
		output:  out.Bounds(),
	}

	pool := newWorkerPool(tr, r.config.NumWorkers, len(r.tiles))
	pool.Start()

	logger.Infof("rendering %dx%d: %d samples/pixel, %d tiles, %d workers",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, len(r.tiles), pool.NumWorkers())

	for _, tile := range r.tiles {
		pool.Submit(tile)
	}

	// Collect every tile raster before merging anything
	results := make([]tileResult[V], len(r.tiles))
	for range r.tiles {
		result, ok := pool.Result()
		if !ok {
			return nil, Stats{}, ErrPoolClosed
		}
		results[result.TileID] = result
	}
	pool.Stop()

	// Single-threaded reduction in tile ID order: cross-tile filter
	// contributions land in exactly one accumulator per pixel, in the
	// same order every run
	stats := Stats{Workers: pool.NumWorkers()}
	for _, result := range results {
		out.Merge(result.Raster)
		stats.addTile(result.Stats)
	}
	stats.finalize(time.Since(start))

	logger.Infof("render finished in %v: %d samples over %d pixels (mean tile time %v)",
		stats.Elapsed, stats.TotalSamples, stats.TotalPixels, stats.MeanTileTime)

	return out, stats, nil
}

// Tiles returns the tile partition used by Render
func (r *Renderer[V]) Tiles() []Tile {
	return r.tiles
}
