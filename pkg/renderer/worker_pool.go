package renderer

import (
	"runtime"
	"sync"

	"github.com/parkerwe/go-sampling-engine/pkg/core"
	"github.com/parkerwe/go-sampling-engine/pkg/raster"
)

// tileResult contains the output of rendering one tile: the tile-private
// raster (tile bounds plus filter halo) and the tile's statistics
type tileResult[V core.Value[V]] struct {
	TileID int
	Raster *raster.Raster[V]
	Stats  TileStats
}

// workerPool manages the parallel tile rendering phase. Workers pull
// tiles from the task queue and push private rasters to the result
// queue; they share no mutable state with each other.
type workerPool[V core.Value[V]] struct {
	renderer    *tileRenderer[V]
	taskQueue   chan Tile
	resultQueue chan tileResult[V]
	numWorkers  int
	wg          sync.WaitGroup
}

// newWorkerPool creates a pool with the specified number of workers;
// numWorkers <= 0 selects the CPU count. Queues are sized so that
// submitting every tile and collecting every result never blocks a
// worker.
func newWorkerPool[V core.Value[V]](tr *tileRenderer[V], numWorkers, tileCount int) *workerPool[V] {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &workerPool[V]{
		renderer:    tr,
		taskQueue:   make(chan Tile, tileCount),
		resultQueue: make(chan tileResult[V], tileCount),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *workerPool[V]) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop shuts down all workers after the remaining tasks drain
func (wp *workerPool[V]) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// Submit queues a tile for rendering
func (wp *workerPool[V]) Submit(tile Tile) {
	wp.taskQueue <- tile
}

// Result retrieves a completed tile result
func (wp *workerPool[V]) Result() (tileResult[V], bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *workerPool[V]) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *workerPool[V]) run() {
	defer wp.wg.Done()

	for tile := range wp.taskQueue {
		tileRaster, stats := wp.renderer.renderTile(tile)

		wp.resultQueue <- tileResult[V]{
			TileID: tile.ID,
			Raster: tileRaster,
			Stats:  stats,
		}
	}
}
