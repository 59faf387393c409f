package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// TileStats contains statistics for a single rendered tile
type TileStats struct {
	TileID   int           // Tile identifier
	Pixels   int           // Number of pixels owned by the tile
	Samples  int           // Number of samples generated
	Duration time.Duration // Wall time spent rendering the tile
}

// Stats contains statistics about a completed render
type Stats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	TileCount      int           // Number of tiles rendered
	Workers        int           // Number of parallel workers used
	Elapsed        time.Duration // Total wall time of the render
	MeanTileTime   time.Duration // Mean per-tile render time
	StddevTileTime time.Duration // Standard deviation of per-tile render times

	tileSeconds []float64
}

// addTile folds one tile's statistics into the totals
func (s *Stats) addTile(ts TileStats) {
	s.TotalPixels += ts.Pixels
	s.TotalSamples += ts.Samples
	s.TileCount++
	s.tileSeconds = append(s.tileSeconds, ts.Duration.Seconds())
}

// finalize computes the aggregate tile timing figures
func (s *Stats) finalize(elapsed time.Duration) {
	s.Elapsed = elapsed

	if len(s.tileSeconds) == 0 {
		return
	}
	s.MeanTileTime = secondsToDuration(stat.Mean(s.tileSeconds, nil))
	if len(s.tileSeconds) > 1 {
		s.StddevTileTime = secondsToDuration(stat.StdDev(s.tileSeconds, nil))
	}
}

// AverageSamples returns the average number of samples per pixel
func (s *Stats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
