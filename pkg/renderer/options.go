package renderer

// Config contains the rendering configuration consumed by New
type Config struct {
	// Output raster dims.
	Width  int
	Height int

	// Number of samples generated per pixel.
	SamplesPerPixel int

	// Edge length of the square work tiles (edge tiles are clipped).
	TileSize int

	// Number of parallel workers (0 = use CPU count).
	NumWorkers int
}

// DefaultConfig returns sensible default values for everything except the
// output dimensions
func DefaultConfig(width, height int) Config {
	return Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 16,
		TileSize:        64,
		NumWorkers:      0, // Auto-detect CPU count
	}
}

// Validate reports the first violated precondition, before any parallel
// work starts
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidDimensions
	}
	if c.SamplesPerPixel <= 0 {
		return ErrInvalidSamples
	}
	if c.TileSize <= 0 {
		return ErrInvalidTileSize
	}
	return nil
}
