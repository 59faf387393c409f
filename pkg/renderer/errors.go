package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: width and height must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidTileSize   = errors.New("renderer: tile size must be positive")
	ErrNoSampler         = errors.New("renderer: no sampler configured")
	ErrNoFilter          = errors.New("renderer: no filter configured")
	ErrNoRenderFunction  = errors.New("renderer: no render function configured")
	ErrPoolClosed        = errors.New("renderer: worker pool closed unexpectedly")
)
