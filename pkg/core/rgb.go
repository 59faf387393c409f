package core

import "math"

// RGB represents a three-channel color value
type RGB struct {
	R, G, B float64
}

// NewRGB creates a new RGB value
func NewRGB(r, g, b float64) RGB {
	return RGB{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c RGB) Add(other RGB) RGB {
	return RGB{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color with every channel multiplied by a scalar
func (c RGB) Scale(s float64) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Luminance returns the perceptual luminance of the color
func (c RGB) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Clamp returns a color with every channel clamped to [minVal, maxVal]
func (c RGB) Clamp(minVal, maxVal float64) RGB {
	return RGB{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// GammaCorrect applies gamma correction to the color channels
func (c RGB) GammaCorrect(gamma float64) RGB {
	invGamma := 1.0 / gamma
	return RGB{
		R: math.Pow(c.R, invGamma),
		G: math.Pow(c.G, invGamma),
		B: math.Pow(c.B, invGamma),
	}
}
