package core

// Value is the capability required of an accumulable sample value. The
// zero value of V must be the additive identity, Add returns the sum of
// two values, and Scale returns the value multiplied by a scalar. Values
// are passed around by copy, so implementations must not share mutable
// state between copies.
type Value[V any] interface {
	Add(V) V
	Scale(float64) V
}

// Luma is a scalar value type for single-channel (grayscale) rendering.
type Luma float64

// Add returns the sum of two luma values
func (l Luma) Add(other Luma) Luma {
	return l + other
}

// Scale returns the luma value multiplied by a scalar
func (l Luma) Scale(s float64) Luma {
	return Luma(float64(l) * s)
}
