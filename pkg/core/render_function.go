package core

// RenderFunction produces the value for a single image-plane sample
// position. The engine invokes Evaluate concurrently from multiple
// goroutines with no shared mutable state passed in, so implementations
// must be pure and thread-safe. Every invocation is treated as
// succeeding; if evaluation can fail, model the failure inside the value
// type (for example with a sentinel channel value).
type RenderFunction[V Value[V]] interface {
	Evaluate(x, y float64) V
}

// RenderFunc adapts an ordinary function to the RenderFunction interface.
type RenderFunc[V Value[V]] func(x, y float64) V

// Evaluate calls f(x, y)
func (f RenderFunc[V]) Evaluate(x, y float64) V {
	return f(x, y)
}
