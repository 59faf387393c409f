package cmd

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/parkerwe/go-sampling-engine/pkg/core"
)

// Demo render functions for the example CLI. Each maps image-plane
// coordinates to a color; all of them are pure, so they satisfy the
// engine's concurrency contract trivially.

// renderFunction looks up a demo function by name. width and height are
// used to normalize coordinates to [0,1].
func renderFunction(name string, width, height int) (core.RenderFunction[core.RGB], error) {
	w := float64(width)
	h := float64(height)

	switch name {
	case "gradient":
		return core.RenderFunc[core.RGB](func(x, y float64) core.RGB {
			return core.NewRGB(x/w, y/h, 1.0-x/w)
		}), nil

	case "rings":
		return core.RenderFunc[core.RGB](func(x, y float64) core.RGB {
			dx := x - w/2
			dy := y - h/2
			d := math.Sqrt(dx*dx+dy*dy) / (0.5 * math.Min(w, h))
			v := 0.5 + 0.5*math.Cos(d*40)
			return core.NewRGB(v, v*d, 1.0-v)
		}), nil

	case "mandelbrot":
		return core.RenderFunc[core.RGB](func(x, y float64) core.RGB {
			c := complex(3.0*(x/w)-2.25, 2.4*(y/h)-1.2)
			z := complex(0, 0)
			const maxIter = 256
			for i := 0; i < maxIter; i++ {
				z = z*z + c
				if cmplx.Abs(z) > 2 {
					t := float64(i) / maxIter
					return core.NewRGB(t*3, t*t*7, math.Sqrt(t))
				}
			}
			return core.RGB{}
		}), nil
	}

	return nil, fmt.Errorf("unknown render function %q", name)
}
