package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/parkerwe/go-sampling-engine/cmd"
	"github.com/parkerwe/go-sampling-engine/pkg/log"
)

func main() {
	app := cli.NewApp()
	app.Name = "go-sampling-engine"
	app.Usage = "render demo functions with the sampling/reconstruction engine"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a demo function to a PNG file",
			Description: `
Render one of the built-in demo functions through the full pipeline:
stratified sampling, reconstruction filtering, parallel tile rendering
and normalization.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "output width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "output height in pixels",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 16,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "tile edge length in pixels",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of parallel workers (0 = CPU count)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "sampler seed",
				},
				cli.StringFlag{
					Name:  "function, f",
					Value: "rings",
					Usage: "demo function: gradient, rings or mandelbrot",
				},
				cli.StringFlag{
					Name:  "sampler",
					Value: "stratified",
					Usage: "sampler: stratified or independent",
				},
				cli.BoolFlag{
					Name:  "no-jitter",
					Usage: "place samples at stratum centers",
				},
				cli.StringFlag{
					Name:  "filter",
					Value: "mitchell",
					Usage: "reconstruction filter: box, triangle, gaussian, mitchell or lanczos",
				},
				cli.Float64Flag{
					Name:  "radius",
					Usage: "filter support radius (0 = filter default)",
				},
				cli.Float64Flag{
					Name:  "gaussian-alpha",
					Value: 2.0,
					Usage: "gaussian falloff rate",
				},
				cli.Float64Flag{
					Name:  "mitchell-b",
					Value: 1.0 / 3.0,
					Usage: "mitchell B shape constant",
				},
				cli.Float64Flag{
					Name:  "mitchell-c",
					Value: 1.0 / 3.0,
					Usage: "mitchell C shape constant",
				},
				cli.Float64Flag{
					Name:  "lanczos-tau",
					Value: 3.0,
					Usage: "lanczos window lobe count",
				},
				cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "upscale the output by an integer factor",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "filters",
			Usage:  "list available reconstruction filters",
			Action: cmd.ListFilters,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("main").Error(err)
		os.Exit(1)
	}
}
