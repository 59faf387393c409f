package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"golang.org/x/image/draw"

	"github.com/parkerwe/go-sampling-engine/pkg/core"
	"github.com/parkerwe/go-sampling-engine/pkg/raster"
	"github.com/parkerwe/go-sampling-engine/pkg/renderer"
	"github.com/parkerwe/go-sampling-engine/pkg/sampler"
)

// RenderFrame renders a demo function to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	config := renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		TileSize:        ctx.Int("tile-size"),
		NumWorkers:      ctx.Int("workers"),
	}

	fn, err := renderFunction(ctx.String("function"), config.Width, config.Height)
	if err != nil {
		return err
	}

	f, err := selectFilter(ctx)
	if err != nil {
		return err
	}

	s, err := selectSampler(ctx)
	if err != nil {
		return err
	}

	r, err := renderer.New(config, s, f, fn)
	if err != nil {
		return err
	}

	out, stats, err := r.Render()
	if err != nil {
		return err
	}

	img := toImage(out.Finalize())
	if scale := ctx.Int("scale"); scale > 1 {
		img = scaleImage(img, scale)
	}

	if err := writePNG(ctx.String("out"), img); err != nil {
		return err
	}
	logger.Noticef("wrote %s", ctx.String("out"))

	displayRenderStats(stats)
	return nil
}

func selectSampler(ctx *cli.Context) (sampler.Sampler, error) {
	seed := ctx.Int64("seed")
	jitter := !ctx.Bool("no-jitter")

	switch name := ctx.String("sampler"); name {
	case "stratified":
		return sampler.NewStratified(seed, jitter), nil
	case "independent":
		return sampler.NewIndependent(seed), nil
	default:
		return nil, fmt.Errorf("unknown sampler %q", name)
	}
}

// toImage converts a finalized grid to an 8-bit sRGB image
func toImage(grid *raster.Grid[core.RGB]) *image.RGBA {
	bounds := grid.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := grid.At(x, y).Clamp(0, 1).GammaCorrect(2.2)
			img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.RGBA{
				R: uint8(c.R*255 + 0.5),
				G: uint8(c.G*255 + 0.5),
				B: uint8(c.B*255 + 0.5),
				A: 255,
			})
		}
	}

	return img
}

// scaleImage upscales with Catmull-Rom resampling
func scaleImage(img *image.RGBA, factor int) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func writePNG(path string, img *image.RGBA) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func displayRenderStats(stats renderer.Stats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Pixels", "Samples", "Samples/pixel", "Tiles", "Workers", "Mean tile time", "Tile time stddev", "Total"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.1f", stats.AverageSamples()),
		fmt.Sprintf("%d", stats.TileCount),
		fmt.Sprintf("%d", stats.Workers),
		stats.MeanTileTime.String(),
		stats.StddevTileTime.String(),
		stats.Elapsed.String(),
	})
	table.Render()
}
