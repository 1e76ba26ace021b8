package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/loaders"
	"github.com/df07/go-cubotracer/pkg/renderer"
	"github.com/df07/go-cubotracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderOptions collects everything the render command needs
type RenderOptions struct {
	Scene     string
	Camera    string
	Width     int
	MeshPath  string
	ScenesDir string
	Sampling  renderer.SamplingConfig
	Format    string
	MaxVal    int
	Gamma     bool
	Out       string
}

// Render a scene to an image file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := RenderOptions{
		Scene:     ctx.String("scene"),
		Camera:    ctx.String("camera"),
		Width:     ctx.Int("width"),
		MeshPath:  ctx.String("mesh"),
		ScenesDir: ctx.String("scenes-dir"),
		Sampling: renderer.SamplingConfig{
			SamplesPerPixel: ctx.Int("spp"),
			MaxBounces:      ctx.Int("bounces"),
			TileSize:        ctx.Int("tile-size"),
			NumWorkers:      ctx.Int("workers"),
			Seed:            ctx.Int64("seed"),
		},
		Format: ctx.String("format"),
		MaxVal: ctx.Int("maxval"),
		Gamma:  ctx.Bool("gamma"),
		Out:    ctx.String("out"),
	}

	stats, err := renderToFile(opts)
	if err != nil {
		return err
	}

	displayRenderStats(opts, stats)
	return nil
}

// renderToFile builds the scene, renders it and writes the post-processed image
func renderToFile(opts RenderOptions) (renderer.RenderStats, error) {
	world, err := scene.Build(opts.Scene, scene.Options{
		Width:     opts.Width,
		MeshPath:  opts.MeshPath,
		ScenesDir: opts.ScenesDir,
	})
	if err != nil {
		return renderer.RenderStats{}, err
	}

	img, stats, err := world.RenderWithConfig(opts.Camera, opts.Sampling)
	if err != nil {
		return stats, err
	}

	if img, err = postProcess(img, opts.MaxVal, opts.Gamma); err != nil {
		return stats, err
	}

	if err := loaders.SaveImage(opts.Out, img, opts.Format); err != nil {
		return stats, err
	}
	logger.Noticef("wrote %dx%d %s image to %s", img.Width(), img.Height(), opts.Format, opts.Out)
	return stats, nil
}

// postProcess rescales to maxVal (when set) and optionally gamma corrects
func postProcess(img *core.Image, maxVal int, gamma bool) (*core.Image, error) {
	if maxVal > 0 && maxVal != img.MaxVal() {
		rescaled, err := img.Rescale(maxVal)
		if err != nil {
			return nil, err
		}
		img = rescaled
	}
	if gamma {
		img.GammaCorrect()
	}
	return img, nil
}

func displayRenderStats(opts RenderOptions, stats renderer.RenderStats) {
	logger.Noticef("render statistics\n%s", renderStatsTable(opts, stats))
}

func renderStatsTable(opts RenderOptions, stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Camera", "Pixels", "SPP", "Bounces", "Tiles", "Workers", "Mean lum.", "Std-dev lum."})
	table.Append([]string{
		opts.Scene,
		opts.Camera,
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxBounces),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.2f", stats.MeanLuminance),
		fmt.Sprintf("%.2f", stats.StdDevLuminance),
	})
	table.SetFooter([]string{"", "", "", "", "", "", "", "TOTAL", fmt.Sprintf("%s", stats.Duration)})

	table.Render()
	return buf.String()
}
