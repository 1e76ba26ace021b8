package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-cubotracer/pkg/core"
)

// SamplingConfig contains rendering sampling parameters
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays averaged per pixel
	MaxBounces      int   // Maximum recursion depth per primary ray
	TileSize        int   // Side length of a render tile in pixels
	NumWorkers      int   // Parallel workers, 0 = one per CPU
	Seed            int64 // Base seed for the per-tile random streams
}

// DefaultSamplingConfig returns the settings used by the command line tools
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 16,
		MaxBounces:      8,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate checks the config for values that cannot produce an image
func (c SamplingConfig) Validate() error {
	switch {
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidRenderConfig, c.SamplesPerPixel)
	case c.MaxBounces < 0:
		return fmt.Errorf("%w: max bounces %d", ErrInvalidRenderConfig, c.MaxBounces)
	case c.TileSize < 1:
		return fmt.Errorf("%w: tile size %d", ErrInvalidRenderConfig, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidRenderConfig, c.NumWorkers)
	}
	return nil
}

// Render produces an image from the named camera with default tiling
func (w *World) Render(cameraName string, maxBounces, samplesPerPixel int) (*core.Image, error) {
	config := DefaultSamplingConfig()
	config.MaxBounces = maxBounces
	config.SamplesPerPixel = samplesPerPixel

	img, _, err := w.RenderWithConfig(cameraName, config)
	return img, err
}

// RenderWithConfig renders the named camera's view. Every pixel receives
// SamplesPerPixel jittered rays whose colors are averaged into an image with
// maxval 255.
func (w *World) RenderWithConfig(cameraName string, config SamplingConfig) (*core.Image, RenderStats, error) {
	placed, ok := w.cameras[cameraName]
	if !ok {
		return nil, RenderStats{}, cameraNotFound(cameraName)
	}
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	cam := placed.camera
	width, height := cam.ImageWidth(), cam.ImageHeight()
	start := time.Now()

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, config.TileSize, config.Seed)
	tileRenderer := NewTileRenderer(w, cam, placed.position, config.SamplesPerPixel, config.MaxBounces)
	pool := NewWorkerPool(tileRenderer, config.NumWorkers, len(tiles))

	logger.Infof("rendering %q: %dx%d, %d spp, %d bounces, %d tiles on %d workers",
		cameraName, width, height, config.SamplesPerPixel, config.MaxBounces, len(tiles), pool.GetNumWorkers())

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, PixelStats: pixelStats})
	}
	pool.Wait()

	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: config.SamplesPerPixel,
		MaxBounces:      config.MaxBounces,
		Tiles:           len(tiles),
		Workers:         pool.GetNumWorkers(),
	}

	var errs []error
	for result := range pool.Results() {
		stats.TotalSamples += result.Samples
		if result.Error != nil {
			errs = append(errs, result.Error)
		}
	}
	if len(errs) > 0 {
		return nil, RenderStats{}, errors.Join(errs...)
	}

	img, err := core.NewImage(width, height, 255)
	if err != nil {
		return nil, RenderStats{}, err
	}
	for y := range pixelStats {
		for x := range pixelStats[y] {
			if err := img.Set(x, y, pixelStats[y][x].Pixel()); err != nil {
				return nil, RenderStats{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
			}
		}
	}

	stats.MeanLuminance, stats.StdDevLuminance = luminanceStats(pixelStats)
	stats.Duration = time.Since(start)
	logger.Noticef("rendered %q in %v (%d samples)", cameraName, stats.Duration, stats.TotalSamples)

	return img, stats, nil
}
