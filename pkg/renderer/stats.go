package renderer

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-cubotracer/pkg/core"
)

// truncationSlack absorbs floating point drift in the running mean before
// it is truncated to an integer channel
const truncationSlack = 1e-9

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples requested per pixel
	MaxBounces      int           // Bounce budget per primary ray
	Tiles           int           // Number of tiles rendered
	Workers         int           // Number of workers used
	Duration        time.Duration // Wall-clock render time
	MeanLuminance   float64       // Mean luminance over the final image
	StdDevLuminance float64       // Standard deviation of luminance over the final image
}

// PixelStats keeps a running mean of the color samples for a single pixel
type PixelStats struct {
	Mean        core.Vec3 // Running mean in 0..255 channel space
	SampleCount int       // Number of samples taken
}

// AddSample folds a new sample into the running mean: (c + mean·n) / (n+1).
// The result does not depend on the order samples arrive in.
func (ps *PixelStats) AddSample(c core.Color) {
	n := float64(ps.SampleCount)
	ps.Mean = c.Vec().Add(ps.Mean.Multiply(n)).Multiply(1.0 / (n + 1))
	ps.SampleCount++
}

// GetColor returns the current mean color
func (ps *PixelStats) GetColor() core.Vec3 {
	return ps.Mean
}

// Pixel truncates the running mean into an 8-bit range pixel
func (ps *PixelStats) Pixel() core.Pixel {
	return core.Pixel{
		R: truncateChannel(ps.Mean.X),
		G: truncateChannel(ps.Mean.Y),
		B: truncateChannel(ps.Mean.Z),
	}
}

func truncateChannel(v float64) uint16 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return uint16(math.Floor(min(v+truncationSlack, 255)))
}

// luminanceStats computes mean and standard deviation of luminance across all pixels
func luminanceStats(pixelStats [][]PixelStats) (mean, stdDev float64) {
	var values []float64
	for y := range pixelStats {
		for x := range pixelStats[y] {
			values = append(values, pixelStats[y][x].Mean.Luminance())
		}
	}
	if len(values) < 2 {
		if len(values) == 1 {
			return values[0], 0
		}
		return 0, 0
	}
	return stat.MeanStdDev(values, nil)
}
