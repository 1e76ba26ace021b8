package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
	"github.com/df07/go-cubotracer/pkg/material"
	"github.com/df07/go-cubotracer/pkg/renderer"
)

// oklch converts an OKLCH color (lightness 0-1, chroma, hue in degrees)
// to an 8-bit sRGB-range color, clamping out-of-gamut channels
func oklch(lightness, chroma, hue float64) core.Color {
	sin, cos := math.Sincos(hue * math.Pi / 180)
	a, b := chroma*cos, chroma*sin

	cube := func(v float64) float64 { return v * v * v }
	l := cube(lightness + 0.3963377774*a + 0.2158037573*b)
	m := cube(lightness - 0.1055613458*a - 0.0638541728*b)
	s := cube(lightness - 0.0894841775*a - 1.2914855480*b)

	linear := core.NewVec3(
		4.0767416621*l-3.3077115913*m+0.2309699292*s,
		-1.2684380046*l+2.6097574011*m-0.3413193965*s,
		-0.0041960863*l-0.7034186147*m+1.7076147010*s,
	)
	return core.ColorFromVec(linear.Multiply(255))
}

// NewSphereGridScene creates a grid of specular spheres whose hue varies
// across X and saturation across Z, viewed from above and behind
func NewSphereGridScene(opts Options) (*renderer.World, error) {
	world := renderer.NewWorld(skyBackground())

	camera, err := renderer.NewCamera(renderer.CameraConfig{
		Up:            core.NewVec3(0, 1, 0),
		Right:         core.NewVec3(1, 0, 0),
		Width:         opts.widthOr(400),
		AspectRatio:   16.0 / 9.0,
		VFov:          40,
		FocalDistance: 14,
	})
	if err != nil {
		return nil, err
	}
	if err := world.AddCamera(DefaultCamera, camera, core.NewVec3(4.5, 6, 18)); err != nil {
		return nil, err
	}
	if err := world.LookAtFor(DefaultCamera, core.NewVec3(4.5, 0.8, 4.5)); err != nil {
		return nil, err
	}

	groundGray, err := material.NewDiffuse(core.NewColor(128, 128, 128), 0.5)
	if err != nil {
		return nil, fmt.Errorf("sphere grid: %w", err)
	}
	objects := []object{{"ground", geometry.NewGround(), groundGray, core.Vec3{}}}

	const (
		gridSize  = 6
		gridSpan  = 9.0
		lightness = 0.65
		minChroma = 0.05
		maxChroma = 0.25
	)
	spacing := gridSpan / (gridSize - 1)
	radius := math.Min(0.35, spacing*0.35)

	for i := range gridSize {
		for j := range gridSize {
			u, v := float64(i)/(gridSize-1), float64(j)/(gridSize-1)
			mirror, err := material.NewSpecular(oklch(lightness, minChroma+v*(maxChroma-minChroma), u*360), 0.3)
			if err != nil {
				return nil, fmt.Errorf("sphere grid: %w", err)
			}
			objects = append(objects, object{
				name:     fmt.Sprintf("sphere-%d-%d", i, j),
				geometry: geometry.NewSphere(radius),
				material: mirror,
				position: core.NewVec3(float64(i)*spacing, radius, float64(j)*spacing),
			})
		}
	}

	if err := addObjects(world, objects); err != nil {
		return nil, err
	}
	return world, nil
}
