package scene

import (
	"fmt"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
	"github.com/df07/go-cubotracer/pkg/material"
	"github.com/df07/go-cubotracer/pkg/renderer"
)

// object is a named geometry/material pair waiting to be placed
type object struct {
	name     string
	geometry geometry.Geometry
	material material.Material
	position core.Vec3
}

func addObjects(world *renderer.World, objects []object) error {
	for _, obj := range objects {
		if err := world.AddObject(obj.name, obj.geometry, obj.material, obj.position); err != nil {
			return err
		}
	}
	return nil
}

// wideCamera is the 16:9 pinhole camera used by the built-in scenes
func wideCamera(width int) (*renderer.Camera, error) {
	return renderer.NewCamera(renderer.CameraConfig{
		Up:            core.NewVec3(0, 1, 0),
		Right:         core.NewVec3(1, 0, 0),
		Width:         width,
		AspectRatio:   16.0 / 9.0,
		VFov:          50,
		FocalDistance: 3.4,
	})
}

// NewSpheresScene creates an opaque, a diffuse and a specular sphere above a diffuse ground
func NewSpheresScene(opts Options) (*renderer.World, error) {
	world := renderer.NewWorld(skyBackground())

	camera, err := wideCamera(opts.widthOr(400))
	if err != nil {
		return nil, err
	}
	if err := world.AddCamera(DefaultCamera, camera, core.NewVec3(0, 0.1, -0.5)); err != nil {
		return nil, err
	}

	diffuseRed, err := material.NewDiffuse(core.NewColor(179, 77, 77), 0.5)
	if err != nil {
		return nil, fmt.Errorf("spheres scene: %w", err)
	}
	mirror, err := material.NewSpecular(core.NewColor(204, 204, 204), 0.5)
	if err != nil {
		return nil, fmt.Errorf("spheres scene: %w", err)
	}
	groundGray, err := material.NewDiffuse(core.NewColor(128, 128, 128), 0.3)
	if err != nil {
		return nil, fmt.Errorf("spheres scene: %w", err)
	}

	err = addObjects(world, []object{
		{"dsphere", geometry.NewSphere(0.6), diffuseRed, core.NewVec3(0.7, -0.3, -2.9)},
		{"ssphere", geometry.NewSphere(0.5), mirror, core.NewVec3(0, 0.6, -3.0)},
		{"osphere", geometry.NewSphere(0.5), material.NewOpaque(core.NewColor(153, 50, 204)), core.NewVec3(-0.7, -0.3, -3.0)},
		{"ground", geometry.NewGround(), groundGray, core.NewVec3(0, -0.9, 0)},
	})
	if err != nil {
		return nil, err
	}

	return world, nil
}
