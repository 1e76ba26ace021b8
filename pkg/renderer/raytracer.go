package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-cubotracer/pkg/core"
)

// hitTolerance is the minimum distance along a ray for a hit to count.
// It keeps bounced rays from re-hitting the surface they left.
const hitTolerance = 0.001

// Hit describes the nearest intersection of a ray with the world
type Hit struct {
	Name     string    // Name of the object that was hit
	Point    core.Vec3 // World-space hit point
	Distance float64   // Distance from the ray origin to Point
}

// Intersect finds the nearest object along the ray. Objects are visited in
// name order and only a strictly closer hit replaces the current one, so
// equidistant hits resolve to the lexicographically smallest name.
func (w *World) Intersect(ray core.Ray) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, name := range w.names {
		obj := w.objects[name]
		point, ok := obj.Geometry.Intersect(obj.Position, ray, hitTolerance)
		if !ok {
			continue
		}
		if d := point.Distance(ray.Origin); d < best.Distance {
			best = Hit{Name: name, Point: point, Distance: d}
			found = true
		}
	}

	return best, found
}

// RayColor computes the color seen along ray at the given recursion depth.
// Rays that exhaust the bounce budget or escape the scene take the background
// color; otherwise the surface color is blended with the bounced ray's color
// weighted by the material's reflectance.
func (w *World) RayColor(ray core.Ray, depth, maxBounces int, sampler core.Sampler) core.Color {
	if depth >= maxBounces {
		return w.background(ray)
	}

	hit, ok := w.Intersect(ray)
	if !ok {
		return w.background(ray)
	}

	obj := w.objects[hit.Name]
	reflectance := obj.Material.Reflectance()
	if reflectance == 0 {
		return obj.Material.Color()
	}

	bounce := obj.Material.Bounce(ray, obj.Geometry, obj.Position, hit.Point, sampler)
	incoming := w.RayColor(bounce, depth+1, maxBounces, sampler)
	return obj.Material.Color().Blend(incoming, reflectance)
}

// InspectResult describes what the center of a pixel sees
type InspectResult struct {
	Hit      bool
	Object   string
	Point    core.Vec3
	Distance float64
	Normal   core.Vec3
}

// Inspect casts the unjittered center ray of pixel (x, y) from the named camera
func (w *World) Inspect(cameraName string, x, y int) (InspectResult, error) {
	placed, ok := w.cameras[cameraName]
	if !ok {
		return InspectResult{}, cameraNotFound(cameraName)
	}
	cam := placed.camera
	if x < 0 || y < 0 || x >= cam.ImageWidth() || y >= cam.ImageHeight() {
		return InspectResult{}, fmt.Errorf("%w: (%d, %d)", core.ErrPixelOutOfRange, x, y)
	}

	hit, found := w.Intersect(cam.CenterRay(placed.position, x, y))
	if !found {
		return InspectResult{}, nil
	}

	obj := w.objects[hit.Name]
	return InspectResult{
		Hit:      true,
		Object:   hit.Name,
		Point:    hit.Point,
		Distance: hit.Distance,
		Normal:   obj.Geometry.Normal(obj.Position, hit.Point),
	}, nil
}
