package geometry

import (
	"math"

	"github.com/df07/go-cubotracer/pkg/core"
)

// Plane represents an infinite plane through its object position
type Plane struct {
	normal core.Vec3 // Unit normal
}

// NewPlane creates a new plane with the given normal
func NewPlane(normal core.Vec3) *Plane {
	return &Plane{normal: normal.Normalize()}
}

// NewGround creates a horizontal plane facing +Y
func NewGround() *Plane {
	return NewPlane(core.NewVec3(0, 1, 0))
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(position core.Vec3, ray core.Ray, tolerance float64) (core.Vec3, bool) {
	denominator := ray.Direction.Dot(p.normal)

	// Parallel rays never reach the plane
	if math.Abs(denominator) < parallelEpsilon {
		return core.Vec3{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := position.Subtract(ray.Origin).Dot(p.normal) / denominator
	if t <= tolerance {
		return core.Vec3{}, false
	}

	point, err := ray.At(t)
	if err != nil {
		return core.Vec3{}, false
	}
	return point, true
}

// Normal returns the constant plane normal
func (p *Plane) Normal(position, point core.Vec3) core.Vec3 {
	return p.normal
}

func (p *Plane) sealed() {}
