package geometry

import (
	"math"

	"github.com/df07/go-cubotracer/pkg/core"
)

// Sphere represents a sphere centered on its object position
type Sphere struct {
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(radius float64) *Sphere {
	return &Sphere{Radius: radius}
}

// Intersect solves the ray-sphere quadratic and keeps the smaller root
func (s *Sphere) Intersect(position core.Vec3, ray core.Ray, tolerance float64) (core.Vec3, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(position)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.Vec3{}, false
	}

	// Only the nearer root is considered; rays starting inside the sphere miss
	root := (-b - math.Sqrt(discriminant)) / (2 * a)
	if root <= tolerance {
		return core.Vec3{}, false
	}

	point, err := ray.At(root)
	if err != nil {
		return core.Vec3{}, false
	}
	return point, true
}

// Normal points from the center to the surface point
func (s *Sphere) Normal(position, point core.Vec3) core.Vec3 {
	return point.Subtract(position).Normalize()
}

func (s *Sphere) sealed() {}
