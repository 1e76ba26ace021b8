package core

import (
	"errors"
	"fmt"
)

// ErrNegativeDistance is returned when a ray is queried behind its origin
var ErrNegativeDistance = errors.New("core: ray queried at negative distance")

// Ray represents a half-line with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is always renormalized.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) (Vec3, error) {
	if t < 0 {
		return Vec3{}, fmt.Errorf("%w: t = %g", ErrNegativeDistance, t)
	}
	return r.Origin.Add(r.Direction.Multiply(t)), nil
}
