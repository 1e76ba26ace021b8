package geometry

import (
	"github.com/df07/go-cubotracer/pkg/core"
)

// Geometry is the closed set of shapes that can be placed in a world:
// *Sphere, *Plane, *Triangle and *Mesh.
//
// Shapes are defined in an object-local frame. Every query takes the
// object's world position, which is applied as a pure translation.
type Geometry interface {
	// Intersect returns the nearest hit point of ray further than tolerance
	Intersect(position core.Vec3, ray core.Ray, tolerance float64) (core.Vec3, bool)
	// Normal returns the unit surface normal at a point on the surface
	Normal(position, point core.Vec3) core.Vec3

	sealed()
}

// parallelEpsilon bounds |normal·direction| below which a ray is treated as
// parallel to a flat surface
const parallelEpsilon = 1e-12
