package geometry

import (
	"math"

	"github.com/df07/go-cubotracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an ordered collection of triangles sharing one object position.
// Queries scan every triangle; there is no acceleration structure.
type Mesh struct {
	triangles []*Triangle
}

// NewMesh creates a mesh from triangles
func NewMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles: triangles}
}

// Triangles returns the member triangles in load order
func (m *Mesh) Triangles() []*Triangle {
	return m.triangles
}

// Intersect returns the hit nearest to the ray origin among all triangles
func (m *Mesh) Intersect(position core.Vec3, ray core.Ray, tolerance float64) (core.Vec3, bool) {
	var closest core.Vec3
	closestDist := math.Inf(1)
	hitAnything := false

	for _, tri := range m.triangles {
		point, ok := tri.Intersect(position, ray, tolerance)
		if !ok {
			continue
		}
		if dist := point.Distance(ray.Origin); dist < closestDist {
			closest = point
			closestDist = dist
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Normal returns the face normal of the triangle nearest to point
func (m *Mesh) Normal(position, point core.Vec3) core.Vec3 {
	var normal core.Vec3
	closestDist := math.Inf(1)

	for _, tri := range m.triangles {
		if dist := tri.DistanceToPoint(position, point); dist < closestDist {
			closestDist = dist
			normal = tri.normal
		}
	}

	return normal
}

// Bounds returns the object-local axis-aligned bounding box of the mesh
func (m *Mesh) Bounds() r3.Box {
	if len(m.triangles) == 0 {
		return r3.Box{}
	}

	lo := toR3(m.triangles[0].V1)
	hi := lo
	for _, tri := range m.triangles {
		for _, v := range []core.Vec3{tri.V1, tri.V2, tri.V3} {
			lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
			hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
		}
	}
	return r3.Box{Min: lo, Max: hi}
}

// SurfaceArea returns the summed area of all triangles
func (m *Mesh) SurfaceArea() float64 {
	var area float64
	for _, tri := range m.triangles {
		area += r3.Triangle{toR3(tri.V1), toR3(tri.V2), toR3(tri.V3)}.Area()
	}
	return area
}

func toR3(v core.Vec3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func (m *Mesh) sealed() {}
