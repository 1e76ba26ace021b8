package geometry

import (
	"math"

	"github.com/df07/go-cubotracer/pkg/core"
)

// Triangle is defined by three object-local vertices in counter-clockwise order
type Triangle struct {
	V1, V2, V3 core.Vec3
	normal     core.Vec3 // Cached face normal
}

// NewTriangle creates a new triangle and precomputes its face normal
func NewTriangle(v1, v2, v3 core.Vec3) *Triangle {
	return &Triangle{
		V1:     v1,
		V2:     v2,
		V3:     v3,
		normal: v1.Subtract(v2).Cross(v2.Subtract(v3)).Normalize(),
	}
}

// Intersect intersects the ray with the triangle's plane, then applies the edge-sign test
func (t *Triangle) Intersect(position core.Vec3, ray core.Ray, tolerance float64) (core.Vec3, bool) {
	denominator := t.normal.Dot(ray.Direction)
	if math.Abs(denominator) < parallelEpsilon {
		return core.Vec3{}, false
	}

	p1 := position.Add(t.V1)
	dist := p1.Subtract(ray.Origin).Dot(t.normal) / denominator
	if dist <= tolerance {
		return core.Vec3{}, false
	}

	point, err := ray.At(dist)
	if err != nil {
		return core.Vec3{}, false
	}
	if !t.contains(position, point) {
		return core.Vec3{}, false
	}
	return point, true
}

// Normal returns the face normal
func (t *Triangle) Normal(position, point core.Vec3) core.Vec3 {
	return t.normal
}

// FaceNormal returns the precomputed unit face normal
func (t *Triangle) FaceNormal() core.Vec3 {
	return t.normal
}

// contains reports whether a point in the triangle's plane lies strictly
// on the inner side of all three edges
func (t *Triangle) contains(position, point core.Vec3) bool {
	p1 := position.Add(t.V1)
	p2 := position.Add(t.V2)
	p3 := position.Add(t.V3)

	return t.normal.Dot(p2.Subtract(p1).Cross(point.Subtract(p1))) > 0 &&
		t.normal.Dot(p3.Subtract(p2).Cross(point.Subtract(p2))) > 0 &&
		t.normal.Dot(p1.Subtract(p3).Cross(point.Subtract(p3))) > 0
}

// DistanceToPoint returns the distance from point to the triangle placed at position.
// If the point projects inside the triangle this is the perpendicular distance,
// otherwise the distance to the nearest edge segment.
func (t *Triangle) DistanceToPoint(position, point core.Vec3) float64 {
	p1 := position.Add(t.V1)
	p2 := position.Add(t.V2)
	p3 := position.Add(t.V3)

	toPlane := point.Subtract(p1).Dot(t.normal)
	projected := point.Subtract(t.normal.Multiply(toPlane))
	if t.contains(position, projected) {
		return math.Abs(toPlane)
	}

	return min(
		pointSegmentDistance(point, p1, p2),
		pointSegmentDistance(point, p2, p3),
		pointSegmentDistance(point, p3, p1),
	)
}

// pointSegmentDistance returns the distance from p to the segment ab
func pointSegmentDistance(p, a, b core.Vec3) float64 {
	ab := b.Subtract(a)
	if ab.Dot(p.Subtract(a)) <= 0 {
		return p.Distance(a)
	}
	if p.Subtract(b).Dot(ab) >= 0 {
		return p.Distance(b)
	}
	return ab.Cross(p.Subtract(a)).Length() / ab.Length()
}

func (t *Triangle) sealed() {}
