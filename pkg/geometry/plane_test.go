package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-cubotracer/pkg/core"
)

func TestPlane_Intersect_BasicIntersection(t *testing.T) {
	plane := NewGround()

	// Ray shooting down from above
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	point, ok := plane.Intersect(core.NewVec3(0, 0, 0), ray, 0.001)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	expectedPoint := core.NewVec3(0, 0, 0)
	if !point.ApproxEqual(expectedPoint, 1e-9) {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, point)
	}
}

func TestPlane_Intersect_UsesPosition(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 2)) // unnormalized on purpose

	ray := core.NewRay(core.NewVec3(1, 1, 0), core.NewVec3(0, 0, -1))
	point, ok := plane.Intersect(core.NewVec3(0, 0, -3), ray, 0.001)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(point.Z+3) > 1e-9 {
		t.Errorf("Expected hit on z=-3, got %v", point)
	}
	if n := plane.Normal(core.Vec3{}, point); !n.ApproxEqual(core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected unit normal (0,0,1), got %v", n)
	}
}

func TestPlane_Intersect_ParallelRay(t *testing.T) {
	plane := NewGround()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))

	if point, ok := plane.Intersect(core.NewVec3(0, 0, 0), ray, 0.001); ok {
		t.Errorf("Expected miss for parallel ray, but got hit at %v", point)
	}
}

func TestPlane_Intersect_BehindRay(t *testing.T) {
	plane := NewGround()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))

	if point, ok := plane.Intersect(core.NewVec3(0, 0, 0), ray, 0.001); ok {
		t.Errorf("Expected miss for plane behind the ray, got %v", point)
	}
}
