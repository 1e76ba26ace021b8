package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-cubotracer/pkg/core"
)

// newTwoLayerMesh returns two parallel unit triangles at z=0 and z=-1
func newTwoLayerMesh() *Mesh {
	return NewMesh([]*Triangle{
		NewTriangle(core.NewVec3(0, 0, -1), core.NewVec3(1, 0, -1), core.NewVec3(0, 1, -1)),
		NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)),
	})
}

func TestMesh_Intersect_Nearest(t *testing.T) {
	mesh := newTwoLayerMesh()

	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		expected core.Vec3
	}{
		{"from front", core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, -1), core.NewVec3(0.2, 0.2, 0)},
		{"from back", core.NewVec3(0.2, 0.2, -3), core.NewVec3(0, 0, 1), core.NewVec3(0.2, 0.2, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, ok := mesh.Intersect(core.NewVec3(0, 0, 0), core.NewRay(tt.origin, tt.dir), 0.001)
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}
			if !point.ApproxEqual(tt.expected, 1e-9) {
				t.Errorf("Expected nearest hit %v, got %v", tt.expected, point)
			}
		})
	}
}

func TestMesh_Intersect_Empty(t *testing.T) {
	mesh := NewMesh(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	if _, ok := mesh.Intersect(core.NewVec3(0, 0, 0), ray, 0.001); ok {
		t.Error("Expected empty mesh to never be hit")
	}
}

func TestMesh_Normal_NearestTriangle(t *testing.T) {
	mesh := newTwoLayerMesh()
	position := core.NewVec3(5, 0, 0)

	front := mesh.Normal(position, core.NewVec3(5.2, 0.2, 0))
	if !front.ApproxEqual(core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected front triangle normal (0,0,-1), got %v", front)
	}

	back := mesh.Normal(position, core.NewVec3(5.2, 0.2, -0.9))
	if !back.ApproxEqual(core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected back triangle normal (0,0,1), got %v", back)
	}
}

func TestMesh_BoundsAndArea(t *testing.T) {
	mesh := newTwoLayerMesh()

	bounds := mesh.Bounds()
	if bounds.Min.Z != -1 || bounds.Max.X != 1 || bounds.Max.Y != 1 || bounds.Max.Z != 0 {
		t.Errorf("Unexpected bounds %+v", bounds)
	}

	if area := mesh.SurfaceArea(); math.Abs(area-1.0) > 1e-12 {
		t.Errorf("Expected total area 1.0, got %f", area)
	}
}
