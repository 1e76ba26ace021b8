package renderer

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
	"github.com/df07/go-cubotracer/pkg/material"
)

var (
	red  = core.NewColor(255, 0, 0)
	blue = core.NewColor(0, 0, 255)
)

func testSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestWorld_DuplicateNames(t *testing.T) {
	world := NewWorld(SolidBackground(blue))
	cam := newTestCamera(t, defaultCameraConfig())

	if err := world.AddCamera("main", cam, core.Vec3{}); err != nil {
		t.Fatalf("AddCamera failed: %v", err)
	}
	if err := world.AddCamera("main", cam, core.Vec3{}); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName for camera, got %v", err)
	}

	sphere := geometry.NewSphere(1)
	opaque := material.NewOpaque(red)
	if err := world.AddObject("ball", sphere, opaque, core.Vec3{}); err != nil {
		t.Fatalf("AddObject failed: %v", err)
	}
	if err := world.AddObject("ball", sphere, opaque, core.Vec3{}); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName for object, got %v", err)
	}
	if err := world.AddObject("empty", nil, opaque, core.Vec3{}); !errors.Is(err, ErrInvalidObject) {
		t.Errorf("expected ErrInvalidObject, got %v", err)
	}
}

func TestWorld_NotFound(t *testing.T) {
	world := NewWorld(nil)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"move camera", world.MoveCameraTo("ghost", core.Vec3{}), ErrCameraNotFound},
		{"look at", world.LookAtFor("ghost", core.Vec3{}), ErrCameraNotFound},
		{"move object", world.MoveObjectTo("ghost", core.Vec3{}), ErrObjectNotFound},
		{"remove object", world.RemoveObject("ghost"), ErrObjectNotFound},
	}
	_, renderErr := world.Render("ghost", 1, 1)
	tests = append(tests, struct {
		name string
		err  error
		want error
	}{"render", renderErr, ErrCameraNotFound})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, tt.err)
			}
			var notFound *NotFoundError
			if !errors.As(tt.err, &notFound) || notFound.Name != "ghost" {
				t.Errorf("expected NotFoundError naming ghost, got %v", tt.err)
			}
		})
	}
}

func TestWorld_RegistryOperations(t *testing.T) {
	world := NewWorld(nil)
	opaque := material.NewOpaque(red)
	for _, name := range []string{"c", "a", "b"} {
		if err := world.AddObject(name, geometry.NewSphere(1), opaque, core.Vec3{}); err != nil {
			t.Fatalf("AddObject %s failed: %v", name, err)
		}
	}

	if got := world.ObjectNames(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("expected sorted names, got %v", got)
	}

	if err := world.MoveObjectTo("b", core.NewVec3(1, 2, 3)); err != nil {
		t.Fatalf("MoveObjectTo failed: %v", err)
	}
	obj, err := world.Object("b")
	if err != nil || obj.Position != core.NewVec3(1, 2, 3) {
		t.Errorf("expected b at (1,2,3), got %v (%v)", obj.Position, err)
	}

	if err := world.RemoveObject("a"); err != nil {
		t.Fatalf("RemoveObject failed: %v", err)
	}
	if got := world.ObjectNames(); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("expected [b c] after removal, got %v", got)
	}

	cam := newTestCamera(t, defaultCameraConfig())
	if err := world.AddCamera("top", cam, core.Vec3{}); err != nil {
		t.Fatal(err)
	}
	if err := world.MoveCameraTo("top", core.NewVec3(0, 5, 0)); err != nil {
		t.Fatal(err)
	}
	if err := world.LookAtFor("top", core.NewVec3(0, 5, -10)); err != nil {
		t.Fatal(err)
	}
	pos, err := world.CameraPosition("top")
	if err != nil || pos != core.NewVec3(0, 5, 0) {
		t.Errorf("expected camera at (0,5,0), got %v (%v)", pos, err)
	}
	if got := world.CameraNames(); !slices.Equal(got, []string{"top"}) {
		t.Errorf("unexpected camera names %v", got)
	}
}

func TestWorld_IntersectTieBreaksByName(t *testing.T) {
	world := NewWorld(nil)
	center := core.NewVec3(0, 0, -5)
	if err := world.AddObject("zeta", geometry.NewSphere(1), material.NewOpaque(blue), center); err != nil {
		t.Fatal(err)
	}
	if err := world.AddObject("alpha", geometry.NewSphere(1), material.NewOpaque(red), center); err != nil {
		t.Fatal(err)
	}

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	for i := 0; i < 10; i++ {
		hit, ok := world.Intersect(ray)
		if !ok || hit.Name != "alpha" {
			t.Fatalf("expected alpha to win the tie, got %q (%v)", hit.Name, ok)
		}
	}
	if got := world.RayColor(ray, 0, 1, testSampler(1)); got != red {
		t.Errorf("expected red, got %v", got)
	}
}

func TestWorld_IntersectNearest(t *testing.T) {
	world := NewWorld(nil)
	world.AddObject("far", geometry.NewSphere(1), material.NewOpaque(blue), core.NewVec3(0, 0, -10))
	world.AddObject("near", geometry.NewSphere(1), material.NewOpaque(red), core.NewVec3(0, 0, -4))

	hit, ok := world.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !ok || hit.Name != "near" {
		t.Fatalf("expected near, got %q", hit.Name)
	}
	if hit.Distance < 3-1e-9 || hit.Distance > 3+1e-9 {
		t.Errorf("expected distance 3, got %g", hit.Distance)
	}
}

func TestWorld_RayColor(t *testing.T) {
	sky := core.NewColor(0, 0, 100)
	world := NewWorld(SolidBackground(sky))
	mirror, err := material.NewSpecular(core.NewColor(200, 0, 0), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	world.AddObject("floor", geometry.NewGround(), mirror, core.Vec3{})

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0))

	tests := []struct {
		name       string
		maxBounces int
		want       core.Color
	}{
		{"no bounces returns background", 0, sky},
		{"one bounce is cut off at background", 1, core.NewColor(100, 0, 50)},
		{"reflection escapes to sky", 4, core.NewColor(100, 0, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := world.RayColor(ray, 0, tt.maxBounces, testSampler(1)); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWorld_RayColorOpaqueIgnoresBackground(t *testing.T) {
	world := NewWorld(SolidBackground(blue))
	world.AddObject("ball", geometry.NewSphere(1), material.NewOpaque(red), core.NewVec3(0, 0, -3))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	if got := world.RayColor(ray, 0, 5, testSampler(1)); got != red {
		t.Errorf("expected red, got %v", got)
	}
	miss := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	if got := world.RayColor(miss, 0, 5, testSampler(1)); got != blue {
		t.Errorf("expected background, got %v", got)
	}
}

func TestGradientBackground(t *testing.T) {
	bg := GradientBackground(core.NewColor(255, 255, 255), core.NewColor(0, 0, 0))
	if got := bg(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))); got != core.NewColor(255, 255, 255) {
		t.Errorf("straight up should be the top color, got %v", got)
	}
	if got := bg(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0))); got != core.NewColor(0, 0, 0) {
		t.Errorf("straight down should be the bottom color, got %v", got)
	}
}

func TestWorld_Inspect(t *testing.T) {
	world := NewWorld(nil)
	config := defaultCameraConfig()
	config.Width = 5
	config.AspectRatio = 1
	config.VFov = 30
	world.AddCamera("main", newTestCamera(t, config), core.Vec3{})
	world.AddObject("ball", geometry.NewSphere(1), material.NewOpaque(red), core.NewVec3(0, 0, -5))

	result, err := world.Inspect("main", 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Hit || result.Object != "ball" {
		t.Fatalf("expected center pixel to hit ball, got %+v", result)
	}
	if result.Distance < 4-1e-9 || result.Distance > 4+1e-9 {
		t.Errorf("expected distance 4, got %g", result.Distance)
	}
	if !result.Normal.ApproxEqual(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("expected normal facing camera, got %v", result.Normal)
	}

	corner, err := world.Inspect("main", 0, 0)
	if err != nil || corner.Hit {
		t.Errorf("expected corner miss, got %+v (%v)", corner, err)
	}

	if _, err := world.Inspect("main", 5, 0); !errors.Is(err, core.ErrPixelOutOfRange) {
		t.Errorf("expected ErrPixelOutOfRange, got %v", err)
	}
}
