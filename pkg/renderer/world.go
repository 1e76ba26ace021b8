package renderer

import (
	"fmt"
	"slices"
	"sort"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
	"github.com/df07/go-cubotracer/pkg/log"
	"github.com/df07/go-cubotracer/pkg/material"
)

var logger = log.New("renderer")

// Background maps a ray that escaped the scene to a color
type Background func(ray core.Ray) core.Color

// SolidBackground returns the same color for every ray
func SolidBackground(c core.Color) Background {
	return func(core.Ray) core.Color { return c }
}

// GradientBackground blends from bottom to top using the ray's vertical direction
func GradientBackground(top, bottom core.Color) Background {
	return func(ray core.Ray) core.Color {
		t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
		return bottom.Blend(top, t)
	}
}

// Object is a named geometry with a material placed in the world
type Object struct {
	Position core.Vec3
	Geometry geometry.Geometry
	Material material.Material
}

type placedCamera struct {
	position core.Vec3
	camera   *Camera
}

// World is a registry of named cameras and objects plus a background.
// Mutations must not run concurrently with a render.
type World struct {
	cameras    map[string]*placedCamera
	objects    map[string]*Object
	names      []string // object names kept sorted for deterministic tie-breaking
	background Background
}

// NewWorld creates an empty world. A nil background renders black.
func NewWorld(background Background) *World {
	if background == nil {
		background = SolidBackground(core.Color{})
	}
	return &World{
		cameras:    make(map[string]*placedCamera),
		objects:    make(map[string]*Object),
		background: background,
	}
}

// Background returns the color of a ray that hits nothing
func (w *World) Background(ray core.Ray) core.Color {
	return w.background(ray)
}

// AddCamera registers a camera at position under name
func (w *World) AddCamera(name string, camera *Camera, position core.Vec3) error {
	if camera == nil {
		return fmt.Errorf("%w: camera %q is nil", ErrInvalidCamera, name)
	}
	if _, exists := w.cameras[name]; exists {
		return fmt.Errorf("%w: camera %q", ErrDuplicateName, name)
	}
	w.cameras[name] = &placedCamera{position: position, camera: camera}
	logger.Debugf("added camera %q at %v", name, position)
	return nil
}

// AddObject registers a geometry with its material at position under name
func (w *World) AddObject(name string, geom geometry.Geometry, mat material.Material, position core.Vec3) error {
	if geom == nil || mat == nil {
		return fmt.Errorf("%w: object %q needs a geometry and a material", ErrInvalidObject, name)
	}
	if _, exists := w.objects[name]; exists {
		return fmt.Errorf("%w: object %q", ErrDuplicateName, name)
	}
	w.objects[name] = &Object{Position: position, Geometry: geom, Material: mat}
	i, _ := slices.BinarySearch(w.names, name)
	w.names = slices.Insert(w.names, i, name)
	logger.Debugf("added object %q at %v", name, position)
	return nil
}

// RemoveObject unregisters an object
func (w *World) RemoveObject(name string) error {
	if _, exists := w.objects[name]; !exists {
		return objectNotFound(name)
	}
	delete(w.objects, name)
	if i, found := slices.BinarySearch(w.names, name); found {
		w.names = slices.Delete(w.names, i, i+1)
	}
	return nil
}

// Camera returns the camera registered under name
func (w *World) Camera(name string) (*Camera, error) {
	placed, ok := w.cameras[name]
	if !ok {
		return nil, cameraNotFound(name)
	}
	return placed.camera, nil
}

// CameraPosition returns where the named camera stands
func (w *World) CameraPosition(name string) (core.Vec3, error) {
	placed, ok := w.cameras[name]
	if !ok {
		return core.Vec3{}, cameraNotFound(name)
	}
	return placed.position, nil
}

// MoveCameraTo relocates the named camera without changing its orientation
func (w *World) MoveCameraTo(name string, position core.Vec3) error {
	placed, ok := w.cameras[name]
	if !ok {
		return cameraNotFound(name)
	}
	placed.position = position
	return nil
}

// LookAtFor orients the named camera toward target from its current position
func (w *World) LookAtFor(name string, target core.Vec3) error {
	placed, ok := w.cameras[name]
	if !ok {
		return cameraNotFound(name)
	}
	if err := placed.camera.LookAt(target, placed.position); err != nil {
		return fmt.Errorf("camera %q: %w", name, err)
	}
	return nil
}

// Object returns a copy of the named object
func (w *World) Object(name string) (Object, error) {
	obj, ok := w.objects[name]
	if !ok {
		return Object{}, objectNotFound(name)
	}
	return *obj, nil
}

// MoveObjectTo relocates the named object
func (w *World) MoveObjectTo(name string, position core.Vec3) error {
	obj, ok := w.objects[name]
	if !ok {
		return objectNotFound(name)
	}
	obj.Position = position
	return nil
}

// CameraNames returns the registered camera names in sorted order
func (w *World) CameraNames() []string {
	names := make([]string, 0, len(w.cameras))
	for name := range w.cameras {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ObjectNames returns the registered object names in sorted order
func (w *World) ObjectNames() []string {
	return slices.Clone(w.names)
}
