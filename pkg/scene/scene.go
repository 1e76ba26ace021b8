package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/log"
	"github.com/df07/go-cubotracer/pkg/renderer"
)

var logger = log.New("scene")

// DefaultCamera is the camera name every built-in scene registers
const DefaultCamera = "main"

// DefaultScenesDir is where OBJ scenes are discovered when no directory is given
const DefaultScenesDir = "scenes"

// ErrUnknownScene is returned by Build for ids that match no scene
var ErrUnknownScene = errors.New("scene: unknown scene")

// Options tweaks how a scene is built
type Options struct {
	Width     int    // Image width in pixels, 0 = scene default
	MeshPath  string // OBJ file for the mesh scene, empty = built-in icosahedron
	ScenesDir string // Directory searched for obj:<name> scenes
}

func (o Options) widthOr(def int) int {
	if o.Width > 0 {
		return o.Width
	}
	return def
}

// Builder creates a populated world
type Builder func(opts Options) (*renderer.World, error)

var builtins = map[string]Builder{
	"spheres":     NewSpheresScene,
	"mesh":        NewMeshScene,
	"sphere-grid": NewSphereGridScene,
}

// Build creates the scene with the given id. Ids of the form obj:<name>
// load <name>.obj from the scenes directory into the mesh scene.
func Build(id string, opts Options) (*renderer.World, error) {
	if name, ok := strings.CutPrefix(id, "obj:"); ok {
		dir := opts.ScenesDir
		if dir == "" {
			dir = DefaultScenesDir
		}
		opts.MeshPath = filepath.Join(dir, name+".obj")
		return NewMeshScene(opts)
	}

	builder, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return builder(opts)
}

// skyBackground fades from white at the horizon to pale blue overhead
func skyBackground() renderer.Background {
	return renderer.GradientBackground(core.NewColor(127, 178, 255), core.NewColor(255, 255, 255))
}
