package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
)

// ErrInvalidReflectance is wrapped by every InvalidReflectanceError
var ErrInvalidReflectance = errors.New("material: reflectance must lie strictly between 0 and 1")

// InvalidReflectanceError reports the rejected reflectance value
type InvalidReflectanceError struct {
	Value float64
}

func (e *InvalidReflectanceError) Error() string {
	return fmt.Sprintf("%s: got %g", ErrInvalidReflectance, e.Value)
}

func (e *InvalidReflectanceError) Unwrap() error {
	return ErrInvalidReflectance
}

// Material is the closed set of surface materials: *Opaque, *Diffuse and *Specular
type Material interface {
	// Color is the material's own contribution
	Color() core.Color
	// Reflectance is the weight given to light arriving along the bounced ray
	Reflectance() float64
	// Bounce produces the next ray after hitting geom (placed at position) at hit
	Bounce(ray core.Ray, geom geometry.Geometry, position, hit core.Vec3, sampler core.Sampler) core.Ray

	sealed()
}

func validateReflectance(reflectance float64) error {
	// NaN fails both comparisons, so test for the valid range instead
	if !(reflectance > 0 && reflectance < 1) {
		return &InvalidReflectanceError{Value: reflectance}
	}
	return nil
}
