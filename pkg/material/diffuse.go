package material

import (
	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
)

// Diffuse scatters light around the surface normal
type Diffuse struct {
	color       core.Color
	reflectance float64
}

// NewDiffuse creates a diffuse material; reflectance must lie in (0, 1)
func NewDiffuse(color core.Color, reflectance float64) (*Diffuse, error) {
	if err := validateReflectance(reflectance); err != nil {
		return nil, err
	}
	return &Diffuse{color: color, reflectance: reflectance}, nil
}

func (d *Diffuse) Color() core.Color { return d.color }

func (d *Diffuse) Reflectance() float64 { return d.reflectance }

// Bounce leaves the hit point along normalize(normal + random unit vector).
// The distribution is biased towards the normal but not exactly cosine-weighted.
func (d *Diffuse) Bounce(ray core.Ray, geom geometry.Geometry, position, hit core.Vec3, sampler core.Sampler) core.Ray {
	normal := geom.Normal(position, hit)
	direction := normal.Add(core.SampleUnitVector(sampler))

	// The sample cancelled the normal exactly
	if direction.LengthSquared() == 0 {
		direction = normal
	}
	return core.NewRay(hit, direction)
}

func (d *Diffuse) sealed() {}
