package material

import (
	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
)

// Specular is a perfect mirror
type Specular struct {
	color       core.Color
	reflectance float64
}

// NewSpecular creates a mirror material; reflectance must lie in (0, 1)
func NewSpecular(color core.Color, reflectance float64) (*Specular, error) {
	if err := validateReflectance(reflectance); err != nil {
		return nil, err
	}
	return &Specular{color: color, reflectance: reflectance}, nil
}

func (s *Specular) Color() core.Color { return s.color }

func (s *Specular) Reflectance() float64 { return s.reflectance }

// Bounce mirrors the incoming direction about the surface normal
func (s *Specular) Bounce(ray core.Ray, geom geometry.Geometry, position, hit core.Vec3, sampler core.Sampler) core.Ray {
	normal := geom.Normal(position, hit)
	return core.NewRay(hit, ray.Direction.Reflect(normal))
}

func (s *Specular) sealed() {}
