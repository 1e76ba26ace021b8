package material

import (
	"github.com/df07/go-cubotracer/pkg/core"
	"github.com/df07/go-cubotracer/pkg/geometry"
)

// Opaque absorbs all incoming light and shows only its own color
type Opaque struct {
	color core.Color
}

// NewOpaque creates a new opaque material
func NewOpaque(color core.Color) *Opaque {
	return &Opaque{color: color}
}

func (o *Opaque) Color() core.Color { return o.color }

// Reflectance is always zero
func (o *Opaque) Reflectance() float64 { return 0 }

// Bounce returns the incoming ray unchanged
func (o *Opaque) Bounce(ray core.Ray, geom geometry.Geometry, position, hit core.Vec3, sampler core.Sampler) core.Ray {
	return ray
}

func (o *Opaque) sealed() {}
