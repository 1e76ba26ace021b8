package renderer

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-cubotracer/pkg/core"
)

const (
	// orthogonalityTolerance bounds |up·right| for a valid camera basis
	orthogonalityTolerance = 1e-6
	// verticalTolerance decides when a view direction is parallel to the world up axis
	verticalTolerance = 1e-9
	// rotationAxisTolerance is the |old × new| below which two views share an axis
	rotationAxisTolerance = 1e-12
)

// worldUp is the global up axis used to rebuild the camera basis in LookAt
var worldUp = core.NewVec3(0, 1, 0)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Up            core.Vec3 // Camera up vector, must be orthogonal to Right
	Right         core.Vec3 // Camera right vector
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height ratio
	VFov          float64   // Vertical field of view in degrees
	FocalDistance float64   // Distance to the plane of perfect focus
	DefocusAngle  float64   // Aperture cone angle in degrees, 0 = pinhole
}

// Camera generates primary rays through a virtual viewport.
// The camera does not know where it is; the world stores its position.
type Camera struct {
	up    core.Vec3
	right core.Vec3
	dir   core.Vec3

	imageWidth     int
	imageHeight    int
	viewportWidth  float64
	viewportHeight float64
	focalDistance  float64
	defocusRadius  float64
}

// CameraSample is a single primary ray tagged with its pixel coordinates
type CameraSample struct {
	Ray core.Ray
	X   int
	Y   int
}

// NewCamera validates the configuration and builds a camera
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := validateCameraConfig(config); err != nil {
		return nil, err
	}

	up := config.Up.Normalize()
	right := config.Right.Normalize()

	imageHeight := max(1, int(float64(config.Width)/config.AspectRatio))
	theta := degreesToRadians(config.VFov)
	viewportHeight := 2.0 * math.Tan(theta/2) * config.FocalDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(imageHeight))

	return &Camera{
		up:             up,
		right:          right,
		dir:            up.Cross(right),
		imageWidth:     config.Width,
		imageHeight:    imageHeight,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		focalDistance:  config.FocalDistance,
		defocusRadius:  config.FocalDistance * math.Tan(degreesToRadians(config.DefocusAngle)/2),
	}, nil
}

func validateCameraConfig(config CameraConfig) error {
	switch {
	case config.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalidCamera, config.Width)
	case !(config.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio %g", ErrInvalidCamera, config.AspectRatio)
	case !(config.VFov > 0 && config.VFov < 180):
		return fmt.Errorf("%w: vertical fov %g", ErrInvalidCamera, config.VFov)
	case !(config.FocalDistance > 0):
		return fmt.Errorf("%w: focal distance %g", ErrInvalidCamera, config.FocalDistance)
	case !(config.DefocusAngle >= 0 && config.DefocusAngle < 180):
		return fmt.Errorf("%w: defocus angle %g", ErrInvalidCamera, config.DefocusAngle)
	case config.Up.LengthSquared() == 0 || config.Right.LengthSquared() == 0:
		return fmt.Errorf("%w: zero basis vector", ErrInvalidCamera)
	}

	if math.Abs(config.Up.Normalize().Dot(config.Right.Normalize())) > orthogonalityTolerance {
		return fmt.Errorf("%w: up %v is not orthogonal to right %v", ErrInvalidCamera, config.Up, config.Right)
	}
	return nil
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ImageWidth returns the output width in pixels
func (c *Camera) ImageWidth() int { return c.imageWidth }

// ImageHeight returns the output height in pixels
func (c *Camera) ImageHeight() int { return c.imageHeight }

// Up returns the camera's unit up vector
func (c *Camera) Up() core.Vec3 { return c.up }

// Right returns the camera's unit right vector
func (c *Camera) Right() core.Vec3 { return c.right }

// ViewDirection returns up × right
func (c *Camera) ViewDirection() core.Vec3 { return c.dir }

// DefocusRadius returns the radius of the lens disk
func (c *Camera) DefocusRadius() float64 { return c.defocusRadius }

func (c *Camera) pixelWidth() float64  { return c.viewportWidth / float64(c.imageWidth) }
func (c *Camera) pixelHeight() float64 { return c.viewportHeight / float64(c.imageHeight) }

// topLeft is the top-left corner of the viewport placed on the focal plane
func (c *Camera) topLeft(position core.Vec3) core.Vec3 {
	return position.
		Add(c.dir.Multiply(c.focalDistance)).
		Add(c.up.Multiply(c.viewportHeight / 2)).
		Subtract(c.right.Multiply(c.viewportWidth / 2))
}

// pixelCenter returns the viewport point at the center of pixel (x, y)
func (c *Camera) pixelCenter(position core.Vec3, x, y int) core.Vec3 {
	ph, pw := c.pixelHeight(), c.pixelWidth()
	down := c.up.Negate()
	return c.topLeft(position).
		Add(down.Multiply(float64(y)*ph + ph/2)).
		Add(c.right.Multiply(float64(x)*pw + pw/2))
}

// CenterRay returns the unjittered pinhole ray through the center of pixel (x, y)
func (c *Camera) CenterRay(position core.Vec3, x, y int) core.Ray {
	return core.NewRay(position, c.pixelCenter(position, x, y).Subtract(position))
}

// PixelRay generates one jittered ray for pixel (x, y). When the lens has a
// radius the origin is perturbed across the lens disk.
func (c *Camera) PixelRay(position core.Vec3, x, y int, sampler core.Sampler) core.Ray {
	target := c.pixelCenter(position, x, y).
		Add(c.up.Multiply(core.Uniform(sampler, -0.5, 0.5) * c.pixelHeight())).
		Add(c.right.Multiply(core.Uniform(sampler, -0.5, 0.5) * c.pixelWidth()))

	origin := position
	if c.defocusRadius > 0 {
		u, v := core.SampleInUnitDisk(sampler)
		offset := c.up.Multiply(u).Add(c.right.Multiply(v)).Multiply(c.defocusRadius)
		origin = origin.Add(offset)
	}

	return core.NewRay(origin, target.Subtract(origin))
}

// Sample produces samplesPerPixel rays for every pixel, rows top to bottom
func (c *Camera) Sample(position core.Vec3, samplesPerPixel int, sampler core.Sampler) []CameraSample {
	if samplesPerPixel <= 0 {
		return nil
	}

	samples := make([]CameraSample, 0, c.imageWidth*c.imageHeight*samplesPerPixel)
	for y := 0; y < c.imageHeight; y++ {
		for x := 0; x < c.imageWidth; x++ {
			for s := 0; s < samplesPerPixel; s++ {
				samples = append(samples, CameraSample{
					Ray: c.PixelRay(position, x, y, sampler),
					X:   x,
					Y:   y,
				})
			}
		}
	}
	return samples
}

// LookAt reorients the camera standing at position so it views target.
// When the new direction is vertical the basis is rotated along the shortest
// arc from the old direction instead of being rebuilt from the world up axis.
func (c *Camera) LookAt(target, position core.Vec3) error {
	offset := target.Subtract(position)
	if offset.LengthSquared() == 0 {
		return fmt.Errorf("%w: target coincides with camera position %v", ErrDegenerateOrientation, position)
	}
	dir := offset.Normalize()

	if math.Abs(dir.Dot(worldUp)) < 1-verticalTolerance {
		right := dir.Cross(worldUp).Normalize()
		c.dir = dir
		c.right = right
		c.up = right.Cross(dir).Normalize()
		return nil
	}

	// Shortest-arc rotation from the current view onto the new one
	axis := c.dir.Cross(dir)
	sin, cos := axis.Length(), c.dir.Dot(dir)
	if sin < rotationAxisTolerance {
		if cos < 0 {
			return fmt.Errorf("%w: new view %v opposes current view %v", ErrDegenerateOrientation, dir, c.dir)
		}
		return nil
	}

	rotation := mgl64.QuatRotate(math.Atan2(sin, cos), toMgl(axis.Multiply(1/sin)))
	c.up = fromMgl(rotation.Rotate(toMgl(c.up))).Normalize()
	c.right = fromMgl(rotation.Rotate(toMgl(c.right))).Normalize()
	c.dir = c.up.Cross(c.right)
	return nil
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
