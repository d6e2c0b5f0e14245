package renderer

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera generates rays from a fixed eye through an image plane one unit
// in front of it along -Z. The plane is 2 units high; only its width follows
// the aspect ratio.
type Camera struct {
	origin          core.Vec3
	focalPoint      core.Vec3
	aspectRatio     float64
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// ValidateCameraParams checks the NewCamera preconditions.
// The focal point Z is its distance from the camera and must be positive;
// X and Y are a normalized offset from the plane center and must lie in (-1, 1).
func ValidateCameraParams(resolutionX, resolutionY int, focalPoint core.Vec3) error {
	if resolutionX <= 0 || resolutionY <= 0 {
		return fmt.Errorf("camera: resolution %dx%d must be positive", resolutionX, resolutionY)
	}
	if !(focalPoint.Z > 0) {
		return fmt.Errorf("camera: focal point depth %g must be greater than 0", focalPoint.Z)
	}
	if !(focalPoint.X > -1 && focalPoint.X < 1) {
		return fmt.Errorf("camera: focal point x offset %g must lie in (-1, 1)", focalPoint.X)
	}
	if !(focalPoint.Y > -1 && focalPoint.Y < 1) {
		return fmt.Errorf("camera: focal point y offset %g must lie in (-1, 1)", focalPoint.Y)
	}
	return nil
}

// NewCamera creates a camera for the given resolution.
// It panics if ValidateCameraParams rejects the arguments.
func NewCamera(resolutionX, resolutionY int, focalPoint core.Vec3) *Camera {
	if err := ValidateCameraParams(resolutionX, resolutionY, focalPoint); err != nil {
		panic(err)
	}

	width := float64(resolutionX) / float64(resolutionY)

	// The focal point offset is stored but not applied to ray generation
	return &Camera{
		origin:          core.NewVec3(0, 0, 0),
		focalPoint:      focalPoint,
		aspectRatio:     width,
		lowerLeftCorner: core.NewVec3(-width, -1, -1),
		horizontal:      core.NewVec3(width*2, 0, 0),
		vertical:        core.NewVec3(0, 2, 0),
	}
}

// GetRay generates a ray for plane coordinates (s, t) where 0 <= s,t <= 1 covers the
// plane from its lower-left to its upper-right corner. Values outside that range
// extrapolate. The direction is not normalized.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// Origin returns the eye position
func (c *Camera) Origin() core.Vec3 { return c.origin }

// FocalPoint returns the focal point the camera was created with
func (c *Camera) FocalPoint() core.Vec3 { return c.focalPoint }

// AspectRatio returns resolution width divided by height
func (c *Camera) AspectRatio() float64 { return c.aspectRatio }

// LowerLeftCorner returns the lower-left corner of the image plane
func (c *Camera) LowerLeftCorner() core.Vec3 { return c.lowerLeftCorner }

// Horizontal returns the horizontal extent of the image plane
func (c *Camera) Horizontal() core.Vec3 { return c.horizontal }

// Vertical returns the vertical extent of the image plane
func (c *Camera) Vertical() core.Vec3 { return c.vertical }
