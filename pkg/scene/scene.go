package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera      *renderer.Camera
	Shapes      []geometry.Shape // Objects in the scene
	TopColor    core.Vec3        // Background color straight up
	BottomColor core.Vec3        // Background color straight down
}

// New creates an empty scene with a sky-blue background.
// The camera arguments are validated first, so bad input is an error rather than a panic.
func New(width, height int, focalPoint core.Vec3) (*Scene, error) {
	if err := renderer.ValidateCameraParams(width, height, focalPoint); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	return &Scene{
		Camera:      renderer.NewCamera(width, height, focalPoint),
		Shapes:      make([]geometry.Shape, 0),
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}, nil
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetShapes returns the objects in the scene
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// Validate checks the camera and the material of every sphere and plane
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene: missing camera")
	}
	for i, shape := range s.Shapes {
		var mat material.Material
		switch sh := shape.(type) {
		case *geometry.Sphere:
			if sh.Radius == 0 {
				return fmt.Errorf("scene: shape %d has zero radius", i)
			}
			mat = sh.Material
		case *geometry.Plane:
			if sh.Normal.LengthSquared() == 0 {
				return fmt.Errorf("scene: shape %d has no normal", i)
			}
			mat = sh.Material
		default:
			continue
		}

		if mat == nil {
			return fmt.Errorf("scene: shape %d has no material", i)
		}
		if err := mat.Validate(); err != nil {
			return fmt.Errorf("scene: shape %d: %w", i, err)
		}
	}
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
