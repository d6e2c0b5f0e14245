package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates three spheres resting on a large ground sphere:
// a matte red one in the middle flanked by polished and brushed metal.
func NewDefaultScene(width, height int) (*Scene, error) {
	s, err := New(width, height, core.NewVec3(0, 0, 1))
	if err != nil {
		return nil, err
	}

	ground := material.NewLambertian(0.8, 0.8, 0.0)
	matte := material.NewLambertian(0.8, 0.3, 0.3)
	silver := material.NewMetallic(0.8, 0.8, 0.8, 0.3)
	gold := material.NewMetallic(0.8, 0.6, 0.2, 1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, matte),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, silver),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return s, nil
}

// NewDiffuseScene creates a single matte sphere on a matte ground plane
func NewDiffuseScene(width, height int) (*Scene, error) {
	s, err := New(width, height, core.NewVec3(0, 0, 1))
	if err != nil {
		return nil, err
	}

	s.Add(
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), material.NewLambertian(0.5, 0.5, 0.5)),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(0.5, 0.5, 0.5)),
	)

	return s, nil
}
