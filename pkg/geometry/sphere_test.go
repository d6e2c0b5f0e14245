package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewLambertian(0.5, 0.5, 0.5))
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	mat := material.NewMetallic(0.8, 0.8, 0.8, 0.1)
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, mat)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 3, 0),
			rayDirection:   core.NewVec3(0, -2, 0),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.ApproxEquals(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != material.Material(mat) {
				t.Errorf("Hit record should carry the sphere material, got %v", hit.Material)
			}
		})
	}
}

func TestSphere_Hit_RespectsRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, material.NewLambertian(0.5, 0.5, 0.5))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := sphere.Hit(ray, 0.001, 3.0); isHit {
		t.Error("Sphere beyond tMax should not be hit")
	}

	// Near root is before tMin, so the far side is returned
	hit, isHit := sphere.Hit(ray, 4.5, 100)
	if !isHit || math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected far intersection at t=6, got %v (hit=%t)", hit, isHit)
	}
}

func TestHitClosest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, material.NewLambertian(1, 0, 0))
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, material.NewLambertian(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Order must not matter
	for _, shapes := range [][]Shape{{near, far}, {far, near}} {
		hit, isHit := HitClosest(shapes, ray, 0.001, math.Inf(1))
		if !isHit {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.T-1.5) > 1e-9 {
			t.Errorf("Expected closest hit at t=1.5, got %f", hit.T)
		}
	}

	if _, isHit := HitClosest(nil, ray, 0.001, math.Inf(1)); isHit {
		t.Error("Empty shape list should never hit")
	}
}
