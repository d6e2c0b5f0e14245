package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color, each channel expected in [0, 1]
}

// NewLambertian creates a diffuse material from raw RGB values.
// Channels are expected in [0, 1] but are not clamped; see Validate.
func NewLambertian(r, g, b float64) Lambertian {
	return Lambertian{Albedo: core.NewVec3(r, g, b)}
}

// Validate checks that the albedo lies in [0, 1]
func (l Lambertian) Validate() error {
	return validateAlbedo("lambertian", l.Albedo)
}

func (Lambertian) isMaterial() {}

// scatterLambertian bounces the ray toward a random point in the unit ball
// sitting on top of the surface normal.
func scatterLambertian(l Lambertian, hit HitRecord, sampler core.Sampler) ScatterResult {
	target := hit.Point.Add(hit.Normal).Add(core.SampleInUnitBall(sampler))

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, target.Subtract(hit.Point)),
		Attenuation: l.Albedo,
	}
}
