package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Scatter decides whether rayIn continues after hitting a surface of material m.
//
// The returned bool is false when the ray is absorbed and the path ends.
// Lambertian and Metallic always scatter. The sampler is the only source
// of randomness; passing a seeded sampler makes the result reproducible.
func Scatter(m Material, rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch mat := m.(type) {
	case Lambertian:
		return scatterLambertian(mat, hit, sampler), true
	case Metallic:
		return scatterMetallic(mat, rayIn, hit, sampler), true
	default:
		panic(fmt.Sprintf("material: unhandled material type %T", m))
	}
}

func validateAlbedo(kind string, albedo core.Vec3) error {
	for _, c := range []float64{albedo.X, albedo.Y, albedo.Z} {
		if c < 0 || c > 1 {
			return fmt.Errorf("%s: albedo %v has channel outside [0, 1]", kind, albedo)
		}
	}
	return nil
}
