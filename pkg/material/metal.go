package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Metallic represents a metallic material with specular reflection
type Metallic struct {
	Albedo    core.Vec3 // Metal color, each channel expected in [0, 1]
	Fuzziness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetallic creates a metal material from raw RGB values and a fuzziness.
// All four values are expected in [0, 1]; nothing is clamped, see Validate.
func NewMetallic(r, g, b, fuzziness float64) Metallic {
	return Metallic{Albedo: core.NewVec3(r, g, b), Fuzziness: fuzziness}
}

// Validate checks that albedo and fuzziness lie in [0, 1]
func (m Metallic) Validate() error {
	if err := validateAlbedo("metallic", m.Albedo); err != nil {
		return err
	}
	if m.Fuzziness < 0 || m.Fuzziness > 1 {
		return fmt.Errorf("metallic: fuzziness %g outside [0, 1]", m.Fuzziness)
	}
	return nil
}

func (Metallic) isMaterial() {}

// scatterMetallic mirrors the incoming direction about the normal and
// perturbs it by a fuzziness-scaled point from the unit ball.
//
// The perturbed direction is not checked against the normal, so with high
// fuzziness it can point into the surface. The ray still scatters.
func scatterMetallic(m Metallic, rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	reflected := Reflect(rayIn.Direction, hit.Normal)

	// A sample is drawn even for perfect mirrors so every call consumes the same entropy
	fuzz := core.SampleInUnitBall(sampler).Multiply(m.Fuzziness)

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected.Add(fuzz)),
		Attenuation: m.Albedo,
	}
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
