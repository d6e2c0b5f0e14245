package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewFuzzGridScene creates two rows of spheres: the back row is metallic with
// fuzziness going from 0 on the left to 1 on the right, the front row is
// matte with hues spread around the color wheel.
func NewFuzzGridScene(width, height int) (*Scene, error) {
	s, err := New(width, height, core.NewVec3(0, 0, 1))
	if err != nil {
		return nil, err
	}

	const count = 5
	const radius = 0.3

	s.Add(geometry.NewSphere(core.NewVec3(0, -100.3, -2), 100, material.NewLambertian(0.6, 0.6, 0.6)))

	for i := 0; i < count; i++ {
		x := (float64(i) - float64(count-1)/2) * 2.2 * radius
		fuzz := float64(i) / float64(count-1)

		metal := material.Metallic{Albedo: core.NewVec3(0.9, 0.9, 0.9), Fuzziness: fuzz}
		s.Add(geometry.NewSphere(core.NewVec3(x, 0, -2.2), radius, metal))

		hue := 360.0 * float64(i) / count
		matte := material.Lambertian{Albedo: oklchToRGB(0.7, 0.15, hue)}
		s.Add(geometry.NewSphere(core.NewVec3(x, -0.15, -1.4), radius/2, matte))
	}

	return s, nil
}
