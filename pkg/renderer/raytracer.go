package renderer

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

var logger = log.New("renderer")

// Offset from the surface for secondary rays, avoids self-intersection
const hitEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed for the render sampler
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetShapes() []geometry.Shape
}

// Raytracer handles the rendering process. It renders on the calling
// goroutine and owns a single sampler.
type Raytracer struct {
	scene   Scene
	width   int
	height  int
	config  SamplingConfig
	sampler core.Sampler
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	config := DefaultSamplingConfig()
	return &Raytracer{
		scene:   scene,
		width:   width,
		height:  height,
		config:  config,
		sampler: core.NewSeededSampler(config.Seed),
	}
}

// SetSamplingConfig updates the sampling configuration and reseeds the sampler
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
	rt.sampler = core.NewSeededSampler(config.Seed)
}

// SetSampler replaces the random source used for jitter and scattering
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColorRecursive returns the color carried back along r.
// Attenuation from every bounce is multiplied into the result.
func (rt *Raytracer) rayColorRecursive(r core.Ray, depth int, stats *RenderStats) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		stats.RaysCutOff++
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := geometry.HitClosest(rt.scene.GetShapes(), r, hitEpsilon, math.Inf(1))
	if !isHit {
		stats.RaysEscaped++
		return rt.backgroundGradient(r)
	}

	if bounce := rt.config.MaxDepth - depth + 1; bounce > stats.MaxBounces {
		stats.MaxBounces = bounce
	}

	scatter, didScatter := material.Scatter(hit.Material, r, *hit, rt.sampler)
	if !didScatter {
		stats.RaysAbsorbed++
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColorRecursive(scatter.Scattered, depth-1, stats))
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.Clamp(0.0, math.Inf(1)).GammaCorrect(2.0)

	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// RenderPass renders a single pass with multi-sampling and returns an image
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	camera := rt.scene.GetCamera()

	stats := RenderStats{TotalPixels: rt.width * rt.height}
	luminance := make([]float64, 0, stats.TotalPixels)

	logger.Infof("rendering %dx%d, %d spp, max depth %d",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	for j := rt.height - 1; j >= 0; j-- {
		for i := 0; i < rt.width; i++ {
			var pixel PixelStats

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Convert pixel coordinates to normalized coordinates with jitter
				jitter := rt.sampler.Get2D()
				s := (float64(i) + jitter.X) / float64(rt.width)
				t := (float64(j) + jitter.Y) / float64(rt.height)

				ray := camera.GetRay(s, t)
				pixel.AddSample(rt.rayColorRecursive(ray, rt.config.MaxDepth, &stats))
			}

			colorVec := pixel.GetColor()
			luminance = append(luminance, colorVec.Luminance())
			stats.TotalSamples += pixel.SampleCount

			img.SetRGBA(i, rt.height-1-j, vec3ToColor(colorVec))
		}
		logger.Debugf("finished scanline %d", j)
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	stats.summarizeLuminance(luminance)
	stats.RenderTime = time.Since(startTime)

	logger.Infof("render pass done in %s", stats.RenderTime)
	return img, stats
}
