package renderer

import (
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	AverageSamples  float64       // Average samples per pixel
	RaysEscaped     int           // Paths that left the scene and picked up the background
	RaysAbsorbed    int           // Paths terminated by a material
	RaysCutOff      int           // Paths stopped by the bounce limit
	MaxBounces      int           // Deepest bounce reached by any path
	MeanLuminance   float64       // Mean linear luminance over all pixels
	LuminanceStdDev float64       // Standard deviation of per-pixel luminance
	RenderTime      time.Duration // Wall time of the pass
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// summarizeLuminance fills the luminance fields from linear per-pixel luminance values
func (s *RenderStats) summarizeLuminance(luminance []float64) {
	if len(luminance) == 0 {
		return
	}
	s.MeanLuminance, s.LuminanceStdDev = stat.MeanStdDev(luminance, nil)
	if len(luminance) == 1 {
		s.LuminanceStdDev = 0
	}
}

// CalculateAverageLuminance returns the mean luminance of an encoded image, with channels mapped to [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	values := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixel := core.NewVec3(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
			values = append(values, pixel.Luminance())
		}
	}

	return stat.Mean(values, nil)
}
