package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return err
	}

	applyFlagOverrides(ctx, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid render options: %w", err)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	setupLogging(ctx, level)

	sc, err := scene.Create(cfg.Scene, cfg.Image.Width, cfg.Image.Height)
	if err != nil {
		return err
	}
	sc.Camera = renderer.NewCamera(cfg.Image.Width, cfg.Image.Height, cfg.FocalPoint())

	logger.Noticef("rendering scene %q (%d shapes) at %dx%d",
		cfg.Scene, sc.GetPrimitiveCount(), cfg.Image.Width, cfg.Image.Height)

	rt := renderer.NewRaytracer(sc, cfg.Image.Width, cfg.Image.Height)
	rt.SetSamplingConfig(cfg.RendererSampling())

	img, stats := rt.RenderPass()

	if err := savePNG(cfg.Output, img); err != nil {
		return err
	}

	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
	logger.Noticef("render saved as %s", cfg.Output)
	return nil
}

func applyFlagOverrides(ctx *cli.Context, cfg *config.Config) {
	if ctx.IsSet("scene") {
		cfg.Scene = ctx.String("scene")
	}
	if ctx.IsSet("width") {
		cfg.Image.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Image.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		cfg.Sampling.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		cfg.Sampling.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("seed") {
		cfg.Sampling.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("out") {
		cfg.Output = ctx.String("out")
	}
}

func savePNG(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}

// Format render statistics as a table.
func formatFrameStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.AppendBulk([][]string{
		{"Pixels", fmt.Sprintf("%d", stats.TotalPixels)},
		{"Samples", fmt.Sprintf("%d", stats.TotalSamples)},
		{"Samples per pixel", fmt.Sprintf("%.1f", stats.AverageSamples)},
		{"Rays escaped", fmt.Sprintf("%d", stats.RaysEscaped)},
		{"Rays absorbed", fmt.Sprintf("%d", stats.RaysAbsorbed)},
		{"Rays cut off", fmt.Sprintf("%d", stats.RaysCutOff)},
		{"Deepest bounce", fmt.Sprintf("%d", stats.MaxBounces)},
		{"Mean luminance", fmt.Sprintf("%.4f", stats.MeanLuminance)},
		{"Luminance std dev", fmt.Sprintf("%.4f", stats.LuminanceStdDev)},
	})
	table.SetFooter([]string{"Render time", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}
