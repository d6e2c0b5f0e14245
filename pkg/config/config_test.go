package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	config, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	defaults := DefaultConfig()
	if config.Scene != defaults.Scene || config.Output != defaults.Output {
		t.Errorf("Expected defaults %+v, got %+v", defaults, config)
	}
	if config.Image != defaults.Image || config.Sampling != defaults.Sampling {
		t.Errorf("Expected default image/sampling, got %+v / %+v", config.Image, config.Sampling)
	}
	if !config.FocalPoint().Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected default focal point (0,0,1), got %v", config.FocalPoint())
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "render.yaml", `
scene: fuzz-grid
output: out/grid.png
log_level: debug
image:
  width: 320
  height: 160
camera:
  focal_point: [0.25, -0.5, 2]
sampling:
  samples_per_pixel: 16
  max_depth: 8
  seed: 7
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if config.Scene != "fuzz-grid" || config.Output != "out/grid.png" || config.LogLevel != "debug" {
		t.Errorf("Unexpected top-level values: %+v", config)
	}
	if config.Image.Width != 320 || config.Image.Height != 160 {
		t.Errorf("Expected 320x160, got %+v", config.Image)
	}
	if !config.FocalPoint().Equals(core.NewVec3(0.25, -0.5, 2)) {
		t.Errorf("Expected focal point (0.25,-0.5,2), got %v", config.FocalPoint())
	}

	sampling := config.RendererSampling()
	if sampling.SamplesPerPixel != 16 || sampling.MaxDepth != 8 || sampling.Seed != 7 {
		t.Errorf("Unexpected sampling config %+v", sampling)
	}
}

func TestLoad_PartialTOMLKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "render.toml", `
scene = "diffuse"

[sampling]
samples_per_pixel = 4
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if config.Scene != "diffuse" || config.Sampling.SamplesPerPixel != 4 {
		t.Errorf("File values not applied: %+v", config)
	}
	if config.Sampling.MaxDepth != DefaultConfig().Sampling.MaxDepth {
		t.Errorf("Expected default max depth, got %d", config.Sampling.MaxDepth)
	}
	if config.Image != DefaultConfig().Image {
		t.Errorf("Expected default image size, got %+v", config.Image)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"zero focal depth", "a.yaml", "camera:\n  focal_point: [0, 0, 0]\n"},
		{"focal offset out of range", "b.yaml", "camera:\n  focal_point: [1.5, 0, 1]\n"},
		{"short focal point", "c.yaml", "camera:\n  focal_point: [0, 1]\n"},
		{"negative width", "d.yaml", "image:\n  width: -10\n"},
		{"zero samples", "e.yaml", "sampling:\n  samples_per_pixel: 0\n"},
		{"zero depth", "f.yaml", "sampling:\n  max_depth: 0\n"},
		{"bad log level", "g.yaml", "log_level: chatty\n"},
		{"empty scene", "h.yaml", "scene: \"\"\n"},
		{"malformed yaml", "i.yaml", "image: [width\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.file, tt.content)); err == nil {
				t.Error("Expected error, got none")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("PATHTRACER_SAMPLING_MAX_DEPTH", "3")

	config, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if config.Sampling.MaxDepth != 3 {
		t.Errorf("Expected max depth 3 from environment, got %d", config.Sampling.MaxDepth)
	}
}
