package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. PATHTRACER_IMAGE_WIDTH
const EnvPrefix = "PATHTRACER"

// Config represents the render configuration
type Config struct {
	Scene    string         `mapstructure:"scene"`
	Output   string         `mapstructure:"output"`
	LogLevel string         `mapstructure:"log_level"`
	Image    ImageConfig    `mapstructure:"image"`
	Camera   CameraConfig   `mapstructure:"camera"`
	Sampling SamplingConfig `mapstructure:"sampling"`
}

// ImageConfig contains the output resolution
type ImageConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// CameraConfig contains the camera focal point as [x, y, depth]
type CameraConfig struct {
	FocalPoint []float64 `mapstructure:"focal_point"`
}

// SamplingConfig contains per-pixel sampling settings
type SamplingConfig struct {
	SamplesPerPixel int   `mapstructure:"samples_per_pixel"`
	MaxDepth        int   `mapstructure:"max_depth"`
	Seed            int64 `mapstructure:"seed"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	sampling := renderer.DefaultSamplingConfig()
	return &Config{
		Scene:    "default",
		Output:   "render.png",
		LogLevel: "notice",
		Image:    ImageConfig{Width: 400, Height: 200},
		Camera:   CameraConfig{FocalPoint: []float64{0, 0, 1}},
		Sampling: SamplingConfig{
			SamplesPerPixel: sampling.SamplesPerPixel,
			MaxDepth:        sampling.MaxDepth,
			Seed:            sampling.Seed,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("scene", d.Scene)
	v.SetDefault("output", d.Output)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("image.width", d.Image.Width)
	v.SetDefault("image.height", d.Image.Height)
	v.SetDefault("camera.focal_point", d.Camera.FocalPoint)
	v.SetDefault("sampling.samples_per_pixel", d.Sampling.SamplesPerPixel)
	v.SetDefault("sampling.max_depth", d.Sampling.MaxDepth)
	v.SetDefault("sampling.seed", d.Sampling.Seed)
}

// Load reads configuration from path (YAML, TOML or JSON, by extension) on
// top of the defaults. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Scene) == "" {
		return errors.New("scene cannot be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output cannot be empty")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if len(c.Camera.FocalPoint) != 3 {
		return fmt.Errorf("camera focal point needs 3 components, got %d", len(c.Camera.FocalPoint))
	}
	if err := renderer.ValidateCameraParams(c.Image.Width, c.Image.Height, c.FocalPoint()); err != nil {
		return err
	}
	if c.Sampling.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.Sampling.SamplesPerPixel)
	}
	if c.Sampling.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.Sampling.MaxDepth)
	}
	return nil
}

// FocalPoint returns the camera focal point as a vector
func (c *Config) FocalPoint() core.Vec3 {
	if len(c.Camera.FocalPoint) != 3 {
		return core.Vec3{}
	}
	fp := c.Camera.FocalPoint
	return core.NewVec3(fp[0], fp[1], fp[2])
}

// RendererSampling converts the sampling section into the renderer's config
func (c *Config) RendererSampling() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: c.Sampling.SamplesPerPixel,
		MaxDepth:        c.Sampling.MaxDepth,
		Seed:            c.Sampling.Seed,
	}
}
