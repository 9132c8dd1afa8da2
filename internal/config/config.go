// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/voxelview/internal/engine/style"
	"github.com/Faultbox/voxelview/internal/engine/terrain"
	"github.com/Faultbox/voxelview/internal/game/world"
)

// Display backends.
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Display DisplayConfig             `yaml:"display"`
	World   WorldConfig               `yaml:"world"`
	Terrain TerrainConfig             `yaml:"terrain"`
	Camera  CameraConfig              `yaml:"camera"`
	Styles  map[string]style.Override `yaml:"styles,omitempty"`
	Logging LoggingConfig             `yaml:"logging"`
}

// DisplayConfig selects and sizes the output.
type DisplayConfig struct {
	Backend       string `yaml:"backend"`
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`  // window pixels
	Height        int    `yaml:"height"` // window pixels
	VSync         bool   `yaml:"vsync"`
	FPSLimit      int    `yaml:"fps_limit"`
	ScreenshotDir string `yaml:"screenshot_dir"` // empty disables captures
}

// WorldConfig holds the grid extent and the builder that fills it.
type WorldConfig struct {
	Width   int    `yaml:"width"`
	Depth   int    `yaml:"depth"`
	Height  int    `yaml:"height"`
	Builder string `yaml:"builder"`
}

// TerrainConfig holds noise-elevation settings.
type TerrainConfig struct {
	Seed        int64                  `yaml:"seed"`
	Scale       float64                `yaml:"scale"`
	Octaves     int                    `yaml:"octaves"`
	Frequency   float64                `yaml:"frequency"`
	Persistence float64                `yaml:"persistence"`
	Lacunarity  float64                `yaml:"lacunarity"`
	WaterLevel  int                    `yaml:"water_level"`
	Surface     string                 `yaml:"surface"`
	Workers     int                    `yaml:"workers"`
	Curve       []terrain.ControlPoint `yaml:"curve"`
}

// CameraConfig holds the starting view and movement steps.
type CameraConfig struct {
	StartLayer int `yaml:"start_layer"`
	PanStep    int `yaml:"pan_step"`
	LayerStep  int `yaml:"layer_step"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	noise := terrain.DefaultNoiseConfig()
	return &Config{
		Display: DisplayConfig{
			Backend:       BackendTerminal,
			Title:         "voxelview",
			Width:         1280,
			Height:        720,
			VSync:         true,
			FPSLimit:      30,
			ScreenshotDir: "screenshots",
		},
		World: WorldConfig{
			Width:   500,
			Depth:   500,
			Height:  200,
			Builder: terrain.BuilderNoise,
		},
		Terrain: TerrainConfig{
			Seed:        noise.Seed,
			Scale:       noise.Scale,
			Octaves:     noise.Octaves,
			Frequency:   noise.Frequency,
			Persistence: noise.Persistence,
			Lacunarity:  noise.Lacunarity,
			WaterLevel:  noise.WaterLevel,
			Surface:     noise.Surface,
			Curve:       noise.Curve,
		},
		Camera: CameraConfig{
			StartLayer: 100,
			PanStep:    10,
			LayerStep:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Noise returns the terrain section as builder settings.
func (t TerrainConfig) Noise() terrain.NoiseConfig {
	return terrain.NoiseConfig{
		Seed:        t.Seed,
		Scale:       t.Scale,
		Octaves:     t.Octaves,
		Frequency:   t.Frequency,
		Persistence: t.Persistence,
		Lacunarity:  t.Lacunarity,
		WaterLevel:  t.WaterLevel,
		Curve:       t.Curve,
		Surface:     t.Surface,
		Workers:     t.Workers,
	}
}

// Validate reports the first setting the viewer cannot run with.
func (c *Config) Validate() error {
	switch c.Display.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("%w: unknown display backend %q", ErrInvalid, c.Display.Backend)
	}
	if c.Display.Backend == BackendWindow && (c.Display.Width <= 0 || c.Display.Height <= 0) {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	}
	if c.Display.FPSLimit < 0 {
		return fmt.Errorf("%w: negative fps_limit", ErrInvalid)
	}

	w := c.World
	if w.Width <= 0 || w.Depth <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: world size %dx%dx%d", ErrInvalid, w.Width, w.Depth, w.Height)
	}
	if w.Width > world.MaxCells/w.Depth || w.Width*w.Depth > world.MaxCells/w.Height {
		return fmt.Errorf("%w: world size %dx%dx%d exceeds %d cells", ErrInvalid, w.Width, w.Depth, w.Height, world.MaxCells)
	}
	switch w.Builder {
	case terrain.BuilderNoise, terrain.BuilderFlat:
	default:
		return fmt.Errorf("%w: unknown builder %q", ErrInvalid, w.Builder)
	}

	if c.Terrain.Scale <= 0 {
		return fmt.Errorf("%w: terrain scale must be positive", ErrInvalid)
	}
	switch c.Terrain.Surface {
	case terrain.SurfaceHash, terrain.SurfaceRandom, "":
	default:
		return fmt.Errorf("%w: unknown surface picker %q", ErrInvalid, c.Terrain.Surface)
	}
	if c.Camera.PanStep <= 0 || c.Camera.LayerStep <= 0 {
		return fmt.Errorf("%w: camera steps must be positive", ErrInvalid)
	}
	return nil
}
