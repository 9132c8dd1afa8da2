package terrain

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelview/internal/game/world"
	"github.com/Faultbox/voxelview/internal/logger"
)

// NoiseConfig holds the noise-elevation builder settings.
type NoiseConfig struct {
	Seed        int64
	Scale       float64
	Octaves     int
	Frequency   float64
	Persistence float64
	Lacunarity  float64
	WaterLevel  int
	Curve       []ControlPoint
	Surface     string // SurfaceHash or SurfaceRandom; empty means hash
	Workers     int    // <= 0 means runtime.NumCPU()
}

// DefaultNoiseConfig returns the stock terrain settings.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		Seed:        69 + 420,
		Scale:       2000,
		Octaves:     8,
		Frequency:   16.0,
		Persistence: 0.5,
		Lacunarity:  2.2,
		WaterLevel:  95,
		Curve:       DefaultControlPoints(),
		Surface:     SurfaceHash,
	}
}

// NewSurfacePicker returns the picker registered under name, seeded with
// seed. The random picker's output depends on the order columns are built
// in, so it only reproduces a map when generation runs on one worker.
func NewSurfacePicker(name string, seed int64) (SurfacePicker, error) {
	switch name {
	case SurfaceHash, "":
		return HashPicker{Seed: uint64(seed)}, nil
	case SurfaceRandom:
		return NewRandPicker(rand.New(rand.NewSource(seed))), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSurface, name)
	}
}

// Option customises a NoiseBuilder.
type Option func(*NoiseBuilder)

// WithPicker replaces the surface picker.
func WithPicker(p SurfacePicker) Option {
	return func(b *NoiseBuilder) { b.picker = p }
}

// WithField replaces the Perlin field.
func WithField(f Field) Option {
	return func(b *NoiseBuilder) { b.elevation.Field = f }
}

// WithWorkers overrides the number of generation workers.
func WithWorkers(n int) Option {
	return func(b *NoiseBuilder) { b.workers = n }
}

// NoiseBuilder derives one elevation per column from a noise field and
// expands it into a full vertical column.
type NoiseBuilder struct {
	elevation  Elevation
	waterLevel int
	picker     SurfacePicker
	workers    int
}

// NewNoiseBuilder validates cfg and returns a builder.
func NewNoiseBuilder(cfg NoiseConfig, opts ...Option) (*NoiseBuilder, error) {
	points := cfg.Curve
	if len(points) == 0 {
		points = DefaultControlPoints()
	}
	curve, err := NewCurve(points)
	if err != nil {
		return nil, fmt.Errorf("elevation curve: %w", err)
	}
	if !curve.Covers(NoiseMin, NoiseMax) {
		lo, hi := curve.Domain()
		return nil, fmt.Errorf("%w: [%v, %v] vs [%v, %v]", ErrCurveDomain, lo, hi, NoiseMin, NoiseMax)
	}
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("noise scale must be positive, got %v", cfg.Scale)
	}
	picker, err := NewSurfacePicker(cfg.Surface, cfg.Seed)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	b := &NoiseBuilder{
		elevation: Elevation{
			Field: NewPerlinField(NoiseParams{
				Seed:        cfg.Seed,
				Octaves:     cfg.Octaves,
				Frequency:   cfg.Frequency,
				Persistence: cfg.Persistence,
				Lacunarity:  cfg.Lacunarity,
			}),
			Curve: curve,
			Scale: cfg.Scale,
		},
		waterLevel: cfg.WaterLevel,
		picker:     picker,
		workers:    workers,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Elevation returns the surface height of column (x, y).
func (b *NoiseBuilder) Elevation(x, y int) int {
	return b.elevation.At(x, y)
}

// WaterLevel returns the highest layer water fills up to.
func (b *NoiseBuilder) WaterLevel() int {
	return b.waterLevel
}

// ColumnCell applies the layering rule for layer z of a column whose
// elevation is e:
//
//	water    z <= water && z >= e
//	surface  z == e-1
//	rock     z < e-1
//	void     everything above
func ColumnCell(z, e, water int, surface world.Cell) world.Cell {
	switch {
	case z <= water && z >= e:
		return world.Water
	case z == e-1:
		return surface
	case z < e:
		return world.Rock
	default:
		return world.Void
	}
}

// Build fills every column of m. Columns are independent, so they are
// generated in row bands on a worker pool; all writes finish before Build
// returns.
func (b *NoiseBuilder) Build(m *world.Map) *world.Map {
	start := time.Now()
	size := m.Size()

	if b.workers <= 1 || size.Y < 2 {
		b.fillRows(m, 0, size.Y)
	} else {
		pool := pond.NewPool(b.workers)
		defer pool.StopAndWait()

		var wg sync.WaitGroup
		band := (size.Y + b.workers*4 - 1) / (b.workers * 4)
		for y0 := 0; y0 < size.Y; y0 += band {
			y1 := min(y0+band, size.Y)
			wg.Add(1)
			pool.Submit(func() {
				defer wg.Done()
				b.fillRows(m, y0, y1)
			})
		}
		wg.Wait()
	}

	logger.Debug("noise terrain built",
		zap.Stringer("size", size),
		zap.Int("workers", b.workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return m
}

func (b *NoiseBuilder) fillRows(m *world.Map, y0, y1 int) {
	size := m.Size()
	surfaces := world.SurfaceCells()
	for y := y0; y < y1; y++ {
		for x := 0; x < size.X; x++ {
			e := b.elevation.At(x, y)
			surface := b.picker.Pick(x, y, surfaces)
			for z := 0; z < size.Z; z++ {
				m.Set(x, y, z, ColumnCell(z, e, b.waterLevel, surface))
			}
		}
	}
}
