// Package terrain provides the builders that fill a voxel map with terrain.
package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/voxelview/internal/game/world"
)

// Builder names accepted by NewBuilder.
const (
	BuilderNoise = "noise"
	BuilderFlat  = "flat"
)

// Surface picker names accepted in NoiseConfig.Surface.
const (
	SurfaceHash   = "hash"
	SurfaceRandom = "random"
)

// Terrain errors.
var (
	ErrUnknownBuilder = errors.New("unknown builder")
	ErrUnknownSurface = errors.New("unknown surface picker")
	ErrCurvePoints    = errors.New("elevation curve needs at least two control points")
	ErrCurveOrder     = errors.New("elevation curve keys must be strictly increasing")
	ErrCurveMonotonic = errors.New("elevation curve values must not decrease")
	ErrCurveDomain    = errors.New("elevation curve does not cover the noise range")
)

// Noise output is clamped to this range before it is mapped through the curve.
const (
	NoiseMin = -0.99
	NoiseMax = 0.99
)

// NewBuilder returns the builder registered under name.
func NewBuilder(name string, cfg NoiseConfig) (world.Builder, error) {
	switch name {
	case BuilderNoise:
		return NewNoiseBuilder(cfg)
	case BuilderFlat:
		return NewFlatBuilder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuilder, name)
	}
}
