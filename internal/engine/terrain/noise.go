package terrain

import (
	gomath "math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/voxelview/pkg/math"
)

// Field is a coherent 2D noise field.
type Field interface {
	At(x, y float64) float64
}

// NoiseParams configures a fractal Perlin field.
type NoiseParams struct {
	Seed        int64
	Octaves     int
	Frequency   float64
	Persistence float64 // amplitude multiplier per octave
	Lacunarity  float64 // frequency multiplier per octave
}

// latticePeriod is the go-perlin permutation table size; the field repeats
// every latticePeriod units.
const latticePeriod = 256

// octaveGain scales a go-perlin octave from its ±√2/2 peak to ±1.
const octaveGain = gomath.Sqrt2

// PerlinField is multi-octave Perlin noise.
//
// Perlin noise is zero on every lattice point, the origin included, so the
// sampling domain is shifted by a seed-derived offset inside one period.
//
// Safe for concurrent use: sampling only reads the permutation tables.
type PerlinField struct {
	noise     *perlin.Perlin
	frequency float64
	offsetX   float64
	offsetY   float64
}

// NewPerlinField builds a seeded field. go-perlin divides each octave's
// amplitude by alpha, so alpha is the inverse of the persistence.
func NewPerlinField(p NoiseParams) *PerlinField {
	ox, oy := DomainOffset(p.Seed)
	alpha := 2.0
	if p.Persistence > 0 {
		alpha = 1 / p.Persistence
	}
	octaves := p.Octaves
	if octaves < 1 {
		octaves = 1
	}
	freq := p.Frequency
	if freq == 0 {
		freq = 1
	}
	return &PerlinField{
		noise:     perlin.NewPerlin(alpha, p.Lacunarity, int32(octaves), p.Seed),
		frequency: freq,
		offsetX:   ox,
		offsetY:   oy,
	}
}

// DomainOffset returns the lattice offset a field with seed samples from.
func DomainOffset(seed int64) (x, y float64) {
	rng := rand.New(rand.NewSource(seed))
	x = rng.Float64() * latticePeriod
	y = rng.Float64() * latticePeriod
	return x, y
}

// At samples the field.
func (f *PerlinField) At(x, y float64) float64 {
	n := f.noise.Noise2D(x*f.frequency+f.offsetX, y*f.frequency+f.offsetY)
	return n * octaveGain
}

// Elevation turns a noise field into integer column heights.
type Elevation struct {
	Field Field
	Curve *Curve
	Scale float64
}

// At returns the elevation of column (x, y): the field sampled at
// (x/scale, y/scale), clamped to [NoiseMin, NoiseMax], mapped through the
// curve and rounded half away from zero.
func (e Elevation) At(x, y int) int {
	return math.RoundInt(e.Curve.Sample(e.Noise(x, y)))
}

// Noise returns the clamped noise value for column (x, y).
func (e Elevation) Noise(x, y int) float64 {
	n := e.Field.At(float64(x)/e.Scale, float64(y)/e.Scale)
	return math.Clamp(n, NoiseMin, NoiseMax)
}
