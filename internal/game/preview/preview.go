// Package preview is an interactive explorer for the noise field and
// elevation curve, drawn as a grayscale height map.
package preview

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelview/internal/engine/input"
	"github.com/Faultbox/voxelview/internal/engine/palette"
	"github.com/Faultbox/voxelview/internal/engine/renderer"
	"github.com/Faultbox/voxelview/internal/engine/terrain"
	"github.com/Faultbox/voxelview/internal/logger"
	"github.com/Faultbox/voxelview/pkg/math"
)

// Step sizes for the preview keys.
const (
	ScaleStep = 10.0
	MinScale  = ScaleStep
	PanStep   = 0.5
)

// State is the explorer position. Screen cell (sx, sy) samples the field
// at (TX + sx/Scale, TY + sy/Scale).
type State struct {
	Seed  int64
	Scale float64
	TX    float64
	TY    float64
}

// DefaultState returns the starting position.
func DefaultState() State {
	return State{Seed: 32, Scale: 100, TX: -0.5, TY: -0.5}
}

func (s State) String() string {
	return fmt.Sprintf("seed=%d scale=%g tx=%g ty=%g", s.Seed, s.Scale, s.TX, s.TY)
}

// ContinentCurve is the profile the preview maps noise through.
func ContinentCurve() []terrain.ControlPoint {
	return []terrain.ControlPoint{
		{Noise: -1.0, Elevation: 5},
		{Noise: -0.6, Elevation: 10},
		{Noise: -0.5, Elevation: 30},
		{Noise: 0.0, Elevation: 32},
		{Noise: 0.5, Elevation: 50},
		{Noise: 0.8, Elevation: 60},
		{Noise: 1.0, Elevation: 80},
	}
}

// NoiseParams returns the field settings used for seed.
func NoiseParams(seed int64) terrain.NoiseParams {
	return terrain.NoiseParams{
		Seed:        seed,
		Octaves:     4,
		Frequency:   1,
		Persistence: 0.5,
		Lacunarity:  2.2,
	}
}

// Preview is a game.Scene showing elevation as brightness.
type Preview struct {
	state State
	curve *terrain.Curve
	field terrain.Field
	log   *zap.Logger
}

// New returns a preview at state using curve, or ContinentCurve when
// curve is nil.
func New(state State, curve []terrain.ControlPoint) (*Preview, error) {
	if curve == nil {
		curve = ContinentCurve()
	}
	c, err := terrain.NewCurve(curve)
	if err != nil {
		return nil, fmt.Errorf("preview curve: %w", err)
	}
	state.Scale = max(state.Scale, MinScale)
	return &Preview{
		state: state,
		curve: c,
		field: terrain.NewPerlinField(NoiseParams(state.Seed)),
		log:   logger.Named("preview"),
	}, nil
}

// State returns the current position.
func (p *Preview) State() State {
	return p.state
}

// Update implements game.Scene.
//
// q and a grow and shrink the scale, = and - step the seed, and the arrows
// move the sample window. Escape quits.
func (p *Preview) Update(events []input.Event) (redraw, quit bool) {
	for _, e := range events {
		if e.Type == input.EventQuit {
			return false, true
		}
		if e.Type != input.EventKeyDown {
			continue
		}

		prev := p.state
		switch e.Key {
		case input.KeyEscape:
			return false, true
		case input.KeyLeft:
			p.state.TX -= PanStep
		case input.KeyRight:
			p.state.TX += PanStep
		case input.KeyUp:
			p.state.TY -= PanStep
		case input.KeyDown:
			p.state.TY += PanStep
		case input.KeyRune:
			switch e.Rune {
			case 'q':
				p.state.Scale += ScaleStep
			case 'a':
				p.state.Scale = max(p.state.Scale-ScaleStep, MinScale)
			case '=':
				p.state.Seed++
			case '-':
				p.state.Seed--
			}
		}

		if p.state == prev {
			continue
		}
		if p.state.Seed != prev.Seed {
			p.field = terrain.NewPerlinField(NoiseParams(p.state.Seed))
		}
		redraw = true
		p.log.Info("preview state", zap.Stringer("state", p.state))
	}
	return redraw, false
}

// Elevation returns the curve-mapped height at screen cell (sx, sy).
func (p *Preview) Elevation(sx, sy int) float64 {
	x := p.state.TX + float64(sx)/p.state.Scale
	y := p.state.TY + float64(sy)/p.state.Scale
	n := math.Clamp(p.field.At(x, y), terrain.NoiseMin, terrain.NoiseMax)
	return p.curve.Sample(n)
}

// Shade maps an elevation to gray: 0 is black and 100 is white.
func Shade(elevation float64) palette.Color {
	return palette.Black.Lerp(palette.White, float32(math.Clamp(elevation/100, 0, 1)))
}

// Draw implements game.Scene.
func (p *Preview) Draw(s renderer.Surface) {
	w, h := s.Size()
	s.Clear(palette.Black)
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			c := Shade(p.Elevation(sx, sy))
			s.Set(sx, sy, c, c, ' ')
		}
	}
}

// Caption describes the current state.
func (p *Preview) Caption() string {
	return "elevation - " + p.state.String()
}
