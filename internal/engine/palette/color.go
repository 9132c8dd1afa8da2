// Package palette provides colours for the character-grid display.
package palette

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Faultbox/voxelview/pkg/math"
)

// ErrInvalidHex is returned when a colour string is not #rrggbb.
var ErrInvalidHex = errors.New("invalid hex colour")

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// ParseHex parses "#rrggbb" (the leading # is optional).
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Lerp blends c toward other by t, component-wise including alpha.
// t = 0 yields c, t = 1 yields other.
func (c Color) Lerp(other Color, t float32) Color {
	f := float64(t)
	return Color{
		R: float32(math.Lerp(float64(c.R), float64(other.R), f)),
		G: float32(math.Lerp(float64(c.G), float64(other.G), f)),
		B: float32(math.Lerp(float64(c.B), float64(other.B), f)),
		A: float32(math.Lerp(float64(c.A), float64(other.A), f)),
	}
}

// RGB8 returns the colour as 8-bit channels, ignoring alpha.
func (c Color) RGB8() (r, g, b uint8) {
	return channel(c.R), channel(c.G), channel(c.B)
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func channel(v float32) uint8 {
	return uint8(math.Clamp(float64(v), 0, 1)*255 + 0.5)
}
