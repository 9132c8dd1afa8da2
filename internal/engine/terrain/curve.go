package terrain

import (
	"fmt"
	"sort"

	"github.com/Faultbox/voxelview/pkg/math"
)

// ControlPoint maps a noise value to an elevation.
type ControlPoint struct {
	Noise     float64 `yaml:"noise"`
	Elevation float64 `yaml:"elevation"`
}

// Curve is a monotonic piecewise-linear mapping from noise to elevation.
type Curve struct {
	points []ControlPoint
}

// DefaultControlPoints returns the stock ocean-to-land profile.
func DefaultControlPoints() []ControlPoint {
	return []ControlPoint{
		{-1.0, 60}, // ocean floor
		{-0.8, 70},
		{-0.7, 80},
		{-0.6, 90}, // shore
		{-0.5, 95},
		{-0.4, 98}, // ocean/land border
		{0.0, 100}, // land
		{1.0, 100},
	}
}

// NewCurve validates points and builds a curve. Keys must be strictly
// increasing and values must not decrease.
func NewCurve(points []ControlPoint) (*Curve, error) {
	if len(points) < 2 {
		return nil, ErrCurvePoints
	}
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if cur.Noise <= prev.Noise {
			return nil, fmt.Errorf("%w: %v after %v", ErrCurveOrder, cur.Noise, prev.Noise)
		}
		if cur.Elevation < prev.Elevation {
			return nil, fmt.Errorf("%w: %v after %v", ErrCurveMonotonic, cur.Elevation, prev.Elevation)
		}
	}
	return &Curve{points: append([]ControlPoint(nil), points...)}, nil
}

// DefaultCurve returns the curve built from DefaultControlPoints.
func DefaultCurve() *Curve {
	c, err := NewCurve(DefaultControlPoints())
	if err != nil {
		panic(err)
	}
	return c
}

// Domain returns the smallest and largest key.
func (c *Curve) Domain() (lo, hi float64) {
	return c.points[0].Noise, c.points[len(c.points)-1].Noise
}

// Covers reports whether [lo, hi] lies inside the curve's domain.
func (c *Curve) Covers(lo, hi float64) bool {
	first, last := c.Domain()
	return first <= lo && hi <= last
}

// Points returns a copy of the control points.
func (c *Curve) Points() []ControlPoint {
	return append([]ControlPoint(nil), c.points...)
}

// Sample interpolates linearly between the two control points bracketing v.
// Values outside the domain take the nearest end value.
func (c *Curve) Sample(v float64) float64 {
	first, last := c.points[0], c.points[len(c.points)-1]
	if v <= first.Noise {
		return first.Elevation
	}
	if v >= last.Noise {
		return last.Elevation
	}

	// First point with a key above v; v lies between i-1 and i.
	i := sort.Search(len(c.points), func(i int) bool {
		return c.points[i].Noise > v
	})
	a, b := c.points[i-1], c.points[i]
	t := (v - a.Noise) / (b.Noise - a.Noise)
	return math.Lerp(a.Elevation, b.Elevation, t)
}
