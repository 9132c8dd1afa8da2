package terrain

import (
	"errors"
	"testing"
)

func TestCurveSampleControlPoints(t *testing.T) {
	c := DefaultCurve()
	for _, p := range DefaultControlPoints() {
		if got := c.Sample(p.Noise); got != p.Elevation {
			t.Errorf("Sample(%v) = %v, want %v", p.Noise, got, p.Elevation)
		}
	}
}

func TestCurveSampleInterpolates(t *testing.T) {
	c := DefaultCurve()

	tests := []struct {
		in, want float64
	}{
		{-0.9, 65},
		{-0.45, 96.5},
		{-0.2, 99},
		{0.5, 100},
	}
	for _, tt := range tests {
		got := c.Sample(tt.in)
		if d := got - tt.want; d > 1e-9 || d < -1e-9 {
			t.Errorf("Sample(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCurveSampleClamps(t *testing.T) {
	c := DefaultCurve()
	if got := c.Sample(-5); got != 60 {
		t.Errorf("Sample(-5) = %v, want 60", got)
	}
	if got := c.Sample(5); got != 100 {
		t.Errorf("Sample(5) = %v, want 100", got)
	}
}

func TestCurveSampleMonotonic(t *testing.T) {
	c := DefaultCurve()
	prev := c.Sample(-1)
	for v := -1.0; v <= 1.0; v += 0.01 {
		cur := c.Sample(v)
		if cur < prev {
			t.Fatalf("Sample(%v) = %v dropped below %v", v, cur, prev)
		}
		prev = cur
	}
}

func TestNewCurveErrors(t *testing.T) {
	tests := []struct {
		name   string
		points []ControlPoint
		want   error
	}{
		{"empty", nil, ErrCurvePoints},
		{"single", []ControlPoint{{0, 1}}, ErrCurvePoints},
		{"unordered", []ControlPoint{{0, 1}, {-1, 2}}, ErrCurveOrder},
		{"duplicate key", []ControlPoint{{0, 1}, {0, 2}}, ErrCurveOrder},
		{"decreasing", []ControlPoint{{-1, 5}, {1, 4}}, ErrCurveMonotonic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCurve(tt.points); !errors.Is(err, tt.want) {
				t.Errorf("NewCurve() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCurveCovers(t *testing.T) {
	c := DefaultCurve()
	if !c.Covers(NoiseMin, NoiseMax) {
		t.Error("default curve must cover the clamped noise range")
	}

	narrow, err := NewCurve([]ControlPoint{{-0.5, 10}, {1, 20}})
	if err != nil {
		t.Fatalf("NewCurve() error: %v", err)
	}
	if narrow.Covers(NoiseMin, NoiseMax) {
		t.Error("narrow curve reported full coverage")
	}
}

func TestCurvePointsCopy(t *testing.T) {
	c := DefaultCurve()
	pts := c.Points()
	pts[0].Elevation = -1000
	if c.Sample(-1) != 60 {
		t.Error("Points() must return a copy")
	}
}
