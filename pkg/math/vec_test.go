package math

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{10, 20, -30}
	got := a.Add(b)
	want := Vec3{11, 18, -27}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Zero(t *testing.T) {
	if got := Zero(); got != (Vec3{}) {
		t.Errorf("Zero() = %v, want (0, 0, 0)", got)
	}
	if got := NewVec3(4, 5, 6); got != (Vec3{4, 5, 6}) {
		t.Errorf("NewVec3() = %v, want (4, 5, 6)", got)
	}
}

func TestVec3Volume(t *testing.T) {
	if got := NewVec3(10, 10, 4).Volume(); got != 400 {
		t.Errorf("Volume() = %d, want 400", got)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t float64
		want    float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{60, 70, 0.5, 65},
		{100, 100, 0.3, 100},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1.5, -0.99, 0.99); got != 0.99 {
		t.Errorf("Clamp(1.5) = %v, want 0.99", got)
	}
	if got := Clamp(-3, -0.99, 0.99); got != -0.99 {
		t.Errorf("Clamp(-3) = %v, want -0.99", got)
	}
	if got := Clamp(0.25, -0.99, 0.99); got != 0.25 {
		t.Errorf("Clamp(0.25) = %v, want 0.25", got)
	}
}

func TestRoundInt(t *testing.T) {
	tests := map[float64]int{
		97.5:  98,
		97.49: 97,
		-0.5:  -1,
		60:    60,
	}
	for in, want := range tests {
		if got := RoundInt(in); got != want {
			t.Errorf("RoundInt(%v) = %d, want %d", in, got, want)
		}
	}
}
