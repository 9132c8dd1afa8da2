package palette

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#000000", Black},
		{"ffffff", White},
		{"#008b8b", DarkCyan},
		{"#FFA07A", LightSalmon},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#fff", "#gggggg", "#1234567"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", in, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []Color{Gray30, Brown4, WhiteSmoke, Yellow} {
		back, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", c.Hex(), err)
		}
		if back.Hex() != c.Hex() {
			t.Errorf("round trip %s -> %s", c.Hex(), back.Hex())
		}
	}
}

func TestLerp(t *testing.T) {
	if got := White.Lerp(Black, 0); got != White {
		t.Errorf("Lerp(0) = %v, want %v", got, White)
	}
	if got := White.Lerp(Black, 1); got != Black {
		t.Errorf("Lerp(1) = %v, want %v", got, Black)
	}

	mid := RGB(0, 0, 0).Lerp(RGB(200, 100, 50), 0.5)
	r, g, b := mid.RGB8()
	if r != 100 || g != 50 || b != 25 {
		t.Errorf("Lerp(0.5).RGB8() = (%d, %d, %d), want (100, 50, 25)", r, g, b)
	}
}

func TestRGB8Clamps(t *testing.T) {
	c := Color{R: 1.5, G: -0.2, B: 0.5, A: 1}
	r, g, b := c.RGB8()
	if r != 255 || g != 0 || b != 128 {
		t.Errorf("RGB8() = (%d, %d, %d), want (255, 0, 128)", r, g, b)
	}
}
