package terrain

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Faultbox/voxelview/internal/game/world"
)

// fieldFunc adapts a function to Field.
type fieldFunc func(x, y float64) float64

func (f fieldFunc) At(x, y float64) float64 { return f(x, y) }

// rampField yields noise values spanning the whole curve across x.
func rampField(width int) Field {
	return fieldFunc(func(x, y float64) float64 {
		return -1 + 2*x/float64(width-1) + 0.01*y
	})
}

func testConfig() NoiseConfig {
	cfg := DefaultNoiseConfig()
	cfg.Scale = 1
	cfg.Workers = 1
	return cfg
}

func isSurface(c world.Cell) bool {
	for _, s := range world.SurfaceCells() {
		if c == s {
			return true
		}
	}
	return false
}

func TestFlatBuilder(t *testing.T) {
	m := world.MustNew(10, 10, 4).ApplyBuild(NewFlatBuilder())

	for z := 0; z < 4; z++ {
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				c, _ := m.Get(x, y, z)
				want := world.Void
				if z < 2 {
					want = world.Floor
				}
				if c != want {
					t.Fatalf("Get(%d, %d, %d) = %s, want %s", x, y, z, c, want)
				}
			}
		}
	}
}

func TestFlatBuilderZeroValue(t *testing.T) {
	m := world.MustNew(2, 2, 2).ApplyBuild(FlatBuilder{})
	if c, _ := m.Get(0, 0, 0); c != world.Floor {
		t.Errorf("zero FlatBuilder laid %s, want floor", c)
	}
}

func TestColumnCellBranches(t *testing.T) {
	const water = 95

	tests := []struct {
		name string
		z, e int
		want world.Cell
	}{
		{"rock deep below surface", 10, 100, world.Rock},
		{"surface just below elevation", 99, 100, world.Grass},
		{"void above land", 100, 100, world.Void},
		{"water on sea floor", 70, 70, world.Water},
		{"water at water level", 95, 70, world.Water},
		{"void above water", 96, 70, world.Void},
		{"surface under water", 69, 70, world.Grass},
		{"rock under sea floor", 68, 70, world.Rock},
		{"surface above water level", 96, 97, world.Grass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColumnCell(tt.z, tt.e, water, world.Grass); got != tt.want {
				t.Errorf("ColumnCell(%d, %d) = %s, want %s", tt.z, tt.e, got, tt.want)
			}
		})
	}
}

func TestColumnCellExhaustive(t *testing.T) {
	const water = 95
	for e := 0; e <= 120; e++ {
		for z := 0; z < 130; z++ {
			isWater := z <= water && z >= e
			isSurf := !isWater && z == e-1
			isRock := !isWater && !isSurf && z < e
			isVoid := !isWater && !isSurf && !isRock

			n := 0
			for _, b := range []bool{isWater, isSurf, isRock, isVoid} {
				if b {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("z=%d e=%d matched %d branches", z, e, n)
			}

			got := ColumnCell(z, e, water, world.Dirt)
			switch {
			case isWater && got != world.Water,
				isSurf && got != world.Dirt,
				isRock && got != world.Rock,
				isVoid && got != world.Void:
				t.Fatalf("ColumnCell(%d, %d) = %s", z, e, got)
			}
		}
	}
}

func TestNoiseBuilderLayering(t *testing.T) {
	const w, d, h = 24, 3, 110

	b, err := NewNoiseBuilder(testConfig(), WithField(rampField(w)))
	if err != nil {
		t.Fatalf("NewNoiseBuilder() error: %v", err)
	}
	m := world.MustNew(w, d, h).ApplyBuild(b)

	sawWater := false
	for y := 0; y < d; y++ {
		for x := 0; x < w; x++ {
			e := b.Elevation(x, y)
			if e < 60 || e > 100 {
				t.Fatalf("Elevation(%d, %d) = %d, outside curve range", x, y, e)
			}
			col := m.Column(x, y)
			for z, c := range col {
				switch {
				case z <= b.WaterLevel() && z >= e:
					sawWater = true
					if c != world.Water {
						t.Fatalf("(%d, %d, %d) = %s, want water", x, y, z, c)
					}
				case z == e-1:
					if !isSurface(c) {
						t.Fatalf("(%d, %d, %d) = %s, want a surface kind", x, y, z, c)
					}
				case z < e:
					if c != world.Rock {
						t.Fatalf("(%d, %d, %d) = %s, want rock", x, y, z, c)
					}
				default:
					if c != world.Void {
						t.Fatalf("(%d, %d, %d) = %s, want void", x, y, z, c)
					}
				}
			}
		}
	}
	if !sawWater {
		t.Error("ramp field should produce at least one flooded column")
	}
}

func TestNoiseBuilderDeterministic(t *testing.T) {
	const w, d, h = 12, 12, 104

	build := func(pickSeed int64) *world.Map {
		b, err := NewNoiseBuilder(testConfig(),
			WithPicker(NewRandPicker(rand.New(rand.NewSource(pickSeed)))))
		if err != nil {
			t.Fatalf("NewNoiseBuilder() error: %v", err)
		}
		return world.MustNew(w, d, h).ApplyBuild(b)
	}

	first, second := build(1), build(2)
	for y := 0; y < d; y++ {
		for x := 0; x < w; x++ {
			a, b := first.Column(x, y), second.Column(x, y)
			for z := range a {
				if isSurface(a[z]) && isSurface(b[z]) {
					continue
				}
				if a[z] != b[z] {
					t.Fatalf("(%d, %d, %d): %s vs %s", x, y, z, a[z], b[z])
				}
			}
		}
	}

	// Same picker seed reproduces the map exactly.
	if build(7).Fingerprint() != build(7).Fingerprint() {
		t.Error("identical seeds produced different maps")
	}
}

func TestNoiseBuilderParallelMatchesSequential(t *testing.T) {
	const w, d, h = 20, 37, 102

	build := func(workers int) *world.Map {
		cfg := DefaultNoiseConfig()
		cfg.Scale = 10
		b, err := NewNoiseBuilder(cfg, WithWorkers(workers))
		if err != nil {
			t.Fatalf("NewNoiseBuilder() error: %v", err)
		}
		return world.MustNew(w, d, h).ApplyBuild(b)
	}

	seq, par := build(1), build(4)
	if seq.Fingerprint() != par.Fingerprint() {
		t.Error("parallel build differs from sequential build")
	}
}

func TestNoiseBuilderRejectsNarrowCurve(t *testing.T) {
	cfg := testConfig()
	cfg.Curve = []ControlPoint{{-0.5, 60}, {1, 100}}
	if _, err := NewNoiseBuilder(cfg); !errors.Is(err, ErrCurveDomain) {
		t.Errorf("NewNoiseBuilder() error = %v, want ErrCurveDomain", err)
	}

	cfg.Curve = []ControlPoint{{1, 60}, {-1, 100}}
	if _, err := NewNoiseBuilder(cfg); !errors.Is(err, ErrCurveOrder) {
		t.Errorf("NewNoiseBuilder() error = %v, want ErrCurveOrder", err)
	}
}

func TestNoiseBuilderRejectsBadScale(t *testing.T) {
	cfg := testConfig()
	cfg.Scale = 0
	if _, err := NewNoiseBuilder(cfg); err == nil {
		t.Error("expected error for zero scale")
	}
}

func TestNewBuilder(t *testing.T) {
	if b, err := NewBuilder(BuilderFlat, DefaultNoiseConfig()); err != nil || b == nil {
		t.Errorf("NewBuilder(flat) = %v, %v", b, err)
	}
	if b, err := NewBuilder(BuilderNoise, DefaultNoiseConfig()); err != nil || b == nil {
		t.Errorf("NewBuilder(noise) = %v, %v", b, err)
	}
	if _, err := NewBuilder("caves", DefaultNoiseConfig()); !errors.Is(err, ErrUnknownBuilder) {
		t.Errorf("NewBuilder(caves) error = %v, want ErrUnknownBuilder", err)
	}
}

func TestDefaultNoiseConfigSpansCurve(t *testing.T) {
	const w, d = 500, 500

	b, err := NewNoiseBuilder(DefaultNoiseConfig())
	if err != nil {
		t.Fatalf("NewNoiseBuilder() error: %v", err)
	}

	flooded, dry := 0, 0
	lowest, highest := 1<<31-1, -1
	for y := 0; y < d; y++ {
		for x := 0; x < w; x++ {
			e := b.Elevation(x, y)
			if e <= b.WaterLevel() {
				flooded++
			} else {
				dry++
			}
			lowest = min(lowest, e)
			highest = max(highest, e)
		}
	}

	total := w * d
	if flooded*100 < total {
		t.Errorf("flooded columns = %d/%d, want at least 1%%", flooded, total)
	}
	if dry*100 < total {
		t.Errorf("dry columns = %d/%d, want at least 1%%", dry, total)
	}
	if lowest >= b.WaterLevel()-5 {
		t.Errorf("lowest elevation = %d, want seabed well below water level %d", lowest, b.WaterLevel())
	}
	if highest <= b.WaterLevel() {
		t.Errorf("highest elevation = %d, want land above water level %d", highest, b.WaterLevel())
	}
}

func TestDomainOffset(t *testing.T) {
	for _, seed := range []int64{0, 1, 489, -7} {
		x, y := DomainOffset(seed)
		if x < 0 || x >= latticePeriod || y < 0 || y >= latticePeriod {
			t.Errorf("DomainOffset(%d) = (%v, %v), outside [0, %d)", seed, x, y, latticePeriod)
		}
		if x2, y2 := DomainOffset(seed); x2 != x || y2 != y {
			t.Errorf("DomainOffset(%d) not deterministic", seed)
		}
	}

	x1, y1 := DomainOffset(1)
	x2, y2 := DomainOffset(2)
	if x1 == x2 && y1 == y2 {
		t.Error("different seeds share a domain offset")
	}
}
