package terrain

import (
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/Faultbox/voxelview/internal/game/world"
)

// SurfacePicker chooses the ground cover kind for a column.
type SurfacePicker interface {
	Pick(x, y int, choices []world.Cell) world.Cell
}

// HashPicker derives the choice from a hash of the seed and column, so the
// result does not depend on the order columns are generated in.
type HashPicker struct {
	Seed uint64
}

// Pick implements SurfacePicker.
func (p HashPicker) Pick(x, y int, choices []world.Cell) world.Cell {
	var b [24]byte
	binary.LittleEndian.PutUint64(b[0:], p.Seed)
	binary.LittleEndian.PutUint64(b[8:], uint64(x))
	binary.LittleEndian.PutUint64(b[16:], uint64(y))
	return choices[xxhash.Sum64(b[:])%uint64(len(choices))]
}

// RandPicker draws from a shared random source.
type RandPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandPicker wraps rng. A nil rng uses a time-seeded source.
func NewRandPicker(rng *rand.Rand) *RandPicker {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &RandPicker{rng: rng}
}

// Pick implements SurfacePicker.
func (p *RandPicker) Pick(_, _ int, choices []world.Cell) world.Cell {
	p.mu.Lock()
	defer p.mu.Unlock()
	return choices[p.rng.Intn(len(choices))]
}
