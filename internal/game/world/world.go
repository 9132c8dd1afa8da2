// Package world holds the voxel map: a dense grid of typed cells and the
// builder protocol that fills it.
package world

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/Faultbox/voxelview/pkg/math"
)

// MaxCells bounds the number of cells a single map may hold.
const MaxCells = 1 << 30

// Map errors.
var (
	ErrInvalidSize = errors.New("map dimensions must be positive")
	ErrTooLarge    = errors.New("map too large")
	ErrUnknownCell = errors.New("unknown cell kind")
)

// Builder fills a freshly allocated map with terrain.
//
// Build takes ownership of m and returns the populated map, which may be m
// itself.
type Builder interface {
	Build(m *Map) *Map
}

// Map is a dense 3D grid of cells stored in one contiguous slice.
//
// A map is written by exactly one builder and treated as read-only after
// ApplyBuild returns. It is not safe for concurrent mutation; builders that
// parallelise must write disjoint columns.
type Map struct {
	codec Codec
	cells []Cell
}

// New allocates a Void-filled map of x*y*z cells.
func New(x, y, z int) (*Map, error) {
	if x <= 0 || y <= 0 || z <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidSize, x, y, z)
	}
	if x > MaxCells/y || x*y > MaxCells/z {
		return nil, fmt.Errorf("%w: %dx%dx%d exceeds %d cells", ErrTooLarge, x, y, z, MaxCells)
	}

	size := math.NewVec3(x, y, z)
	return &Map{
		codec: Codec{Size: size},
		cells: make([]Cell, size.Volume()), // Void is the zero value
	}, nil
}

// MustNew is New for sizes known to be valid. It panics on error.
func MustNew(x, y, z int) *Map {
	m, err := New(x, y, z)
	if err != nil {
		panic(err)
	}
	return m
}

// Size returns the map extent.
func (m *Map) Size() math.Vec3 {
	return m.codec.Size
}

// Len returns the number of cells.
func (m *Map) Len() int {
	return len(m.cells)
}

// Set writes cell at (x, y, z). It panics if the coordinate is out of bounds.
func (m *Map) Set(x, y, z int, cell Cell) {
	if !m.codec.Contains(x, y, z) {
		panic(fmt.Sprintf("world: cell (%d, %d, %d) out of bounds for size %s", x, y, z, m.codec.Size))
	}
	m.cells[m.codec.Index(x, y, z)] = cell
}

// Get returns the cell at (x, y, z). The second result is false when any
// component is negative or not less than the matching size component.
func (m *Map) Get(x, y, z int) (Cell, bool) {
	if !m.codec.Contains(x, y, z) {
		return Void, false
	}
	return m.cells[m.codec.Index(x, y, z)], true
}

// Column returns a copy of the vertical column at (x, y), bottom first.
// It returns nil for a column outside the map.
func (m *Map) Column(x, y int) []Cell {
	if !m.codec.Contains(x, y, 0) {
		return nil
	}
	col := make([]Cell, m.codec.Size.Z)
	for z := range col {
		col[z] = m.cells[m.codec.Index(x, y, z)]
	}
	return col
}

// ApplyBuild hands the map to b and returns its output. The receiver must
// not be used after the call.
func (m *Map) ApplyBuild(b Builder) *Map {
	return b.Build(m)
}

// Counts returns the number of cells of each kind.
func (m *Map) Counts() map[Cell]int {
	counts := make(map[Cell]int)
	for _, c := range m.cells {
		counts[c]++
	}
	return counts
}

// Fingerprint returns a 64-bit digest of the map size and contents.
func (m *Map) Fingerprint() uint64 {
	d := xxhash.New()
	var hdr [24]byte
	binary.LittleEndian.PutUint64(hdr[0:], uint64(m.codec.Size.X))
	binary.LittleEndian.PutUint64(hdr[8:], uint64(m.codec.Size.Y))
	binary.LittleEndian.PutUint64(hdr[16:], uint64(m.codec.Size.Z))
	_, _ = d.Write(hdr[:])

	buf := make([]byte, 0, 4096)
	for _, c := range m.cells {
		buf = append(buf, byte(c))
		if len(buf) == cap(buf) {
			_, _ = d.Write(buf)
			buf = buf[:0]
		}
	}
	_, _ = d.Write(buf)
	return d.Sum64()
}
