package terrain

import "github.com/Faultbox/voxelview/internal/game/world"

// FlatBuilder fills the lower half of every column with a single kind.
type FlatBuilder struct {
	Cell world.Cell
}

// NewFlatBuilder returns a builder that lays a Floor.
func NewFlatBuilder() FlatBuilder {
	return FlatBuilder{Cell: world.Floor}
}

// Build fills z in [0, size.Z/2) and leaves the rest Void.
func (b FlatBuilder) Build(m *world.Map) *world.Map {
	fill := b.Cell
	if fill == world.Void {
		fill = world.Floor
	}

	size := m.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			for z := 0; z < size.Z/2; z++ {
				m.Set(x, y, z, fill)
			}
		}
	}
	return m
}
