package world

import "fmt"

// Cell identifies the kind of a single voxel.
type Cell uint8

// Cell kinds. Void is the empty kind; every other kind is drawn as material.
const (
	Void Cell = iota
	Floor
	Rock
	Grass
	TallGrass
	ShortGrass
	Dirt
	Water

	cellCount
)

var cellNames = [cellCount]string{
	Void:       "void",
	Floor:      "floor",
	Rock:       "rock",
	Grass:      "grass",
	TallGrass:  "tall_grass",
	ShortGrass: "short_grass",
	Dirt:       "dirt",
	Water:      "water",
}

// String returns the configuration name of the cell kind.
func (c Cell) String() string {
	if c < cellCount {
		return cellNames[c]
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// IsVoid reports whether the cell is empty.
func (c Cell) IsVoid() bool {
	return c == Void
}

// Cells returns every cell kind in declaration order.
func Cells() []Cell {
	cells := make([]Cell, 0, cellCount)
	for c := Void; c < cellCount; c++ {
		cells = append(cells, c)
	}
	return cells
}

// surfaceCells is the ground cover set a terrain column can be topped with.
var surfaceCells = [...]Cell{Grass, TallGrass, ShortGrass, Dirt}

// SurfaceCells returns the ground cover kinds, picked uniformly per column.
func SurfaceCells() []Cell {
	return surfaceCells[:]
}

// ParseCell resolves a configuration name back to its cell kind.
func ParseCell(name string) (Cell, error) {
	for c, n := range cellNames {
		if n == name {
			return Cell(c), nil
		}
	}
	return Void, fmt.Errorf("%w: %q", ErrUnknownCell, name)
}
