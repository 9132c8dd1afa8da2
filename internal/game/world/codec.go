package world

import "github.com/Faultbox/voxelview/pkg/math"

// Codec maps grid coordinates to flat storage indices and back.
//
// Layout is x fastest, then y, then z:
//
//	i = z*X*Y + y*X + x
//
// so a horizontal layer occupies one contiguous run of X*Y slots.
type Codec struct {
	Size math.Vec3
}

// Index returns the flat index of (x, y, z). The coordinate must be in range.
func (c Codec) Index(x, y, z int) int {
	return z*c.Size.X*c.Size.Y + y*c.Size.X + x
}

// Coord returns the coordinate stored at flat index i.
func (c Codec) Coord(i int) math.Vec3 {
	layer := c.Size.X * c.Size.Y
	z := i / layer
	r := i - z*layer
	return math.Vec3{X: r % c.Size.X, Y: r / c.Size.X, Z: z}
}

// Contains reports whether (x, y, z) lies inside the extent.
func (c Codec) Contains(x, y, z int) bool {
	return x >= 0 && x < c.Size.X &&
		y >= 0 && y < c.Size.Y &&
		z >= 0 && z < c.Size.Z
}
