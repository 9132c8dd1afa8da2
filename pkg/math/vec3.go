// Package math provides the small integer and scalar helpers shared by the engine.
package math

import "fmt"

// Vec3 is an integer 3D vector. It doubles as a grid extent, a cell
// coordinate and a camera offset.
type Vec3 struct {
	X, Y, Z int
}

// NewVec3 returns a vector with the given components.
func NewVec3(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero returns the zero vector.
func Zero() Vec3 {
	return Vec3{}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Volume returns X*Y*Z.
func (v Vec3) Volume() int {
	return v.X * v.Y * v.Z
}

// String returns the vector as "(x, y, z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}
