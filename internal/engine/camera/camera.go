// Package camera provides the view offset used to pick the visible slice.
package camera

import "github.com/Faultbox/voxelview/pkg/math"

// Camera is a 3D offset into the map. X and Y pan the viewport; Z selects
// the layer being drawn.
//
// Only the input handler mutates a camera. It is not safe for concurrent use.
type Camera struct {
	offset math.Vec3
}

// New returns a camera at the origin.
func New() *Camera {
	return &Camera{}
}

// NewAtLayer returns a camera looking at layer z.
func NewAtLayer(z int) *Camera {
	return &Camera{offset: math.NewVec3(0, 0, z)}
}

// Offset returns the current offset.
func (c *Camera) Offset() math.Vec3 {
	return c.offset
}

// Layer returns the Z component of the offset.
func (c *Camera) Layer() int {
	return c.offset.Z
}

// Move adds delta to the offset. The offset is not clamped; moving past
// the map edge shows absent cells.
func (c *Camera) Move(delta math.Vec3) {
	c.offset = c.offset.Add(delta)
}

// Reset returns the camera to layer z with no pan.
func (c *Camera) Reset(z int) {
	c.offset = math.NewVec3(0, 0, z)
}
