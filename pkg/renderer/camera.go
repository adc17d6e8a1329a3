package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

// Camera generates primary rays through pixel centers. Position, rotation
// and field of view come from the scene file; Setup must be called after
// changing them to rebuild the cached rotation matrix.
type Camera struct {
	width, height int

	position        core.Vec3
	rotationDegrees core.Vec3
	fovYDegrees     float64

	rotation    mgl64.Mat4
	aspectRatio float64
	halfHeight  float64 // tan(fovY/2), viewport half-height at focal distance 1
}

// NewCamera creates a camera for the given image dimensions with defaults
// of the origin, no rotation and a 60 degree vertical field of view.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		width:       width,
		height:      height,
		fovYDegrees: 60,
	}
	c.Setup()
	return c
}

// SetPosition sets the camera's world-space position
func (c *Camera) SetPosition(position core.Vec3) {
	c.position = position
}

// SetRotationDegrees sets the camera's Euler rotation in degrees
func (c *Camera) SetRotationDegrees(rotation core.Vec3) {
	c.rotationDegrees = rotation
}

// SetFOVDegrees sets the vertical field of view in degrees
func (c *Camera) SetFOVDegrees(fovY float64) {
	c.fovYDegrees = fovY
}

// Setup rebuilds the cached rotation matrix and viewport extents.
func (c *Camera) Setup() {
	rx := mgl64.HomogRotate3DX(mgl64.DegToRad(c.rotationDegrees.X))
	ry := mgl64.HomogRotate3DY(mgl64.DegToRad(c.rotationDegrees.Y))
	rz := mgl64.HomogRotate3DZ(mgl64.DegToRad(c.rotationDegrees.Z))
	c.rotation = rz.Mul4(ry).Mul4(rx)

	c.aspectRatio = float64(c.width) / float64(c.height)
	c.halfHeight = math.Tan(mgl64.DegToRad(c.fovYDegrees) / 2)
}

// GetRay returns the primary ray through the center of pixel (i, j), with
// (0, 0) the top-left pixel. The camera looks down its local -Z axis.
func (c *Camera) GetRay(i, j int) core.Ray {
	x := (2*(float64(i)+0.5)/float64(c.width) - 1) * c.halfHeight * c.aspectRatio
	y := (1 - 2*(float64(j)+0.5)/float64(c.height)) * c.halfHeight

	dir := c.rotation.Mul4x1(mgl64.Vec4{x, y, -1, 0})
	direction := core.Vec3{X: dir[0], Y: dir[1], Z: dir[2]}.Normalize()
	return core.NewRay(c.position, direction)
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }
