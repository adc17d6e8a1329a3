package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

// Transform holds an object's placement in the world: position, Euler
// rotation in degrees, and per-axis scale. The world matrix, its inverse and
// its inverse transpose are computed once at construction.
type Transform struct {
	Position core.Vec3
	Rotation core.Vec3 // degrees
	Scale    core.Vec3

	world        mgl64.Mat4
	inverse      mgl64.Mat4
	invTranspose mgl64.Mat4
}

// NewTransform creates a transform from position, rotation (degrees) and scale.
// World matrix composition is T * Rz * Ry * Rx * S.
func NewTransform(position, rotationDegrees, scale core.Vec3) Transform {
	rx := mgl64.HomogRotate3DX(mgl64.DegToRad(rotationDegrees.X))
	ry := mgl64.HomogRotate3DY(mgl64.DegToRad(rotationDegrees.Y))
	rz := mgl64.HomogRotate3DZ(mgl64.DegToRad(rotationDegrees.Z))
	rotation := rz.Mul4(ry).Mul4(rx)

	world := mgl64.Translate3D(position.X, position.Y, position.Z).
		Mul4(rotation).
		Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z))
	inverse := world.Inv()

	return Transform{
		Position:     position,
		Rotation:     rotationDegrees,
		Scale:        scale,
		world:        world,
		inverse:      inverse,
		invTranspose: inverse.Transpose(),
	}
}

// IdentityTransform returns a transform that leaves geometry in place.
func IdentityTransform() Transform {
	return NewTransform(core.Vec3{}, core.Vec3{}, core.NewVec3(1, 1, 1))
}

// RayToLocal transforms a world-space ray into the object's local space.
// The direction is deliberately not renormalized so that a local-space t
// equals the world-space t along the original ray.
func (tr *Transform) RayToLocal(ray core.Ray) core.Ray {
	o := tr.inverse.Mul4x1(mgl64.Vec4{ray.Origin.X, ray.Origin.Y, ray.Origin.Z, 1})
	d := tr.inverse.Mul4x1(mgl64.Vec4{ray.Direction.X, ray.Direction.Y, ray.Direction.Z, 0})
	return core.NewRay(core.Vec3{X: o[0], Y: o[1], Z: o[2]}, core.Vec3{X: d[0], Y: d[1], Z: d[2]})
}

// PointToWorld transforms a local-space point into world space.
func (tr *Transform) PointToWorld(p core.Vec3) core.Vec3 {
	w := tr.world.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return core.Vec3{X: w[0], Y: w[1], Z: w[2]}
}

// NormalToWorld transforms a local-space surface normal into world space
// using the inverse transpose of the world matrix. The multiply leaves a
// spurious w component that would corrupt normalization, so it is forced
// back to 0 before the result is renormalized.
func (tr *Transform) NormalToWorld(n core.Vec3) core.Vec3 {
	w := tr.invTranspose.Mul4x1(mgl64.Vec4{n.X, n.Y, n.Z, 0})
	return core.Vec3{X: w[0], Y: w[1], Z: w[2]}.Normalize()
}
