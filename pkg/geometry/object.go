package geometry

import (
	"math/rand"

	"github.com/avik/go-recursive-raytracer/pkg/core"
	"github.com/avik/go-recursive-raytracer/pkg/material"
)

// Object wraps a primitive shape with a world transform, a material and a
// name. Objects are built during scene loading and immutable afterwards.
type Object struct {
	Name      string
	Transform Transform
	Material  material.Material
	Shape     Shape
}

// NewObject creates a scene object
func NewObject(name string, transform Transform, mat material.Material, shape Shape) *Object {
	return &Object{
		Name:      name,
		Transform: transform,
		Material:  mat,
		Shape:     shape,
	}
}

// Hit tests the world-space ray against this object. The ray is transformed
// into local space with the inverse of the world transform and delegated to
// the primitive. Only a root in [tMin, tMax] that is strictly closer than
// hit.T is accepted; on success the new T and the local-space normal are
// written into hit. On failure hit is left untouched.
func (o *Object) Hit(ray core.Ray, hit *HitResult, tMin, tMax float64) bool {
	localRay := o.Transform.RayToLocal(ray)
	t, normal, ok := o.Shape.IntersectLocal(localRay, tMin, tMax)
	if !ok || t >= hit.T {
		return false
	}
	hit.T = t
	hit.Normal = normal
	return true
}

// RandomPointOnSurface returns a world-space point on the object's surface.
func (o *Object) RandomPointOnSurface(random *rand.Rand) core.Vec3 {
	return o.Transform.PointToWorld(o.Shape.RandomPointOnSurface(random))
}
