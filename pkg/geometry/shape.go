package geometry

import (
	"math/rand"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

// Shape is a primitive in its canonical local space; all placement and
// scaling comes from the owning object's transform.
type Shape interface {
	// IntersectLocal finds the nearest root of the local-space ray within
	// [tMin, tMax]. The returned normal is local-space and unit length for
	// unscaled geometry; the caller owns the world-space conversion.
	IntersectLocal(ray core.Ray, tMin, tMax float64) (t float64, normal core.Vec3, ok bool)

	// RandomPointOnSurface returns a uniformly distributed local-space point
	// on the shape's surface, used when sampling emissive area lights.
	RandomPointOnSurface(random *rand.Rand) core.Vec3
}
