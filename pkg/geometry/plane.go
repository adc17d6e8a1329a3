package geometry

import (
	"math"
	"math/rand"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

// Plane is the infinite z=0 plane in local space with normal +Z.
type Plane struct{}

// NewPlane creates a local z=0 plane
func NewPlane() *Plane {
	return &Plane{}
}

// IntersectLocal intersects a ray with the z=0 plane.
func (p *Plane) IntersectLocal(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	// Parallel rays never cross the plane
	if math.Abs(ray.Direction.Z) < 1e-12 {
		return 0, core.Vec3{}, false
	}

	t := -ray.Origin.Z / ray.Direction.Z
	if t < tMin || t > tMax {
		return 0, core.Vec3{}, false
	}
	return t, core.NewVec3(0, 0, 1), true
}

// RandomPointOnSurface returns the plane's local origin. An infinite plane
// has no uniform surface distribution; emissive planes are not a sensible
// area light, so the origin stands in as the sample point.
func (p *Plane) RandomPointOnSurface(random *rand.Rand) core.Vec3 {
	return core.Vec3{}
}
