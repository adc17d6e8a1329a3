package geometry

import (
	"math"
	"math/rand"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

// Square is the unit square on the local z=0 plane, spanning [-0.5, 0.5] in
// x and y, with normal +Z.
type Square struct{}

// NewSquare creates a unit square
func NewSquare() *Square {
	return &Square{}
}

// IntersectLocal intersects a ray with the z=0 plane and accepts the hit
// only if it lands inside the unit square bounds.
func (s *Square) IntersectLocal(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	if math.Abs(ray.Direction.Z) < 1e-12 {
		return 0, core.Vec3{}, false
	}

	t := -ray.Origin.Z / ray.Direction.Z
	if t < tMin || t > tMax {
		return 0, core.Vec3{}, false
	}

	p := ray.At(t)
	if !inUnitSquare(p.X) || !inUnitSquare(p.Y) {
		return 0, core.Vec3{}, false
	}
	return t, core.NewVec3(0, 0, 1), true
}

// RandomPointOnSurface returns a uniform random point on the square.
func (s *Square) RandomPointOnSurface(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, 0)
}

func inUnitSquare(v float64) bool {
	return v >= -0.5 && v <= 0.5
}
