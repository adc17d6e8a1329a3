package geometry

import (
	"math"
	"math/rand"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

// Sphere is the unit sphere centered at the local-space origin. Radius and
// position come from the owning object's transform.
type Sphere struct{}

// NewSphere creates a unit sphere
func NewSphere() *Sphere {
	return &Sphere{}
}

// IntersectLocal solves the quadratic for a ray against the unit sphere and
// returns the nearest root in [tMin, tMax].
func (s *Sphere) IntersectLocal(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	oc := ray.Origin

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - 1

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, core.Vec3{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return 0, core.Vec3{}, false
		}
	}

	// On the unit sphere the hit point is its own outward normal
	normal := ray.At(root).Normalize()
	return root, normal, true
}

// RandomPointOnSurface returns a uniform random point on the unit sphere.
func (s *Sphere) RandomPointOnSurface(random *rand.Rand) core.Vec3 {
	for {
		p := core.NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		if p.LengthSquared() > 1e-12 {
			return p.Normalize()
		}
	}
}
