package geometry

import (
	"math"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

// Triangle is a single triangle in mesh-local space.
type Triangle struct {
	V0, V1, V2 core.Vec3
}

// NewTriangle creates a triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2}
}

// Normal returns the geometric normal of the triangle.
func (tri Triangle) Normal() core.Vec3 {
	e1 := tri.V1.Subtract(tri.V0)
	e2 := tri.V2.Subtract(tri.V0)
	return e1.Cross(e2).Normalize()
}

// Area returns the triangle's area.
func (tri Triangle) Area() float64 {
	e1 := tri.V1.Subtract(tri.V0)
	e2 := tri.V2.Subtract(tri.V0)
	return e1.Cross(e2).Length() * 0.5
}

// Intersect runs the Möller–Trumbore test against the local-space ray.
// Degenerate (zero-area) triangles fail the determinant check and simply
// report a miss.
func (tri Triangle) Intersect(ray core.Ray, tMin, tMax float64) (float64, bool) {
	e1 := tri.V1.Subtract(tri.V0)
	e2 := tri.V2.Subtract(tri.V0)

	p := ray.Direction.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < 1e-12 {
		return 0, false
	}
	invDet := 1.0 / det

	s := ray.Origin.Subtract(tri.V0)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := ray.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * invDet
	if t < tMin || t > tMax {
		return 0, false
	}
	return t, true
}
