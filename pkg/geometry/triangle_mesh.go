package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/udhos/gwob"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

// TriangleMesh is a bag of local-space triangles. Intersection is a linear
// scan over every triangle, nearest root wins.
type TriangleMesh struct {
	Triangles []Triangle

	// cumulativeArea[i] is the total area of Triangles[0..i], used for
	// area-weighted surface sampling.
	cumulativeArea []float64
	totalArea      float64
}

// NewTriangleMesh creates a mesh from the given triangles
func NewTriangleMesh(triangles []Triangle) *TriangleMesh {
	mesh := &TriangleMesh{Triangles: triangles}
	mesh.cumulativeArea = make([]float64, len(triangles))
	for i, tri := range triangles {
		mesh.totalArea += tri.Area()
		mesh.cumulativeArea[i] = mesh.totalArea
	}
	return mesh
}

// LoadTriangleMesh reads a Wavefront OBJ file and builds a mesh from its
// triangulated faces.
func LoadTriangleMesh(path string) (*TriangleMesh, error) {
	obj, err := gwob.NewObjFromFile(path, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh %s: %w", path, err)
	}

	stride := obj.StrideSize / 4
	offset := obj.StrideOffsetPosition / 4
	vertex := func(index int) core.Vec3 {
		base := index*stride + offset
		return core.NewVec3(
			float64(obj.Coord[base]),
			float64(obj.Coord[base+1]),
			float64(obj.Coord[base+2]),
		)
	}

	triangles := make([]Triangle, 0, len(obj.Indices)/3)
	for i := 0; i+2 < len(obj.Indices); i += 3 {
		triangles = append(triangles, NewTriangle(
			vertex(obj.Indices[i]),
			vertex(obj.Indices[i+1]),
			vertex(obj.Indices[i+2]),
		))
	}
	return NewTriangleMesh(triangles), nil
}

// IntersectLocal tests every triangle and keeps the nearest hit in
// [tMin, tMax].
func (m *TriangleMesh) IntersectLocal(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	closest := tMax
	var normal core.Vec3
	found := false

	for _, tri := range m.Triangles {
		if t, ok := tri.Intersect(ray, tMin, closest); ok {
			closest = t
			normal = tri.Normal()
			found = true
		}
	}
	if !found {
		return 0, core.Vec3{}, false
	}
	return closest, normal, true
}

// RandomPointOnSurface picks a triangle weighted by area, then a uniform
// barycentric point on it.
func (m *TriangleMesh) RandomPointOnSurface(random *rand.Rand) core.Vec3 {
	if len(m.Triangles) == 0 || m.totalArea == 0 {
		return core.Vec3{}
	}

	target := random.Float64() * m.totalArea
	tri := m.Triangles[len(m.Triangles)-1]
	for i, cumulative := range m.cumulativeArea {
		if target <= cumulative {
			tri = m.Triangles[i]
			break
		}
	}

	// Uniform barycentric sample via the square-root trick
	su := math.Sqrt(random.Float64())
	v := random.Float64()
	return tri.V0.Multiply(1 - su).
		Add(tri.V1.Multiply(su * (1 - v))).
		Add(tri.V2.Multiply(su * v))
}
