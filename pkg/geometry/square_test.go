package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

func TestSquare_IntersectLocal(t *testing.T) {
	square := NewSquare()

	tests := []struct {
		name      string
		origin    core.Vec3
		expectHit bool
	}{
		{"center hit", core.NewVec3(0, 0, 2), true},
		{"corner hit", core.NewVec3(0.5, 0.5, 2), true},
		{"outside x bounds", core.NewVec3(0.6, 0, 2), false},
		{"outside y bounds", core.NewVec3(0, -0.51, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, -1))
			gotT, _, ok := square.IntersectLocal(ray, 0.001, math.Inf(1))
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.expectHit, ok)
			}
			if ok && math.Abs(gotT-2) > 1e-9 {
				t.Errorf("Expected t=2, got t=%f", gotT)
			}
		})
	}
}

func TestSquare_RandomPointOnSurface(t *testing.T) {
	square := NewSquare()
	random := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		p := square.RandomPointOnSurface(random)
		if p.X < -0.5 || p.X > 0.5 || p.Y < -0.5 || p.Y > 0.5 || p.Z != 0 {
			t.Fatalf("Surface point %v is outside the unit square", p)
		}
	}
}
