package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomCosineDirection_UnitLengthInHemisphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, -1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < 200; i++ {
			dir := RandomCosineDirection(normal, random)

			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("normal %v: expected unit direction, got length %f", normal, dir.Length())
			}
			if dir.Dot(normal) < 0 {
				t.Fatalf("normal %v: direction %v is below the surface", normal, dir)
			}
		}
	}
}

// For a cosine-weighted hemisphere the expected cosine to the normal is 2/3.
func TestRandomCosineDirection_CosineWeighted(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	normal := NewVec3(0, 0, 1)

	const samples = 20000
	sum := 0.0
	for i := 0; i < samples; i++ {
		sum += RandomCosineDirection(normal, random).Dot(normal)
	}
	mean := sum / samples

	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine ~0.667, got %f", mean)
	}
}

func TestRandomCosineDirection_PoleAlignedNormals(t *testing.T) {
	// Identical seeds: the +Y normal must return the canonical sample
	// unchanged and the -Y normal its exact negation.
	up := RandomCosineDirection(NewVec3(0, 1, 0), rand.New(rand.NewSource(3)))
	down := RandomCosineDirection(NewVec3(0, -1, 0), rand.New(rand.NewSource(3)))

	if up != down.Negate() {
		t.Errorf("Expected mirrored samples for opposed pole normals, got %v and %v", up, down)
	}
	if up.Y <= 0 {
		t.Errorf("Sample around +Y should point up, got %v", up)
	}
}
