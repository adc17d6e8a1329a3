package material

import (
	"math"
	"testing"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

func TestShadeBlinnPhong_HeadOnDiffuse(t *testing.T) {
	mat := NewMaterial(core.NewVec3(1, 0, 0), core.Vec3{}, core.Vec3{}, 0, 100)

	point := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)
	lightLoc := core.NewVec3(0, 5, 0)
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))

	got := mat.ShadeBlinnPhong(ray, point, normal, lightLoc, core.NewVec3(1, 1, 1))

	// Light directly along the normal: diffuse at full strength, red only
	if math.Abs(got.X-1) > 1e-9 || got.Y != 0 || got.Z != 0 {
		t.Errorf("Expected (1,0,0), got %v", got)
	}
}

func TestShadeBlinnPhong_LightBehindSurface(t *testing.T) {
	mat := NewMaterial(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), core.Vec3{}, 0, 100)

	point := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)
	lightLoc := core.NewVec3(0, -5, 0)
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))

	got := mat.ShadeBlinnPhong(ray, point, normal, lightLoc, core.NewVec3(1, 1, 1))

	// max(0, ...) zeroes the diffuse term; the half vector also falls below
	// the horizon here
	if got.X > 1e-9 || got.Y > 1e-9 || got.Z > 1e-9 {
		t.Errorf("Expected black for a light behind the surface, got %v", got)
	}
}

func TestShadeBlinnPhong_SpecularHighlight(t *testing.T) {
	mat := NewMaterial(core.Vec3{}, core.NewVec3(1, 1, 1), core.Vec3{}, 0, 50)

	point := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)
	lightLoc := core.NewVec3(1, 1, 0)

	// Eye placed at the mirror direction of the light: half vector equals the
	// normal, specular term peaks at ks
	mirrorEye := core.NewVec3(-1, 1, 0)
	ray := core.NewRay(mirrorEye, point.Subtract(mirrorEye).Normalize())
	peak := mat.ShadeBlinnPhong(ray, point, normal, lightLoc, core.NewVec3(1, 1, 1))

	if math.Abs(peak.X-1) > 1e-9 {
		t.Errorf("Expected peak specular 1, got %f", peak.X)
	}

	// Eye well off the mirror direction: tight exponent kills the highlight
	offEye := core.NewVec3(-5, 0.3, 0)
	offRay := core.NewRay(offEye, point.Subtract(offEye).Normalize())
	off := mat.ShadeBlinnPhong(offRay, point, normal, lightLoc, core.NewVec3(1, 1, 1))

	if off.X > 0.05 {
		t.Errorf("Expected negligible specular off the mirror direction, got %f", off.X)
	}
}

func TestShadeBlinnPhong_LightColorScales(t *testing.T) {
	mat := NewMaterial(core.NewVec3(1, 1, 1), core.Vec3{}, core.Vec3{}, 0, 100)

	point := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)
	lightLoc := core.NewVec3(0, 5, 0)
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))

	dim := mat.ShadeBlinnPhong(ray, point, normal, lightLoc, core.NewVec3(0.25, 0.25, 0.25))
	if math.Abs(dim.X-0.25) > 1e-9 {
		t.Errorf("Expected intensity-scaled 0.25, got %f", dim.X)
	}
}
