package geometry

import (
	"math"
	"testing"

	"github.com/avik/go-recursive-raytracer/pkg/core"
	"github.com/avik/go-recursive-raytracer/pkg/material"
)

func testMaterial() material.Material {
	return material.NewMaterial(
		core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), core.Vec3{}, 0, 100)
}

func TestObject_Hit_TransformedSphere(t *testing.T) {
	// Unit sphere moved to z=-5 and scaled to radius 2
	obj := NewObject("sphere",
		NewTransform(core.NewVec3(0, 0, -5), core.Vec3{}, core.NewVec3(2, 2, 2)),
		testMaterial(), NewSphere())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit := NewHitResult()
	if !obj.Hit(ray, &hit, 1e-4, math.Inf(1)) {
		t.Fatal("Expected hit, but got miss")
	}

	// Front of the scaled sphere is at z=-3, so world t must be 3
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected world t=3, got %f", hit.T)
	}
}

func TestObject_Hit_OnlyStrictlyCloserWins(t *testing.T) {
	near := NewObject("near",
		NewTransform(core.NewVec3(0, 0, -3), core.Vec3{}, core.NewVec3(1, 1, 1)),
		testMaterial(), NewSphere())
	far := NewObject("far",
		NewTransform(core.NewVec3(0, 0, -10), core.Vec3{}, core.NewVec3(1, 1, 1)),
		testMaterial(), NewSphere())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit := NewHitResult()

	if !near.Hit(ray, &hit, 1e-4, math.Inf(1)) {
		t.Fatal("Expected near sphere hit")
	}
	nearT := hit.T

	// The farther sphere intersects the ray but must not override the
	// accumulated closer hit
	if far.Hit(ray, &hit, 1e-4, math.Inf(1)) {
		t.Error("Far sphere should not report a hit past the accumulated t")
	}
	if hit.T != nearT {
		t.Errorf("HitResult mutated on failed hit: t changed from %f to %f", nearT, hit.T)
	}
}

func TestObject_Hit_NoMutationOnMiss(t *testing.T) {
	obj := NewObject("sphere", IdentityTransform(), testMaterial(), NewSphere())
	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 1, 0))

	hit := NewHitResult()
	before := hit
	if obj.Hit(ray, &hit, 1e-4, math.Inf(1)) {
		t.Fatal("Expected miss")
	}
	if hit != before {
		t.Errorf("HitResult mutated on miss: %+v", hit)
	}
}

func TestObject_Hit_LocalNormalStored(t *testing.T) {
	// Sphere rotated arbitrarily: the stored normal is still local space,
	// the world conversion is the caller's job
	obj := NewObject("sphere",
		NewTransform(core.NewVec3(0, 0, -5), core.NewVec3(0, 45, 0), core.NewVec3(1, 1, 1)),
		testMaterial(), NewSphere())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit := NewHitResult()
	if !obj.Hit(ray, &hit, 1e-4, math.Inf(1)) {
		t.Fatal("Expected hit")
	}

	world := obj.Transform.NormalToWorld(hit.Normal)
	if !vec3ApproxEqual(world, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected world normal (0,0,1) after conversion, got %v", world)
	}
}

func TestObject_Hit_ShadowRangeBound(t *testing.T) {
	obj := NewObject("sphere",
		NewTransform(core.NewVec3(0, 0, -5), core.Vec3{}, core.NewVec3(1, 1, 1)),
		testMaterial(), NewSphere())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// A shadow query whose tMax stops short of the object must miss
	hit := NewHitResult()
	if obj.Hit(ray, &hit, 1e-4, 2.0) {
		t.Error("Expected miss with tMax short of the sphere")
	}
	if obj.Hit(ray, &hit, 1e-4, 6.0) == false {
		t.Error("Expected hit with tMax past the sphere")
	}
}
