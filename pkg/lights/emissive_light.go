package lights

import (
	"math/rand"

	"github.com/avik/go-recursive-raytracer/pkg/core"
	"github.com/avik/go-recursive-raytracer/pkg/geometry"
)

// EmissiveLight is an area light backed by a scene object with a nonzero
// emissive coefficient. All property queries delegate to the object, which
// owns the canonical material value.
type EmissiveLight struct {
	name string
	obj  *geometry.Object
}

// NewEmissiveLight creates a light that mirrors the given object's emission
func NewEmissiveLight(name string, obj *geometry.Object) *EmissiveLight {
	return &EmissiveLight{name: name, obj: obj}
}

// Name returns the light's name
func (l *EmissiveLight) Name() string { return l.name }

// Location returns a random world-space point on the owning object's surface.
func (l *EmissiveLight) Location(random *rand.Rand) core.Vec3 {
	return l.obj.RandomPointOnSurface(random)
}

// Color returns the owning object's emissive coefficient.
func (l *EmissiveLight) Color() core.Vec3 {
	return l.obj.Material.Ke
}

// Object returns the scene object this light is attached to.
func (l *EmissiveLight) Object() *geometry.Object { return l.obj }
