package lights

import (
	"math/rand"

	"github.com/avik/go-recursive-raytracer/pkg/core"
	"github.com/avik/go-recursive-raytracer/pkg/geometry"
)

// PointLight is a zero-area light at a fixed position with a scalar intensity.
type PointLight struct {
	name      string
	position  core.Vec3
	intensity float64
}

// NewPointLight creates a point light
func NewPointLight(name string, position core.Vec3, intensity float64) *PointLight {
	return &PointLight{name: name, position: position, intensity: intensity}
}

// Name returns the light's name
func (l *PointLight) Name() string { return l.name }

// Location returns the fixed position of the light.
func (l *PointLight) Location(random *rand.Rand) core.Vec3 { return l.position }

// Color returns white scaled by the light's intensity.
func (l *PointLight) Color() core.Vec3 {
	return core.NewVec3(l.intensity, l.intensity, l.intensity)
}

// Object returns nil; a point light has no surface in the scene.
func (l *PointLight) Object() *geometry.Object { return nil }
