package lights

import (
	"math/rand"

	"github.com/avik/go-recursive-raytracer/pkg/core"
	"github.com/avik/go-recursive-raytracer/pkg/geometry"
)

// Light is a source sampled during direct lighting.
type Light interface {
	// Name identifies the light in logs and debugging output
	Name() string

	// Location returns a world-space point to sample the light at. Area
	// lights randomize this per call, which is why the generator is passed in.
	Location(random *rand.Rand) core.Vec3

	// Color returns the light's emitted color scaled by its intensity
	Color() core.Vec3

	// Object returns the scene object the light is attached to, or nil for
	// lights with no surface. The shadow test uses it to keep a light's own
	// surface from occluding itself.
	Object() *geometry.Object
}
