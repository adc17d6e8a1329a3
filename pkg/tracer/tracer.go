package tracer

import (
	"math"
	"math/rand"

	"github.com/avik/go-recursive-raytracer/pkg/core"
	"github.com/avik/go-recursive-raytracer/pkg/geometry"
	"github.com/avik/go-recursive-raytracer/pkg/scene"
)

// Config holds the tracing parameters.
type Config struct {
	// MaxDepth caps the recursion; rays beyond it return the background color
	MaxDepth int
	// Epsilon is the minimum ray parameter, suppressing self-intersection
	Epsilon float64
	// Background is returned for rays that hit nothing
	Background core.Vec3
	// ReflectiveThreshold separates ~fully-diffuse and ~fully-mirror
	// materials from the blended middle
	ReflectiveThreshold float64
}

// DefaultConfig returns the default tracing parameters
func DefaultConfig() Config {
	return Config{
		MaxDepth:            4,
		Epsilon:             1e-4,
		Background:          core.NewVec3(0, 0, 0),
		ReflectiveThreshold: 0.01,
	}
}

// Raytracer computes radiance along rays in a scene. It holds no mutable
// state of its own; every ComputeRayColor call keeps its state on the call
// stack, so one Raytracer can serve many goroutines as long as each brings
// its own random generator.
type Raytracer struct {
	scene  *scene.Scene
	config Config
}

// NewRaytracer creates a raytracer for the given scene
func NewRaytracer(s *scene.Scene, config Config) *Raytracer {
	return &Raytracer{scene: s, config: config}
}

// ComputeRayColor returns the radiance arriving along the ray. specular
// marks rays spawned by mirror reflection; they still pick up emissive
// surfaces directly, unlike diffuse bounce rays.
func (rt *Raytracer) ComputeRayColor(ray core.Ray, depth int, specular bool, random *rand.Rand) core.Vec3 {
	// Recursion cap, mutually reflective surfaces would otherwise never stop
	if depth > rt.config.MaxDepth {
		return rt.config.Background
	}

	// Nearest object wins; scan order is stable so ties resolve to the
	// earliest-found object
	hit := geometry.NewHitResult()
	for _, obj := range rt.scene.Objects {
		if obj.Hit(ray, &hit, rt.config.Epsilon, math.Inf(1)) {
			hit.Object = obj
		}
	}
	if hit.Object == nil {
		return rt.config.Background
	}

	// Now that the nearest hit is known, finalize its world-space
	// properties once: location from t, normal via the inverse transpose
	hit.Point = ray.At(hit.T)
	hit.Normal = hit.Object.Transform.NormalToWorld(hit.Normal)

	mat := hit.Object.Material
	color := core.Vec3{}

	// Emissive color only counts on the first bounce or through mirrors.
	// Diffuse bounce rays already sample every emissive surface as a light
	// below, so adding Ke for them would double-count the light; mirror
	// rays never sample lights, so without this they would show lights
	// as black.
	if depth == 0 || specular {
		color = color.Add(mat.Ke)
	}

	// Mirror reflection
	if mat.Reflective > rt.config.ReflectiveThreshold {
		reflectionRay := core.NewRay(hit.Point, ray.Direction.Reflect(hit.Normal))
		reflected := rt.ComputeRayColor(reflectionRay, depth+1, true, random)
		color = color.Add(mat.Ks.Multiply(mat.Reflective).MultiplyVec(reflected))
	}

	// Direct Blinn-Phong lighting, pointless for ~fully mirror surfaces
	if mat.Reflective < 1-rt.config.ReflectiveThreshold {
		for _, light := range rt.scene.Lights {
			lightLoc := light.Location(random)
			if !rt.IsPointInShadow(hit.Point, lightLoc, light.Object()) {
				shade := mat.ShadeBlinnPhong(ray, hit.Point, hit.Normal, lightLoc, light.Color())
				color = color.Add(shade.Multiply(1 - mat.Reflective))
			}
		}
	}

	// Single-bounce global illumination. The hemisphere sample is
	// cosine-weighted with pdf = cos(theta)/pi, so dividing the Lambertian
	// estimator (Kd/pi * L * cos) by the pdf cancels both the cosine and
	// the pi, leaving exactly Kd * L.
	giRay := core.NewRay(hit.Point, core.RandomCosineDirection(hit.Normal, random))
	gi := rt.ComputeRayColor(giRay, depth+1, false, random)
	color = color.Add(gi.MultiplyVec(mat.Kd))

	return color.Clamp(0, 1)
}

// IsPointInShadow reports whether any object blocks the segment from point
// to lightLocation. lightObject, if non-nil, is the object the light is
// attached to; it is skipped so an emissive surface never shadows itself.
// This is an existence query, so the scan short-circuits on the first hit.
func (rt *Raytracer) IsPointInShadow(point, lightLocation core.Vec3, lightObject *geometry.Object) bool {
	toLight := lightLocation.Subtract(point)
	distance := toLight.Length()
	shadowRay := core.NewRay(point, toLight.Normalize())

	for _, obj := range rt.scene.Objects {
		if obj == lightObject {
			continue
		}
		hit := geometry.NewHitResult()
		if obj.Hit(shadowRay, &hit, rt.config.Epsilon, distance) {
			return true
		}
	}
	return false
}
