package material

import (
	"math"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

// Material holds shading coefficients for Blinn-Phong shading. Pure value
// type with no identity.
type Material struct {
	Kd core.Vec3 // diffuse color
	Ks core.Vec3 // specular color
	Ke core.Vec3 // emissive color

	// Reflective is in [0, 1], where 1 is a perfect mirror and 0 fully diffuse
	Reflective float64
	// SpecularExp controls the width of specular highlights
	SpecularExp float64
}

// NewMaterial creates a material from its coefficients
func NewMaterial(kd, ks, ke core.Vec3, reflective, specularExp float64) Material {
	return Material{
		Kd:          kd,
		Ks:          ks,
		Ke:          ke,
		Reflective:  reflective,
		SpecularExp: specularExp,
	}
}

// ShadeBlinnPhong evaluates the light-dependent diffuse and specular terms
// for a single light at a shaded point. Ambient and emissive terms are the
// caller's job; this must be called once per visible light.
func (m Material) ShadeBlinnPhong(ray core.Ray, point, normal, lightLocation, lightColor core.Vec3) core.Vec3 {
	lightVec := lightLocation.Subtract(point).Normalize()
	diffuse := m.Kd.Multiply(math.Max(0, lightVec.Dot(normal)))

	// Normalizing the half vector makes the /2 of the midpoint irrelevant
	eyeVec := ray.Direction.Negate()
	halfVec := eyeVec.Add(lightVec).Normalize()
	specular := m.Ks.Multiply(math.Pow(math.Max(0, halfVec.Dot(normal)), m.SpecularExp))

	return lightColor.MultiplyVec(diffuse.Add(specular))
}
