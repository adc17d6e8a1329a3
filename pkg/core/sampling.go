package core

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// RandomCosineDirection generates a cosine-weighted random direction in the
// hemisphere around the given unit normal. The PDF of the returned direction
// is cos(theta)/pi.
//
// Points are generated uniformly on a unit disk and projected up onto the
// hemisphere, which yields the cosine weighting directly.
func RandomCosineDirection(normal Vec3, random *rand.Rand) Vec3 {
	u := random.Float64()
	v := random.Float64()
	r := math.Sqrt(u)
	theta := 2 * math.Pi * v

	// Direction in a frame where the pole is +Y
	localDir := Vec3{r * math.Cos(theta), math.Sqrt(1 - u), r * math.Sin(theta)}

	up := Vec3{0, 1, 0}
	if normal == up {
		return localDir
	}
	if normal == up.Negate() {
		return localDir.Negate()
	}

	// Rotate from the canonical +Y pole to the actual normal
	angle := math.Acos(up.Dot(normal))
	axis := up.Cross(normal)
	q := mgl64.QuatRotate(angle, mgl64.Vec3{axis.X, axis.Y, axis.Z}.Normalize())
	rotated := q.Rotate(mgl64.Vec3{localDir.X, localDir.Y, localDir.Z})
	return Vec3{rotated[0], rotated[1], rotated[2]}
}
