package geometry

import (
	"math"

	"github.com/avik/go-recursive-raytracer/pkg/core"
)

// HitResult accumulates the current best intersection along a ray. T starts
// at +Inf and is only overwritten by strictly closer candidates, so a single
// HitResult can be threaded through a scan over many objects.
//
// During the scan Normal holds the local-space normal reported by the
// primitive; the caller converts it to world space (and fills in Point) once
// the nearest object is known, so the conversion happens exactly once.
type HitResult struct {
	T      float64
	Normal core.Vec3
	Point  core.Vec3
	Object *Object // non-owning; the scene's object list owns this
}

// NewHitResult returns a HitResult ready to accumulate the nearest hit.
func NewHitResult() HitResult {
	return HitResult{T: math.Inf(1)}
}
