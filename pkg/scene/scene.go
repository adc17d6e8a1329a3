package scene

import (
	"github.com/avik/go-recursive-raytracer/pkg/geometry"
	"github.com/avik/go-recursive-raytracer/pkg/lights"
)

// Scene owns the object and light lists. Both are built during loading and
// read-only while rendering, so tracing needs no locking.
type Scene struct {
	Objects []*geometry.Object
	Lights  []lights.Light
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// AddObject appends an object to the scene. Objects with a nonzero emissive
// coefficient are automatically registered as an area light pointing back at
// the object; no separate light directive is needed for them.
func (s *Scene) AddObject(obj *geometry.Object) {
	s.Objects = append(s.Objects, obj)
	if obj.Material.Ke.Length() > 0 {
		s.Lights = append(s.Lights, lights.NewEmissiveLight(obj.Name+"_EmissiveLight", obj))
	}
}

// AddLight appends a standalone light to the scene.
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}
