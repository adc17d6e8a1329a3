package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avik/go-recursive-raytracer/pkg/core"
	"github.com/avik/go-recursive-raytracer/pkg/geometry"
	"github.com/avik/go-recursive-raytracer/pkg/lights"
	"github.com/avik/go-recursive-raytracer/pkg/material"
)

// Camera is the collaborator configured by the Camera directive during
// loading. The renderer's camera satisfies it.
type Camera interface {
	SetPosition(position core.Vec3)
	SetRotationDegrees(rotation core.Vec3)
	SetFOVDegrees(fovY float64)
	Setup()
}

// LoadFromFile reads a scene description file. A missing or unreadable file
// is logged and yields an empty scene; the caller decides whether to proceed.
func LoadFromFile(path string, camera Camera, logger core.Logger) *Scene {
	file, err := os.Open(path)
	if err != nil {
		logger.Printf("ERROR: unable to read scene file %s: %v", path, err)
		return NewScene()
	}
	defer file.Close()
	return Load(file, camera, logger)
}

// Load parses a line-oriented scene description:
//
//	Camera <PosX PosY PosZ> <RotX RotY RotZ> <FovYDegrees>
//	SceneObject <Sphere|Plane|Square|TriangleMesh> <Name> <Pos> <Rot> <Scale>
//	            <Kd> <Ks> <Ke> <Reflectance> <SpecularExp> [<MeshFilePath>]
//	PointLight <Name> <PosX PosY PosZ> <Intensity>
//
// Tokens are whitespace separated and lines starting with # are comments.
// A malformed or unrecognized line is logged and skipped; parsing continues
// with the next line.
func Load(r io.Reader, camera Camera, logger core.Logger) *Scene {
	scene := NewScene()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := fieldReader{fields: strings.Fields(trimmed)}
		directive, _ := fields.next()

		var err error
		switch directive {
		case "Camera":
			err = parseCamera(&fields, camera)
		case "SceneObject":
			err = parseSceneObject(&fields, scene)
		case "PointLight":
			err = parsePointLight(&fields, scene)
		default:
			err = fmt.Errorf("unrecognized directive %q", directive)
		}
		if err != nil {
			logger.Printf("ERROR: bad scene description line (%v): %s", err, line)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("ERROR: reading scene description: %v", err)
	}
	return scene
}

func parseCamera(fields *fieldReader, camera Camera) error {
	position, err := fields.vec3()
	if err != nil {
		return err
	}
	rotation, err := fields.vec3()
	if err != nil {
		return err
	}
	fov, err := fields.float()
	if err != nil {
		return err
	}
	camera.SetPosition(position)
	camera.SetRotationDegrees(rotation)
	camera.SetFOVDegrees(fov)
	camera.Setup()
	return nil
}

func parseSceneObject(fields *fieldReader, scene *Scene) error {
	subclass, err := fields.next()
	if err != nil {
		return err
	}
	name, err := fields.next()
	if err != nil {
		return err
	}
	position, err := fields.vec3()
	if err != nil {
		return err
	}
	rotation, err := fields.vec3()
	if err != nil {
		return err
	}
	scale, err := fields.vec3()
	if err != nil {
		return err
	}
	kd, err := fields.vec3()
	if err != nil {
		return err
	}
	ks, err := fields.vec3()
	if err != nil {
		return err
	}
	ke, err := fields.vec3()
	if err != nil {
		return err
	}
	reflectance, err := fields.float()
	if err != nil {
		return err
	}
	specularExp, err := fields.float()
	if err != nil {
		return err
	}

	var shape geometry.Shape
	switch subclass {
	case "Sphere":
		shape = geometry.NewSphere()
	case "Plane":
		shape = geometry.NewPlane()
	case "Square":
		shape = geometry.NewSquare()
	case "TriangleMesh":
		meshPath, err := fields.next()
		if err != nil {
			return err
		}
		mesh, err := geometry.LoadTriangleMesh(meshPath)
		if err != nil {
			return err
		}
		shape = mesh
	default:
		return fmt.Errorf("unknown SceneObject subclass %q", subclass)
	}

	mat := material.NewMaterial(kd, ks, ke, reflectance, specularExp)
	scene.AddObject(geometry.NewObject(name, geometry.NewTransform(position, rotation, scale), mat, shape))
	return nil
}

func parsePointLight(fields *fieldReader, scene *Scene) error {
	name, err := fields.next()
	if err != nil {
		return err
	}
	position, err := fields.vec3()
	if err != nil {
		return err
	}
	intensity, err := fields.float()
	if err != nil {
		return err
	}
	scene.AddLight(lights.NewPointLight(name, position, intensity))
	return nil
}

// fieldReader walks the whitespace-separated tokens of one directive line.
type fieldReader struct {
	fields []string
	pos    int
}

func (f *fieldReader) next() (string, error) {
	if f.pos >= len(f.fields) {
		return "", fmt.Errorf("missing field at position %d", f.pos)
	}
	field := f.fields[f.pos]
	f.pos++
	return field, nil
}

func (f *fieldReader) float() (float64, error) {
	field, err := f.next()
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", field)
	}
	return value, nil
}

func (f *fieldReader) vec3() (core.Vec3, error) {
	x, err := f.float()
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := f.float()
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := f.float()
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}
