package renderer

import (
	"image"
	"image/color"
	"math/rand"
	"runtime"
	"sync"

	"github.com/avik/go-recursive-raytracer/pkg/tracer"
)

// Renderer walks the image plane and traces one primary ray per pixel.
// The image is split into tiles rendered by a pool of workers; every tile
// gets its own deterministically seeded random generator and every pixel is
// written to a distinct slot, so no synchronization is needed beyond the
// task channel.
type Renderer struct {
	camera    *Camera
	raytracer *tracer.Raytracer

	TileSize   int
	NumWorkers int
	Seed       int64
}

// tileTask is one rectangle of the image for a worker to trace.
type tileTask struct {
	bounds image.Rectangle
	seed   int64
}

// NewRenderer creates a renderer with one worker per CPU and 64px tiles
func NewRenderer(camera *Camera, raytracer *tracer.Raytracer) *Renderer {
	return &Renderer{
		camera:     camera,
		raytracer:  raytracer,
		TileSize:   64,
		NumWorkers: runtime.NumCPU(),
		Seed:       1,
	}
}

// Render traces the full image and returns it.
func (r *Renderer) Render() *image.RGBA {
	width, height := r.camera.Width(), r.camera.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	tasks := make(chan tileTask, r.numTiles(width, height))
	var wg sync.WaitGroup
	for w := 0; w < r.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				r.renderTile(img, task)
			}
		}()
	}

	tileIndex := int64(0)
	for y := 0; y < height; y += r.TileSize {
		for x := 0; x < width; x += r.TileSize {
			bounds := image.Rect(x, y, min(x+r.TileSize, width), min(y+r.TileSize, height))
			tasks <- tileTask{bounds: bounds, seed: r.Seed + tileIndex}
			tileIndex++
		}
	}
	close(tasks)
	wg.Wait()

	return img
}

// renderTile traces every pixel in the task's bounds with a tile-local
// random generator.
func (r *Renderer) renderTile(img *image.RGBA, task tileTask) {
	random := rand.New(rand.NewSource(task.seed))
	for j := task.bounds.Min.Y; j < task.bounds.Max.Y; j++ {
		for i := task.bounds.Min.X; i < task.bounds.Max.X; i++ {
			ray := r.camera.GetRay(i, j)
			c := r.raytracer.ComputeRayColor(ray, 0, false, random)
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(c.X * 255.999),
				G: uint8(c.Y * 255.999),
				B: uint8(c.Z * 255.999),
				A: 255,
			})
		}
	}
}

func (r *Renderer) numTiles(width, height int) int {
	tilesX := (width + r.TileSize - 1) / r.TileSize
	tilesY := (height + r.TileSize - 1) / r.TileSize
	return tilesX * tilesY
}
