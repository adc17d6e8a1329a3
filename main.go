package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/avik/go-recursive-raytracer/pkg/renderer"
	"github.com/avik/go-recursive-raytracer/pkg/scene"
	"github.com/avik/go-recursive-raytracer/pkg/tracer"
)

func main() {
	scenePath := flag.String("scene", "", "Path to the scene description file")
	outPath := flag.String("out", "render.png", "Output PNG path")
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 480, "Image height in pixels")
	maxDepth := flag.Int("depth", 4, "Maximum recursion depth")
	seed := flag.Int64("seed", 1, "Base seed for per-tile random generators")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	if *scenePath == "" {
		fmt.Println("Usage: raytracer -scene <file> [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	camera := renderer.NewCamera(*width, *height)
	scn := scene.LoadFromFile(*scenePath, camera, logger)
	if len(scn.Objects) == 0 {
		logger.Printf("WARN: scene %s has no objects, rendering background only", *scenePath)
	}

	config := tracer.DefaultConfig()
	config.MaxDepth = *maxDepth

	r := renderer.NewRenderer(camera, tracer.NewRaytracer(scn, config))
	r.Seed = *seed
	if *workers > 0 {
		r.NumWorkers = *workers
	}

	start := time.Now()
	img := r.Render()
	logger.Printf("rendered %dx%d in %v", *width, *height, time.Since(start))

	file, err := os.Create(*outPath)
	if err != nil {
		logger.Printf("ERROR: creating output file: %v", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		logger.Printf("ERROR: encoding PNG: %v", err)
		os.Exit(1)
	}
	logger.Printf("render saved as %s", *outPath)
}
