package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/loaders"
	"github.com/df07/go-smallpt/pkg/output"
	"github.com/df07/go-smallpt/pkg/renderer"
	"github.com/df07/go-smallpt/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "cornell", "Scene type: 'cornell', 'simple', or a path to a .json scene file")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	spp := flag.Int("spp", 0, "Samples per pixel (0 = scene default)")
	subPixels := flag.Int("subpixels", 0, "Sub-pixel grid size per axis (0 = scene default)")
	seed := flag.Int64("seed", 0, "Random seed (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	outputPath := flag.String("output", "", "Output file, .ppm or .png (default output/<scene>/render_<timestamp>.ppm)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting smallpt path tracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	applyOverrides(&selectedScene.SamplingConfig, *width, *height, *spp, *subPixels, *seed)

	filename := *outputPath
	if filename == "" {
		filename = defaultOutputPath(*sceneType, time.Now())
	}

	if err := run(selectedScene, *workers, filename); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the scene and saves the image
func run(s *scene.Scene, workers int, filename string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raytracer, err := renderer.NewRaytracer(s, integrator.NewPathTracingIntegrator(s.SamplingConfig), workers, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	fb, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Printf("%d pixels, %d samples in %v\n", stats.TotalPixels, stats.TotalSamples, stats.Duration)

	if err := output.SaveFile(filename, fb); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene returns a built-in scene by name or loads a JSON scene file
func createScene(sceneType string) (*scene.Scene, error) {
	for _, info := range scene.BuiltinScenes() {
		if info.ID == sceneType {
			fmt.Printf("Using %s scene...\n", info.Name)
			return scene.NewBuiltinScene(sceneType)
		}
	}

	if strings.HasSuffix(strings.ToLower(sceneType), ".json") {
		fmt.Printf("Loading scene file %s...\n", sceneType)
		return loaders.LoadScene(sceneType)
	}
	return nil, fmt.Errorf("unknown scene type: %q", sceneType)
}

// applyOverrides replaces scene sampling settings with non-zero flag values
func applyOverrides(config *scene.SamplingConfig, width, height, spp, subPixels int, seed int64) {
	if width > 0 {
		config.Width = width
	}
	if height > 0 {
		config.Height = height
	}
	if spp > 0 {
		config.SamplesPerPixel = spp
	}
	if subPixels > 0 {
		config.SubPixels = subPixels
	}
	if seed != 0 {
		config.Seed = seed
	}
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.ppm
func defaultOutputPath(sceneType string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.ppm", timestamp))
}

func showHelp() {
	fmt.Println("smallpt path tracer")
	fmt.Println("Usage: smallpt [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	scenes, err := scene.ListAllScenes("scenes")
	if err != nil {
		fmt.Printf("  (failed to list scene files: %v)\n", err)
	}
	for _, group := range scenes.Groups {
		for _, info := range group.Scenes {
			fmt.Printf("  %-22s - %s\n", info.ID, info.Description)
		}
	}
	fmt.Println("  <file>.json            - Any scene file, see scenes/cornell.json")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.ppm")
}
