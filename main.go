package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/loaders"
	"github.com/df07/go-dirt/pkg/noise"
	"github.com/df07/go-dirt/pkg/renderer"
	"github.com/df07/go-dirt/pkg/scene"
)

// scenesDir holds JSON scenes that can be selected by name
var scenesDir = "scenes"

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene: a preset name, a scene name under scenes/, or a path to a .json file")
	outPath := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	seed := flag.Int64("seed", noise.DefaultSeed, "Seed for procedural noise and pixel sampling")
	samples := flag.Int("samples", 0, "Samples per pixel (0 keeps the scene's setting)")
	verbose := flag.Bool("verbose", false, "Log loading and rendering details")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Dirt path tracer")
		fmt.Println("Usage: dirt [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if *list {
		scenes, err := scene.ListAllScenes(scenesDir)
		if err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		for _, info := range scenes {
			fmt.Printf("  %-20s %s\n", info.ID, info.Description)
		}
		return
	}

	var logger core.Logger = core.NopLogger{}
	if *verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	// Noise tables must exist before textures are built
	noise.Init(*seed)

	selectedScene, err := createScene(*sceneType, logger)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	config := selectedScene.SamplingConfig
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			config.Seed = *seed
		}
	})
	if *samples > 0 {
		config.SamplesPerPixel = *samples
	}

	filename := *outPath
	if filename == "" {
		outputDir := createOutputDir(*sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	fmt.Printf("Rendering %s (%d primitives, %d spp)...\n",
		*sceneType, selectedScene.GetPrimitiveCount(), config.SamplesPerPixel)

	raytracer := renderer.NewRaytracer(selectedScene, config, logger)
	frame, stats := raytracer.Render()

	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("Rays traced: %d, intersection tests: %d\n", stats.RaysTraced, stats.IntersectionTests)
	fmt.Printf("Mean luminance: %.4f (std dev %.4f)\n", stats.MeanLuminance, stats.StdDevLuminance)

	if err := loaders.SavePNG(filename, frame.RGBA()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// createScene resolves a preset name, a JSON scene file path, or the name of
// a scene file in the scenes directory. IDs printed by -list are accepted too.
func createScene(sceneType string, logger core.Logger) (*scene.Scene, error) {
	sceneType = strings.TrimPrefix(sceneType, scene.JSONScenePrefix)
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}

	for _, name := range scene.PresetNames {
		if sceneType == name {
			return scene.NewPreset(name, logger)
		}
	}

	if strings.HasSuffix(sceneType, ".json") {
		return scene.Load(sceneType, logger)
	}

	candidate := filepath.Join(scenesDir, sceneType+".json")
	if _, err := os.Stat(candidate); err == nil {
		return scene.Load(candidate, logger)
	}

	return nil, fmt.Errorf("unknown scene %q", sceneType)
}

// createOutputDir returns output/<scene name> for presets and scene files alike
func createOutputDir(sceneType string) string {
	sceneType = strings.TrimPrefix(sceneType, scene.JSONScenePrefix)
	base := strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
	if base == "" || base == "." {
		base = "scene"
	}
	return filepath.Join("output", base)
}
