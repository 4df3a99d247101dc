package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	dir := t.TempDir()
	jsonScene := filepath.Join(dir, "tiny.json")
	content := `{"camera": {"resolution": [4, 3]}, "surfaces": [{"type": "sphere"}]}`
	if err := os.WriteFile(jsonScene, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"cornell scene", "cornell", false},

		// JSON scene by path
		{"direct JSON path", jsonScene, false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid JSON path", filepath.Join(dir, "nonexistent.json"), true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, core.NopLogger{})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.Camera.Width() <= 0 || scene.Camera.Height() <= 0 {
				t.Errorf("Scene camera resolution should be positive, got %dx%d", scene.Camera.Width(), scene.Camera.Height())
			}
			if scene.GetPrimitiveCount() == 0 {
				t.Error("Expected scene to contain surfaces")
			}
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name         string
		sceneType    string
		expectedBase string
	}{
		{"default scene", "default", "default"},
		{"cornell scene", "cornell", "cornell"},
		{"JSON file path", "scenes/glass-spheres.json", "glass-spheres"},
		{"nested JSON path", "scenes/subdir/my-scene.json", "my-scene"},
		{"listed JSON ID", "json:glass-spheres", "glass-spheres"},
		{"empty", "", "scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := createOutputDir(tt.sceneType)
			if outputDir != filepath.Join("output", tt.expectedBase) {
				t.Errorf("Expected output/%s, got '%s'", tt.expectedBase, outputDir)
			}
			if !strings.HasPrefix(outputDir, "output") {
				t.Errorf("Expected output directory under 'output', got '%s'", outputDir)
			}
		})
	}
}

func TestCreateScene_ListedIDs(t *testing.T) {
	dir := t.TempDir()
	content := `{"name": "Tiny", "camera": {"resolution": [4, 3]}, "surfaces": [{"type": "sphere"}]}`
	if err := os.WriteFile(filepath.Join(dir, "tiny.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	original := scenesDir
	scenesDir = dir
	defer func() { scenesDir = original }()

	listed, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		t.Fatalf("ListAllScenes failed: %v", err)
	}
	if len(listed) != len(scene.PresetNames)+1 {
		t.Fatalf("Expected %d listed scenes, got %d", len(scene.PresetNames)+1, len(listed))
	}

	// Every ID printed by -list must be accepted by -scene
	for _, info := range listed {
		t.Run(info.ID, func(t *testing.T) {
			if _, err := createScene(info.ID, core.NopLogger{}); err != nil {
				t.Errorf("Listed scene %q could not be created: %v", info.ID, err)
			}
		})
	}

	if _, err := createScene("tiny", core.NopLogger{}); err != nil {
		t.Errorf("Bare scene name should resolve in the scenes directory: %v", err)
	}
}
