package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/df07/go-smallpt/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		primitives  int
		expectError bool
	}{
		// Built-in scenes
		{"cornell scene", "cornell", 9, false},
		{"simple scene", "simple", 2, false},

		// JSON scenes
		{"cornell json", "scenes/cornell.json", 9, false},

		// Invalid scenes
		{"unknown scene", "nonexistent", 0, true},
		{"missing json", "scenes/nonexistent.json", 0, true},
		{"empty scene name", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.GetPrimitiveCount() != tt.primitives {
				t.Errorf("Expected %d primitives, got %d", tt.primitives, s.GetPrimitiveCount())
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Scene failed validation: %v", err)
			}
		})
	}
}

func TestCornellJSONMatchesBuiltin(t *testing.T) {
	builtin, err := createScene("cornell")
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}
	loaded, err := createScene("scenes/cornell.json")
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}

	if builtin.CameraConfig != loaded.CameraConfig {
		t.Errorf("Camera differs: %+v vs %+v", builtin.CameraConfig, loaded.CameraConfig)
	}
	for i := range builtin.Primitives {
		a, b := builtin.Primitives[i].Surface(), loaded.Primitives[i].Surface()
		if *a != *b {
			t.Errorf("Sphere %d surface differs: %+v vs %+v", i, *a, *b)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	config := scene.DefaultSamplingConfig()

	applyOverrides(&config, 0, 0, 0, 0, 0)
	if config != scene.DefaultSamplingConfig() {
		t.Errorf("Zero flags changed the config: %+v", config)
	}

	applyOverrides(&config, 64, 48, 8, 1, 7)
	if config.Width != 64 || config.Height != 48 || config.SamplesPerPixel != 8 || config.SubPixels != 1 || config.Seed != 7 {
		t.Errorf("Overrides not applied: %+v", config)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	tests := []struct {
		sceneType string
		expected  string
	}{
		{"cornell", filepath.Join("output", "cornell", "render_20240305_140709.ppm")},
		{"scenes/glass.json", filepath.Join("output", "glass", "render_20240305_140709.ppm")},
	}

	for _, tt := range tests {
		if got := defaultOutputPath(tt.sceneType, now); got != tt.expected {
			t.Errorf("defaultOutputPath(%q): expected %s, got %s", tt.sceneType, tt.expected, got)
		}
	}
}

func TestRun_WritesImage(t *testing.T) {
	s, err := createScene("simple")
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}
	applyOverrides(&s.SamplingConfig, 8, 6, 1, 1, 3)

	filename := filepath.Join(t.TempDir(), "out", "render.ppm")
	if err := run(s, 2, filename); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if info, err := os.Stat(filename); err != nil || info.Size() == 0 {
		t.Errorf("Expected a non-empty image at %s (err=%v)", filename, err)
	}
}
