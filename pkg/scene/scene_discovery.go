package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by the CLI and the web server
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// BuiltinScenes lists the scenes constructed in code
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "cornell",
			Name:        "Cornell Box",
			Description: "Sphere Cornell box with a mirror ball, a glass ball and a ceiling light",
			Type:        "builtin",
		},
		{
			ID:          "simple",
			Name:        "Simple",
			Description: "One diffuse ball under a small spherical light",
			Type:        "builtin",
		},
	}
}

// NewBuiltinScene creates a built-in scene by ID
func NewBuiltinScene(id string) (*Scene, error) {
	switch id {
	case "cornell":
		return NewCornellScene()
	case "simple":
		return NewSimpleScene()
	}
	return nil, fmt.Errorf("unknown built-in scene: %q", id)
}

// ListJSONScenes scans dir for .json scene files. A missing directory yields no
// scenes and files whose metadata cannot be parsed are skipped with a warning.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseJSONMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseJSONMetadata reads the optional name and description of a scene file.
// Missing metadata falls back to the file name.
func ParseJSONMetadata(filePath string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:       filePath,
		Name:     titleCase(base),
		Type:     "json",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, fmt.Errorf("read %s: %w", filePath, err)
	}

	var meta struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return info, fmt.Errorf("parse %s: %w", filePath, err)
	}
	if meta.Name != "" {
		info.Name = meta.Name
	}
	info.Description = meta.Description
	return info, nil
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir
func ListAllScenes(dir string) (ScenesResponse, error) {
	response := ScenesResponse{
		Groups: []SceneGroup{{Name: "Built-in Scenes", Scenes: BuiltinScenes()}},
	}

	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}
	if len(jsonScenes) > 0 {
		response.Groups = append(response.Groups, SceneGroup{Name: "Scene Files", Scenes: jsonScenes})
	}
	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-glass" -> "Cornell Glass"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
