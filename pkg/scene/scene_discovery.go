package scene

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, passed to Build
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "obj"
	FilePath    string `json:"filePath"`    // Path to OBJ file (obj type only)
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

const (
	builtinGroup = "Built-in Scenes"
	meshGroup    = "Mesh Scenes"
)

// BuiltinScenes lists the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "spheres",
			Name:        "Spheres",
			DisplayName: "Spheres",
			Description: "Opaque, diffuse and specular spheres above a ground plane",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "mesh",
			Name:        "Triangle Mesh",
			DisplayName: "Triangle Mesh",
			Description: "Icosahedron and pyramid meshes above a ground plane",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "sphere-grid",
			Name:        "Sphere Grid",
			DisplayName: "Sphere Grid",
			Description: "Grid of rainbow-colored specular spheres",
			Group:       builtinGroup,
			Type:        "builtin",
		},
	}
}

// ListOBJScenes returns every *.obj file in dir as an obj:<name> scene,
// ordered by display name. A missing directory yields an empty list.
func ListOBJScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.obj"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(paths))
	for _, path := range paths {
		info, err := ParseOBJMetadata(path)
		if err != nil {
			logger.Warningf("skipping %s: %v", path, err)
			continue
		}
		scenes = append(scenes, info)
	}

	slices.SortFunc(scenes, func(a, b SceneInfo) int {
		return strings.Compare(a.DisplayName, b.DisplayName)
	})
	return scenes, nil
}

// ParseOBJMetadata reads "# Key: value" lines from the comment header of an
// OBJ file. Recognised keys are Scene, Description and Group; the header ends
// at the first line that is not a comment.
func ParseOBJMetadata(path string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := SceneInfo{
		ID:          "obj:" + base,
		Name:        titleCase(base),
		DisplayName: titleCase(base),
		Group:       meshGroup,
		Type:        "obj",
		FilePath:    path,
	}

	file, err := os.Open(path)
	if err != nil {
		return info, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		comment, ok := strings.CutPrefix(strings.TrimSpace(scanner.Text()), "#")
		if !ok {
			break
		}
		key, value, ok := strings.Cut(comment, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "Scene":
			info.Name, info.DisplayName = value, value
		case "Description":
			info.Description = value
		case "Group":
			info.Group = value
		}
	}

	return info, scanner.Err()
}

// ListAllScenes groups the built-in and OBJ scenes by category. The built-in
// group comes first, the others follow in alphabetical order.
func ListAllScenes(dir string) (ScenesResponse, error) {
	objScenes, err := ListOBJScenes(dir)
	if err != nil {
		return ScenesResponse{}, fmt.Errorf("failed to list OBJ scenes: %w", err)
	}

	byGroup := make(map[string][]SceneInfo)
	for _, info := range append(BuiltinScenes(), objScenes...) {
		byGroup[info.Group] = append(byGroup[info.Group], info)
	}

	response := ScenesResponse{
		Groups: []SceneGroup{{Name: builtinGroup, Scenes: byGroup[builtinGroup]}},
	}
	delete(byGroup, builtinGroup)
	for _, name := range slices.Sorted(maps.Keys(byGroup)) {
		response.Groups = append(response.Groups, SceneGroup{Name: name, Scenes: byGroup[name]})
	}
	return response, nil
}

// titleCase turns a file stem such as "stanford_bunny-lowres" into "Stanford Bunny Lowres"
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}
