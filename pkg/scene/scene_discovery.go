package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func(width, height int) (*Scene, error)
}

var builtinScenes = map[string]SceneInfo{
	"default": {
		Name:        "default",
		Description: "matte sphere between polished and brushed metal",
		build:       NewDefaultScene,
	},
	"diffuse": {
		Name:        "diffuse",
		Description: "single grey lambertian sphere on a grey ground plane",
		build:       NewDiffuseScene,
	},
	"fuzz-grid": {
		Name:        "fuzz-grid",
		Description: "metal spheres with increasing fuzziness behind colored matte spheres",
		build:       NewFuzzGridScene,
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, info := range builtinScenes {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Names returns the built-in scene names sorted alphabetically
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for _, info := range ListScenes() {
		names = append(names, info.Name)
	}
	return names
}

// Create builds the named scene and validates it
func Create(name string, width, height int) (*Scene, error) {
	info, ok := builtinScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}

	s, err := info.build(width, height)
	if err != nil {
		return nil, fmt.Errorf("building scene %q: %w", info.Name, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
