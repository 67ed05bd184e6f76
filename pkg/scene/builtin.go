package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a builtin scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a builtin scene for listings
type SceneInfo struct {
	ID           string       `json:"id"`          // Name accepted by Builtin
	DisplayName  string       `json:"displayName"` // UI display name
	Description  string       `json:"description"`
	ShapeCount   int          `json:"shapeCount"`
	CameraConfig CameraConfig `json:"camera"`
}

type builtinScene struct {
	displayName string
	description string
	build       func(cameraOverrides ...CameraConfig) *SceneSetup
}

var builtins = map[string]builtinScene{
	"default": {
		displayName: "Default World",
		description: "Two concentric spheres lit from the upper left",
		build:       NewDefaultScene,
	},
	"planes": {
		displayName: "Planes",
		description: "Three spheres on a floor plane in front of a wall",
		build:       NewPlanesScene,
	},
	"three-spheres": {
		displayName: "Three Spheres",
		description: "Three spheres in a room built from flattened spheres",
		build:       NewThreeSpheresScene,
	},
}

// Builtin creates the named builtin scene, applying optional camera overrides
func Builtin(name string, cameraOverrides ...CameraConfig) (*SceneSetup, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.build(cameraOverrides...), nil
}

// BuiltinNames returns the registered scene names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListBuiltinScenes returns metadata for every builtin scene, sorted by name
func ListBuiltinScenes() []SceneInfo {
	var infos []SceneInfo
	for _, name := range BuiltinNames() {
		b := builtins[name]
		setup := b.build()
		infos = append(infos, SceneInfo{
			ID:           name,
			DisplayName:  b.displayName,
			Description:  b.description,
			ShapeCount:   setup.World.Len(),
			CameraConfig: setup.CameraConfig,
		})
	}
	return infos
}
