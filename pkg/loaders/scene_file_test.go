package loaders

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func loadSetup(t *testing.T, path string) *scene.SceneSetup {
	t.Helper()
	sf, err := LoadSceneFile(path)
	require.NoError(t, err)
	setup, err := sf.Build()
	require.NoError(t, err)
	return setup
}

func assertSameWorld(t *testing.T, expected, actual *scene.World) {
	t.Helper()
	assert.True(t, expected.Light.Position.ApproxEqual(actual.Light.Position), "light position")
	assert.True(t, expected.Light.Intensity.ApproxEqual(actual.Light.Intensity), "light intensity")
	require.Equal(t, expected.Len(), actual.Len())

	for i := range expected.Shapes {
		e, a := expected.Shapes[i], actual.Shapes[i]
		assert.Equal(t, e.Kind, a.Kind, "shape %d kind", i)
		assert.True(t, e.Transform().ApproxEqual(a.Transform()), "shape %d transform", i)
		assert.True(t, e.Material.Color.ApproxEqual(a.Material.Color), "shape %d color", i)
		assert.InDelta(t, e.Material.Ambient, a.Material.Ambient, 1e-9, "shape %d ambient", i)
		assert.InDelta(t, e.Material.Diffuse, a.Material.Diffuse, 1e-9, "shape %d diffuse", i)
		assert.InDelta(t, e.Material.Specular, a.Material.Specular, 1e-9, "shape %d specular", i)
		assert.InDelta(t, e.Material.Shininess, a.Material.Shininess, 1e-9, "shape %d shininess", i)
	}
}

func TestLoadSceneFile_TOMLAndYAMLMatch(t *testing.T) {
	fromTOML := loadSetup(t, filepath.Join("..", "..", "scenes", "planes.toml"))
	fromYAML := loadSetup(t, filepath.Join("..", "..", "scenes", "planes.yaml"))

	assertSameWorld(t, fromTOML.World, fromYAML.World)
	assert.Equal(t, fromTOML.CameraConfig, fromYAML.CameraConfig)
	assert.Equal(t, "planes", fromTOML.Name)
}

func TestLoadSceneFile_MatchesBuiltinPlanes(t *testing.T) {
	setup := loadSetup(t, filepath.Join("..", "..", "scenes", "planes.toml"))
	builtin := scene.NewPlanesScene()

	assertSameWorld(t, builtin.World, setup.World)
	assert.Equal(t, builtin.CameraConfig.Width, setup.CameraConfig.Width)
	assert.Equal(t, builtin.CameraConfig.Height, setup.CameraConfig.Height)
	assert.InDelta(t, builtin.CameraConfig.FieldOfView, setup.CameraConfig.FieldOfView, 1e-12)
	assert.True(t, builtin.CameraConfig.From.ApproxEqual(setup.CameraConfig.From))
}

func TestLoadSceneFile_CubeRoom(t *testing.T) {
	setup := loadSetup(t, filepath.Join("..", "..", "scenes", "cube_room.yaml"))

	require.Equal(t, 3, setup.World.Len())
	assert.Equal(t, geometry.KindCube, setup.World.Shape(1).Kind)
	assert.True(t, core.NewColor(0.8, 0.2, 0).ApproxEqual(setup.World.Shape(1).Material.Color))
	assert.Equal(t, 50.0, setup.World.Shape(1).Material.Shininess)
	// Up defaults when omitted
	assert.Equal(t, core.Vector(0, 1, 0), setup.CameraConfig.Up)
}

func TestLoadSceneFile_NameFromFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty_room.toml")
	require.NoError(t, os.WriteFile(path, []byte("[camera]\nwidth = 10\n"), 0o644))

	sf, err := LoadSceneFile(path)
	require.NoError(t, err)
	assert.Equal(t, "empty_room", sf.Name)

	setup, err := sf.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, setup.World.Len())
	assert.Equal(t, 10, setup.CameraConfig.Width)
	assert.Equal(t, scene.DefaultCameraConfig().Height, setup.CameraConfig.Height)
	assert.Equal(t, scene.NewWorld().Light, setup.World.Light)
}

func TestLoadSceneFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSceneFile(filepath.Join(dir, "scene.json"))
	assert.Error(t, err)

	path := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err = LoadSceneFile(path)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadSceneFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeTOML_UnknownKey(t *testing.T) {
	_, err := DecodeTOML([]byte("[camera]\nwidht = 10\n"))
	assert.Error(t, err)
}

func TestDecodeYAML_UnknownKey(t *testing.T) {
	_, err := DecodeYAML([]byte("camera:\n  widht: 10\n"))
	assert.Error(t, err)
}

func TestSceneFile_BuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected error
	}{
		{
			name:     "unknown shape",
			yaml:     "shapes:\n  - type: torus\n",
			expected: ErrUnknownShape,
		},
		{
			name:     "unknown transform",
			yaml:     "shapes:\n  - type: sphere\n    transform: [{op: twist, args: [1]}]\n",
			expected: ErrUnknownTransform,
		},
		{
			name:     "wrong argument count",
			yaml:     "shapes:\n  - type: sphere\n    transform: [{op: translate, args: [1, 2]}]\n",
			expected: ErrInvalidTransform,
		},
		{
			name:     "singular transform",
			yaml:     "shapes:\n  - type: sphere\n    transform: [{op: scale, args: [0, 1, 1]}]\n",
			expected: core.ErrSingularMatrix,
		},
		{
			name:     "bad hex color",
			yaml:     "shapes:\n  - type: sphere\n    material: {color: \"#zzz\"}\n",
			expected: ErrInvalidColor,
		},
		{
			name:     "short color",
			yaml:     "light:\n  intensity: [1, 1]\n",
			expected: ErrInvalidColor,
		},
		{
			name:     "negative coefficient",
			yaml:     "shapes:\n  - type: plane\n    material: {diffuse: -1}\n",
			expected: material.ErrInvalidMaterial,
		},
		{
			name:     "short vector",
			yaml:     "camera:\n  from: [0, 1]\n",
			expected: ErrInvalidVector,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, err := DecodeYAML([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = sf.Build()
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestSceneFile_BuildInvalidCamera(t *testing.T) {
	sf, err := DecodeTOML([]byte("[camera]\nfov = 180.0\n"))
	require.NoError(t, err)
	_, err = sf.Build()
	assert.Error(t, err)
}

func TestSceneFile_BuildDegenerateCamera(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"looking straight down the up vector", "[camera]\nfrom = [0.0, 5.0, 0.0]\nto = [0.0, 0.0, 0.0]\nup = [0.0, 1.0, 0.0]\n"},
		{"looking straight up", "[camera]\nfrom = [0.0, -5.0, 0.0]\nto = [0.0, 0.0, 0.0]\n"},
		{"from equals to", "[camera]\nfrom = [1.0, 2.0, 3.0]\nto = [1.0, 2.0, 3.0]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, err := DecodeTOML([]byte(tt.toml))
			require.NoError(t, err)

			_, err = sf.Build()
			assert.ErrorIs(t, err, ErrInvalidVector)
		})
	}
}

func TestSceneFile_BuiltCameraIsUsable(t *testing.T) {
	sf, err := DecodeTOML([]byte("[camera]\nwidth = 20\nheight = 10\nfrom = [0.0, 5.0, -0.5]\nto = [0.0, 0.0, 0.0]\n"))
	require.NoError(t, err)

	setup, err := sf.Build()
	require.NoError(t, err)
	assert.NotPanics(t, func() { renderer.NewCameraFromConfig(setup.CameraConfig) })
}

func TestBuildTransform_Order(t *testing.T) {
	m, err := buildTransform([]TransformSpec{
		{Op: "rotate_x", Args: []float64{90}},
		{Op: "scale", Args: []float64{5, 5, 5}},
		{Op: "translate", Args: []float64{10, 5, 7}},
	})
	require.NoError(t, err)

	p := m.MulTuple(core.Point(1, 0, 1))
	assert.True(t, core.Point(15, 0, 7).ApproxEqual(p), "got %v", p)
}

func TestBuildTransform_Rotations(t *testing.T) {
	tests := []struct {
		op       string
		expected core.Matrix
	}{
		{"rotate_x", core.RotationX(math.Pi / 4)},
		{"rotate_y", core.RotationY(math.Pi / 4)},
		{"rotate_z", core.RotationZ(math.Pi / 4)},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			m, err := buildTransform([]TransformSpec{{Op: tt.op, Args: []float64{45}}})
			require.NoError(t, err)
			assert.True(t, tt.expected.ApproxEqual(m))
		})
	}
}

func TestBuildTransform_Shear(t *testing.T) {
	m, err := buildTransform([]TransformSpec{{Op: "shear", Args: []float64{1, 0, 0, 0, 0, 0}}})
	require.NoError(t, err)
	assert.True(t, core.Point(5, 3, 4).ApproxEqual(m.MulTuple(core.Point(2, 3, 4))))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected core.Color
	}{
		{"hex", "#ff8000", core.NewColor(1, 128.0/255, 0)},
		{"floats", []any{0.5, 0.25, 1.5}, core.NewColor(0.5, 0.25, 1.5)},
		{"toml integers", []any{int64(1), int64(0), int64(1)}, core.NewColor(1, 0, 1)},
		{"yaml integers", []any{1, 1, 0}, core.NewColor(1, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parseColor(tt.value)
			require.NoError(t, err)
			assert.True(t, tt.expected.ApproxEqual(c), "got %v", c)
		})
	}

	_, err := parseColor(42)
	assert.ErrorIs(t, err, ErrInvalidColor)
	_, err = parseColor([]any{"a", 0, 0})
	assert.ErrorIs(t, err, ErrInvalidColor)
}
