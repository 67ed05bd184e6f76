package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"default", "planes", "three-spheres"}, BuiltinNames())
}

func TestBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			setup, err := Builtin(name)
			require.NoError(t, err)
			assert.Equal(t, name, setup.Name)
			assert.Positive(t, setup.World.Len())
			assert.Positive(t, setup.CameraConfig.Width)
			assert.Positive(t, setup.CameraConfig.Height)
			for i, s := range setup.World.Shapes {
				assert.NoError(t, s.Material.Validate(), "shape %d", i)
			}
		})
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := Builtin("cornell-box")
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestBuiltin_CameraOverrides(t *testing.T) {
	setup, err := Builtin("planes", CameraConfig{Width: 100, Height: 50})
	require.NoError(t, err)

	assert.Equal(t, 100, setup.CameraConfig.Width)
	assert.Equal(t, 50, setup.CameraConfig.Height)
	assert.Equal(t, math.Pi/3, setup.CameraConfig.FieldOfView)
	assert.Equal(t, core.Point(0, 1, -5), setup.CameraConfig.From)
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{From: core.Point(1, 2, 3)})

	assert.Equal(t, core.Point(1, 2, 3), merged.From)
	assert.Equal(t, base.To, merged.To)
	assert.Equal(t, base.Up, merged.Up)
	assert.Equal(t, base.Width, merged.Width)
	assert.Equal(t, base.FieldOfView, merged.FieldOfView)
}

func TestListBuiltinScenes(t *testing.T) {
	infos := ListBuiltinScenes()
	require.Len(t, infos, 3)
	assert.Equal(t, "planes", infos[1].ID)
	assert.Equal(t, 5, infos[1].ShapeCount)
	assert.Equal(t, 1000, infos[1].CameraConfig.Width)
}

func TestNewPlanesScene(t *testing.T) {
	setup := NewPlanesScene()
	w := setup.World

	require.Equal(t, 5, w.Len())
	assert.Equal(t, core.Point(5, 5, -10), w.Light.Position)
	assert.Equal(t, geometry.KindPlane, w.Shape(0).Kind)
	assert.Equal(t, geometry.KindPlane, w.Shape(1).Kind)

	t.Run("floor below the camera", func(t *testing.T) {
		hit, ok := w.Intersect(core.NewRay(core.Point(0, 1, -5), core.Vector(0, -1, 0))).Hit()
		require.True(t, ok)
		assert.Equal(t, geometry.ShapeID(0), hit.Object)
		assert.InDelta(t, 1.0, hit.T, 1e-9)
	})

	t.Run("wall at z=10", func(t *testing.T) {
		hit, ok := w.Intersect(core.NewRay(core.Point(0, 3, -5), core.Vector(0, 0, 1))).Hit()
		require.True(t, ok)
		assert.Equal(t, geometry.ShapeID(1), hit.Object)
		assert.InDelta(t, 15.0, hit.T, 1e-9)
	})

	t.Run("middle sphere", func(t *testing.T) {
		hit, ok := w.Intersect(core.NewRay(core.Point(-0.5, 1, -5), core.Vector(0, 0, 1))).Hit()
		require.True(t, ok)
		assert.Equal(t, geometry.ShapeID(2), hit.Object)
		assert.InDelta(t, 4.5, hit.T, 1e-9)
	})
}

func TestNewThreeSpheresScene(t *testing.T) {
	setup := NewThreeSpheresScene()
	w := setup.World

	require.Equal(t, 6, w.Len())
	for i := range w.Len() {
		assert.Equal(t, geometry.KindSphere, w.Shape(geometry.ShapeID(i)).Kind)
	}

	hit, ok := w.Intersect(core.NewRay(core.Point(0, 5, -3), core.Vector(0, -1, 0))).Hit()
	require.True(t, ok)
	assert.Equal(t, geometry.ShapeID(0), hit.Object)
	assert.InDelta(t, 4.99, hit.T, 1e-3)
}
