package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewThreeSpheresScene creates three spheres in a room whose floor and walls are
// spheres flattened to thin slabs
func NewThreeSpheresScene(cameraOverrides ...CameraConfig) *SceneSetup {
	cameraConfig := CameraConfig{
		Width:       800,
		Height:      400,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
	}

	w := NewWorld()
	w.Light = lights.NewPointLight(core.Point(-10, 10, -10), core.White)

	slab := core.Scaling(10, 0.01, 10)
	wallColor := core.NewColor(1, 0.9, 0.9)

	floor := geometry.NewSphere()
	floor.SetTransform(slab)
	floor.Material.Color = wallColor
	floor.Material.Specular = 0
	w.AddShape(floor)

	leftWall := geometry.NewSphere()
	leftWall.SetTransform(slab.
		Then(core.RotationX(math.Pi / 2)).
		Then(core.RotationY(-math.Pi / 4)).
		Then(core.Translation(0, 0, 5)))
	leftWall.Material = floor.Material
	w.AddShape(leftWall)

	rightWall := geometry.NewSphere()
	rightWall.SetTransform(slab.
		Then(core.RotationX(math.Pi / 2)).
		Then(core.RotationY(math.Pi / 4)).
		Then(core.Translation(0, 0, 5)))
	rightWall.Material = floor.Material
	w.AddShape(rightWall)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middle.Material.Color = core.NewColor(0.1, 1, 0.5)
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3
	w.AddShape(middle)

	right := geometry.NewSphere()
	right.SetTransform(core.Scaling(0.5, 0.5, 0.5).Then(core.Translation(1.5, 0.5, -0.5)))
	right.Material.Color = core.NewColor(0.5, 1, 0.1)
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3
	w.AddShape(right)

	left := geometry.NewSphere()
	left.SetTransform(core.Scaling(0.33, 0.33, 0.33).Then(core.Translation(-1.5, 0.33, -0.75)))
	left.Material.Color = core.NewColor(1, 0.8, 0.1)
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3
	w.AddShape(left)

	return &SceneSetup{
		Name:         "three-spheres",
		World:        w,
		CameraConfig: applyOverrides(cameraConfig, cameraOverrides),
	}
}
