package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewPlanesScene creates a floor and a back wall with three spheres resting in front of it
func NewPlanesScene(cameraOverrides ...CameraConfig) *SceneSetup {
	cameraConfig := CameraConfig{
		Width:       1000,
		Height:      500,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 1, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
	}

	w := NewWorld()
	w.Light = lights.NewPointLight(core.Point(5, 5, -10), core.White)

	floor := geometry.NewPlane()
	floor.Material.Color = core.NewColor(0.2, 0.8, 0.2)
	w.AddShape(floor)

	wall := geometry.NewPlane()
	wall.SetTransform(core.RotationX(math.Pi / 2).Then(core.Translation(0, 0, 10)))
	wall.Material.Color = core.NewColor(0.8, 0.8, 0.8)
	w.AddShape(wall)

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
		Name:         "planes",
		World:        w,
		CameraConfig: applyOverrides(cameraConfig, cameraOverrides),
	}
}
