package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is a light source with no size, emitting from a single point
type PointLight struct {
	Position  core.Tuple // Location of the light (a point)
	Intensity core.Color // Brightness and color of the light
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
