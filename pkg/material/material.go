package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ErrInvalidMaterial is returned by Validate for negative or non-finite coefficients
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the Phong reflection attributes of a surface.
// Coefficients are expected to be finite and non-negative; the lighting
// code does not check or clamp them.
type Material struct {
	Color     core.Color // Surface color
	Ambient   float64    // Background light reflected, usually 0-1
	Diffuse   float64    // Light reflected from a matte surface, usually 0-1
	Specular  float64    // Reflection of the light source itself, usually 0-1
	Shininess float64    // Size of the specular highlight, usually 10-200
}

// Default returns a white material with the standard coefficients
func Default() Material {
	return Material{
		Color:     core.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Validate reports coefficients that are negative or not finite.
// Used by scene loaders; rendering never calls it.
func (m Material) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"shininess", m.Shininess},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidMaterial, f.name, f.value)
		}
	}
	return nil
}
