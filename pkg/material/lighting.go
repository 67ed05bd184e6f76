package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Lighting evaluates the Phong reflection model at a surface point.
// eye and normal must be unit vectors. The result is not clamped.
func Lighting(m Material, light lights.PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	// Combine surface color with the light's color/intensity
	effectiveColor := m.Color.Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	// Shadowed points only receive ambient light
	if inShadow {
		return ambient
	}

	lightV := light.Position.Subtract(point).Normalize()

	// A negative cosine means the light is on the other side of the surface
	lightDotNormal := lightV.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}
	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	// A non-positive cosine means the reflection points away from the eye
	specular := core.Black
	reflectV := lightV.Negate().Reflect(normal)
	if reflectDotEye := reflectV.Dot(eye); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
