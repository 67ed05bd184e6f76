package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

var origin = core.Point(0, 0, 0)

// intersectSphere solves |o + t·d|² = 1 for a ray in object space
func intersectSphere(ray core.Ray) []float64 {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	// A zero-length direction never reaches the surface
	if a == 0 {
		return nil
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

// sphereNormal points from the center to the surface point
func sphereNormal(localPoint core.Tuple) core.Tuple {
	return localPoint.Subtract(origin)
}
