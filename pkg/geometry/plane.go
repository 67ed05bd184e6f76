package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// intersectPlane intersects an object-space ray with the xz plane
func intersectPlane(ray core.Ray) []float64 {
	// Parallel or coplanar rays never cross the plane
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// planeNormal is constant everywhere on the plane
func planeNormal(core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}
