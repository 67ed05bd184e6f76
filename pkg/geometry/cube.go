package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// intersectCube intersects an object-space ray with the [-1, 1] cube using slabs
func intersectCube(ray core.Ray) []float64 {
	xMin, xMax := checkAxis(ray.Origin.X, ray.Direction.X)
	yMin, yMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	zMin, zMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xMin, math.Max(yMin, zMin))
	tMax := math.Min(xMax, math.Min(yMax, zMax))

	// No intersection if the slab intervals do not overlap
	if tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

// checkAxis returns where the ray enters and leaves the slab between -1 and 1.
// A ray parallel to the slab gets infinite bounds, positive or negative
// depending on whether the origin lies inside the slab.
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// cubeNormal picks the face by the component with the largest magnitude
func cubeNormal(p core.Tuple) core.Tuple {
	absX, absY, absZ := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	maxC := math.Max(absX, math.Max(absY, absZ))

	switch maxC {
	case absX:
		return core.Vector(p.X, 0, 0)
	case absY:
		return core.Vector(0, p.Y, 0)
	default:
		return core.Vector(0, 0, p.Z)
	}
}
