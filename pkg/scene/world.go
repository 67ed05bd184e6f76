package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// OverPointEpsilon is how far a hit point is nudged along its normal before
// casting shadow rays, so the surface does not shadow itself
const OverPointEpsilon = 1e-7

// World owns a single point light and the shapes it illuminates.
// It is read-only while rendering; concurrent ColorAt calls are safe as
// long as nothing mutates the world.
type World struct {
	Light  lights.PointLight
	Shapes []*geometry.Shape
}

// Computations holds the state of a hit needed for shading
type Computations struct {
	T         float64
	Object    geometry.ShapeID
	Point     core.Tuple // World-space hit point
	OverPoint core.Tuple // Point nudged along the normal
	EyeV      core.Tuple // Vector back toward the ray origin
	NormalV   core.Tuple // Surface normal, flipped to face the eye
	Inside    bool       // Whether the ray started inside the shape
}

// NewWorld creates a world with a white light at (-10, 10, -10) and no shapes
func NewWorld() *World {
	return &World{
		Light: lights.NewPointLight(core.Point(-10, 10, -10), core.White),
	}
}

// NewDefaultWorld creates the two concentric spheres scene used throughout the tests
func NewDefaultWorld() *World {
	w := NewWorld()

	outer := geometry.NewSphere()
	outer.Material.Color = core.NewColor(0.8, 1.0, 0.6)
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2

	inner := geometry.NewSphere()
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	w.AddShape(outer)
	w.AddShape(inner)
	return w
}

// AddShape appends a shape and returns its id
func (w *World) AddShape(s *geometry.Shape) geometry.ShapeID {
	w.Shapes = append(w.Shapes, s)
	return geometry.ShapeID(len(w.Shapes) - 1)
}

// Shape returns the shape with the given id
func (w *World) Shape(id geometry.ShapeID) *geometry.Shape {
	return w.Shapes[id]
}

// Len returns the number of shapes
func (w *World) Len() int {
	return len(w.Shapes)
}

// Intersect intersects the ray with every shape and returns the
// intersections sorted by ascending t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for i, s := range w.Shapes {
		xs = append(xs, s.Intersect(ray, geometry.ShapeID(i))...)
	}
	xs.Sort()
	return xs
}

// PrepareComputations derives the shading state for a hit
func (w *World) PrepareComputations(hit geometry.Intersection, ray core.Ray) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.Position(hit.T),
		EyeV:   ray.Direction.Negate(),
	}
	comps.NormalV = w.Shape(hit.Object).NormalAt(comps.Point)

	// Nudged along the outward normal, before any flip
	comps.OverPoint = comps.Point.Add(comps.NormalV.Multiply(OverPointEpsilon))

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}
	return comps
}

// ShadeHit returns the color at a prepared hit
func (w *World) ShadeHit(comps Computations) core.Color {
	return material.Lighting(
		w.Shape(comps.Object).Material,
		w.Light,
		comps.OverPoint,
		comps.EyeV,
		comps.NormalV,
		w.IsShadowed(comps.OverPoint),
	)
}

// IsShadowed reports whether any shape lies between the point and the light
func (w *World) IsShadowed(point core.Tuple) bool {
	v := w.Light.Position.Subtract(point)
	distance := v.Magnitude()

	ray := core.NewRay(point, v.Normalize())
	hit, ok := w.Intersect(ray).SortedHit()
	return ok && hit.T < distance
}

// ColorAt returns the color seen along a ray, black on a miss
func (w *World) ColorAt(ray core.Ray) core.Color {
	hit, ok := w.Intersect(ray).SortedHit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(w.PrepareComputations(hit, ray))
}
