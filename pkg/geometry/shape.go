package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Kind identifies the primitive variant of a Shape
type Kind int

const (
	KindSphere Kind = iota // Unit sphere centered at the origin
	KindPlane              // The xz plane, normal +y
	KindCube               // Axis-aligned cube spanning [-1, 1] on every axis
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindCube:
		return "cube"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Shape is a renderable primitive defined in object space, placed in the
// world by its transform. All variants share one struct; Kind selects the
// intersection and normal routines.
type Shape struct {
	Kind     Kind
	Material material.Material

	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	invertible       bool
}

// NewShape creates a shape of the given kind with an identity transform and default material
func NewShape(kind Kind) *Shape {
	s := &Shape{Kind: kind, Material: material.Default()}
	s.SetTransform(core.Identity())
	return s
}

// NewSphere creates a unit sphere at the origin
func NewSphere() *Shape {
	return NewShape(KindSphere)
}

// NewPlane creates the xz plane
func NewPlane() *Shape {
	return NewShape(KindPlane)
}

// NewCube creates an axis-aligned cube from -1 to 1
func NewCube() *Shape {
	return NewShape(KindCube)
}

// SetTransform sets the object-to-world transform and caches its inverse.
// A singular transform is stored as is; intersecting or shading the shape
// afterwards panics with core.ErrSingularMatrix.
func (s *Shape) SetTransform(m core.Matrix) {
	s.transform = m
	s.invertible = m.Invertible()
	if s.invertible {
		s.inverse = m.Inverse()
		s.inverseTranspose = s.inverse.Transpose()
	}
}

// Transform returns the object-to-world transform
func (s *Shape) Transform() core.Matrix {
	return s.transform
}

// Inverse returns the world-to-object transform
func (s *Shape) Inverse() core.Matrix {
	if !s.invertible {
		panic(fmt.Errorf("%s transform %v: %w", s.Kind, s.transform, core.ErrSingularMatrix))
	}
	return s.inverse
}

// Intersect returns every intersection of a world-space ray with the shape,
// tagged with id. The result is unsorted and may be empty.
func (s *Shape) Intersect(ray core.Ray, id ShapeID) Intersections {
	local := ray.Transform(s.Inverse())

	var ts []float64
	switch s.Kind {
	case KindSphere:
		ts = intersectSphere(local)
	case KindPlane:
		ts = intersectPlane(local)
	case KindCube:
		ts = intersectCube(local)
	}

	xs := make(Intersections, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Object: id})
	}
	return xs
}

// NormalAt returns the unit world-space normal at a world-space point on the surface
func (s *Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := s.Inverse().MulTuple(worldPoint)

	var localNormal core.Tuple
	switch s.Kind {
	case KindSphere:
		localNormal = sphereNormal(localPoint)
	case KindPlane:
		localNormal = planeNormal(localPoint)
	case KindCube:
		localNormal = cubeNormal(localPoint)
	}

	// Normals transform by the inverse transpose so they stay perpendicular
	// under non-uniform scaling; the translation leaks into w and is dropped.
	worldNormal := s.inverseTranspose.MulTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
