package geometry

import (
	"cmp"
	"slices"
)

// ShapeID indexes a shape within the world that produced an intersection
type ShapeID int

// Intersection records where a ray crossed a shape's surface
type Intersection struct {
	T      float64 // Parameter t along the ray, negative when behind the origin
	Object ShapeID // Shape that was hit
}

// Intersections is an unordered collection of intersections until sorted
type Intersections []Intersection

// NewIntersections collects intersections into a set
func NewIntersections(xs ...Intersection) Intersections {
	return Intersections(xs)
}

// Sort orders the intersections by ascending t. Equal t values keep their order.
func (xs Intersections) Sort() {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
}

// Hit returns the visible intersection: the one with the smallest non-negative t.
// The receiver is left untouched.
func (xs Intersections) Hit() (Intersection, bool) {
	sorted := slices.Clone(xs)
	sorted.Sort()
	return firstNonNegative(sorted)
}

// Hit selects the visible intersection from xs
func Hit(xs Intersections) (Intersection, bool) {
	return xs.Hit()
}

// SortedHit is Hit for a set already in ascending t order, such as World.Intersect returns.
// It neither copies nor sorts.
func (xs Intersections) SortedHit() (Intersection, bool) {
	return firstNonNegative(xs)
}

// firstNonNegative scans an already sorted set
func firstNonNegative(sorted Intersections) (Intersection, bool) {
	for _, x := range sorted {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
