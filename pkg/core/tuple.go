package core

import "math"

// Epsilon is the tolerance used for approximate float comparisons
const Epsilon = 1e-5

// Tuple is a homogeneous 3D coordinate. W is 1 for points and 0 for vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// Point creates a tuple with w = 1
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with w = 0
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples. Point minus point yields a vector.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Negate returns the negative of the tuple
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Magnitude returns the length of the vector
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit vector in the same direction.
// A zero-length tuple normalizes to the zero tuple.
func (t Tuple) Normalize() Tuple {
	length := t.Magnitude()
	if length == 0 {
		return Tuple{}
	}
	return Tuple{t.X / length, t.Y / length, t.Z / length, t.W / length}
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect reflects the vector around the normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// ApproxEqual compares two tuples component-wise within Epsilon
func (t Tuple) ApproxEqual(other Tuple) bool {
	return FloatEqual(t.X, other.X) &&
		FloatEqual(t.Y, other.Y) &&
		FloatEqual(t.Z, other.Z) &&
		FloatEqual(t.W, other.W)
}

// FloatEqual reports whether a and b differ by less than Epsilon
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
