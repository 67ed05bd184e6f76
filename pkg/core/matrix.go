package core

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularMatrix is the panic value raised when inverting a non-invertible matrix
var ErrSingularMatrix = errors.New("matrix is not invertible")

// Matrix is a 4x4 affine transform. Composition follows left-multiplication:
// applying B then A is A.Mul(B).
type Matrix struct {
	m mgl64.Mat4
}

// Identity returns the identity matrix
func Identity() Matrix {
	return Matrix{m: mgl64.Ident4()}
}

// NewMatrix builds a matrix from rows
func NewMatrix(rows [4][4]float64) Matrix {
	return Matrix{m: mgl64.Mat4FromRows(
		mgl64.Vec4(rows[0]),
		mgl64.Vec4(rows[1]),
		mgl64.Vec4(rows[2]),
		mgl64.Vec4(rows[3]),
	)}
}

// Translation returns a translation matrix
func Translation(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Translate3D(x, y, z)}
}

// Scaling returns a scaling matrix
func Scaling(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Scale3D(x, y, z)}
}

// RotationX returns a rotation around the x axis by radians
func RotationX(radians float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DX(radians)}
}

// RotationY returns a rotation around the y axis by radians
func RotationY(radians float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DY(radians)}
}

// RotationZ returns a rotation around the z axis by radians
func RotationZ(radians float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DZ(radians)}
}

// Shearing returns a shear matrix where each component moves in proportion to the others
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix([4][4]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// At returns the element at (row, col)
func (a Matrix) At(row, col int) float64 {
	return a.m.At(row, col)
}

// Mul returns a·b
func (a Matrix) Mul(b Matrix) Matrix {
	return Matrix{m: a.m.Mul4(b.m)}
}

// Then returns the transform that applies a first and next second
func (a Matrix) Then(next Matrix) Matrix {
	return next.Mul(a)
}

// MulTuple transforms a tuple
func (a Matrix) MulTuple(t Tuple) Tuple {
	v := a.m.Mul4x1(mgl64.Vec4{t.X, t.Y, t.Z, t.W})
	return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Transpose returns the transposed matrix
func (a Matrix) Transpose() Matrix {
	return Matrix{m: a.m.Transpose()}
}

// Determinant returns the determinant of the matrix
func (a Matrix) Determinant() float64 {
	return a.m.Det()
}

// Invertible reports whether the matrix has an inverse
func (a Matrix) Invertible() bool {
	return a.m.Det() != 0
}

// Inverse returns the inverse of the matrix.
// It panics with ErrSingularMatrix when the matrix is not invertible.
func (a Matrix) Inverse() Matrix {
	if !a.Invertible() {
		panic(fmt.Errorf("inverse of %v: %w", a, ErrSingularMatrix))
	}
	return Matrix{m: a.m.Inv()}
}

// ApproxEqual compares two matrices element-wise within Epsilon
func (a Matrix) ApproxEqual(b Matrix) bool {
	for i := range a.m {
		if !FloatEqual(a.m[i], b.m[i]) {
			return false
		}
	}
	return true
}

// String formats the matrix row by row
func (a Matrix) String() string {
	return fmt.Sprintf("[%v %v %v %v]", a.m.Row(0), a.m.Row(1), a.m.Row(2), a.m.Row(3))
}
