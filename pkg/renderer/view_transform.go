package renderer

import "github.com/df07/go-phong-raytracer/pkg/core"

// ViewTransform orients the world relative to an eye at from looking toward to.
// up only needs to be roughly upward; the true up vector is recomputed from the view direction,
// so the orientation rows are always orthonormal.
func ViewTransform(from, to, up core.Tuple) core.Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up).Normalize()
	trueUp := left.Cross(forward)

	orientation := core.NewMatrix([4][4]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})

	return orientation.Mul(core.Translation(-from.X, -from.Y, -from.Z))
}
