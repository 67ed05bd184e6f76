package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestPlane_NormalIsConstant(t *testing.T) {
	p := NewPlane()
	for _, point := range []core.Tuple{core.Point(0, 0, 0), core.Point(10, 0, -10), core.Point(-5, 0, 150)} {
		assert.Equal(t, core.Vector(0, 1, 0), p.NormalAt(point))
	}
}

func TestPlane_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"parallel", core.Point(0, 10, 0), core.Vector(0, 0, 1), nil},
		{"coplanar", core.Point(0, 0, 0), core.Vector(0, 0, 1), nil},
		{"nearly parallel", core.Point(0, 1, 0), core.Vector(1, 1e-6, 0), nil},
		{"from above", core.Point(0, 1, 0), core.Vector(0, -1, 0), []float64{1}},
		{"from below", core.Point(0, -1, 0), core.Vector(0, 1, 0), []float64{1}},
		{"behind origin", core.Point(0, 1, 0), core.Vector(0, 1, 0), []float64{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlane()
			xs := p.Intersect(core.NewRay(tt.origin, tt.direction), 1)
			require.Len(t, xs, len(tt.expected))
			for i, x := range xs {
				assert.InDelta(t, tt.expected[i], x.T, 1e-9)
				assert.Equal(t, ShapeID(1), x.Object)
			}
		})
	}
}

func TestPlane_TransformedWall(t *testing.T) {
	// A wall: rotated upright then pushed back along z
	p := NewPlane()
	p.SetTransform(core.Translation(0, 0, 10).Mul(core.RotationX(1.5707963267948966)))

	xs := p.Intersect(core.NewRay(core.Point(0, 1, -5), core.Vector(0, 0, 1)), 0)
	require.Len(t, xs, 1)
	assert.InDelta(t, 15.0, xs[0].T, 1e-9)

	n := p.NormalAt(core.Point(0, 1, 10))
	assert.True(t, core.Vector(0, 0, 1).ApproxEqual(n), "got %v", n)
}
