package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Scene is anything that can shade a camera ray; *scene.World satisfies it
type Scene interface {
	ColorAt(ray core.Ray) core.Color
}

// Render shades every pixel in turn on the calling goroutine
func (c *Camera) Render(s Scene) *canvas.Canvas {
	img := canvas.NewCanvas(c.hsize, c.vsize)
	c.renderBounds(s, img, img.Bounds())
	return img
}

// renderBounds shades the pixels inside bounds and returns how many it wrote.
// Pixels outside bounds are not touched, so disjoint bounds may render concurrently.
func (c *Camera) renderBounds(s Scene, img *canvas.Canvas, bounds image.Rectangle) int {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetPixel(x, y, s.ColorAt(c.RayForPixel(x, y)))
		}
	}
	return bounds.Dx() * bounds.Dy()
}
