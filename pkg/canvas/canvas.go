package canvas

import (
	"fmt"
	"image"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Canvas is a grid of linear RGB pixels, all black initially.
// Pixels are stored unclamped; clamping happens when encoding.
// Writes to distinct pixels may happen concurrently.
type Canvas struct {
	width, height int
	pixels        []core.Color
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("canvas: invalid size %dx%d", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas rectangle with its origin at (0, 0)
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// SetPixel writes a color. Coordinates outside the canvas are a programming error and panic.
func (c *Canvas) SetPixel(x, y int, color core.Color) {
	c.pixels[c.index(x, y)] = color
}

// PixelAt reads a color, panicking outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[c.index(x, y)]
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		panic(fmt.Sprintf("canvas: pixel (%d, %d) outside %dx%d", x, y, c.width, c.height))
	}
	return y*c.width + x
}

// Image converts the whole canvas to 8-bit RGBA
func (c *Canvas) Image() *image.RGBA {
	return c.SubImage(c.Bounds())
}

// SubImage converts the pixels inside rect to an 8-bit RGBA image whose origin is (0, 0).
// rect is clipped to the canvas.
func (c *Canvas) SubImage(rect image.Rectangle) *image.RGBA {
	rect = rect.Intersect(c.Bounds())
	img := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetRGBA(x-rect.Min.X, y-rect.Min.Y, c.pixels[y*c.width+x].ToRGBA())
		}
	}
	return img
}
