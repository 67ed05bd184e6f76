package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Camera maps a pixel raster onto rays leaving a pinhole at the camera origin.
// The canvas sits one unit in front of the camera, along -z in camera space.
type Camera struct {
	hsize, vsize int
	fieldOfView  float64

	halfWidth  float64
	halfHeight float64
	pixelSize  float64

	transform core.Matrix
	inverse   core.Matrix
}

// NewCamera creates a camera at the origin looking down -z
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}
	c.computePixelSize()
	return c
}

// NewCameraFromConfig creates a camera sized and placed per config
func NewCameraFromConfig(config scene.CameraConfig) *Camera {
	c := NewCamera(config.Width, config.Height, config.FieldOfView)
	c.SetTransform(ViewTransform(config.From, config.To, config.Up))
	return c
}

// computePixelSize derives the half extents of the canvas and the size of one pixel.
// The field of view spans the longer side of the raster.
func (c *Camera) computePixelSize() {
	halfView := math.Tan(c.fieldOfView / 2)
	aspect := float64(c.hsize) / float64(c.vsize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(c.hsize)
}

// HSize returns the raster width in pixels
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the raster height in pixels
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// PixelSize returns the world-space size of one pixel on the canvas
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// SetSize changes the raster size and recomputes the pixel size
func (c *Camera) SetSize(hsize, vsize int) {
	c.hsize = hsize
	c.vsize = vsize
	c.computePixelSize()
}

// SetFieldOfView changes the field of view and recomputes the pixel size
func (c *Camera) SetFieldOfView(fieldOfView float64) {
	c.fieldOfView = fieldOfView
	c.computePixelSize()
}

// SetTransform sets the view transform. The matrix must be invertible.
func (c *Camera) SetTransform(m core.Matrix) {
	c.transform = m
	c.inverse = m.Inverse()
}

// RayForPixel returns the ray from the camera through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MulTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
