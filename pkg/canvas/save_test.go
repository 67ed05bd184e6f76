package canvas

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestCanvas_Save(t *testing.T) {
	c := NewCanvas(4, 3)
	c.SetPixel(1, 1, core.NewColor(1, 0, 0))

	for _, ext := range []string{".png", ".jpg", ".jpeg", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+ext)
			require.NoError(t, c.Save(path))

			img, err := imgio.Open(path)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
		})
	}
}

func TestCanvas_SavePNGRoundTrip(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetPixel(1, 0, core.NewColor(0, 1, 0))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, c.Save(path))

	img, err := imgio.Open(path)
	require.NoError(t, err)
	r, g, b, _ := img.At(1, 0).RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0}, []uint32{r, g, b})
}

func TestCanvas_SavePPM(t *testing.T) {
	c := NewCanvas(5, 3)
	path := filepath.Join(t.TempDir(), "out.ppm")
	require.NoError(t, c.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c.ToPPM(), string(data))
}

func TestCanvas_SaveUnsupported(t *testing.T) {
	c := NewCanvas(1, 1)
	err := c.Save(filepath.Join(t.TempDir(), "out.tiff"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestCanvas_Thumbnail(t *testing.T) {
	c := NewCanvas(200, 100)

	thumb := c.Thumbnail(50)
	assert.Equal(t, image.Rect(0, 0, 50, 25), thumb.Bounds())

	full := c.Thumbnail(500)
	assert.Equal(t, image.Rect(0, 0, 200, 100), full.Bounds())
}

func TestCanvas_SaveThumbnail(t *testing.T) {
	c := NewCanvas(64, 32)
	path := filepath.Join(t.TempDir(), "thumb.png")
	require.NoError(t, c.SaveThumbnail(path, 16))

	img, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
}
