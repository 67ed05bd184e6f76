package canvas

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// ErrUnsupportedFormat is returned by Save for file extensions it cannot encode
var ErrUnsupportedFormat = errors.New("unsupported image format")

// jpegQuality is used for .jpg and .jpeg output
const jpegQuality = 95

// Save writes the canvas to path, choosing the encoding from the file extension:
// .ppm, .png, .jpg/.jpeg or .bmp
func (c *Canvas) Save(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".ppm" {
		return c.savePPM(path)
	}

	encoder, err := encoderFor(ext)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := imgio.Save(path, c.Image(), encoder); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// SaveThumbnail writes a copy of the canvas scaled so its longest side is maxSize pixels
func (c *Canvas) SaveThumbnail(path string, maxSize int) error {
	encoder, err := encoderFor(strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return fmt.Errorf("save thumbnail %s: %w", path, err)
	}
	if err := imgio.Save(path, c.Thumbnail(maxSize), encoder); err != nil {
		return fmt.Errorf("save thumbnail %s: %w", path, err)
	}
	return nil
}

// Thumbnail scales the canvas image so its longest side is maxSize pixels.
// Canvases already within maxSize are returned at full size.
func (c *Canvas) Thumbnail(maxSize int) *image.RGBA {
	img := c.Image()
	longest := max(c.width, c.height)
	if maxSize <= 0 || longest <= maxSize {
		return img
	}
	w := max(1, c.width*maxSize/longest)
	h := max(1, c.height*maxSize/longest)
	return transform.Resize(img, w, h, transform.Linear)
}

func encoderFor(ext string) (imgio.Encoder, error) {
	switch ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func (c *Canvas) savePPM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := c.WritePPM(f); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}
