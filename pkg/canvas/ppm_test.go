package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestCanvas_ToPPMHeader(t *testing.T) {
	c := NewCanvas(5, 3)
	lines := strings.Split(c.ToPPM(), "\n")

	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, []string{"P3", "5 3", "255"}, lines[:3])
}

func TestCanvas_ToPPMPixelData(t *testing.T) {
	c := NewCanvas(5, 3)
	c.SetPixel(0, 0, core.NewColor(1.5, 0, 0))
	c.SetPixel(2, 1, core.NewColor(0, 0.5, 0))
	c.SetPixel(4, 2, core.NewColor(-0.5, 0, 1))

	lines := strings.Split(c.ToPPM(), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "255 0 0 0 0 0 0 0 0 0 0 0 0 0 0", lines[3])
	assert.Equal(t, "0 0 0 0 0 0 0 128 0 0 0 0 0 0 0", lines[4])
	assert.Equal(t, "0 0 0 0 0 0 0 0 0 0 0 0 0 0 255", lines[5])
}

func TestCanvas_ToPPMWrapsLongLines(t *testing.T) {
	c := NewCanvas(10, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			c.SetPixel(x, y, core.NewColor(1, 0.8, 0.6))
		}
	}

	ppm := c.ToPPM()
	lines := strings.Split(ppm, "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204", lines[3])
	assert.Equal(t, "153 255 204 153 255 204 153 255 204 153 255 204 153", lines[4])
	assert.Equal(t, "255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204", lines[5])
	assert.Equal(t, "153 255 204 153 255 204 153 255 204 153 255 204 153", lines[6])

	for i, line := range lines {
		assert.LessOrEqual(t, len(line), maxPPMLineLength, "line %d", i)
	}
}

func TestCanvas_ToPPMEndsWithNewline(t *testing.T) {
	c := NewCanvas(5, 3)
	assert.True(t, strings.HasSuffix(c.ToPPM(), "\n"))
}
