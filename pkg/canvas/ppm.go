package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxPPMLineLength is the longest line plain PPM readers are required to accept
const maxPPMLineLength = 70

// WritePPM writes the canvas as a plain (P3) PPM with components scaled to 0-255
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		lineLen := 0
		for x := 0; x < c.width; x++ {
			r, g, b := c.pixels[y*c.width+x].Bytes()
			for _, v := range [3]uint8{r, g, b} {
				s := strconv.Itoa(int(v))
				if lineLen > 0 && lineLen+1+len(s) > maxPPMLineLength {
					bw.WriteByte('\n')
					lineLen = 0
				}
				if lineLen > 0 {
					bw.WriteByte(' ')
					lineLen++
				}
				bw.WriteString(s)
				lineLen += len(s)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// ToPPM returns the plain PPM encoding as a string
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	c.WritePPM(&sb)
	return sb.String()
}
