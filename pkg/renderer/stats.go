package renderer

import "time"

// RenderStats contains statistics about a finished or cancelled render
type RenderStats struct {
	TotalPixels    int           `json:"totalPixels"`    // Pixels in the image
	RenderedPixels int           `json:"renderedPixels"` // Pixels actually shaded
	TotalTiles     int           `json:"totalTiles"`
	CompletedTiles int           `json:"completedTiles"`
	NumWorkers     int           `json:"numWorkers"`
	Duration       time.Duration `json:"duration"`
}

// PixelsPerSecond returns the shading throughput, zero for an instant render
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.RenderedPixels) / s.Duration.Seconds()
}

// Complete reports whether every tile was rendered
func (s RenderStats) Complete() bool {
	return s.CompletedTiles == s.TotalTiles
}
