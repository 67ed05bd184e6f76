package renderer

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

// Config contains configuration for parallel rendering
type Config struct {
	TileSize   int          // Size of each square tile in pixels
	NumWorkers int          // Number of parallel workers (0 = use CPU count)
	Logger     *slog.Logger // Destination for render progress; nil uses slog.Default()
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX     int // Tile coordinates (not pixel coordinates)
	TileY     int
	Bounds    image.Rectangle // Pixel bounds of the tile
	TileImage *image.RGBA     // Image data for just this tile

	// Progress information
	TileNumber int // Completion order of this tile (1-based)
	TotalTiles int // Total number of tiles in the image
}

// ParallelRenderer renders a scene tile by tile on a worker pool.
// Its output is identical to Camera.Render.
type ParallelRenderer struct {
	scene  Scene
	camera *Camera
	config Config
	tiles  []*Tile
	pool   *WorkerPool
	logger *slog.Logger
}

// NewParallelRenderer creates a renderer for the camera's raster
func NewParallelRenderer(s Scene, camera *Camera, config Config) *ParallelRenderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ParallelRenderer{
		scene:  s,
		camera: camera,
		config: config,
		tiles:  NewTileGrid(camera.HSize(), camera.VSize(), config.TileSize),
		pool:   NewWorkerPool(config.NumWorkers),
		logger: logger,
	}
}

// Tiles returns the tile grid the image is split into
func (pr *ParallelRenderer) Tiles() []*Tile {
	return pr.tiles
}

// Render renders every tile and returns the finished canvas.
// tileCallback, if not nil, runs on the calling goroutine once per finished tile.
// When ctx is cancelled the partially rendered canvas is returned with ctx's error.
func (pr *ParallelRenderer) Render(ctx context.Context, tileCallback func(TileCompletionResult)) (*canvas.Canvas, RenderStats, error) {
	img := canvas.NewCanvas(pr.camera.HSize(), pr.camera.VSize())
	stats := RenderStats{
		TotalPixels: img.Width() * img.Height(),
		TotalTiles:  len(pr.tiles),
		NumWorkers:  pr.pool.NumWorkers(),
	}

	pr.logger.Info("render started",
		"width", img.Width(), "height", img.Height(),
		"tiles", stats.TotalTiles, "workers", stats.NumWorkers)
	start := time.Now()

	// Each tile writes only its own pixels, so workers share the canvas without locking
	render := func(tile *Tile) int {
		return pr.camera.renderBounds(pr.scene, img, tile.Bounds)
	}

	results := make(chan TileResult)
	var runErr error
	go func() {
		runErr = pr.pool.Run(ctx, pr.tiles, render, results)
		close(results)
	}()

	for result := range results {
		stats.CompletedTiles++
		stats.RenderedPixels += result.Pixels

		pr.logger.Debug("tile complete",
			"tile", result.Tile.ID, "worker", result.WorkerID,
			"completed", stats.CompletedTiles, "total", stats.TotalTiles,
			"duration", result.Duration)

		if tileCallback != nil {
			tileCallback(TileCompletionResult{
				TileX:      result.Tile.X,
				TileY:      result.Tile.Y,
				Bounds:     result.Tile.Bounds,
				TileImage:  img.SubImage(result.Tile.Bounds),
				TileNumber: stats.CompletedTiles,
				TotalTiles: stats.TotalTiles,
			})
		}
	}
	stats.Duration = time.Since(start)

	if runErr != nil {
		pr.logger.Warn("render stopped",
			"completedTiles", stats.CompletedTiles, "tiles", stats.TotalTiles, "error", runErr)
		return img, stats, runErr
	}

	pr.logger.Info("render finished",
		"duration", stats.Duration, "pixelsPerSecond", int(stats.PixelsPerSecond()))
	return img, stats, nil
}

// RenderResult is the final outcome of an asynchronous render
type RenderResult struct {
	Canvas *canvas.Canvas
	Stats  RenderStats
}

// RenderAsync renders in the background and reports through channels.
// Tile events are dropped rather than blocking the render when the tile channel is full.
// Exactly one of the result and error channels receives a value before all channels close.
func (pr *ParallelRenderer) RenderAsync(ctx context.Context) (<-chan RenderResult, <-chan TileCompletionResult, <-chan error) {
	resultChan := make(chan RenderResult, 1)
	tileChan := make(chan TileCompletionResult, len(pr.tiles))
	errChan := make(chan error, 1)

	go func() {
		defer close(resultChan)
		defer close(tileChan)
		defer close(errChan)

		img, stats, err := pr.Render(ctx, func(result TileCompletionResult) {
			select {
			case tileChan <- result:
			case <-ctx.Done():
			default:
			}
		})
		if err != nil {
			errChan <- err
			return
		}
		resultChan <- RenderResult{Canvas: img, Stats: stats}
	}()

	return resultChan, tileChan, errChan
}
