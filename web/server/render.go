package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// StreamEvent is one message of a render stream. Over SSE Type is the event name
// and Data the event data; over a websocket the whole event is sent as JSON.
type StreamEvent struct {
	Type string          `json:"type"` // "console", "tile", "complete", "error"
	Data json.RawMessage `json:"data"`
}

// TileUpdate represents a single finished tile
type TileUpdate struct {
	TileX      int    `json:"tileX"` // Tile grid coordinates
	TileY      int    `json:"tileY"`
	X          int    `json:"x"` // Pixel position of the tile's top-left corner
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Completion order (1-based)
	TotalTiles int    `json:"totalTiles"` // Total number of tiles in the image
}

// CompleteUpdate carries the finished image
type CompleteUpdate struct {
	Scene          string               `json:"scene"`
	Width          int                  `json:"width"`
	Height         int                  `json:"height"`
	ImageData      string               `json:"imageData"` // Base64 encoded PNG
	ElapsedMs      int64                `json:"elapsedMs"`
	PrimitiveCount int                  `json:"primitiveCount"`
	Stats          renderer.RenderStats `json:"stats"`
}

// newEvent encodes data into an event
func newEvent(eventType string, data any) StreamEvent {
	raw, err := json.Marshal(data)
	if err != nil {
		raw, _ = json.Marshal(fmt.Sprintf("failed to encode %s event: %v", eventType, err))
		eventType = "error"
	}
	return StreamEvent{Type: eventType, Data: raw}
}

// handleRender streams a render as Server-Sent Events
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	events := make(chan StreamEvent, 100)
	go s.streamRender(ctx, r, events)
	s.writeSSEEvents(ctx, w, events)
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents writes events until the channel closes or the client goes away.
// It is the only writer to w.
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, events <-chan StreamEvent) {
	flusher, _ := w.(http.Flusher)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		case <-ctx.Done():
			return
		}
	}
}

// streamRender validates the request, renders, and reports progress on events,
// closing events when done
func (s *Server) streamRender(ctx context.Context, r *http.Request, events chan<- StreamEvent) {
	defer close(events)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, events, newEvent("error", fmt.Sprintf("Invalid request: %v", err)))
		return
	}

	setup, err := s.createScene(req)
	if err != nil {
		s.sendEvent(ctx, events, newEvent("error", err.Error()))
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	logger := slog.New(NewConsoleHandler(s.logger.Handler(), consoleChan))
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, events)
	}()

	camera := renderer.NewCameraFromConfig(setup.CameraConfig)
	pr := renderer.NewParallelRenderer(setup.World, camera, renderer.Config{
		TileSize:   req.TileSize,
		NumWorkers: req.NumWorkers,
		Logger:     logger.With("scene", setup.Name),
	})

	startTime := time.Now()
	resultChan, tileChan, errChan := pr.RenderAsync(ctx)

	for tile := range tileChan {
		s.handleTileUpdate(ctx, events, tile)
	}

	// Console messages logged during the render go out before the final event
	close(consoleChan)
	<-consoleDone

	if err := <-errChan; err != nil {
		s.sendEvent(ctx, events, newEvent("error", fmt.Sprintf("Rendering failed: %v", err)))
		return
	}
	result := <-resultChan

	imageData, err := imageToBase64PNG(result.Canvas.Image())
	if err != nil {
		s.sendEvent(ctx, events, newEvent("error", fmt.Sprintf("Failed to encode image: %v", err)))
		return
	}

	s.sendEvent(ctx, events, newEvent("complete", CompleteUpdate{
		Scene:          setup.Name,
		Width:          result.Canvas.Width(),
		Height:         result.Canvas.Height(),
		ImageData:      imageData,
		ElapsedMs:      time.Since(startTime).Milliseconds(),
		PrimitiveCount: setup.World.Len(),
		Stats:          result.Stats,
	}))
}

// streamConsoleMessages forwards console messages until consoleChan closes.
// Messages are dropped rather than blocking the render when events is full.
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, events chan<- StreamEvent) {
	for msg := range consoleChan {
		select {
		case events <- newEvent("console", msg):
		case <-ctx.Done():
		default:
			// Channel full, skip message to avoid blocking
		}
	}
}

// handleTileUpdate encodes and sends a tile event
func (s *Server) handleTileUpdate(ctx context.Context, events chan<- StreamEvent, tile renderer.TileCompletionResult) {
	tileData, err := imageToBase64PNG(tile.TileImage)
	if err != nil {
		s.logger.Error("failed to encode tile", "tileX", tile.TileX, "tileY", tile.TileY, "error", err)
		return
	}

	s.sendEvent(ctx, events, newEvent("tile", TileUpdate{
		TileX:      tile.TileX,
		TileY:      tile.TileY,
		X:          tile.Bounds.Min.X,
		Y:          tile.Bounds.Min.Y,
		Width:      tile.Bounds.Dx(),
		Height:     tile.Bounds.Dy(),
		ImageData:  tileData,
		TileNumber: tile.TileNumber,
		TotalTiles: tile.TotalTiles,
	}))
}

// sendEvent blocks until the event is queued or the client disconnects
func (s *Server) sendEvent(ctx context.Context, events chan<- StreamEvent, event StreamEvent) {
	select {
	case events <- event:
	case <-ctx.Done():
	}
}
