package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Parameter limits shared by the render and inspect endpoints
const (
	minImageSize   = 10
	maxImageSize   = 2000
	minFOVDegrees  = 1.0
	maxFOVDegrees  = 179.0
	minTileSize    = 4
	maxTileSize    = 512
	maxWorkerCount = 256
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a new web server; a nil logger uses slog.Default()
func NewServer(port int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		port:   port,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest represents a render request from the client.
// Zero values mean "use the scene's default".
type RenderRequest struct {
	Scene      string  `json:"scene"`      // Builtin scene name
	Width      int     `json:"width"`      // Image width
	Height     int     `json:"height"`     // Image height
	FOVDegrees float64 `json:"fovDegrees"` // Field of view
	NumWorkers int     `json:"numWorkers"` // Parallel workers (0 = CPU count)
	TileSize   int     `json:"tileSize"`   // Tile size in pixels
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files when a frontend is present
	if _, err := os.Stat("static"); err == nil {
		mux.Handle("/", http.FileServer(http.Dir("static/")))
	}

	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render/ws", s.handleRenderWebSocket)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting web server", "url", fmt.Sprintf("http://localhost%s", addr))
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the builtin scenes with their camera defaults
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"scenes": scene.ListBuiltinScenes(),
		"limits": map[string]any{
			"width":      map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":     map[string]int{"min": minImageSize, "max": maxImageSize},
			"fovDegrees": map[string]float64{"min": minFOVDegrees, "max": maxFOVDegrees},
			"tileSize":   map[string]int{"min": minTileSize, "max": maxTileSize},
			"workers":    map[string]int{"min": 0, "max": maxWorkerCount},
		},
	})
}

// parseRenderRequest parses and validates request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "planes" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.FOVDegrees, err = parseFloatParam(query, "fov", 0, minFOVDegrees, maxFOVDegrees); err != nil {
		return nil, err
	}
	if req.NumWorkers, err = parseIntParam(query, "workers", 0, 0, maxWorkerCount); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tileSize", renderer.DefaultConfig().TileSize, minTileSize, maxTileSize); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested builtin scene with the request's camera overrides
func (s *Server) createScene(req *RenderRequest) (*scene.SceneSetup, error) {
	return scene.Builtin(req.Scene, scene.CameraConfig{
		Width:       req.Width,
		Height:      req.Height,
		FieldOfView: req.FOVDegrees * math.Pi / 180,
	})
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// writeJSON writes v as a JSON response with CORS enabled
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeJSONError writes {"error": message}
func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
