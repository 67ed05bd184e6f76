package server

import (
	"net/http"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool           `json:"hit"`
	ShapeID      int            `json:"shapeId"`
	GeometryType string         `json:"geometryType"`
	Point        [3]float64     `json:"point"`
	Normal       [3]float64     `json:"normal"` // Facing the eye
	Distance     float64        `json:"distance"`
	Inside       bool           `json:"inside"`
	InShadow     bool           `json:"inShadow"`
	Color        [3]float64     `json:"color"` // Shaded color, unclamped
	Material     map[string]any `json:"material"`
}

// inspectPixel casts the camera ray through a pixel and describes the surface it hits
func inspectPixel(setup *scene.SceneSetup, pixelX, pixelY int) InspectResponse {
	camera := renderer.NewCameraFromConfig(setup.CameraConfig)
	ray := camera.RayForPixel(pixelX, pixelY)

	w := setup.World
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return InspectResponse{Hit: false, ShapeID: -1}
	}

	comps := w.PrepareComputations(hit, ray)
	shape := w.Shape(hit.Object)
	color := w.ShadeHit(comps)
	m := shape.Material

	return InspectResponse{
		Hit:          true,
		ShapeID:      int(hit.Object),
		GeometryType: shape.Kind.String(),
		Point:        tupleArray(comps.Point),
		Normal:       tupleArray(comps.NormalV),
		Distance:     comps.T,
		Inside:       comps.Inside,
		InShadow:     w.IsShadowed(comps.OverPoint),
		Color:        [3]float64{color.R, color.G, color.B},
		Material: map[string]any{
			"color":     [3]float64{m.Color.R, m.Color.G, m.Color.B},
			"hex":       hexColor(m.Color),
			"ambient":   m.Ambient,
			"diffuse":   m.Diffuse,
			"specular":  m.Specular,
			"shininess": m.Shininess,
		},
	}
}

func tupleArray(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

func hexColor(c core.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	setup, err := s.createScene(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	if pixelX < 0 || pixelX >= setup.CameraConfig.Width || pixelY < 0 || pixelY >= setup.CameraConfig.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(setup, pixelX, pixelY))
}
