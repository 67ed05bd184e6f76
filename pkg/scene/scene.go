package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SceneSetup bundles a world with the camera settings it is meant to be viewed with
type SceneSetup struct {
	Name         string
	World        *World
	CameraConfig CameraConfig
}

// CameraConfig describes a pinhole camera: image size, field of view and placement
type CameraConfig struct {
	Width       int        `json:"width"`       // Image width in pixels
	Height      int        `json:"height"`      // Image height in pixels
	FieldOfView float64    `json:"fieldOfView"` // Horizontal or vertical field of view in radians, whichever side is longer
	From        core.Tuple `json:"from"`        // Eye position
	To          core.Tuple `json:"to"`          // Point looked at
	Up          core.Tuple `json:"up"`          // Approximate up vector
}

// DefaultCameraConfig looks down +z from (0, 0, -5) at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       400,
		Height:      400,
		FieldOfView: math.Pi / 2,
		From:        core.Point(0, 0, -5),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.FieldOfView > 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	return result
}

// applyOverrides merges the first override, if any, onto the scene's camera
func applyOverrides(config CameraConfig, overrides []CameraConfig) CameraConfig {
	if len(overrides) > 0 {
		return MergeCameraConfig(config, overrides[0])
	}
	return config
}
