package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

var (
	ErrUnknownFormat    = errors.New("unknown scene file format")
	ErrUnknownShape     = errors.New("unknown shape type")
	ErrUnknownTransform = errors.New("unknown transform")
	ErrInvalidTransform = errors.New("invalid transform")
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidVector    = errors.New("invalid vector")
)

// SceneFile is the on-disk description of a scene in TOML or YAML
type SceneFile struct {
	Name   string      `toml:"name" yaml:"name"`
	Camera CameraSpec  `toml:"camera" yaml:"camera"`
	Light  *LightSpec  `toml:"light" yaml:"light"`
	Shapes []ShapeSpec `toml:"shapes" yaml:"shapes"`
}

// CameraSpec overrides scene.DefaultCameraConfig; zero fields keep the default
type CameraSpec struct {
	Width  int       `toml:"width" yaml:"width"`
	Height int       `toml:"height" yaml:"height"`
	FOV    float64   `toml:"fov" yaml:"fov"` // Degrees
	From   []float64 `toml:"from" yaml:"from"`
	To     []float64 `toml:"to" yaml:"to"`
	Up     []float64 `toml:"up" yaml:"up"`
}

// LightSpec describes the point light
type LightSpec struct {
	Position  []float64 `toml:"position" yaml:"position"`
	Intensity any       `toml:"intensity" yaml:"intensity"` // [r, g, b] or "#rrggbb"
}

// ShapeSpec describes one primitive
type ShapeSpec struct {
	Type      string          `toml:"type" yaml:"type"` // sphere, plane or cube
	Transform []TransformSpec `toml:"transform" yaml:"transform"`
	Material  *MaterialSpec   `toml:"material" yaml:"material"`
}

// TransformSpec is one step of a transform; steps apply in the order listed
type TransformSpec struct {
	Op   string    `toml:"op" yaml:"op"` // translate, scale, rotate_x, rotate_y, rotate_z, shear
	Args []float64 `toml:"args" yaml:"args"`
}

// MaterialSpec overrides material.Default(); missing fields keep the default
type MaterialSpec struct {
	Color     any      `toml:"color" yaml:"color"` // [r, g, b] or "#rrggbb"
	Ambient   *float64 `toml:"ambient" yaml:"ambient"`
	Diffuse   *float64 `toml:"diffuse" yaml:"diffuse"`
	Specular  *float64 `toml:"specular" yaml:"specular"`
	Shininess *float64 `toml:"shininess" yaml:"shininess"`
}

// LoadSceneFile reads a .toml, .yaml or .yml scene file
func LoadSceneFile(path string) (*SceneFile, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var sf *SceneFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		sf, err = DecodeTOML(data)
	case ".yaml", ".yml":
		sf, err = DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if sf.Name == "" {
		sf.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sf, nil
}

// DecodeTOML parses a TOML scene description, rejecting unknown keys
func DecodeTOML(data []byte) (*SceneFile, error) {
	var sf SceneFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return &sf, nil
}

// DecodeYAML parses a YAML scene description, rejecting unknown keys
func DecodeYAML(data []byte) (*SceneFile, error) {
	var sf SceneFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &sf, nil
}

// Build constructs the world and camera settings described by the file
func (sf *SceneFile) Build() (*scene.SceneSetup, error) {
	cameraConfig, err := sf.Camera.build()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	w := scene.NewWorld()
	if sf.Light != nil {
		light, err := sf.Light.build(w.Light)
		if err != nil {
			return nil, fmt.Errorf("light: %w", err)
		}
		w.Light = light
	}

	for i, spec := range sf.Shapes {
		shape, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		w.AddShape(shape)
	}

	return &scene.SceneSetup{
		Name:         sf.Name,
		World:        w,
		CameraConfig: cameraConfig,
	}, nil
}

func (c CameraSpec) build() (scene.CameraConfig, error) {
	if c.Width < 0 || c.Height < 0 {
		return scene.CameraConfig{}, fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.FOV < 0 || c.FOV >= 180 {
		return scene.CameraConfig{}, fmt.Errorf("field of view %v outside (0, 180) degrees", c.FOV)
	}

	override := scene.CameraConfig{
		Width:       c.Width,
		Height:      c.Height,
		FieldOfView: c.FOV * math.Pi / 180,
	}

	var err error
	if override.From, err = optionalTuple("from", c.From, core.Point); err != nil {
		return scene.CameraConfig{}, err
	}
	if override.To, err = optionalTuple("to", c.To, core.Point); err != nil {
		return scene.CameraConfig{}, err
	}
	if override.Up, err = optionalTuple("up", c.Up, core.Vector); err != nil {
		return scene.CameraConfig{}, err
	}

	config := scene.MergeCameraConfig(scene.DefaultCameraConfig(), override)

	// A degenerate orientation has no view transform inverse
	view := config.To.Subtract(config.From)
	if view.Magnitude() < core.Epsilon {
		return scene.CameraConfig{}, fmt.Errorf("%w: from and to are the same point", ErrInvalidVector)
	}
	if view.Normalize().Cross(config.Up.Normalize()).Magnitude() < core.Epsilon {
		return scene.CameraConfig{}, fmt.Errorf("%w: up is zero or parallel to the view direction", ErrInvalidVector)
	}

	return config, nil
}

func (l LightSpec) build(defaults lights.PointLight) (lights.PointLight, error) {
	light := defaults

	if l.Position != nil {
		position, err := tuple("position", l.Position, core.Point)
		if err != nil {
			return light, err
		}
		light.Position = position
	}

	if l.Intensity != nil {
		intensity, err := parseColor(l.Intensity)
		if err != nil {
			return light, fmt.Errorf("intensity: %w", err)
		}
		light.Intensity = intensity
	}

	return light, nil
}

func (s ShapeSpec) build() (*geometry.Shape, error) {
	var shape *geometry.Shape
	switch strings.ToLower(s.Type) {
	case "sphere":
		shape = geometry.NewSphere()
	case "plane":
		shape = geometry.NewPlane()
	case "cube":
		shape = geometry.NewCube()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Type)
	}

	transform, err := buildTransform(s.Transform)
	if err != nil {
		return nil, err
	}
	if !transform.Invertible() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransform, core.ErrSingularMatrix)
	}
	shape.SetTransform(transform)

	if s.Material != nil {
		m, err := s.Material.build()
		if err != nil {
			return nil, err
		}
		shape.Material = m
	}

	return shape, nil
}

func (m MaterialSpec) build() (material.Material, error) {
	mat := material.Default()

	if m.Color != nil {
		color, err := parseColor(m.Color)
		if err != nil {
			return mat, fmt.Errorf("material color: %w", err)
		}
		mat.Color = color
	}
	if m.Ambient != nil {
		mat.Ambient = *m.Ambient
	}
	if m.Diffuse != nil {
		mat.Diffuse = *m.Diffuse
	}
	if m.Specular != nil {
		mat.Specular = *m.Specular
	}
	if m.Shininess != nil {
		mat.Shininess = *m.Shininess
	}

	if err := mat.Validate(); err != nil {
		return mat, err
	}
	return mat, nil
}

// buildTransform composes the steps so the first listed is applied first
func buildTransform(steps []TransformSpec) (core.Matrix, error) {
	m := core.Identity()
	for i, step := range steps {
		next, err := step.matrix()
		if err != nil {
			return core.Matrix{}, fmt.Errorf("transform %d: %w", i, err)
		}
		m = m.Then(next)
	}
	return m, nil
}

func (t TransformSpec) matrix() (core.Matrix, error) {
	radians := func() float64 { return t.Args[0] * math.Pi / 180 }

	switch op := strings.ToLower(t.Op); op {
	case "translate":
		if err := t.wantArgs(3); err != nil {
			return core.Matrix{}, err
		}
		return core.Translation(t.Args[0], t.Args[1], t.Args[2]), nil
	case "scale":
		if len(t.Args) == 1 {
			return core.Scaling(t.Args[0], t.Args[0], t.Args[0]), nil
		}
		if err := t.wantArgs(3); err != nil {
			return core.Matrix{}, err
		}
		return core.Scaling(t.Args[0], t.Args[1], t.Args[2]), nil
	case "rotate_x", "rotate_y", "rotate_z":
		if err := t.wantArgs(1); err != nil {
			return core.Matrix{}, err
		}
		switch op {
		case "rotate_x":
			return core.RotationX(radians()), nil
		case "rotate_y":
			return core.RotationY(radians()), nil
		default:
			return core.RotationZ(radians()), nil
		}
	case "shear":
		if err := t.wantArgs(6); err != nil {
			return core.Matrix{}, err
		}
		a := t.Args
		return core.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	default:
		return core.Matrix{}, fmt.Errorf("%w: %q", ErrUnknownTransform, t.Op)
	}
}

func (t TransformSpec) wantArgs(n int) error {
	if len(t.Args) != n {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidTransform, t.Op, n, len(t.Args))
	}
	return nil
}

func tuple(name string, v []float64, ctor func(x, y, z float64) core.Tuple) (core.Tuple, error) {
	if len(v) != 3 {
		return core.Tuple{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidVector, name, len(v))
	}
	return ctor(v[0], v[1], v[2]), nil
}

func optionalTuple(name string, v []float64, ctor func(x, y, z float64) core.Tuple) (core.Tuple, error) {
	if v == nil {
		return core.Tuple{}, nil
	}
	return tuple(name, v, ctor)
}

// parseColor accepts a hex string such as "#cc3300" or a list of three numbers.
// Numeric components are linear and may exceed 1.
func parseColor(v any) (core.Color, error) {
	switch c := v.(type) {
	case string:
		hex, err := colorful.Hex(c)
		if err != nil {
			return core.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
		return core.NewColor(hex.R, hex.G, hex.B), nil
	case []any:
		if len(c) != 3 {
			return core.Color{}, fmt.Errorf("%w: need 3 components, got %d", ErrInvalidColor, len(c))
		}
		var rgb [3]float64
		for i, component := range c {
			f, ok := toFloat(component)
			if !ok {
				return core.Color{}, fmt.Errorf("%w: component %d is %T", ErrInvalidColor, i, component)
			}
			rgb[i] = f
		}
		return core.NewColor(rgb[0], rgb[1], rgb[2]), nil
	default:
		return core.Color{}, fmt.Errorf("%w: unsupported value %T", ErrInvalidColor, v)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
