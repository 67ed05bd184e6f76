package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName  string
	file       string
	width      int
	height     int
	fovDegrees float64
	out        string
	thumbSize  int
	workers    int
	tileSize   int
	watch      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.sceneName, "scene", "planes", "Builtin scene: "+strings.Join(scene.BuiltinNames(), ", "))
	flag.StringVar(&opts.file, "file", "", "Scene file (.toml, .yaml) to render instead of a builtin scene")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.Float64Var(&opts.fovDegrees, "fov", 0, "Field of view in degrees (0 = scene default)")
	flag.StringVar(&opts.out, "out", "", "Output image (.png, .jpg, .bmp, .ppm); default output/<scene>/render_<timestamp>.png")
	flag.IntVar(&opts.thumbSize, "thumb", 0, "Also write a thumbnail with this longest side next to the output")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.IntVar(&opts.tileSize, "tile", renderer.DefaultConfig().TileSize, "Tile size in pixels")
	flag.BoolVar(&opts.watch, "watch", false, "Re-render whenever the scene file changes (requires -file)")
	verbose := flag.Bool("v", false, "Verbose (debug) logging")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: go-phong-raytracer [-scene name | -file scene.toml] [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListBuiltinScenes() {
			fmt.Printf("  %-14s %s\n", info.ID, info.Description)
		}
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	if opts.watch {
		err = watch(ctx, opts, logger)
	} else {
		_, err = run(ctx, opts, logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

// createScene loads the scene file when one is given, otherwise the named builtin scene
func createScene(sceneName, file string) (*scene.SceneSetup, error) {
	if file != "" {
		sf, err := loaders.LoadSceneFile(file)
		if err != nil {
			return nil, err
		}
		return sf.Build()
	}
	return scene.Builtin(sceneName)
}

// createOutputPath returns the explicit output path, or a timestamped PNG under output/<scene>/
func createOutputPath(sceneName, out string, now time.Time) (string, error) {
	if out != "" {
		return loaders.ExpandPath(out)
	}
	name := sceneName
	if name == "" {
		name = "scene"
	}
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", now.Format("20060102_150405"))), nil
}

// thumbnailPath puts "_thumb" before the extension of path
func thumbnailPath(path string) string {
	ext := filepath.Ext(path)
	if ext == ".ppm" {
		ext = ".png"
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_thumb" + ext
}

// run renders once and returns the path written
func run(ctx context.Context, opts options, logger *slog.Logger) (string, error) {
	setup, err := createScene(opts.sceneName, opts.file)
	if err != nil {
		return "", err
	}

	cameraConfig := scene.MergeCameraConfig(setup.CameraConfig, scene.CameraConfig{
		Width:       opts.width,
		Height:      opts.height,
		FieldOfView: opts.fovDegrees * math.Pi / 180,
	})
	camera := renderer.NewCameraFromConfig(cameraConfig)

	logger.Info("rendering scene", "scene", setup.Name, "shapes", setup.World.Len(),
		"width", cameraConfig.Width, "height", cameraConfig.Height)

	pr := renderer.NewParallelRenderer(setup.World, camera, renderer.Config{
		TileSize:   opts.tileSize,
		NumWorkers: opts.workers,
		Logger:     logger,
	})
	img, stats, err := pr.Render(ctx, nil)
	if err != nil {
		return "", err
	}

	path, err := createOutputPath(setup.Name, opts.out, time.Now())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := img.Save(path); err != nil {
		return "", err
	}
	logger.Info("render saved", "path", path, "duration", stats.Duration.Round(time.Millisecond))

	if opts.thumbSize > 0 {
		thumb := thumbnailPath(path)
		if err := img.SaveThumbnail(thumb, opts.thumbSize); err != nil {
			return "", err
		}
		logger.Info("thumbnail saved", "path", thumb)
	}

	return path, nil
}

// watch renders the scene file, then renders again after every change until ctx is done
func watch(ctx context.Context, opts options, logger *slog.Logger) error {
	if opts.file == "" {
		return errors.New("-watch requires -file")
	}

	if _, err := run(ctx, opts, logger); err != nil {
		logger.Error("render failed", "error", err)
	}

	logger.Info("watching for changes", "file", opts.file)
	return loaders.WatchSceneFile(ctx, opts.file, func(_ *loaders.SceneFile, err error) {
		if err != nil {
			logger.Error("scene file invalid", "error", err)
			return
		}
		if _, err := run(ctx, opts, logger); err != nil {
			logger.Error("render failed", "error", err)
		}
	})
}
