// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command g3ddemo renders a rotating grid of textured pentagons.
//
// Usage:
//
//	g3ddemo [-config g3d.yaml] [-width 1280] [-height 720] [-assets dir] [-log debug]
//
// W/S or Up/Down move the camera toward or away from the origin, A/D or
// Left/Right orbit around it. Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/gpu"
	"github.com/gogpu/g3d/internal/config"
	"github.com/gogpu/g3d/render"

	_ "github.com/gogpu/wgpu/hal/vulkan"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "g3d.yaml", "YAML configuration file")
		width      = flag.Int("width", 0, "window width (overrides config)")
		height     = flag.Int("height", 0, "window height (overrides config)")
		assets     = flag.String("assets", "", "asset directory (overrides config)")
		logLevel   = flag.String("log", "", "log level (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("g3ddemo: %v", err)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *assets != "" {
		cfg.Assets.Dir = *assets
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("g3ddemo: %v", err)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	g3d.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		log.Fatalf("g3ddemo: %v", err)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	mode, _ := cfg.PresentModeValue()
	r, err := render.New(glfwWindow{win}, render.WithGPUOptions(gpu.WithPresentMode(mode)))
	if err != nil {
		return err
	}
	defer r.Close()

	info := r.Context().AdapterInfo()
	logger.Info("adapter", "name", info.Name, "type", info.DeviceType,
		"format", r.Context().Config().Format)

	s, err := newScene(r, cfg)
	if err != nil {
		return err
	}
	defer s.destroy()

	controller := render.NewCameraController(cfg.Scene.CameraSpeed)
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		if action == glfw.Repeat {
			return
		}
		if d, ok := keyDirection(key); ok {
			controller.SetPressed(d, action == glfw.Press)
		}
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if err := r.Resize(uint32(max(width, 0)), uint32(max(height, 0))); err != nil { //nolint:gosec // clamped
			logger.Error("resize", "width", width, "height", height, "err", err)
		}
	})

	fps := newFPSCounter(logger)
	last := time.Now()
	for !win.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if err := s.update(dt); err != nil {
			return err
		}
		cam := r.Camera()
		controller.Update(&cam)
		r.SetCamera(cam)

		if err := r.PushObject(s.object); err != nil {
			return err
		}
		if err := handleFrameError(r, r.Render(), logger); err != nil {
			return err
		}
		fps.tick(now)
	}
	return nil
}

// handleFrameError reconfigures after lost or outdated surfaces, logs
// skipped frames and returns fatal errors.
func handleFrameError(r *render.Renderer, err error, logger *slog.Logger) error {
	kind := render.ClassifySurfaceError(err)
	switch {
	case kind == render.SurfaceOK:
		return nil
	case kind.Recoverable():
		logger.Debug("surface needs reconfigure", "kind", kind)
		return r.Reconfigure()
	case kind.Fatal():
		return err
	default:
		logger.Warn("frame skipped", "kind", kind, "err", err)
		return nil
	}
}

func keyDirection(key glfw.Key) (render.Direction, bool) {
	switch key {
	case glfw.KeyW, glfw.KeyUp:
		return render.Forward, true
	case glfw.KeyS, glfw.KeyDown:
		return render.Backward, true
	case glfw.KeyA, glfw.KeyLeft:
		return render.Left, true
	case glfw.KeyD, glfw.KeyRight:
		return render.Right, true
	default:
		return 0, false
	}
}

// fpsCounter logs the frame rate once per second.
type fpsCounter struct {
	logger *slog.Logger
	start  time.Time
	frames int
}

func newFPSCounter(logger *slog.Logger) *fpsCounter {
	return &fpsCounter{logger: logger, start: time.Now()}
}

func (f *fpsCounter) tick(now time.Time) {
	f.frames++
	if elapsed := now.Sub(f.start); elapsed >= time.Second {
		f.logger.Info("fps", "fps", float64(f.frames)/elapsed.Seconds())
		f.frames = 0
		f.start = now
	}
}
