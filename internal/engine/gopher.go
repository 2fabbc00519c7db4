package engine

import (
	"DodgeBall3D/internal/config"
	"DodgeBall3D/internal/input"
	"DodgeBall3D/internal/logger"
	"DodgeBall3D/internal/renderer"
	"DodgeBall3D/internal/scene"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// maxFrameDelta caps dt after a stall (window drag, breakpoint) so the
// simulation does not jump.
const maxFrameDelta = 0.1

// pixelScaler is implemented by backends that need the framebuffer to window
// ratio, which differs from 1 on HiDPI screens.
type pixelScaler interface {
	SetPixelScale(scale float32)
}

// Gopher owns the window, the GL context and the frame loop:
// poll input, tick the active scene, render it, present.
type Gopher struct {
	Width  int32
	Height int32
	Title  string
	VSync  bool

	window *glfw.Window
	render renderer.Render
	scenes *scene.Manager
	input  *input.Manager
	quit   bool

	initialized bool // renderer holds GL resources
	closed      bool
}

func NewGopher(cfg config.Window, render renderer.Render, scenes *scene.Manager) *Gopher {
	return &Gopher{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
		VSync:  cfg.VSync,
		render: render,
		scenes: scenes,
	}
}

// Open creates the window and the OpenGL 4.1 core context and initializes the
// renderer. It locks the calling goroutine to its OS thread, which must stay the
// thread that calls Run.
func (gopher *Gopher) Open() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("could not create glfw window: %w", err)
	}
	gopher.window = window
	gopher.window.MakeContextCurrent()
	if gopher.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	gopher.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	width, _ := gopher.window.GetSize()
	fbWidth, _ := gopher.window.GetFramebufferSize()
	if ps, ok := gopher.render.(pixelScaler); ok && width > 0 {
		ps.SetPixelScale(float32(fbWidth) / float32(width))
	}
	if err := gopher.render.Init(gopher.Width, gopher.Height); err != nil {
		gopher.Close()
		return fmt.Errorf("could not initialize renderer: %w", err)
	}
	gopher.initialized = true

	logger.Log.Info("Window opened",
		zap.String("title", gopher.Title),
		zap.Int32("width", gopher.Width),
		zap.Int32("height", gopher.Height),
		zap.Bool("vsync", gopher.VSync))
	return nil
}

// Source exposes the window as raw input. Valid after Open.
func (gopher *Gopher) Source() input.Source {
	return &windowSource{window: gopher.window}
}

// SetInput sets the manager polled at the start of every frame.
func (gopher *Gopher) SetInput(m *input.Manager) {
	gopher.input = m
}

// Quit stops the loop after the current frame.
func (gopher *Gopher) Quit() {
	gopher.quit = true
}

// Run drives frames until the window closes or Quit is called, then exits the
// active scene and releases the renderer and window.
func (gopher *Gopher) Run() {
	defer gopher.Close()

	lastTime := glfw.GetTime()
	lastWidth, lastHeight := gopher.Width, gopher.Height

	for !gopher.window.ShouldClose() && !gopher.quit {
		currentTime := glfw.GetTime()
		deltaTime := float32(currentTime - lastTime)
		lastTime = currentTime
		if deltaTime > maxFrameDelta {
			deltaTime = maxFrameDelta
		}

		width, height := gopher.window.GetSize()
		gopher.Width, gopher.Height = int32(width), int32(height)
		if gopher.Width != lastWidth || gopher.Height != lastHeight {
			gopher.render.UpdateViewport(gopher.Width, gopher.Height)
			gopher.scenes.Resize(gopher.Width, gopher.Height)
			lastWidth, lastHeight = gopher.Width, gopher.Height
		}

		if gopher.input != nil {
			gopher.input.Update()
		}
		gopher.scenes.Tick(deltaTime)
		gopher.scenes.Render(gopher.render)

		gopher.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// Close exits the active scene, releases the renderer and destroys the window.
// It is safe to call after a failed Open and more than once; only the first
// call has an effect.
func (gopher *Gopher) Close() {
	if gopher.closed {
		return
	}
	gopher.closed = true

	if err := gopher.scenes.Exit(); err != nil {
		logger.Log.Error("Scene exit failed", zap.Error(err))
	}
	if gopher.initialized {
		gopher.render.Cleanup()
		gopher.initialized = false
	}
	if gopher.window != nil {
		gopher.window.Destroy()
		gopher.window = nil
		glfw.Terminate()
		logger.Log.Info("Window closed")
	}
}
