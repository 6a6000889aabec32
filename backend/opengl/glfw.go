package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/depthcube"
)

// Window wraps a GLFW window with a current OpenGL 3.3 core context.
// It implements depthcube.Window.
type Window struct {
	window   *glfw.Window
	onResize func(width, height int)
}

// WindowOption configures a Window.
type WindowOption func(*windowOptions)

type windowOptions struct {
	hidden bool
}

// Hidden creates the window invisible, for offscreen capture.
func Hidden() WindowOption {
	return func(o *windowOptions) { o.hidden = true }
}

// NewWindow initializes GLFW, opens a window described by cfg, makes its
// context current and loads the GL function pointers.
// The caller must be on the main OS thread and must call Destroy.
func NewWindow(cfg depthcube.Config, opts ...WindowOption) (*Window, error) {
	var o windowOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if o.hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{window: window}
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	depthcube.Logger().Debug("window created",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	return w, nil
}

// OnResize registers fn to run after the viewport follows a framebuffer
// resize. It runs synchronously inside PollEvents.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

// Time returns seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents processes pending window events, running callbacks.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy closes the window and terminates GLFW, in that order.
func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}
