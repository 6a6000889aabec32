package depthcube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer issues the draw calls of one frame.
type Renderer interface {
	// BeginFrame clears the colour and depth buffers.
	BeginFrame()
	// DrawCube draws the cube mesh transformed by mvp.
	DrawCube(mvp mgl32.Mat4)
	// ReadDepth reads the depth buffer at pixel (x, y), origin bottom-left.
	ReadDepth(x, y int) float32
	// DrawText draws every quad of dl.
	DrawText(dl *DrawList) error
}

// Window is the surface the scene presents to.
type Window interface {
	ShouldClose() bool
	FramebufferSize() (width, height int)
	// Time returns elapsed seconds since the window was created.
	Time() float64
	SwapBuffers()
	PollEvents()
}

// FrameInfo describes one rendered frame.
type FrameInfo struct {
	Time   float64
	Width  int
	Height int
	Depth  float32 // Depth sampled at DepthSamplePoint(Width, Height)
	Text   string  // Readout drawn for Depth
	Quads  int     // Text quads drawn, degenerate ones included
}

// Scene owns the per-frame render loop.
type Scene struct {
	renderer Renderer
	onFrame  func(FrameInfo)
	maxFrame int
	lastText string
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithFrameHook calls fn after every frame is drawn, before the swap.
func WithFrameHook(fn func(FrameInfo)) SceneOption {
	return func(s *Scene) { s.onFrame = fn }
}

// WithMaxFrames stops Run after n frames. Zero means no limit.
func WithMaxFrames(n int) SceneOption {
	return func(s *Scene) { s.maxFrame = n }
}

// New creates a Scene drawing through renderer.
func New(renderer Renderer, opts ...SceneOption) *Scene {
	s := &Scene{renderer: renderer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Frame renders one frame into win's framebuffer without presenting it.
func (s *Scene) Frame(win Window) (FrameInfo, error) {
	w, h := win.FramebufferSize()
	info := FrameInfo{Time: win.Time(), Width: w, Height: h}

	s.renderer.BeginFrame()
	s.renderer.DrawCube(MVP(info.Time, Aspect(w, h)))

	x, y := DepthSamplePoint(w, h)
	info.Depth = s.renderer.ReadDepth(x, y)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	info.Text = LayoutDepthText(dl, info.Depth)
	info.Quads = dl.Len()
	if err := s.renderer.DrawText(dl); err != nil {
		return info, fmt.Errorf("draw readout %q: %w", info.Text, err)
	}

	if info.Text != s.lastText {
		sceneLogger.Debug("depth readout", "text", info.Text, "x", x, "y", y, "t", info.Time)
		s.lastText = info.Text
	}
	if s.onFrame != nil {
		s.onFrame(info)
	}
	return info, nil
}

// Run renders frames until win reports ShouldClose. The close signal is
// checked before each frame, so no draw call follows it.
func (s *Scene) Run(win Window) error {
	w, h := win.FramebufferSize()
	sceneLogger.Info("render loop started", "width", w, "height", h)

	frames := 0
	for !win.ShouldClose() {
		if _, err := s.Frame(win); err != nil {
			return err
		}
		win.SwapBuffers()
		win.PollEvents()

		frames++
		if s.maxFrame > 0 && frames >= s.maxFrame {
			break
		}
	}

	sceneLogger.Info("render loop stopped", "frames", frames)
	return nil
}
