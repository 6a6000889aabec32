// Command gen renders the scene at fixed elapsed times in a hidden window,
// captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/depthcube"
	"github.com/go-theft-auto/depthcube/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name string  // filename without extension
	time float64 // elapsed seconds, i.e. rotation angle in radians
}

// fixedClock pins Time so captures are reproducible.
type fixedClock struct {
	*opengl.Window
	t float64
}

func (c fixedClock) Time() float64 { return c.t }

func run() error {
	cfg := depthcube.DefaultConfig()
	cfg.Title = "screenshot-gen"
	cfg.VSync = false

	window, err := opengl.NewWindow(cfg, opengl.Hidden())
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer(cfg)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	scene := depthcube.New(renderer)
	for _, s := range buildScreenshots() {
		info, err := capture(scene, fixedClock{Window: window, t: s.time}, s, outDir)
		if err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d) depth %s\n", s.name, info.Width, info.Height, info.Text)
	}
	return nil
}

func capture(scene *depthcube.Scene, win fixedClock, s screenshot, outDir string) (depthcube.FrameInfo, error) {
	info, err := scene.Frame(win)
	if err != nil {
		return info, err
	}

	img := opengl.ReadColor(info.Width, info.Height)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return info, err
	}
	defer f.Close()
	return info, jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "cube_t0", time: 0},
		{name: "cube_t1", time: 1},
		{name: "cube_t2", time: 2},
		{name: "cube_t3", time: 3},
	}
}
