// Command example opens a window with a rotating cube and a live readout of
// the depth buffer at the centre pixel.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run with the built-in defaults
//
// Flags:
//
//	-config path   YAML file overriding title, width, height, vsync, clearColor
//	-v             debug logging (readout changes, GL version)
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/depthcube"
	"github.com/go-theft-auto/depthcube/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg := depthcube.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = depthcube.LoadConfig(configPath); err != nil {
			return err
		}
	}
	depthcube.SetVerbose(verbose || cfg.Verbose)

	window, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	window.OnResize(func(width, height int) {
		depthcube.Logger().Debug("framebuffer resized", "width", width, "height", height)
	})

	renderer, err := opengl.NewRenderer(cfg)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	return depthcube.New(renderer).Run(window)
}
