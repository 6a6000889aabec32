/*
Package depthcube renders a rotating, vertex-coloured cube and overlays a
live readout of the depth buffer value sampled at the centre of the
framebuffer.

# Overview

Everything that does not touch the GPU lives in this package: the cube mesh,
the transform chain, the 3×5 digit glyph table, and the layout of the depth
readout into quads. The OpenGL and GLFW side lives in backend/opengl and
plugs in through the Renderer and Window interfaces.

# Quick Start

	cfg := depthcube.DefaultConfig()

	window, _ := opengl.NewWindow(cfg)
	defer window.Destroy()

	renderer, _ := opengl.NewRenderer(cfg)
	defer renderer.Delete()

	scene := depthcube.New(renderer)
	scene.Run(window)

# Frame

Each iteration of Scene.Run does, in order:

  - clear colour and depth
  - compute mvp = projection * view * model for the elapsed time
  - draw the 36 cube indices
  - read one depth value at (width/2, height/2)
  - lay the value out as "%.3f" and draw every lit glyph cell as its own quad
  - swap buffers and poll events

The close signal is checked before each iteration, so a closed window never
receives another draw call.

# Readout

The readout starts at x = -0.95, y = 0.9 in normalized device coordinates and
advances 0.19 per character. Digits use the fixed table in DigitGlyphs. The
decimal point is laid out as glyph 0 with a zero cell size, which emits
degenerate quads and leaves a gap.
*/
package depthcube
