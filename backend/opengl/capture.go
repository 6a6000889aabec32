package opengl

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ReadColor reads the current colour buffer into a top-down RGBA image.
func ReadColor(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// OpenGL origin is bottom-left
	FlipRows(img.Pix, img.Stride, height)
	return img
}

// FlipRows reverses the order of height rows of stride bytes in pix.
func FlipRows(pix []byte, stride, height int) {
	tmp := make([]byte, stride)
	for y := 0; y < height/2; y++ {
		top := y * stride
		bot := (height - 1 - y) * stride
		copy(tmp, pix[top:top+stride])
		copy(pix[top:top+stride], pix[bot:bot+stride])
		copy(pix[bot:bot+stride], tmp)
	}
}
