package depthcube

// DepthSamplePoint returns the pixel the depth readout is sampled from:
// the centre of a width×height framebuffer, rounded down.
func DepthSamplePoint(width, height int) (x, y int) {
	return width / 2, height / 2
}
