package depthcube

import "github.com/go-gl/mathgl/mgl32"

// Camera parameters.
const (
	FieldOfView float32 = 45 // degrees
	NearPlane   float32 = 0.1
	FarPlane    float32 = 100
	CameraZ     float32 = -3

	// DefaultAspect is used while the framebuffer has no area.
	DefaultAspect = float32(DefaultWidth) / float32(DefaultHeight)
)

// RotationAxis is the axis the cube spins about, before normalization.
var RotationAxis = mgl32.Vec3{0.5, 1, 0}

// Model rotates about RotationAxis by t radians.
func Model(t float64) mgl32.Mat4 {
	return mgl32.HomogRotate3D(float32(t), RotationAxis.Normalize())
}

// View moves the scene back from the camera.
func View() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, CameraZ)
}

// Projection is a FieldOfView perspective for the given aspect ratio.
func Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}

// MVP returns projection * view * model for elapsed time t.
func MVP(t float64, aspect float32) mgl32.Mat4 {
	return Projection(aspect).Mul4(View()).Mul4(Model(t))
}

// Aspect returns width/height, or DefaultAspect if either is not positive.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return DefaultAspect
	}
	return float32(width) / float32(height)
}
