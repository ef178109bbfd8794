package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a camera before its
// matrices are first computed.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - position: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(position mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = position
	}
}

// WithForward sets the camera's initial facing direction.
//
// Parameters:
//   - forward: world-space direction
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's forward vector
func WithForward(forward mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.forward = forward
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - up: world-space up direction
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = up
	}
}

// WithFovRadians sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFovRadians(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fovRadians = fov
	}
}

// WithFovDegrees sets the camera's vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFovDegrees(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fovRadians = mgl32.DegToRad(fov)
	}
}

// WithClippingPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clipping planes
func WithClippingPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.nearPlane = near
		c.farPlane = far
	}
}

// WithWindowSize derives the aspect ratio from a render target size.
// Heights below 1 are treated as 1.
//
// Parameters:
//   - width: render target width in pixels
//   - height: render target height in pixels
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithWindowSize(width, height int) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspectRatio = float32(width) / float32(max(height, 1))
	}
}

// WithOrtho starts the camera in orthographic mode.
//
// Returns:
//   - CameraBuilderOption: a function that enables orthographic projection
func WithOrtho() CameraBuilderOption {
	return func(c *cameraImpl) {
		c.isOrtho = true
	}
}

// WithOrthoVerticalScale sets the world-space height visible in orthographic mode.
//
// Parameters:
//   - scale: the vertical extent in world units
//
// Returns:
//   - CameraBuilderOption: a function that sets the orthographic scale
func WithOrthoVerticalScale(scale float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.orthoVerticalScale = scale
	}
}
