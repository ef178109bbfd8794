package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Default window dimensions used to derive the initial aspect ratio before the
// first ResizeWindow call. They match the engine window defaults.
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
)

// cameraImpl holds the pose, projection parameters, and derived matrices of a camera.
// It is not safe for concurrent use: ViewProjection fills a cache on read.
type cameraImpl struct {
	position mgl32.Vec3
	forward  mgl32.Vec3
	up       mgl32.Vec3

	nearPlane          float32
	farPlane           float32
	fovRadians         float32
	aspectRatio        float32
	orthoVerticalScale float32
	isOrtho            bool

	view           mgl32.Mat4
	projection     mgl32.Mat4
	viewProjection mgl32.Mat4

	// dirty marks viewProjection as stale.
	dirty bool
}

// Camera defines the interface for a perspective/orthographic camera.
// View and projection matrices are recomputed eagerly by every mutator; the combined
// view-projection matrix is computed lazily on first access after a change.
//
// A Camera is meant to be driven from a single thread (e.g. the frame loop). Handles may be
// shared between subsystems, but callers must serialize access themselves.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// Forward returns the direction the camera faces.
	//
	// Returns:
	//   - mgl32.Vec3: world-space forward direction
	Forward() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: world-space up direction
	Up() mgl32.Vec3

	// Right returns the normalized cross product of forward and up.
	//
	// Returns:
	//   - mgl32.Vec3: world-space right direction
	Right() mgl32.Vec3

	// FovRadians returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: vertical field of view in radians
	FovRadians() float32

	// FovDegrees returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: vertical field of view in degrees
	FovDegrees() float32

	// AspectRatio returns the render target aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	AspectRatio() float32

	// NearPlane returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	NearPlane() float32

	// FarPlane returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	FarPlane() float32

	// OrthoVerticalScale returns how many world units are visible vertically in orthographic mode.
	//
	// Returns:
	//   - float32: the orthographic vertical extent
	OrthoVerticalScale() float32

	// OrthoEnabled reports whether the camera uses an orthographic projection.
	//
	// Returns:
	//   - bool: true for orthographic, false for perspective
	OrthoEnabled() bool

	// View returns the world-to-camera matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	View() mgl32.Mat4

	// Projection returns the camera-to-clip matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	Projection() mgl32.Mat4

	// ViewProjection returns Projection * View, recomputing it if any mutator ran since the last call.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix (column-major)
	ViewProjection() mgl32.Mat4

	// Dirty reports whether the next ViewProjection call will recompute the combined matrix.
	//
	// Returns:
	//   - bool: true if the cached view-projection is stale
	Dirty() bool

	// Frustum returns the clipping planes of the current view-projection.
	//
	// Returns:
	//   - common.Frustum: normalized frustum planes in world space
	Frustum() common.Frustum

	// Uniform packs the view-projection and position for GPU upload.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform block contents
	Uniform() GPUCameraUniform

	// SetPosition sets the camera's world-space position.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl32.Vec3)

	// SetForward sets the direction the camera faces. The up vector is not re-orthogonalized
	// against it; callers are responsible for a consistent basis.
	//
	// Parameters:
	//   - forward: world-space direction
	SetForward(forward mgl32.Vec3)

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: world-space up direction
	SetUp(up mgl32.Vec3)

	// LookAt points the camera at a world-space location.
	// The point must differ from the camera position, otherwise forward is undefined.
	//
	// Parameters:
	//   - point: world-space point to face
	LookAt(point mgl32.Vec3)

	// ResizeWindow updates the aspect ratio from the render target size.
	// Heights below 1 are treated as 1.
	//
	// Parameters:
	//   - width: render target width in pixels
	//   - height: render target height in pixels
	ResizeWindow(width, height int)

	// SetOrthoEnabled switches between orthographic and perspective projection.
	//
	// Parameters:
	//   - enabled: true for orthographic, false for perspective
	SetOrthoEnabled(enabled bool)

	// SetFovRadians sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: vertical field of view in radians
	SetFovRadians(fov float32)

	// SetFovDegrees sets the vertical field of view in degrees.
	//
	// Parameters:
	//   - fov: vertical field of view in degrees
	SetFovDegrees(fov float32)

	// SetOrthoVerticalScale sets the world-space height visible in orthographic mode.
	// For 1 unit = 1 pixel, pass the window height.
	//
	// Parameters:
	//   - scale: the vertical extent in world units
	SetOrthoVerticalScale(scale float32)

	// SetClippingPlanes sets the near and far clipping plane distances (0 < near < far).
	//
	// Parameters:
	//   - near: near plane distance
	//   - far: far plane distance
	SetClippingPlanes(near, far float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin facing +Z with +Y up, a 90 degree
// perspective projection, and an aspect ratio taken from the default window size.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		position:           mgl32.Vec3{0, 0, 0},
		forward:            mgl32.Vec3{0, 0, 1},
		up:                 mgl32.Vec3{0, 1, 0},
		nearPlane:          0.1,
		farPlane:           1000.0,
		fovRadians:         mgl32.DegToRad(90),
		aspectRatio:        float32(DefaultWindowWidth) / float32(DefaultWindowHeight),
		orthoVerticalScale: 1.0,
		viewProjection:     mgl32.Ident4(),
		dirty:              true,
	}
	for _, option := range options {
		option(c)
	}
	c.calculateView()
	c.calculateProjection()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	return c.forward
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	return c.forward.Cross(c.up).Normalize()
}

func (c *cameraImpl) FovRadians() float32 {
	return c.fovRadians
}

func (c *cameraImpl) FovDegrees() float32 {
	return mgl32.RadToDeg(c.fovRadians)
}

func (c *cameraImpl) AspectRatio() float32 {
	return c.aspectRatio
}

func (c *cameraImpl) NearPlane() float32 {
	return c.nearPlane
}

func (c *cameraImpl) FarPlane() float32 {
	return c.farPlane
}

func (c *cameraImpl) OrthoVerticalScale() float32 {
	return c.orthoVerticalScale
}

func (c *cameraImpl) OrthoEnabled() bool {
	return c.isOrtho
}

func (c *cameraImpl) View() mgl32.Mat4 {
	return c.view
}

func (c *cameraImpl) Projection() mgl32.Mat4 {
	return c.projection
}

func (c *cameraImpl) ViewProjection() mgl32.Mat4 {
	if c.dirty {
		c.viewProjection = c.projection.Mul4(c.view)
		c.dirty = false
	}
	return c.viewProjection
}

func (c *cameraImpl) Dirty() bool {
	return c.dirty
}

func (c *cameraImpl) Frustum() common.Frustum {
	return common.ExtractFrustum(c.ViewProjection())
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	return NewGPUCameraUniform(c.ViewProjection(), c.position)
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.position = position
	c.calculateView()
}

func (c *cameraImpl) SetForward(forward mgl32.Vec3) {
	c.forward = forward
	c.calculateView()
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.up = up
	c.calculateView()
}

func (c *cameraImpl) LookAt(point mgl32.Vec3) {
	c.forward = point.Sub(c.position).Normalize()
	c.calculateView()
}

func (c *cameraImpl) ResizeWindow(width, height int) {
	if height < 1 {
		height = 1
	}
	c.aspectRatio = float32(width) / float32(height)
	c.calculateProjection()
}

func (c *cameraImpl) SetOrthoEnabled(enabled bool) {
	c.isOrtho = enabled
	c.calculateProjection()
}

func (c *cameraImpl) SetFovRadians(fov float32) {
	c.fovRadians = fov
	c.calculateProjection()
}

func (c *cameraImpl) SetFovDegrees(fov float32) {
	c.fovRadians = mgl32.DegToRad(fov)
	c.calculateProjection()
}

func (c *cameraImpl) SetOrthoVerticalScale(scale float32) {
	c.orthoVerticalScale = scale
	c.calculateProjection()
}

func (c *cameraImpl) SetClippingPlanes(near, far float32) {
	c.nearPlane = near
	c.farPlane = far
	c.calculateProjection()
}

// calculateView rebuilds the world-to-camera matrix from position, forward, and up,
// and marks the view-projection stale.
func (c *cameraImpl) calculateView() {
	c.view = mgl32.LookAtV(c.position, c.position.Add(c.forward), c.up)
	c.dirty = true
}

// calculateProjection rebuilds the projection matrix for the current mode,
// and marks the view-projection stale.
func (c *cameraImpl) calculateProjection() {
	if c.isOrtho {
		halfHeight := c.orthoVerticalScale / 2
		halfWidth := halfHeight * c.aspectRatio
		c.projection = mgl32.Ortho(-halfWidth, halfWidth, -halfHeight, halfHeight, c.nearPlane, c.farPlane)
	} else {
		c.projection = mgl32.Perspective(c.fovRadians, c.aspectRatio, c.nearPlane, c.farPlane)
	}
	c.dirty = true
}
