package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController drives a Camera from user input. Controllers own the orbit state
// (target plus spherical offset) and push it into a camera through Apply, using only
// the camera's public mutators. Orbit and planar controls work on the same instance.
type CameraController interface {
	orbitCameraController
	planarCameraController

	// Position returns the world-space position derived from the target and spherical coordinates.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the look-at/pivot point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// SetTarget moves the pivot point and recomputes the position around it.
	//
	// Parameters:
	//   - target: world-space coordinates
	SetTarget(target mgl32.Vec3)

	// Zoom moves the camera toward (positive delta) or away from the target,
	// scaled by ZoomSpeed and clamped to the radius bounds.
	//
	// Parameters:
	//   - delta: zoom amount
	Zoom(delta float32)

	// Reset restores the target and spherical coordinates the controller was created with.
	Reset()

	// Apply writes the controller state into cam: SetPosition followed by LookAt(target).
	//
	// Parameters:
	//   - cam: the camera to update
	Apply(cam Camera)
}

// orbitCameraController defines orbit-specific control methods using spherical
// coordinates (radius, azimuth, elevation) relative to the target.
type orbitCameraController interface {
	// OrbitLeft rotates the camera left around the target by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the target by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the camera upward by one orbit speed step, clamped to max elevation.
	OrbitUp()

	// OrbitDown tilts the camera downward by one orbit speed step, clamped to min elevation.
	OrbitDown()

	// Drag orbits by a mouse movement in pixels, scaled by MouseSensitivity.
	//
	// Parameters:
	//   - dx: horizontal mouse movement
	//   - dy: vertical mouse movement
	Drag(dx, dy float32)

	// Radius returns the current distance from the target.
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius, clamped to the radius bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal angle.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// SetElevation sets the vertical angle, clamped to the elevation bounds.
	//
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float32)
}

// planarCameraController defines translation along the camera's local axes.
// Panning shifts both position and target, preserving the orbit relationship.
type planarCameraController interface {
	// PanRight translates along the local right axis. Negative delta moves left.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanRight(delta float32)

	// PanUp translates along the local up axis. Negative delta moves down.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanUp(delta float32)

	// PanForward translates along the local forward axis. Positive delta moves toward the target.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanForward(delta float32)
}
