package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Smallest radius and largest |elevation| the bound options accept. Below these the eye
// can land on the target or look straight along world up, and LookAt has no basis.
const (
	minRadiusFloor   = 1e-3
	elevationCeiling = math32.Pi/2 - 1e-3
)

// CameraControllerOption is a functional option for configuring a CameraController.
// Starting values are clamped to the bounds once all options have run, so option order
// does not matter.
type CameraControllerOption func(*cameraControllerImpl)

// WithTarget sets the pivot the controller orbits and looks at.
//
// Parameters:
//   - target: world-space pivot point
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithTarget(target mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = target
	}
}

// WithRadius sets the starting distance between eye and target.
func WithRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithAzimuth sets the starting angle around world up, in radians. Zero puts the eye on +Z of the target.
func WithAzimuth(azimuth float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.azimuth = azimuth
	}
}

// WithElevation sets the starting angle above the target's horizontal plane, in radians.
func WithElevation(elevation float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.elevation = elevation
	}
}

// WithRadiusBounds limits how far Zoom and SetRadius can move the eye. The lower bound is
// raised to a small positive floor and the pair is reordered if given backwards.
//
// Parameters:
//   - near: closest allowed distance to the target
//   - far: farthest allowed distance to the target
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithRadiusBounds(near, far float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if near > far {
			near, far = far, near
		}
		cc.minRadius = max(near, minRadiusFloor)
		cc.maxRadius = max(far, cc.minRadius)
	}
}

// WithElevationBounds limits how far the eye can orbit above or below the target.
// Both bounds are kept strictly inside (-Pi/2, Pi/2) so forward never lines up with world up.
//
// Parameters:
//   - lower: lowest elevation in radians
//   - upper: highest elevation in radians
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithElevationBounds(lower, upper float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if lower > upper {
			lower, upper = upper, lower
		}
		cc.minElevation = mgl32.Clamp(lower, -elevationCeiling, elevationCeiling)
		cc.maxElevation = mgl32.Clamp(upper, -elevationCeiling, elevationCeiling)
	}
}

// WithOrbitSpeed sets the angle, in radians, of one OrbitLeft/Right/Up/Down step.
func WithOrbitSpeed(step float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orbitSpeed = step
	}
}

// WithMouseSensitivity sets how many radians Drag turns per pixel of cursor movement.
func WithMouseSensitivity(radiansPerPixel float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = radiansPerPixel
	}
}

// WithZoomSpeed scales the radius change per unit of Zoom delta.
func WithZoomSpeed(scale float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = scale
	}
}

// WithPanSpeed scales the distance moved per unit of PanRight/PanUp/PanForward delta.
func WithPanSpeed(scale float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panSpeed = scale
	}
}
