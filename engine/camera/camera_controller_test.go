package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCameraControllerDefaults(t *testing.T) {
	ctrl := NewCameraController()

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, ctrl.Target())
	assert.InDelta(t, 10, ctrl.Radius(), tolerance)
	assert.InDelta(t, math.Pi/6, ctrl.Elevation(), tolerance)
	assertVec3Near(t, mgl32.Vec3{0, 5, 10 * float32(math.Cos(math.Pi/6))}, ctrl.Position())
}

func TestControllerClampsRadius(t *testing.T) {
	ctrl := NewCameraController(WithRadiusBounds(2, 20))

	ctrl.SetRadius(0)
	assert.Equal(t, float32(2), ctrl.Radius())

	ctrl.SetRadius(1000)
	assert.Equal(t, float32(20), ctrl.Radius())

	ctrl.SetRadius(10)
	ctrl.Zoom(3)
	assert.InDelta(t, 7, ctrl.Radius(), tolerance)
	assert.InDelta(t, 7, ctrl.Position().Sub(ctrl.Target()).Len(), 1e-4)
}

func TestControllerClampsElevation(t *testing.T) {
	ctrl := NewCameraController(WithElevationBounds(-0.5, 0.5), WithOrbitSpeed(0.2))

	for range 10 {
		ctrl.OrbitUp()
	}
	assert.Equal(t, float32(0.5), ctrl.Elevation())

	for range 10 {
		ctrl.OrbitDown()
	}
	assert.Equal(t, float32(-0.5), ctrl.Elevation())
}

func TestControllerOrbitKeepsDistance(t *testing.T) {
	target := mgl32.Vec3{3, 1, -2}
	ctrl := NewCameraController(WithTarget(target), WithRadius(6))

	ctrl.OrbitLeft()
	ctrl.OrbitLeft()
	ctrl.OrbitRight()
	ctrl.OrbitUp()
	ctrl.Drag(40, -25)

	assert.InDelta(t, 6, ctrl.Position().Sub(target).Len(), 1e-4)
}

func TestControllerPanPreservesOrbit(t *testing.T) {
	ctrl := NewCameraController(WithPanSpeed(0.25))
	offset := ctrl.Position().Sub(ctrl.Target())

	ctrl.PanRight(4)
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, ctrl.Target())
	assertVec3Near(t, offset, ctrl.Position().Sub(ctrl.Target()))

	ctrl.PanUp(2)
	ctrl.PanForward(-3)
	assertVec3Near(t, offset, ctrl.Position().Sub(ctrl.Target()))
}

func TestControllerPanForwardMovesTowardTarget(t *testing.T) {
	ctrl := NewCameraController(WithPanSpeed(1), WithElevation(0))
	start := ctrl.Position()

	ctrl.PanForward(2)
	assertVec3Near(t, start.Add(mgl32.Vec3{0, 0, -2}), ctrl.Position())
}

func TestControllerApply(t *testing.T) {
	ctrl := NewCameraController(WithTarget(mgl32.Vec3{1, 2, 3}), WithRadius(5), WithAzimuth(0.7))
	cam := NewCamera()

	ctrl.Apply(cam)

	assert.Equal(t, ctrl.Position(), cam.Position())
	assertVec3Near(t, ctrl.Target().Sub(ctrl.Position()).Normalize(), cam.Forward())

	target := cam.View().Mul4x1(ctrl.Target().Vec4(1))
	assertVec4Near(t, mgl32.Vec4{0, 0, -5, 1}, target)
	assert.True(t, cam.Dirty())
}

func TestControllerSetTarget(t *testing.T) {
	ctrl := NewCameraController()
	offset := ctrl.Position().Sub(ctrl.Target())

	ctrl.SetTarget(mgl32.Vec3{10, 0, 0})
	assertVec3Near(t, mgl32.Vec3{10, 0, 0}.Add(offset), ctrl.Position())
}

func TestControllerDragUsesMouseSensitivity(t *testing.T) {
	ctrl := NewCameraController(WithMouseSensitivity(0.01), WithElevation(0))

	ctrl.Drag(20, 10)
	assert.InDelta(t, -0.2, ctrl.Azimuth(), tolerance)
	assert.InDelta(t, 0.1, ctrl.Elevation(), tolerance)

	slow := NewCameraController(WithMouseSensitivity(0.001), WithElevation(0))
	slow.Drag(20, 10)
	assert.InDelta(t, -0.02, slow.Azimuth(), tolerance)
	assert.InDelta(t, 0.01, slow.Elevation(), tolerance)
}

func TestControllerBoundOptionsStayUsable(t *testing.T) {
	tests := []struct {
		name    string
		options []CameraControllerOption
		radius  [2]float32
		elev    [2]float32
	}{
		{"non-positive near", []CameraControllerOption{WithRadiusBounds(-5, 50)}, [2]float32{minRadiusFloor, 50}, [2]float32{}},
		{"reversed radius", []CameraControllerOption{WithRadiusBounds(40, 4)}, [2]float32{4, 40}, [2]float32{}},
		{"past the poles", []CameraControllerOption{WithElevationBounds(-3, 3)}, [2]float32{}, [2]float32{-elevationCeiling, elevationCeiling}},
		{"reversed elevation", []CameraControllerOption{WithElevationBounds(0.4, -0.2)}, [2]float32{}, [2]float32{-0.2, 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewCameraController(tt.options...).(*cameraControllerImpl)
			if tt.radius != [2]float32{} {
				assert.InDelta(t, tt.radius[0], cc.minRadius, tolerance)
				assert.InDelta(t, tt.radius[1], cc.maxRadius, tolerance)
				assert.GreaterOrEqual(t, cc.Radius(), cc.minRadius)
			}
			if tt.elev != [2]float32{} {
				assert.InDelta(t, tt.elev[0], cc.minElevation, tolerance)
				assert.InDelta(t, tt.elev[1], cc.maxElevation, tolerance)
			}
		})
	}
}
