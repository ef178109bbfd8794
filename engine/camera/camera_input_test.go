package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputStateOrthoToggleIgnoresRepeat(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController()
	input := NewInputState()

	assert.True(t, input.KeyDown(ctrl, cam, common.KeyO))
	assert.True(t, cam.OrthoEnabled())

	// key repeat while held
	input.KeyDown(ctrl, cam, common.KeyO)
	assert.True(t, cam.OrthoEnabled())

	input.KeyUp(common.KeyO)
	input.KeyDown(ctrl, cam, common.KeyO)
	assert.False(t, cam.OrthoEnabled())
}

func TestInputStateFovKeys(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController()
	input := NewInputState()

	input.KeyDown(ctrl, cam, common.KeyEqual)
	assert.InDelta(t, 95, cam.FovDegrees(), 1e-3)

	for range 20 {
		input.KeyDown(ctrl, cam, common.KeyEqual)
	}
	assert.InDelta(t, maxFovDegrees, cam.FovDegrees(), 1e-3)

	for range 40 {
		input.KeyDown(ctrl, cam, common.KeyMinus)
	}
	assert.InDelta(t, minFovDegrees, cam.FovDegrees(), 1e-3)
}

func TestInputStateUnboundKey(t *testing.T) {
	const keyZ = 90
	input := NewInputState()
	assert.False(t, input.KeyDown(NewCameraController(), NewCamera(), keyZ))
	assert.True(t, input.Held(keyZ))

	input.KeyUp(keyZ)
	assert.False(t, input.Held(keyZ))
}

func TestInputStateResetKey(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController(WithTarget(mgl32.Vec3{1, 2, 3}), WithRadius(8), WithAzimuth(0.5))
	input := NewInputState()
	home := ctrl.Position()

	ctrl.PanRight(10)
	ctrl.OrbitUp()
	ctrl.Zoom(3)
	ctrl.Apply(cam)
	require.NotEqual(t, home, cam.Position())

	assert.True(t, input.KeyDown(ctrl, cam, common.KeyR))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, ctrl.Target())
	assert.InDelta(t, 8, ctrl.Radius(), tolerance)
	assert.InDelta(t, 0.5, ctrl.Azimuth(), tolerance)
	assertVec3Near(t, home, cam.Position())
	assertVec3Near(t, ctrl.Target().Sub(home).Normalize(), cam.Forward())

	// held R does not reset again
	ctrl.PanUp(4)
	input.KeyDown(ctrl, cam, common.KeyR)
	assert.NotEqual(t, mgl32.Vec3{1, 2, 3}, ctrl.Target())
}

func TestInputStateUpdate(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController()
	input := NewInputState()

	assert.False(t, input.Update(ctrl, cam))

	start := ctrl.Target()
	input.KeyDown(ctrl, cam, common.KeyD)
	input.KeyDown(ctrl, cam, common.KeyLeft)
	assert.True(t, input.Update(ctrl, cam))

	assert.NotEqual(t, start, ctrl.Target())
	assert.Equal(t, ctrl.Position(), cam.Position())
	assertVec3Near(t, ctrl.Target().Sub(ctrl.Position()).Normalize(), cam.Forward())

	input.KeyUp(common.KeyD)
	input.KeyUp(common.KeyLeft)
	cam.ViewProjection()
	assert.False(t, input.Update(ctrl, cam))
	assert.False(t, cam.Dirty())
}

func TestInputStateScroll(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController(WithRadius(10), WithZoomSpeed(2))
	input := NewInputState()

	input.Scroll(ctrl, cam, 1)
	assert.InDelta(t, 8, ctrl.Radius(), tolerance)
	assert.Equal(t, ctrl.Position(), cam.Position())
}
