package camera

import "github.com/Carmen-Shannon/oxy-camera/common"

// fovStepDegrees is how far one +/- key press changes the field of view.
const fovStepDegrees = 5

// Field of view limits for the +/- keys, in degrees.
const (
	minFovDegrees = 10
	maxFovDegrees = 150
)

// InputState maps window key events onto a controller and camera.
//
// Held keys (WASD planar pan, Q/E vertical pan, arrows orbit) are applied once per Update.
// One-shot keys act on the press: O switches orthographic mode, R returns the controller
// to where it started, -/= change the field of view.
type InputState struct {
	held map[uint32]bool
}

// NewInputState creates an InputState with no keys held.
//
// Returns:
//   - *InputState: the new input state
func NewInputState() *InputState {
	return &InputState{held: make(map[uint32]bool)}
}

// KeyDown records a key press. O and R act only on the first press,
// so key repeat events do not flip the projection back and forth.
//
// Parameters:
//   - ctrl: the controller reset by R
//   - cam: the camera receiving toggle actions
//   - keyCode: the virtual key code
//
// Returns:
//   - bool: true if the key is bound to a camera action
func (s *InputState) KeyDown(ctrl CameraController, cam Camera, keyCode uint32) bool {
	repeat := s.held[keyCode]
	s.held[keyCode] = true

	switch keyCode {
	case common.KeyO:
		if !repeat {
			cam.SetOrthoEnabled(!cam.OrthoEnabled())
		}
		return true
	case common.KeyR:
		if !repeat {
			ctrl.Reset()
			ctrl.Apply(cam)
		}
		return true
	case common.KeyEqual:
		cam.SetFovDegrees(min(cam.FovDegrees()+fovStepDegrees, maxFovDegrees))
		return true
	case common.KeyMinus:
		cam.SetFovDegrees(max(cam.FovDegrees()-fovStepDegrees, minFovDegrees))
		return true
	case common.KeyW, common.KeyA, common.KeyS, common.KeyD, common.KeyQ, common.KeyE,
		common.KeyLeft, common.KeyRight, common.KeyUp, common.KeyDown:
		return true
	}
	return false
}

// KeyUp records a key release.
//
// Parameters:
//   - keyCode: the virtual key code
func (s *InputState) KeyUp(keyCode uint32) {
	delete(s.held, keyCode)
}

// Held reports whether a key is currently pressed.
//
// Parameters:
//   - keyCode: the virtual key code
//
// Returns:
//   - bool: true if the key is held
func (s *InputState) Held(keyCode uint32) bool {
	return s.held[keyCode]
}

// Update applies every held movement key to ctrl and, if anything moved, pushes the
// controller state into cam. Call once per tick.
//
// Parameters:
//   - ctrl: the controller to move
//   - cam: the camera to update
//
// Returns:
//   - bool: true if the controller moved
func (s *InputState) Update(ctrl CameraController, cam Camera) bool {
	moved := false
	step := func(key uint32, action func()) {
		if s.held[key] {
			action()
			moved = true
		}
	}

	step(common.KeyW, func() { ctrl.PanForward(1) })
	step(common.KeyS, func() { ctrl.PanForward(-1) })
	step(common.KeyA, func() { ctrl.PanRight(-1) })
	step(common.KeyD, func() { ctrl.PanRight(1) })
	step(common.KeyQ, func() { ctrl.PanUp(1) })
	step(common.KeyE, func() { ctrl.PanUp(-1) })
	step(common.KeyLeft, ctrl.OrbitLeft)
	step(common.KeyRight, ctrl.OrbitRight)
	step(common.KeyUp, ctrl.OrbitUp)
	step(common.KeyDown, ctrl.OrbitDown)

	if moved {
		ctrl.Apply(cam)
	}
	return moved
}

// Scroll zooms the controller and pushes the new position into cam.
//
// Parameters:
//   - ctrl: the controller to zoom
//   - cam: the camera to update
//   - delta: scroll amount, positive zooms in
func (s *InputState) Scroll(ctrl CameraController, cam Camera, delta float32) {
	ctrl.Zoom(delta)
	ctrl.Apply(cam)
}
