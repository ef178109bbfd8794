package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// worldUp is the axis azimuth rotates around and the reference for the local right axis.
var worldUp = mgl32.Vec3{0, 1, 0}

// cameraControllerImpl is the single implementation of CameraController.
// Like Camera, it is meant to be driven from one thread.
type cameraControllerImpl struct {
	// position is derived from target + spherical coordinates
	position mgl32.Vec3
	target   mgl32.Vec3

	radius    float32
	azimuth   float32 // around Y, 0 = +Z
	elevation float32 // from the XZ plane

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
	panSpeed         float32

	// home is the orbit state captured at construction, restored by Reset
	home orbitState
}

// orbitState is the part of the controller that Reset restores.
type orbitState struct {
	target    mgl32.Vec3
	radius    float32
	azimuth   float32
	elevation float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller orbiting the origin at radius 10,
// 30 degrees above the horizon.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		radius:    10.0,
		elevation: math32.Pi / 6,

		minRadius:    0.5,
		maxRadius:    500.0,
		minElevation: -(math32.Pi/2 - 0.1),
		maxElevation: math32.Pi/2 - 0.1,

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        1.0,
		panSpeed:         0.25,
	}

	for _, option := range options {
		option(cc)
	}

	cc.radius = mgl32.Clamp(cc.radius, cc.minRadius, cc.maxRadius)
	cc.elevation = mgl32.Clamp(cc.elevation, cc.minElevation, cc.maxElevation)
	cc.home = orbitState{target: cc.target, radius: cc.radius, azimuth: cc.azimuth, elevation: cc.elevation}
	cc.updatePosition()
	return cc
}

// updatePosition recomputes the position from the spherical coordinates.
func (cc *cameraControllerImpl) updatePosition() {
	sinElev, cosElev := math32.Sin(cc.elevation), math32.Cos(cc.elevation)
	sinAzim, cosAzim := math32.Sin(cc.azimuth), math32.Cos(cc.azimuth)

	cc.position = cc.target.Add(mgl32.Vec3{
		cc.radius * cosElev * sinAzim,
		cc.radius * sinElev,
		cc.radius * cosElev * cosAzim,
	})
}

// localAxes returns right, up, and forward axes consistent with the view matrix
// the camera builds when looking from position at target.
func (cc *cameraControllerImpl) localAxes() (right, up, forward mgl32.Vec3) {
	backward := cc.position.Sub(cc.target).Normalize()
	right = worldUp.Cross(backward).Normalize()
	up = backward.Cross(right)
	forward = backward.Mul(-1)
	return
}

// translate moves both position and target, keeping the orbit intact.
func (cc *cameraControllerImpl) translate(offset mgl32.Vec3) {
	cc.target = cc.target.Add(offset)
	cc.position = cc.position.Add(offset)
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	return cc.position
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	return cc.target
}

func (cc *cameraControllerImpl) SetTarget(target mgl32.Vec3) {
	cc.target = target
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.SetRadius(cc.radius - delta*cc.zoomSpeed)
}

func (cc *cameraControllerImpl) Reset() {
	cc.target = cc.home.target
	cc.radius = cc.home.radius
	cc.azimuth = cc.home.azimuth
	cc.elevation = cc.home.elevation
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Apply(cam Camera) {
	cam.SetPosition(cc.position)
	cam.LookAt(cc.target)
}

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.SetAzimuth(cc.azimuth - cc.orbitSpeed)
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.SetAzimuth(cc.azimuth + cc.orbitSpeed)
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.SetElevation(cc.elevation + cc.orbitSpeed)
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.SetElevation(cc.elevation - cc.orbitSpeed)
}

func (cc *cameraControllerImpl) Drag(dx, dy float32) {
	cc.azimuth -= dx * cc.mouseSensitivity
	cc.SetElevation(cc.elevation + dy*cc.mouseSensitivity)
}

func (cc *cameraControllerImpl) Radius() float32 {
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.radius = mgl32.Clamp(radius, cc.minRadius, cc.maxRadius)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	return cc.azimuth
}

func (cc *cameraControllerImpl) SetAzimuth(azimuth float32) {
	cc.azimuth = azimuth
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Elevation() float32 {
	return cc.elevation
}

func (cc *cameraControllerImpl) SetElevation(elevation float32) {
	cc.elevation = mgl32.Clamp(elevation, cc.minElevation, cc.maxElevation)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) PanRight(delta float32) {
	right, _, _ := cc.localAxes()
	cc.translate(right.Mul(delta * cc.panSpeed))
}

func (cc *cameraControllerImpl) PanUp(delta float32) {
	_, up, _ := cc.localAxes()
	cc.translate(up.Mul(delta * cc.panSpeed))
}

func (cc *cameraControllerImpl) PanForward(delta float32) {
	_, _, forward := cc.localAxes()
	cc.translate(forward.Mul(delta * cc.panSpeed))
}
