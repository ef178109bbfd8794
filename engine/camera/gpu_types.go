package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUCameraUniformSource declares the CameraUniform struct for shaders that bind the camera.
// Prepend it to a shader module that reads the camera at the binding created by the renderer.
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the host-side mirror of the WGSL CameraUniform struct.
// A mat4x4 followed by a vec3 and one float of padding, 80 bytes in total.
type GPUCameraUniform struct {
	ViewProj       mgl32.Mat4
	CameraPosition mgl32.Vec3
	_pad           float32
}

// NewGPUCameraUniform packs a view-projection matrix and eye position for upload.
//
// Parameters:
//   - viewProj: the combined projection * view matrix
//   - position: the world-space eye position
//
// Returns:
//   - GPUCameraUniform: the packed uniform
func NewGPUCameraUniform(viewProj mgl32.Mat4, position mgl32.Vec3) GPUCameraUniform {
	return GPUCameraUniform{ViewProj: viewProj, CameraPosition: position}
}

// Size returns the uniform size in bytes, which is also the buffer size to allocate.
func (g GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(g))
}

// Marshal writes the uniform as little-endian floats in WGSL field order.
// The padding word is always zero.
//
// Returns:
//   - []byte: Size() bytes ready for Queue.WriteBuffer
func (g GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, 0, g.Size())
	for _, v := range g.ViewProj {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	for _, v := range g.CameraPosition {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return binary.LittleEndian.AppendUint32(buf, 0)
}
