// Package renderer connects a camera to a WebGPU device: it owns the camera uniform
// buffer, its bind group, and the per-frame upload.
package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

// cameraUniformSize is the byte size of camera.GPUCameraUniform.
const cameraUniformSize = 80

// CameraBinding holds the GPU resources backing the camera uniform at a fixed binding slot.
type CameraBinding interface {
	// Buffer returns the uniform buffer.
	//
	// Returns:
	//   - *wgpu.Buffer: the camera uniform buffer
	Buffer() *wgpu.Buffer

	// BindGroupLayout returns the layout describing the camera bind group.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the bind group layout
	BindGroupLayout() *wgpu.BindGroupLayout

	// BindGroup returns the bind group referencing the uniform buffer.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group
	BindGroup() *wgpu.BindGroup

	// Write uploads the camera's uniform if it changed since the previous upload.
	//
	// Parameters:
	//   - cam: the camera to upload
	//
	// Returns:
	//   - bool: true if data was written to the queue
	Write(cam camera.Camera) bool

	// Release frees the GPU resources.
	Release()
}

type cameraBindingImpl struct {
	queue *wgpu.Queue

	buffer *wgpu.Buffer
	layout *wgpu.BindGroupLayout
	group  *wgpu.BindGroup

	// last holds the most recently uploaded uniform; uploaded is false until the first write.
	last     camera.GPUCameraUniform
	uploaded bool
}

var _ CameraBinding = &cameraBindingImpl{}

// CameraLayoutEntry describes the camera uniform for a bind group layout, visible to
// vertex and fragment stages.
//
// Parameters:
//   - binding: the binding slot within the group
//
// Returns:
//   - wgpu.BindGroupLayoutEntry: the layout entry
func CameraLayoutEntry(binding uint32) wgpu.BindGroupLayoutEntry {
	entry := wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
	}
	entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	entry.Buffer.MinBindingSize = cameraUniformSize
	return entry
}

// CameraBufferDescriptor describes a uniform buffer sized for the camera uniform.
//
// Parameters:
//   - label: debug label prefix
//
// Returns:
//   - wgpu.BufferDescriptor: the buffer descriptor
func CameraBufferDescriptor(label string) wgpu.BufferDescriptor {
	return wgpu.BufferDescriptor{
		Label:            label + " Camera Uniform Buffer",
		Size:             cameraUniformSize,
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	}
}

// NewCameraBinding creates the uniform buffer, bind group layout, and bind group for
// a camera at the given binding slot.
//
// Parameters:
//   - device: the device to allocate on
//   - queue: the queue used by Write
//   - label: debug label prefix
//   - binding: the binding slot within the group
//
// Returns:
//   - CameraBinding: the created binding
//   - error: error if any GPU object fails to create
func NewCameraBinding(device *wgpu.Device, queue *wgpu.Queue, label string, binding uint32) (CameraBinding, error) {
	bufferDesc := CameraBufferDescriptor(label)
	buffer, err := device.CreateBuffer(&bufferDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera uniform buffer: %w", err)
	}

	layout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   label + " Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{CameraLayoutEntry(binding)},
	})
	if err != nil {
		buffer.Release()
		return nil, fmt.Errorf("failed to create camera bind group layout: %w", err)
	}

	group, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label + " Camera Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: binding,
			Buffer:  buffer,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		layout.Release()
		buffer.Release()
		return nil, fmt.Errorf("failed to create camera bind group: %w", err)
	}

	return &cameraBindingImpl{
		queue:  queue,
		buffer: buffer,
		layout: layout,
		group:  group,
	}, nil
}

func (b *cameraBindingImpl) Buffer() *wgpu.Buffer {
	return b.buffer
}

func (b *cameraBindingImpl) BindGroupLayout() *wgpu.BindGroupLayout {
	return b.layout
}

func (b *cameraBindingImpl) BindGroup() *wgpu.BindGroup {
	return b.group
}

func (b *cameraBindingImpl) Write(cam camera.Camera) bool {
	data, changed := b.stage(cam)
	if !changed {
		return false
	}
	b.queue.WriteBuffer(b.buffer, 0, data)
	return true
}

func (b *cameraBindingImpl) Release() {
	if b.group != nil {
		b.group.Release()
		b.group = nil
	}
	if b.layout != nil {
		b.layout.Release()
		b.layout = nil
	}
	if b.buffer != nil {
		b.buffer.Release()
		b.buffer = nil
	}
}

// stage packs the camera uniform and reports whether it differs from the last upload.
// The caller is expected to upload the returned bytes when changed is true.
func (b *cameraBindingImpl) stage(cam camera.Camera) (data []byte, changed bool) {
	uniform := cam.Uniform()
	if b.uploaded && uniform == b.last {
		return nil, false
	}
	b.last = uniform
	b.uploaded = true
	return uniform.Marshal(), true
}
