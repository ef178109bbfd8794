package camera

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUCameraUniformLayout(t *testing.T) {
	var u GPUCameraUniform
	assert.Equal(t, 80, u.Size())
	assert.True(t, strings.Contains(GPUCameraUniformSource, "struct CameraUniform"))
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{1.5, -2, 3}))
	u := cam.Uniform()

	buf := u.Marshal()
	require.Len(t, buf, 80)

	vp := cam.ViewProjection()
	for i := range 16 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		assert.Equalf(t, vp[i], got, "view-projection element %d", i)
	}
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[64:])))
	assert.Equal(t, float32(-2), math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])))
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[72:])))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[76:]))
}

func TestGPUCameraUniformMarshalFromAccessor(t *testing.T) {
	cam := NewCamera()

	// Marshal is callable on the value returned by Uniform without a temporary.
	assert.Len(t, cam.Uniform().Marshal(), cam.Uniform().Size())
	assert.Equal(t, NewGPUCameraUniform(cam.ViewProjection(), cam.Position()).Marshal(), cam.Uniform().Marshal())
}
