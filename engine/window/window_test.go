package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEngineWindowOptions(t *testing.T) {
	w := newEngineWindow(
		WithTitle("Demo"),
		WithSize(800, 600),
		WithSizeLimits(100, 100, 1000, 900),
	)

	assert.Equal(t, "Demo", w.title)
	assert.Equal(t, 800, w.Width())
	assert.Equal(t, 600, w.Height())
	assert.Equal(t, 100, w.minWidth)
	assert.Equal(t, 900, w.maxHeight)
}

func TestHandleResize(t *testing.T) {
	w := newEngineWindow()

	var gotW, gotH, calls int
	w.SetResizeCallback(func(width, height int) {
		gotW, gotH = width, height
		calls++
	})

	w.handleResize(1920, 1080)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1920, gotW)
	assert.Equal(t, 1080, gotH)
	assert.Equal(t, 1920, w.Width())
	assert.Equal(t, 1080, w.Height())

	// minimized
	w.handleResize(0, 0)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1080, w.Height())
}

func TestHandleKey(t *testing.T) {
	w := newEngineWindow()

	var down, up []uint32
	w.SetKeyDownCallback(func(keyCode uint32) { down = append(down, keyCode) })
	w.SetKeyUpCallback(func(keyCode uint32) { up = append(up, keyCode) })

	w.handleKey(87, true)
	w.handleKey(87, true)
	w.handleKey(87, false)

	assert.Equal(t, []uint32{87, 87}, down)
	assert.Equal(t, []uint32{87}, up)
}

func TestHandleDrag(t *testing.T) {
	w := newEngineWindow()

	var dxs, dys []float32
	w.SetDragCallback(func(dx, dy float32) {
		dxs = append(dxs, dx)
		dys = append(dys, dy)
	})

	// movement without the button held is ignored
	w.handleCursor(10, 10)
	assert.Empty(t, dxs)

	w.handleMiddleButton(true, 10, 10)
	w.handleCursor(15, 7)
	w.handleCursor(20, 7)
	w.handleMiddleButton(false, 20, 7)
	w.handleCursor(40, 40)

	assert.Equal(t, []float32{5, 5}, dxs)
	assert.Equal(t, []float32{-3, 0}, dys)
}

func TestHandleScrollWithoutCallback(t *testing.T) {
	w := newEngineWindow()
	assert.NotPanics(t, func() { w.handleScroll(1) })

	var got float32
	w.SetScrollCallback(func(delta float32) { got = delta })
	w.handleScroll(-2)
	assert.Equal(t, float32(-2), got)
}

func TestUnopenedWindow(t *testing.T) {
	w := newEngineWindow()

	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.Error(t, w.Close())
}
