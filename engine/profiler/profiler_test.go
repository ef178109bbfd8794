package profiler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickLogsRecomputes(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(WithLogger(log.New(&buf, "", 0)), WithInterval(time.Hour))

	assert.False(t, p.Tick(true))
	assert.False(t, p.Tick(false))
	assert.False(t, p.Tick(true))
	assert.Empty(t, buf.String())

	// force the interval to elapse
	p.lastTime = time.Now().Add(-2 * time.Hour)
	assert.True(t, p.Tick(false))
	assert.Contains(t, buf.String(), "[Profiler] FPS:")
	assert.Contains(t, buf.String(), "VP recomputes: 2/4")

	assert.Equal(t, 0, p.frameCount)
	assert.Equal(t, 0, p.recomputeCount)
}

func TestTickZeroInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(WithLogger(log.New(&buf, "", 0)), WithInterval(0))

	assert.True(t, p.Tick(true))
	assert.Contains(t, buf.String(), "VP recomputes: 1/1")
}
