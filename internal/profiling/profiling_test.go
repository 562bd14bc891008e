package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTopN(t *testing.T) {
	ResetFrame()
	record("demo.Render", 4200*time.Microsecond)
	record("host.Swap", 2*time.Millisecond)
	record("host.Poll", 100*time.Microsecond)
	record("demo.Render", 0)

	assert.Equal(t, "demo.Render:4.2ms, host.Swap:2ms", TopN(2))
	assert.Equal(t, "demo.Render:4.2ms, host.Swap:2ms, host.Poll:0.1ms", TopN(10))

	ResetFrame()
	assert.Empty(t, Snapshot())
	assert.Equal(t, "", TopN(3))
}

func TestTrack(t *testing.T) {
	ResetFrame()
	stop := Track("work")
	time.Sleep(time.Millisecond)
	stop()
	Track("work")()

	ss := Snapshot()
	assert.GreaterOrEqual(t, ss["work"], time.Millisecond)
}

func TestFPSCounter(t *testing.T) {
	var c FPSCounter
	t0 := time.Unix(0, 0)

	_, updated := c.Tick(t0)
	assert.False(t, updated)

	for i := 1; i < 60; i++ {
		_, updated = c.Tick(t0.Add(time.Duration(i) * time.Second / 60))
		assert.False(t, updated)
	}
	fps, updated := c.Tick(t0.Add(time.Second))
	assert.True(t, updated)
	assert.InDelta(t, 60.0, fps, 1e-9)
	assert.InDelta(t, 60.0, c.FPS(), 1e-9)

	c = FPSCounter{Window: 500 * time.Millisecond}
	c.Tick(t0)
	c.Tick(t0.Add(250 * time.Millisecond))
	fps, updated = c.Tick(t0.Add(500 * time.Millisecond))
	assert.True(t, updated)
	assert.InDelta(t, 4.0, fps, 1e-9)
}
