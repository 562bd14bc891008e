package profiling

import "time"

// FPSCounter averages the frame rate over a fixed window.
type FPSCounter struct {
	// Window is how often the rate is recomputed. Zero means one second.
	Window time.Duration

	start  time.Time
	frames int
	fps    float64
}

// Tick counts one frame presented at now. It returns the latest rate and
// whether it was recomputed on this call.
func (c *FPSCounter) Tick(now time.Time) (float64, bool) {
	window := c.Window
	if window <= 0 {
		window = time.Second
	}
	if c.start.IsZero() {
		c.start = now
		return c.fps, false
	}
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < window {
		return c.fps, false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return c.fps, true
}

// FPS returns the last computed rate.
func (c *FPSCounter) FPS() float64 { return c.fps }
