package app

import "sb7/internal/gfx"

// Context is the host state a demo sees during callbacks.
type Context struct {
	info Config
	gl   gfx.Context
	win  Window
	keys *KeyState
	fps  float64
}

// Info returns a copy of the current configuration. Width and Height follow
// the framebuffer size.
func (c *Context) Info() Config { return c.info }

func (c *Context) GL() gfx.Context { return c.gl }

// Close asks the host to leave the loop after the current frame.
func (c *Context) Close() { c.win.SetShouldClose(true) }

// SetVSync turns buffer swap synchronization on or off.
func (c *Context) SetVSync(on bool) {
	interval := 0
	if on {
		interval = 1
	}
	c.win.SetSwapInterval(interval)
	c.info.Flags.VSync = on
}

func (c *Context) KeyDown(k Key) bool { return c.keys.Down(k) }

// JustPressed reports whether k went down since the previous frame.
func (c *Context) JustPressed(k Key) bool { return c.keys.JustPressed(k) }

// FPS is the frame rate averaged over the last second.
func (c *Context) FPS() float64 { return c.fps }
