package app

import (
	"math"

	"sb7/internal/gfx"
	"sb7/internal/overlay"
)

// Demo is what a program hands to Run. The host calls every method on the
// thread that owns the graphics context, with the context current.
type Demo interface {
	// Init returns the window configuration. It runs before any window exists.
	Init() Config
	// Start acquires GPU resources. An error ends the run without Stop.
	Start(ctx *Context) error
	// Render draws one frame at t seconds since the host started.
	Render(ctx *Context, t float64)
	// Resize is called after the viewport has been set to w by h.
	Resize(ctx *Context, w, h int)
	Key(ctx *Context, key Key, action Action)
	// UI queues overlay text. It is only called when Config.ShowOverlay is set.
	UI(ctx *Context, o *overlay.Overlay)
	// Stop releases what Start acquired. It is called once per successful
	// Start.
	Stop(ctx *Context)
}

// MouseHandler is implemented by demos that want pointer input.
type MouseHandler interface {
	MouseButton(ctx *Context, button MouseButton, action Action, mods ModifierKey)
	MouseMove(ctx *Context, x, y float64)
	MouseWheel(ctx *Context, dx, dy float64)
}

// BaseDemo implements every Demo method. Embed it and override what the
// demo needs.
type BaseDemo struct{}

func (BaseDemo) Init() Config { return DefaultConfig() }

func (BaseDemo) Start(*Context) error { return nil }

// Render clears to a gray that pulses with time.
func (BaseDemo) Render(ctx *Context, t float64) {
	g := float32(math.Sin(t)*0.5 + 0.5)
	ctx.GL().ClearBufferfv(gfx.Color, 0, []float32{g, g, g, 1})
}

func (BaseDemo) Resize(*Context, int, int) {}

func (BaseDemo) Key(*Context, Key, Action) {}

// UI shows the frame rate.
func (BaseDemo) UI(ctx *Context, o *overlay.Overlay) {
	o.Line("%.0f fps", ctx.FPS())
}

func (BaseDemo) Stop(*Context) {}
