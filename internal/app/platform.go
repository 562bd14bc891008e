package app

import "sb7/internal/gfx"

// Platform is the windowing system the host runs on.
type Platform interface {
	Init() error
	// CreateWindow opens a window for cfg and makes its context current.
	CreateWindow(cfg Config) (Window, error)
	// Time returns seconds elapsed since Init.
	Time() float64
	Terminate()
}

// Window is an open window with a current graphics context.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	// PollEvents processes pending window system events without blocking and
	// returns them in arrival order.
	PollEvents() []Event
	SwapBuffers()
	SetSwapInterval(interval int)
	FramebufferSize() (width, height int)
	GL() gfx.Context
	Destroy()
}
