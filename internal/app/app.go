// Package app hosts a Demo: it opens the window, runs the frame loop and
// turns window system events into Demo callbacks.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sb7/internal/gfx"
	"sb7/internal/overlay"
	"sb7/internal/profiling"
)

const (
	slowFrame = 50 * time.Millisecond
	// maxErrors bounds the GetError drain; a lost context reports forever.
	maxErrors = 32
)

// Run drives demo on platform until its window closes. Errors creating the
// window are *ConfigError. An error from Start is returned as is, without
// calling Stop.
func Run(demo Demo, platform Platform) error {
	if err := platform.Init(); err != nil {
		return &ConfigError{Err: err}
	}
	defer platform.Terminate()

	cfg := demo.Init()
	if err := cfg.Validate(); err != nil {
		return &ConfigError{Err: err}
	}

	win, err := platform.CreateWindow(cfg)
	if err != nil {
		return &ConfigError{Err: err}
	}
	defer win.Destroy()

	gl := win.GL()
	ctx := &Context{info: cfg, gl: gl, win: win, keys: NewKeyState()}

	if cfg.Flags.Debug && !gl.EnableDebugOutput(logDebugMessage) {
		slog.Warn("debug output requested but the context does not support it")
	}

	if w, h := win.FramebufferSize(); w > 0 && h > 0 {
		ctx.info.Width, ctx.info.Height = w, h
	}
	gl.Viewport(0, 0, int32(ctx.info.Width), int32(ctx.info.Height))
	ctx.SetVSync(cfg.Flags.VSync)

	var ov *overlay.Overlay
	if cfg.ShowOverlay {
		ov, err = overlay.New(gl)
		if err != nil {
			return err
		}
		defer ov.Delete()
	}

	slog.Info("starting demo",
		"title", cfg.Title,
		"width", ctx.info.Width,
		"height", ctx.info.Height,
		"gl", fmt.Sprintf("%d.%d", cfg.MajorVersion, cfg.MinorVersion))

	if err := demo.Start(ctx); err != nil {
		return err
	}
	defer demo.Stop(ctx)

	var (
		limiter FrameLimiter
		fps     profiling.FPSCounter
	)
	for !win.ShouldClose() {
		frameStart := time.Now()
		profiling.ResetFrame()

		for _, ev := range win.PollEvents() {
			dispatch(ctx, demo, ev)
		}

		t := platform.Time()
		func() {
			defer profiling.Track("demo.Render")()
			demo.Render(ctx, t)
		}()

		if ov != nil {
			func() {
				defer profiling.Track("host.Overlay")()
				ov.Begin(ctx.info.Width, ctx.info.Height)
				demo.UI(ctx, ov)
				ov.Render()
			}()
		}

		drainErrors(gl)

		func() {
			defer profiling.Track("host.Swap")()
			win.SwapBuffers()
		}()
		ctx.keys.PostUpdate()

		now := time.Now()
		if rate, updated := fps.Tick(now); updated {
			ctx.fps = rate
		}
		if elapsed := now.Sub(frameStart); elapsed > slowFrame {
			slog.Debug("slow frame", "ms", elapsed.Milliseconds(), "top", profiling.TopN(3))
		}

		limiter.Wait(ctx.info.MaxFPS)
	}
	return nil
}

func dispatch(ctx *Context, demo Demo, ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		ctx.keys.Handle(e.Key, e.Action)
		if e.Key == KeyEscape && e.Action == Press {
			ctx.Close()
			return
		}
		demo.Key(ctx, e.Key, e.Action)
	case ResizeEvent:
		// a minimized window reports 0x0; keep the last real size
		if e.Width <= 0 || e.Height <= 0 {
			return
		}
		ctx.info.Width, ctx.info.Height = e.Width, e.Height
		ctx.gl.Viewport(0, 0, int32(e.Width), int32(e.Height))
		demo.Resize(ctx, e.Width, e.Height)
	case MouseButtonEvent:
		if mh, ok := demo.(MouseHandler); ok {
			mh.MouseButton(ctx, e.Button, e.Action, e.Mods)
		}
	case CursorEvent:
		if mh, ok := demo.(MouseHandler); ok {
			mh.MouseMove(ctx, e.X, e.Y)
		}
	case ScrollEvent:
		if mh, ok := demo.(MouseHandler); ok {
			mh.MouseWheel(ctx, e.X, e.Y)
		}
	}
}

// drainErrors logs everything queued on the GL error flag.
func drainErrors(gl gfx.Context) {
	for i := 0; i < maxErrors; i++ {
		code := gl.GetError()
		if code == gfx.NoError {
			return
		}
		slog.Error("gl error", "code", gfx.ErrorName(code))
	}
}

func logDebugMessage(m gfx.DebugMessage) {
	level := slog.LevelDebug
	switch m.Severity {
	case gfx.DebugSeverityHigh:
		level = slog.LevelError
	case gfx.DebugSeverityMedium:
		level = slog.LevelWarn
	case gfx.DebugSeverityLow:
		level = slog.LevelInfo
	}
	slog.Log(context.Background(), level, "gl debug message",
		"severity", gfx.SeverityName(m.Severity),
		"id", m.ID,
		"source", fmt.Sprintf("0x%x", m.Source),
		"type", fmt.Sprintf("0x%x", m.Type),
		"message", m.Message)
}
