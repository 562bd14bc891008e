// Package desktop runs demos in a GLFW window with an OpenGL core context.
package desktop

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"sb7/internal/app"
	"sb7/internal/gfx"
	"sb7/internal/gfx/glcore"
)

// GLFW and GL calls must come from the main thread.
func init() { runtime.LockOSThread() }

// ConfigEnv names an optional YAML file applied over every demo's Config.
const ConfigEnv = "SB7_CONFIG"

// Main runs demo and exits the process, with status 1 if it failed.
func Main(demo app.Demo) {
	closer.Bind(func() {
		slog.Debug("bye")
	})
	defer closer.Close()

	if err := Run(demo); err != nil {
		closer.Fatalln(err)
	}
}

// Run installs the logger and hosts demo on GLFW.
func Run(demo app.Demo) error {
	d, err := withOverrides(demo)
	if err != nil {
		return err
	}
	setupLogging(d.Init().Flags.Debug)
	return app.Run(d, &Platform{})
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// overridden replaces a demo's Config with one read from ConfigEnv.
type overridden struct {
	app.Demo
	cfg app.Config
}

func (o overridden) Init() app.Config { return o.cfg }

func withOverrides(demo app.Demo) (app.Demo, error) {
	path := os.Getenv(ConfigEnv)
	if path == "" {
		return demo, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigEnv, err)
	}
	defer f.Close()

	cfg := demo.Init()
	if err := app.ApplyOverrides(&cfg, f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return overridden{Demo: demo, cfg: cfg}, nil
}

// Platform is app.Platform on GLFW.
type Platform struct{}

func (*Platform) Init() error { return glfw.Init() }

func (*Platform) Terminate() { glfw.Terminate() }

func (*Platform) Time() float64 { return glfw.GetTime() }

func (*Platform) CreateWindow(cfg app.Config) (app.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.MajorVersion)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.MinorVersion)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.Stereo, hint(cfg.Flags.Stereo))
	glfw.WindowHint(glfw.OpenGLDebugContext, hint(cfg.Flags.Debug))
	if cfg.Flags.Robust {
		glfw.WindowHint(glfw.ContextRobustness, glfw.LoseContextOnReset)
	}

	var monitor *glfw.Monitor
	if cfg.Flags.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()

	gl, err := glcore.New()
	if err != nil {
		win.Destroy()
		return nil, err
	}

	if !cfg.Flags.CursorVisible {
		win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}

	w := &Window{win: win, gl: gl}
	w.installCallbacks()
	return w, nil
}

func hint(on bool) int {
	if on {
		return glfw.True
	}
	return glfw.False
}

// Window is app.Window on a GLFW window. Callbacks queue events until the
// next PollEvents.
type Window struct {
	win    *glfw.Window
	gl     gfx.Context
	events []app.Event
}

func (w *Window) installCallbacks() {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.events = append(w.events, app.KeyEvent{
			Key:      app.Key(key),
			Scancode: scancode,
			Action:   app.Action(action),
			Mods:     app.ModifierKey(mods),
		})
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events = append(w.events, app.ResizeEvent{Width: width, Height: height})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.events = append(w.events, app.MouseButtonEvent{
			Button: app.MouseButton(button),
			Action: app.Action(action),
			Mods:   app.ModifierKey(mods),
		})
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events = append(w.events, app.CursorEvent{X: x, Y: y})
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.events = append(w.events, app.ScrollEvent{X: dx, Y: dy})
	})
}

func (w *Window) PollEvents() []app.Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	return w.events
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

func (w *Window) SetSwapInterval(interval int) { glfw.SwapInterval(interval) }

func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

func (w *Window) GL() gfx.Context { return w.gl }

func (w *Window) Destroy() { w.win.Destroy() }
