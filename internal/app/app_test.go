package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sb7/internal/gfx"
	"sb7/internal/gfx/gfxtest"
	"sb7/internal/overlay"
)

type fakeWindow struct {
	gl *gfxtest.Recorder
	// frames are returned by successive PollEvents calls. The window asks
	// to close during the poll that returns the last one.
	frames    [][]Event
	polls     int
	close     bool
	swaps     int
	intervals []int
	w, h      int
	destroyed bool
}

func (w *fakeWindow) ShouldClose() bool     { return w.close }
func (w *fakeWindow) SetShouldClose(v bool) { w.close = v }
func (w *fakeWindow) SwapBuffers()          { w.swaps++ }
func (w *fakeWindow) SetSwapInterval(i int) { w.intervals = append(w.intervals, i) }
func (w *fakeWindow) GL() gfx.Context       { return w.gl }
func (w *fakeWindow) Destroy()              { w.destroyed = true }

func (w *fakeWindow) FramebufferSize() (int, int) { return w.w, w.h }

func (w *fakeWindow) PollEvents() []Event {
	defer func() { w.polls++ }()
	if w.polls >= len(w.frames)-1 {
		w.close = true
	}
	if w.polls >= len(w.frames) {
		return nil
	}
	return w.frames[w.polls]
}

type fakePlatform struct {
	win        *fakeWindow
	initErr    error
	createErr  error
	created    *Config
	terminated bool
	now        float64
}

func (p *fakePlatform) Init() error { return p.initErr }

func (p *fakePlatform) CreateWindow(cfg Config) (Window, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.created = &cfg
	return p.win, nil
}

func (p *fakePlatform) Time() float64 {
	p.now += 0.016
	return p.now
}

func (p *fakePlatform) Terminate() { p.terminated = true }

func newPlatform(frames ...[]Event) *fakePlatform {
	return &fakePlatform{win: &fakeWindow{gl: gfxtest.New(), frames: frames, w: 800, h: 600}}
}

// recordingDemo logs every callback it receives.
type recordingDemo struct {
	BaseDemo
	cfg      Config
	startErr error
	calls    []string
	times    []float64
	keys     []KeyEvent
	sizes    [][2]int
	// viewport is the last Viewport call seen when Resize ran
	viewport []any
	info     Config
	uiCalls  int
}

func (d *recordingDemo) Init() Config {
	d.calls = append(d.calls, "init")
	if d.cfg.Title == "" {
		return DefaultConfig()
	}
	return d.cfg
}

func (d *recordingDemo) Start(*Context) error {
	d.calls = append(d.calls, "start")
	return d.startErr
}

func (d *recordingDemo) Render(ctx *Context, t float64) {
	d.calls = append(d.calls, "render")
	d.times = append(d.times, t)
	d.BaseDemo.Render(ctx, t)
}

func (d *recordingDemo) Resize(ctx *Context, w, h int) {
	d.calls = append(d.calls, "resize")
	d.sizes = append(d.sizes, [2]int{w, h})
	d.info = ctx.Info()
	rec := ctx.GL().(*gfxtest.Recorder)
	vp := rec.Find("Viewport")
	d.viewport = vp[len(vp)-1].Args
}

func (d *recordingDemo) Key(_ *Context, k Key, a Action) {
	d.calls = append(d.calls, "key")
	d.keys = append(d.keys, KeyEvent{Key: k, Action: a})
}

func (d *recordingDemo) UI(ctx *Context, o *overlay.Overlay) {
	d.uiCalls++
	d.BaseDemo.UI(ctx, o)
}

func (d *recordingDemo) Stop(*Context) { d.calls = append(d.calls, "stop") }

func TestRunStopsAfterCloseRequest(t *testing.T) {
	p := newPlatform([]Event{KeyEvent{Key: KeyEscape, Action: Press}})
	d := &recordingDemo{}

	require.NoError(t, Run(d, p))

	assert.Equal(t, []string{"init", "start", "render", "stop"}, d.calls)
	require.Len(t, d.times, 1)
	assert.GreaterOrEqual(t, d.times[0], 0.0)
	assert.Equal(t, 1, p.win.swaps)
	assert.True(t, p.win.destroyed)
	assert.True(t, p.terminated)

	// the base render clears the color buffer
	clears := p.win.gl.Find("ClearBufferfv")
	require.Len(t, clears, 1)
	assert.Equal(t, uint32(gfx.Color), clears[0].Args[0])
}

func TestRunPassesConfigToPlatform(t *testing.T) {
	p := newPlatform()
	d := &recordingDemo{cfg: DefaultConfig()}
	d.cfg.Title = "spinning cube"
	d.cfg.Flags.VSync = true

	require.NoError(t, Run(d, p))
	require.NotNil(t, p.created)
	assert.Equal(t, "spinning cube", p.created.Title)
	assert.Equal(t, []int{1}, p.win.intervals)

	vp := p.win.gl.Find("Viewport")
	require.NotEmpty(t, vp)
	assert.Equal(t, []any{int32(0), int32(0), int32(800), int32(600)}, vp[0].Args)
}

func TestEscapeIsNotForwarded(t *testing.T) {
	p := newPlatform(
		[]Event{KeyEvent{Key: KeyA, Action: Press}, KeyEvent{Key: KeyA, Action: Release}},
		[]Event{KeyEvent{Key: KeyEscape, Action: Release}, KeyEvent{Key: KeyEscape, Action: Press}},
	)
	d := &recordingDemo{}
	require.NoError(t, Run(d, p))

	assert.Equal(t, []KeyEvent{
		{Key: KeyA, Action: Press},
		{Key: KeyA, Action: Release},
		{Key: KeyEscape, Action: Release},
	}, d.keys)
	assert.Len(t, d.times, 2)
}

func TestResizeOrdering(t *testing.T) {
	p := newPlatform([]Event{ResizeEvent{Width: 1024, Height: 768}})
	d := &recordingDemo{}
	require.NoError(t, Run(d, p))

	assert.Equal(t, []string{"init", "start", "resize", "render", "stop"}, d.calls)
	assert.Equal(t, [][2]int{{1024, 768}}, d.sizes)
	assert.Equal(t, 1024, d.info.Width)
	assert.Equal(t, 768, d.info.Height)
	assert.Equal(t, []any{int32(0), int32(0), int32(1024), int32(768)}, d.viewport)
}

func TestMinimizeKeepsSize(t *testing.T) {
	p := newPlatform([]Event{ResizeEvent{}})
	d := &recordingDemo{}
	require.NoError(t, Run(d, p))
	assert.Empty(t, d.sizes)
}

func TestStartErrorSkipsStop(t *testing.T) {
	boom := errors.New("no such texture")
	p := newPlatform()
	d := &recordingDemo{startErr: boom}

	err := Run(d, p)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"init", "start"}, d.calls)
	assert.True(t, p.win.destroyed)
	assert.True(t, p.terminated)
}

func TestConfigErrors(t *testing.T) {
	glfwDown := errors.New("glfw: no display")

	p := newPlatform()
	p.initErr = glfwDown
	err := Run(&recordingDemo{}, p)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, glfwDown)
	assert.False(t, p.terminated)

	p = newPlatform()
	p.createErr = errors.New("version 4.5 unavailable")
	d := &recordingDemo{}
	err = Run(d, p)
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "4.5")
	assert.Equal(t, []string{"init"}, d.calls)
	assert.True(t, p.terminated)

	p = newPlatform()
	d = &recordingDemo{cfg: Config{Title: "tiny"}}
	err = Run(d, p)
	require.ErrorAs(t, err, &cfgErr)
	assert.Nil(t, p.created)
}

type mouseDemo struct {
	recordingDemo
	buttons []MouseButton
	moves   [][2]float64
	wheel   []float64
}

func (d *mouseDemo) MouseButton(_ *Context, b MouseButton, _ Action, _ ModifierKey) {
	d.buttons = append(d.buttons, b)
}

func (d *mouseDemo) MouseMove(_ *Context, x, y float64) {
	d.moves = append(d.moves, [2]float64{x, y})
}

func (d *mouseDemo) MouseWheel(_ *Context, _, dy float64) { d.wheel = append(d.wheel, dy) }

func TestMouseEvents(t *testing.T) {
	events := []Event{
		MouseButtonEvent{Button: MouseButtonRight, Action: Press},
		CursorEvent{X: 10, Y: 20},
		ScrollEvent{Y: -1},
	}

	d := &mouseDemo{}
	require.NoError(t, Run(d, newPlatform(events)))
	assert.Equal(t, []MouseButton{MouseButtonRight}, d.buttons)
	assert.Equal(t, [][2]float64{{10, 20}}, d.moves)
	assert.Equal(t, []float64{-1}, d.wheel)

	// demos without the handler just ignore them
	plain := &recordingDemo{}
	require.NoError(t, Run(plain, newPlatform(events)))
	assert.Equal(t, []string{"init", "start", "render", "stop"}, plain.calls)
}

func TestGLErrorsAreDrained(t *testing.T) {
	p := newPlatform([]Event{})
	p.win.gl.Errors = []uint32{gfx.InvalidEnum, gfx.InvalidOperation}

	require.NoError(t, Run(&recordingDemo{}, p))
	assert.Empty(t, p.win.gl.Errors)
}

func TestDebugOutput(t *testing.T) {
	p := newPlatform()
	p.win.gl.DebugOutput = true
	d := &recordingDemo{cfg: DefaultConfig()}
	d.cfg.Flags.Debug = true

	require.NoError(t, Run(d, p))
	require.NotNil(t, p.win.gl.Debug)
	assert.NotPanics(t, func() {
		p.win.gl.Debug(gfx.DebugMessage{Severity: gfx.DebugSeverityHigh, Message: "buffer too small"})
	})
}

func TestOverlayDrivesUI(t *testing.T) {
	p := newPlatform([]Event{}, []Event{})
	d := &recordingDemo{cfg: DefaultConfig()}
	d.cfg.ShowOverlay = true

	require.NoError(t, Run(d, p))
	assert.Equal(t, 2, d.uiCalls)
	// the fps line is drawn each frame, then the overlay is released
	assert.Equal(t, 2, p.win.gl.Count("DrawArrays"))
	assert.Equal(t, 1, p.win.gl.Count("DeleteProgram"))
}

func TestContextVSync(t *testing.T) {
	win := &fakeWindow{}
	ctx := &Context{win: win, keys: NewKeyState()}

	ctx.SetVSync(true)
	assert.True(t, ctx.Info().Flags.VSync)
	ctx.SetVSync(false)
	assert.False(t, ctx.Info().Flags.VSync)
	assert.Equal(t, []int{1, 0}, win.intervals)

	ctx.Close()
	assert.True(t, win.ShouldClose())
}
