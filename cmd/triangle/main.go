// Command triangle draws a single green triangle. V toggles vsync.
package main

import (
	"sb7/internal/app"
	"sb7/internal/app/desktop"
	"sb7/internal/gfx"
	"sb7/internal/graphics"
	"sb7/internal/overlay"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

// Minimal shaders
const vertexSrc = `#version 450 core
layout(location = 0) in vec2 position;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
}`

const fragmentSrc = `#version 450 core
out vec4 fragColor;
void main() {
	fragColor = vec4(0.0, 1.0, 0.0, 1.0);
}`

type triangle struct {
	app.BaseDemo

	program  *graphics.Program
	vao, vbo uint32
	vsync    bool
}

func (t *triangle) Init() app.Config {
	cfg := app.DefaultConfig()
	cfg.Title = "OpenGL SuperBible - Single Triangle"
	cfg.Width, cfg.Height = windowWidth, windowHeight
	cfg.ShowOverlay = true
	return cfg
}

func (t *triangle) Start(ctx *app.Context) error {
	gl := ctx.GL()

	program, err := graphics.NewProgram(gl, vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	t.program = program

	// Triangle vertex positions (NDC)
	vertices := []float32{
		0.0, 0.5,
		-0.5, -0.5,
		0.5, -0.5,
	}

	t.vao = gl.GenVertexArray()
	gl.BindVertexArray(t.vao)

	t.vbo = gl.GenBuffer()
	gl.BindBuffer(gfx.ArrayBuffer, t.vbo)
	gl.BufferData(gfx.ArrayBuffer, len(vertices)*4, gfx.Float32Bytes(vertices), gfx.StaticDraw)

	// location 0, 2 floats per vertex
	gl.VertexAttribPointer(0, 2, gfx.Float, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gfx.ArrayBuffer, 0)
	gl.BindVertexArray(0)

	t.vsync = ctx.Info().Flags.VSync
	return nil
}

func (t *triangle) Render(ctx *app.Context, _ float64) {
	gl := ctx.GL()
	gl.ClearBufferfv(gfx.Color, 0, []float32{0.1, 0.1, 0.1, 1.0})

	t.program.Use()
	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gfx.Triangles, 0, 3)
}

func (t *triangle) Key(ctx *app.Context, key app.Key, action app.Action) {
	if key == app.KeyV && action == app.Press {
		t.vsync = !t.vsync
		ctx.SetVSync(t.vsync)
	}
}

func (t *triangle) UI(ctx *app.Context, o *overlay.Overlay) {
	o.Line("%.0f fps", ctx.FPS())
	o.Line("vsync: %v (V to toggle)", t.vsync)
}

func (t *triangle) Stop(ctx *app.Context) {
	gl := ctx.GL()
	gl.DeleteBuffer(t.vbo)
	gl.DeleteVertexArray(t.vao)
	t.program.Delete()
}

func main() {
	desktop.Main(&triangle{})
}
