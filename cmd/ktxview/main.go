// Command ktxview shows a KTX texture on a full-window quad. R reloads the
// file from disk.
package main

import (
	"log/slog"
	"sort"

	"sb7/internal/app"
	"sb7/internal/app/desktop"
	"sb7/internal/gfx"
	"sb7/internal/graphics"
	"sb7/internal/ktx"
	"sb7/internal/overlay"
)

const textureFile = "textures/tree.ktx"

const vertexSrc = `#version 450 core
out vec2 uv;
void main(void) {
	const vec2 corners[4] = vec2[4](
		vec2(-1.0, -1.0), vec2(1.0, -1.0),
		vec2(-1.0, 1.0), vec2(1.0, 1.0));
	vec2 p = corners[gl_VertexID];
	uv = p * vec2(0.5, -0.5) + 0.5;
	gl_Position = vec4(p, 0.5, 1.0);
}`

const fragmentSrc = `#version 450 core
uniform sampler2D tex;
in vec2 uv;
out vec4 color;
void main(void) {
	color = texture(tex, uv);
}`

type ktxView struct {
	app.BaseDemo

	program *graphics.Program
	vao     uint32
	tex     *ktx.Texture
	loadErr error
}

func (d *ktxView) Init() app.Config {
	cfg := app.DefaultConfig()
	cfg.Title = "OpenGL SuperBible - KTX Viewer"
	cfg.ShowOverlay = true
	return cfg
}

func (d *ktxView) Start(ctx *app.Context) error {
	program, err := graphics.NewProgram(ctx.GL(), vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	d.program = program
	d.vao = ctx.GL().GenVertexArray()
	d.load(ctx)
	return nil
}

// load replaces the current texture. A file that fails to load leaves the
// window blank and the error on screen.
func (d *ktxView) load(ctx *app.Context) {
	gl := ctx.GL()
	tex, err := ktx.LoadFile(gl, textureFile)
	if err != nil {
		slog.Error("could not load texture", "file", textureFile, "err", err)
		d.loadErr = err
		return
	}
	d.tex.Delete()
	d.tex, d.loadErr = tex, nil

	gl.BindTexture(tex.Target, tex.ID)
	gl.TexParameteri(tex.Target, gfx.TextureMinFilter, gfx.LinearMipmapLinear)
	gl.TexParameteri(tex.Target, gfx.TextureMagFilter, gfx.Linear)
}

func (d *ktxView) Render(ctx *app.Context, _ float64) {
	gl := ctx.GL()
	gl.ClearBufferfv(gfx.Color, 0, []float32{0, 0.25, 0, 1})
	if d.tex == nil || d.tex.Target != gfx.Texture2D {
		return
	}

	gl.ActiveTexture(gfx.Texture0)
	gl.BindTexture(d.tex.Target, d.tex.ID)
	d.program.Use()
	d.program.SetInt("tex", 0)
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gfx.TriangleStrip, 0, 4)
}

func (d *ktxView) Key(ctx *app.Context, key app.Key, action app.Action) {
	if key == app.KeyR && action == app.Press {
		d.load(ctx)
	}
}

func (d *ktxView) UI(ctx *app.Context, o *overlay.Overlay) {
	o.Line("%s  %.0f fps", textureFile, ctx.FPS())
	if d.loadErr != nil {
		o.Line("error: %v", d.loadErr)
		return
	}
	if d.tex == nil {
		return
	}
	h := d.tex.Header
	o.Line("%dx%dx%d  levels %d  layers %d  faces %d", h.PixelWidth, h.PixelHeight, h.PixelDepth, h.MipLevels, h.ArrayElements, h.Faces)
	o.Line("target 0x%x  internal format 0x%x  compressed %v", d.tex.Target, h.InternalFormat, h.IsCompressed())
	if d.tex.Target != gfx.Texture2D {
		o.Line("only 2D textures are drawn")
	}

	keys := make([]string, 0, len(d.tex.Metadata))
	for k := range d.tex.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		o.Line("%s: %s", k, d.tex.Metadata[k])
	}
}

func (d *ktxView) Stop(ctx *app.Context) {
	d.tex.Delete()
	ctx.GL().DeleteVertexArray(d.vao)
	d.program.Delete()
}

func main() {
	desktop.Main(&ktxView{})
}
