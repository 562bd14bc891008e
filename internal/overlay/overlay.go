// Package overlay draws immediate-mode text on top of a frame.
package overlay

import (
	"fmt"

	"golang.org/x/image/font"

	"sb7/internal/gfx"
	"sb7/internal/graphics"
	"sb7/internal/vmath"
)

const vertexShader = `#version 410 core
layout (location = 0) in vec4 vertex; // xy position, zw texcoord
uniform mat4 projection;
out vec2 uv;
void main(void)
{
	gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
	uv = vertex.zw;
}
`

const fragmentShader = `#version 410 core
in vec2 uv;
uniform sampler2D glyphs;
uniform vec4 text_color;
out vec4 color;
void main(void)
{
	color = vec4(text_color.rgb, text_color.a * texture(glyphs, uv).r);
}
`

// floats per vertex and vertices per glyph quad
const (
	vertexFloats = 4
	quadVertices = 6
)

// Overlay batches text quads between Begin and Render. Coordinates are in
// pixels with the origin at the top-left of the window.
type Overlay struct {
	// Color applies to everything drawn by the next Render.
	Color vmath.Vec4f
	// Scale multiplies glyph sizes.
	Scale float32
	// Margin is the left and top inset used by Line.
	Margin float32

	gl    gfx.Context
	prog  *graphics.Program
	atlas *graphics.FontAtlas
	tex   uint32
	vao   uint32
	vbo   uint32

	width, height int
	lineY         float32
	verts         []float32
}

// New builds an overlay with the default 16px face.
func New(gl gfx.Context) (*Overlay, error) {
	face := graphics.DefaultFace(16)
	defer face.Close()
	return NewWithFace(gl, face)
}

// NewWithFace bakes the printable ASCII range of face into an atlas.
func NewWithFace(gl gfx.Context, face font.Face) (*Overlay, error) {
	prog, err := graphics.NewProgram(gl, vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("overlay shaders: %w", err)
	}

	atlas := graphics.BakeFont(face, graphics.ASCII(), 512)
	o := &Overlay{
		Color:  vmath.Vec4f{1, 1, 1, 1},
		Scale:  1,
		Margin: 8,
		gl:     gl,
		prog:   prog,
		atlas:  atlas,
		tex:    atlas.Upload(gl),
	}

	o.vao = gl.GenVertexArray()
	o.vbo = gl.GenBuffer()
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gfx.ArrayBuffer, o.vbo)
	// room for 256 glyphs; Render grows the store as needed
	gl.BufferData(gfx.ArrayBuffer, 256*quadVertices*vertexFloats*4, nil, gfx.DynamicDraw)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, vertexFloats, gfx.Float, false, vertexFloats*4, 0)
	gl.BindBuffer(gfx.ArrayBuffer, 0)
	gl.BindVertexArray(0)

	return o, nil
}

// Begin starts a new batch for a window of w by h pixels.
func (o *Overlay) Begin(w, h int) {
	o.width, o.height = w, h
	o.lineY = o.Margin
	o.verts = o.verts[:0]
}

// Text queues formatted text with its first line's top edge at y.
// Newlines start a new line at x.
func (o *Overlay) Text(x, y float32, format string, args ...any) {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	scale := o.Scale
	penX, baseline := x, y+o.atlas.Ascent*scale
	for _, r := range text {
		if r == '\n' {
			penX = x
			baseline += o.atlas.LineHeight * scale
			continue
		}
		g, ok := o.atlas.Glyphs[r]
		if !ok {
			penX += o.atlas.Glyphs[' '].Advance * scale
			continue
		}
		if g.W > 0 && g.H > 0 {
			o.verts = o.appendQuad(o.verts, g, penX, baseline, scale)
		}
		penX += g.Advance * scale
	}
}

// Line queues text on the next line below the previous Line call.
func (o *Overlay) Line(format string, args ...any) {
	o.Text(o.Margin, o.lineY, format, args...)
	o.lineY += o.atlas.LineHeight * o.Scale
}

func (o *Overlay) appendQuad(verts []float32, g graphics.Glyph, x, baseline, scale float32) []float32 {
	x0 := x + float32(g.BearingX)*scale
	y0 := baseline - float32(g.BearingY)*scale
	x1 := x0 + float32(g.W)*scale
	y1 := y0 + float32(g.H)*scale

	aw, ah := float32(o.atlas.Image.Rect.Dx()), float32(o.atlas.Image.Rect.Dy())
	u0, v0 := float32(g.X)/aw, float32(g.Y)/ah
	u1, v1 := float32(g.X+g.W)/aw, float32(g.Y+g.H)/ah

	return append(verts,
		// triangle 1
		x0, y1, u0, v1,
		x0, y0, u0, v0,
		x1, y0, u1, v0,
		// triangle 2
		x0, y1, u0, v1,
		x1, y0, u1, v0,
		x1, y1, u1, v1,
	)
}

// Render draws the batch with alpha blending. It leaves blending and depth
// testing disabled.
func (o *Overlay) Render() {
	if len(o.verts) == 0 {
		return
	}
	gl := o.gl

	gl.Disable(gfx.DepthTest)
	gl.Enable(gfx.Blend)
	gl.BlendFunc(gfx.SrcAlpha, gfx.OneMinusSrcAlpha)

	o.prog.Use()
	o.prog.SetMat4("projection", vmath.Ortho(0, float32(o.width), float32(o.height), 0, -1, 1))
	o.prog.SetVec4("text_color", o.Color)
	o.prog.SetInt("glyphs", 0)

	gl.ActiveTexture(gfx.Texture0)
	gl.BindTexture(gfx.Texture2D, o.tex)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gfx.ArrayBuffer, o.vbo)

	// orphan the store before refilling it
	data := gfx.Float32Bytes(o.verts)
	gl.BufferData(gfx.ArrayBuffer, len(data), nil, gfx.DynamicDraw)
	gl.BufferSubData(gfx.ArrayBuffer, 0, data)
	gl.DrawArrays(gfx.Triangles, 0, int32(len(o.verts)/vertexFloats))

	gl.BindVertexArray(0)
	gl.Disable(gfx.Blend)
}

// Measure returns the size in pixels text would occupy at the current
// scale.
func (o *Overlay) Measure(text string) (float32, float32) {
	return o.atlas.Measure(text, o.Scale)
}

// Delete releases the overlay's GL objects.
func (o *Overlay) Delete() {
	if o.prog == nil {
		return
	}
	o.prog.Delete()
	o.gl.DeleteTexture(o.tex)
	o.gl.DeleteBuffer(o.vbo)
	o.gl.DeleteVertexArray(o.vao)
	o.prog = nil
}
