// Command spinningcube draws 24 cubes tumbling around the origin.
package main

import (
	"github.com/chewxy/math32"

	"sb7/internal/app"
	"sb7/internal/app/desktop"
	"sb7/internal/gfx"
	"sb7/internal/graphics"
	"sb7/internal/vmath"
)

const cubes = 24

var cubePositions = []float32{
	-0.25, 0.25, -0.25,
	-0.25, -0.25, -0.25,
	0.25, -0.25, -0.25,

	0.25, -0.25, -0.25,
	0.25, 0.25, -0.25,
	-0.25, 0.25, -0.25,

	0.25, -0.25, -0.25,
	0.25, -0.25, 0.25,
	0.25, 0.25, -0.25,

	0.25, -0.25, 0.25,
	0.25, 0.25, 0.25,
	0.25, 0.25, -0.25,

	0.25, -0.25, 0.25,
	-0.25, -0.25, 0.25,
	0.25, 0.25, 0.25,

	-0.25, -0.25, 0.25,
	-0.25, 0.25, 0.25,
	0.25, 0.25, 0.25,

	-0.25, -0.25, 0.25,
	-0.25, -0.25, -0.25,
	-0.25, 0.25, 0.25,

	-0.25, -0.25, -0.25,
	-0.25, 0.25, -0.25,
	-0.25, 0.25, 0.25,

	-0.25, -0.25, 0.25,
	0.25, -0.25, 0.25,
	0.25, -0.25, -0.25,

	0.25, -0.25, -0.25,
	-0.25, -0.25, -0.25,
	-0.25, -0.25, 0.25,

	-0.25, 0.25, -0.25,
	0.25, 0.25, -0.25,
	0.25, 0.25, 0.25,

	0.25, 0.25, 0.25,
	-0.25, 0.25, 0.25,
	-0.25, 0.25, -0.25,
}

const vertexSrc = `#version 450 core
in vec4 position;

out VS_OUT {
	vec4 color;
} vs_out;

uniform mat4 mv_matrix;
uniform mat4 proj_matrix;

void main(void) {
	gl_Position = proj_matrix * mv_matrix * position;
	vs_out.color = position * 2.0 + vec4(0.5, 0.5, 0.5, 0.0);
}`

const fragmentSrc = `#version 450 core
out vec4 color;

in VS_OUT {
	vec4 color;
} fs_in;

void main(void) {
	color = fs_in.color;
}`

type spinningCube struct {
	app.BaseDemo

	program  *graphics.Program
	vao, vbo uint32
	proj     vmath.Mat4f
}

func (d *spinningCube) Init() app.Config {
	cfg := app.DefaultConfig()
	cfg.Title = "OpenGL SuperBible - Spinning Cubes"
	return cfg
}

func (d *spinningCube) Start(ctx *app.Context) error {
	gl := ctx.GL()

	program, err := graphics.NewProgram(gl, vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	d.program = program

	d.vao = gl.GenVertexArray()
	gl.BindVertexArray(d.vao)
	d.vbo = gl.GenBuffer()
	gl.BindBuffer(gfx.ArrayBuffer, d.vbo)
	gl.BufferData(gfx.ArrayBuffer, len(cubePositions)*4, gfx.Float32Bytes(cubePositions), gfx.StaticDraw)
	gl.VertexAttribPointer(0, 3, gfx.Float, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	gl.Enable(gfx.DepthTest)
	gl.DepthFunc(gfx.Lequal)

	info := ctx.Info()
	d.Resize(ctx, info.Width, info.Height)
	return nil
}

func (d *spinningCube) Resize(_ *app.Context, w, h int) {
	d.proj = vmath.Perspective(50, float32(w)/float32(h), 0.1, 1000)
}

func (d *spinningCube) Render(ctx *app.Context, t float64) {
	gl := ctx.GL()
	gl.ClearBufferfv(gfx.Color, 0, []float32{0, 0.25, 0, 1})
	gl.ClearBufferfv(gfx.Depth, 0, []float32{1})

	d.program.Use()
	d.program.SetMat4("proj_matrix", d.proj)
	gl.BindVertexArray(d.vao)

	now := float32(t)
	for i := range cubes {
		f := float32(i) + now*0.3
		mv := vmath.Translate(0, 0, -6).
			Mul(vmath.RotateAxis(now*45, 0, 1, 0)).
			Mul(vmath.RotateAxis(now*21, 1, 0, 0)).
			Mul(vmath.Translate(
				math32.Sin(2.1*f)*2,
				math32.Cos(1.7*f)*2,
				math32.Sin(1.3*f)*math32.Cos(1.5*f)*2))
		d.program.SetMat4("mv_matrix", mv)
		gl.DrawArrays(gfx.Triangles, 0, int32(len(cubePositions)/3))
	}
}

func (d *spinningCube) Stop(ctx *app.Context) {
	gl := ctx.GL()
	gl.DeleteBuffer(d.vbo)
	gl.DeleteVertexArray(d.vao)
	d.program.Delete()
}

func main() {
	desktop.Main(&spinningCube{})
}
