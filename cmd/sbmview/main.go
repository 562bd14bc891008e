// Command sbmview draws an SBM object under an orbit camera. Drag with the
// left button to orbit, scroll to zoom, V toggles vsync and N steps through
// sub-objects.
package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"sb7/internal/app"
	"sb7/internal/app/desktop"
	"sb7/internal/gfx"
	"sb7/internal/graphics"
	"sb7/internal/overlay"
	"sb7/internal/sbm"
	"sb7/internal/vmath"
)

const objectFile = "objects/torus.sbm"

const vertexSrc = `#version 450 core
layout(location = 0) in vec4 position;
layout(location = 1) in vec3 normal;

uniform mat4 mv_matrix;
uniform mat4 proj_matrix;

out vec3 view_normal;

void main(void) {
	view_normal = mat3(mv_matrix) * normal;
	gl_Position = proj_matrix * mv_matrix * position;
}`

const fragmentSrc = `#version 450 core
uniform vec3 light_dir;
in vec3 view_normal;
out vec4 color;

void main(void) {
	vec3 n = normalize(view_normal);
	float diff = max(dot(n, -light_dir), 0.2);
	color = vec4(vec3(0.8, 0.7, 0.5) * diff, 1.0);
}`

// orbit is a camera circling a target point.
type orbit struct {
	yaw, pitch float32
	distance   float32
}

func (o orbit) view() mgl32.Mat4 {
	eye := mgl32.SphericalToCartesian(o.distance, mgl32.DegToRad(90-o.pitch), mgl32.DegToRad(o.yaw))
	// SphericalToCartesian is z-up; the scene is y-up
	eye = mgl32.Vec3{eye.X(), eye.Z(), eye.Y()}
	return mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

type sbmView struct {
	app.BaseDemo

	program *graphics.Program
	object  *sbm.Object
	camera  orbit
	proj    mgl32.Mat4

	dragging   bool
	lastX      float64
	lastY      float64
	haveCursor bool
	vsync      bool
	// sub is the sub-object drawn, or -1 for all of them
	sub int
}

func (d *sbmView) Init() app.Config {
	cfg := app.DefaultConfig()
	cfg.Title = "OpenGL SuperBible - SBM Viewer"
	cfg.ShowOverlay = true
	cfg.Samples = 4
	return cfg
}

func (d *sbmView) Start(ctx *app.Context) error {
	gl := ctx.GL()

	program, err := graphics.NewProgram(gl, vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	d.program = program

	object, err := sbm.LoadFile(gl, objectFile)
	if err != nil {
		program.Delete()
		return err
	}
	d.object = object

	d.camera = orbit{yaw: 30, pitch: 20, distance: 4}
	d.sub = -1
	d.vsync = ctx.Info().Flags.VSync

	gl.Enable(gfx.DepthTest)
	gl.DepthFunc(gfx.Lequal)

	info := ctx.Info()
	d.Resize(ctx, info.Width, info.Height)
	return nil
}

func (d *sbmView) Resize(_ *app.Context, w, h int) {
	d.proj = mgl32.Perspective(mgl32.DegToRad(50), float32(w)/float32(h), 0.1, 100)
}

func (d *sbmView) Render(ctx *app.Context, _ float64) {
	gl := ctx.GL()
	gl.ClearBufferfv(gfx.Color, 0, []float32{0.1, 0.1, 0.15, 1})
	gl.ClearBufferfv(gfx.Depth, 0, []float32{1})

	d.program.Use()
	d.program.SetMat4("proj_matrix", vmath.FromMgl(d.proj))
	d.program.SetMat4("mv_matrix", vmath.FromMgl(d.camera.view()))
	d.program.SetVec3("light_dir", vmath.Vec3f{-0.3, -0.6, -1}.Normalize())

	if d.sub < 0 {
		d.object.RenderAll(1, 0)
		return
	}
	d.object.RenderSubObject(d.sub)
}

func (d *sbmView) Key(ctx *app.Context, key app.Key, action app.Action) {
	if action != app.Press {
		return
	}
	switch key {
	case app.KeyV:
		d.vsync = !d.vsync
		ctx.SetVSync(d.vsync)
	case app.KeyN:
		d.sub++
		if d.sub >= d.object.SubObjectCount() {
			d.sub = -1
		}
	}
}

func (d *sbmView) MouseButton(_ *app.Context, button app.MouseButton, action app.Action, _ app.ModifierKey) {
	if button == app.MouseButtonLeft {
		d.dragging = action == app.Press
	}
}

func (d *sbmView) MouseMove(_ *app.Context, x, y float64) {
	if d.dragging && d.haveCursor {
		d.camera.yaw += float32(x-d.lastX) * 0.3
		d.camera.pitch = mgl32.Clamp(d.camera.pitch+float32(y-d.lastY)*0.3, -89, 89)
	}
	d.lastX, d.lastY, d.haveCursor = x, y, true
}

func (d *sbmView) MouseWheel(_ *app.Context, _, dy float64) {
	d.camera.distance = mgl32.Clamp(d.camera.distance*(1-float32(dy)*0.1), 0.5, 50)
}

func (d *sbmView) UI(ctx *app.Context, o *overlay.Overlay) {
	o.Line("%s  %.0f fps  vsync %v", objectFile, ctx.FPS(), d.vsync)
	if d.sub < 0 {
		o.Line("all %d sub-objects (N to step)", d.object.SubObjectCount())
		return
	}
	first, count := d.object.SubObjectInfo(d.sub)
	o.Line("sub-object %d: first %d count %d", d.sub, first, count)
}

func (d *sbmView) Stop(*app.Context) {
	d.object.Free()
	d.program.Delete()
}

func main() {
	desktop.Main(&sbmView{})
}
