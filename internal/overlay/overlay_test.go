package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"sb7/internal/gfx"
	"sb7/internal/gfx/gfxtest"
	"sb7/internal/graphics"
	"sb7/internal/vmath"
)

func newOverlay(t *testing.T) (*Overlay, *gfxtest.Recorder) {
	t.Helper()
	rec := gfxtest.New()
	o, err := NewWithFace(rec, basicfont.Face7x13)
	require.NoError(t, err)
	rec.Reset()
	return o, rec
}

func TestRenderBatchesQuads(t *testing.T) {
	o, rec := newOverlay(t)

	o.Begin(800, 600)
	o.Line("ab")
	o.Line("fps %d", 60)
	o.Render()

	// basicfont has a blank bitmap for space, so every rune is a quad
	draws := rec.Find("DrawArrays")
	require.Len(t, draws, 1)
	assert.Equal(t, []any{uint32(gfx.Triangles), int32(0), int32(8 * 6)}, draws[0].Args)

	sub := rec.Find("BufferSubData")
	require.Len(t, sub, 1)
	assert.Equal(t, 8*6*4*4, sub[0].Args[2])
	assert.Empty(t, rec.Errors)

	mats := rec.Find("UniformMatrix4fv")
	require.Len(t, mats, 1)
	want := vmath.Ortho(0, 800, 600, 0, -1, 1)
	assert.Equal(t, want.Flat(), mats[0].Args[2])

	// depth test, then blend once the batch is drawn
	assert.Equal(t, 2, rec.Count("Disable"))
	assert.Zero(t, rec.BoundVertexArray())
}

func TestEmptyBatchDrawsNothing(t *testing.T) {
	o, rec := newOverlay(t)
	o.Begin(640, 480)
	o.Render()
	assert.Empty(t, rec.Calls)
}

func TestTextPlacement(t *testing.T) {
	o, _ := newOverlay(t)
	o.Begin(640, 480)
	o.Text(10, 20, "A")
	require.Len(t, o.verts, 6*4)

	// second vertex is the top-left corner: ascent 11 minus bearing 11
	assert.Equal(t, float32(10), o.verts[4])
	assert.Equal(t, float32(20), o.verts[5])
	// first vertex is the bottom-left, 13 pixels lower
	assert.Equal(t, float32(33), o.verts[1])

	o.Begin(640, 480)
	o.Scale = 2
	o.Text(0, 0, "A\nA")
	require.Len(t, o.verts, 2*6*4)
	second := o.verts[6*4:]
	assert.Equal(t, float32(0), second[4])
	assert.Equal(t, float32(26), second[5])
}

func TestLinesAdvance(t *testing.T) {
	o, _ := newOverlay(t)
	o.Begin(640, 480)
	o.Line("x")
	o.Line("y")
	require.Len(t, o.verts, 2*6*4)
	assert.Equal(t, o.Margin, o.verts[4])
	assert.Equal(t, o.Margin, o.verts[5])
	assert.Equal(t, o.Margin+13, o.verts[6*4+5])

	w, h := o.Measure("xy")
	assert.Equal(t, float32(14), w)
	assert.Equal(t, float32(13), h)
}

func TestDelete(t *testing.T) {
	o, rec := newOverlay(t)
	o.Delete()
	o.Delete()
	assert.Equal(t, 1, rec.Count("DeleteProgram"))
	assert.Equal(t, 1, rec.Count("DeleteTexture"))
}

func TestShaderFailure(t *testing.T) {
	rec := gfxtest.New()
	rec.CompileFailures = map[string]string{"sampler2D": "0:3: error: sampler unsupported"}
	_, err := NewWithFace(rec, basicfont.Face7x13)
	var compileErr *graphics.CompileError
	assert.ErrorAs(t, err, &compileErr)
}
