package sbm

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sb7/internal/assets"
	"sb7/internal/gfx"
	"sb7/internal/gfx/gfxtest"
)

var position = AttribDecl{Name: "position", Size: 3, Type: gfx.Float, Stride: 0, Offset: 0}

func triangle() *Builder {
	return &Builder{
		Attribs:       []AttribDecl{position},
		Vertices:      Float32Bytes(-1, -1, 0, 1, -1, 0, 0, 1, 0),
		TotalVertices: 3,
		SubObjects:    []SubObject{{First: 0, Count: 3}},
	}
}

// quads is two indexed quads sharing one vertex buffer, one per sub-object.
func quads(combined bool) *Builder {
	return &Builder{
		Attribs: []AttribDecl{
			position,
			{Name: "color", Size: 4, Type: gfx.UnsignedByte, Flags: AttribNormalized, Stride: 4, Offset: 96},
		},
		Vertices:      make([]byte, 8*12+8*4),
		TotalVertices: 8,
		IndexType:     gfx.UnsignedShort,
		Indices:       Uint16Bytes(0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4),
		SubObjects:    []SubObject{{First: 0, Count: 6}, {First: 6, Count: 6}},
		Comment:       "two quads",
		Combined:      combined,
	}
}

func TestParseTriangle(t *testing.T) {
	f, err := Parse(triangle().Encode())
	require.NoError(t, err)

	require.NotNil(t, f.Vertex)
	assert.Equal(t, uint32(36), f.Vertex.Size)
	assert.Equal(t, uint32(3), f.Vertex.TotalVertices)
	assert.Equal(t, Float32Bytes(-1, -1, 0, 1, -1, 0, 0, 1, 0), f.Vertex.Bytes)
	assert.False(t, f.Indexed())
	assert.Nil(t, f.Data)

	require.Len(t, f.Attribs, 1)
	assert.Equal(t, position, f.Attribs[0])
	assert.Equal(t, []SubObject{{0, 3}}, f.SubObjects)
}

func TestRenderTriangle(t *testing.T) {
	rec := gfxtest.New()
	obj, err := Load(rec, triangle().Encode())
	require.NoError(t, err)

	rec.Reset()
	obj.Render()

	draws := rec.Find("DrawArraysInstancedBaseInstance")
	require.Len(t, draws, 1)
	assert.Equal(t, []any{uint32(gfx.Triangles), int32(0), int32(3), int32(1), uint32(0)}, draws[0].Args)
	assert.Equal(t, obj.VAO(), rec.BoundVertexArray())
	assert.Zero(t, rec.Count("DrawElementsInstancedBaseInstance"))
}

func TestLoadUploadsVertexLayout(t *testing.T) {
	rec := gfxtest.New()
	obj, err := Load(rec, quads(false).Encode())
	require.NoError(t, err)

	bufs := rec.Find("GenBuffer")
	require.Len(t, bufs, 1)
	buf := bufs[0].Args[0].(uint32)

	// vertices at 0, indices right after them
	contents := rec.Buffer(buf)
	require.Len(t, contents, 8*12+8*4+12*2)
	assert.Equal(t, Uint16Bytes(0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4), contents[128:])
	assert.Empty(t, rec.Errors)

	attribs := rec.Find("VertexAttribPointer")
	require.Len(t, attribs, 2)
	assert.Equal(t, []any{uint32(0), int32(3), uint32(gfx.Float), false, int32(0), 0}, attribs[0].Args)
	assert.Equal(t, []any{uint32(1), int32(4), uint32(gfx.UnsignedByte), true, int32(4), 96}, attribs[1].Args)
	assert.Equal(t, 2, rec.Count("EnableVertexAttribArray"))

	// the element array binding is captured by the vertex array
	binds := rec.Find("BindBuffer")
	var element []uint32
	for _, c := range binds {
		if c.Args[0] == uint32(gfx.ElementArrayBuffer) {
			element = append(element, c.Args[1].(uint32))
		}
	}
	assert.Equal(t, []uint32{buf, 0}, element)
	assert.Zero(t, rec.BoundVertexArray())

	assert.Equal(t, 2, obj.SubObjectCount())
}

func TestRenderIndexedSubObjects(t *testing.T) {
	for _, combined := range []bool{false, true} {
		rec := gfxtest.New()
		obj, err := Load(rec, quads(combined).Encode())
		require.NoError(t, err, "combined=%v", combined)
		rec.Reset()

		obj.RenderSubObject(1)
		obj.RenderObjects(0, 4, 2)

		draws := rec.Find("DrawElementsInstancedBaseInstance")
		require.Len(t, draws, 2)
		// second quad starts six u16 indices into the index data
		assert.Equal(t, []any{uint32(gfx.Triangles), int32(6), uint32(gfx.UnsignedShort), 128 + 12, int32(1), uint32(0)}, draws[0].Args)
		assert.Equal(t, []any{uint32(gfx.Triangles), int32(6), uint32(gfx.UnsignedShort), 128, int32(4), uint32(2)}, draws[1].Args)

		rec.Reset()
		obj.RenderAll(1, 0)
		assert.Equal(t, 2, rec.Count("DrawElementsInstancedBaseInstance"))

		// out of range draws nothing
		rec.Reset()
		obj.RenderSubObject(5)
		assert.Empty(t, rec.Calls)
	}
}

func TestCombinedDataChunk(t *testing.T) {
	b := quads(true)
	f, err := Parse(b.Encode())
	require.NoError(t, err)
	require.NotNil(t, f.Data)
	assert.Len(t, f.Data, len(b.Vertices)+len(b.Indices))
	assert.Equal(t, []string{"two quads"}, f.Comments)
	assert.Equal(t, b.Indices, f.Index.Bytes)

	rec := gfxtest.New()
	_, err = Load(rec, b.Encode())
	require.NoError(t, err)
	assert.Zero(t, rec.Count("BufferSubData"))
	data := rec.Find("BufferData")
	require.Len(t, data, 1)
	assert.Equal(t, len(f.Data), data[0].Args[1])
}

func TestSubObjectInfo(t *testing.T) {
	subs := []SubObject{{0, 3}, {3, 6}, {9, 3}, {12, 0}}
	b := triangle()
	b.Vertices = make([]byte, 12*12)
	b.TotalVertices = 12
	b.SubObjects = subs

	obj, err := Load(gfxtest.New(), b.Encode())
	require.NoError(t, err)
	require.Equal(t, len(subs), obj.SubObjectCount())
	for i, s := range subs {
		first, count := obj.SubObjectInfo(i)
		assert.Equal(t, s.First, first)
		assert.Equal(t, s.Count, count)
	}

	first, count := obj.SubObjectInfo(len(subs))
	assert.Zero(t, first)
	assert.Zero(t, count)
	first, count = obj.SubObjectInfo(-1)
	assert.Zero(t, first+count)
}

func TestSynthesizedSubObject(t *testing.T) {
	b := quads(false)
	b.SubObjects = nil
	f, err := Parse(b.Encode())
	require.NoError(t, err)
	assert.Equal(t, []SubObject{{0, 12}}, f.SubObjects)

	b = triangle()
	b.SubObjects = nil
	f, err = Parse(b.Encode())
	require.NoError(t, err)
	assert.Equal(t, []SubObject{{0, 3}}, f.SubObjects)
}

func TestIntegerAttribute(t *testing.T) {
	b := triangle()
	b.Attribs = append(b.Attribs, AttribDecl{Name: "id", Size: 1, Type: gfx.UnsignedInt, Flags: AttribInteger, Offset: 36})
	b.Vertices = make([]byte, 36+12)

	rec := gfxtest.New()
	_, err := Load(rec, b.Encode())
	require.NoError(t, err)
	ints := rec.Find("VertexAttribIPointer")
	require.Len(t, ints, 1)
	assert.Equal(t, []any{uint32(1), int32(1), uint32(gfx.UnsignedInt), int32(0), 36}, ints[0].Args)
}

func TestFree(t *testing.T) {
	rec := gfxtest.New()
	obj, err := Load(rec, triangle().Encode())
	require.NoError(t, err)

	obj.Free()
	obj.Free()
	assert.Equal(t, 1, rec.Count("DeleteVertexArray"))
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))
	assert.Zero(t, obj.SubObjectCount())

	rec.Reset()
	obj.Render()
	assert.Empty(t, rec.Calls)
}

func TestParseErrors(t *testing.T) {
	good := quads(false).Encode()
	le := binary.LittleEndian

	mutate := func(fn func([]byte) []byte) []byte {
		return fn(append([]byte(nil), good...))
	}

	// offset of the first chunk after the header
	const first = headerSize

	cases := map[string][]byte{
		"short":       good[:10],
		"magic":       mutate(func(b []byte) []byte { copy(b, "SM6M"); return b }),
		"header size": mutate(func(b []byte) []byte { le.PutUint32(b[4:], 8); return b }),
		"chunk count": mutate(func(b []byte) []byte { le.PutUint32(b[8:], 50); return b }),
		"chunk size":  mutate(func(b []byte) []byte { le.PutUint32(b[first+4:], 1<<30); return b }),
		"tiny chunk":  mutate(func(b []byte) []byte { le.PutUint32(b[first+4:], 4); return b }),
		"attribs": mutate(func(b []byte) []byte {
			le.PutUint32(b[first+8:], 1000)
			return b
		}),
		"truncated": good[:len(good)-4],
	}
	for name, data := range cases {
		_, err := Parse(data)
		assert.ErrorIs(t, err, assets.ErrFormat, name)
	}
}

func TestParseRejectsBadRanges(t *testing.T) {
	b := quads(false)
	b.SubObjects = []SubObject{{First: 10, Count: 6}}
	_, err := Parse(b.Encode())
	assert.ErrorIs(t, err, assets.ErrFormat)

	b = quads(false)
	b.IndexType = gfx.Float
	_, err = Parse(b.Encode())
	assert.ErrorIs(t, err, assets.ErrFormat)

	b = triangle()
	b.TotalVertices = 2
	_, err = Parse(b.Encode())
	assert.ErrorIs(t, err, assets.ErrFormat)

	rec := gfxtest.New()
	_, err = Load(rec, b.Encode())
	assert.ErrorIs(t, err, assets.ErrFormat)
	assert.Empty(t, rec.Calls)
}

func TestParseRejectsVertexCountBeyondData(t *testing.T) {
	b := triangle()
	b.TotalVertices = 0xFFFFFFFF
	b.SubObjects = nil

	rec := gfxtest.New()
	_, err := Load(rec, b.Encode())
	assert.ErrorIs(t, err, assets.ErrFormat)
	assert.Empty(t, rec.Calls)

	// 36 bytes of packed vec3 hold exactly three vertices
	b = triangle()
	b.TotalVertices = 4
	b.SubObjects = nil
	_, err = Parse(b.Encode())
	assert.ErrorIs(t, err, assets.ErrFormat)

	// an interleaved attribute must fit for the last vertex too
	b = quads(false)
	b.Attribs[1].Offset = 100
	_, err = Parse(b.Encode())
	assert.ErrorIs(t, err, assets.ErrFormat)

	b = triangle()
	b.Attribs = nil
	b.TotalVertices = 37
	_, err = Parse(b.Encode())
	assert.ErrorIs(t, err, assets.ErrFormat)
}

func TestParseRejectsHugeSubObject(t *testing.T) {
	b := triangle()
	b.SubObjects = []SubObject{{First: 0xFFFFFFF0, Count: 0x20}}
	_, err := Parse(b.Encode())
	assert.ErrorIs(t, err, assets.ErrFormat)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(gfxtest.New(), filepath.Join(t.TempDir(), "torus.sbm"))
	var ioErr *assets.IOError
	assert.ErrorAs(t, err, &ioErr)
}
