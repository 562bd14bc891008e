package sbm

import (
	"fmt"
	"log/slog"

	"sb7/internal/assets"
	"sb7/internal/gfx"
)

// Object is a mesh uploaded into one buffer and one vertex array. The demo
// that loaded it owns it and releases it with Free.
type Object struct {
	gl         gfx.Context
	vao        uint32
	buffer     uint32
	indexType  uint32
	indexBase  int
	subObjects []SubObject
}

// LoadFile reads a media file and loads it with Load.
func LoadFile(gl gfx.Context, name string) (*Object, error) {
	data, err := assets.ReadFile(name)
	if err != nil {
		return nil, err
	}
	obj, err := Load(gl, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return obj, nil
}

// Load parses data and uploads it. Vertices and indices share a single
// buffer which is also bound as the element array of the vertex array.
func Load(gl gfx.Context, data []byte) (*Object, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	o := &Object{gl: gl, indexType: gfx.None, subObjects: f.SubObjects}

	o.vao = gl.GenVertexArray()
	gl.BindVertexArray(o.vao)

	o.buffer = gl.GenBuffer()
	gl.BindBuffer(gfx.ArrayBuffer, o.buffer)

	if f.Data != nil {
		slog.Debug("sbm: uploading combined data chunk", "bytes", len(f.Data))
		gl.BufferData(gfx.ArrayBuffer, len(f.Data), f.Data, gfx.StaticDraw)
		if f.Indexed() {
			o.indexBase = int(f.Index.Offset)
		}
	} else {
		size := len(f.Vertex.Bytes)
		if f.Indexed() {
			size += len(f.Index.Bytes)
		}
		gl.BufferData(gfx.ArrayBuffer, size, nil, gfx.StaticDraw)
		gl.BufferSubData(gfx.ArrayBuffer, 0, f.Vertex.Bytes)
		if f.Indexed() {
			o.indexBase = len(f.Vertex.Bytes)
			gl.BufferSubData(gfx.ArrayBuffer, o.indexBase, f.Index.Bytes)
		}
	}

	for i, a := range f.Attribs {
		index := uint32(i)
		if a.Integer() {
			gl.VertexAttribIPointer(index, int32(a.Size), a.Type, int32(a.Stride), int(a.Offset))
		} else {
			gl.VertexAttribPointer(index, int32(a.Size), a.Type, a.Normalized(), int32(a.Stride), int(a.Offset))
		}
		gl.EnableVertexAttribArray(index)
	}

	if f.Indexed() {
		gl.BindBuffer(gfx.ElementArrayBuffer, o.buffer)
		o.indexType = f.Index.Type
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gfx.ElementArrayBuffer, 0)

	slog.Debug("loaded sbm object",
		"vao", o.vao,
		"attribs", len(f.Attribs),
		"vertices", f.Vertex.TotalVertices,
		"indexed", f.Indexed(),
		"sub_objects", len(o.subObjects))

	return o, nil
}

// Render draws sub-object 0 once.
func (o *Object) Render() { o.RenderSubObjects(0, 1, 0) }

// RenderSubObject draws sub-object i once.
func (o *Object) RenderSubObject(i int) { o.RenderSubObjects(i, 1, 0) }

// RenderObjects draws instances of sub-object i.
func (o *Object) RenderObjects(i int, instances, baseInstance uint32) {
	o.RenderSubObjects(i, instances, baseInstance)
}

// RenderSubObjects draws instances of sub-object i starting at
// baseInstance. An index out of range draws nothing.
func (o *Object) RenderSubObjects(i int, instances, baseInstance uint32) {
	if i < 0 || i >= len(o.subObjects) {
		return
	}
	s := o.subObjects[i]
	o.gl.BindVertexArray(o.vao)

	if o.indexType != gfx.None {
		offset := o.indexBase + int(s.First)*gfx.IndexSize(o.indexType)
		o.gl.DrawElementsInstancedBaseInstance(gfx.Triangles, int32(s.Count), o.indexType, offset, int32(instances), baseInstance)
		return
	}
	o.gl.DrawArraysInstancedBaseInstance(gfx.Triangles, int32(s.First), int32(s.Count), int32(instances), baseInstance)
}

// RenderAll draws every sub-object in order.
func (o *Object) RenderAll(instances, baseInstance uint32) {
	for i := range o.subObjects {
		o.RenderSubObjects(i, instances, baseInstance)
	}
}

// SubObjectInfo returns the range of sub-object i, or zeros when i is out
// of range.
func (o *Object) SubObjectInfo(i int) (first, count uint32) {
	if i < 0 || i >= len(o.subObjects) {
		return 0, 0
	}
	return o.subObjects[i].First, o.subObjects[i].Count
}

func (o *Object) SubObjectCount() int { return len(o.subObjects) }

func (o *Object) VAO() uint32 { return o.vao }

// Free releases the vertex array and buffer. The object draws nothing
// afterwards.
func (o *Object) Free() {
	if o.vao != 0 {
		o.gl.DeleteVertexArray(o.vao)
	}
	if o.buffer != 0 {
		o.gl.DeleteBuffer(o.buffer)
	}
	o.vao, o.buffer = 0, 0
	o.subObjects = nil
}
