// Package gfxtest provides a fake gfx.Context that records every call. It
// hands out object names, keeps buffer contents, tracks shader and program
// status, and can be told to fail compiles, so code written against gfx can
// be tested without a window or driver.
package gfxtest

import (
	"fmt"
	"strings"

	"sb7/internal/gfx"
)

// Call is one recorded entry point invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string { return fmt.Sprintf("%s%v", c.Name, c.Args) }

type shader struct {
	kind     uint32
	source   string
	compiled bool
	log      string
	deleted  bool
}

type program struct {
	attached []uint32
	linked   bool
	log      string
	deleted  bool
}

// Recorder implements gfx.Context.
type Recorder struct {
	Calls []Call

	// CompileFailures fails any shader whose source contains a key, with the
	// value as its info log.
	CompileFailures map[string]string
	// CompileWarnings compiles successfully but leaves the value as the info
	// log of any shader whose source contains the key.
	CompileWarnings map[string]string
	// Errors is returned by GetError, one entry per call.
	Errors []uint32
	// DebugOutput controls what EnableDebugOutput reports.
	DebugOutput bool
	// Debug is the installed debug callback, if any.
	Debug func(gfx.DebugMessage)

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	buffers  map[uint32][]byte
	bound    map[uint32]uint32
	uniforms map[string]int32
}

var _ gfx.Context = (*Recorder)(nil)

func New() *Recorder {
	return &Recorder{
		shaders:  make(map[uint32]*shader),
		programs: make(map[uint32]*program),
		buffers:  make(map[uint32][]byte),
		bound:    make(map[uint32]uint32),
		uniforms: make(map[string]int32),
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) name() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) fail(code uint32) { r.Errors = append(r.Errors, code) }

// Find returns the recorded calls to the named entry point, in order.
func (r *Recorder) Find(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Count(name string) int { return len(r.Find(name)) }

// Reset forgets recorded calls but keeps object state.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Buffer returns the contents of a buffer object.
func (r *Recorder) Buffer(buf uint32) []byte { return r.buffers[buf] }

// Bound returns the object bound to target.
func (r *Recorder) Bound(target uint32) uint32 { return r.bound[target] }

// ShaderDeleted reports whether DeleteShader was called for s.
func (r *Recorder) ShaderDeleted(s uint32) bool {
	sh, ok := r.shaders[s]
	return ok && sh.deleted
}

func (r *Recorder) ProgramDeleted(p uint32) bool {
	pr, ok := r.programs[p]
	return ok && pr.deleted
}

func (r *Recorder) CreateShader(kind uint32) uint32 {
	s := r.name()
	r.shaders[s] = &shader{kind: kind}
	r.record("CreateShader", kind)
	return s
}

func (r *Recorder) ShaderSource(s uint32, source string) {
	if sh, ok := r.shaders[s]; ok {
		sh.source = source
	} else {
		r.fail(gfx.InvalidValue)
	}
	r.record("ShaderSource", s, source)
}

func (r *Recorder) CompileShader(s uint32) {
	r.record("CompileShader", s)
	sh, ok := r.shaders[s]
	if !ok {
		r.fail(gfx.InvalidValue)
		return
	}
	sh.compiled, sh.log = true, ""
	for needle, log := range r.CompileFailures {
		if strings.Contains(sh.source, needle) {
			sh.compiled, sh.log = false, log
			return
		}
	}
	for needle, log := range r.CompileWarnings {
		if strings.Contains(sh.source, needle) {
			sh.log = log
		}
	}
}

func (r *Recorder) GetShaderiv(s, pname uint32) int32 {
	sh, ok := r.shaders[s]
	if !ok {
		r.fail(gfx.InvalidValue)
		return 0
	}
	switch pname {
	case gfx.CompileStatus:
		if sh.compiled {
			return gfx.True
		}
		return gfx.False
	case gfx.InfoLogLength:
		if sh.log == "" {
			return 0
		}
		return int32(len(sh.log) + 1)
	case gfx.ShaderType:
		return int32(sh.kind)
	}
	r.fail(gfx.InvalidEnum)
	return 0
}

func (r *Recorder) GetShaderInfoLog(s uint32) string {
	if sh, ok := r.shaders[s]; ok {
		return sh.log
	}
	return ""
}

func (r *Recorder) DeleteShader(s uint32) {
	if sh, ok := r.shaders[s]; ok {
		sh.deleted = true
	}
	r.record("DeleteShader", s)
}

func (r *Recorder) CreateProgram() uint32 {
	p := r.name()
	r.programs[p] = &program{}
	r.record("CreateProgram")
	return p
}

func (r *Recorder) AttachShader(p, s uint32) {
	if pr, ok := r.programs[p]; ok {
		pr.attached = append(pr.attached, s)
	} else {
		r.fail(gfx.InvalidValue)
	}
	r.record("AttachShader", p, s)
}

func (r *Recorder) DetachShader(p, s uint32) {
	if pr, ok := r.programs[p]; ok {
		for i, a := range pr.attached {
			if a == s {
				pr.attached = append(pr.attached[:i], pr.attached[i+1:]...)
				break
			}
		}
	}
	r.record("DetachShader", p, s)
}

func (r *Recorder) LinkProgram(p uint32) {
	r.record("LinkProgram", p)
	pr, ok := r.programs[p]
	if !ok {
		r.fail(gfx.InvalidValue)
		return
	}
	pr.linked, pr.log = true, ""
	if len(pr.attached) == 0 {
		pr.linked, pr.log = false, "error: no shaders attached"
		return
	}
	for _, s := range pr.attached {
		sh := r.shaders[s]
		if sh == nil || !sh.compiled {
			pr.linked = false
			pr.log = fmt.Sprintf("error: shader %d has not been successfully compiled", s)
			return
		}
	}
}

func (r *Recorder) GetProgramiv(p, pname uint32) int32 {
	pr, ok := r.programs[p]
	if !ok {
		r.fail(gfx.InvalidValue)
		return 0
	}
	switch pname {
	case gfx.LinkStatus:
		if pr.linked {
			return gfx.True
		}
		return gfx.False
	case gfx.InfoLogLength:
		if pr.log == "" {
			return 0
		}
		return int32(len(pr.log) + 1)
	}
	r.fail(gfx.InvalidEnum)
	return 0
}

func (r *Recorder) GetProgramInfoLog(p uint32) string {
	if pr, ok := r.programs[p]; ok {
		return pr.log
	}
	return ""
}

func (r *Recorder) DeleteProgram(p uint32) {
	if pr, ok := r.programs[p]; ok {
		pr.deleted = true
	}
	r.record("DeleteProgram", p)
}

func (r *Recorder) UseProgram(p uint32) { r.record("UseProgram", p) }

// GetUniformLocation hands out a stable location per (program, name).
func (r *Recorder) GetUniformLocation(p uint32, name string) int32 {
	r.record("GetUniformLocation", p, name)
	key := fmt.Sprintf("%d/%s", p, name)
	loc, ok := r.uniforms[key]
	if !ok {
		loc = int32(len(r.uniforms))
		r.uniforms[key] = loc
	}
	return loc
}

func (r *Recorder) Uniform1i(location, v int32)           { r.record("Uniform1i", location, v) }
func (r *Recorder) Uniform1f(location int32, v float32)   { r.record("Uniform1f", location, v) }
func (r *Recorder) Uniform2f(location int32, x, y float32) { r.record("Uniform2f", location, x, y) }

func (r *Recorder) Uniform3f(location int32, x, y, z float32) {
	r.record("Uniform3f", location, x, y, z)
}

func (r *Recorder) Uniform4f(location int32, x, y, z, w float32) {
	r.record("Uniform4f", location, x, y, z, w)
}

func (r *Recorder) UniformMatrix4fv(location int32, transpose bool, value []float32) {
	r.record("UniformMatrix4fv", location, transpose, append([]float32(nil), value...))
}

func (r *Recorder) GenTexture() uint32 {
	t := r.name()
	r.record("GenTexture", t)
	return t
}

func (r *Recorder) DeleteTexture(texture uint32) { r.record("DeleteTexture", texture) }

func (r *Recorder) BindTexture(target, texture uint32) {
	r.bound[target] = texture
	r.record("BindTexture", target, texture)
}

func (r *Recorder) ActiveTexture(unit uint32) { r.record("ActiveTexture", unit) }

func (r *Recorder) TexParameteri(target, pname uint32, param int32) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) PixelStorei(pname uint32, param int32) { r.record("PixelStorei", pname, param) }

func (r *Recorder) TexStorage1D(target uint32, levels int32, internalFormat uint32, width int32) {
	r.record("TexStorage1D", target, levels, internalFormat, width)
}

func (r *Recorder) TexStorage2D(target uint32, levels int32, internalFormat uint32, width, height int32) {
	r.record("TexStorage2D", target, levels, internalFormat, width, height)
}

func (r *Recorder) TexStorage3D(target uint32, levels int32, internalFormat uint32, width, height, depth int32) {
	r.record("TexStorage3D", target, levels, internalFormat, width, height, depth)
}

// The TexSubImage calls record the pixel byte count rather than the bytes.

func (r *Recorder) TexSubImage1D(target uint32, level, xoffset, width int32, format, xtype uint32, pixels []byte) {
	r.record("TexSubImage1D", target, level, xoffset, width, format, xtype, len(pixels))
}

func (r *Recorder) TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels []byte) {
	r.record("TexSubImage2D", target, level, xoffset, yoffset, width, height, format, xtype, len(pixels))
}

func (r *Recorder) TexSubImage3D(target uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, xtype uint32, pixels []byte) {
	r.record("TexSubImage3D", target, level, xoffset, yoffset, zoffset, width, height, depth, format, xtype, len(pixels))
}

func (r *Recorder) CompressedTexImage2D(target uint32, level int32, internalFormat uint32, width, height int32, data []byte) {
	r.record("CompressedTexImage2D", target, level, internalFormat, width, height, len(data))
}

func (r *Recorder) GenerateMipmap(target uint32) { r.record("GenerateMipmap", target) }

func (r *Recorder) GenBuffer() uint32 {
	b := r.name()
	r.record("GenBuffer", b)
	return b
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	delete(r.buffers, buffer)
	r.record("DeleteBuffer", buffer)
}

func (r *Recorder) BindBuffer(target, buffer uint32) {
	r.bound[target] = buffer
	r.record("BindBuffer", target, buffer)
}

func (r *Recorder) BufferData(target uint32, size int, data []byte, usage uint32) {
	r.record("BufferData", target, size, len(data), usage)
	buf := r.bound[target]
	if buf == 0 || size < 0 || len(data) > size {
		r.fail(gfx.InvalidValue)
		return
	}
	store := make([]byte, size)
	copy(store, data)
	r.buffers[buf] = store
}

func (r *Recorder) BufferSubData(target uint32, offset int, data []byte) {
	r.record("BufferSubData", target, offset, len(data))
	store, ok := r.buffers[r.bound[target]]
	if !ok || offset < 0 || offset+len(data) > len(store) {
		r.fail(gfx.InvalidValue)
		return
	}
	copy(store[offset:], data)
}

func (r *Recorder) GenVertexArray() uint32 {
	v := r.name()
	r.record("GenVertexArray", v)
	return v
}

func (r *Recorder) DeleteVertexArray(vao uint32) { r.record("DeleteVertexArray", vao) }

func (r *Recorder) BindVertexArray(vao uint32) {
	r.bound[0] = vao
	r.record("BindVertexArray", vao)
}

// BoundVertexArray returns the vertex array last bound.
func (r *Recorder) BoundVertexArray() uint32 { return r.bound[0] }

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	r.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (r *Recorder) VertexAttribIPointer(index uint32, size int32, xtype uint32, stride int32, offset int) {
	r.record("VertexAttribIPointer", index, size, xtype, stride, offset)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) { r.record("EnableVertexAttribArray", index) }

func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawArraysInstancedBaseInstance(mode uint32, first, count, instances int32, baseInstance uint32) {
	r.record("DrawArraysInstancedBaseInstance", mode, first, count, instances, baseInstance)
}

func (r *Recorder) DrawElementsInstancedBaseInstance(mode uint32, count int32, xtype uint32, offset int, instances int32, baseInstance uint32) {
	r.record("DrawElementsInstancedBaseInstance", mode, count, xtype, offset, instances, baseInstance)
}

func (r *Recorder) Viewport(x, y, width, height int32) { r.record("Viewport", x, y, width, height) }

func (r *Recorder) ClearBufferfv(buffer uint32, drawBuffer int32, value []float32) {
	r.record("ClearBufferfv", buffer, drawBuffer, append([]float32(nil), value...))
}

func (r *Recorder) Enable(capability uint32)  { r.record("Enable", capability) }
func (r *Recorder) Disable(capability uint32) { r.record("Disable", capability) }
func (r *Recorder) BlendFunc(src, dst uint32) { r.record("BlendFunc", src, dst) }
func (r *Recorder) DepthFunc(fn uint32)       { r.record("DepthFunc", fn) }

// GetError pops the oldest queued error.
func (r *Recorder) GetError() uint32 {
	if len(r.Errors) == 0 {
		return gfx.NoError
	}
	code := r.Errors[0]
	r.Errors = r.Errors[1:]
	return code
}

func (r *Recorder) EnableDebugOutput(fn func(gfx.DebugMessage)) bool {
	r.record("EnableDebugOutput")
	if !r.DebugOutput {
		return false
	}
	r.Debug = fn
	return true
}
