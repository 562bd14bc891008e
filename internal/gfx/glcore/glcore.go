// Package glcore implements gfx.Context on the go-gl core profile bindings.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"

	"sb7/internal/gfx"
)

// Context forwards every call to the bindings for the context current on
// the calling thread.
type Context struct {
	debug func(gfx.DebugMessage)
}

var _ gfx.Context = (*Context)(nil)

// New loads the GL entry points. A context must already be current.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("could not load OpenGL entry points: %w", err)
	}
	return &Context{}, nil
}

// Version returns the driver's GL_VERSION and GL_RENDERER strings.
func (c *Context) Version() (version, renderer string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER))
}

func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return gl.Ptr(b)
}

func (c *Context) CreateShader(kind uint32) uint32 { return gl.CreateShader(kind) }

func (c *Context) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (c *Context) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (c *Context) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (c *Context) CreateProgram() uint32                { return gl.CreateProgram() }
func (c *Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (c *Context) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (c *Context) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (c *Context) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
func (c *Context) UseProgram(program uint32)    { gl.UseProgram(program) }

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) Uniform1i(location, v int32)                { gl.Uniform1i(location, v) }
func (c *Context) Uniform1f(location int32, v float32)        { gl.Uniform1f(location, v) }
func (c *Context) Uniform2f(location int32, x, y float32)     { gl.Uniform2f(location, x, y) }
func (c *Context) Uniform3f(location int32, x, y, z float32)  { gl.Uniform3f(location, x, y, z) }
func (c *Context) Uniform4f(location int32, x, y, z, w float32) { gl.Uniform4f(location, x, y, z, w) }

func (c *Context) UniformMatrix4fv(location int32, transpose bool, value []float32) {
	if len(value) < 16 {
		return
	}
	gl.UniformMatrix4fv(location, int32(len(value)/16), transpose, &value[0])
}

func (c *Context) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (c *Context) DeleteTexture(texture uint32)      { gl.DeleteTextures(1, &texture) }
func (c *Context) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }
func (c *Context) ActiveTexture(unit uint32)          { gl.ActiveTexture(unit) }

func (c *Context) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (c *Context) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (c *Context) TexStorage1D(target uint32, levels int32, internalFormat uint32, width int32) {
	gl.TexStorage1D(target, levels, internalFormat, width)
}

func (c *Context) TexStorage2D(target uint32, levels int32, internalFormat uint32, width, height int32) {
	gl.TexStorage2D(target, levels, internalFormat, width, height)
}

func (c *Context) TexStorage3D(target uint32, levels int32, internalFormat uint32, width, height, depth int32) {
	gl.TexStorage3D(target, levels, internalFormat, width, height, depth)
}

func (c *Context) TexSubImage1D(target uint32, level, xoffset, width int32, format, xtype uint32, pixels []byte) {
	gl.TexSubImage1D(target, level, xoffset, width, format, xtype, ptr(pixels))
}

func (c *Context) TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels []byte) {
	gl.TexSubImage2D(target, level, xoffset, yoffset, width, height, format, xtype, ptr(pixels))
}

func (c *Context) TexSubImage3D(target uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, xtype uint32, pixels []byte) {
	gl.TexSubImage3D(target, level, xoffset, yoffset, zoffset, width, height, depth, format, xtype, ptr(pixels))
}

func (c *Context) CompressedTexImage2D(target uint32, level int32, internalFormat uint32, width, height int32, data []byte) {
	gl.CompressedTexImage2D(target, level, internalFormat, width, height, 0, int32(len(data)), ptr(data))
}

func (c *Context) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (c *Context) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (c *Context) DeleteBuffer(buffer uint32)        { gl.DeleteBuffers(1, &buffer) }
func (c *Context) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (c *Context) BufferData(target uint32, size int, data []byte, usage uint32) {
	gl.BufferData(target, size, ptr(data), usage)
}

func (c *Context) BufferSubData(target uint32, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(target, offset, len(data), ptr(data))
}

func (c *Context) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (c *Context) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }
func (c *Context) BindVertexArray(vao uint32)   { gl.BindVertexArray(vao) }

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (c *Context) VertexAttribIPointer(index uint32, size int32, xtype uint32, stride int32, offset int) {
	gl.VertexAttribIPointer(index, size, xtype, stride, gl.PtrOffset(offset))
}

func (c *Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (c *Context) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (c *Context) DrawArraysInstancedBaseInstance(mode uint32, first, count, instances int32, baseInstance uint32) {
	gl.DrawArraysInstancedBaseInstance(mode, first, count, instances, baseInstance)
}

func (c *Context) DrawElementsInstancedBaseInstance(mode uint32, count int32, xtype uint32, offset int, instances int32, baseInstance uint32) {
	gl.DrawElementsInstancedBaseInstance(mode, count, xtype, gl.PtrOffset(offset), instances, baseInstance)
}

func (c *Context) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (c *Context) ClearBufferfv(buffer uint32, drawBuffer int32, value []float32) {
	if len(value) == 0 {
		return
	}
	gl.ClearBufferfv(buffer, drawBuffer, &value[0])
}

func (c *Context) Enable(capability uint32)  { gl.Enable(capability) }
func (c *Context) Disable(capability uint32) { gl.Disable(capability) }
func (c *Context) BlendFunc(src, dst uint32) { gl.BlendFunc(src, dst) }
func (c *Context) DepthFunc(fn uint32)       { gl.DepthFunc(fn) }

func (c *Context) GetError() uint32 { return gl.GetError() }

func (c *Context) EnableDebugOutput(fn func(gfx.DebugMessage)) bool {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	if flags&gl.CONTEXT_FLAG_DEBUG_BIT == 0 {
		return false
	}

	// the callback must stay reachable for as long as the context lives
	c.debug = fn
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		c.debug(gfx.DebugMessage{Source: source, Type: gltype, ID: id, Severity: severity, Message: message})
	}, nil)
	return true
}
