// Package gfx describes the subset of OpenGL entry points the framework
// uses. The demos and loaders talk to a Context instead of the cgo bindings
// directly so that they can run against a recording fake in tests; glcore
// provides the real implementation.
//
// All methods operate on the context current on the calling thread, and
// object names are plain GL names (0 means "none").
package gfx

import "unsafe"

// Context is the graphics API as seen by the core. Byte slices passed as
// pixel or buffer data may be nil, which uploads nothing (or allocates
// without initializing, for BufferData).
type Context interface {
	// Shaders and programs
	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, transpose bool, value []float32)

	// Textures
	GenTexture() uint32
	DeleteTexture(texture uint32)
	BindTexture(target, texture uint32)
	ActiveTexture(unit uint32)
	TexParameteri(target, pname uint32, param int32)
	PixelStorei(pname uint32, param int32)
	TexStorage1D(target uint32, levels int32, internalFormat uint32, width int32)
	TexStorage2D(target uint32, levels int32, internalFormat uint32, width, height int32)
	TexStorage3D(target uint32, levels int32, internalFormat uint32, width, height, depth int32)
	TexSubImage1D(target uint32, level, xoffset, width int32, format, xtype uint32, pixels []byte)
	TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels []byte)
	TexSubImage3D(target uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, xtype uint32, pixels []byte)
	CompressedTexImage2D(target uint32, level int32, internalFormat uint32, width, height int32, data []byte)
	GenerateMipmap(target uint32)

	// Buffers and vertex arrays
	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data []byte, usage uint32)
	BufferSubData(target uint32, offset int, data []byte)
	GenVertexArray() uint32
	DeleteVertexArray(vao uint32)
	BindVertexArray(vao uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	VertexAttribIPointer(index uint32, size int32, xtype uint32, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	// Drawing
	DrawArrays(mode uint32, first, count int32)
	DrawArraysInstancedBaseInstance(mode uint32, first, count, instances int32, baseInstance uint32)
	DrawElementsInstancedBaseInstance(mode uint32, count int32, xtype uint32, offset int, instances int32, baseInstance uint32)

	// Fixed-function state
	Viewport(x, y, width, height int32)
	ClearBufferfv(buffer uint32, drawBuffer int32, value []float32)
	Enable(capability uint32)
	Disable(capability uint32)
	BlendFunc(src, dst uint32)
	DepthFunc(fn uint32)

	// Diagnostics
	GetError() uint32
	// EnableDebugOutput installs fn as the debug message callback. It
	// reports false when the context was not created with debug support.
	EnableDebugOutput(fn func(DebugMessage)) bool
}

// DebugMessage is one message delivered through the GL debug callback.
type DebugMessage struct {
	Source   uint32
	Type     uint32
	ID       uint32
	Severity uint32
	Message  string
}

// SeverityName returns a short lowercase name for a debug severity.
func SeverityName(severity uint32) string {
	switch severity {
	case DebugSeverityHigh:
		return "high"
	case DebugSeverityMedium:
		return "medium"
	case DebugSeverityLow:
		return "low"
	case DebugSeverityNotification:
		return "notification"
	}
	return "unknown"
}

// ErrorName returns the GL enum name of an error code from GetError.
func ErrorName(code uint32) string {
	switch code {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return "GL_UNKNOWN_ERROR"
}

// IndexSize returns the byte size of one element of an index type, or 0 for
// anything that is not UnsignedByte, UnsignedShort or UnsignedInt.
func IndexSize(xtype uint32) int {
	switch xtype {
	case UnsignedByte:
		return 1
	case UnsignedShort:
		return 2
	case UnsignedInt:
		return 4
	}
	return 0
}

// ScalarSize returns the byte size of a vertex component type, or 0 for
// types it does not know.
func ScalarSize(xtype uint32) int {
	switch xtype {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort, HalfFloat:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	case Double:
		return 8
	}
	return 0
}

// Float32Bytes views v as its in-memory bytes without copying, for handing
// vertex data to BufferData.
func Float32Bytes(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}
