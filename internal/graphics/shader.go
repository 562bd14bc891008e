package graphics

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"sb7/internal/gfx"
	"sb7/internal/vmath"
)

// StageKind is the pipeline stage a shader object is compiled for.
type StageKind uint32

const (
	VertexStage         StageKind = gfx.VertexShader
	FragmentStage       StageKind = gfx.FragmentShader
	TessControlStage    StageKind = gfx.TessControlShader
	TessEvaluationStage StageKind = gfx.TessEvaluationShader
	GeometryStage       StageKind = gfx.GeometryShader
	ComputeStage        StageKind = gfx.ComputeShader
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	case TessControlStage:
		return "tess-control"
	case TessEvaluationStage:
		return "tess-evaluation"
	case GeometryStage:
		return "geometry"
	case ComputeStage:
		return "compute"
	}
	return fmt.Sprintf("stage(0x%x)", uint32(k))
}

// CompileError is returned when a stage fails to compile.
type CompileError struct {
	Kind StageKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Kind, e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string { return fmt.Sprintf("failed to link program: %s", e.Log) }

// Stage is a compiled shader object. It is owned by the caller until it is
// deleted or handed to Link with deleteStages set.
type Stage struct {
	ID   uint32
	Kind StageKind
	// Log holds the compiler output when diagnostics were requested.
	Log string

	gl gfx.Context
}

// Delete releases the shader object. Calling it again is a no-op.
func (s *Stage) Delete() {
	if s == nil || s.ID == 0 {
		return
	}
	s.gl.DeleteShader(s.ID)
	s.ID = 0
}

type compileOptions struct {
	diagnostics bool
	out         io.Writer
}

// CompileOption configures Compile.
type CompileOption func(*compileOptions)

// WithDiagnostics keeps the compiler log on the returned stage even when
// compilation succeeds, and logs it as a warning.
func WithDiagnostics() CompileOption {
	return func(o *compileOptions) { o.diagnostics = true }
}

// WithDiagnosticsTo is WithDiagnostics writing the log to w instead of the
// default logger.
func WithDiagnosticsTo(w io.Writer) CompileOption {
	return func(o *compileOptions) {
		o.diagnostics = true
		o.out = w
	}
}

// Compile creates a shader object of the given kind from source and
// compiles it.
func Compile(gl gfx.Context, source string, kind StageKind, opts ...CompileOption) (*Stage, error) {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}

	id := gl.CreateShader(uint32(kind))
	gl.ShaderSource(id, source)
	gl.CompileShader(id)

	compiled := gl.GetShaderiv(id, gfx.CompileStatus) != gfx.False

	var log string
	if (o.diagnostics || !compiled) && gl.GetShaderiv(id, gfx.InfoLogLength) > 0 {
		log = strings.TrimSpace(gl.GetShaderInfoLog(id))
	}

	if !compiled {
		gl.DeleteShader(id)
		if o.diagnostics {
			emit(o.out, fmt.Sprintf("%s shader", kind), log)
		}
		return nil, &CompileError{Kind: kind, Log: log}
	}

	if o.diagnostics && log != "" {
		emit(o.out, fmt.Sprintf("%s shader", kind), log)
	}
	return &Stage{ID: id, Kind: kind, Log: log, gl: gl}, nil
}

func emit(w io.Writer, what, log string) {
	if log == "" {
		return
	}
	if w != nil {
		fmt.Fprintf(w, "%s:\n%s\n", what, log)
		return
	}
	slog.Warn("shader diagnostics", "object", what, "log", log)
}

// Link attaches stages in order and links them into a program. With
// deleteStages set, the stages are detached and deleted after a successful
// link and their handles are zeroed; the caller must not reuse them.
func Link(gl gfx.Context, stages []*Stage, deleteStages bool) (*Program, error) {
	id := gl.CreateProgram()
	for _, s := range stages {
		if s == nil || s.ID == 0 {
			gl.DeleteProgram(id)
			return nil, &LinkError{Log: "stage was released before linking"}
		}
		gl.AttachShader(id, s.ID)
	}
	gl.LinkProgram(id)

	if gl.GetProgramiv(id, gfx.LinkStatus) == gfx.False {
		var log string
		if gl.GetProgramiv(id, gfx.InfoLogLength) > 0 {
			log = strings.TrimSpace(gl.GetProgramInfoLog(id))
		}
		gl.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}

	if deleteStages {
		for _, s := range stages {
			gl.DetachShader(id, s.ID)
			s.Delete()
		}
	}
	return &Program{ID: id, gl: gl, uniforms: make(map[string]int32)}, nil
}

// NewProgram compiles a vertex and fragment shader and links them, deleting
// the stages afterwards.
func NewProgram(gl gfx.Context, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := Compile(gl, vertexSrc, VertexStage)
	if err != nil {
		return nil, err
	}
	fs, err := Compile(gl, fragmentSrc, FragmentStage)
	if err != nil {
		vs.Delete()
		return nil, err
	}
	p, err := Link(gl, []*Stage{vs, fs}, true)
	if err != nil {
		vs.Delete()
		fs.Delete()
		return nil, err
	}
	return p, nil
}

// Program is a linked GL program owned by the demo that linked it.
type Program struct {
	ID uint32

	gl       gfx.Context
	uniforms map[string]int32
}

// Use makes the program current.
func (p *Program) Use() {
	p.gl.UseProgram(p.ID)
}

// Location returns the uniform location for name, caching lookups.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.gl.GetUniformLocation(p.ID, name)
	p.uniforms[name] = loc
	return loc
}

// SetBool sets a boolean uniform
func (p *Program) SetBool(name string, value bool) {
	var intValue int32
	if value {
		intValue = 1
	}
	p.gl.Uniform1i(p.Location(name), intValue)
}

// SetInt sets an integer uniform
func (p *Program) SetInt(name string, value int32) {
	p.gl.Uniform1i(p.Location(name), value)
}

// SetFloat sets a float uniform
func (p *Program) SetFloat(name string, value float32) {
	p.gl.Uniform1f(p.Location(name), value)
}

func (p *Program) SetVec2(name string, v vmath.Vec2f) {
	p.gl.Uniform2f(p.Location(name), v[0], v[1])
}

func (p *Program) SetVec3(name string, v vmath.Vec3f) {
	p.gl.Uniform3f(p.Location(name), v[0], v[1], v[2])
}

func (p *Program) SetVec4(name string, v vmath.Vec4f) {
	p.gl.Uniform4f(p.Location(name), v[0], v[1], v[2], v[3])
}

// SetMat4 uploads m as stored; the column-major layout needs no transpose.
func (p *Program) SetMat4(name string, m vmath.Mat4f) {
	p.gl.UniformMatrix4fv(p.Location(name), false, m.Flat())
}

// Delete releases the program. Calling it again is a no-op.
func (p *Program) Delete() {
	if p == nil || p.ID == 0 {
		return
	}
	p.gl.DeleteProgram(p.ID)
	p.ID = 0
}
