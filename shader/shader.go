// Package shader manages OpenGL shader programs: compiling vertex and
// fragment stages, linking them and setting uniforms through a cached
// location lookup.
//
// All functions require a current OpenGL context on the calling thread.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gl3d"
)

// CompileError reports a failed shader stage compilation.
type CompileError struct {
	// Stage is "vertex" or "fragment".
	Stage string
	// Log is the driver's info log.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gl3d: compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a failed program link.
type LinkError struct {
	// Log is the driver's info log.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gl3d: link shader program: %s", e.Log)
}

// Program is a linked OpenGL shader program with a uniform location
// cache.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// New compiles the vertex and fragment sources and links them into a
// program. The compiled stages are deleted after a successful link.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := compile(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compile(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(prog)
		gl.DeleteProgram(prog)
		return nil, &LinkError{Log: log}
	}

	gl3d.Logger().Debug("shader program linked", "program", prog)
	return &Program{id: prog, uniforms: make(map[string]int32)}, nil
}

// Default returns a program for the engine's interleaved position+color
// vertex stream with a single model-view-projection uniform.
func Default() (*Program, error) {
	return New(DefaultVertexSource, DefaultFragmentSource)
}

// ID returns the OpenGL program object name.
func (p *Program) ID() uint32 { return p.id }

// Use makes the program current.
func (p *Program) Use() { gl.UseProgram(p.id) }

// Unuse restores the fixed-function zero program.
func (p *Program) Unuse() { gl.UseProgram(0) }

// Release deletes the program object. The Program must not be used
// afterwards.
func (p *Program) Release() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// SetMat4 sets a 4x4 matrix uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.uniform(name), 1, false, &m[0])
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.uniform(name), v.X(), v.Y(), v.Z())
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.uniform(name), v)
}

// SetInt sets an int uniform (also used for sampler bindings).
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.uniform(name), v)
}

// uniform returns the cached location for name, querying the driver on
// first use. Unknown names resolve to -1, which OpenGL ignores.
func (p *Program) uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc == -1 {
		gl3d.Logger().Warn("unknown uniform", "name", name, "program", p.id)
	}
	p.uniforms[name] = loc
	return loc
}

func compile(src string, kind uint32, stage string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, &CompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return sh, nil
}

func programLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen)+1)
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
