package shader

import (
	"errors"
	"fmt"

	"spinning-cube/internal/gfx"
)

// Names the cube shaders must declare.
const (
	VertexPositionAttrib    = "aVertexPosition"
	VertexColorAttrib       = "aVertexColor"
	ProjectionMatrixUniform = "uProjectionMatrix"
	ModelViewMatrixUniform  = "uModelViewMatrix"
)

// Sources is the GLSL text for one program.
type Sources struct {
	Vertex   string
	Fragment string
}

// Program is a linked shader program and the input slots the renderer needs.
// Unresolved names hold gfx.InvalidLocation.
type Program struct {
	Handle gfx.Program

	VertexPosition gfx.AttribLocation
	VertexColor    gfx.AttribLocation

	ProjectionMatrix gfx.UniformLocation
	ModelViewMatrix  gfx.UniformLocation
}

// Unresolved returns the attribute and uniform names the linked program does not expose.
func (p *Program) Unresolved() []string {
	var out []string
	if !p.VertexPosition.Valid() {
		out = append(out, VertexPositionAttrib)
	}
	if !p.VertexColor.Valid() {
		out = append(out, VertexColorAttrib)
	}
	if !p.ProjectionMatrix.Valid() {
		out = append(out, ProjectionMatrixUniform)
	}
	if !p.ModelViewMatrix.Valid() {
		out = append(out, ModelViewMatrixUniform)
	}
	return out
}

// CompileError carries the compiler diagnostic for one stage.
type CompileError struct {
	Stage gfx.ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the linker diagnostic.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader: link program: " + e.Log
}

// Build compiles both stages, links them and resolves the cube's attribute and uniform locations.
// Both stages are always compiled so every diagnostic is reported in one pass.
// On any failure it releases what it created and returns a nil Program.
func Build(dev gfx.Device, src Sources) (*Program, error) {
	vs, vErr := compile(dev, gfx.VertexStage, src.Vertex)
	fs, fErr := compile(dev, gfx.FragmentStage, src.Fragment)
	if err := errors.Join(vErr, fErr); err != nil {
		if vErr == nil {
			dev.DeleteShader(vs)
		}
		if fErr == nil {
			dev.DeleteShader(fs)
		}
		return nil, err
	}

	prog := dev.CreateProgram()
	dev.AttachShader(prog, vs)
	dev.AttachShader(prog, fs)
	dev.LinkProgram(prog)
	// Linked programs keep their own copy; the shader objects are no longer needed either way.
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)
	if !dev.ProgramLinked(prog) {
		log := dev.ProgramInfoLog(prog)
		dev.DeleteProgram(prog)
		return nil, &LinkError{Log: log}
	}

	return &Program{
		Handle:           prog,
		VertexPosition:   dev.AttribLocation(prog, VertexPositionAttrib),
		VertexColor:      dev.AttribLocation(prog, VertexColorAttrib),
		ProjectionMatrix: dev.UniformLocation(prog, ProjectionMatrixUniform),
		ModelViewMatrix:  dev.UniformLocation(prog, ModelViewMatrixUniform),
	}, nil
}

// compile returns a compiled shader, or releases it and returns a *CompileError.
func compile(dev gfx.Device, stage gfx.ShaderStage, src string) (gfx.Shader, error) {
	s := dev.CreateShader(stage)
	dev.ShaderSource(s, src)
	dev.CompileShader(s)
	if !dev.ShaderCompiled(s) {
		log := dev.ShaderInfoLog(s)
		if log == "" {
			log = "no diagnostic from compiler"
		}
		dev.DeleteShader(s)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return s, nil
}
