//go:build !js

// Package gldevice implements gfx.Device on the current OpenGL 3.3 core context.
package gldevice

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"spinning-cube/internal/gfx"
)

// Device issues GL calls on the context current on the calling thread.
// Core profile needs a vertex array object for attribute state; Device owns one
// and rebinds it before touching attributes, since window toolkits drawing on the
// same context may bind their own.
type Device struct {
	vao uint32
}

// New loads GL function pointers for the current context and creates the device's vertex array.
// It must be called after the host made a context current.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gldevice: %w: %v", gfx.ErrUnsupported, err)
	}
	d := &Device{}
	gl.GenVertexArrays(1, &d.vao)
	if d.vao == 0 {
		return nil, fmt.Errorf("gldevice: %w: no vertex array object", gfx.ErrUnsupported)
	}
	return d, nil
}

// Version returns the GL_VERSION and GL_RENDERER strings for logging.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION)) + " (" + gl.GoStr(gl.GetString(gl.RENDERER)) + ")"
}

func (d *Device) bindVAO() {
	gl.BindVertexArray(d.vao)
}

func target(t gfx.BufferTarget) uint32 {
	if t == gfx.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func usage(u gfx.Usage) uint32 {
	if u == gfx.DynamicDraw {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

func dataType(t gfx.DataType) uint32 {
	if t == gfx.UnsignedShort {
		return gl.UNSIGNED_SHORT
	}
	return gl.FLOAT
}

func (d *Device) CreateBuffer() (gfx.Buffer, error) {
	var b uint32
	gl.GenBuffers(1, &b)
	if b == 0 {
		return 0, gfx.ErrBufferAlloc
	}
	return gfx.Buffer(b), nil
}

func (d *Device) DeleteBuffer(b gfx.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (d *Device) BindBuffer(t gfx.BufferTarget, b gfx.Buffer) {
	// element array bindings are VAO state
	if t == gfx.ElementArrayBuffer {
		d.bindVAO()
	}
	gl.BindBuffer(target(t), uint32(b))
}

func (d *Device) BufferFloat32(t gfx.BufferTarget, data []float32, u gfx.Usage) {
	if len(data) == 0 {
		gl.BufferData(target(t), 0, nil, usage(u))
		return
	}
	gl.BufferData(target(t), len(data)*4, gl.Ptr(data), usage(u))
}

func (d *Device) BufferUint16(t gfx.BufferTarget, data []uint16, u gfx.Usage) {
	if len(data) == 0 {
		gl.BufferData(target(t), 0, nil, usage(u))
		return
	}
	gl.BufferData(target(t), len(data)*2, gl.Ptr(data), usage(u))
}

func (d *Device) VertexAttribPointer(loc gfx.AttribLocation, size int, typ gfx.DataType, normalized bool, stride, offset int) {
	if !loc.Valid() {
		return
	}
	d.bindVAO()
	gl.VertexAttribPointerWithOffset(uint32(loc), int32(size), dataType(typ), normalized, int32(stride), uintptr(offset))
}

func (d *Device) EnableVertexAttribArray(loc gfx.AttribLocation) {
	if !loc.Valid() {
		return
	}
	d.bindVAO()
	gl.EnableVertexAttribArray(uint32(loc))
}

func (d *Device) CreateShader(stage gfx.ShaderStage) gfx.Shader {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == gfx.FragmentStage {
		kind = gl.FRAGMENT_SHADER
	}
	return gfx.Shader(gl.CreateShader(kind))
}

func (d *Device) ShaderSource(s gfx.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (d *Device) CompileShader(s gfx.Shader) {
	gl.CompileShader(uint32(s))
}

func (d *Device) ShaderCompiled(s gfx.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ShaderInfoLog(s gfx.Shader) string {
	var n int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(uint32(s), n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func (d *Device) DeleteShader(s gfx.Shader) {
	gl.DeleteShader(uint32(s))
}

func (d *Device) CreateProgram() gfx.Program {
	return gfx.Program(gl.CreateProgram())
}

func (d *Device) AttachShader(p gfx.Program, s gfx.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *Device) LinkProgram(p gfx.Program) {
	gl.LinkProgram(uint32(p))
}

func (d *Device) ProgramLinked(p gfx.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ProgramInfoLog(p gfx.Program) string {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(uint32(p), n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func (d *Device) DeleteProgram(p gfx.Program) {
	gl.DeleteProgram(uint32(p))
}

func (d *Device) UseProgram(p gfx.Program) {
	gl.UseProgram(uint32(p))
}

func (d *Device) AttribLocation(p gfx.Program, name string) gfx.AttribLocation {
	return gfx.AttribLocation(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (d *Device) UniformLocation(p gfx.Program, name string) gfx.UniformLocation {
	return gfx.UniformLocation(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (d *Device) UniformMatrix4(loc gfx.UniformLocation, m [16]float32) {
	if !loc.Valid() {
		return
	}
	gl.UniformMatrix4fv(int32(loc), 1, false, &m[0])
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) ClearDepth(v float32) {
	gl.ClearDepth(float64(v))
}

func (d *Device) Clear(mask gfx.ClearMask) {
	var bits uint32
	if mask&gfx.ColorBufferBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&gfx.DepthBufferBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func capability(c gfx.Capability) uint32 {
	switch c {
	case gfx.DepthTest:
		return gl.DEPTH_TEST
	}
	panic(fmt.Sprintf("gldevice: unknown capability %d", c))
}

func (d *Device) Enable(c gfx.Capability) {
	gl.Enable(capability(c))
}

func (d *Device) Disable(c gfx.Capability) {
	gl.Disable(capability(c))
}

func (d *Device) DepthFunc(f gfx.DepthFunc) {
	if f == gfx.LessEqual {
		gl.DepthFunc(gl.LEQUAL)
		return
	}
	gl.DepthFunc(gl.LESS)
}

func (d *Device) DrawElements(mode gfx.Primitive, count int, typ gfx.DataType, offset int) {
	d.bindVAO()
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), dataType(typ), uintptr(offset))
}

// Viewport returns the size of the GL viewport the host set for the default framebuffer.
func (d *Device) Viewport() (int, int) {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	return int(vp[2]), int(vp[3])
}

// Release deletes the device's vertex array.
func (d *Device) Release() {
	gl.DeleteVertexArrays(1, &d.vao)
}

var _ gfx.Device = (*Device)(nil)
