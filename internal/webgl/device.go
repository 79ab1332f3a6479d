//go:build js && wasm

// Package webgl implements gfx.Device on a browser WebGL 1 context and schedules
// frames with requestAnimationFrame.
package webgl

import (
	"errors"
	"fmt"

	"github.com/hack-pad/safejs"

	"spinning-cube/internal/gfx"
)

// Device wraps a WebGLRenderingContext. WebGL hands out JS objects for buffers,
// shaders, programs and uniform locations; Device maps them to the integer handles
// gfx uses. The first JS exception raised by any call is kept and reported by Err.
type Device struct {
	gl     safejs.Value
	canvas safejs.Value

	objects  map[uint32]safejs.Value
	uniforms map[gfx.UniformLocation]safejs.Value
	nextID   uint32
	err      error

	// WebGL enum values read from the context once.
	enums map[string]int
}

var enumNames = []string{
	"ARRAY_BUFFER", "ELEMENT_ARRAY_BUFFER", "STATIC_DRAW", "DYNAMIC_DRAW",
	"FLOAT", "UNSIGNED_SHORT", "TRIANGLES",
	"VERTEX_SHADER", "FRAGMENT_SHADER", "COMPILE_STATUS", "LINK_STATUS",
	"COLOR_BUFFER_BIT", "DEPTH_BUFFER_BIT", "DEPTH_TEST", "LESS", "LEQUAL",
}

func newDevice(gl, canvas safejs.Value) (*Device, error) {
	d := &Device{
		gl:       gl,
		canvas:   canvas,
		objects:  make(map[uint32]safejs.Value),
		uniforms: make(map[gfx.UniformLocation]safejs.Value),
		enums:    make(map[string]int, len(enumNames)),
	}
	for _, name := range enumNames {
		v, err := gl.Get(name)
		if err != nil {
			return nil, fmt.Errorf("webgl: enum %s: %w", name, err)
		}
		n, err := v.Int()
		if err != nil {
			return nil, fmt.Errorf("webgl: enum %s: %w", name, err)
		}
		d.enums[name] = n
	}
	return d, nil
}

// Err returns the first JS exception raised by a device call, if any.
func (d *Device) Err() error {
	return d.err
}

func (d *Device) call(method string, args ...any) safejs.Value {
	v, err := d.gl.Call(method, args...)
	if err != nil {
		if d.err == nil {
			d.err = fmt.Errorf("webgl: %s: %w", method, err)
		}
		return safejs.Null()
	}
	return v
}

func (d *Device) enum(name string) int {
	return d.enums[name]
}

func (d *Device) store(v safejs.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	d.nextID++
	d.objects[d.nextID] = v
	return d.nextID
}

// object returns the JS object for id, or null for 0 and unknown ids (unbinding in WebGL terms).
func (d *Device) object(id uint32) safejs.Value {
	if v, ok := d.objects[id]; ok {
		return v
	}
	return safejs.Null()
}

func (d *Device) release(id uint32) safejs.Value {
	v := d.object(id)
	delete(d.objects, id)
	return v
}

func (d *Device) target(t gfx.BufferTarget) int {
	if t == gfx.ElementArrayBuffer {
		return d.enum("ELEMENT_ARRAY_BUFFER")
	}
	return d.enum("ARRAY_BUFFER")
}

func (d *Device) usage(u gfx.Usage) int {
	if u == gfx.DynamicDraw {
		return d.enum("DYNAMIC_DRAW")
	}
	return d.enum("STATIC_DRAW")
}

func (d *Device) dataType(t gfx.DataType) int {
	if t == gfx.UnsignedShort {
		return d.enum("UNSIGNED_SHORT")
	}
	return d.enum("FLOAT")
}

func (d *Device) CreateBuffer() (gfx.Buffer, error) {
	id := d.store(d.call("createBuffer"))
	if id == 0 {
		return 0, gfx.ErrBufferAlloc
	}
	return gfx.Buffer(id), nil
}

func (d *Device) DeleteBuffer(b gfx.Buffer) {
	d.call("deleteBuffer", d.release(uint32(b)))
}

func (d *Device) BindBuffer(t gfx.BufferTarget, b gfx.Buffer) {
	d.call("bindBuffer", d.target(t), d.object(uint32(b)))
}

// upload copies raw bytes into a Uint8Array and hands it to bufferData.
func (d *Device) upload(t gfx.BufferTarget, data []byte, u gfx.Usage) {
	u8, err := uint8Array(len(data))
	if err == nil {
		_, err = safejs.CopyBytesToJS(u8, data)
	}
	if err != nil {
		if d.err == nil {
			d.err = fmt.Errorf("webgl: bufferData: %w", err)
		}
		return
	}
	d.call("bufferData", d.target(t), u8, d.usage(u))
}

func uint8Array(n int) (safejs.Value, error) {
	ctor, err := safejs.Global().Get("Uint8Array")
	if err != nil {
		return safejs.Null(), err
	}
	return ctor.New(n)
}

func (d *Device) BufferFloat32(t gfx.BufferTarget, data []float32, u gfx.Usage) {
	d.upload(t, float32Bytes(data), u)
}

func (d *Device) BufferUint16(t gfx.BufferTarget, data []uint16, u gfx.Usage) {
	d.upload(t, uint16Bytes(data), u)
}

func (d *Device) VertexAttribPointer(loc gfx.AttribLocation, size int, typ gfx.DataType, normalized bool, stride, offset int) {
	if !loc.Valid() {
		return
	}
	d.call("vertexAttribPointer", int(loc), size, d.dataType(typ), normalized, stride, offset)
}

func (d *Device) EnableVertexAttribArray(loc gfx.AttribLocation) {
	if !loc.Valid() {
		return
	}
	d.call("enableVertexAttribArray", int(loc))
}

func (d *Device) CreateShader(stage gfx.ShaderStage) gfx.Shader {
	kind := d.enum("VERTEX_SHADER")
	if stage == gfx.FragmentStage {
		kind = d.enum("FRAGMENT_SHADER")
	}
	return gfx.Shader(d.store(d.call("createShader", kind)))
}

func (d *Device) ShaderSource(s gfx.Shader, src string) {
	d.call("shaderSource", d.object(uint32(s)), src)
}

func (d *Device) CompileShader(s gfx.Shader) {
	d.call("compileShader", d.object(uint32(s)))
}

func (d *Device) ShaderCompiled(s gfx.Shader) bool {
	ok, _ := d.call("getShaderParameter", d.object(uint32(s)), d.enum("COMPILE_STATUS")).Bool()
	return ok
}

func (d *Device) ShaderInfoLog(s gfx.Shader) string {
	log, _ := d.call("getShaderInfoLog", d.object(uint32(s))).String()
	return log
}

func (d *Device) DeleteShader(s gfx.Shader) {
	d.call("deleteShader", d.release(uint32(s)))
}

func (d *Device) CreateProgram() gfx.Program {
	return gfx.Program(d.store(d.call("createProgram")))
}

func (d *Device) AttachShader(p gfx.Program, s gfx.Shader) {
	d.call("attachShader", d.object(uint32(p)), d.object(uint32(s)))
}

func (d *Device) LinkProgram(p gfx.Program) {
	d.call("linkProgram", d.object(uint32(p)))
}

func (d *Device) ProgramLinked(p gfx.Program) bool {
	ok, _ := d.call("getProgramParameter", d.object(uint32(p)), d.enum("LINK_STATUS")).Bool()
	return ok
}

func (d *Device) ProgramInfoLog(p gfx.Program) string {
	log, _ := d.call("getProgramInfoLog", d.object(uint32(p))).String()
	return log
}

func (d *Device) DeleteProgram(p gfx.Program) {
	d.call("deleteProgram", d.release(uint32(p)))
}

func (d *Device) UseProgram(p gfx.Program) {
	d.call("useProgram", d.object(uint32(p)))
}

func (d *Device) AttribLocation(p gfx.Program, name string) gfx.AttribLocation {
	n, err := d.call("getAttribLocation", d.object(uint32(p)), name).Int()
	if err != nil {
		return gfx.InvalidLocation
	}
	return gfx.AttribLocation(n)
}

func (d *Device) UniformLocation(p gfx.Program, name string) gfx.UniformLocation {
	v := d.call("getUniformLocation", d.object(uint32(p)), name)
	if v.IsNull() || v.IsUndefined() {
		return gfx.InvalidLocation
	}
	loc := gfx.UniformLocation(len(d.uniforms))
	d.uniforms[loc] = v
	return loc
}

func (d *Device) UniformMatrix4(loc gfx.UniformLocation, m [16]float32) {
	v, ok := d.uniforms[loc]
	if !ok {
		return
	}
	arr, err := safejs.ValueOf(matrixArgs(m))
	if err != nil {
		if d.err == nil {
			d.err = fmt.Errorf("webgl: uniformMatrix4fv: %w", err)
		}
		return
	}
	d.call("uniformMatrix4fv", v, false, arr)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.call("clearColor", r, g, b, a)
}

func (d *Device) ClearDepth(v float32) {
	d.call("clearDepth", v)
}

func (d *Device) Clear(mask gfx.ClearMask) {
	bits := 0
	if mask&gfx.ColorBufferBit != 0 {
		bits |= d.enum("COLOR_BUFFER_BIT")
	}
	if mask&gfx.DepthBufferBit != 0 {
		bits |= d.enum("DEPTH_BUFFER_BIT")
	}
	d.call("clear", bits)
}

func (d *Device) capability(c gfx.Capability) int {
	if c == gfx.DepthTest {
		return d.enum("DEPTH_TEST")
	}
	return 0
}

func (d *Device) Enable(c gfx.Capability) {
	d.call("enable", d.capability(c))
}

func (d *Device) Disable(c gfx.Capability) {
	d.call("disable", d.capability(c))
}

func (d *Device) DepthFunc(f gfx.DepthFunc) {
	if f == gfx.LessEqual {
		d.call("depthFunc", d.enum("LEQUAL"))
		return
	}
	d.call("depthFunc", d.enum("LESS"))
}

func (d *Device) DrawElements(mode gfx.Primitive, count int, typ gfx.DataType, offset int) {
	d.call("drawElements", d.enum("TRIANGLES"), count, d.dataType(typ), offset)
}

// Viewport returns the canvas' displayed size in CSS pixels.
func (d *Device) Viewport() (int, int) {
	w, err1 := intProp(d.canvas, "clientWidth")
	h, err2 := intProp(d.canvas, "clientHeight")
	if err := errors.Join(err1, err2); err != nil {
		return 0, 0
	}
	return w, h
}

func intProp(v safejs.Value, name string) (int, error) {
	p, err := v.Get(name)
	if err != nil {
		return 0, err
	}
	return p.Int()
}

var _ gfx.Device = (*Device)(nil)
