// Package gfxtest provides a recording gfx.Device for tests that run without a graphics context.
package gfxtest

import (
	"fmt"
	"strings"

	"spinning-cube/internal/gfx"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type shaderObj struct {
	stage    gfx.ShaderStage
	src      string
	compiled bool
	log      string
	deleted  bool
}

type programObj struct {
	shaders []gfx.Shader
	linked  bool
	log     string
	deleted bool
	attribs map[string]gfx.AttribLocation
	unifs   map[string]gfx.UniformLocation
}

// Device is an in-memory gfx.Device. Shader compilation is a toy check:
// a source compiles when it declares main and its braces balance.
// Locations are handed out for names that appear in the attached sources.
type Device struct {
	Width, Height int

	// FailBufferAfter makes CreateBuffer fail once this many buffers exist. Zero disables it.
	FailBufferAfter int
	// LinkLog, when set, makes every LinkProgram fail with that diagnostic.
	LinkLog string

	Calls []Call

	buffers  map[gfx.Buffer][]any
	released map[gfx.Buffer]bool
	bound    map[gfx.BufferTarget]gfx.Buffer
	shaders  map[gfx.Shader]*shaderObj
	programs map[gfx.Program]*programObj
	current  gfx.Program
	uniforms map[gfx.UniformLocation][16]float32
	enabled  map[gfx.Capability]bool
	nextID   uint32
}

// New returns a device with a 640x480 viewport.
func New() *Device {
	return &Device{
		Width:    640,
		Height:   480,
		buffers:  make(map[gfx.Buffer][]any),
		released: make(map[gfx.Buffer]bool),
		bound:    make(map[gfx.BufferTarget]gfx.Buffer),
		shaders:  make(map[gfx.Shader]*shaderObj),
		programs: make(map[gfx.Program]*programObj),
		uniforms: make(map[gfx.UniformLocation][16]float32),
		enabled:  make(map[gfx.Capability]bool),
	}
}

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

// CallNames returns the names of all recorded calls in order.
func (d *Device) CallNames() []string {
	out := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		out[i] = c.Name
	}
	return out
}

// Find returns the recorded calls with the given name.
func (d *Device) Find(name string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls but keeps device objects.
func (d *Device) Reset() {
	d.Calls = nil
}

// Float32Data returns the contents uploaded to b, or nil.
func (d *Device) Float32Data(b gfx.Buffer) []float32 {
	if len(d.buffers[b]) == 0 {
		return nil
	}
	v, _ := d.buffers[b][0].([]float32)
	return v
}

// Uint16Data returns the contents uploaded to b, or nil.
func (d *Device) Uint16Data(b gfx.Buffer) []uint16 {
	if len(d.buffers[b]) == 0 {
		return nil
	}
	v, _ := d.buffers[b][0].([]uint16)
	return v
}

// Uniform returns the last matrix uploaded to loc.
func (d *Device) Uniform(loc gfx.UniformLocation) ([16]float32, bool) {
	m, ok := d.uniforms[loc]
	return m, ok
}

// ShaderDeleted reports whether s was released.
func (d *Device) ShaderDeleted(s gfx.Shader) bool {
	o, ok := d.shaders[s]
	return ok && o.deleted
}

// ProgramDeleted reports whether p was released.
func (d *Device) ProgramDeleted(p gfx.Program) bool {
	o, ok := d.programs[p]
	return ok && o.deleted
}

// LiveShaders returns the number of shader objects not yet released.
func (d *Device) LiveShaders() int {
	n := 0
	for _, s := range d.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

// Enabled reports whether capability c is on.
func (d *Device) Enabled(c gfx.Capability) bool {
	return d.enabled[c]
}

func (d *Device) CreateBuffer() (gfx.Buffer, error) {
	if d.FailBufferAfter > 0 && len(d.buffers) >= d.FailBufferAfter {
		d.record("CreateBuffer", gfx.Buffer(0))
		return 0, gfx.ErrBufferAlloc
	}
	b := gfx.Buffer(d.id())
	d.buffers[b] = nil
	d.record("CreateBuffer", b)
	return b, nil
}

func (d *Device) DeleteBuffer(b gfx.Buffer) {
	if _, ok := d.buffers[b]; ok {
		d.released[b] = true
	}
	d.record("DeleteBuffer", b)
}

// LiveBuffers returns the number of buffers created and not yet deleted.
func (d *Device) LiveBuffers() int {
	return len(d.buffers) - len(d.released)
}

func (d *Device) BindBuffer(target gfx.BufferTarget, b gfx.Buffer) {
	d.bound[target] = b
	d.record("BindBuffer", target, b)
}

func (d *Device) BufferFloat32(target gfx.BufferTarget, data []float32, usage gfx.Usage) {
	cp := append([]float32(nil), data...)
	d.buffers[d.bound[target]] = []any{cp, usage}
	d.record("BufferFloat32", target, len(data), usage)
}

func (d *Device) BufferUint16(target gfx.BufferTarget, data []uint16, usage gfx.Usage) {
	cp := append([]uint16(nil), data...)
	d.buffers[d.bound[target]] = []any{cp, usage}
	d.record("BufferUint16", target, len(data), usage)
}

// Bound returns the buffer bound on target.
func (d *Device) Bound(target gfx.BufferTarget) gfx.Buffer {
	return d.bound[target]
}

func (d *Device) VertexAttribPointer(loc gfx.AttribLocation, size int, typ gfx.DataType, normalized bool, stride, offset int) {
	if !loc.Valid() {
		return
	}
	d.record("VertexAttribPointer", loc, d.bound[gfx.ArrayBuffer], size, typ, normalized, stride, offset)
}

func (d *Device) EnableVertexAttribArray(loc gfx.AttribLocation) {
	if !loc.Valid() {
		return
	}
	d.record("EnableVertexAttribArray", loc)
}

func (d *Device) CreateShader(stage gfx.ShaderStage) gfx.Shader {
	s := gfx.Shader(d.id())
	d.shaders[s] = &shaderObj{stage: stage}
	d.record("CreateShader", stage, s)
	return s
}

func (d *Device) ShaderSource(s gfx.Shader, src string) {
	if o, ok := d.shaders[s]; ok {
		o.src = src
	}
	d.record("ShaderSource", s)
}

func (d *Device) CompileShader(s gfx.Shader) {
	d.record("CompileShader", s)
	o, ok := d.shaders[s]
	if !ok {
		return
	}
	switch {
	case !strings.Contains(o.src, "void main("):
		o.log = "ERROR: 0:1: 'main' : function not defined"
	case strings.Count(o.src, "{") != strings.Count(o.src, "}"):
		o.log = "ERROR: 0:1: '' : syntax error: unbalanced braces"
	default:
		o.compiled = true
		o.log = ""
	}
}

func (d *Device) ShaderCompiled(s gfx.Shader) bool {
	o, ok := d.shaders[s]
	return ok && o.compiled
}

func (d *Device) ShaderInfoLog(s gfx.Shader) string {
	if o, ok := d.shaders[s]; ok {
		return o.log
	}
	return ""
}

func (d *Device) DeleteShader(s gfx.Shader) {
	if o, ok := d.shaders[s]; ok {
		o.deleted = true
	}
	d.record("DeleteShader", s)
}

func (d *Device) CreateProgram() gfx.Program {
	p := gfx.Program(d.id())
	d.programs[p] = &programObj{}
	d.record("CreateProgram", p)
	return p
}

func (d *Device) AttachShader(p gfx.Program, s gfx.Shader) {
	if o, ok := d.programs[p]; ok {
		o.shaders = append(o.shaders, s)
	}
	d.record("AttachShader", p, s)
}

func (d *Device) LinkProgram(p gfx.Program) {
	d.record("LinkProgram", p)
	o, ok := d.programs[p]
	if !ok {
		return
	}
	if d.LinkLog != "" {
		o.log = d.LinkLog
		return
	}
	for _, s := range o.shaders {
		if !d.ShaderCompiled(s) {
			o.log = fmt.Sprintf("ERROR: shader %d not compiled", s)
			return
		}
	}
	o.linked = true
	o.attribs = make(map[string]gfx.AttribLocation)
	o.unifs = make(map[string]gfx.UniformLocation)
}

func (d *Device) ProgramLinked(p gfx.Program) bool {
	o, ok := d.programs[p]
	return ok && o.linked
}

func (d *Device) ProgramInfoLog(p gfx.Program) string {
	if o, ok := d.programs[p]; ok {
		return o.log
	}
	return ""
}

func (d *Device) DeleteProgram(p gfx.Program) {
	if o, ok := d.programs[p]; ok {
		o.deleted = true
	}
	d.record("DeleteProgram", p)
}

func (d *Device) UseProgram(p gfx.Program) {
	d.current = p
	d.record("UseProgram", p)
}

// Current returns the program last passed to UseProgram.
func (d *Device) Current() gfx.Program {
	return d.current
}

// declares reports whether any shader attached to o mentions name.
func (d *Device) declares(o *programObj, name string) bool {
	for _, s := range o.shaders {
		if so, ok := d.shaders[s]; ok && strings.Contains(so.src, name) {
			return true
		}
	}
	return false
}

func (d *Device) AttribLocation(p gfx.Program, name string) gfx.AttribLocation {
	o, ok := d.programs[p]
	if !ok || !o.linked || !d.declares(o, name) {
		return gfx.InvalidLocation
	}
	loc, ok := o.attribs[name]
	if !ok {
		loc = gfx.AttribLocation(len(o.attribs))
		o.attribs[name] = loc
	}
	return loc
}

func (d *Device) UniformLocation(p gfx.Program, name string) gfx.UniformLocation {
	o, ok := d.programs[p]
	if !ok || !o.linked || !d.declares(o, name) {
		return gfx.InvalidLocation
	}
	loc, ok := o.unifs[name]
	if !ok {
		loc = gfx.UniformLocation(len(o.unifs))
		o.unifs[name] = loc
	}
	return loc
}

func (d *Device) UniformMatrix4(loc gfx.UniformLocation, m [16]float32) {
	if !loc.Valid() {
		return
	}
	d.uniforms[loc] = m
	d.record("UniformMatrix4", loc)
}

func (d *Device) ClearColor(r, g, b, a float32) { d.record("ClearColor", r, g, b, a) }
func (d *Device) ClearDepth(v float32)          { d.record("ClearDepth", v) }
func (d *Device) Clear(mask gfx.ClearMask)      { d.record("Clear", mask) }
func (d *Device) DepthFunc(f gfx.DepthFunc)     { d.record("DepthFunc", f) }

func (d *Device) Enable(c gfx.Capability) {
	d.enabled[c] = true
	d.record("Enable", c)
}

func (d *Device) Disable(c gfx.Capability) {
	d.enabled[c] = false
	d.record("Disable", c)
}

func (d *Device) DrawElements(mode gfx.Primitive, count int, typ gfx.DataType, offset int) {
	d.record("DrawElements", mode, count, typ, offset)
}

func (d *Device) Viewport() (int, int) {
	return d.Width, d.Height
}

var _ gfx.Device = (*Device)(nil)
