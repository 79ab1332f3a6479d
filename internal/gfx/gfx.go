package gfx

import "errors"

// ErrUnsupported is returned by hosts when no rendering context can be obtained
// (no WebGL in the browser, no OpenGL 3.3 driver on the desktop).
var ErrUnsupported = errors.New("rendering context unavailable")

// ErrBufferAlloc is returned by Device.CreateBuffer when the device could not allocate a buffer.
var ErrBufferAlloc = errors.New("buffer allocation failed")

// Buffer, Shader and Program are opaque device handles. Zero is never a valid handle.
type (
	Buffer  uint32
	Shader  uint32
	Program uint32
)

// AttribLocation and UniformLocation are resolved shader input slots.
// InvalidLocation is returned for names the linker dropped or never saw.
type (
	AttribLocation  int32
	UniformLocation int32
)

// InvalidLocation marks an unresolved attribute or uniform. Devices treat calls against it as no-ops.
const InvalidLocation = -1

// Valid reports whether the attribute location was resolved.
func (l AttribLocation) Valid() bool { return l >= 0 }

// Valid reports whether the uniform location was resolved.
func (l UniformLocation) Valid() bool { return l >= 0 }

// BufferTarget selects the binding point for a buffer.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element-array"
	}
	return "unknown"
}

// Usage hints how often buffer contents change after upload.
type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
)

// ShaderStage is the pipeline stage a shader object compiles for.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// DataType is the numeric type of attribute components or indices.
type DataType int

const (
	Float DataType = iota
	UnsignedShort
)

// Primitive is the topology an indexed draw interprets its indices as.
type Primitive int

const (
	Triangles Primitive = iota
)

// Capability is a toggleable device feature.
type Capability int

const (
	DepthTest Capability = iota
)

// DepthFunc is the depth comparison used when DepthTest is enabled.
type DepthFunc int

const (
	Less DepthFunc = iota
	LessEqual
)

// ClearMask selects which framebuffer planes Clear resets.
type ClearMask int

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// Device is the graphics capability the cube core consumes. It mirrors the
// small WebGL 1 / OpenGL 3.3 subset needed for one indexed draw per frame.
// All methods must be called from the thread that owns the context.
type Device interface {
	CreateBuffer() (Buffer, error)
	DeleteBuffer(b Buffer)
	BindBuffer(target BufferTarget, b Buffer)
	BufferFloat32(target BufferTarget, data []float32, usage Usage)
	BufferUint16(target BufferTarget, data []uint16, usage Usage)
	VertexAttribPointer(loc AttribLocation, size int, typ DataType, normalized bool, stride, offset int)
	EnableVertexAttribArray(loc AttribLocation)

	CreateShader(stage ShaderStage) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)
	AttribLocation(p Program, name string) AttribLocation
	UniformLocation(p Program, name string) UniformLocation
	UniformMatrix4(loc UniformLocation, m [16]float32)

	ClearColor(r, g, b, a float32)
	ClearDepth(d float32)
	Clear(mask ClearMask)
	Enable(c Capability)
	Disable(c Capability)
	DepthFunc(f DepthFunc)
	DrawElements(mode Primitive, count int, typ DataType, offset int)

	// Viewport returns the current drawable size in pixels.
	Viewport() (width, height int)
}
