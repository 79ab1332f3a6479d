package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"spinning-cube/internal/buffers"
	"spinning-cube/internal/geometry"
	"spinning-cube/internal/gfx"
	"spinning-cube/internal/shader"
)

// Camera and motion constants. The cube sits CameraDistance units in front of the eye.
const (
	FieldOfView    = 45 * math32.Pi / 180
	ZNear          = 0.1
	ZFar           = 100.0
	CameraDistance = 8.0

	// Rotation rates per radian of accumulated angle, per axis.
	SpinZ = 0.7
	SpinY = 0.7
	SpinX = 0.3
)

// Aspect returns width/height, or 1 for a degenerate viewport.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Projection returns the perspective matrix for the given aspect ratio.
func Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(FieldOfView, aspect, ZNear, ZFar)
}

// ModelView places the cube in front of the camera and spins it by rotation radians.
// Each step right-multiplies the running matrix, so the rotations apply Z, then Y, then X
// in the translated frame.
func ModelView(rotation float32) mgl32.Mat4 {
	m := mgl32.Ident4()
	m = m.Mul4(mgl32.Translate3D(0, 0, -CameraDistance))
	m = m.Mul4(mgl32.HomogRotate3DZ(rotation * SpinZ))
	m = m.Mul4(mgl32.HomogRotate3DY(rotation * SpinY))
	m = m.Mul4(mgl32.HomogRotate3DX(rotation * SpinX))
	return m.Mul4(mgl32.Scale3D(1, 1, 1))
}

// Draw renders one frame of the cube with the given rotation angle.
// It reads the viewport size from dev on every call.
func Draw(dev gfx.Device, p *shader.Program, b buffers.Set, rotation float32) {
	dev.ClearColor(0, 0, 0, 1)
	dev.ClearDepth(1)
	dev.Enable(gfx.DepthTest)
	dev.DepthFunc(gfx.LessEqual)
	dev.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)

	projection := Projection(Aspect(dev.Viewport()))
	modelView := ModelView(rotation)

	dev.BindBuffer(gfx.ArrayBuffer, b.Position)
	dev.VertexAttribPointer(p.VertexPosition, geometry.PositionSize, gfx.Float, false, 0, 0)
	dev.EnableVertexAttribArray(p.VertexPosition)

	dev.BindBuffer(gfx.ArrayBuffer, b.Color)
	dev.VertexAttribPointer(p.VertexColor, geometry.ColorSize, gfx.Float, false, 0, 0)
	dev.EnableVertexAttribArray(p.VertexColor)

	dev.BindBuffer(gfx.ElementArrayBuffer, b.Index)

	dev.UseProgram(p.Handle)
	dev.UniformMatrix4(p.ProjectionMatrix, projection)
	dev.UniformMatrix4(p.ModelViewMatrix, modelView)

	dev.DrawElements(gfx.Triangles, b.IndexCount, gfx.UnsignedShort, 0)
}
