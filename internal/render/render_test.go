package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinning-cube/internal/buffers"
	"spinning-cube/internal/geometry"
	"spinning-cube/internal/gfx"
	"spinning-cube/internal/gfx/gfxtest"
	"spinning-cube/internal/shader"
	"spinning-cube/internal/shaders"
)

func setup(t *testing.T) (*gfxtest.Device, *shader.Program, buffers.Set) {
	t.Helper()
	dev := gfxtest.New()
	src, err := shaders.For(shaders.GLSL100)
	require.NoError(t, err)
	p, err := shader.Build(dev, src)
	require.NoError(t, err)
	b, err := buffers.Upload(dev, geometry.Cube())
	require.NoError(t, err)
	dev.Reset()
	return dev, p, b
}

func TestModelViewAtZeroIsTranslation(t *testing.T) {
	got := ModelView(0)
	want := mgl32.Translate3D(0, 0, -8)
	assert.True(t, got.ApproxEqualThreshold(want, 1e-6), "got %v", got)
}

func TestModelViewRotationOrder(t *testing.T) {
	angle := float32(1.3)
	want := mgl32.Translate3D(0, 0, -8).
		Mul4(mgl32.HomogRotate3D(angle*0.7, mgl32.Vec3{0, 0, 1})).
		Mul4(mgl32.HomogRotate3D(angle*0.7, mgl32.Vec3{0, 1, 0})).
		Mul4(mgl32.HomogRotate3D(angle*0.3, mgl32.Vec3{1, 0, 0}))
	assert.True(t, ModelView(angle).ApproxEqualThreshold(want, 1e-5))

	// translation is unaffected by rotation
	assert.InDelta(t, -8, ModelView(angle).At(2, 3), 1e-6)
	// the origin of the cube stays on the view axis
	center := ModelView(angle).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, center.X(), 1e-6)
	assert.InDelta(t, 0, center.Y(), 1e-6)
}

func TestProjection(t *testing.T) {
	aspect := float32(16) / 9
	p := Projection(aspect)
	want := 1 / (aspect * math32.Tan(FieldOfView/2))
	assert.InDelta(t, want, p.At(0, 0), 1e-6)
	assert.InDelta(t, 1/math32.Tan(FieldOfView/2), p.At(1, 1), 1e-6)
	assert.InDelta(t, -1, p.At(3, 2), 1e-6)
}

func TestAspect(t *testing.T) {
	assert.InDelta(t, 16.0/9.0, Aspect(1920, 1080), 1e-6)
	assert.Equal(t, float32(1), Aspect(640, 0))
	assert.Equal(t, float32(1), Aspect(0, 0))
}

func TestDrawFrame(t *testing.T) {
	dev, p, b := setup(t)
	dev.Width, dev.Height = 1600, 900

	Draw(dev, p, b, math32.Pi/2)

	assert.Equal(t, []string{
		"ClearColor", "ClearDepth", "Enable", "DepthFunc", "Clear",
		"BindBuffer", "VertexAttribPointer", "EnableVertexAttribArray",
		"BindBuffer", "VertexAttribPointer", "EnableVertexAttribArray",
		"BindBuffer",
		"UseProgram", "UniformMatrix4", "UniformMatrix4",
		"DrawElements",
	}, dev.CallNames())

	assert.Equal(t, []any{float32(0), float32(0), float32(0), float32(1)}, dev.Find("ClearColor")[0].Args)
	assert.Equal(t, []any{float32(1)}, dev.Find("ClearDepth")[0].Args)
	assert.True(t, dev.Enabled(gfx.DepthTest))
	assert.Equal(t, []any{gfx.LessEqual}, dev.Find("DepthFunc")[0].Args)
	assert.Equal(t, []any{gfx.ColorBufferBit | gfx.DepthBufferBit}, dev.Find("Clear")[0].Args)

	attribs := dev.Find("VertexAttribPointer")
	assert.Equal(t, []any{p.VertexPosition, b.Position, 3, gfx.Float, false, 0, 0}, attribs[0].Args)
	assert.Equal(t, []any{p.VertexColor, b.Color, 4, gfx.Float, false, 0, 0}, attribs[1].Args)
	assert.Equal(t, b.Index, dev.Bound(gfx.ElementArrayBuffer))
	assert.Equal(t, p.Handle, dev.Current())

	assert.Equal(t, []any{gfx.Triangles, 36, gfx.UnsignedShort, 0}, dev.Find("DrawElements")[0].Args)

	proj, ok := dev.Uniform(p.ProjectionMatrix)
	require.True(t, ok)
	aspect := float32(16) / 9
	assert.InDelta(t, 1/(aspect*math32.Tan(FieldOfView/2)), proj[0], 1e-6)

	mv, ok := dev.Uniform(p.ModelViewMatrix)
	require.True(t, ok)
	assert.Equal(t, [16]float32(ModelView(math32.Pi/2)), mv)
}

func TestDrawSkipsInertLocations(t *testing.T) {
	dev, p, b := setup(t)
	inert := *p
	inert.VertexColor = gfx.InvalidLocation
	inert.ModelViewMatrix = gfx.InvalidLocation

	Draw(dev, &inert, b, 0)

	assert.Len(t, dev.Find("VertexAttribPointer"), 1)
	assert.Len(t, dev.Find("UniformMatrix4"), 1)
	assert.Len(t, dev.Find("DrawElements"), 1)
}
