package animation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinning-cube/internal/gfx"
	"spinning-cube/internal/gfx/gfxtest"
	"spinning-cube/internal/logger"
	"spinning-cube/internal/shader"
	"spinning-cube/internal/shaders"
)

// replay is a Scheduler that feeds fixed timestamps.
type replay struct {
	stamps []float64
}

func (r replay) Frames(ctx context.Context, tick func(now float64)) error {
	for _, s := range r.stamps {
		if err := ctx.Err(); err != nil {
			return err
		}
		tick(s)
	}
	return nil
}

func TestStateFirstTickIsZero(t *testing.T) {
	var s State
	assert.Equal(t, float32(0), s.Elapsed(123456))
	s = s.Tick(123456, nil)
	assert.Equal(t, float32(0), s.Rotation)
	assert.InDelta(t, 0.016, s.Elapsed(123472), 1e-6)
}

func TestStateAccumulatesDeltas(t *testing.T) {
	// deltas in seconds after the first tick
	deltas := []float64{0.016, 0.017, 0.5, 0.001, 1.25}
	now := 5000.0
	var s State
	var drawn []float32
	draw := func(r float32) { drawn = append(drawn, r) }

	s = s.Tick(now, draw)
	var sum float64
	for _, d := range deltas {
		now += d * 1000
		sum += d
		s = s.Tick(now, draw)
	}
	assert.InDelta(t, sum, s.Rotation, 1e-5)

	// each frame is drawn with the angle before it is advanced
	require.Len(t, drawn, len(deltas)+1)
	assert.Equal(t, float32(0), drawn[0])
	assert.Equal(t, float32(0), drawn[1])
	assert.InDelta(t, 0.016, drawn[2], 1e-6)
}

func TestStateIsAValue(t *testing.T) {
	var s State
	next := s.Tick(0, nil).Tick(1000, nil)
	assert.InDelta(t, 1, next.Rotation, 1e-6)
	assert.Equal(t, float32(0), s.Rotation)
}

func newDriver(t *testing.T) (*Driver, *gfxtest.Device) {
	t.Helper()
	dev := gfxtest.New()
	src, err := shaders.For(shaders.GLSL100)
	require.NoError(t, err)
	d, err := New(dev, src, logger.New("", nil))
	require.NoError(t, err)
	dev.Reset()
	return d, dev
}

func TestDriverRun(t *testing.T) {
	d, dev := newDriver(t)
	err := d.Run(context.Background(), replay{stamps: []float64{100, 116, 133, 1133}})
	require.NoError(t, err)

	assert.Len(t, dev.Find("DrawElements"), 4)
	assert.InDelta(t, 1.033, d.State().Rotation, 1e-5)
}

func TestDriverRunCancelled(t *testing.T) {
	d, dev := newDriver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.Run(ctx, replay{stamps: []float64{0, 16}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dev.Find("DrawElements"))
}

func TestNewAbortsOnShaderFailure(t *testing.T) {
	dev := gfxtest.New()
	d, err := New(dev, shader.Sources{Vertex: "not glsl", Fragment: "void main() {}"}, nil)
	assert.Nil(t, d)

	var ce *shader.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, gfx.VertexStage, ce.Stage)
	assert.Empty(t, dev.Find("CreateBuffer"))
}

func TestNewAbortsOnBufferFailure(t *testing.T) {
	dev := gfxtest.New()
	dev.FailBufferAfter = 1
	src, err := shaders.For(shaders.GLSL330)
	require.NoError(t, err)

	d, err := New(dev, src, nil)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, gfx.ErrBufferAlloc)
	prog := dev.Find("CreateProgram")[0].Args[0].(gfx.Program)
	assert.True(t, dev.ProgramDeleted(prog))
	assert.Zero(t, dev.LiveBuffers())
}

func TestNewLogsUnresolvedInputs(t *testing.T) {
	dev := gfxtest.New()
	log := logger.New("", nil)
	vertex := `attribute vec4 aVertexPosition;
uniform mat4 uProjectionMatrix;
uniform mat4 uModelViewMatrix;
void main() { gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition; }`
	_, err := New(dev, shader.Sources{Vertex: vertex, Fragment: "void main() {}"}, log)
	require.NoError(t, err)
	assert.Contains(t, log.Lines()[0], "aVertexColor")
}
