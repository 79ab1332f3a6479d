package buffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinning-cube/internal/geometry"
	"spinning-cube/internal/gfx"
	"spinning-cube/internal/gfx/gfxtest"
)

func TestUploadCube(t *testing.T) {
	dev := gfxtest.New()
	m := geometry.Cube()
	s, err := Upload(dev, m)
	require.NoError(t, err)

	assert.NotZero(t, s.Position)
	assert.NotZero(t, s.Color)
	assert.NotZero(t, s.Index)
	assert.Equal(t, 36, s.IndexCount)

	assert.Equal(t, m.Positions, dev.Float32Data(s.Position))
	assert.Equal(t, m.Colors, dev.Float32Data(s.Color))
	assert.Equal(t, []uint16{
		0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7, 8, 9, 10, 8, 10, 11,
		12, 13, 14, 12, 14, 15, 16, 17, 18, 16, 18, 19, 20, 21, 22, 20, 22, 23,
	}, dev.Uint16Data(s.Index))
	assert.Equal(t, s.Index, dev.Bound(gfx.ElementArrayBuffer))
}

func TestUploadIsStatic(t *testing.T) {
	dev := gfxtest.New()
	_, err := Upload(dev, geometry.Cube())
	require.NoError(t, err)

	uploads := append(dev.Find("BufferFloat32"), dev.Find("BufferUint16")...)
	require.Len(t, uploads, 3)
	for _, c := range uploads {
		assert.Equal(t, gfx.StaticDraw, c.Args[2], c.String())
	}
	assert.Len(t, dev.Find("CreateBuffer"), 3)
}

func TestUploadAllocFailure(t *testing.T) {
	dev := gfxtest.New()
	dev.FailBufferAfter = 2
	_, err := Upload(dev, geometry.Cube())
	require.ErrorIs(t, err, gfx.ErrBufferAlloc)
	assert.ErrorContains(t, err, "buffers: index")
	// position and color were released again
	assert.Len(t, dev.Find("DeleteBuffer"), 2)
	assert.Zero(t, dev.LiveBuffers())
}

func TestUploadColorFailureReleasesPosition(t *testing.T) {
	dev := gfxtest.New()
	dev.FailBufferAfter = 1
	_, err := Upload(dev, geometry.Cube())
	require.ErrorIs(t, err, gfx.ErrBufferAlloc)
	assert.ErrorContains(t, err, "buffers: color")
	assert.Zero(t, dev.LiveBuffers())
}

func TestSetDelete(t *testing.T) {
	dev := gfxtest.New()
	s, err := Upload(dev, geometry.Cube())
	require.NoError(t, err)
	assert.Equal(t, 3, dev.LiveBuffers())

	s.Delete(dev)
	assert.Zero(t, dev.LiveBuffers())
}

func TestUploadRejectsInvalidMesh(t *testing.T) {
	dev := gfxtest.New()
	m := geometry.Cube()
	m.Indices[0] = 99
	_, err := Upload(dev, m)
	require.Error(t, err)
	assert.Empty(t, dev.Calls)
}
