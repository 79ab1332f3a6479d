package webgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32Bytes(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x80, 0xbf}, float32Bytes([]float32{1, -1}))
	assert.Empty(t, float32Bytes(nil))
}

func TestUint16Bytes(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x00, 0x17, 0x00, 0x00, 0x01}, uint16Bytes([]uint16{1, 23, 256}))
}

func TestMatrixArgs(t *testing.T) {
	var m [16]float32
	m[0], m[14], m[15] = 1.5, -8, 1
	args := matrixArgs(m)
	assert.Len(t, args, 16)
	assert.Equal(t, 1.5, args[0])
	assert.Equal(t, -8.0, args[14])
	assert.Equal(t, 0.0, args[1])
}
