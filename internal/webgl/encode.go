package webgl

import (
	"encoding/binary"
	"math"
)

// float32Bytes packs data little-endian, the byte order of wasm memory and of the typed arrays WebGL reads.
func float32Bytes(data []float32) []byte {
	buf := make([]byte, 0, len(data)*4)
	for _, f := range data {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}

func uint16Bytes(data []uint16) []byte {
	buf := make([]byte, 0, len(data)*2)
	for _, v := range data {
		buf = binary.LittleEndian.AppendUint16(buf, v)
	}
	return buf
}

// matrixArgs converts a column-major matrix to the numbers uniformMatrix4fv accepts.
func matrixArgs(m [16]float32) []any {
	out := make([]any, len(m))
	for i, f := range m {
		out[i] = float64(f)
	}
	return out
}
