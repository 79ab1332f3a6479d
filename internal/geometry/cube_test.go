package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeSizes(t *testing.T) {
	m := Cube()
	assert.Len(t, m.Positions, 72)
	assert.Len(t, m.Colors, 96)
	assert.Len(t, m.Indices, 36)
	assert.Equal(t, 24, m.VertexCount())
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), 24)
	}
	require.NoError(t, m.Validate())
}

func TestCubeDeterministic(t *testing.T) {
	a, b := Cube(), Cube()
	assert.Equal(t, a, b)

	// results do not share storage
	a.Positions[0] = 42
	a.Indices[0] = 7
	assert.Equal(t, Cube(), b)
}

func TestCubeIndices(t *testing.T) {
	want := []uint16{
		0, 1, 2, 0, 2, 3,
		4, 5, 6, 4, 6, 7,
		8, 9, 10, 8, 10, 11,
		12, 13, 14, 12, 14, 15,
		16, 17, 18, 16, 18, 19,
		20, 21, 22, 20, 22, 23,
	}
	assert.Equal(t, want, Cube().Indices)
}

func TestCubeFaceColors(t *testing.T) {
	m := Cube()
	seen := make(map[[4]float32]bool)
	for f := range FaceCount {
		var first [4]float32
		copy(first[:], m.Colors[f*VerticesPerFace*ColorSize:])
		for v := range VerticesPerFace {
			var c [4]float32
			copy(c[:], m.Colors[(f*VerticesPerFace+v)*ColorSize:])
			assert.Equal(t, first, c, "face %v vertex %d", Face(f), v)
		}
		assert.Equal(t, FaceColors[f], first, "face %v", Face(f))
		seen[first] = true
	}
	assert.Len(t, seen, FaceCount)
}

func TestCubeFacesPartitionVertices(t *testing.T) {
	m := Cube()
	owner := make(map[uint16]int)
	for tri := 0; tri < len(m.Indices); tri += 3 {
		face := tri / 6
		for _, idx := range m.Indices[tri : tri+3] {
			if f, ok := owner[idx]; ok {
				assert.Equal(t, face, f, "vertex %d shared between faces", idx)
			}
			owner[idx] = face
		}
	}
	assert.Len(t, owner, VertexCount)
}

func TestCubeFacesArePlanar(t *testing.T) {
	m := Cube()
	// each face keeps one coordinate fixed at +1 or -1
	for f := range FaceCount {
		base := f * VerticesPerFace * PositionSize
		fixed := -1
		for axis := range PositionSize {
			same := true
			for v := 1; v < VerticesPerFace; v++ {
				if m.Positions[base+v*PositionSize+axis] != m.Positions[base+axis] {
					same = false
				}
			}
			if same {
				fixed = axis
			}
		}
		require.NotEqual(t, -1, fixed, "face %v", Face(f))
		assert.Equal(t, float32(1), abs(m.Positions[base+fixed]))
	}
}

func TestValidate(t *testing.T) {
	m := Cube()
	m.Indices[5] = 24
	assert.ErrorContains(t, m.Validate(), "out of range")

	m = Cube()
	m.Colors = m.Colors[:92]
	assert.ErrorContains(t, m.Validate(), "23 colors for 24 vertices")

	m = Cube()
	m.Positions = m.Positions[:71]
	assert.Error(t, m.Validate())

	m = Cube()
	m.Indices = m.Indices[:30]
	assert.ErrorContains(t, m.Validate(), "30 indices, want 36")

	// a consistent mesh that is not the cube
	m = Mesh{
		Positions: make([]float32, 8*PositionSize),
		Colors:    make([]float32, 8*ColorSize),
		Indices:   []uint16{0, 1, 2, 0, 2, 3},
	}
	assert.ErrorContains(t, m.Validate(), "8 vertices, want 24")

	m = Cube()
	m.Positions = append(m.Positions, 0, 0, 0)
	m.Colors = append(m.Colors, 1, 1, 1, 1)
	assert.ErrorContains(t, m.Validate(), "25 vertices, want 24")

	m = Cube()
	m.Indices = append(m.Indices, 0, 1, 2)
	assert.ErrorContains(t, m.Validate(), "39 indices, want 36")
}

func TestFaceString(t *testing.T) {
	assert.Equal(t, "front", Front.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "Face(9)", Face(9).String())
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
