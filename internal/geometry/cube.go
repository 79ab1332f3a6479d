package geometry

import "fmt"

const (
	// FaceCount is the number of cube faces; each face owns VerticesPerFace unshared vertices.
	FaceCount       = 6
	VerticesPerFace = 4
	VertexCount     = FaceCount * VerticesPerFace
	// IndexCount covers two triangles per face.
	IndexCount = FaceCount * 6

	PositionSize = 3
	ColorSize    = 4
)

// Face names the cube faces in emission order.
type Face int

const (
	Front Face = iota
	Back
	Top
	Bottom
	Right
	Left
)

var faceNames = [FaceCount]string{"front", "back", "top", "bottom", "right", "left"}

func (f Face) String() string {
	if f < 0 || int(f) >= FaceCount {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// FaceColors holds one RGBA color per face, indexed by Face.
var FaceColors = [FaceCount][ColorSize]float32{
	Front:  {0.6, 0.6, 0.6, 1.0}, // gray
	Back:   {1.0, 0.0, 0.0, 1.0}, // red
	Top:    {0.0, 1.0, 0.0, 1.0}, // green
	Bottom: {0.0, 0.0, 1.0, 1.0}, // blue
	Right:  {1.0, 1.0, 0.0, 1.0}, // yellow
	Left:   {1.0, 0.0, 1.0, 1.0}, // magenta
}

// facePositions lists the 4 corners of each face of the [-1, 1] cube.
var facePositions = [FaceCount][VerticesPerFace][PositionSize]float32{
	Front:  {{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	Back:   {{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}},
	Top:    {{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},
	Bottom: {{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
	Right:  {{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}},
	Left:   {{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
}

// Mesh is vertex data ready for upload: flat positions (xyz), flat colors (rgba) and triangle indices.
type Mesh struct {
	Positions []float32
	Colors    []float32
	Indices   []uint16
}

// Cube returns the colored cube mesh. Every call builds new slices so callers may modify the result.
func Cube() Mesh {
	m := Mesh{
		Positions: make([]float32, 0, VertexCount*PositionSize),
		Colors:    make([]float32, 0, VertexCount*ColorSize),
		Indices:   make([]uint16, 0, IndexCount),
	}
	for f := range FaceCount {
		for _, p := range facePositions[f] {
			m.Positions = append(m.Positions, p[:]...)
			m.Colors = append(m.Colors, FaceColors[f][:]...)
		}
		// Two triangles fanned from the face's first vertex.
		b := uint16(f * VerticesPerFace)
		m.Indices = append(m.Indices, b, b+1, b+2, b, b+2, b+3)
	}
	return m
}

// VertexCount returns the number of vertices described by Positions.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / PositionSize
}

// Validate checks that m is a complete cube: VertexCount vertices with one color each
// and IndexCount indices, every one in range.
func (m Mesh) Validate() error {
	if len(m.Positions)%PositionSize != 0 {
		return fmt.Errorf("geometry: %d position components is not a multiple of %d", len(m.Positions), PositionSize)
	}
	if len(m.Colors)%ColorSize != 0 {
		return fmt.Errorf("geometry: %d color components is not a multiple of %d", len(m.Colors), ColorSize)
	}
	n := m.VertexCount()
	if c := len(m.Colors) / ColorSize; c != n {
		return fmt.Errorf("geometry: %d colors for %d vertices", c, n)
	}
	if n != VertexCount {
		return fmt.Errorf("geometry: %d vertices, want %d", n, VertexCount)
	}
	if len(m.Indices) != IndexCount {
		return fmt.Errorf("geometry: %d indices, want %d", len(m.Indices), IndexCount)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("geometry: index %d at %d out of range [0, %d)", idx, i, n)
		}
	}
	return nil
}
