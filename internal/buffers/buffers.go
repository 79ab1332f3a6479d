package buffers

import (
	"fmt"

	"spinning-cube/internal/geometry"
	"spinning-cube/internal/gfx"
)

// Set holds the GPU buffers for one mesh. It is created once and never re-uploaded.
type Set struct {
	Position gfx.Buffer
	Color    gfx.Buffer
	Index    gfx.Buffer
	// IndexCount is the number of uint16 indices in Index.
	IndexCount int
}

// Upload allocates one static buffer per mesh array and copies the data to the device.
// The mesh is validated first so a malformed mesh never reaches the device.
func Upload(dev gfx.Device, m geometry.Mesh) (Set, error) {
	if err := m.Validate(); err != nil {
		return Set{}, fmt.Errorf("buffers: %w", err)
	}
	var s Set
	var err error
	if s.Position, err = uploadFloat32(dev, m.Positions); err != nil {
		return Set{}, fmt.Errorf("buffers: position: %w", err)
	}
	if s.Color, err = uploadFloat32(dev, m.Colors); err != nil {
		s.Delete(dev)
		return Set{}, fmt.Errorf("buffers: color: %w", err)
	}
	if s.Index, err = dev.CreateBuffer(); err != nil {
		s.Delete(dev)
		return Set{}, fmt.Errorf("buffers: index: %w", err)
	}
	dev.BindBuffer(gfx.ElementArrayBuffer, s.Index)
	dev.BufferUint16(gfx.ElementArrayBuffer, m.Indices, gfx.StaticDraw)
	s.IndexCount = len(m.Indices)
	return s, nil
}

// Delete releases every buffer s holds. Zero handles are skipped.
func (s Set) Delete(dev gfx.Device) {
	for _, b := range []gfx.Buffer{s.Position, s.Color, s.Index} {
		if b != 0 {
			dev.DeleteBuffer(b)
		}
	}
}

func uploadFloat32(dev gfx.Device, data []float32) (gfx.Buffer, error) {
	b, err := dev.CreateBuffer()
	if err != nil {
		return 0, err
	}
	dev.BindBuffer(gfx.ArrayBuffer, b)
	dev.BufferFloat32(gfx.ArrayBuffer, data, gfx.StaticDraw)
	return b, nil
}
