// Package glupload puts a sphere's data block and index blocks into OpenGL
// buffer objects. The caller owns the context: it must be current on the
// calling goroutine and gl.Init must have succeeded.
package glupload

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/quadsphere/pkg/pictype"
	"github.com/Faultbox/quadsphere/pkg/quadsphere"
)

// Attribute locations the sphere's vertex shader is expected to use.
const (
	PositionAttrib = 0
	TexCoordAttrib = 1
)

// Attrib describes one vertex attribute pointer into the data block.
type Attrib struct {
	Index  uint32
	Size   int32
	Stride int32
	Offset uintptr
}

// Attribs returns the position and texture coordinate pointers for the
// coordinate set in slot.
func Attribs(l quadsphere.Layout, slot int) ([2]Attrib, error) {
	if slot < 0 || slot >= len(l.TexCoordOffsets) {
		return [2]Attrib{}, fmt.Errorf("slot %d: %w", slot, pictype.ErrUnknownProjection)
	}
	return [2]Attrib{
		{PositionAttrib, 3, quadsphere.VertexStride, uintptr(l.VertexOffset)},
		{TexCoordAttrib, 2, quadsphere.TexCoordStride, uintptr(l.TexCoordOffsets[slot])},
	}, nil
}

// Triangles splits each quad into two triangles with the same winding.
func Triangles(quads []uint32) []uint32 {
	tris := make([]uint32, 0, len(quads)/4*6)
	for i := 0; i+3 < len(quads); i += 4 {
		q := quads[i : i+4]
		tris = append(tris, q[0], q[1], q[2], q[0], q[2], q[3])
	}
	return tris
}

// Mesh holds the GL objects for one sphere.
type Mesh struct {
	VAO       uint32
	VBO       uint32
	LineEBO   uint32
	TriEBO    uint32
	Lines     int32 // index count
	Triangles int32 // index count

	layout quadsphere.Layout
	slots  map[string]int
}

// Upload creates the buffers and binds the named projection's coordinates to
// TexCoordAttrib.
func Upload(s *quadsphere.Sphere, projection string) (*Mesh, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}

	m := &Mesh{
		layout: s.Layout(),
		slots:  make(map[string]int),
	}
	for _, info := range s.Projections() {
		m.slots[info.Name] = info.Slot
	}
	slot, ok := m.slots[projection]
	if !ok {
		return nil, fmt.Errorf("%q: %w", projection, pictype.ErrUnknownProjection)
	}

	data := s.DataBlock()
	lines := s.LineIndices()
	tris := Triangles(s.QuadIndices())

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.LineEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.LineEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(lines)*quadsphere.IndexSize, unsafe.Pointer(&lines[0]), gl.STATIC_DRAW)
	m.Lines = int32(len(lines))

	// the triangle buffer stays bound to the VAO
	gl.GenBuffers(1, &m.TriEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.TriEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(tris)*quadsphere.IndexSize, unsafe.Pointer(&tris[0]), gl.STATIC_DRAW)
	m.Triangles = int32(len(tris))

	if err := m.bind(slot); err != nil {
		m.Delete()
		return nil, err
	}
	gl.BindVertexArray(0)
	return m, nil
}

// SelectProjection points TexCoordAttrib at another coordinate set.
func (m *Mesh) SelectProjection(name string) error {
	slot, ok := m.slots[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, pictype.ErrUnknownProjection)
	}
	gl.BindVertexArray(m.VAO)
	defer gl.BindVertexArray(0)
	return m.bind(slot)
}

func (m *Mesh) bind(slot int) error {
	attribs, err := Attribs(m.layout, slot)
	if err != nil {
		return err
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	for _, a := range attribs {
		gl.VertexAttribPointerWithOffset(a.Index, a.Size, gl.FLOAT, false, a.Stride, a.Offset)
		gl.EnableVertexAttribArray(a.Index)
	}
	return nil
}

// Delete releases the GL objects.
func (m *Mesh) Delete() {
	buffers := []uint32{m.VBO, m.LineEBO, m.TriEBO}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	gl.DeleteVertexArrays(1, &m.VAO)
	*m = Mesh{}
}
