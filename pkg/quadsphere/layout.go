package quadsphere

import (
	"encoding/binary"
	"io"
	gomath "math"

	"github.com/Faultbox/quadsphere/pkg/math"
	"github.com/Faultbox/quadsphere/pkg/pictype"
)

// Element sizes in bytes.
const (
	VertexStride   = 12 // 3 x float32
	TexCoordStride = 8  // 2 x float32
	IndexSize      = 4  // uint32
)

// Layout gives byte offsets and sizes of each array within the contiguous
// block returned by Bytes: vertices, then one coordinate set per projection
// in slot order, then line indices, then quad indices.
type Layout struct {
	VertexOffset int
	VertexSize   int

	TexCoordOffsets []int // by slot
	TexCoordSize    int

	// DataBlockSize covers vertices and all coordinate sets.
	DataBlockSize int

	LineIndexOffset int
	LineIndexSize   int
	QuadIndexOffset int
	QuadIndexSize   int

	TotalSize int
}

// Layout computes the block layout. A failed sphere has an empty layout.
func (s *Sphere) Layout() Layout {
	n := len(s.vertices)
	l := Layout{
		VertexSize:      n * VertexStride,
		TexCoordOffsets: make([]int, len(s.texCoords)),
		TexCoordSize:    n * TexCoordStride,
		LineIndexSize:   len(s.lines) * IndexSize,
		QuadIndexSize:   len(s.quads) * IndexSize,
	}
	for i := range s.texCoords {
		l.TexCoordOffsets[i] = l.VertexSize + i*l.TexCoordSize
	}
	l.DataBlockSize = l.VertexSize + len(s.texCoords)*l.TexCoordSize
	l.LineIndexOffset = l.DataBlockSize
	l.QuadIndexOffset = l.LineIndexOffset + l.LineIndexSize
	l.TotalSize = l.QuadIndexOffset + l.QuadIndexSize
	return l
}

// VertexOffset returns the byte offset of the vertices in the block.
func (s *Sphere) VertexOffset() int {
	return 0
}

// VertexBytes returns the byte size of the vertex array.
func (s *Sphere) VertexBytes() int {
	return len(s.vertices) * VertexStride
}

// TexCoordOffset returns the byte offset of a projection's coordinate set.
func (s *Sphere) TexCoordOffset(name string) (int, bool) {
	if s.catalog == nil {
		return 0, false
	}
	info, ok := s.catalog.Lookup(name)
	if !ok {
		return 0, false
	}
	return s.texCoordOffsetForSlot(info.Slot)
}

// TexCoordOffsetFor returns the byte offset of a picture type's coordinate
// set.
func (s *Sphere) TexCoordOffsetFor(t pictype.Type) (int, bool) {
	if s.catalog == nil {
		return 0, false
	}
	info, ok := s.catalog.LookupType(t)
	if !ok {
		return 0, false
	}
	return s.texCoordOffsetForSlot(info.Slot)
}

func (s *Sphere) texCoordOffsetForSlot(slot int) (int, bool) {
	if slot < 0 || slot >= len(s.texCoords) {
		return 0, false
	}
	return s.VertexBytes() + slot*s.TexCoordBytes(), true
}

// TexCoordBytes returns the byte size of one coordinate set.
func (s *Sphere) TexCoordBytes() int {
	return len(s.vertices) * TexCoordStride
}

// LineIndexOffset returns the byte offset of the line indices.
func (s *Sphere) LineIndexOffset() int {
	return s.Layout().LineIndexOffset
}

// LineIndexBytes returns the byte size of the line indices.
func (s *Sphere) LineIndexBytes() int {
	return len(s.lines) * IndexSize
}

// QuadIndexOffset returns the byte offset of the quad indices.
func (s *Sphere) QuadIndexOffset() int {
	return s.Layout().QuadIndexOffset
}

// QuadIndexBytes returns the byte size of the quad indices.
func (s *Sphere) QuadIndexBytes() int {
	return len(s.quads) * IndexSize
}

// DataBlock encodes the vertices and every coordinate set in native byte
// order, ready to upload as one vertex buffer.
func (s *Sphere) DataBlock() []byte {
	if s.err != nil {
		return nil
	}
	buf := make([]byte, 0, s.Layout().DataBlockSize)
	buf = appendVec3s(buf, s.vertices)
	for _, tc := range s.texCoords {
		buf = appendVec2s(buf, tc)
	}
	return buf
}

// Bytes encodes the whole block: the data block followed by the line and
// quad indices.
func (s *Sphere) Bytes() []byte {
	if s.err != nil {
		return nil
	}
	buf := make([]byte, 0, s.Layout().TotalSize)
	buf = append(buf, s.DataBlock()...)
	buf = appendIndices(buf, s.lines)
	buf = appendIndices(buf, s.quads)
	return buf
}

// WriteTo writes Bytes to w.
func (s *Sphere) WriteTo(w io.Writer) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

func appendVec3s(buf []byte, vs []math.Vec3) []byte {
	for _, v := range vs {
		buf = binary.NativeEndian.AppendUint32(buf, gomath.Float32bits(v.X))
		buf = binary.NativeEndian.AppendUint32(buf, gomath.Float32bits(v.Y))
		buf = binary.NativeEndian.AppendUint32(buf, gomath.Float32bits(v.Z))
	}
	return buf
}

func appendVec2s(buf []byte, vs []math.Vec2) []byte {
	for _, v := range vs {
		buf = binary.NativeEndian.AppendUint32(buf, gomath.Float32bits(v.X))
		buf = binary.NativeEndian.AppendUint32(buf, gomath.Float32bits(v.Y))
	}
	return buf
}

func appendIndices(buf []byte, idx []uint32) []byte {
	for _, i := range idx {
		buf = binary.NativeEndian.AppendUint32(buf, i)
	}
	return buf
}
