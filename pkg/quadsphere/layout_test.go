package quadsphere

import (
	"bytes"
	"encoding/binary"
	gomath "math"
	"testing"

	"github.com/Faultbox/quadsphere/pkg/pictype"
)

func readFloat(b []byte, off int) float32 {
	return gomath.Float32frombits(binary.NativeEndian.Uint32(b[off:]))
}

func TestLayout(t *testing.T) {
	s := mustNew(t, 4)
	l := s.Layout()
	n := s.VertexCount()

	if l.VertexOffset != 0 || l.VertexSize != 12*n {
		t.Errorf("vertex region %d+%d", l.VertexOffset, l.VertexSize)
	}
	if len(l.TexCoordOffsets) != 7 {
		t.Fatalf("expected 7 coordinate sets, got %d", len(l.TexCoordOffsets))
	}
	if l.DataBlockSize != 17*4*n {
		t.Errorf("data block is %d bytes, want %d", l.DataBlockSize, 17*4*n)
	}
	if l.TotalSize != l.DataBlockSize+2*4*s.QuadIndexCount() {
		t.Errorf("total size %d", l.TotalSize)
	}

	if off, _ := s.TexCoordOffset("equi"); off != s.VertexBytes()+2*s.TexCoordBytes() {
		t.Errorf("equi offset %d", off)
	}
	if off, _ := s.TexCoordOffsetFor(pictype.Stereographic); off != l.TexCoordOffsets[6] {
		t.Errorf("ster offset %d, layout says %d", off, l.TexCoordOffsets[6])
	}
	if s.LineIndexOffset() != l.DataBlockSize || s.QuadIndexOffset() != l.DataBlockSize+s.LineIndexBytes() {
		t.Errorf("index offsets %d, %d", s.LineIndexOffset(), s.QuadIndexOffset())
	}
	if _, ok := s.TexCoordOffsetFor(pictype.Cubic); ok {
		t.Error("Cubic should have no offset")
	}
}

func TestBytesMatchLayout(t *testing.T) {
	s := mustNew(t, 4)
	l := s.Layout()
	b := s.Bytes()
	if len(b) != l.TotalSize {
		t.Fatalf("Bytes is %d long, layout says %d", len(b), l.TotalSize)
	}
	if !bytes.Equal(b[:l.DataBlockSize], s.DataBlock()) {
		t.Error("Bytes does not start with the data block")
	}

	for _, i := range []int{0, 17, s.VertexCount() - 1} {
		v := s.Vertices()[i]
		off := l.VertexOffset + i*VertexStride
		if readFloat(b, off) != v.X || readFloat(b, off+4) != v.Y || readFloat(b, off+8) != v.Z {
			t.Errorf("vertex %d does not match its bytes", i)
		}
	}

	sphr, _ := s.TexCoords("sphr")
	slot := 4
	for _, i := range []int{3, s.VertexCount() - 2} {
		off := l.TexCoordOffsets[slot] + i*TexCoordStride
		if readFloat(b, off) != sphr[i].X || readFloat(b, off+4) != sphr[i].Y {
			t.Errorf("sphr coordinate %d does not match its bytes", i)
		}
	}

	for _, i := range []int{0, 10, s.QuadIndexCount() - 1} {
		if got := binary.NativeEndian.Uint32(b[l.QuadIndexOffset+4*i:]); got != s.QuadIndices()[i] {
			t.Errorf("quad index %d = %d in bytes, want %d", i, got, s.QuadIndices()[i])
		}
		if got := binary.NativeEndian.Uint32(b[l.LineIndexOffset+4*i:]); got != s.LineIndices()[i] {
			t.Errorf("line index %d = %d in bytes, want %d", i, got, s.LineIndices()[i])
		}
	}
}

func TestWriteTo(t *testing.T) {
	s := mustNew(t, 2)
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if int(n) != s.Layout().TotalSize || !bytes.Equal(buf.Bytes(), s.Bytes()) {
		t.Errorf("wrote %d bytes, want %d", n, s.Layout().TotalSize)
	}
}
