package glupload

import (
	"errors"
	"testing"

	"github.com/Faultbox/quadsphere/pkg/pictype"
	"github.com/Faultbox/quadsphere/pkg/quadsphere"
)

func TestTriangles(t *testing.T) {
	tris := Triangles([]uint32{0, 1, 2, 3, 4, 5, 6, 7})
	want := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	if len(tris) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(tris))
	}
	for i := range want {
		if tris[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, tris[i], want[i])
		}
	}
}

func TestAttribs(t *testing.T) {
	s := quadsphere.New(4)
	l := s.Layout()

	off, _ := s.TexCoordOffset("merc")
	attribs, err := Attribs(l, 5)
	if err != nil {
		t.Fatalf("Attribs failed: %v", err)
	}
	pos, tex := attribs[0], attribs[1]
	if pos.Index != PositionAttrib || pos.Size != 3 || pos.Stride != 12 || pos.Offset != 0 {
		t.Errorf("unexpected position attribute %+v", pos)
	}
	if tex.Index != TexCoordAttrib || tex.Size != 2 || tex.Stride != 8 || tex.Offset != uintptr(off) {
		t.Errorf("unexpected texcoord attribute %+v, merc at %d", tex, off)
	}

	if _, err := Attribs(l, 7); !errors.Is(err, pictype.ErrUnknownProjection) {
		t.Errorf("expected ErrUnknownProjection, got %v", err)
	}
}
