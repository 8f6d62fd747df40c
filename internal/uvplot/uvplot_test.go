package uvplot

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/Faultbox/quadsphere/pkg/math"
	"github.com/Faultbox/quadsphere/pkg/pictype"
	"github.com/Faultbox/quadsphere/pkg/quadsphere"
)

func TestRenderSkipsSegments(t *testing.T) {
	tc := []math.Vec2{
		{X: 0.1, Y: 0.5},
		{X: 0.4, Y: 0.5},
		{X: 0.95, Y: 0.2},
		{X: -0.01, Y: 0.3},
	}
	lines := []uint32{
		0, 1, // drawn
		0, 2, // wraps
		1, 3, // out of view
	}
	opt := DefaultOptions()
	opt.Size = 64
	img, st := Render(tc, lines, opt)

	if st != (Stats{Drawn: 1, OutOfView: 1, Wrapped: 1}) {
		t.Errorf("unexpected stats %+v", st)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	// on the drawn segment
	if c := img.RGBAAt(16, 32); c == (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Error("expected line colour on the drawn segment")
	}
	// far from every segment
	if c := img.RGBAAt(50, 5); c != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("expected background, got %v", c)
	}
}

func TestSphere(t *testing.T) {
	s := quadsphere.New(8)
	opt := DefaultOptions()
	opt.Size = 128

	img, st, err := Sphere(s, "equi", opt)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}
	if st.Drawn == 0 || st.OutOfView != 0 {
		t.Errorf("unexpected equirect stats %+v", st)
	}
	if st.Drawn+st.Wrapped != s.LineIndexCount()/2 {
		t.Errorf("%d segments accounted for, want %d", st.Drawn+st.Wrapped, s.LineIndexCount()/2)
	}

	path := filepath.Join(t.TempDir(), "plots", "equi.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v", decoded.Bounds())
	}

	_, st, err = Sphere(s, "rect", opt)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}
	if st.OutOfView == 0 {
		t.Error("rectilinear plot should skip segments behind the viewer")
	}
}

func TestSphereErrors(t *testing.T) {
	if _, _, err := Sphere(quadsphere.New(4), "cube", DefaultOptions()); !errors.Is(err, pictype.ErrUnknownProjection) {
		t.Errorf("expected ErrUnknownProjection, got %v", err)
	}
	failed := quadsphere.New(quadsphere.MaxDivisions + 1)
	if _, _, err := Sphere(failed, "equi", DefaultOptions()); !errors.Is(err, quadsphere.ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}
