// Package uvplot draws a sphere's wireframe in texture space, one image per
// projection, for checking seams and field of view limits by eye.
package uvplot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	gomath "math"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"github.com/Faultbox/quadsphere/pkg/math"
	"github.com/Faultbox/quadsphere/pkg/pictype"
	"github.com/Faultbox/quadsphere/pkg/quadsphere"
)

// Options controls the plot.
type Options struct {
	Size       int     // image edge in pixels
	LineWidth  float32 // in pixels
	Background color.Color
	Line       color.Color
}

// DefaultOptions returns a 1024 pixel plot with dark lines on white.
func DefaultOptions() Options {
	return Options{
		Size:       1024,
		LineWidth:  1,
		Background: color.White,
		Line:       color.RGBA{R: 0x20, G: 0x30, B: 0x80, A: 0xff},
	}
}

// Stats counts the segments of a plot.
type Stats struct {
	Drawn     int
	OutOfView int // an end lies outside the unit square
	Wrapped   int // the segment crosses the wrap seam
}

// Render draws the segments given by line index pairs. Segments with an end
// outside the unit square, or spanning more than half the image
// horizontally, are skipped.
func Render(tc []math.Vec2, lines []uint32, opt Options) (*image.RGBA, Stats) {
	size := opt.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	var st Stats
	r := vector.NewRasterizer(size, size)
	scale := float32(size)
	for i := 0; i+1 < len(lines); i += 2 {
		a, b := tc[lines[i]], tc[lines[i+1]]
		switch {
		case !a.InUnit() || !b.InUnit():
			st.OutOfView++
			continue
		case absf(a.X-b.X) > 0.5:
			st.Wrapped++
			continue
		}
		segment(r, a.X*scale, a.Y*scale, b.X*scale, b.Y*scale, opt.LineWidth)
		st.Drawn++
	}
	r.Draw(img, img.Bounds(), image.NewUniform(opt.Line), image.Point{})
	return img, st
}

// segment adds a segment as a thin rectangle. The corners are always
// emitted with the same orientation so overlapping segments add up.
func segment(r *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(gomath.Sqrt(float64(dx*dx + dy*dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}

// Sphere renders the wireframe of s in the named projection's texture space.
func Sphere(s *quadsphere.Sphere, projection string, opt Options) (*image.RGBA, Stats, error) {
	if err := s.Err(); err != nil {
		return nil, Stats{}, err
	}
	tc, ok := s.TexCoords(projection)
	if !ok {
		return nil, Stats{}, fmt.Errorf("%q: %w", projection, pictype.ErrUnknownProjection)
	}
	img, st := Render(tc, s.LineIndices(), opt)
	return img, st, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to path, creating the directory if needed.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
