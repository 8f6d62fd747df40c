package quadsphere

// grid addresses vertices and quads in the uniform face layout: six
// (divs+1)² row-major faces, then the top, back and bottom seam duplicates,
// then four pole-center duplicates.
type grid struct {
	divs         int
	half         int // column of the seam meridian
	row          int // points per row
	perFace      int
	quadsPerFace int
}

func newGrid(divs int) grid {
	return grid{
		divs:         divs,
		half:         divs / 2,
		row:          divs + 1,
		perFace:      (divs + 1) * (divs + 1),
		quadsPerFace: divs * divs,
	}
}

func (g grid) point(f Face, r, c int) int {
	return int(f)*g.perFace + r*g.row + c
}

// quad returns the number of the quad whose upper-left corner is point
// (r, c) of face f. Its indices start at 4 times that.
func (g grid) quad(f Face, r, c int) int {
	return int(f)*g.quadsPerFace + r*g.divs + c
}

func (g grid) baseCount() int {
	return 6 * g.perFace
}

func (g grid) dupTop() int {
	return g.baseCount()
}

func (g grid) dupBack() int {
	return g.dupTop() + g.half
}

func (g grid) dupBottom() int {
	return g.dupBack() + g.row
}

func (g grid) dupCenters() int {
	return g.dupBottom() + g.half
}

func (g grid) vertexCount() int {
	return g.dupCenters() + 4
}

func (g grid) indexCount() int {
	return 24 * g.quadsPerFace
}

// poles returns the vertices the pole-center duplicates copy. The bare
// cube has no pole vertex and uses a corner instead.
func (g grid) poles() (top, bottom int) {
	if g.divs == 1 {
		return g.point(Top, 0, 0), g.point(Bottom, 0, 0)
	}
	return g.point(Top, g.half, g.half), g.point(Bottom, g.half, g.half)
}
