package quadsphere

import (
	"github.com/Faultbox/quadsphere/pkg/math"
)

// The wrap seam runs down column half of the top, back and bottom faces,
// pole to pole through the middle of the back face. Each point on it is
// copied into the duplicate area; the original keeps serving the quads to
// its left (+X side) and the copy serves the quads to its right.

type seamPoint struct {
	orig, dup int
}

// seamRun lists the seam points top to bottom, pole centers excluded.
// Points on cube edges appear once per face.
func (g grid) seamRun() []seamPoint {
	run := make([]seamPoint, 0, 2*g.half+g.row)
	dup := g.dupTop()
	for r := 0; r < g.half; r++ {
		run = append(run, seamPoint{g.point(Top, r, g.half), dup})
		dup++
	}
	for r := 0; r <= g.divs; r++ {
		run = append(run, seamPoint{g.point(Back, r, g.half), dup})
		dup++
	}
	for r := g.half + 1; r <= g.divs; r++ {
		run = append(run, seamPoint{g.point(Bottom, r, g.half), dup})
		dup++
	}
	return run
}

// repairSeam fills the duplicate area and redirects the quads right of the
// seam to it. It returns every original/copy pair it created.
func repairSeam(g grid, verts []math.Vec3, quads []uint32, projs []projector, tcs [][]math.Vec2) []Duplicate {
	if g.divs == 1 {
		return copyCubeSeam(g, verts, tcs)
	}

	run := g.seamRun()
	dups := make([]Duplicate, 0, len(run)+2)
	for _, sp := range run {
		verts[sp.dup] = verts[sp.orig]
		for i, p := range projs {
			p.splitSeam(tcs[i], verts, sp)
		}
		dups = append(dups, Duplicate{sp.orig, sp.dup})
	}

	g.repointSeamQuads(quads)
	return append(dups, g.splitPoles(verts, quads, projs, tcs)...)
}

// splitSeam assigns coordinates to a seam point and its copy. Grid
// neighbours orig-1 and orig+1 lie on the left and right of the seam.
func (p projector) splitSeam(tc []math.Vec2, verts []math.Vec3, sp seamPoint) {
	left, right := sp.orig-1, sp.orig+1

	switch p.seam {
	case wrapSeam:
		tc[sp.dup] = math.Vec2{X: edgeValue(tc[right].X, verts[right]), Y: tc[sp.orig].Y}
		tc[sp.orig].X = edgeValue(tc[left].X, verts[left])

	case radialSeam:
		a := anglesOf(verts[sp.orig])
		if a.sinZa < onAxis && a.cosZa < 0 {
			// the antipode maps to the whole rim; pick the part facing each side
			tc[sp.dup] = p.mapDir(a.towards(verts[right]))
			tc[sp.orig] = p.mapDir(a.towards(verts[left]))
			return
		}
		tc[sp.dup] = tc[sp.orig]
	}
}

// edgeValue snaps a neighbour's s to the seam edge on its side. Values
// already flagged out of range keep their sign.
func edgeValue(s float32, neighbor math.Vec3) float32 {
	switch {
	case s < 0 || s > 1:
		return s
	case s < 0.5:
		return 0
	case s > 0.5:
		return 1
	}
	// centre line: behind the viewer, -X lies on the high side
	if neighbor.X < 0 {
		return 1
	}
	return 0
}

// repointSeamQuads moves corners 0 and 1 of the quads right of the seam
// onto the copies. A run's end point touches one such quad corner, inner
// points touch two.
func (g grid) repointSeamQuads(quads []uint32) {
	set := func(f Face, r, corner, v int) {
		quads[4*g.quad(f, r, g.half)+corner] = uint32(v)
	}

	// top: the last quad's lower corner is the pole, handled by splitPoles
	for r := 0; r < g.half; r++ {
		set(Top, r, 0, g.dupTop()+r)
		if r+1 < g.half {
			set(Top, r, 1, g.dupTop()+r+1)
		}
	}
	for r := 0; r < g.divs; r++ {
		set(Back, r, 0, g.dupBack()+r)
		set(Back, r, 1, g.dupBack()+r+1)
	}
	// bottom: the first quad's upper corner is the pole
	for j := 0; j < g.half; j++ {
		r := g.half + j
		if j > 0 {
			set(Bottom, r, 0, g.dupBottom()+j-1)
		}
		set(Bottom, r, 1, g.dupBottom()+j)
	}
}

// splitPoles gives each of the two quads beside the seam at a pole its own
// copy of the pole center. Wrap projections take s from the quad's seam
// neighbour and t from the pole. The pole vertex itself stays on the
// centre line, so the pair reported is the two copies.
func (g grid) splitPoles(verts []math.Vec3, quads []uint32, projs []projector, tcs [][]math.Vec2) []Duplicate {
	c := g.dupCenters()
	top, bottom := g.poles()

	verts[c], verts[c+1] = verts[top], verts[top]
	verts[c+2], verts[c+3] = verts[bottom], verts[bottom]

	topLeft := 4 * g.quad(Top, g.half-1, g.half-1)
	topRight := 4 * g.quad(Top, g.half-1, g.half)
	bottomLeft := 4 * g.quad(Bottom, g.half, g.half-1)
	bottomRight := 4 * g.quad(Bottom, g.half, g.half)

	for i, p := range projs {
		tc := tcs[i]
		tc[c] = p.poleCoord(tc, top, quads[topLeft+3])
		tc[c+1] = p.poleCoord(tc, top, quads[topRight+0])
		tc[c+2] = p.poleCoord(tc, bottom, quads[bottomLeft+2])
		tc[c+3] = p.poleCoord(tc, bottom, quads[bottomRight+1])
	}

	quads[topLeft+2] = uint32(c)
	quads[topRight+1] = uint32(c + 1)
	quads[bottomLeft+3] = uint32(c + 2)
	quads[bottomRight+0] = uint32(c + 3)

	return []Duplicate{{c, c + 1}, {c + 2, c + 3}}
}

func (p projector) poleCoord(tc []math.Vec2, center int, ring uint32) math.Vec2 {
	if p.seam == radialSeam {
		return tc[center]
	}
	return math.Vec2{X: tc[ring].X, Y: tc[center].Y}
}

// copyCubeSeam fills the duplicate slots of the bare cube. With one
// division no vertex lies on the seam, so nothing is repointed; the slots
// hold plain copies of the back face's left column and the top and bottom
// faces' first corners.
func copyCubeSeam(g grid, verts []math.Vec3, tcs [][]math.Vec2) []Duplicate {
	var dups []Duplicate
	dupe := func(orig, dup int) {
		verts[dup] = verts[orig]
		for _, tc := range tcs {
			tc[dup] = tc[orig]
		}
		dups = append(dups, Duplicate{orig, dup})
	}
	for r := 0; r <= g.divs; r++ {
		dupe(g.point(Back, r, 0), g.dupBack()+r)
	}
	c := g.dupCenters()
	top, bottom := g.poles()
	for i, src := range []int{top, top, bottom, bottom} {
		verts[c+i] = verts[src]
		for _, tc := range tcs {
			tc[c+i] = tc[src]
		}
	}
	return append(dups, Duplicate{c, c + 1}, Duplicate{c + 2, c + 3})
}
