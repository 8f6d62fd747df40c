package quadsphere

import (
	"testing"

	"github.com/Faultbox/quadsphere/pkg/math"
	"github.com/Faultbox/quadsphere/pkg/pictype"
)

func absDiff(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestDuplicatesCoincide(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8} {
		s := mustNew(t, n)
		dups := s.Duplicates()
		g := newGrid(s.Divisions())
		// each pole's two copies form one pair
		if want := g.vertexCount() - g.baseCount() - 2; len(dups) != want {
			t.Errorf("n=%d: expected %d duplicates, got %d", n, want, len(dups))
		}
		verts := s.Vertices()
		for _, d := range dups {
			if d.Copy < g.baseCount() {
				t.Errorf("n=%d: copy %d lies inside the faces", n, d.Copy)
			}
			if verts[d.Original] != verts[d.Copy] {
				t.Errorf("n=%d: vertex %d and copy %d differ", n, d.Original, d.Copy)
			}
		}
	}
}

func TestSeamSplitsEquirect(t *testing.T) {
	for _, n := range []int{2, 4, 6} {
		s := mustNew(t, n)
		tc, _ := s.TexCoords("equi")
		c := newGrid(s.Divisions()).dupCenters()
		for _, d := range s.Duplicates() {
			if got := absDiff(tc[d.Original].X, tc[d.Copy].X); got != 1 {
				t.Errorf("n=%d: s of %d and %d differ by %v, want 1", n, d.Original, d.Copy, got)
			}
			if tc[d.Original].Y != tc[d.Copy].Y {
				t.Errorf("n=%d: t of %d and %d differ", n, d.Original, d.Copy)
			}
		}

		// the two copies of each pole sit on opposite edges
		if absDiff(tc[c].X, tc[c+1].X) != 1 || absDiff(tc[c+2].X, tc[c+3].X) != 1 {
			t.Errorf("n=%d: pole copies do not straddle the seam", n)
		}
	}
}

func TestDuplicatePairsSpanSeam(t *testing.T) {
	for _, n := range []int{2, 4, 6} {
		s := mustNew(t, n)
		var sets [][]math.Vec2
		for _, info := range s.Projections() {
			tc, _ := s.TexCoords(info.Name)
			sets = append(sets, tc)
		}
		for _, d := range s.Duplicates() {
			var span float32
			for _, tc := range sets {
				span = max(span, absDiff(tc[d.Original].X, tc[d.Copy].X))
			}
			if span < 1 {
				t.Errorf("n=%d: pair %d/%d spans at most %v in s", n, d.Original, d.Copy, span)
			}
		}
	}
}

func TestQuadsDoNotStraddleSeam(t *testing.T) {
	for _, n := range []int{2, 4, 6, 8} {
		s := mustNew(t, n)
		for _, name := range []string{"equi", "cyli", "merc"} {
			tc, _ := s.TexCoords(name)
			quads := s.QuadIndices()
			for q := 0; q < len(quads)/4; q++ {
				lo, hi := float32(2), float32(-1)
				valid := true
				for _, idx := range quads[4*q : 4*q+4] {
					v := tc[idx]
					if !v.InUnit() {
						valid = false
					}
					lo = min(lo, v.X)
					hi = max(hi, v.X)
				}
				if valid && hi-lo >= 0.5 {
					t.Errorf("n=%d %s: quad %d spans s %v..%v", n, name, q, lo, hi)
				}
			}
		}
	}
}

func TestPoleSplit(t *testing.T) {
	for _, n := range []int{2, 4, 6} {
		s := mustNew(t, n)
		g := newGrid(s.Divisions())
		refs := make(map[uint32]int)
		for _, idx := range s.QuadIndices() {
			refs[idx]++
		}

		top := uint32(g.point(Top, g.half, g.half))
		bottom := uint32(g.point(Bottom, g.half, g.half))
		if refs[top] != 2 || refs[bottom] != 2 {
			t.Errorf("n=%d: pole originals used by %d and %d quads, want 2", n, refs[top], refs[bottom])
		}
		c := uint32(g.dupCenters())
		for i := c; i < c+4; i++ {
			if refs[i] != 1 {
				t.Errorf("n=%d: pole copy %d used by %d quads, want 1", n, i, refs[i])
			}
		}
	}
}

func TestSeamOriginalsKeepLeftQuads(t *testing.T) {
	s := mustNew(t, 4)
	g := newGrid(s.Divisions())
	refs := make(map[uint32]int)
	for _, idx := range s.QuadIndices() {
		refs[idx]++
	}
	// an interior back-face seam point touches two quads on each side
	for r := 1; r < g.divs; r++ {
		orig := uint32(g.point(Back, r, g.half))
		dup := uint32(g.dupBack() + r)
		if refs[orig] != 2 || refs[dup] != 2 {
			t.Errorf("row %d: original used %d times, copy %d times", r, refs[orig], refs[dup])
		}
	}
}

func TestAntipodeOnRim(t *testing.T) {
	s := mustNew(t, 4)
	g := newGrid(s.Divisions())
	orig := g.point(Back, g.half, g.half)
	dup := g.dupBack() + g.half

	for _, typ := range []pictype.Type{pictype.Fisheye, pictype.Equiangular, pictype.Stereographic} {
		tc, _ := s.TexCoordsFor(typ)
		if d := absDiff(tc[orig].X, tc[dup].X); d <= 0.99 {
			t.Errorf("%v: antipode sides differ by %v, expected opposite rim points", typ, d)
		}
		if tc[orig].InUnit() && absDiff(tc[orig].Y, 0.5) > 1e-5 {
			t.Errorf("%v: antipode t = %v, want 0.5", typ, tc[orig].Y)
		}
	}
}

func TestRadialSeamCopies(t *testing.T) {
	s := mustNew(t, 4)
	g := newGrid(s.Divisions())
	antipode := g.point(Back, g.half, g.half)
	tc, _ := s.TexCoords("fish")
	for _, d := range s.Duplicates() {
		if d.Original == antipode {
			continue
		}
		if tc[d.Original] != tc[d.Copy] {
			t.Errorf("fish coordinates of %d and copy %d differ", d.Original, d.Copy)
		}
	}
}

func TestEdgeValue(t *testing.T) {
	tests := []struct {
		name     string
		s        float32
		neighbor math.Vec3
		want     float32
	}{
		{"low", 0.1, math.Vec3{X: 1}, 0},
		{"high", 0.9, math.Vec3{X: -1}, 1},
		{"marked low", lowMark, math.Vec3{}, lowMark},
		{"marked high", highMark, math.Vec3{}, highMark},
		{"centre -X", 0.5, math.Vec3{X: -0.1, Z: -1}, 1},
		{"centre +X", 0.5, math.Vec3{X: 0.1, Z: -1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := edgeValue(tt.s, tt.neighbor); got != tt.want {
				t.Errorf("edgeValue(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestBareCubeNotRepointed(t *testing.T) {
	s := mustNew(t, 1)
	g := newGrid(1)
	for i, idx := range s.QuadIndices() {
		if int(idx) >= g.baseCount() {
			t.Errorf("quad index %d points at duplicate %d", i, idx)
		}
	}
}
