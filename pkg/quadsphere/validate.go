package quadsphere

import (
	"errors"
	"fmt"
)

// ErrInvalidMesh is returned by Validate when an invariant does not hold.
var ErrInvalidMesh = errors.New("invalid sphere mesh")

// unitTolerance bounds how far a stored vertex may be from unit length.
const unitTolerance = 1e-5

// Validate checks the mesh invariants: expected array sizes, every index in
// range, unit-length vertices, duplicates coincident with their originals
// and pole copies coincident with their pole. It returns the construction
// error for a failed sphere.
func (s *Sphere) Validate() error {
	if s.err != nil {
		return s.err
	}

	g := newGrid(s.divs)
	if len(s.vertices) != g.vertexCount() {
		return fmt.Errorf("%d vertices, expected %d: %w", len(s.vertices), g.vertexCount(), ErrInvalidMesh)
	}
	if len(s.quads) != g.indexCount() || len(s.lines) != g.indexCount() {
		return fmt.Errorf("%d quad / %d line indices, expected %d: %w",
			len(s.quads), len(s.lines), g.indexCount(), ErrInvalidMesh)
	}
	for slot, tc := range s.texCoords {
		if len(tc) != len(s.vertices) {
			return fmt.Errorf("coordinate set %d has %d entries: %w", slot, len(tc), ErrInvalidMesh)
		}
	}

	n := uint32(len(s.vertices))
	for i, idx := range s.quads {
		if idx >= n {
			return fmt.Errorf("quad index %d = %d out of range: %w", i, idx, ErrInvalidMesh)
		}
	}
	for i, idx := range s.lines {
		if idx >= n {
			return fmt.Errorf("line index %d = %d out of range: %w", i, idx, ErrInvalidMesh)
		}
	}

	for i, v := range s.vertices {
		if l := v.Length(); l < 1-unitTolerance || l > 1+unitTolerance {
			return fmt.Errorf("vertex %d has length %v: %w", i, l, ErrInvalidMesh)
		}
	}

	c := g.dupCenters()
	top, bottom := g.poles()
	for i, src := range []int{top, top, bottom, bottom} {
		if s.vertices[c+i] != s.vertices[src] {
			return fmt.Errorf("pole copy %d does not match vertex %d: %w", c+i, src, ErrInvalidMesh)
		}
	}

	for _, d := range s.dups {
		if s.vertices[d.Original] != s.vertices[d.Copy] {
			return fmt.Errorf("duplicate %d does not match vertex %d: %w", d.Copy, d.Original, ErrInvalidMesh)
		}
	}
	return nil
}
