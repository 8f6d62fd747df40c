// Package quadsphere builds a cube-derived tessellation of the unit sphere
// with texture coordinates for several panorama projections, plus quad and
// wireframe line index sequences, laid out for a single GPU upload.
//
// The cube faces are subdivided divs times along each edge and every
// vertex is pushed onto the sphere by spherical interpolation, so each
// face holds a (divs+1)² grid and there are 6·divs² quads in all. Vertices
// that lie on the ±180° meridian behind the viewer, and the two poles, are
// duplicated so projections that unwrap the sphere cylindrically can give
// each side of the seam its own coordinate.
//
// A Sphere is immutable once New returns and may be read from any number of
// goroutines.
package quadsphere

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/quadsphere/pkg/math"
	"github.com/Faultbox/quadsphere/pkg/pictype"
)

// MaxDivisions is the largest resolution New accepts.
const MaxDivisions = 1024

// Construction errors.
var (
	ErrTooLarge          = errors.New("sphere resolution too large")
	ErrMissingProjection = errors.New("catalog lacks a required projection")
	ErrSlotOrder         = errors.New("catalog slots are not contiguous")
)

// Sphere is a tessellated unit sphere with per-projection texture
// coordinates. A Sphere whose construction failed reports the cause from
// Err and returns empty results from every other accessor.
type Sphere struct {
	divs        int
	catalog     pictype.Catalog
	projections []pictype.Info

	vertices  []math.Vec3
	texCoords [][]math.Vec2 // indexed by catalog slot
	quads     []uint32
	lines     []uint32
	dups      []Duplicate

	err error
}

// Duplicate pairs a seam vertex with the copy that carries its coordinates
// for the other side of the seam. At a pole both halves are copies of the
// pole center: Original serves the quad left of the seam and Copy the quad
// to its right.
type Duplicate struct {
	Original int
	Copy     int
}

// Option configures New.
type Option func(*options)

type options struct {
	catalog pictype.Catalog
	log     *zap.Logger
}

// WithCatalog sets the projection catalog. The default is pictype.Default().
func WithCatalog(c pictype.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithLogger sets the logger used to report construction. nil means no
// logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// RoundDivisions returns the resolution New actually uses for divs: odd
// values round up to the next even number, and anything below 2 becomes 1,
// the bare cube.
func RoundDivisions(divs int) int {
	if divs <= 1 {
		return 1
	}
	return 2 * ((divs + 1) / 2)
}

// New builds a sphere with divs subdivisions per cube edge.
// Check Err before using the result.
func New(divs int, opts ...Option) *Sphere {
	o := options{
		catalog: pictype.Default(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	s := &Sphere{
		divs:    RoundDivisions(divs),
		catalog: o.catalog,
	}
	if err := s.build(); err != nil {
		*s = Sphere{divs: s.divs, catalog: s.catalog, err: err}
		o.log.Warn("quadsphere construction failed",
			zap.Int("divisions", divs),
			zap.Error(err),
		)
		return s
	}

	o.log.Debug("quadsphere built",
		zap.Int("divisions", s.divs),
		zap.Int("vertices", len(s.vertices)),
		zap.Int("quads", len(s.quads)/4),
		zap.Int("projections", len(s.projections)),
		zap.Int("bytes", s.Layout().TotalSize),
	)
	return s
}

func (s *Sphere) build() error {
	if s.divs > MaxDivisions {
		return fmt.Errorf("%d divisions (max %d): %w", s.divs, MaxDivisions, ErrTooLarge)
	}
	if s.catalog == nil {
		return fmt.Errorf("nil catalog: %w", ErrMissingProjection)
	}

	projs, err := newProjectors(s.catalog)
	if err != nil {
		return err
	}
	s.projections = make([]pictype.Info, len(projs))
	for i, p := range projs {
		s.projections[i] = p.info
	}

	g := newGrid(s.divs)
	s.vertices = make([]math.Vec3, g.vertexCount())
	buildVertices(g, s.vertices)

	s.quads = buildQuads(g)
	s.lines = buildLines(g, s.quads)

	base := s.vertices[:g.baseCount()]
	s.texCoords = make([][]math.Vec2, len(projs))
	for i, p := range projs {
		s.texCoords[i] = make([]math.Vec2, len(s.vertices))
		for j, v := range base {
			s.texCoords[i][j] = p.mapDir(anglesOf(v))
		}
	}

	s.dups = repairSeam(g, s.vertices, s.quads, projs, s.texCoords)
	return nil
}

// Err returns the construction error, or nil.
func (s *Sphere) Err() error {
	return s.err
}

// Divisions returns the resolution after rounding.
func (s *Sphere) Divisions() int {
	return s.divs
}

// Catalog returns the catalog the sphere was built with.
func (s *Sphere) Catalog() pictype.Catalog {
	return s.catalog
}

// Projections lists the projections with coordinate sets, in slot order.
func (s *Sphere) Projections() []pictype.Info {
	out := make([]pictype.Info, len(s.projections))
	copy(out, s.projections)
	return out
}

// Vertices returns the unit vertex directions. The slice must not be
// modified.
func (s *Sphere) Vertices() []math.Vec3 {
	return s.vertices
}

// VertexCount returns the number of vertices, duplicates included.
func (s *Sphere) VertexCount() int {
	return len(s.vertices)
}

// TexCoords returns the coordinate set for a projection short name.
// ok is false when the name is unknown or the projection has no set.
func (s *Sphere) TexCoords(name string) (tc []math.Vec2, ok bool) {
	if s.catalog == nil {
		return nil, false
	}
	info, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, false
	}
	return s.texCoordsForSlot(info.Slot)
}

// TexCoordsFor returns the coordinate set for a picture type code.
func (s *Sphere) TexCoordsFor(t pictype.Type) (tc []math.Vec2, ok bool) {
	if s.catalog == nil {
		return nil, false
	}
	info, ok := s.catalog.LookupType(t)
	if !ok {
		return nil, false
	}
	return s.texCoordsForSlot(info.Slot)
}

func (s *Sphere) texCoordsForSlot(slot int) ([]math.Vec2, bool) {
	if slot < 0 || slot >= len(s.texCoords) {
		return nil, false
	}
	return s.texCoords[slot], true
}

// QuadIndices returns 4 indices per quad, counter-clockwise seen from the
// centre of the sphere.
func (s *Sphere) QuadIndices() []uint32 {
	return s.quads
}

// QuadIndexCount returns the number of quad indices.
func (s *Sphere) QuadIndexCount() int {
	return len(s.quads)
}

// LineIndices returns index pairs for drawing the wireframe as GL_LINES.
func (s *Sphere) LineIndices() []uint32 {
	return s.lines
}

// LineIndexCount returns the number of line indices.
func (s *Sphere) LineIndexCount() int {
	return len(s.lines)
}

// Duplicates lists every seam and pole duplicate.
func (s *Sphere) Duplicates() []Duplicate {
	out := make([]Duplicate, len(s.dups))
	copy(out, s.dups)
	return out
}

// FaceOf returns the cube face that stores vertex i. ok is false for the
// duplicate vertices that follow the six faces.
func (s *Sphere) FaceOf(i int) (f Face, ok bool) {
	if s.err != nil || i < 0 {
		return 0, false
	}
	g := newGrid(s.divs)
	if i >= g.baseCount() {
		return 0, false
	}
	return Face(i / g.perFace), true
}
