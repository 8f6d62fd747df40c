package quadsphere

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/quadsphere/pkg/math"
)

// Face identifies a cube face by the axis through its center.
// Faces are stored in this order.
type Face int

// Cube faces. +X is to the viewer's left.
const (
	Front  Face = iota // +Z
	Top                // +Y
	Left               // +X
	Back               // -Z
	Bottom             // -Y
	Right              // -X
)

// String returns the face name.
func (f Face) String() string {
	switch f {
	case Front:
		return "front"
	case Top:
		return "top"
	case Left:
		return "left"
	case Back:
		return "back"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// faceMaps carries the front face onto each face. All six are rotations, so
// quads keep their counter-clockwise winding as seen from inside.
var faceMaps = [6]math.AxisMap{
	Front:  math.IdentityMap,
	Top:    {Perm: [3]int{0, 2, 1}, Sign: [3]float32{1, 1, -1}},  // (x, z, -y)
	Left:   {Perm: [3]int{2, 1, 0}, Sign: [3]float32{1, 1, -1}},  // (z, y, -x)
	Back:   {Perm: [3]int{0, 1, 2}, Sign: [3]float32{-1, 1, -1}}, // (-x, y, -z)
	Bottom: {Perm: [3]int{0, 2, 1}, Sign: [3]float32{1, -1, 1}},  // (x, -z, y)
	Right:  {Perm: [3]int{2, 1, 0}, Sign: [3]float32{-1, 1, 1}},  // (-z, y, x)
}

// buildVertices fills the six faces of out. Row 0 of the front face is its
// top edge and column 0 its left (+X) edge.
func buildVertices(g grid, out []math.Vec3) {
	c := gomath.Sqrt(1.0 / 3.0)
	upperLeft := mgl64.Vec3{c, c, c}
	upperRight := mgl64.Vec3{-c, c, c}
	lowerLeft := mgl64.Vec3{c, -c, c}
	lowerRight := mgl64.Vec3{-c, -c, c}

	leftEdge := math.Slerp(upperLeft, lowerLeft, g.divs)
	rightEdge := math.Slerp(upperRight, lowerRight, g.divs)

	front := out[:g.perFace]
	for r := 0; r <= g.divs; r++ {
		for col, p := range math.Slerp(leftEdge[r], rightEdge[r], g.divs) {
			front[r*g.row+col] = math.Vec3From(p)
		}
	}

	for f := Top; f <= Right; f++ {
		m := faceMaps[f]
		base := int(f) * g.perFace
		for i, p := range front {
			out[base+i] = m.Apply(p)
		}
	}
}
