package math

// AxisMap is a signed axis permutation: component i of the result is
// Sign[i] times component Perm[i] of the input. The 24 proper rotations of
// the cube are all AxisMaps with Det() == 1.
type AxisMap struct {
	Perm [3]int
	Sign [3]float32
}

// IdentityMap leaves vectors unchanged.
var IdentityMap = AxisMap{Perm: [3]int{0, 1, 2}, Sign: [3]float32{1, 1, 1}}

// Apply maps v.
func (m AxisMap) Apply(v Vec3) Vec3 {
	in := [3]float32{v.X, v.Y, v.Z}
	return Vec3{
		m.Sign[0] * in[m.Perm[0]],
		m.Sign[1] * in[m.Perm[1]],
		m.Sign[2] * in[m.Perm[2]],
	}
}

// Det returns the determinant of the map's matrix: +1 for rotations, -1 for
// reflections.
func (m AxisMap) Det() float32 {
	d := m.Sign[0] * m.Sign[1] * m.Sign[2]
	// parity of the permutation
	p := m.Perm
	inv := 0
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if p[i] > p[j] {
				inv++
			}
		}
	}
	if inv%2 == 1 {
		d = -d
	}
	return d
}
