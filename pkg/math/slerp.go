package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Slerp returns n+1 points evenly spaced by angle along the great circle arc
// from v0 to v1, both ends included. v0 and v1 must be unit vectors that are
// neither equal nor antipodal. n < 1 yields nil.
func Slerp(v0, v1 mgl64.Vec3, n int) []mgl64.Vec3 {
	if n < 1 {
		return nil
	}
	out := make([]mgl64.Vec3, n+1)
	omega := math.Acos(mgl64.Clamp(v0.Dot(v1), -1, 1))
	sinOmega := math.Sin(omega)
	if sinOmega < 1e-12 {
		for i := range out {
			out[i] = v0
		}
		return out
	}
	for i := 0; i <= n; i++ {
		// i/n rather than i*(1/n) keeps the midpoint exactly 0.5
		t := float64(i) / float64(n)
		a := math.Sin(omega*(1-t)) / sinOmega
		b := math.Sin(omega*t) / sinOmega
		out[i] = v0.Mul(a).Add(v1.Mul(b))
	}
	return out
}
