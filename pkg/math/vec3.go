// Package math provides the vector types and spherical helpers used to
// tessellate the unit sphere.
package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3D vector stored at GPU precision.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3From converts a double-precision vector to Vec3.
func Vec3From(v mgl64.Vec3) Vec3 {
	return Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Vec64 returns v widened to double precision.
func (v Vec3) Vec64() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// ApproxEqual reports whether every component of v and other differs by at
// most tol.
func (v Vec3) ApproxEqual(other Vec3, tol float32) bool {
	return absf(v.X-other.X) <= tol && absf(v.Y-other.Y) <= tol && absf(v.Z-other.Z) <= tol
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
