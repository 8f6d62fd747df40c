package math

// Vec2 is a 2D texture coordinate (s, t).
type Vec2 struct {
	X, Y float32
}

// InUnit reports whether both components lie in [0, 1].
func (v Vec2) InUnit() bool {
	return v.X >= 0 && v.X <= 1 && v.Y >= 0 && v.Y <= 1
}
