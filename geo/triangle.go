package geo

import "github.com/go-gl/mathgl/mgl64"

// Triangle with CCW vertex order relative to its normal
type Triangle struct {
	A, B, C mgl64.Vec3
}

func (t Triangle) Vertices() [3]mgl64.Vec3 {
	return [3]mgl64.Vec3{t.A, t.B, t.C}
}

func (t Triangle) Area() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Len() / 2
}

// Reversed flips the winding
func (t Triangle) Reversed() Triangle {
	return Triangle{A: t.C, B: t.B, C: t.A}
}
