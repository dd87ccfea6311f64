package geo

import "github.com/go-gl/mathgl/mgl64"

// Quad is a planar quadrilateral with CCW vertex order relative to its
// normal. Quality is nil for faces that are not quality-scored (side faces).
type Quad struct {
	A, B, C, D mgl64.Vec3

	Quality *float64
}

func (q Quad) Vertices() [4]mgl64.Vec3 {
	return [4]mgl64.Vec3{q.A, q.B, q.C, q.D}
}

func (q Quad) Edges() [4]Segment3D {
	return [4]Segment3D{
		{A: q.A, B: q.B},
		{A: q.B, B: q.C},
		{A: q.C, B: q.D},
		{A: q.D, B: q.A},
	}
}

// Reversed flips the winding, keeping the quality score
func (q Quad) Reversed() Quad {
	return Quad{A: q.D, B: q.C, C: q.B, D: q.A, Quality: q.Quality}
}

// Area sums the two triangle halves split along the A-C diagonal
func (q Quad) Area() float64 {
	t1 := Triangle{A: q.A, B: q.B, C: q.C}
	t2 := Triangle{A: q.A, B: q.C, C: q.D}
	return t1.Area() + t2.Area()
}

// Scored returns a copy of the quad carrying the given quality score
func (q Quad) Scored(quality float64) Quad {
	q.Quality = &quality
	return q
}
