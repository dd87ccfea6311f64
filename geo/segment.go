package geo

import "github.com/go-gl/mathgl/mgl64"

// Segment2D is a straight segment between two points in the XY plane
type Segment2D struct {
	A mgl64.Vec2
	B mgl64.Vec2
}

func (s Segment2D) Length() float64 {
	return s.B.Sub(s.A).Len()
}

// Lerp returns the point at parameter t along the segment, t in [0,1]
func (s Segment2D) Lerp(t float64) mgl64.Vec2 {
	return s.A.Add(s.B.Sub(s.A).Mul(t))
}

// DistanceToPoint returns the distance from p to the closest point on the segment
func (s Segment2D) DistanceToPoint(p mgl64.Vec2) float64 {
	d := s.B.Sub(s.A)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return p.Sub(s.A).Len()
	}
	t := p.Sub(s.A).Dot(d) / lenSq
	t = max(0, min(1, t))
	closest := s.A.Add(d.Mul(t))
	return p.Sub(closest).Len()
}

// Intersects reports whether the two segments cross or touch
func (s Segment2D) Intersects(other Segment2D) bool {
	d1 := orient(other.A, other.B, s.A)
	d2 := orient(other.A, other.B, s.B)
	d3 := orient(s.A, s.B, other.A)
	d4 := orient(s.A, s.B, other.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear touching cases
	if d1 == 0 && onSegment(other.A, other.B, s.A) {
		return true
	}
	if d2 == 0 && onSegment(other.A, other.B, s.B) {
		return true
	}
	if d3 == 0 && onSegment(s.A, s.B, other.A) {
		return true
	}
	if d4 == 0 && onSegment(s.A, s.B, other.B) {
		return true
	}

	return false
}

// orient returns the signed area of the triangle (a, b, c), doubled
func orient(a, b, c mgl64.Vec2) float64 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

// onSegment assumes p is collinear with (a, b) and checks it lies between them
func onSegment(a, b, p mgl64.Vec2) bool {
	return p.X() >= min(a.X(), b.X()) && p.X() <= max(a.X(), b.X()) &&
		p.Y() >= min(a.Y(), b.Y()) && p.Y() <= max(a.Y(), b.Y())
}

// Segment3D is a straight segment between two points in space
type Segment3D struct {
	A mgl64.Vec3
	B mgl64.Vec3
}

func (s Segment3D) Length() float64 {
	return s.B.Sub(s.A).Len()
}
