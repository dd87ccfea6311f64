package geo

import "github.com/go-gl/mathgl/mgl64"

// AABB2 represents a 2D axis-aligned bounding box
type AABB2 struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB2) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Overlaps checks if two AABBs overlap
func (a AABB2) Overlaps(other AABB2) bool {
	// AABBs overlap if they overlap on both axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}

// Extend grows the AABB to include the given point
func (a AABB2) Extend(point mgl64.Vec2) AABB2 {
	return AABB2{
		Min: mgl64.Vec2{min(a.Min.X(), point.X()), min(a.Min.Y(), point.Y())},
		Max: mgl64.Vec2{max(a.Max.X(), point.X()), max(a.Max.Y(), point.Y())},
	}
}

func (a AABB2) Width() float64 {
	return a.Max.X() - a.Min.X()
}

func (a AABB2) Height() float64 {
	return a.Max.Y() - a.Min.Y()
}

// BoundsOf computes the AABB of a set of points. Empty input yields a zero box.
func BoundsOf(points []mgl64.Vec2) AABB2 {
	if len(points) == 0 {
		return AABB2{}
	}
	bounds := AABB2{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		bounds = bounds.Extend(p)
	}
	return bounds
}
