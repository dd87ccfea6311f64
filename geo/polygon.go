package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Minimal absolute signed area below which a ring is considered degenerate
const MinRingArea = 1e-12

var ErrDegenerateRing = errors.New("geo: ring is degenerate")
var ErrSelfIntersecting = errors.New("geo: ring is self-intersecting")

// Polygon2D is a simple closed ring in the XY plane. The last vertex is
// implicitly connected back to the first; it is not repeated.
type Polygon2D struct {
	Vertices []mgl64.Vec2
}

// NewPolygon2D validates and builds a polygon from a vertex ring.
// The input slice is copied; the ring must be simple with non-zero area.
func NewPolygon2D(vertices []mgl64.Vec2) (Polygon2D, error) {
	if len(vertices) < 3 {
		return Polygon2D{}, fmt.Errorf("%w: %d vertices", ErrDegenerateRing, len(vertices))
	}

	ring := make([]mgl64.Vec2, len(vertices))
	copy(ring, vertices)
	p := Polygon2D{Vertices: ring}

	if math.Abs(p.SignedArea()) < MinRingArea {
		return Polygon2D{}, fmt.Errorf("%w: near-zero area", ErrDegenerateRing)
	}
	if p.selfIntersects() {
		return Polygon2D{}, ErrSelfIntersecting
	}

	return p, nil
}

// SignedArea uses the shoelace formula; positive for CCW rings
func (p Polygon2D) SignedArea() float64 {
	area := 0.0
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		area += a.X()*b.Y() - b.X()*a.Y()
	}
	return area / 2
}

func (p Polygon2D) Area() float64 {
	return math.Abs(p.SignedArea())
}

func (p Polygon2D) IsCCW() bool {
	return p.SignedArea() > 0
}

// Reversed returns a copy of the polygon with opposite winding
func (p Polygon2D) Reversed() Polygon2D {
	n := len(p.Vertices)
	ring := make([]mgl64.Vec2, n)
	for i, v := range p.Vertices {
		ring[n-1-i] = v
	}
	return Polygon2D{Vertices: ring}
}

// Oriented returns the polygon wound CCW or CW as requested
func (p Polygon2D) Oriented(ccw bool) Polygon2D {
	if p.IsCCW() == ccw {
		return p
	}
	return p.Reversed()
}

func (p Polygon2D) Bounds() AABB2 {
	return BoundsOf(p.Vertices)
}

// Edges returns the ring's segments in order, closing back to the first vertex
func (p Polygon2D) Edges() []Segment2D {
	n := len(p.Vertices)
	edges := make([]Segment2D, n)
	for i := 0; i < n; i++ {
		edges[i] = Segment2D{A: p.Vertices[i], B: p.Vertices[(i+1)%n]}
	}
	return edges
}

// Contains tests point membership with the crossing-number algorithm.
// A point exactly on an edge or vertex counts as inside, so adjacent
// regions resolved against the same ring never leave gaps.
func (p Polygon2D) Contains(x, y float64) bool {
	pt := mgl64.Vec2{x, y}
	n := len(p.Vertices)

	inside := false
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]

		if (Segment2D{A: a, B: b}).DistanceToPoint(pt) < 1e-12 {
			return true
		}

		if (a.Y() > y) != (b.Y() > y) {
			xCross := a.X() + (y-a.Y())/(b.Y()-a.Y())*(b.X()-a.X())
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// DistanceToBoundary returns the distance from (x, y) to the ring
func (p Polygon2D) DistanceToBoundary(x, y float64) float64 {
	pt := mgl64.Vec2{x, y}
	dist := math.Inf(1)
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		seg := Segment2D{A: p.Vertices[i], B: p.Vertices[(i+1)%n]}
		dist = min(dist, seg.DistanceToPoint(pt))
	}
	return dist
}

// IsAxisAlignedRectangle reports whether the ring is a 4-vertex rectangle
// with edges parallel to the axes, within eps
func (p Polygon2D) IsAxisAlignedRectangle(eps float64) bool {
	if len(p.Vertices) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%4]
		dx := math.Abs(b.X() - a.X())
		dy := math.Abs(b.Y() - a.Y())
		if dx > eps && dy > eps {
			return false
		}
		if dx <= eps && dy <= eps {
			return false // zero-length edge
		}
	}
	return true
}

// selfIntersects runs a brute-force pairwise test over non-adjacent edges
func (p Polygon2D) selfIntersects() bool {
	edges := p.Edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Skip edges sharing an endpoint
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if edges[i].Intersects(edges[j]) {
				return true
			}
		}
	}
	return false
}
