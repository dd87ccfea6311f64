package geo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSegment2DDistanceToPoint(t *testing.T) {
	seg := Segment2D{A: mgl64.Vec2{0, 0}, B: mgl64.Vec2{4, 0}}

	tests := []struct {
		name  string
		point mgl64.Vec2
		want  float64
	}{
		{"above middle", mgl64.Vec2{2, 3}, 3},
		{"on segment", mgl64.Vec2{1, 0}, 0},
		{"beyond end", mgl64.Vec2{7, 4}, 5},
		{"before start", mgl64.Vec2{-3, 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, seg.DistanceToPoint(tt.point), 1e-12)
		})
	}
}

func TestSegment2DIntersects(t *testing.T) {
	tests := []struct {
		name string
		s1   Segment2D
		s2   Segment2D
		want bool
	}{
		{
			"crossing",
			Segment2D{A: mgl64.Vec2{0, 0}, B: mgl64.Vec2{2, 2}},
			Segment2D{A: mgl64.Vec2{0, 2}, B: mgl64.Vec2{2, 0}},
			true,
		},
		{
			"parallel",
			Segment2D{A: mgl64.Vec2{0, 0}, B: mgl64.Vec2{2, 0}},
			Segment2D{A: mgl64.Vec2{0, 1}, B: mgl64.Vec2{2, 1}},
			false,
		},
		{
			"touching endpoint",
			Segment2D{A: mgl64.Vec2{0, 0}, B: mgl64.Vec2{1, 1}},
			Segment2D{A: mgl64.Vec2{1, 1}, B: mgl64.Vec2{2, 0}},
			true,
		},
		{
			"disjoint",
			Segment2D{A: mgl64.Vec2{0, 0}, B: mgl64.Vec2{1, 0}},
			Segment2D{A: mgl64.Vec2{3, 3}, B: mgl64.Vec2{4, 4}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s1.Intersects(tt.s2))
			assert.Equal(t, tt.want, tt.s2.Intersects(tt.s1))
		})
	}
}

func TestSegmentLerp(t *testing.T) {
	seg := Segment2D{A: mgl64.Vec2{0, 0}, B: mgl64.Vec2{4, 2}}
	assert.Equal(t, mgl64.Vec2{0, 0}, seg.Lerp(0))
	assert.Equal(t, mgl64.Vec2{4, 2}, seg.Lerp(1))
	assert.Equal(t, mgl64.Vec2{2, 1}, seg.Lerp(0.5))
}

func TestQuadHelpers(t *testing.T) {
	q := Quad{
		A: mgl64.Vec3{0, 0, 0},
		B: mgl64.Vec3{1, 0, 0},
		C: mgl64.Vec3{1, 1, 0},
		D: mgl64.Vec3{0, 1, 0},
	}
	assert.InDelta(t, 1.0, q.Area(), 1e-12)
	assert.Nil(t, q.Quality)

	scored := q.Scored(0.75)
	assert.NotNil(t, scored.Quality)
	assert.InDelta(t, 0.75, *scored.Quality, 1e-12)
	assert.Nil(t, q.Quality) // original untouched

	r := scored.Reversed()
	assert.Equal(t, q.A, r.D)
	assert.Equal(t, q.D, r.A)
	assert.NotNil(t, r.Quality)
}

func TestTriangleArea(t *testing.T) {
	tri := Triangle{A: mgl64.Vec3{0, 0, 0}, B: mgl64.Vec3{2, 0, 0}, C: mgl64.Vec3{0, 2, 0}}
	assert.InDelta(t, 2.0, tri.Area(), 1e-12)

	r := tri.Reversed()
	assert.Equal(t, tri.A, r.C)
	assert.InDelta(t, 2.0, r.Area(), 1e-12)
}
