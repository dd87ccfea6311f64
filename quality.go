package prismesh

import (
	"math"

	"github.com/akmonengine/prismesh/geo"
)

// Area below which a quad is degenerate and scores zero outright
const degenerateQuadArea = 1e-12

// QuadQuality scores a candidate quad in [0,1] as aspect × orthogonality.
// Aspect is min/max edge length; orthogonality averages, over the four
// corners, how close each interior angle is to 90°. A square scores 1.0;
// slivers and collapsed quads score 0.
func QuadQuality(q geo.Quad) float64 {
	if q.Area() < degenerateQuadArea {
		return 0
	}

	minLen, maxLen := math.Inf(1), 0.0
	for _, e := range q.Edges() {
		l := e.Length()
		if l < degenerateQuadArea {
			return 0 // coincident vertices
		}
		minLen = min(minLen, l)
		maxLen = max(maxLen, l)
	}
	aspect := minLen / maxLen

	verts := q.Vertices()
	ortho := 0.0
	for i := 0; i < 4; i++ {
		prev := verts[(i+3)%4]
		cur := verts[i]
		next := verts[(i+1)%4]

		u := prev.Sub(cur)
		w := next.Sub(cur)
		cos := u.Dot(w) / (u.Len() * w.Len())
		cos = max(-1, min(1, cos))
		angle := math.Acos(cos) * 180 / math.Pi

		ortho += max(0, 1-math.Abs(angle-90)/90)
	}
	ortho /= 4

	return aspect * ortho
}
