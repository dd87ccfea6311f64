package prismesh

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/prismesh/geo"
)

// Tessellator is the narrow contract to the external triangulator: outer
// ring plus hole rings in, a triangle list covering the enclosed area out.
// No quality is assumed beyond non-degenerate triangles over valid input.
type Tessellator interface {
	Triangulate(outer []mgl64.Vec2, holes [][]mgl64.Vec2) (vertices []mgl64.Vec2, triangles [][3]int, err error)
}

// pairScratch holds the per-cap pairing state, pooled across runs
type pairScratch struct {
	used []bool
}

var pairScratchPool = sync.Pool{
	New: func() any { return &pairScratch{} },
}

// genericCap tessellates the footprint minus holes and greedily pairs
// adjacent triangles into quads. For each unpaired triangle the best-scoring
// merge over its three edges is accepted when it is positive and reaches
// MinCapQuadQuality, so degenerate merges are rejected at any threshold;
// ties keep the candidate encountered first in input order, so output only
// depends on the tessellation ordering. Leftover triangles are emitted when
// OutputRejectedCapTriangles is set, otherwise dropped.
func (m *PrismMesher) genericCap(spec capSpec, opts MesherOptions) ([]geo.Quad, []geo.Triangle, error) {
	if m.Tessellator == nil {
		return nil, nil, ErrNilTessellator
	}

	holes := make([][]mgl64.Vec2, len(spec.holes))
	for i, h := range spec.holes {
		holes[i] = h.Vertices
	}

	verts2, tris, err := m.Tessellator.Triangulate(spec.outer.Vertices, holes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidPolygon, err)
	}
	if len(tris) == 0 {
		return nil, nil, nil // zero-area footprint, empty cap
	}

	// Normalize triangle winding to CCW so merged quads stay consistent
	for i, t := range tris {
		a, b, c := verts2[t[0]], verts2[t[1]], verts2[t[2]]
		cross := (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
		if cross < 0 {
			tris[i] = [3]int{t[0], t[2], t[1]}
		}
	}

	// Undirected edge -> triangle indices, in input order
	type edgeKey struct{ a, b int }
	neighbors := make(map[edgeKey][]int, len(tris)*3)
	key := func(a, b int) edgeKey {
		if b < a {
			a, b = b, a
		}
		return edgeKey{a, b}
	}
	for ti, t := range tris {
		for i := 0; i < 3; i++ {
			k := key(t[i], t[(i+1)%3])
			neighbors[k] = append(neighbors[k], ti)
		}
	}

	scratch := pairScratchPool.Get().(*pairScratch)
	defer pairScratchPool.Put(scratch)
	if cap(scratch.used) < len(tris) {
		scratch.used = make([]bool, len(tris))
	}
	used := scratch.used[:len(tris)]
	clear(used)

	lift := func(v mgl64.Vec2) mgl64.Vec3 {
		return mgl64.Vec3{v.X(), v.Y(), spec.z}
	}

	var quads []geo.Quad
	for ti, t := range tris {
		if used[ti] {
			continue
		}

		bestScore := -1.0
		var bestQuad geo.Quad
		bestPartner := -1

		for i := 0; i < 3; i++ {
			ea, eb := t[i], t[(i+1)%3]
			opposite := t[(i+2)%3]

			for _, ni := range neighbors[key(ea, eb)] {
				if ni == ti || used[ni] {
					continue
				}
				d := oppositeVertex(tris[ni], ea, eb)
				if d < 0 {
					continue
				}

				// Quad around both triangles: opposite -> ea -> d -> eb
				candidate := geo.Quad{
					A: lift(verts2[opposite]),
					B: lift(verts2[ea]),
					C: lift(verts2[d]),
					D: lift(verts2[eb]),
				}
				score := QuadQuality(candidate)
				if score > bestScore {
					bestScore = score
					bestQuad = candidate
					bestPartner = ni
				}
			}
		}

		if bestPartner >= 0 && bestScore > 0 && bestScore >= opts.MinCapQuadQuality {
			used[ti] = true
			used[bestPartner] = true
			if !spec.up {
				bestQuad = bestQuad.Reversed()
			}
			quads = append(quads, bestQuad.Scored(bestScore))
		}
	}

	var triangles []geo.Triangle
	if opts.OutputRejectedCapTriangles {
		for ti, t := range tris {
			if used[ti] {
				continue
			}
			tri := geo.Triangle{A: lift(verts2[t[0]]), B: lift(verts2[t[1]]), C: lift(verts2[t[2]])}
			if !spec.up {
				tri = tri.Reversed()
			}
			triangles = append(triangles, tri)
		}
	}

	return quads, triangles, nil
}

// oppositeVertex returns the triangle vertex not on the shared edge, or -1
func oppositeVertex(t [3]int, ea, eb int) int {
	for _, v := range t {
		if v != ea && v != eb {
			return v
		}
	}
	return -1
}
