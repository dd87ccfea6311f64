package prismesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/prismesh/geo"
)

// sideFaces emits the vertical wall quads for one closed ring across the
// given Z levels. Each ring edge is subdivided tangentially into
// ceil(length/targetXY) equal cells; one quad is emitted per (XY cell,
// Z cell). Winding follows the ring orientation: a CCW outer ring faces
// outward, a CW hole ring faces into the hole.
//
// Side faces are regular by construction and carry no quality score.
func sideFaces(ring []mgl64.Vec2, levels []float64, targetXY float64) []geo.Quad {
	if len(ring) < 2 || len(levels) < 2 {
		return nil
	}

	quads := make([]geo.Quad, 0, len(ring)*(len(levels)-1))
	n := len(ring)
	for i := 0; i < n; i++ {
		edge := geo.Segment2D{A: ring[i], B: ring[(i+1)%n]}
		length := edge.Length()
		if length <= 0 {
			continue
		}

		steps := int(math.Ceil(length / targetXY))
		if steps < 1 {
			steps = 1
		}

		for s := 0; s < steps; s++ {
			p0 := edge.Lerp(float64(s) / float64(steps))
			p1 := edge.Lerp(float64(s+1) / float64(steps))

			for zi := 0; zi < len(levels)-1; zi++ {
				z0, z1 := levels[zi], levels[zi+1]
				quads = append(quads, geo.Quad{
					A: mgl64.Vec3{p0.X(), p0.Y(), z0},
					B: mgl64.Vec3{p1.X(), p1.Y(), z0},
					C: mgl64.Vec3{p1.X(), p1.Y(), z1},
					D: mgl64.Vec3{p0.X(), p0.Y(), z1},
				})
			}
		}
	}

	return quads
}
