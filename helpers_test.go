package prismesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/akmonengine/prismesh/geo"
)

func mustPolygon(t *testing.T, ring []mgl64.Vec2) geo.Polygon2D {
	t.Helper()
	p, err := geo.NewPolygon2D(ring)
	require.NoError(t, err)
	return p
}

func rectPolygon(t *testing.T, minX, minY, maxX, maxY float64) geo.Polygon2D {
	t.Helper()
	return mustPolygon(t, []mgl64.Vec2{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}})
}

func mustOptions(t *testing.T, b *OptionsBuilder) MesherOptions {
	t.Helper()
	opts, err := b.Build()
	require.NoError(t, err)
	return opts
}

// stubTessellator feeds a fixed triangulation to the generic cap path so
// pairing tests do not depend on the external tessellator
type stubTessellator struct {
	vertices  []mgl64.Vec2
	triangles [][3]int
	err       error
}

func (s stubTessellator) Triangulate(outer []mgl64.Vec2, holes [][]mgl64.Vec2) ([]mgl64.Vec2, [][3]int, error) {
	return s.vertices, s.triangles, s.err
}

// unit square split along the 0-2 diagonal
func unitSquareTess() stubTessellator {
	return stubTessellator{
		vertices:  []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

// L-shape fanned from the origin; every pairing is a poor quad
func lShapeTess() stubTessellator {
	return stubTessellator{
		vertices:  []mgl64.Vec2{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}},
		triangles: [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}},
	}
}

func lShapeRing() []mgl64.Vec2 {
	return []mgl64.Vec2{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}
}
