package prismesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideFacesCount(t *testing.T) {
	// 10x5 rectangle, target 2: 5+3+5+3 = 16 tangential cells
	ring := []mgl64.Vec2{{0, 0}, {10, 0}, {10, 5}, {0, 5}}
	levels := []float64{0, 1, 2}

	quads := sideFaces(ring, levels, 2.0)
	assert.Len(t, quads, 16*2)
}

func TestSideFacesUnscored(t *testing.T) {
	ring := []mgl64.Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	quads := sideFaces(ring, []float64{0, 1}, 1.0)

	require.NotEmpty(t, quads)
	for _, q := range quads {
		assert.Nil(t, q.Quality)
	}
}

func TestSideFacesSpanLevels(t *testing.T) {
	ring := []mgl64.Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	levels := []float64{0, 0.5, 1.7, 3}

	quads := sideFaces(ring, levels, 10)
	require.Len(t, quads, 4*3)

	// Each quad spans exactly one Z cell
	for _, q := range quads {
		assert.Equal(t, q.A.Z(), q.B.Z())
		assert.Equal(t, q.C.Z(), q.D.Z())
		assert.Greater(t, q.C.Z(), q.A.Z())
	}
}

func TestSideFacesWinding(t *testing.T) {
	// CCW unit square, one edge along +X at y=0: outward normal is -Y
	ring := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	quads := sideFaces(ring, []float64{0, 1}, 2.0)
	require.Len(t, quads, 4)

	first := quads[0]
	normal := first.B.Sub(first.A).Cross(first.D.Sub(first.A))
	assert.Negative(t, normal.Y())
	assert.InDelta(t, 0, normal.X(), 1e-12)
	assert.InDelta(t, 0, normal.Z(), 1e-12)

	// CW ring, as hole rings are normalized: the first edge runs along +Y
	// at x=0, so the normal points into the ring interior, +X
	cw := []mgl64.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	walls := sideFaces(cw, []float64{0, 1}, 2.0)
	require.Len(t, walls, 4)
	fn := walls[0].B.Sub(walls[0].A).Cross(walls[0].D.Sub(walls[0].A))
	assert.Positive(t, fn.X())
	assert.InDelta(t, 0, fn.Y(), 1e-12)
}

func TestSideFacesDegenerateInputs(t *testing.T) {
	assert.Nil(t, sideFaces(nil, []float64{0, 1}, 1))
	assert.Nil(t, sideFaces([]mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}}, []float64{0}, 1))
}
