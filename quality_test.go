package prismesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/akmonengine/prismesh/geo"
)

func planarQuad(pts [4][2]float64) geo.Quad {
	return geo.Quad{
		A: mgl64.Vec3{pts[0][0], pts[0][1], 0},
		B: mgl64.Vec3{pts[1][0], pts[1][1], 0},
		C: mgl64.Vec3{pts[2][0], pts[2][1], 0},
		D: mgl64.Vec3{pts[3][0], pts[3][1], 0},
	}
}

func TestQuadQuality(t *testing.T) {
	tests := []struct {
		name string
		quad geo.Quad
		want float64
		tol  float64
	}{
		{
			"unit square",
			planarQuad([4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}),
			1.0, 1e-12,
		},
		{
			"2x1 rectangle",
			planarQuad([4][2]float64{{0, 0}, {2, 0}, {2, 1}, {0, 1}}),
			0.5, 1e-12,
		},
		{
			"collapsed to segment",
			planarQuad([4][2]float64{{0, 0}, {1, 0}, {1, 0}, {0, 0}}),
			0, 0,
		},
		{
			"collinear",
			planarQuad([4][2]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}}),
			0, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, QuadQuality(tt.quad), max(tt.tol, 1e-12))
		})
	}
}

func TestQuadQualityRange(t *testing.T) {
	samples := []geo.Quad{
		planarQuad([4][2]float64{{0, 0}, {3, 0}, {3.5, 0.8}, {0.2, 1.1}}),
		planarQuad([4][2]float64{{0, 0}, {1, 0}, {1.9, 1.4}, {0, 2.5}}),
		planarQuad([4][2]float64{{0, 0}, {10, 0}, {10, 0.1}, {0, 0.1}}),
	}
	for _, q := range samples {
		score := QuadQuality(q)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestQuadQualityPenalizesSkew(t *testing.T) {
	square := planarQuad([4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	skewed := planarQuad([4][2]float64{{0, 0}, {1, 0}, {1.8, 1}, {0.8, 1}})

	assert.Greater(t, QuadQuality(square), QuadQuality(skewed))
}
