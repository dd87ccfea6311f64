// Package tess adapts the libtess2 tessellator to the mesher's contract:
// outer ring plus hole rings in, an indexed triangle list out. Hole
// subtraction relies on even-odd winding, so ring orientation does not
// matter as long as holes lie inside the outer ring.
package tess

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	libtess2 "github.com/hajimehoshi/go-libtess2"
)

// libtess2 works in float32; returned vertices close to an input vertex
// snap back onto its exact coordinates, so cap boundaries merge with
// side-face vertices during indexing. The float32 round-trip error is
// relative, so the snap tolerance scales with the coordinate magnitude.
const snapToleranceScale = 1e-4

type Triangulator struct{}

func NewTriangulator() *Triangulator {
	return &Triangulator{}
}

// Triangulate covers the outer ring minus the holes with triangles.
// A zero-area input yields an empty triangle list, not an error.
func (tr *Triangulator) Triangulate(outer []mgl64.Vec2, holes [][]mgl64.Vec2) ([]mgl64.Vec2, [][3]int, error) {
	contours := make([]libtess2.Contour, 0, 1+len(holes))
	contours = append(contours, toContour(outer))
	for _, hole := range holes {
		contours = append(contours, toContour(hole))
	}

	elements, verts, err := libtess2.Tesselate(contours, libtess2.WindingRuleOdd)
	if err != nil {
		return nil, nil, err
	}

	inputs := make([]mgl64.Vec2, 0, len(outer)+len(holes)*4)
	inputs = append(inputs, outer...)
	for _, hole := range holes {
		inputs = append(inputs, hole...)
	}

	tol := snapToleranceScale
	for _, in := range inputs {
		tol = max(tol, snapToleranceScale*math.Abs(in.X()), snapToleranceScale*math.Abs(in.Y()))
	}

	vertices := make([]mgl64.Vec2, len(verts))
	for i, v := range verts {
		vertices[i] = snap(mgl64.Vec2{float64(v.X), float64(v.Y)}, inputs, tol)
	}

	triangles := make([][3]int, 0, len(elements)/3)
	for i := 0; i+2 < len(elements); i += 3 {
		a, b, c := elements[i], elements[i+1], elements[i+2]
		if !validIndex(a, len(verts)) || !validIndex(b, len(verts)) || !validIndex(c, len(verts)) {
			continue // TESS_UNDEF padding on partial polygons
		}
		triangles = append(triangles, [3]int{a, b, c})
	}

	return vertices, triangles, nil
}

func toContour(ring []mgl64.Vec2) libtess2.Contour {
	contour := make(libtess2.Contour, len(ring))
	for i, v := range ring {
		contour[i] = libtess2.Vertex{X: float32(v.X()), Y: float32(v.Y())}
	}
	return contour
}

// snap replaces a vertex with the nearest input vertex within tol,
// recovering the exact coordinates it came from
func snap(v mgl64.Vec2, inputs []mgl64.Vec2, tol float64) mgl64.Vec2 {
	best := v
	for _, in := range inputs {
		if d := v.Sub(in).Len(); d <= tol {
			best, tol = in, d
		}
	}
	return best
}

func validIndex(i, count int) bool {
	return i >= 0 && i < count
}
