package prismesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/prismesh/geo"
)

func vec2(x, y float64) mgl64.Vec2 {
	return mgl64.Vec2{x, y}
}

// ============================================================================
// Types
// ============================================================================

type cellState uint8

const (
	cellOutside cellState = iota
	cellInside
	cellBoundary // requires the exact point-in-polygon test
)

// PolyGrid - uniform grid accelerating point-in-polygon tests over a
// footprint with holes. Cells fully inside or outside answer in O(1);
// boundary cells fall back to the exact crossing-number test.
type PolyGrid struct {
	outer geo.Polygon2D
	holes []geo.Polygon2D

	origin   [2]float64
	cellSize float64
	nx, ny   int
	cells    []cellState
}

// ============================================================================
// Constructor
// ============================================================================

// NewPolyGrid builds the index over the footprint bounds. cellSize must be
// > 0; it is clamped so the grid never exceeds maxPolyGridCells cells.
func NewPolyGrid(outer geo.Polygon2D, holes []geo.Polygon2D, cellSize float64) *PolyGrid {
	bounds := outer.Bounds()
	w, h := bounds.Width(), bounds.Height()

	const maxPolyGridCells = 1 << 20
	for int(math.Ceil(w/cellSize))*int(math.Ceil(h/cellSize)) > maxPolyGridCells {
		cellSize *= 2
	}

	nx := max(1, int(math.Ceil(w/cellSize)))
	ny := max(1, int(math.Ceil(h/cellSize)))

	pg := &PolyGrid{
		outer:    outer,
		holes:    holes,
		origin:   [2]float64{bounds.Min.X(), bounds.Min.Y()},
		cellSize: cellSize,
		nx:       nx,
		ny:       ny,
		cells:    make([]cellState, nx*ny),
	}
	pg.classifyCells()
	return pg
}

// classifyCells caches, per cell, whether it is fully inside, fully
// outside, or crossed by a ring edge
func (pg *PolyGrid) classifyCells() {
	rings := make([]geo.Polygon2D, 0, len(pg.holes)+1)
	rings = append(rings, pg.outer)
	rings = append(rings, pg.holes...)

	for cy := 0; cy < pg.ny; cy++ {
		for cx := 0; cx < pg.nx; cx++ {
			minX := pg.origin[0] + float64(cx)*pg.cellSize
			minY := pg.origin[1] + float64(cy)*pg.cellSize
			maxX := minX + pg.cellSize
			maxY := minY + pg.cellSize

			state := cellOutside
			if pg.exactTest(minX+pg.cellSize/2, minY+pg.cellSize/2) {
				state = cellInside
			}
			for _, ring := range rings {
				if ringCrossesRect(ring, minX, minY, maxX, maxY) {
					state = cellBoundary
					break
				}
			}
			pg.cells[cy*pg.nx+cx] = state
		}
	}
}

// ============================================================================
// Queries
// ============================================================================

// IsInside reports whether (x, y) lies in the footprint minus its holes.
// Points exactly on a ring count as inside (closed boundary semantics).
func (pg *PolyGrid) IsInside(x, y float64) bool {
	fx := (x - pg.origin[0]) / pg.cellSize
	fy := (y - pg.origin[1]) / pg.cellSize
	if fx < 0 || fy < 0 || fx > float64(pg.nx) || fy > float64(pg.ny) {
		return false
	}

	// A point exactly on the grid's max edge belongs to the last cell
	cx := min(pg.nx-1, int(fx))
	cy := min(pg.ny-1, int(fy))

	switch pg.cells[cy*pg.nx+cx] {
	case cellInside:
		return true
	case cellOutside:
		return false
	default:
		return pg.exactTest(x, y)
	}
}

// exactTest is the crossing-number test against outer and hole rings.
// On a hole boundary still counts as inside the footprint.
func (pg *PolyGrid) exactTest(x, y float64) bool {
	if !pg.outer.Contains(x, y) {
		return false
	}
	for _, hole := range pg.holes {
		if hole.Contains(x, y) && hole.DistanceToBoundary(x, y) > 1e-12 {
			return false
		}
	}
	return true
}

// ringCrossesRect checks whether any ring edge intersects the cell rectangle
func ringCrossesRect(ring geo.Polygon2D, minX, minY, maxX, maxY float64) bool {
	corners := [4]geo.Segment2D{
		{A: vec2(minX, minY), B: vec2(maxX, minY)},
		{A: vec2(maxX, minY), B: vec2(maxX, maxY)},
		{A: vec2(maxX, maxY), B: vec2(minX, maxY)},
		{A: vec2(minX, maxY), B: vec2(minX, minY)},
	}

	for _, e := range ring.Edges() {
		// Cheap reject on the edge's bounding box
		if max(e.A.X(), e.B.X()) < minX || min(e.A.X(), e.B.X()) > maxX ||
			max(e.A.Y(), e.B.Y()) < minY || min(e.A.Y(), e.B.Y()) > maxY {
			continue
		}
		// Edge endpoint inside the rect
		if e.A.X() >= minX && e.A.X() <= maxX && e.A.Y() >= minY && e.A.Y() <= maxY {
			return true
		}
		for _, c := range corners {
			if e.Intersects(c) {
				return true
			}
		}
	}
	return false
}
