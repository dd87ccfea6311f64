package prismesh

import (
	"context"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/prismesh/geo"
)

// capSpec describes one horizontal cap to generate: a footprint minus its
// holes at a fixed elevation, facing up (+Z) or down.
type capSpec struct {
	outer geo.Polygon2D
	holes []geo.Polygon2D
	z     float64
	up    bool
}

// generateCap selects the cap variant by footprint classification: an
// axis-aligned rectangular outer ring takes the uniform-grid fast path,
// anything else goes through tessellation and quad pairing.
func (m *PrismMesher) generateCap(ctx context.Context, spec capSpec, opts MesherOptions, segments []geo.Segment2D) ([]geo.Quad, []geo.Triangle, error) {
	if spec.outer.IsAxisAlignedRectangle(RECT_CLASSIFICATION_EPS) {
		quads, err := rectCap(ctx, spec, opts, segments)
		return quads, nil, err
	}
	return m.genericCap(spec, opts)
}

// rectCap lays a uniform grid of target-length cells over the rectangle.
// Cells whose center sits within a refinement band of a hole boundary or a
// constraint segment are replaced entirely by a finer sub-grid, so coarse
// and fine regions never overlap. Cells whose center is strictly inside a
// hole are skipped. Cancellation is polled every cancelCheckInterval cells.
func rectCap(ctx context.Context, spec capSpec, opts MesherOptions, segments []geo.Segment2D) ([]geo.Quad, error) {
	bounds := spec.outer.Bounds()
	w, h := bounds.Width(), bounds.Height()
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	cols := max(1, int(math.Ceil(w/opts.XYEdgeLength)))
	rows := max(1, int(math.Ceil(h/opts.XYEdgeLength)))
	cellW, cellH := w/float64(cols), h/float64(rows)

	var grid *PolyGrid
	if len(spec.holes) > 0 {
		grid = NewPolyGrid(spec.outer, spec.holes, opts.XYEdgeLength)
	}

	quads := make([]geo.Quad, 0, cols*rows)
	visited := 0
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			visited++
			if visited%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return nil, cancelled(context.Cause(ctx))
				}
			}

			minX := bounds.Min.X() + float64(cx)*cellW
			minY := bounds.Min.Y() + float64(cy)*cellH
			centerX, centerY := minX+cellW/2, minY+cellH/2

			fine, refined := refineTargetFor(centerX, centerY, opts, spec.holes, segments)
			if !refined {
				if grid != nil && !grid.IsInside(centerX, centerY) {
					continue
				}
				quads = append(quads, cellQuad(minX, minY, cellW, cellH, spec))
				continue
			}

			// The fine sub-grid replaces the coarse cell outright
			subCols := max(1, int(math.Ceil(cellW/fine)))
			subRows := max(1, int(math.Ceil(cellH/fine)))
			subW, subH := cellW/float64(subCols), cellH/float64(subRows)
			for sy := 0; sy < subRows; sy++ {
				for sx := 0; sx < subCols; sx++ {
					subMinX := minX + float64(sx)*subW
					subMinY := minY + float64(sy)*subH
					if grid != nil && !grid.IsInside(subMinX+subW/2, subMinY+subH/2) {
						continue
					}
					quads = append(quads, cellQuad(subMinX, subMinY, subW, subH, spec))
				}
			}
		}
	}

	return quads, nil
}

// refineTargetFor returns the near-feature target length applying at the
// given cell center. When both the hole band and the segment band apply,
// the smaller resulting cell size wins, independent of feature order.
func refineTargetFor(x, y float64, opts MesherOptions, holes []geo.Polygon2D, segments []geo.Segment2D) (float64, bool) {
	target := math.Inf(1)
	refined := false

	if opts.holeRefinement() {
		for _, hole := range holes {
			if hole.DistanceToBoundary(x, y) <= opts.HoleRefinementBand {
				target = min(target, opts.NearHoleXYLength)
				refined = true
				break
			}
		}
	}
	if opts.segmentRefinement() {
		pt := mgl64.Vec2{x, y}
		for _, seg := range segments {
			if seg.DistanceToPoint(pt) <= opts.SegmentRefinementBand {
				target = min(target, opts.NearSegmentXYLength)
				refined = true
				break
			}
		}
	}

	return target, refined
}

// cellQuad builds the scored cap quad for one grid cell
func cellQuad(minX, minY, w, h float64, spec capSpec) geo.Quad {
	q := geo.Quad{
		A: mgl64.Vec3{minX, minY, spec.z},
		B: mgl64.Vec3{minX + w, minY, spec.z},
		C: mgl64.Vec3{minX + w, minY + h, spec.z},
		D: mgl64.Vec3{minX, minY + h, spec.z},
	}
	if !spec.up {
		q = q.Reversed()
	}
	return q.Scored(QuadQuality(q))
}
