package prismesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/prismesh/geo"
)

// SegmentConstraint forces a horizontal subdivision level at Z and marks
// the segment's XY projection for near-segment cap refinement.
type SegmentConstraint struct {
	Segment geo.Segment2D
	Z       float64
}

// InternalSurface is a horizontal cap at an interior elevation, strictly
// between base and top. Generated regardless of the bottom/top cap toggles.
type InternalSurface struct {
	Outline geo.Polygon2D
	Holes   []geo.Polygon2D
	Z       float64
}

// PrismStructureDefinition describes one 2.5D prismatic volume: a footprint
// extruded from Base to Top, with holes, constraint segments, internal
// surfaces and auxiliary geometry carried through untouched.
//
// The value is immutable: every With* method returns a new definition and
// never mutates the receiver, so definitions are safe to share across
// goroutines and reuse between runs.
type PrismStructureDefinition struct {
	Footprint geo.Polygon2D
	Holes     []geo.Polygon2D
	Base      float64
	Top       float64

	Constraints      []SegmentConstraint
	InternalSurfaces []InternalSurface

	AuxPoints   []mgl64.Vec3
	AuxSegments []geo.Segment3D
}

// NewPrismStructure normalizes the footprint to CCW winding
func NewPrismStructure(footprint geo.Polygon2D, base, top float64) PrismStructureDefinition {
	return PrismStructureDefinition{
		Footprint: footprint.Oriented(true),
		Base:      base,
		Top:       top,
	}
}

// WithHole returns a copy with the hole added, normalized to CW winding
func (d PrismStructureDefinition) WithHole(hole geo.Polygon2D) PrismStructureDefinition {
	d.Holes = append(copyOf(d.Holes), hole.Oriented(false))
	return d
}

// WithConstraintSegment returns a copy with the constraint added
func (d PrismStructureDefinition) WithConstraintSegment(c SegmentConstraint) PrismStructureDefinition {
	d.Constraints = append(copyOf(d.Constraints), c)
	return d
}

// WithInternalSurface returns a copy with the surface added; the outline is
// normalized CCW and its holes CW
func (d PrismStructureDefinition) WithInternalSurface(s InternalSurface) PrismStructureDefinition {
	s.Outline = s.Outline.Oriented(true)
	holes := make([]geo.Polygon2D, len(s.Holes))
	for i, h := range s.Holes {
		holes[i] = h.Oriented(false)
	}
	s.Holes = holes
	d.InternalSurfaces = append(copyOf(d.InternalSurfaces), s)
	return d
}

// WithAuxPoint returns a copy with the standalone point added
func (d PrismStructureDefinition) WithAuxPoint(p mgl64.Vec3) PrismStructureDefinition {
	d.AuxPoints = append(copyOf(d.AuxPoints), p)
	return d
}

// WithAuxSegment returns a copy with the standalone segment added
func (d PrismStructureDefinition) WithAuxSegment(s geo.Segment3D) PrismStructureDefinition {
	d.AuxSegments = append(copyOf(d.AuxSegments), s)
	return d
}

func copyOf[T any](in []T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return out
}

// validate aggregates every problem with the definition. Ring-level
// degeneracy is already rejected by geo.NewPolygon2D; this covers the
// cross-field rules.
func (d PrismStructureDefinition) validate() error {
	v := &validator{}
	d.collectProblems(v)
	return v.err()
}

func (d PrismStructureDefinition) collectProblems(v *validator) {
	if d.Top <= d.Base {
		v.addf("top %g must be greater than base %g", d.Top, d.Base)
	}
	if len(d.Footprint.Vertices) < 3 {
		v.addf("footprint has %d vertices, need at least 3", len(d.Footprint.Vertices))
	}

	for i, hole := range d.Holes {
		if len(hole.Vertices) < 3 {
			v.addf("hole %d has %d vertices, need at least 3", i, len(hole.Vertices))
			continue
		}
		for _, hv := range hole.Vertices {
			if !d.Footprint.Contains(hv.X(), hv.Y()) {
				v.addf("hole %d is not inside the footprint", i)
				break
			}
		}
	}

	for i, s := range d.InternalSurfaces {
		if s.Z <= d.Base || s.Z >= d.Top {
			v.addf("internal surface %d at Z=%g is not strictly between base and top", i, s.Z)
		}
		if len(s.Outline.Vertices) < 3 {
			v.addf("internal surface %d outline has %d vertices", i, len(s.Outline.Vertices))
		}
	}

	for i, c := range d.Constraints {
		if c.Z < d.Base || c.Z > d.Top {
			v.addf("constraint segment %d at Z=%g is outside [base, top]", i, c.Z)
		}
	}
}

// constraintZLevels collects the anchor elevations contributed by
// constraints, internal surfaces and auxiliary geometry
func (d PrismStructureDefinition) constraintZLevels() []float64 {
	var anchors []float64
	for _, c := range d.Constraints {
		anchors = append(anchors, c.Z)
	}
	for _, s := range d.InternalSurfaces {
		anchors = append(anchors, s.Z)
	}
	for _, p := range d.AuxPoints {
		anchors = append(anchors, p.Z())
	}
	for _, s := range d.AuxSegments {
		anchors = append(anchors, s.A.Z(), s.B.Z())
	}
	return anchors
}
