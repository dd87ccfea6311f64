// Package prismesh generates quad-dominant 3D meshes for 2.5D prismatic
// volumes: a footprint polygon with holes, extruded between a base and a
// top elevation, with constraint segments and internal horizontal surfaces
// forcing extra subdivision.
package prismesh

import (
	"context"

	"github.com/akmonengine/prismesh/geo"
	"github.com/akmonengine/prismesh/mesh"
	"github.com/akmonengine/prismesh/tess"
)

// PrismMesher turns structure definitions into raw meshes. The zero value
// has no tessellator and can only mesh rectangular footprints; New wires
// the libtess2-backed default.
type PrismMesher struct {
	Tessellator Tessellator
}

func New() *PrismMesher {
	return &PrismMesher{Tessellator: tess.NewTriangulator()}
}

// Mesh runs the full synchronous pipeline for one structure
func (m *PrismMesher) Mesh(def PrismStructureDefinition, opts MesherOptions) (*mesh.Mesh, error) {
	return m.MeshContext(context.Background(), def, opts, nil)
}

// MeshIndexed runs the pipeline and converts the result to indexed form
// with the options' vertex merge epsilon
func (m *PrismMesher) MeshIndexed(def PrismStructureDefinition, opts MesherOptions) (*mesh.IndexedMesh, error) {
	raw, err := m.Mesh(def, opts)
	if err != nil {
		return nil, err
	}
	return mesh.Index(raw, opts.VertexMergeEpsilon)
}

// MeshContext runs the pipeline with cooperative cancellation and progress
// reporting. Cancellation is observed between stages and inside the
// rectangle fast path; a cancelled run returns ErrCancelled and no mesh,
// never a partial one. Trivial structures skip the progress plumbing and
// run inline.
//
// ctx must not be nil; onProgress may be.
func (m *PrismMesher) MeshContext(ctx context.Context, def PrismStructureDefinition, opts MesherOptions, onProgress ProgressFunc) (*mesh.Mesh, error) {
	if ctx == nil {
		panic("prismesh: MeshContext called with nil context")
	}

	var sink *progressSink
	if !EstimateComplexity(def, opts).Trivial() {
		sink = newProgressSink(onProgress)
		defer sink.close()
	}

	checkpoint := func() error {
		if err := ctx.Err(); err != nil {
			return cancelled(context.Cause(ctx))
		}
		return nil
	}

	// Stage 1: structure and options validated together, aggregated so one
	// pass reports every problem
	v := &validator{}
	def.collectProblems(v)
	opts.collectProblems(v)
	if err := v.err(); err != nil {
		return nil, err
	}
	sink.emit(Progress{Stage: STAGE_VALIDATE, Percent: 5})
	if err := checkpoint(); err != nil {
		return nil, err
	}

	// Stage 2: vertical subdivision
	levels, err := buildZLevels(def.Base, def.Top, opts.ZEdgeLength, def.constraintZLevels())
	if err != nil {
		return nil, err
	}
	sink.emit(Progress{Stage: STAGE_LEVELS, Percent: 10, Processed: len(levels), Total: len(levels)})
	if err := checkpoint(); err != nil {
		return nil, err
	}

	builder := mesh.NewBuilder()

	// Stage 3: side faces, outer ring then each hole ring. Ring
	// normalization (outer CCW, holes CW) already carries the winding.
	sideCount := 0
	outerSides := sideFaces(def.Footprint.Vertices, levels, opts.XYEdgeLength)
	builder.AddQuads(outerSides...)
	sideCount += len(outerSides)
	for _, hole := range def.Holes {
		holeSides := sideFaces(hole.Vertices, levels, opts.XYEdgeLength)
		builder.AddQuads(holeSides...)
		sideCount += len(holeSides)
	}
	sink.emit(Progress{Stage: STAGE_SIDE_FACES, Percent: 45, Processed: sideCount, Total: sideCount})
	if err := checkpoint(); err != nil {
		return nil, err
	}

	// Stage 4: bottom and top caps
	segments := make([]geo.Segment2D, len(def.Constraints))
	for i, c := range def.Constraints {
		segments[i] = c.Segment
	}

	if opts.GenerateBottomCap {
		quads, tris, err := m.generateCap(ctx, capSpec{outer: def.Footprint, holes: def.Holes, z: def.Base, up: false}, opts, segments)
		if err != nil {
			return nil, err
		}
		builder.AddQuads(quads...).AddTriangles(tris...)
	}
	if opts.GenerateTopCap {
		quads, tris, err := m.generateCap(ctx, capSpec{outer: def.Footprint, holes: def.Holes, z: def.Top, up: true}, opts, segments)
		if err != nil {
			return nil, err
		}
		builder.AddQuads(quads...).AddTriangles(tris...)
	}
	sink.emit(Progress{Stage: STAGE_CAPS, Percent: 75})
	if err := checkpoint(); err != nil {
		return nil, err
	}

	// Stage 5: internal surfaces, always generated regardless of cap toggles
	for _, surface := range def.InternalSurfaces {
		quads, tris, err := m.generateCap(ctx, capSpec{outer: surface.Outline, holes: surface.Holes, z: surface.Z, up: true}, opts, segments)
		if err != nil {
			return nil, err
		}
		builder.AddQuads(quads...).AddTriangles(tris...)
	}
	sink.emit(Progress{Stage: STAGE_SURFACES, Percent: 90, Processed: len(def.InternalSurfaces), Total: len(def.InternalSurfaces)})
	if err := checkpoint(); err != nil {
		return nil, err
	}

	// Stage 6: auxiliary geometry passes through untouched
	builder.AddPoints(def.AuxPoints...)
	builder.AddSegments(def.AuxSegments...)

	result := builder.Build()
	sink.emit(Progress{Stage: STAGE_ASSEMBLE, Percent: 100, Processed: result.QuadCount() + result.TriangleCount(), Total: result.QuadCount() + result.TriangleCount()})

	return result, nil
}
