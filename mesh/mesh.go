// Package mesh holds the raw and indexed mesh aggregates produced by the
// meshing pipeline. A Mesh is an append-only snapshot assembled through a
// Builder; an IndexedMesh is its deduplicated, index-referenced form.
package mesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/prismesh/geo"
)

// Mesh is the raw output of the generators: materialized quads, triangles
// and auxiliary geometry carried through untouched. Immutable once built.
type Mesh struct {
	quads     []geo.Quad
	triangles []geo.Triangle
	points    []mgl64.Vec3
	segments  []geo.Segment3D
}

// Quads returns the quad list. The slice must not be modified.
func (m *Mesh) Quads() []geo.Quad { return m.quads }

// Triangles returns the triangle list. The slice must not be modified.
func (m *Mesh) Triangles() []geo.Triangle { return m.triangles }

// Points returns the auxiliary points. The slice must not be modified.
func (m *Mesh) Points() []mgl64.Vec3 { return m.points }

// Segments returns the auxiliary segments. The slice must not be modified.
func (m *Mesh) Segments() []geo.Segment3D { return m.segments }

func (m *Mesh) QuadCount() int {
	return len(m.quads)
}

func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

func (m *Mesh) IsEmpty() bool {
	return len(m.quads) == 0 && len(m.triangles) == 0 &&
		len(m.points) == 0 && len(m.segments) == 0
}

// Builder accumulates generator output and produces an immutable Mesh.
// Not safe for concurrent use; each pipeline run owns its builder.
type Builder struct {
	mesh Mesh
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AddQuads(quads ...geo.Quad) *Builder {
	b.mesh.quads = append(b.mesh.quads, quads...)
	return b
}

func (b *Builder) AddTriangles(triangles ...geo.Triangle) *Builder {
	b.mesh.triangles = append(b.mesh.triangles, triangles...)
	return b
}

func (b *Builder) AddPoints(points ...mgl64.Vec3) *Builder {
	b.mesh.points = append(b.mesh.points, points...)
	return b
}

func (b *Builder) AddSegments(segments ...geo.Segment3D) *Builder {
	b.mesh.segments = append(b.mesh.segments, segments...)
	return b
}

// Build returns the accumulated mesh. The builder must not be reused after.
func (b *Builder) Build() *Mesh {
	m := b.mesh
	b.mesh = Mesh{}
	return &m
}
