package mesh

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidEpsilon = errors.New("mesh: vertex merge epsilon must be > 0")

// Edge is an undirected pair of vertex indices, normalized so A < B
type Edge struct {
	A, B int
}

func makeEdge(a, b int) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// IndexedMesh references a deduplicated vertex list by index. Built once
// from a raw Mesh; immutable afterwards.
type IndexedMesh struct {
	Vertices  []mgl64.Vec3
	Edges     []Edge
	Quads     [][4]int
	Triangles [][3]int
	Segments  []Edge
	Points    []int

	// Quality scores aligned with Quads; NaN where the quad was unscored
	QuadQualities []float64
}

// mergeKey quantizes a vertex onto an epsilon grid. Vertices rounding to
// the same key merge into one index.
type mergeKey struct {
	X, Y, Z int64
}

type vertexMerger struct {
	epsilon float64
	indices map[mergeKey]int
	out     []mgl64.Vec3
}

func newVertexMerger(epsilon float64) *vertexMerger {
	return &vertexMerger{
		epsilon: epsilon,
		indices: make(map[mergeKey]int),
	}
}

// index returns the vertex's index, assigning the next one in first-seen
// order. The first occurrence's exact coordinates are the ones kept.
func (vm *vertexMerger) index(v mgl64.Vec3) int {
	key := mergeKey{
		X: int64(math.Round(v.X() / vm.epsilon)),
		Y: int64(math.Round(v.Y() / vm.epsilon)),
		Z: int64(math.Round(v.Z() / vm.epsilon)),
	}
	if idx, ok := vm.indices[key]; ok {
		return idx
	}
	idx := len(vm.out)
	vm.indices[key] = idx
	vm.out = append(vm.out, v)
	return idx
}

// Index converts a raw mesh into indexed form, merging vertices closer
// than epsilon and deduplicating edges. Deterministic for a given input
// ordering: indices are assigned in first-seen order.
func Index(m *Mesh, epsilon float64) (*IndexedMesh, error) {
	if m == nil {
		panic("mesh: Index called with nil mesh")
	}
	if epsilon <= 0 {
		return nil, ErrInvalidEpsilon
	}

	vm := newVertexMerger(epsilon)
	im := &IndexedMesh{}

	edgeSeen := make(map[Edge]struct{})
	addEdge := func(a, b int) {
		if a == b {
			return // collapsed by merging
		}
		e := makeEdge(a, b)
		if _, ok := edgeSeen[e]; ok {
			return
		}
		edgeSeen[e] = struct{}{}
		im.Edges = append(im.Edges, e)
	}

	for _, q := range m.Quads() {
		idx := [4]int{vm.index(q.A), vm.index(q.B), vm.index(q.C), vm.index(q.D)}
		im.Quads = append(im.Quads, idx)
		if q.Quality != nil {
			im.QuadQualities = append(im.QuadQualities, *q.Quality)
		} else {
			im.QuadQualities = append(im.QuadQualities, math.NaN())
		}
		for i := 0; i < 4; i++ {
			addEdge(idx[i], idx[(i+1)%4])
		}
	}

	for _, t := range m.Triangles() {
		idx := [3]int{vm.index(t.A), vm.index(t.B), vm.index(t.C)}
		im.Triangles = append(im.Triangles, idx)
		for i := 0; i < 3; i++ {
			addEdge(idx[i], idx[(i+1)%3])
		}
	}

	for _, s := range m.Segments() {
		a, b := vm.index(s.A), vm.index(s.B)
		im.Segments = append(im.Segments, makeEdge(a, b))
		addEdge(a, b)
	}

	for _, p := range m.Points() {
		im.Points = append(im.Points, vm.index(p))
	}

	im.Vertices = vm.out
	return im, nil
}

func (im *IndexedMesh) VertexCount() int {
	return len(im.Vertices)
}

func (im *IndexedMesh) EdgeCount() int {
	return len(im.Edges)
}

func (im *IndexedMesh) FaceCount() int {
	return len(im.Quads) + len(im.Triangles)
}
